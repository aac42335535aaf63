package shared_test

import (
	"testing"
	"todoapp/shared"
	"todoapp/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type todoPatch struct {
	Title       *string `db:"title"`
	Description *string `db:"description"`
	Completed   *bool   `db:"completed"`
}

func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func TestTransformFields(t *testing.T) {
	tests := []struct {
		name       string
		patch      todoPatch
		wantFields map[string]any
		skipFields []string
	}{
		{
			name: "all fields provided",
			patch: todoPatch{
				Title:       stringPtr("New Title"),
				Description: stringPtr("New Description"),
				Completed:   boolPtr(true),
			},
			wantFields: map[string]any{
				"title":       "New Title",
				"description": "New Description",
				"completed":   true,
			},
		},
		{
			name: "nil pointers are skipped",
			patch: todoPatch{
				Title: stringPtr("Only Title"),
			},
			wantFields: map[string]any{
				"title": "Only Title",
			},
			skipFields: []string{"description", "completed"},
		},
		{
			name: "explicit zero values are applied",
			patch: todoPatch{
				Title:     stringPtr(""),
				Completed: boolPtr(false),
			},
			wantFields: map[string]any{
				"title":     "",
				"completed": false,
			},
			skipFields: []string{"description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := shared.TransformFields(tt.patch, "test-actor")

			for column, want := range tt.wantFields {
				assert.Equal(t, want, fields[column])
			}

			for _, column := range tt.skipFields {
				assert.NotContains(t, fields, column)
			}

			assert.Equal(t, "test-actor", fields[constant.FieldModifiedBy])
			assert.Contains(t, fields, constant.FieldModifiedAt)
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "no data", total: 0, limit: 10, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "zero limit", total: 5, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	truthy := shared.ConvertStringToBool("true")
	require.NotNil(t, truthy)
	assert.True(t, *truthy)

	falsy := shared.ConvertStringToBool("false")
	require.NotNil(t, falsy)
	assert.False(t, *falsy)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "todo:user-1:list", shared.BuildCacheKey("todo", "user-1", "list"))
}

func TestFilterByOwner(t *testing.T) {
	group := shared.FilterByOwner("todo-1", "user-1", "id", "user_id", "todos")

	where, args := group.GetWhereClause()

	assert.Contains(t, where, "todos.id = :id")
	assert.Contains(t, where, "todos.user_id = :user_id")
	assert.Contains(t, where, " AND ")
	assert.Equal(t, "todo-1", args["id"])
	assert.Equal(t, "user-1", args["user_id"])
}
