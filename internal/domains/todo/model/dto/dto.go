package dto

import (
	"todoapp/internal/domains/todo/model"
	gDto "todoapp/shared/dto"
	gModel "todoapp/shared/model"
	"todoapp/shared/timezone"

	"github.com/google/uuid"
)

type CreateTodoRequest struct {
	Title       string  `json:"title"       validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (r *CreateTodoRequest) ToModel(ownerID, actor string) model.Todo {
	return model.Todo{
		ID:          uuid.NewString(),
		Title:       r.Title,
		Description: r.Description,
		Completed:   false,
		UserID:      ownerID,
		Metadata:    gModel.NewMetadata(timezone.Now(), actor),
	}
}

// UpdateTodoRequest is a partial update. Every field is a pointer so an
// absent key and an explicit zero value stay distinguishable; only the
// provided fields reach the row.
type UpdateTodoRequest struct {
	Title       *string `db:"title"       json:"title"       validate:"omitempty,max=255"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=255"`
	Completed   *bool   `db:"completed"   json:"completed"   validate:"omitempty"`
}

func (r *UpdateTodoRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Completed == nil
}

type TodoResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	UserID      string  `json:"user_id"`
	gDto.Metadata
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Completed = model.Completed
	r.UserID = model.UserID
	r.Metadata.FromModel(model.Metadata)
}

type GetTodosResponse struct {
	Todos     []TodoResponse `json:"todos"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTodosResponse) FromModels(models []model.Todo, totalPage, totalData int) {
	r.Todos = make([]TodoResponse, 0, len(models))

	for _, m := range models {
		var todo TodoResponse
		todo.FromModel(m)

		r.Todos = append(r.Todos, todo)
	}

	r.TotalPage = totalPage
	r.TotalData = totalData
}
