package model

import "todoapp/shared/model"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCompleted   = "completed"
	FieldUserID      = "user_id"
)

// Todo is one item on a user's list. Description is nullable; UserID ties
// the row to its owner and every access path filters on it.
type Todo struct {
	ID          string  `db:"id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Completed   bool    `db:"completed"`
	UserID      string  `db:"user_id"`
	model.Metadata
}
