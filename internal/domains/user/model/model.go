package model

import "todoapp/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPasswordHash = "password_hash"
	FieldIsActive     = "is_active"
)

// User is an account row. Usernames and emails are unique at the storage
// layer; the password hash never leaves the service boundary.
type User struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	IsActive     bool   `db:"is_active"`
	model.Metadata
}
