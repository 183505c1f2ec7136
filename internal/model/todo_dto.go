package model

import (
	"fmt"
	"unicode/utf8"

	"github.com/deppfellow/go-todo/internal/validation"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ListTodosRequest has no parameters.
type ListTodosRequest struct{}

func (r *ListTodosRequest) Validate() error {
	return nil
}

// GetTodoRequest addresses one todo by its path id.
type GetTodoRequest struct {
	ID int64 `param:"id"`
}

func (r *GetTodoRequest) Validate() error {
	return nil
}

// DeleteTodoRequest addresses one todo by its path id.
type DeleteTodoRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteTodoRequest) Validate() error {
	return nil
}

// CreateTodoRequest is the body of POST /todos.
type CreateTodoRequest struct {
	Title string `json:"title" validate:"required,max=100"`
}

func (r *CreateTodoRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateTodoRequest is the body of PUT /todos/:id. Every field is optional;
// only the ones present in the body are changed.
type UpdateTodoRequest struct {
	ID    int64            `param:"id" json:"-"`
	Title Optional[string] `json:"title"`
	Done  Optional[bool]   `json:"done"`
}

func (r *UpdateTodoRequest) Validate() error {
	var errs validation.CustomValidationErrors

	if r.Title.Set {
		switch {
		case r.Title.Null:
			errs = append(errs, validation.CustomValidationError{Field: "title", Message: "must not be null"})
		case r.Title.Value == "":
			errs = append(errs, validation.CustomValidationError{Field: "title", Message: "is required"})
		case utf8.RuneCountInString(r.Title.Value) > TitleMaxLength:
			errs = append(errs, validation.CustomValidationError{
				Field:   "title",
				Message: fmt.Sprintf("must not exceed %d characters", TitleMaxLength),
			})
		}
	}

	if r.Done.Null {
		errs = append(errs, validation.CustomValidationError{Field: "done", Message: "must not be null"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
