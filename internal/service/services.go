// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"time"

	"github.com/deppfellow/go-todo/internal/repository"
)

type Services struct {
	Todo *TodoService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Todo: NewTodoService(repos.Todo, time.Now),
	}
}
