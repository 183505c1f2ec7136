package service

import (
	"context"
	"time"

	"github.com/deppfellow/go-todo/internal/model"
	"github.com/rs/zerolog"
)

// TodoStore is the persistence the todo service needs.
// repository.TodoRepository is the production implementation.
type TodoStore interface {
	CreateTodo(ctx context.Context, title string) (*model.Todo, error)
	GetTodoByID(ctx context.Context, id int64) (*model.Todo, error)
	GetTodos(ctx context.Context) ([]model.Todo, error)
	UpdateTodo(ctx context.Context, todo *model.Todo) (*model.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
}

// TodoService logs through the request-scoped logger carried by ctx.
type TodoService struct {
	store TodoStore
	now   func() time.Time
}

func NewTodoService(store TodoStore, now func() time.Time) *TodoService {
	return &TodoService{
		store: store,
		now:   now,
	}
}

func (s *TodoService) CreateTodo(ctx context.Context, req *model.CreateTodoRequest) (*model.Todo, error) {
	todo, err := s.store.CreateTodo(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("todo_id", todo.ID).
		Msg("todo created")

	return todo, nil
}

func (s *TodoService) GetTodos(ctx context.Context) ([]model.Todo, error) {
	return s.store.GetTodos(ctx)
}

func (s *TodoService) GetTodo(ctx context.Context, id int64) (*model.Todo, error) {
	return s.store.GetTodoByID(ctx, id)
}

// UpdateTodo applies a partial update: fields absent from req keep their
// stored value, and finished_on follows done.
func (s *TodoService) UpdateTodo(ctx context.Context, req *model.UpdateTodoRequest) (*model.Todo, error) {
	todo, err := s.store.GetTodoByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	wasDone := todo.Done
	todo.ApplyUpdate(req, s.now().UTC())

	updated, err := s.store.UpdateTodo(ctx, todo)
	if err != nil {
		return nil, err
	}

	if wasDone != updated.Done {
		zerolog.Ctx(ctx).Info().
			Int64("todo_id", updated.ID).
			Bool("done", updated.Done).
			Msg("todo completion changed")
	}

	return updated, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.store.DeleteTodo(ctx, id); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Int64("todo_id", id).
		Msg("todo deleted")

	return nil
}
