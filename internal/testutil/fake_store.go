// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/deppfellow/go-todo/internal/model"
	"github.com/jackc/pgx/v5"
)

// FakeTodoStore is an in-memory implementation of service.TodoStore.
//
// It mirrors the database: ids start at 1, created is stamped on insert and
// missing rows are reported as a wrapped pgx.ErrNoRows.
type FakeTodoStore struct {
	mu     sync.RWMutex
	nextID int64
	todos  map[int64]model.Todo

	// Now stamps created; defaults to time.Now.
	Now func() time.Time

	// Error injection for testing
	CreateErr error
	GetErr    error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

// NewFakeTodoStore creates an empty store.
func NewFakeTodoStore() *FakeTodoStore {
	return &FakeTodoStore{
		nextID: 1,
		todos:  make(map[int64]model.Todo),
		Now:    time.Now,
	}
}

// Len returns the number of stored todos.
func (f *FakeTodoStore) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.todos)
}

func notFound(id int64) error {
	return fmt.Errorf("todo id=%d: %w", id, pgx.ErrNoRows)
}

// CreateTodo implements service.TodoStore.
func (f *FakeTodoStore) CreateTodo(ctx context.Context, title string) (*model.Todo, error) {
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	todo := model.Todo{
		ID:      f.nextID,
		Title:   title,
		Created: f.Now().UTC(),
	}
	f.todos[todo.ID] = todo
	f.nextID++

	return &todo, nil
}

// GetTodoByID implements service.TodoStore.
func (f *FakeTodoStore) GetTodoByID(ctx context.Context, id int64) (*model.Todo, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	todo, ok := f.todos[id]
	if !ok {
		return nil, notFound(id)
	}
	return &todo, nil
}

// GetTodos implements service.TodoStore.
func (f *FakeTodoStore) GetTodos(ctx context.Context) ([]model.Todo, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	todos := make([]model.Todo, 0, len(f.todos))
	for _, todo := range f.todos {
		todos = append(todos, todo)
	}
	sort.Slice(todos, func(i, j int) bool { return todos[i].ID < todos[j].ID })

	return todos, nil
}

// UpdateTodo implements service.TodoStore.
func (f *FakeTodoStore) UpdateTodo(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.todos[todo.ID]
	if !ok {
		return nil, notFound(todo.ID)
	}

	stored.Title = todo.Title
	stored.Done = todo.Done
	stored.FinishedOn = todo.FinishedOn
	f.todos[todo.ID] = stored

	return &stored, nil
}

// DeleteTodo implements service.TodoStore.
func (f *FakeTodoStore) DeleteTodo(ctx context.Context, id int64) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.todos[id]; !ok {
		return notFound(id)
	}
	delete(f.todos, id)

	return nil
}
