package repository

import (
	"context"

	"github.com/deppfellow/go-todo/internal/model"
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const todoColumns = `id, title, done, created, finished_on`

// TodoRepository stores todos in the todos table.
//
// Missing rows surface as a wrapped pgx.ErrNoRows.
type TodoRepository struct {
	server *server.Server
}

func NewTodoRepository(s *server.Server) *TodoRepository {
	return &TodoRepository{server: s}
}

// CreateTodo inserts a todo that is not done; id and created are assigned by
// the database.
func (r *TodoRepository) CreateTodo(ctx context.Context, title string) (*model.Todo, error) {
	stmt := `
		INSERT INTO todos (title, done)
		VALUES (@title, FALSE)
		RETURNING ` + todoColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"title": title,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create todo query")
	}

	todo, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Todo])
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect created todo")
	}

	return todo, nil
}

// GetTodoByID returns the todo with the given id.
func (r *TodoRepository) GetTodoByID(ctx context.Context, id int64) (*model.Todo, error) {
	stmt := `SELECT ` + todoColumns + ` FROM todos WHERE id = @id`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"id": id,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to execute get todo query for id=%d", id)
	}

	todo, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Todo])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to collect todo id=%d", id)
	}

	return todo, nil
}

// GetTodos returns every todo ordered by id. The slice is never nil.
func (r *TodoRepository) GetTodos(ctx context.Context) ([]model.Todo, error) {
	stmt := `SELECT ` + todoColumns + ` FROM todos ORDER BY id`

	rows, err := r.server.DB.Pool.Query(ctx, stmt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute get todos query")
	}

	todos, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Todo])
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect todos")
	}

	if todos == nil {
		todos = []model.Todo{}
	}

	return todos, nil
}

// UpdateTodo writes title, done and finished_on of an existing todo.
func (r *TodoRepository) UpdateTodo(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	stmt := `
		UPDATE todos
		SET title = @title, done = @done, finished_on = @finished_on
		WHERE id = @id
		RETURNING ` + todoColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"id":          todo.ID,
		"title":       todo.Title,
		"done":        todo.Done,
		"finished_on": todo.FinishedOn,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to execute update todo query for id=%d", todo.ID)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Todo])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to collect updated todo id=%d", todo.ID)
	}

	return updated, nil
}

// DeleteTodo removes the todo with the given id.
func (r *TodoRepository) DeleteTodo(ctx context.Context, id int64) error {
	tag, err := r.server.DB.Pool.Exec(ctx, `DELETE FROM todos WHERE id = @id`, pgx.NamedArgs{
		"id": id,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to execute delete todo query for id=%d", id)
	}

	if tag.RowsAffected() == 0 {
		return errors.Wrapf(pgx.ErrNoRows, "failed to delete todo id=%d", id)
	}

	return nil
}
