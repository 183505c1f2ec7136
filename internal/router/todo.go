package router

import (
	"net/http"

	"github.com/deppfellow/go-todo/internal/handler"
	"github.com/deppfellow/go-todo/internal/model"
	"github.com/labstack/echo/v4"
)

func registerTodoRoutes(r *echo.Echo, h *handler.Handlers) {
	todos := r.Group("/todos")

	todos.GET("", handler.Handle(
		h.Todo.Handler,
		h.Todo.ListTodos,
		http.StatusOK,
		&model.ListTodosRequest{},
	))

	todos.POST("", handler.Handle(
		h.Todo.Handler,
		h.Todo.CreateTodo,
		http.StatusOK,
		&model.CreateTodoRequest{},
	))

	todos.GET("/:id", handler.Handle(
		h.Todo.Handler,
		h.Todo.GetTodo,
		http.StatusOK,
		&model.GetTodoRequest{},
	))

	todos.PUT("/:id", handler.Handle(
		h.Todo.Handler,
		h.Todo.UpdateTodo,
		http.StatusOK,
		&model.UpdateTodoRequest{},
	))

	todos.DELETE("/:id", handler.Handle(
		h.Todo.Handler,
		h.Todo.DeleteTodo,
		http.StatusOK,
		&model.DeleteTodoRequest{},
	))
}
