package handler

import (
	"github.com/deppfellow/go-todo/internal/model"
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/deppfellow/go-todo/internal/service"
	"github.com/labstack/echo/v4"
)

// TodoHandler serves the /todos endpoints.
type TodoHandler struct {
	Handler
	todoService *service.TodoService
}

func NewTodoHandler(s *server.Server, todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{
		Handler:     NewHandler(s),
		todoService: todoService,
	}
}

func (h *TodoHandler) ListTodos(c echo.Context, _ *model.ListTodosRequest) (*model.TodoListResponse, error) {
	todos, err := h.todoService.GetTodos(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &model.TodoListResponse{Todos: todos}, nil
}

func (h *TodoHandler) GetTodo(c echo.Context, req *model.GetTodoRequest) (*model.TodoResponse, error) {
	todo, err := h.todoService.GetTodo(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &model.TodoResponse{Todo: todo}, nil
}

func (h *TodoHandler) CreateTodo(c echo.Context, req *model.CreateTodoRequest) (*model.TodoResponse, error) {
	todo, err := h.todoService.CreateTodo(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &model.TodoResponse{Todo: todo}, nil
}

func (h *TodoHandler) UpdateTodo(c echo.Context, req *model.UpdateTodoRequest) (*model.TodoResponse, error) {
	todo, err := h.todoService.UpdateTodo(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &model.TodoResponse{Todo: todo}, nil
}

func (h *TodoHandler) DeleteTodo(c echo.Context, req *model.DeleteTodoRequest) (*model.DeleteTodoResponse, error) {
	if err := h.todoService.DeleteTodo(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &model.DeleteTodoResponse{Result: true}, nil
}
