package router_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/go-todo/internal/config"
	"github.com/deppfellow/go-todo/internal/errs"
	"github.com/deppfellow/go-todo/internal/handler"
	"github.com/deppfellow/go-todo/internal/model"
	"github.com/deppfellow/go-todo/internal/router"
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/deppfellow/go-todo/internal/service"
	"github.com/deppfellow/go-todo/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testAPI struct {
	router *echo.Echo
	store  *testutil.FakeTodoStore
}

func newTestAPI(t *testing.T, configure ...func(*config.Config)) *testAPI {
	t.Helper()

	cfg := config.Default()
	cfg.Server.RateLimit = 0
	cfg.Observability.HealthChecks.Enabled = false
	for _, fn := range configure {
		fn(cfg)
	}

	logger := zerolog.New(io.Discard)
	s := &server.Server{Config: cfg, Logger: &logger}

	store := testutil.NewFakeTodoStore()
	store.Now = func() time.Time { return fixedNow }

	services := &service.Services{
		Todo: service.NewTodoService(store, func() time.Time { return fixedNow }),
	}

	return &testAPI{
		router: router.NewRouter(s, handler.NewHandlers(s, services)),
		store:  store,
	}
}

func (a *testAPI) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
}

func TestCreateThenGet(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/todos", `{"title":"buy milk"}`)
	expectStatus(t, rec, http.StatusOK)

	created := decode[model.TodoResponse](t, rec).Todo
	if created == nil || created.ID == 0 {
		t.Fatalf("expected a todo with an id, got %+v", created)
	}
	if created.Title != "buy milk" || created.Done || created.FinishedOn != nil {
		t.Errorf("unexpected new todo: %+v", created)
	}

	rec = api.do(t, http.MethodGet, "/todos/1", "")
	expectStatus(t, rec, http.StatusOK)

	got := decode[model.TodoResponse](t, rec).Todo
	if got.ID != created.ID || got.Title != created.Title || !got.Created.Equal(created.Created) {
		t.Errorf("expected %+v, got %+v", created, got)
	}
}

func TestListTodos(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/todos", "")
	expectStatus(t, rec, http.StatusOK)
	if strings.TrimSpace(rec.Body.String()) != `{"todos":[]}` {
		t.Errorf("expected empty list, got %s", rec.Body.String())
	}

	api.do(t, http.MethodPost, "/todos", `{"title":"a"}`)
	api.do(t, http.MethodPost, "/todos", `{"title":"b"}`)

	rec = api.do(t, http.MethodGet, "/todos", "")
	expectStatus(t, rec, http.StatusOK)

	list := decode[model.TodoListResponse](t, rec)
	if len(list.Todos) != 2 {
		t.Fatalf("expected 2 todos, got %+v", list.Todos)
	}
}

func TestGetMissingTodo(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/todos/999999", "")
	expectStatus(t, rec, http.StatusNotFound)

	if strings.TrimSpace(rec.Body.String()) != `{"error":"not found"}` {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestUpdateTogglesDone(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodPost, "/todos", `{"title":"write report"}`)

	rec := api.do(t, http.MethodPut, "/todos/1", `{"done":true}`)
	expectStatus(t, rec, http.StatusOK)

	done := decode[model.TodoResponse](t, rec).Todo
	if !done.Done || done.FinishedOn == nil || !done.FinishedOn.Equal(fixedNow) {
		t.Fatalf("expected done with finished_on, got %+v", done)
	}
	if done.Title != "write report" {
		t.Errorf("title changed by partial update: %q", done.Title)
	}

	rec = api.do(t, http.MethodPut, "/todos/1", `{"done":false}`)
	expectStatus(t, rec, http.StatusOK)

	undone := decode[model.TodoResponse](t, rec).Todo
	if undone.Done || undone.FinishedOn != nil {
		t.Errorf("expected not done without finished_on, got %+v", undone)
	}
}

func TestUpdateTitleOnly(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodPost, "/todos", `{"title":"old"}`)
	api.do(t, http.MethodPut, "/todos/1", `{"done":true}`)

	rec := api.do(t, http.MethodPut, "/todos/1", `{"title":"new"}`)
	expectStatus(t, rec, http.StatusOK)

	todo := decode[model.TodoResponse](t, rec).Todo
	if todo.Title != "new" || !todo.Done || todo.FinishedOn == nil {
		t.Errorf("expected only the title to change, got %+v", todo)
	}
}

func TestUpdateIgnoresBodyID(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodPost, "/todos", `{"title":"one"}`)
	api.do(t, http.MethodPost, "/todos", `{"title":"two"}`)

	rec := api.do(t, http.MethodPut, "/todos/1", `{"id":2,"title":"renamed"}`)
	expectStatus(t, rec, http.StatusOK)

	if todo := decode[model.TodoResponse](t, rec).Todo; todo.ID != 1 {
		t.Errorf("expected todo 1 to be updated, got %d", todo.ID)
	}
}

func TestUpdateMissingTodo(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPut, "/todos/42", `{"done":true}`)
	expectStatus(t, rec, http.StatusNotFound)

	if body := decode[errs.Response](t, rec); body.Error != "not found" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestDeleteTodo(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodPost, "/todos", `{"title":"temp"}`)

	rec := api.do(t, http.MethodDelete, "/todos/1", "")
	expectStatus(t, rec, http.StatusOK)
	if strings.TrimSpace(rec.Body.String()) != `{"result":true}` {
		t.Errorf("unexpected body %s", rec.Body.String())
	}

	rec = api.do(t, http.MethodGet, "/todos/1", "")
	expectStatus(t, rec, http.StatusNotFound)

	rec = api.do(t, http.MethodDelete, "/todos/1", "")
	expectStatus(t, rec, http.StatusNotFound)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{}`},
		{name: "empty title", body: `{"title":""}`},
		{name: "title too long", body: `{"title":"` + strings.Repeat("x", model.TitleMaxLength+1) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			rec := api.do(t, http.MethodPost, "/todos", tt.body)
			expectStatus(t, rec, http.StatusBadRequest)

			body := decode[errs.Response](t, rec)
			if len(body.Errors) != 1 || body.Errors[0].Field != "title" {
				t.Errorf("expected a title field error, got %+v", body)
			}
			if api.store.Len() != 0 {
				t.Error("invalid todo was stored")
			}
		})
	}
}

func TestUpdateValidation(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodPost, "/todos", `{"title":"keep"}`)

	for _, body := range []string{`{"title":null}`, `{"done":null}`, `{"title":""}`, `{"done":"yes"}`} {
		rec := api.do(t, http.MethodPut, "/todos/1", body)
		expectStatus(t, rec, http.StatusBadRequest)
	}
}

func TestInvalidID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/todos/abc", "")
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/nope", "")
	expectStatus(t, rec, http.StatusNotFound)

	if body := decode[errs.Response](t, rec); body.Error != "route not found" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPatch, "/todos/1", `{}`)
	expectStatus(t, rec, http.StatusMethodNotAllowed)
}

func TestStoreFailure(t *testing.T) {
	api := newTestAPI(t)
	api.store.ListErr = errors.New("connection reset")

	rec := api.do(t, http.MethodGet, "/todos", "")
	expectStatus(t, rec, http.StatusInternalServerError)

	if body := decode[errs.Response](t, rec); strings.Contains(body.Error, "connection reset") {
		t.Errorf("internal error leaked: %+v", body)
	}
}

func TestRequestIDHeader(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/todos", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID on the response")
	}
}

func TestRateLimit(t *testing.T) {
	api := newTestAPI(t, func(cfg *config.Config) {
		cfg.Server.RateLimit = 1
	})

	expectStatus(t, api.do(t, http.MethodGet, "/todos", ""), http.StatusOK)

	rec := api.do(t, http.MethodGet, "/todos", "")
	expectStatus(t, rec, http.StatusTooManyRequests)

	if body := decode[errs.Response](t, rec); body.Error != http.StatusText(http.StatusTooManyRequests) {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestStatus(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/status", "")
	expectStatus(t, rec, http.StatusOK)

	body := decode[map[string]interface{}](t, rec)
	if body["status"] != "healthy" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestStatusWithoutDatabase(t *testing.T) {
	api := newTestAPI(t, func(cfg *config.Config) {
		cfg.Observability.HealthChecks.Enabled = true
	})

	rec := api.do(t, http.MethodGet, "/status", "")
	expectStatus(t, rec, http.StatusServiceUnavailable)

	body := decode[map[string]interface{}](t, rec)
	if body["status"] != "unhealthy" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestDocs(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/docs", "")
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Header().Get(echo.HeaderContentType), "text/html") {
		t.Errorf("unexpected content type %q", rec.Header().Get(echo.HeaderContentType))
	}

	rec = api.do(t, http.MethodGet, "/openapi.json", "")
	expectStatus(t, rec, http.StatusOK)

	doc := decode[map[string]interface{}](t, rec)
	if _, ok := doc["paths"].(map[string]interface{})["/todos/{id}"]; !ok {
		t.Error("expected /todos/{id} in the OpenAPI document")
	}
}
