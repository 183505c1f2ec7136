package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/go-todo/internal/config"
	"github.com/deppfellow/go-todo/internal/errs"
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer() *server.Server {
	logger := zerolog.New(io.Discard)
	return &server.Server{
		Config: config.Default(),
		Logger: &logger,
	}
}

func TestRequestIDGenerated(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("expected a UUID request id, got %q", seen)
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Errorf("response header %q does not match %q", got, seen)
	}
}

func TestRequestIDReused(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestID()(func(c echo.Context) error { return nil })
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("expected abc-123, got %q", got)
	}
}

func TestGetLoggerWithoutEnhancer(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if GetLogger(c) == nil {
		t.Fatal("expected a no-op logger")
	}
}

func TestEnhanceContextStoresLogger(t *testing.T) {
	s := newTestServer()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	h := NewContextEnhancer(s).EnhanceContext()(func(c echo.Context) error {
		if _, ok := c.Get(LoggerKey).(*zerolog.Logger); !ok {
			t.Error("expected logger in echo context")
		}
		if zerolog.Ctx(c.Request().Context()).GetLevel() == zerolog.Disabled {
			t.Error("expected logger in request context")
		}
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   errs.Response
	}{
		{
			name:   "missing row",
			err:    pgx.ErrNoRows,
			status: http.StatusNotFound,
			body:   errs.Response{Error: "not found"},
		},
		{
			name:   "unknown route",
			err:    echo.ErrNotFound,
			status: http.StatusNotFound,
			body:   errs.Response{Error: RouteNotFoundMessage},
		},
		{
			name:   "method not allowed",
			err:    echo.ErrMethodNotAllowed,
			status: http.StatusMethodNotAllowed,
			body:   errs.Response{Error: "Method Not Allowed"},
		},
		{
			name:   "http error",
			err:    errs.NewBadRequestError("bad title", nil, nil),
			status: http.StatusBadRequest,
			body:   errs.Response{Error: "bad title"},
		},
		{
			name:   "internal",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   errs.Response{Error: "Internal Server Error"},
		},
	}

	global := NewGlobalMiddlewares(newTestServer())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/todos/1", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			if rec.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, rec.Code)
			}

			var body errs.Response
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body %q: %v", rec.Body.String(), err)
			}
			if body.Error != tt.body.Error || len(body.Errors) != 0 {
				t.Errorf("expected %+v, got %+v", tt.body, body)
			}
		})
	}
}
