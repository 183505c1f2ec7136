package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/go-todo/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func TestNewLoggerJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "info"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("k", "v").Msg("visible")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q: %v", buf.String(), err)
	}

	if entry["message"] != "visible" {
		t.Errorf("unexpected message: %v", entry["message"])
	}
	if entry["service"] != config.ServiceName {
		t.Errorf("unexpected service: %v", entry["service"])
	}
	if entry["environment"] != "production" {
		t.Errorf("unexpected environment: %v", entry["environment"])
	}
}

func TestLoggerServiceDisabled(t *testing.T) {
	svc, err := NewLoggerService(config.DefaultObservabilityConfig())
	if err != nil {
		t.Fatalf("NewLoggerService: %v", err)
	}
	if svc.GetApplication() != nil {
		t.Error("expected no New Relic application without a license key")
	}

	// Must not panic.
	svc.Shutdown()

	var nilService *LoggerService
	if nilService.GetApplication() != nil {
		t.Error("nil service must report no application")
	}
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	cases := map[zerolog.Level]tracelog.LogLevel{
		zerolog.DebugLevel: tracelog.LogLevelDebug,
		zerolog.InfoLevel:  tracelog.LogLevelInfo,
		zerolog.WarnLevel:  tracelog.LogLevelWarn,
		zerolog.ErrorLevel: tracelog.LogLevelError,
		zerolog.Disabled:   tracelog.LogLevelNone,
		zerolog.TraceLevel: tracelog.LogLevelTrace,
	}

	for in, want := range cases {
		if got := tracelog.LogLevel(GetPgxTraceLogLevel(in)); got != want {
			t.Errorf("GetPgxTraceLogLevel(%s) = %v, want %v", in, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != zerolog.DebugLevel {
		t.Error("debug")
	}
	if ParseLevel("nonsense") != zerolog.InfoLevel {
		t.Error("unknown levels must fall back to info")
	}
}
