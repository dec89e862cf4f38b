package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/config"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/resilience"
)

func TestBuildWithMemoryStore(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:              ":0",
		StorageDriver:         config.StorageDriverMemory,
		DefaultTournamentType: "LGS Tournament",
		BatchMaxWorkers:       2,
		MetricsEnabled:        true,
		CacheEnabled:          true,
		CacheTTL:              time.Minute,
		StatsCircuit:          resilience.DefaultCircuitBreakerConfig(),
		CORSAllowedOrigins:    []string{"*"},
	}

	c, err := Build(t.Context(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})

	srv, err := NewHTTPServer(cfg, c, logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	for _, path := range []string{"/healthz", "/metrics", "/v1/tournament-types", "/v1/statistics/players"} {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestBuildRejectsUnknownDriver(t *testing.T) {
	if _, err := Build(t.Context(), config.Config{StorageDriver: "sqlite"}, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
}

func TestNewHTTPServerRequiresAddr(t *testing.T) {
	c, err := Build(t.Context(), config.Config{StorageDriver: config.StorageDriverMemory}, logging.NewNop())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := NewHTTPServer(config.Config{}, c, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
