package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("DEFAULT_TOURNAMENT_TYPE", "")
	t.Setenv("BATCH_MAX_WORKERS", "")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageDriverPostgres {
		t.Fatalf("expected postgres driver by default, got %q", cfg.StorageDriver)
	}
	if cfg.DefaultTournamentType != "LGS Tournament" {
		t.Fatalf("unexpected default tournament type: %q", cfg.DefaultTournamentType)
	}
	if cfg.BatchMaxWorkers != 4 {
		t.Fatalf("unexpected batch workers: %d", cfg.BatchMaxWorkers)
	}
	if cfg.PyroscopeAppName != cfg.ServiceName {
		t.Fatalf("expected pyroscope app name to follow service name, got %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "sqlite")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported STORAGE_DRIVER")
	}
}

func TestLoad_MemoryDriverAllowsEmptyDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("DB_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageDriverMemory {
		t.Fatalf("unexpected driver: %q", cfg.StorageDriver)
	}
}

func TestLoad_BatchWorkersMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("BATCH_MAX_WORKERS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for BATCH_MAX_WORKERS=0")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_ParsesTimeoutsAndLevel(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("APP_READ_TIMEOUT", "3s")
	t.Setenv("APP_WRITE_TIMEOUT", "1m")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ReadTimeout != 3*time.Second || cfg.WriteTimeout != time.Minute {
		t.Fatalf("unexpected timeouts: %s %s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.LogLevel != zapcore.WarnLevel {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_PyroscopeRequiresServerAddress(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("MTG_DOTENV_PROBE=from-file\nMTG_DOTENV_KEEP=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("MTG_DOTENV_KEEP", "from-env")
	t.Setenv("MTG_DOTENV_PROBE", "")
	os.Unsetenv("MTG_DOTENV_PROBE")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("MTG_DOTENV_PROBE"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("MTG_DOTENV_KEEP"); got != "from-env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}

func TestLoad_CacheAndStatsCircuit(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", StorageDriverMemory)
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("STATS_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("STATS_CIRCUIT_OPEN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("unexpected cache config: enabled=%t ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if !cfg.StatsCircuit.Enabled || cfg.StatsCircuit.FailureThreshold != 3 || cfg.StatsCircuit.OpenTimeout != 30*time.Second {
		t.Fatalf("unexpected stats circuit config: %+v", cfg.StatsCircuit)
	}
	if cfg.StatsCircuit.HalfOpenMaxReq != 2 {
		t.Fatalf("expected default half-open max req, got %d", cfg.StatsCircuit.HalfOpenMaxReq)
	}

	t.Setenv("STATS_CIRCUIT_FAILURE_COUNT", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero failure count")
	}
}
