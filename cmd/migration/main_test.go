package main

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/mtg-tournament-tracker/db"
)

func TestParseSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: 1},
		{raw: "3", want: 3},
		{raw: "0", wantErr: true},
		{raw: "x", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseSteps(tt.raw)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Fatalf("parseSteps(%q) = %d, %v", tt.raw, got, err)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	t.Parallel()

	if v, err := parseVersion("1772355660"); err != nil || v != 1772355660 {
		t.Fatalf("unexpected version %d, %v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if _, err := parseVersion(""); err == nil {
		t.Fatalf("expected error for missing version")
	}
	if _, err := parseTarget("abc"); err == nil {
		t.Fatalf("expected error for invalid target")
	}
}

func TestResolveMigrationsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	got, err := resolveMigrationsDir(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %s, got %s", dir, got)
	}
	if _, err := resolveMigrationsDir(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error when no candidate exists")
	}
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(db.Migrations, "migrations")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}

	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	if ups == 0 || ups != downs {
		t.Fatalf("expected paired migrations, got %d up and %d down", ups, downs)
	}
}
