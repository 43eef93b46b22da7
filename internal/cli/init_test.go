package cli

import (
	"os"
	"path/filepath"
	"testing"

	"spesa/internal/config"
	applog "spesa/internal/log"
	"spesa/internal/shopping"
)

func TestInitEventsDisabled(t *testing.T) {
	client, err := InitEvents(applog.Discard(), &config.Config{})
	if err != nil || client != nil {
		t.Fatalf("expected nil client and no error, got %v, %v", client, err)
	}
}

func TestSeedManager(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed_products.txt")
	if err := os.WriteFile(path, []byte("Milk;L;2;5.0\nBread;un;1;3\n"), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	m := shopping.NewManager()
	if err := SeedManager(applog.Discard(), m, path); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got := len(m.ListProducts()); got != 2 {
		t.Fatalf("expected 2 products, got %d", got)
	}

	if err := SeedManager(applog.Discard(), shopping.NewManager(), ""); err != nil {
		t.Fatalf("empty path should be a no-op, got %v", err)
	}
	if err := SeedManager(applog.Discard(), shopping.NewManager(), filepath.Join(dir, "missing.txt")); err != nil {
		t.Fatalf("missing file should be a no-op, got %v", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(wd) })
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.WriteFile(".env", []byte("SPESA_TEST_VAR=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("SPESA_TEST_VAR", "")
	os.Unsetenv("SPESA_TEST_VAR")

	LoadEnvFile()
	if got := os.Getenv("SPESA_TEST_VAR"); got != "from-dotenv" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}

func TestSetupLogger(t *testing.T) {
	logger := SetupLogger(&config.Config{LogLevel: "debug", LogFormat: "json"})
	if logger == nil || logger.Component() != applog.ComponentApp {
		t.Fatalf("unexpected logger: %+v", logger)
	}
}
