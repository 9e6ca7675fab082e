package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

// clearEnv blanks every variable Load reads so the host environment does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "DB_PATH", "CHEEZ_TARGET", "MAX_ATTEMPTS",
		"CLIENT_ORIGIN", "STATIC_DIR", "PENALTY_MS", "CHEEZ_REMOTE",
	} {
		t.Setenv(k, "")
	}
	// godotenv reads .env from the working directory.
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	got, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Penalty = 1200 * time.Millisecond
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
	if got.Level() != zerolog.InfoLevel {
		t.Fatalf("level = %v", got.Level())
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "cheez.toml")
	body := strings.Join([]string{
		`port = "9000"`,
		`target = "crane"`,
		`max_attempts = 4`,
		`db_path = "data/ledger.db"`,
		`penalty_ms = 50`,
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Port != "9100" {
		t.Errorf("port = %q, env should win", got.Port)
	}
	if got.Target != "CRANE" || got.MaxAttempts != 4 || got.DBPath != "data/ledger.db" {
		t.Errorf("file values not applied: %+v", got)
	}
	if got.Penalty != 50*time.Millisecond {
		t.Errorf("penalty = %v", got.Penalty)
	}
	if got.Level() != zerolog.DebugLevel {
		t.Errorf("level = %v", got.Level())
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad target":        {"CHEEZ_TARGET": "toolong"},
		"zero attempts":     {"MAX_ATTEMPTS": "0"},
		"too many attempts": {"MAX_ATTEMPTS": "13"},
		"non-numeric":       {"MAX_ATTEMPTS": "five"},
		"negative penalty":  {"PENALTY_MS": "-1"},
		"bad level":         {"LOG_LEVEL": "loud"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(""); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
