package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig carries the assistant strings", func(t *testing.T) {
		config := DefaultConfig()

		if config.REPL.Prompt != "Enter a command: " {
			t.Errorf("prompt = %q", config.REPL.Prompt)
		}
		if config.REPL.Greeting != "Welcome to the assistant bot!" {
			t.Errorf("greeting = %q", config.REPL.Greeting)
		}
		if config.REPL.Farewell != "Good bye!" {
			t.Errorf("farewell = %q", config.REPL.Farewell)
		}
		if config.Log.Level != "warn" {
			t.Errorf("log level = %q", config.Log.Level)
		}
		if config.UI.Title == "" {
			t.Error("expected a default UI title")
		}
	})

	t.Run("LoadConfig parses a TOML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[repl]
prompt = "> "
greeting = "hi"
farewell = "bye"

[log]
level = "debug"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write temp config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if config.REPL.Prompt != "> " {
			t.Errorf("prompt = %q, want %q", config.REPL.Prompt, "> ")
		}
		if config.Log.Level != "debug" {
			t.Errorf("log level = %q, want debug", config.Log.Level)
		}
	})

	t.Run("LoadConfig fails on a missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("LoadConfig fails on malformed TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[repl\nprompt"), 0o644); err != nil {
			t.Fatalf("failed to write temp config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected a parse error")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("CreateConfigFile failed: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("written file does not load: %v", err)
		}
		if config.REPL.Greeting != "Welcome to the assistant bot!" {
			t.Errorf("greeting = %q", config.REPL.Greeting)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected an error when the file already exists")
		}
	})
}
