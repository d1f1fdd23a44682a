package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

type logEntry struct {
	Level      string            `json:"level"`
	Time       string            `json:"time"`
	Message    string            `json:"message"`
	Properties map[string]string `json:"properties"`
	Trace      string            `json:"trace"`
}

func TestJSONLogger(t *testing.T) {
	t.Run("INFO level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		l.PrintInfo("starting server", map[string]string{"addr": ":4000", "env": "development"})

		var entry logEntry
		if err := json.NewDecoder(&buf).Decode(&entry); err != nil {
			t.Fatal(err)
		}
		if entry.Level != "INFO" {
			t.Errorf("expected level INFO; got %s", entry.Level)
		}
		if entry.Message != "starting server" {
			t.Errorf("expected message %q; got %q", "starting server", entry.Message)
		}
		if entry.Properties["addr"] != ":4000" {
			t.Errorf("expected addr property %q; got %q", ":4000", entry.Properties["addr"])
		}
	})

	t.Run("ERROR level includes trace", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		l.PrintError(errors.New("something broke"), nil)

		var entry logEntry
		if err := json.NewDecoder(&buf).Decode(&entry); err != nil {
			t.Fatal(err)
		}
		if entry.Level != "ERROR" {
			t.Errorf("expected level ERROR; got %s", entry.Level)
		}
		if entry.Trace == "" {
			t.Error("expected a stack trace on ERROR entries")
		}
	})

	t.Run("entries below minimum level are discarded", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelError)
		l.PrintDebug("unknown currency", map[string]string{"currency": "JPY"})
		l.PrintInfo("noise", nil)
		if buf.Len() != 0 {
			t.Errorf("expected no output below minimum level; got %q", buf.String())
		}
	})

	t.Run("DEBUG level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelDebug)
		l.PrintDebug("unknown currency", map[string]string{"currency": "JPY"})

		var entry logEntry
		if err := json.NewDecoder(&buf).Decode(&entry); err != nil {
			t.Fatal(err)
		}
		if entry.Level != "DEBUG" {
			t.Errorf("expected level DEBUG; got %s", entry.Level)
		}
	})
}
