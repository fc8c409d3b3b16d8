package config

import (
	"strconv"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, _, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Strength != 256 {
		t.Errorf("Strength = %d, want 256", cfg.Strength)
	}
	if cfg.Separator != " " {
		t.Errorf("Separator = %q, want %q", cfg.Separator, " ")
	}
	if cfg.WordlistPath != "" {
		t.Errorf("WordlistPath = %q, want empty", cfg.WordlistPath)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
}

func TestLoad_WordsFlag(t *testing.T) {
	tests := []struct {
		words    int
		strength int
	}{
		{12, 128},
		{15, 160},
		{18, 192},
		{21, 224},
		{24, 256},
	}
	for _, tt := range tests {
		cfg, _, err := Load([]string{"--words", strconv.Itoa(tt.words)})
		if err != nil {
			t.Fatalf("Load(--words=%d) error: %v", tt.words, err)
		}
		if cfg.Strength != tt.strength {
			t.Errorf("Load(--words=%d) Strength = %d, want %d", tt.words, cfg.Strength, tt.strength)
		}
	}
}

func TestLoad_StrengthFlag(t *testing.T) {
	cfg, _, err := Load([]string{"--strength", "160"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Strength != 160 {
		t.Errorf("Strength = %d, want 160", cfg.Strength)
	}
}

func TestLoad_InvalidWords(t *testing.T) {
	if _, _, err := Load([]string{"--words", "13"}); err == nil {
		t.Error("Load(--words=13) should fail")
	}
}

func TestLoad_InvalidStrength(t *testing.T) {
	// 136 bits would be 17 bytes of entropy: not a standard size.
	if _, _, err := Load([]string{"--strength", "136"}); err == nil {
		t.Error("Load(--strength=136) should fail")
	}
}

func TestLoad_StrengthAndWordsConflict(t *testing.T) {
	_, _, err := Load([]string{"--strength", "128", "--words", "24"})
	if err == nil {
		t.Error("Load() should reject --strength combined with --words")
	}
}

func TestLoad_SubcommandArgs(t *testing.T) {
	_, flags, err := Load([]string{"--words", "12", "check", "some", "phrase"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(flags.Args) != 3 || flags.Args[0] != "check" {
		t.Errorf("Args = %v, want [check some phrase]", flags.Args)
	}
}

func TestLoad_EmptySeparator(t *testing.T) {
	cfg, _, err := Load([]string{"--separator", ""})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Separator != "" {
		t.Errorf("Separator = %q, want empty (explicitly set)", cfg.Separator)
	}
}

func TestValidate_LogLevel(t *testing.T) {
	for _, lvl := range []string{"", "debug", "info", "warn", "error"} {
		cfg := Default()
		cfg.Log.Level = lvl
		if err := Validate(cfg); err != nil {
			t.Errorf("Validate(level=%q) error: %v", lvl, err)
		}
	}

	cfg := Default()
	cfg.Log.Level = "verbose"
	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "log.level") {
		t.Errorf("Validate(level=verbose) error = %v, want log.level complaint", err)
	}
}

func TestValidate_Nil(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) should fail")
	}
}
