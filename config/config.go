// Package config handles phrasegen's runtime configuration.
//
// All settings come from built-in defaults overridden by command-line
// flags. Nothing is read from or written to disk: the tool keeps no
// state between runs.
package config

// Config holds the settings for a single invocation.
type Config struct {
	// Generation
	Strength     int    // entropy strength in bits: 128, 160, 192, 224 or 256
	WordlistPath string // external wordlist file; empty means the built-in English list
	Separator    string // separator between output words

	// Logging
	Log LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	File  string
	JSON  bool
}
