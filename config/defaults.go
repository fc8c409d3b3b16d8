package config

// Default returns the default configuration: a 24-word phrase from the
// built-in English wordlist, space-separated, warnings-only logging.
func Default() *Config {
	return &Config{
		Strength:  256,
		Separator: " ",
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
