package config

import (
	"flag"
	"fmt"
)

// Flags holds parsed command-line flags.
type Flags struct {
	// Commands
	Help    bool
	Version bool

	// Generation
	Strength  int
	Words     int
	Wordlist  string
	Separator string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args (subcommand and its arguments)
	Args []string

	// Explicitly-set flags whose zero value is meaningful.
	SetSeparator bool
	SetLogJSON   bool
}

// ParseFlags parses command-line flags from args (os.Args[1:]).
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("phrasegen", flag.ContinueOnError)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")

	// Generation
	fs.IntVar(&f.Strength, "strength", 0, "Entropy strength in bits (128, 160, 192, 224, 256)")
	fs.IntVar(&f.Words, "words", 0, "Phrase length in words (12, 15, 18, 21, 24); alternative to --strength")
	fs.StringVar(&f.Wordlist, "wordlist", "", "Path to a 2048-entry wordlist file (default: built-in English list)")
	fs.StringVar(&f.Separator, "separator", "", "Separator between output words (default: single space)")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path (default: stderr only)")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	fs.Usage = func() {
		PrintUsage()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.SetSeparator = isFlagSet(fs, "separator")
	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()
	return f, nil
}

// wordsToStrength maps a phrase length to its entropy strength in bits.
var wordsToStrength = map[int]int{12: 128, 15: 160, 18: 192, 21: 224, 24: 256}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) error {
	if f.Strength != 0 && f.Words != 0 {
		return fmt.Errorf("set either --strength or --words, not both")
	}
	if f.Strength != 0 {
		cfg.Strength = f.Strength
	}
	if f.Words != 0 {
		strength, ok := wordsToStrength[f.Words]
		if !ok {
			return fmt.Errorf("words must be 12, 15, 18, 21 or 24, got %d", f.Words)
		}
		cfg.Strength = strength
	}
	if f.Wordlist != "" {
		cfg.WordlistPath = f.Wordlist
	}
	if f.SetSeparator {
		cfg.Separator = f.Separator
	}

	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
	return nil
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Load assembles configuration with the following precedence:
// 1. Default values
// 2. Command-line flags
func Load(args []string) (*Config, *Flags, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := Default()
	if err := ApplyFlags(cfg, flags); err != nil {
		return nil, nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, flags, nil
}

// PrintUsage prints the command-line help text.
func PrintUsage() {
	usage := `phrasegen - offline BIP-39 recovery phrase generator

Usage:
  phrasegen [options] [command]

Commands:
  generate       Generate a new recovery phrase (default)
  check          Verify a phrase's words and checksum
  fingerprint    Print the wordlist SHA-256 fingerprints
  help           Show this help message

Generation Options:
  --strength     Entropy strength in bits: 128, 160, 192, 224 or 256
                 (default: 256, a 24-word phrase)
  --words        Phrase length: 12, 15, 18, 21 or 24 words
                 (alternative to --strength)
  --wordlist     Path to a 2048-entry wordlist file, one word per line
                 (default: built-in BIP-39 English list)
  --separator    Separator between output words (default: single space)

Logging Options:
  --log-level    Log level: debug, info, warn, error (default: warn)
  --log-file     Log file path (default: stderr only)
  --log-json     Output logs as JSON

Examples:
  # Generate a 24-word phrase
  phrasegen

  # Generate a 12-word phrase
  phrasegen --words=12

  # Verify a phrase (prompted without echo on a terminal)
  phrasegen check

  # Show the wordlist hash for comparison with the published list
  phrasegen fingerprint

Note:
  The phrase is printed to stdout and exists nowhere else. Write it
  down on paper; never photograph it or paste it into another program.
`
	fmt.Print(usage)
}
