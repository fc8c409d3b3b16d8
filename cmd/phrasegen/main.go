// phrasegen generates BIP-39 recovery phrases entirely offline.
//
// Usage:
//
//	phrasegen [options] [command]
//
// Commands:
//
//	generate     Generate a new phrase (default)
//	check        Verify a phrase's words and checksum
//	fingerprint  Print the wordlist SHA-256 fingerprints
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/quillsec/phrasegen/config"
	"github.com/quillsec/phrasegen/internal/entropy"
	"github.com/quillsec/phrasegen/internal/log"
	"github.com/quillsec/phrasegen/internal/mnemonic"
	"github.com/quillsec/phrasegen/internal/wordlist"
)

const version = "0.1.0"

func main() {
	cfg, flags, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flags.Help {
		config.PrintUsage()
		return
	}
	if flags.Version {
		fmt.Printf("phrasegen version %s\n", version)
		return
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	list, err := loadWordlist(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Wordlist.Debug().
		Int("words", list.Len()).
		Str("fingerprint", list.Fingerprint()).
		Msg("wordlist validated")

	cmd := "generate"
	args := flags.Args
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	log.CLI.Debug().Str("command", cmd).Msg("dispatching")

	switch cmd {
	case "generate":
		err = cmdGenerate(cfg, list)
	case "check":
		err = cmdCheck(args, list)
	case "fingerprint":
		err = cmdFingerprint(list)
	case "help":
		config.PrintUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		config.PrintUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadWordlist returns the built-in English list or, when --wordlist is
// given, an externally supplied list. Either way the 2048-entry gate
// runs before any entropy is generated.
func loadWordlist(cfg *config.Config) (*wordlist.List, error) {
	if cfg.WordlistPath == "" {
		return wordlist.English()
	}
	f, err := os.Open(cfg.WordlistPath)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	list, err := wordlist.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load wordlist %s: %w", cfg.WordlistPath, err)
	}
	return list, nil
}

func cmdGenerate(cfg *config.Config, list *wordlist.List) error {
	gen := mnemonic.NewGenerator()
	words, err := gen.Generate(cfg.Strength, list)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Warning: stdout is not a terminal. The phrase is being written somewhere it may persist; anyone who reads it controls the wallet.")
	}
	fmt.Fprintln(os.Stderr, "Write the phrase down on paper. Do not photograph it, copy it to the clipboard, or store it unencrypted.")
	fmt.Println(strings.Join(words, cfg.Separator))
	return nil
}

func cmdCheck(args []string, list *wordlist.List) error {
	phrase := strings.Join(args, " ")
	if strings.TrimSpace(phrase) == "" {
		var err error
		phrase, err = readPhrase()
		if err != nil {
			return err
		}
	}

	if err := (mnemonic.Encoder{}).Check(phrase, list); err != nil {
		return err
	}
	fmt.Println("OK: phrase is well formed and the checksum matches")
	return nil
}

// readPhrase reads a phrase from stdin. On a terminal the input is not
// echoed, so the phrase never lands in scrollback.
func readPhrase() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Phrase: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read phrase: %w", err)
		}
		phrase := string(b)
		entropy.Zero(b)
		return phrase, nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read phrase: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func cmdFingerprint(list *wordlist.List) error {
	fmt.Printf("joined: %s\n", list.Fingerprint())
	fmt.Printf("file:   %s\n", list.FileFingerprint())
	fmt.Println("Compare the file hash against the published hash of the wordlist file.")
	return nil
}
