// Package config loads tokenizer configuration from the process
// environment, the way the rest of this codebase's ambient stack does
// it: plain getenv calls with typed fallbacks, no config file parser.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds every setting Tokenizer construction and the CLI need.
type Config struct {
	Dictionary  DictionaryConfig
	Classify    ClassifyConfig
	Verbosity   string // "minimal", "standard", "full" (Validate rejects anything else); the debug-text dump does not vary with it
}

// DictionaryConfig locates the word list and optional adjustment file
// a Tokenizer loads at construction time.
type DictionaryConfig struct {
	Path       string
	AdjustPath string // empty means no adjustments are applied
}

// ClassifyConfig holds the tokenize()-level behavior switches.
type ClassifyConfig struct {
	IgnoreChars   []rune
	SplitAffixes  bool
	SpacesAsPunct bool
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() Config {
	return Config{
		Dictionary: DictionaryConfig{
			Path:       getenv("BOTOK_DICT_PATH", "dictionary/words.tsv"),
			AdjustPath: os.Getenv("BOTOK_ADJUST_PATH"),
		},
		Classify: ClassifyConfig{
			IgnoreChars:   parseIgnoreChars(os.Getenv("BOTOK_IGNORE_CHARS")),
			SplitAffixes:  getenvBool("BOTOK_SPLIT_AFFIXES", true),
			SpacesAsPunct: getenvBool("BOTOK_SPACES_AS_PUNCT", false),
		},
		Verbosity: getenv("BOTOK_VERBOSITY", "standard"),
	}
}

// Validate reports configuration errors Load cannot catch by itself
// (a missing dictionary file would only surface once a Tokenizer tries
// to read it).
func (c Config) Validate() error {
	var errs []string
	if c.Dictionary.Path == "" {
		errs = append(errs, "dictionary path must not be empty")
	}
	switch c.Verbosity {
	case "minimal", "standard", "full":
	default:
		errs = append(errs, fmt.Sprintf("invalid verbosity %q: want minimal, standard, or full", c.Verbosity))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %s", strings.Join(errs, "; "))
}

func parseIgnoreChars(s string) []rune {
	if s == "" {
		return nil
	}
	return []rune(s)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
