package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/snowlion-run/botok/internal/config"
	"github.com/snowlion-run/botok/internal/logging"
	"github.com/snowlion-run/botok/pkg/botok"
)

func main() {
	debug := flag.Bool("debug", false, "print debug-text tokens instead of JSON")
	dictPath := flag.String("dict", "", "dictionary path (overrides BOTOK_DICT_PATH)")
	flag.Parse()

	cfg := config.Load()
	if *dictPath != "" {
		cfg.Dictionary.Path = *dictPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("botok: %v", err)
	}
	logging.Init(!*debug, logging.ParseLevel(cfg.Verbosity))

	tok, err := botok.New(
		botok.WithDictionary(cfg.Dictionary.Path),
		botok.WithAdjustments(cfg.Dictionary.AdjustPath),
		botok.WithIgnoreChars(cfg.Classify.IgnoreChars),
		botok.WithSplitAffixes(cfg.Classify.SplitAffixes),
		botok.WithSpacesAsPunct(cfg.Classify.SpacesAsPunct),
	)
	if err != nil {
		log.Fatalf("botok: %v", err)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("botok: reading stdin: %v", err)
	}

	tokens, err := tok.Tokenize(string(input))
	if err != nil {
		log.Fatalf("botok: %v", err)
	}
	slog.Debug("tokenized", "tokens", len(tokens))

	if *debug {
		for _, t := range tokens {
			fmt.Print(t.Debug())
			fmt.Println("---")
		}
		return
	}

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(tokens); err != nil {
		log.Fatalf("botok: encoding output: %v", err)
	}
}
