// Package botok tokenizes Tibetan text: it classifies codepoints,
// groups them into maximal-run chunks, and walks a dictionary trie
// over those chunks to produce words, particles, and passthrough
// segments in input order.
package botok

import (
	"fmt"

	"github.com/snowlion-run/botok/internal/adjustments"
	"github.com/snowlion-run/botok/internal/chunk"
	"github.com/snowlion-run/botok/internal/classify"
	"github.com/snowlion-run/botok/internal/dictsource"
	"github.com/snowlion-run/botok/internal/finalize"
	"github.com/snowlion-run/botok/internal/lextrie"
	"github.com/snowlion-run/botok/internal/match"
)

// Tokenizer holds an immutable dictionary trie and the tokenize-level
// behavior switches. It is safe for concurrent use: Tokenize never
// mutates the trie or any shared state.
type Tokenizer struct {
	trie          *lextrie.Trie
	engine        *match.Engine
	finalizer     *finalize.Finalizer
	ignoreChars   []rune
	spacesAsPunct bool
}

// New creates a Tokenizer, loading the configured dictionary (and any
// adjustment file) into a trie. This does file I/O — create once, reuse
// across calls.
func New(opts ...Option) (*Tokenizer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.dictPath == "" {
		return nil, fmt.Errorf("botok: WithDictionary is required")
	}

	trie := lextrie.New()
	loader := dictsource.NewFileLoader(o.dictPath)
	if _, err := loader.Load(trie); err != nil {
		return nil, fmt.Errorf("botok: %w", err)
	}

	var adj adjustments.Adjuster = adjustments.NoopAdjuster{}
	if o.adjustPath != "" {
		adj = adjustments.NewFileAdjuster(o.adjustPath)
	}
	if _, err := adj.Apply(trie); err != nil {
		return nil, fmt.Errorf("botok: %w", err)
	}

	return &Tokenizer{
		trie:          trie,
		engine:        match.New(trie),
		finalizer:     finalize.New(o.splitAffixes),
		ignoreChars:   o.ignoreChars,
		spacesAsPunct: o.spacesAsPunct,
	}, nil
}

// Tokenize runs the full pipeline over text: classification, chunking,
// longest-match lookup against the dictionary, and affix/lemma/sense
// finalization. An empty string returns an empty, non-nil slice.
func (t *Tokenizer) Tokenize(text string) ([]Token, error) {
	ct := classify.Classify(text, t.ignoreChars)
	if ct.Len() == 0 {
		return []Token{}, nil
	}

	frame := chunk.ServeSylsToTrie(ct, t.spacesAsPunct)
	rawTokens, err := t.engine.Tokenize(ct, frame)
	if err != nil {
		return nil, fmt.Errorf("botok: %w", err)
	}

	finalTokens := t.finalizer.Finalize(rawTokens)
	out := make([]Token, len(finalTokens))
	for i, mt := range finalTokens {
		out[i] = fromModelToken(mt)
	}
	return out, nil
}

// Trie exposes the loaded dictionary for callers that need direct
// lookups (spell-checking a candidate word, inspecting entry data)
// alongside tokenization.
func (t *Tokenizer) Trie() *lextrie.Trie {
	return t.trie
}
