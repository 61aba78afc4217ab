// Package model holds the data types shared across the tokenization
// pipeline stages: the dictionary Sense/Affixation types LexicalTrie and
// Token both need, and the Token type MatchEngine builds and
// TokenFinalizer refines.
package model

// Sense is one reading of a dictionary entry. Optional scalar
// fields are nil when absent, distinct from their zero value — this
// matters for TokenFinalizer's sense-selection bucketing, which
// partitions on whether Affixed is explicitly set at all.
type Sense struct {
	Pos         *string
	Lemma       *string
	Freq        *float64
	SenseLabel  *string
	Affixed     *bool
}

// Equal reports whether two senses are identical over the tuple
// (pos, lemma, freq, sense_label, affixed) — the equality LexicalTrie's
// AddMeaning uses to decide whether a sense is already present.
func (s Sense) Equal(o Sense) bool {
	return eqStrPtr(s.Pos, o.Pos) &&
		eqStrPtr(s.Lemma, o.Lemma) &&
		eqFloatPtr(s.Freq, o.Freq) &&
		eqStrPtr(s.SenseLabel, o.SenseLabel) &&
		eqBoolPtr(s.Affixed, o.Affixed)
}

// PopulatedCount returns the number of non-nil fields, the "most
// populated attributes" tiebreaker TokenFinalizer's sense selection
// uses within a bucket.
func (s Sense) PopulatedCount() int {
	n := 0
	if s.Pos != nil {
		n++
	}
	if s.Lemma != nil {
		n++
	}
	if s.Freq != nil {
		n++
	}
	if s.SenseLabel != nil {
		n++
	}
	if s.Affixed != nil {
		n++
	}
	return n
}

func eqStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Affixation carries affix-related hints a dictionary entry can attach
// to a node. Extra holds any further hints a dictionary source defines
// that this struct doesn't name explicitly.
type Affixation struct {
	// Aa is true when the host's lemma should gain a trailing འ before
	// its tsek once an affix is split off.
	Aa    bool
	Extra map[string]any
}
