// Package tokerr defines the error taxonomy shared by the tokenization
// core: invariant violations (programmer error, fatal) and the
// EmptyWord sentinel used by trie operations on empty input.
package tokerr

import "fmt"

// ErrEmptyWord is returned by LexicalTrie operations (HasWord, AddData,
// Deactivate) when given an empty syllable sequence.
var ErrEmptyWord = fmt.Errorf("tokerr: empty word")

// Invariant reports a violation of one of the pipeline's internal
// invariants (empty syllable list at commit, out-of-range codepoint
// index, and similar programmer-error conditions). It is never expected
// on well-formed input; every string is well-formed input to this
// pipeline.
type Invariant struct {
	Where string // component/function where the invariant was checked
	What  string // the invariant that was violated
}

func (e *Invariant) Error() string {
	return fmt.Sprintf("tokerr: invariant violated in %s: %s", e.Where, e.What)
}

// NewInvariant constructs an Invariant error.
func NewInvariant(where, what string) error {
	return &Invariant{Where: where, What: what}
}
