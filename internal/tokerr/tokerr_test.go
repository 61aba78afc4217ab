package tokerr

import "testing"

func TestInvariant_Error(t *testing.T) {
	err := NewInvariant("match.buildWordToken", "commit with empty syllable list")
	want := "tokerr: invariant violated in match.buildWordToken: commit with empty syllable list"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestErrEmptyWord_Message(t *testing.T) {
	if ErrEmptyWord.Error() == "" {
		t.Fatalf("expected a non-empty message for ErrEmptyWord")
	}
}
