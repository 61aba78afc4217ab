package botok

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDict(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.tsv")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestNew_RequiresDictionary(t *testing.T) {
	_, err := New()
	if err == nil {
		t.Fatalf("expected an error when no dictionary is configured")
	}
}

func TestNew_MissingDictionaryFile(t *testing.T) {
	_, err := New(WithDictionary(filepath.Join(t.TempDir(), "missing.tsv")))
	if err == nil {
		t.Fatalf("expected an error for a missing dictionary file")
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	dict := writeDict(t, "ཀ\tNOUN\tཀ\t1")
	tok, err := New(WithDictionary(dict))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	toks, err := tok.Tokenize("")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks == nil || len(toks) != 0 {
		t.Fatalf("expected a non-nil empty slice, got %+v", toks)
	}
}

func TestTokenize_WordAndPunctuation(t *testing.T) {
	dict := writeDict(t, "བཀྲ ཤིས\tNOUN\tབཀྲཤིས\t1")
	tok, err := New(WithDictionary(dict))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	toks, err := tok.Tokenize("བཀྲ་ཤིས།")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[0].Text != "བཀྲཤིས" || toks[0].Pos == nil || *toks[0].Pos != "NOUN" {
		t.Errorf("unexpected first token: %+v", toks[0])
	}
	if toks[1].ChunkType != "Punct" {
		t.Errorf("expected second token ChunkType=Punct, got %q", toks[1].ChunkType)
	}
}

func TestTokenize_SplitAffixesOption(t *testing.T) {
	dict := writeDict(t, "བཀྲ ས\tNOUN\tབཀྲས\t1")
	withSplit, err := New(WithDictionary(dict), WithSplitAffixes(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	toks, err := withSplit.Tokenize("བཀྲ་ས")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("expected split to produce host+affix, got %d: %+v", len(toks), toks)
	}

	noSplit, err := New(WithDictionary(dict), WithSplitAffixes(false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	toks, err = noSplit.Tokenize("བཀྲ་ས")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 1 {
		t.Fatalf("expected splitAffixes=false to keep 1 token, got %d: %+v", len(toks), toks)
	}
}

func TestTokenize_AdjustmentsDeactivateEntry(t *testing.T) {
	dict := writeDict(t, "ཀ\tNOUN\tཀ\t1")
	adjPath := filepath.Join(t.TempDir(), "adjust.txt")
	if err := os.WriteFile(adjPath, []byte("- ཀ\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	tok, err := New(WithDictionary(dict), WithAdjustments(adjPath))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	toks, err := tok.Tokenize("ཀ")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].Pos == nil || *toks[0].Pos != "NO_POS" {
		t.Fatalf("expected deactivated entry to tokenize as NO_POS, got %+v", toks)
	}
}

func TestTrie_ExposesLoadedDictionary(t *testing.T) {
	dict := writeDict(t, "ཀ\tNOUN\tཀ\t1")
	tok, err := New(WithDictionary(dict))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ok, _, err := tok.Trie().HasWord([]string{"ཀ"})
	if err != nil || !ok {
		t.Fatalf("expected Trie() to expose the loaded word, ok=%v err=%v", ok, err)
	}
}

func TestToken_Debug_ContainsCoreFields(t *testing.T) {
	dict := writeDict(t, "ཀ\tNOUN\tཀ\t1")
	tok, err := New(WithDictionary(dict))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	toks, err := tok.Tokenize("ཀ")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	debug := toks[0].Debug()
	for _, want := range []string{"text: ཀ", "pos: NOUN", "senses: |"} {
		if !strings.Contains(debug, want) {
			t.Errorf("expected Debug() output to contain %q, got:\n%s", want, debug)
		}
	}
}
