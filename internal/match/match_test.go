package match

import (
	"testing"

	"github.com/snowlion-run/botok/internal/chunk"
	"github.com/snowlion-run/botok/internal/classify"
	"github.com/snowlion-run/botok/internal/lextrie"
	"github.com/snowlion-run/botok/internal/model"
)

func strPtr(s string) *string { return &s }

func buildTrie(t *testing.T, words ...string) *lextrie.Trie {
	t.Helper()
	tr := lextrie.New()
	for _, w := range words {
		syls := chunkSyls(w)
		pos := strPtr("NOUN")
		if err := tr.Add(syls, &lextrie.NodeData{Senses: []model.Sense{{Pos: pos}}}); err != nil {
			t.Fatalf("Add(%q): %v", w, err)
		}
	}
	return tr
}

// chunkSyls splits a tsek-joined dictionary word into its syllable strings,
// the same shape a dictionary source hands to Trie.Add.
func chunkSyls(word string) []string {
	ct := classify.Classify(word, nil)
	syls := chunk.Syllabify(ct, 0, ct.Len())
	out := make([]string, len(syls))
	for i, syl := range syls {
		out[i] = ct.Slice(syl[0], len(syl))
	}
	return out
}

func tokenize(t *testing.T, tr *lextrie.Trie, text string) (*classify.ClassifiedText, []*model.Token) {
	t.Helper()
	ct := classify.Classify(text, nil)
	frame := chunk.ServeSylsToTrie(ct, false)
	toks, err := New(tr).Tokenize(ct, frame)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", text, err)
	}
	return ct, toks
}

func TestTokenize_LongestMatchOverShorterPrefix(t *testing.T) {
	tr := buildTrie(t, "བཀྲ", "བཀྲ་ཤིས")
	_, toks := tokenize(t, tr, "བཀྲ་ཤིས")
	if len(toks) != 1 {
		t.Fatalf("expected 1 token (longest match), got %d: %+v", len(toks), toks)
	}
	if toks[0].Text != "བཀྲཤིས" {
		t.Errorf("expected compacted text 'བཀྲཤིས' (separator dropped), got %q", toks[0].Text)
	}
	if toks[0].Length != len([]rune(toks[0].Text)) {
		t.Errorf("Length should equal the compacted text's codepoint count, got Length=%d text=%q", toks[0].Length, toks[0].Text)
	}
}

func TestTokenize_BacktrackToShorterLeafWhenLongerFails(t *testing.T) {
	tr := buildTrie(t, "བཀྲ")
	_, toks := tokenize(t, tr, "བཀྲ་ཤིས")
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[0].Text != "བཀྲ" {
		t.Errorf("expected first token 'བཀྲ', got %q", toks[0].Text)
	}
	if toks[1].Pos == nil || *toks[1].Pos != "NO_POS" {
		t.Errorf("expected unmatched trailing syllable stamped NO_POS, got %+v", toks[1].Pos)
	}
}

func TestTokenize_UnknownSingleSyllableStampedNoPos(t *testing.T) {
	tr := buildTrie(t) // empty dictionary
	_, toks := tokenize(t, tr, "ཀ")
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d: %+v", len(toks), toks)
	}
	if toks[0].Pos == nil || *toks[0].Pos != "NO_POS" {
		t.Fatalf("expected NO_POS on an unmatched syllable, got %+v", toks[0].Pos)
	}
}

func TestTokenize_PassthroughNonSyllableToken(t *testing.T) {
	tr := buildTrie(t, "ཀ")
	_, toks := tokenize(t, tr, "ཀ།")
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[1].ChunkType != chunk.Punct {
		t.Errorf("expected second token ChunkType=Punct, got %v", toks[1].ChunkType)
	}
	if len(toks[1].Senses) != 0 {
		t.Errorf("expected a passthrough token to carry no senses, got %+v", toks[1].Senses)
	}
}

func TestTokenize_MultiWordSentence(t *testing.T) {
	tr := buildTrie(t, "བཀྲ་ཤིས", "བདེ་ལེགས")
	_, toks := tokenize(t, tr, "བཀྲ་ཤིས་བདེ་ལེགས།")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens (2 words + shad), got %d: %+v", len(toks), toks)
	}
	if toks[0].Text != "བཀྲཤིས" || toks[1].Text != "བདེལེགས" {
		t.Errorf("unexpected word texts: %q, %q", toks[0].Text, toks[1].Text)
	}
	if toks[2].ChunkType != chunk.Punct {
		t.Errorf("expected trailing shad as Punct, got %v", toks[2].ChunkType)
	}
}

func TestTokenize_SyllableSpansAreCompactedNotAbsolute(t *testing.T) {
	tr := buildTrie(t, "བཀྲ་ཤིས")
	_, toks := tokenize(t, tr, "བཀྲ་ཤིས")
	tok := toks[0]
	if len(tok.SyllableSpans) != 2 {
		t.Fatalf("expected 2 syllable spans, got %+v", tok.SyllableSpans)
	}
	if tok.SyllableSpans[0].Start != 0 || tok.SyllableSpans[1].Start != tok.SyllableSpans[0].End {
		t.Errorf("expected compacted, gapless spans, got %+v", tok.SyllableSpans)
	}
	if tok.SyllableSpans[1].End != tok.Length {
		t.Errorf("expected last span to end at token Length, got %+v vs Length=%d", tok.SyllableSpans, tok.Length)
	}
}

func TestTokenize_SyllableAbsStartsRecoverRealOffsets(t *testing.T) {
	tr := buildTrie(t, "བཀྲ་ཤིས")
	ct, toks := tokenize(t, tr, "བཀྲ་ཤིས")
	tok := toks[0]
	if len(tok.SyllableAbsStarts) != 2 {
		t.Fatalf("expected 2 absolute starts, got %+v", tok.SyllableAbsStarts)
	}
	if ct.Slice(tok.SyllableAbsStarts[1], 3) != "ཤིས" {
		t.Errorf("expected second syllable's absolute start to land on 'ཤིས', got %q", ct.Slice(tok.SyllableAbsStarts[1], 3))
	}
}

func TestTokenize_EndOfInputMidWalkStillCommitsLongestMatch(t *testing.T) {
	tr := buildTrie(t, "བཀྲ་ཤིས")
	_, toks := tokenize(t, tr, "བཀྲ་ཤིས")
	if len(toks) != 1 {
		t.Fatalf("expected the whole input to commit as one token, got %d: %+v", len(toks), toks)
	}
}

func TestTokenize_SanskritFlagFromCategory(t *testing.T) {
	tr := buildTrie(t)
	_, toks := tokenize(t, tr, "क")
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d", len(toks))
	}
	if !toks[0].Sanskrit {
		t.Errorf("expected a Devanagari codepoint to flag Sanskrit")
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	tr := buildTrie(t)
	_, toks := tokenize(t, tr, "")
	if len(toks) != 0 {
		t.Fatalf("expected no tokens for empty input, got %+v", toks)
	}
}
