package model

import "github.com/snowlion-run/botok/internal/chunk"

// Span is a (start, end) pair of codepoint offsets, used for syllable
// spans relative to a token's start.
type Span struct {
	Start int
	End   int
}

// Token is a text slice plus derived metadata. Start and
// Length are codepoint offsets into the original input; Syllables*
// fields are relative to Start. Optional scalar fields are nil when
// absent so JSON/debug serialization can omit them.
type Token struct {
	Text          string
	TextCleaned   *string
	TextUnaffixed *string

	Start  int
	Length int

	ChunkType chunk.Kind

	SyllablesIdx      [][]int
	SyllableSpans     []Span
	SyllableAbsStarts []int // absolute codepoint offset of each syllable; not serialized, exists so affix splitting can recover true offsets once compacted Length has dropped the separators between syllables
	CharTypes         []int // classify.Category values, stored as int

	Pos   *string
	Lemma *string
	Freq  *float64

	Senses []Sense

	Sanskrit   bool
	Affix      bool
	AffixHost  bool
	Affixation *Affixation
}

// End returns the exclusive codepoint end offset of the token.
func (t *Token) End() int { return t.Start + t.Length }

// StampNoPos sets every sense lacking a POS to NO_POS, or creates a single
// {pos: NO_POS} sense if none exist.
func (t *Token) StampNoPos() {
	const noPos = "NO_POS"
	if len(t.Senses) == 0 {
		p := noPos
		t.Senses = []Sense{{Pos: &p}}
		t.Pos = &p
		return
	}
	for i := range t.Senses {
		if t.Senses[i].Pos == nil {
			p := noPos
			t.Senses[i].Pos = &p
		}
	}
	p := noPos
	t.Pos = &p
}
