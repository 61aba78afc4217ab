package botok

import (
	"strconv"
	"strings"

	"github.com/snowlion-run/botok/internal/classify"
	"github.com/snowlion-run/botok/internal/model"
)

// Sense is one dictionary reading attached to a Token.
type Sense struct {
	Pos        *string  `json:"pos,omitempty"`
	Lemma      *string  `json:"lemma,omitempty"`
	Freq       *float64 `json:"freq,omitempty"`
	SenseLabel *string  `json:"senseLabel,omitempty"`
	Affixed    *bool    `json:"affixed,omitempty"`
}

// Affixation carries affix-related hints copied from a dictionary
// entry onto a Token.
type Affixation struct {
	Aa    bool           `json:"aa"`
	Extra map[string]any `json:"extra,omitempty"`
}

// Span is a (start, end) codepoint offset pair relative to a Token's start.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Token is one unit of tokenizer output.
type Token struct {
	Text          string  `json:"text"`
	TextCleaned   *string `json:"textCleaned,omitempty"`
	TextUnaffixed *string `json:"textUnaffixed,omitempty"`

	Start     int    `json:"start"`
	Length    int    `json:"length"`
	ChunkType string `json:"chunkType"`

	Pos   *string  `json:"pos,omitempty"`
	Lemma *string  `json:"lemma,omitempty"`
	Freq  *float64 `json:"freq,omitempty"`

	CharTypes        []string `json:"charTypes,omitempty"`
	Syllables        [][]int  `json:"syllables,omitempty"`
	SyllableStartEnd []Span   `json:"syllableStartEnd,omitempty"`

	Senses []Sense `json:"senses,omitempty"`

	Sanskrit   bool        `json:"sanskrit,omitempty"`
	Affix      bool        `json:"affix,omitempty"`
	AffixHost  bool        `json:"affixHost,omitempty"`
	Affixation *Affixation `json:"affixation,omitempty"`
}

func fromModelToken(t *model.Token) Token {
	out := Token{
		Text:          t.Text,
		TextCleaned:   t.TextCleaned,
		TextUnaffixed: t.TextUnaffixed,
		Start:         t.Start,
		Length:        t.Length,
		ChunkType:     t.ChunkType.String(),
		Pos:           t.Pos,
		Lemma:         t.Lemma,
		Freq:          t.Freq,
		Sanskrit:      t.Sanskrit,
		Affix:         t.Affix,
		AffixHost:     t.AffixHost,
	}

	if len(t.CharTypes) > 0 {
		out.CharTypes = make([]string, len(t.CharTypes))
		for i, c := range t.CharTypes {
			out.CharTypes[i] = classify.Category(c).String()
		}
	}
	if len(t.SyllablesIdx) > 0 {
		out.Syllables = t.SyllablesIdx
	}
	if len(t.SyllableSpans) > 0 {
		out.SyllableStartEnd = make([]Span, len(t.SyllableSpans))
		for i, s := range t.SyllableSpans {
			out.SyllableStartEnd[i] = Span{Start: s.Start, End: s.End}
		}
	}
	if len(t.Senses) > 0 {
		out.Senses = make([]Sense, len(t.Senses))
		for i, s := range t.Senses {
			out.Senses[i] = Sense{Pos: s.Pos, Lemma: s.Lemma, Freq: s.Freq, SenseLabel: s.SenseLabel, Affixed: s.Affixed}
		}
	}
	if t.Affixation != nil {
		out.Affixation = &Affixation{Aa: t.Affixation.Aa, Extra: t.Affixation.Extra}
	}

	return out
}

// Debug renders the token as newline-separated "key: value" pairs,
// mirroring the dictionary-style debug dump a human skims while tuning
// a dictionary or adjustment file.
func (t Token) Debug() string {
	var b strings.Builder
	b.WriteString("text: " + t.Text + "\n")
	b.WriteString("start: " + strconv.Itoa(t.Start) + "\n")
	b.WriteString("length: " + strconv.Itoa(t.Length) + "\n")
	b.WriteString("chunk_type: " + t.ChunkType + "\n")
	if t.Pos != nil {
		b.WriteString("pos: " + *t.Pos + "\n")
	}
	if t.Lemma != nil {
		b.WriteString("lemma: " + *t.Lemma + "\n")
	}
	if t.Sanskrit {
		b.WriteString("sanskrit: true\n")
	}
	if t.Affix {
		b.WriteString("affix: true\n")
	}
	if t.AffixHost {
		b.WriteString("affix_host: true\n")
	}
	for _, s := range t.Senses {
		b.WriteString("senses: | " + senseDebug(s) + " |\n")
	}
	return b.String()
}

func senseDebug(s Sense) string {
	parts := []string{
		"pos: " + strOr(s.Pos, ""),
		"freq: " + floatOr(s.Freq),
		"lemma: " + strOr(s.Lemma, ""),
		"sense: " + strOr(s.SenseLabel, ""),
		"affixed: " + boolOr(s.Affixed),
	}
	return strings.Join(parts, ", ")
}

func strOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}

func boolOr(p *bool) string {
	if p == nil {
		return ""
	}
	return strconv.FormatBool(*p)
}
