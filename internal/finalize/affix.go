// Package finalize implements TokenFinalizer: affix splitting, default
// lemma assignment, and sense selection, run once per Token emitted by
// MatchEngine before it reaches a caller.
package finalize

import "github.com/snowlion-run/botok/internal/model"

// affixForms are the closed set of grammatical particles that split off
// a host word as a separate token when they form the last syllable of a
// multi-syllable match.
var affixForms = map[string]bool{
	"འི": true, "ས": true, "འང": true, "ག": true,
	"གི": true, "གིས": true, "ཀྱི": true, "ཀྱིས": true,
	"ལ": true, "ར": true, "རུ": true, "ན": true,
	"ནས": true, "འམ": true, "ཡང": true, "མ": true,
}

// SplitAffix splits tok into a (host, affix) pair when its last syllable
// is a recognized particle, or returns (tok, nil) unchanged when it
// isn't a candidate (fewer than two syllables, or last syllable not in
// affixForms).
func SplitAffix(tok *model.Token) (*model.Token, *model.Token) {
	n := len(tok.SyllableSpans)
	if n < 2 {
		return tok, nil
	}
	last := tok.SyllableSpans[n-1]
	text := []rune(tok.Text)
	lastText := string(text[last.Start:last.End])
	if !affixForms[lastText] {
		return tok, nil
	}

	hostEnd := tok.SyllableSpans[n-2].End
	host := &model.Token{
		Text:              string(text[:hostEnd]),
		Start:             tok.Start,
		Length:            hostEnd,
		ChunkType:         tok.ChunkType,
		SyllablesIdx:      append([][]int(nil), tok.SyllablesIdx[:n-1]...),
		SyllableSpans:     append([]model.Span(nil), tok.SyllableSpans[:n-1]...),
		SyllableAbsStarts: append([]int(nil), tok.SyllableAbsStarts[:n-1]...),
		CharTypes:         append([]int(nil), tok.CharTypes[:hostEnd]...),
		Senses:            tok.Senses,
		Freq:              tok.Freq,
		Sanskrit:          tok.Sanskrit,
		Affixation:        tok.Affixation,
		AffixHost:         true,
	}

	affixLen := last.End - last.Start
	affix := &model.Token{
		Text:              lastText,
		Start:             tok.SyllableAbsStarts[n-1],
		Length:            affixLen,
		ChunkType:         tok.ChunkType,
		SyllablesIdx:      [][]int{rebase(tok.SyllablesIdx[n-1], last.Start)},
		SyllableSpans:     []model.Span{{Start: 0, End: affixLen}},
		SyllableAbsStarts: []int{tok.SyllableAbsStarts[n-1]},
		CharTypes:         append([]int(nil), tok.CharTypes[last.Start:last.End]...),
		Affix:             true,
	}

	return host, affix
}

func rebase(idx []int, offset int) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = v - offset
	}
	return out
}
