// Package match implements MatchEngine: it walks the
// ChunkFrame against a LexicalTrie doing longest-match with
// backtrack-to-non-max, emitting Tokens in input order.
package match

import (
	"strings"

	"github.com/snowlion-run/botok/internal/chunk"
	"github.com/snowlion-run/botok/internal/classify"
	"github.com/snowlion-run/botok/internal/lextrie"
	"github.com/snowlion-run/botok/internal/model"
	"github.com/snowlion-run/botok/internal/tokerr"
)

// sanskritSequences are the long-vowel marker sequences that flag a
// token Sanskrit even when none of its codepoints fall in the
// Sanskrit-specific categories. Ships exactly these three and no more.
var sanskritSequences = []string{"ཱི", "ཱུ", "ྲྀ"}

// Engine walks a chunk.Frame against a lextrie.Trie to produce Tokens.
type Engine struct {
	trie *lextrie.Trie
}

// New creates a MatchEngine bound to trie. The trie must not be mutated
// while Tokenize runs.
func New(trie *lextrie.Trie) *Engine {
	return &Engine{trie: trie}
}

// attempt holds the per-outer-step state of one longest-match walk: the
// syllable frame indices walked so far, the trie node reached, and
// every leaf seen along the way (stack-style: last is longest).
type attempt struct {
	syls       []int
	node       *lextrie.Node
	maxMatch   [][]int
	matchData  map[int]lextrie.NodeData
}

// Tokenize runs the longest-match state machine over frame, returning
// one Token per committed word or passthrough segment, strictly in
// input order.
func (e *Engine) Tokenize(ct *classify.ClassifiedText, frame chunk.Frame) ([]*model.Token, error) {
	var tokens []*model.Token
	cIdx := 0
	n := len(frame)

	for cIdx < n {
		at := &attempt{matchData: make(map[int]lextrie.NodeData)}
		walker := cIdx
		var failedAtStart bool

		for {
			entry := frame[walker]
			if !entry.IsSyllable {
				failedAtStart = len(at.syls) == 0
				break
			}

			sylStr := syllableString(ct, entry.SyllableIndices)
			next, ok := e.trie.Walk(sylStr, at.node)
			if !ok {
				failedAtStart = len(at.syls) == 0
				break
			}

			at.syls = append(at.syls, walker)
			at.node = next
			if next.Leaf() {
				at.matchData[walker] = next.Data()
				at.maxMatch = append(at.maxMatch, append([]int(nil), at.syls...))
			}
			if walker == n-1 {
				// Reached end of input mid-walk: finalize this attempt
				// the same way a failed walk would.
				break
			}
			walker++
		}

		switch {
		case len(at.maxMatch) > 0:
			matched := at.maxMatch[len(at.maxMatch)-1]
			data := at.matchData[matched[len(matched)-1]]
			tok, err := buildWordToken(ct, frame, matched, &data)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			cIdx = matched[len(matched)-1] + 1

		case len(at.syls) > 0:
			tok, err := buildWordToken(ct, frame, at.syls[:1], nil)
			if err != nil {
				return nil, err
			}
			tok.StampNoPos()
			tokens = append(tokens, tok)
			cIdx = at.syls[0] + 1

		case failedAtStart && frame[walker].IsSyllable:
			tok, err := buildWordToken(ct, frame, []int{walker}, nil)
			if err != nil {
				return nil, err
			}
			tok.StampNoPos()
			tokens = append(tokens, tok)
			cIdx = walker + 1

		default:
			tokens = append(tokens, buildStandaloneToken(ct, frame[walker].Meta))
			cIdx = walker + 1
		}
	}

	return tokens, nil
}

func syllableString(ct *classify.ClassifiedText, indices []int) string {
	return ct.Slice(indices[0], len(indices))
}

// buildWordToken packs the matched syllable frame entries into one
// Token. Separators between syllables are not included in the token
// span: Text is the concatenation of each syllable's substring (tsek
// dropped), Length is the sum of syllable lengths, and SyllablesIdx /
// SyllableSpans are relative to that compacted numbering.
func buildWordToken(ct *classify.ClassifiedText, frame chunk.Frame, idxs []int, data *lextrie.NodeData) (*model.Token, error) {
	if len(idxs) == 0 {
		return nil, tokerr.NewInvariant("match.buildWordToken", "commit with empty syllable list")
	}

	var b strings.Builder
	var charTypes []int
	var syllablesIdx [][]int
	var spans []model.Span
	var absStarts []int
	cursor := 0

	for _, fi := range idxs {
		meta := frame[fi].Meta
		b.WriteString(ct.Slice(meta.Start, meta.Length))
		for o := meta.Start; o < meta.Start+meta.Length; o++ {
			charTypes = append(charTypes, int(ct.Categories[o]))
		}
		rel := make([]int, 0, len(frame[fi].SyllableIndices))
		for _, abs := range frame[fi].SyllableIndices {
			rel = append(rel, cursor+(abs-meta.Start))
		}
		syllablesIdx = append(syllablesIdx, rel)
		spans = append(spans, model.Span{Start: cursor, End: cursor + meta.Length})
		absStarts = append(absStarts, meta.Start)
		cursor += meta.Length
	}

	first := frame[idxs[0]].Meta
	tok := &model.Token{
		Text:              b.String(),
		Start:             first.Start,
		Length:            cursor,
		ChunkType:         chunk.Text,
		SyllablesIdx:      syllablesIdx,
		SyllableSpans:     spans,
		SyllableAbsStarts: absStarts,
		CharTypes:         charTypes,
	}
	tok.Sanskrit = hasSanskrit(tok)

	if data != nil {
		tok.Senses = append([]model.Sense(nil), data.Senses...)
		tok.Affixation = data.Affixation
		if data.FormFreq != nil {
			tok.Freq = data.FormFreq
		}
		if data.Sanskrit {
			tok.Sanskrit = true
		}
	}
	return tok, nil
}

// buildStandaloneToken wraps a single non-syllable ChunkFrame entry
// (space, foreign run, punctuation) as a passthrough Token carrying no
// senses: it was never looked up in the trie.
func buildStandaloneToken(ct *classify.ClassifiedText, meta chunk.Chunk) *model.Token {
	charTypes := make([]int, meta.Length)
	for i := 0; i < meta.Length; i++ {
		charTypes[i] = int(ct.Categories[meta.Start+i])
	}
	tok := &model.Token{
		Text:      ct.Slice(meta.Start, meta.Length),
		Start:     meta.Start,
		Length:    meta.Length,
		ChunkType: meta.Kind,
		CharTypes: charTypes,
	}
	tok.Sanskrit = hasSanskrit(tok)
	return tok
}

func hasSanskrit(tok *model.Token) bool {
	for _, c := range tok.CharTypes {
		switch classify.Category(c) {
		case classify.SkrtCons, classify.SkrtSubCons, classify.SkrtVow:
			return true
		}
	}
	for _, seq := range sanskritSequences {
		if strings.Contains(tok.Text, seq) {
			return true
		}
	}
	return false
}
