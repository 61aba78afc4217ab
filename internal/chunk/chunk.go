package chunk

import "github.com/snowlion-run/botok/internal/classify"

// Predicate reports, for a codepoint offset i within a ClassifiedText,
// whether that codepoint belongs to the "yes" run.
type Predicate func(i int) bool

// chunkUsing is the primitive chunker: scan [start, end) and emit
// maximal runs labeled yes when pred(i) holds and no otherwise.
func chunkUsing(start, end int, pred Predicate, yes, no Kind) []Chunk {
	var out []Chunk
	if start >= end {
		return out
	}
	runStart := start
	runYes := pred(start)
	for i := start + 1; i < end; i++ {
		cur := pred(i)
		if cur != runYes {
			out = append(out, newChunk(runYes, yes, no, runStart, i-runStart))
			runStart = i
			runYes = cur
		}
	}
	out = append(out, newChunk(runYes, yes, no, runStart, end-runStart))
	return out
}

func newChunk(isYes bool, yes, no Kind, start, length int) Chunk {
	k := no
	if isYes {
		k = yes
	}
	return Chunk{Kind: k, Start: start, Length: length}
}

// ChunkBoText groups codepoints by whether they belong to the Tibetan
// (or Sanskrit) character family. Default labels: Bo / NonBo.
func ChunkBoText(ct *classify.ClassifiedText, start, end int) []Chunk {
	return ChunkBoTextInto(ct, start, end, Bo, NonBo)
}

// ChunkBoTextInto is ChunkBoText parametrized over output labels, the
// composability hook every named chunking function exposes so
// pipeChunk can rewrite its output labels for a later refinement pass.
func ChunkBoTextInto(ct *classify.ClassifiedText, start, end int, yes, no Kind) []Chunk {
	pred := func(i int) bool { return ct.Categories[i].IsSyllableEligible() }
	return chunkUsing(start, end, pred, yes, no)
}

// inPunctuationContext is the set of categories after which a Tsek or
// Transparent codepoint folds onto the preceding run as punctuation.
func inPunctuationContext(c classify.Category) bool {
	switch c {
	case classify.Symbol, classify.Numeral, classify.Other,
		classify.NormalPunct, classify.SpecialPunct,
		classify.Tsek, classify.Transparent:
		return true
	default:
		return false
	}
}

// punctuationPredicate decides which codepoints belong to a punctuation
// run. When spacesAsPunct is true, every Transparent codepoint is
// unconditionally punctuation; otherwise Tsek/Transparent codepoints
// only fold onto punctuation via inPunctuationContext, and plain
// inter-word whitespace is left for the later Latin/CJK/numeral/symbol
// refiners to absorb into the adjacent word-like run — which is what
// lets a Latin run keep its surrounding spaces.
func punctuationPredicate(ct *classify.ClassifiedText, spacesAsPunct bool) Predicate {
	return func(i int) bool {
		switch ct.Categories[i] {
		case classify.NormalPunct, classify.SpecialPunct:
			return true
		case classify.Tsek, classify.Transparent:
			if spacesAsPunct {
				return true
			}
			if i == 0 {
				return false
			}
			return inPunctuationContext(ct.Categories[i-1])
		default:
			return false
		}
	}
}

// ChunkPunctuation labels punctuation and (contextually) separator runs.
// Default labels: Punct / NonPunct.
func ChunkPunctuation(ct *classify.ClassifiedText, start, end int, spacesAsPunct bool) []Chunk {
	return ChunkPunctuationInto(ct, start, end, Punct, NonPunct, spacesAsPunct)
}

// ChunkPunctuationInto is ChunkPunctuation parametrized over output labels.
func ChunkPunctuationInto(ct *classify.ClassifiedText, start, end int, yes, no Kind, spacesAsPunct bool) []Chunk {
	return chunkUsing(start, end, punctuationPredicate(ct, spacesAsPunct), yes, no)
}

func numeralPredicate(ct *classify.ClassifiedText) Predicate {
	return func(i int) bool {
		c := ct.Categories[i]
		return c == classify.Numeral || c == classify.Transparent
	}
}

// ChunkNumbers labels numeral runs. Default labels: Num / NonNum.
func ChunkNumbers(ct *classify.ClassifiedText, start, end int) []Chunk {
	return ChunkNumbersInto(ct, start, end, Num, NonNum)
}

// ChunkNumbersInto is ChunkNumbers parametrized over output labels.
func ChunkNumbersInto(ct *classify.ClassifiedText, start, end int, yes, no Kind) []Chunk {
	return chunkUsing(start, end, numeralPredicate(ct), yes, no)
}

func symbolPredicate(ct *classify.ClassifiedText) Predicate {
	return func(i int) bool {
		c := ct.Categories[i]
		return c == classify.Symbol || c == classify.Transparent || c == classify.Nfc
	}
}

// ChunkSymbols labels symbol runs. Default labels: Sym / NonSym.
func ChunkSymbols(ct *classify.ClassifiedText, start, end int) []Chunk {
	return ChunkSymbolsInto(ct, start, end, Sym, NonSym)
}

// ChunkSymbolsInto is ChunkSymbols parametrized over output labels.
func ChunkSymbolsInto(ct *classify.ClassifiedText, start, end int, yes, no Kind) []Chunk {
	return chunkUsing(start, end, symbolPredicate(ct), yes, no)
}

func latinPredicate(ct *classify.ClassifiedText) Predicate {
	return func(i int) bool {
		c := ct.Categories[i]
		return c == classify.Latin || c == classify.Transparent
	}
}

// ChunkLatin labels Latin-script runs. Default labels: Latin / Other.
func ChunkLatin(ct *classify.ClassifiedText, start, end int) []Chunk {
	return ChunkLatinInto(ct, start, end, Latin, Other)
}

// ChunkLatinInto is ChunkLatin parametrized over output labels.
func ChunkLatinInto(ct *classify.ClassifiedText, start, end int, yes, no Kind) []Chunk {
	return chunkUsing(start, end, latinPredicate(ct), yes, no)
}

func cjkPredicate(ct *classify.ClassifiedText) Predicate {
	return func(i int) bool {
		c := ct.Categories[i]
		return c == classify.Cjk || c == classify.Transparent
	}
}

// ChunkCjk labels CJK-script runs. Default labels: Cjk / Other.
func ChunkCjk(ct *classify.ClassifiedText, start, end int) []Chunk {
	return ChunkCjkInto(ct, start, end, Cjk, Other)
}

// ChunkCjkInto is ChunkCjk parametrized over output labels.
func ChunkCjkInto(ct *classify.ClassifiedText, start, end int, yes, no Kind) []Chunk {
	return chunkUsing(start, end, cjkPredicate(ct), yes, no)
}

// refiner is a chunking function parametrized over (yes, no) output
// labels, the shape every ChunkXxxInto function above satisfies. It is
// the unit pipeChunk composes.
type refiner func(ct *classify.ClassifiedText, start, end int, yes, no Kind) []Chunk

// pipeChunk is the composition primitive threading a refinement pass
// over a prior chunk sequence: every entry of prev whose Kind equals
// targetLabel is replaced by refine applied to
// that entry's span (labeled yesLabel on match, targetLabel otherwise,
// so a later pipeChunk pass can still find it); every other entry of
// prev passes through unchanged.
func pipeChunk(ct *classify.ClassifiedText, prev []Chunk, targetLabel, yesLabel Kind, refine refiner) []Chunk {
	out := make([]Chunk, 0, len(prev))
	for _, c := range prev {
		if c.Kind != targetLabel {
			out = append(out, c)
			continue
		}
		out = append(out, refine(ct, c.Start, c.End(), yesLabel, targetLabel)...)
	}
	return out
}

// Syllabify splits a Tibetan run [start, end) into syllables at tsek
// boundaries: a codepoint is a separator when its category is Tsek or
// its value is U+0F7F ("ཿ") or
// U+0F71 ("ཱ"). The separator is a boundary, not part of either
// neighboring syllable. Empty syllables (two adjacent separators, or a
// separator at a run boundary) are dropped.
func Syllabify(ct *classify.ClassifiedText, start, end int) [][]int {
	isSeparator := func(i int) bool {
		return ct.Categories[i] == classify.Tsek || ct.Runes[i] == 0x0F7F || ct.Runes[i] == 0x0F71
	}

	var syls [][]int
	var cur []int
	for i := start; i < end; i++ {
		if isSeparator(i) {
			if len(cur) > 0 {
				syls = append(syls, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, i)
	}
	if len(cur) > 0 {
		syls = append(syls, cur)
	}
	return syls
}

// ServeSylsToTrie assembles the full chunk framework for one input: it
// runs ChunkBoText over the whole text, syllabifies every Tibetan run
// into one Frame entry per syllable, and refines every non-Tibetan run
// into typed sub-chunks (punctuation, numerals, Latin, CJK, symbols,
// falling back to Other) via a pipeChunk pipeline, one Frame entry per
// resulting sub-chunk. spacesAsPunct mirrors the Tokenize-level
// spaces-as-punctuation switch.
func ServeSylsToTrie(ct *classify.ClassifiedText, spacesAsPunct bool) Frame {
	var frame Frame
	boChunks := ChunkBoTextInto(ct, 0, ct.Len(), Bo, Other)

	for _, c := range boChunks {
		if c.Kind == Bo {
			syls := Syllabify(ct, c.Start, c.End())
			if len(syls) == 0 {
				// Pure-separator run (e.g. a lone tsek with no adjacent
				// syllable content): surface it as a standalone Punct
				// token rather than silently dropping it as a gap.
				frame = append(frame, Entry{IsSyllable: false, Meta: Chunk{Kind: Punct, Start: c.Start, Length: c.Length}})
				continue
			}
			for _, syl := range syls {
				frame = append(frame, Entry{
					IsSyllable:      true,
					SyllableIndices: syl,
					Meta:            Chunk{Kind: Text, Start: syl[0], Length: syl[len(syl)-1] - syl[0] + 1},
				})
			}
			continue
		}
		for _, sub := range refineNonBo(ct, []Chunk{c}, spacesAsPunct) {
			frame = append(frame, Entry{IsSyllable: false, Meta: sub})
		}
	}
	return frame
}

// refineNonBo threads a non-Bo run through the punctuation / numeral /
// Latin / CJK / symbol refiners in turn, each one claiming the spans
// still labeled Other and leaving the rest for the next stage. Running
// punctuation first means that with spacesAsPunct it claims whitespace
// outright; without it, only contextual trailing separators fold into
// punctuation and the rest of the whitespace is left to merge into
// whichever word-like run (Latin, CJK, numeral, symbol) it borders.
func refineNonBo(ct *classify.ClassifiedText, chunks []Chunk, spacesAsPunct bool) []Chunk {
	chunks = pipeChunk(ct, chunks, Other, Punct, func(ct *classify.ClassifiedText, start, end int, yes, no Kind) []Chunk {
		return ChunkPunctuationInto(ct, start, end, yes, no, spacesAsPunct)
	})
	chunks = pipeChunk(ct, chunks, Other, Num, ChunkNumbersInto)
	chunks = pipeChunk(ct, chunks, Other, Latin, ChunkLatinInto)
	chunks = pipeChunk(ct, chunks, Other, Cjk, ChunkCjkInto)
	chunks = pipeChunk(ct, chunks, Other, Sym, ChunkSymbolsInto)
	return chunks
}
