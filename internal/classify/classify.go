package classify

import (
	"sort"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

// ClassifiedText is the immutable output of Classify: the original string
// alongside a category assigned to each of its codepoints. Invariant:
// len(Categories) == number of runes in Text.
type ClassifiedText struct {
	Text       string
	Runes      []rune
	Categories []Category
}

// Rune returns the codepoint at the given codepoint offset.
func (c *ClassifiedText) Rune(i int) rune {
	return c.Runes[i]
}

// Len returns the number of codepoints in the classified text.
func (c *ClassifiedText) Len() int {
	return len(c.Runes)
}

// Slice returns the substring covering codepoints [start, start+length).
func (c *ClassifiedText) Slice(start, length int) string {
	return string(c.Runes[start : start+length])
}

// ignoreSet builds a golang.org/x/text/runes membership Set out of a
// caller-supplied list of individual ignore codepoints. Using runes.In
// over a hand-rolled map keeps the "is r transparent" check expressed the
// same way the rest of the Unicode-range tests in this file are.
func ignoreSet(ignoreChars []rune) runes.Set {
	if len(ignoreChars) == 0 {
		return runes.In(&unicode.RangeTable{})
	}
	sorted := append([]rune(nil), ignoreChars...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	rt := &unicode.RangeTable{}
	for _, r := range sorted {
		if r <= 0xFFFF {
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(r), Hi: uint16(r), Stride: 1})
		} else {
			rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(r), Hi: uint32(r), Stride: 1})
		}
	}
	return runes.In(rt)
}

func inRange(r, lo, hi rune) bool { return r >= lo && r <= hi }

// category classifies a single codepoint, checking the ignore set first,
// then each Unicode block in turn.
func category(r rune, ignore runes.Set) Category {
	if ignore.Contains(r) {
		return Transparent
	}

	switch {
	case inRange(r, 0x0F00, 0x0FFF):
		return classifyTibetanBlock(r)

	case inRange(r, 0x0915, 0x0939):
		return SkrtCons
	case inRange(r, 0x093E, 0x094C):
		return SkrtVow
	case inRange(r, 0x0958, 0x095F):
		return SkrtSubCons

	case inRange(r, 'A', 'Z'), inRange(r, 'a', 'z'):
		return Latin

	case inRange(r, 0x4E00, 0x9FFF), inRange(r, 0x3400, 0x4DBF):
		return Cjk

	case r == ' ', r == '\t', r == '\n', r == '\r', r == '\v', r == '\f',
		r == 0x00A0, inRange(r, 0x2000, 0x2005):
		return Transparent

	default:
		return Other
	}
}

// classifyTibetanBlock resolves the U+0F00-U+0FFF sub-ranges in a fixed
// evaluation order, since several sub-ranges would otherwise overlap.
func classifyTibetanBlock(r rune) Category {
	switch {
	case inRange(r, 0x0F40, 0x0F6C):
		return Cons
	case inRange(r, 0x0F90, 0x0FBC):
		return SubCons
	case r == 0x0F7F, inRange(r, 0x0F86, 0x0F8B):
		return InSylMark
	case inRange(r, 0x0F71, 0x0F84):
		return Vow
	case r == 0x0F0B:
		return Tsek
	case inRange(r, 0x0F20, 0x0F33):
		return Numeral
	case inRange(r, 0x0F0D, 0x0F12):
		return NormalPunct
	case inRange(r, 0x0F1A, 0x0F1F):
		return Symbol
	case inRange(r, 0x0F00, 0x0F17):
		return SpecialPunct
	default:
		return Other
	}
}

// Classify assigns a Category to every codepoint of text. ignoreChars are
// caller-supplied codepoints (from config) that are always Transparent,
// regardless of their Unicode block.
//
// Classify additionally flags a codepoint Nfc when it is not already in
// Unicode Normalization Form C — i.e. norm.NFC.String of the single rune
// differs from the rune itself. This only ever fires on combining
// sequences the fast paths above didn't already claim, and is consulted
// by ChunkSymbols, which counts Nfc codepoints as part of a Sym run.
func Classify(text string, ignoreChars []rune) *ClassifiedText {
	ig := ignoreSet(ignoreChars)
	runesIn := []rune(text)
	cats := make([]Category, len(runesIn))
	for i, r := range runesIn {
		cat := category(r, ig)
		if cat == Other && !norm.NFC.IsNormalString(string(r)) {
			cat = Nfc
		}
		cats[i] = cat
	}
	return &ClassifiedText{Text: text, Runes: runesIn, Categories: cats}
}
