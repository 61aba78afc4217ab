package finalize

import "github.com/snowlion-run/botok/internal/model"

// partLemmas hardcodes the lemma surface for closed-class particles:
// these never vary by dictionary, so they are not looked up in any
// trie data. Several particles normalize to a different surface form
// (e.g. the genitive/agentive/disjunctive allomorphs all normalize to
// their base form) rather than echoing the particle itself.
var partLemmas = map[string]string{
	"འི": "གྱི", "ས": "གྱིས", "འང": "ཡང", "ག": "ག",
	"གི": "གྱི", "གིས": "གྱིས", "ཀྱི": "གྱི", "ཀྱིས": "གྱིས",
	"ལ": "ལ", "ར": "ར", "རུ": "རུ", "ན": "ན",
	"ནས": "ནས", "འམ": "འམ", "ཡང": "ཡང", "མ": "མ",
}

const nonWord = "NON_WORD"

// tsek is the syllable separator every derived lemma is terminated
// with, regardless of which of the three branches below produced it.
const tsek = "་"

// AssignDefaultLemma fills every sense lacking a lemma, skipping senses
// whose pos is explicitly NON_WORD. A pure affix token's lemma comes
// from partLemmas; an affix host whose Affixation marks Aa gains a
// trailing འ before assignment; a regular token's lemma is its own
// text. Every lemma is terminated by a tsek. A token with no senses at
// all gets a single lemma-only sense.
func AssignDefaultLemma(tok *model.Token) {
	lemma := tok.Text
	switch {
	case tok.Affix:
		if l, ok := partLemmas[tok.Text]; ok {
			lemma = l
		}
	case tok.AffixHost:
		if tok.Affixation != nil && tok.Affixation.Aa {
			lemma = tok.Text + "འ"
		}
	}
	lemma += tsek

	if len(tok.Senses) == 0 {
		l := lemma
		tok.Senses = []model.Sense{{Lemma: &l}}
		return
	}
	for i := range tok.Senses {
		s := &tok.Senses[i]
		if s.Lemma != nil {
			continue
		}
		if s.Pos != nil && *s.Pos == nonWord {
			continue
		}
		l := lemma
		s.Lemma = &l
	}
}
