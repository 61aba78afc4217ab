package finalize

import "github.com/snowlion-run/botok/internal/model"

// Finalizer runs the per-token finishing passes MatchEngine output
// still needs before it reaches a caller: affix splitting, default
// lemma assignment, and sense selection.
type Finalizer struct {
	splitAffixes bool
}

// New creates a Finalizer. splitAffixes mirrors the tokenize()
// split_affixes keyword: when false, words are never split into a
// host/affix pair even when their last syllable matches a particle.
func New(splitAffixes bool) *Finalizer {
	return &Finalizer{splitAffixes: splitAffixes}
}

// Finalize runs every token through affix splitting (when enabled),
// default lemma assignment, and sense selection, returning the final
// token sequence in input order. Only tokens carrying senses (words
// MatchEngine matched or flagged NO_POS) are eligible for splitting or
// lemma assignment; passthrough tokens (punctuation, foreign runs) are
// returned unchanged.
func (f *Finalizer) Finalize(tokens []*model.Token) []*model.Token {
	out := make([]*model.Token, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok.Senses) == 0 {
			out = append(out, tok)
			continue
		}

		host, affix := tok, (*model.Token)(nil)
		if f.splitAffixes {
			host, affix = SplitAffix(tok)
		}

		AssignDefaultLemma(host)
		SelectSense(host)
		out = append(out, host)

		if affix != nil {
			AssignDefaultLemma(affix)
			SelectSense(affix)
			out = append(out, affix)
		}
	}
	return out
}
