package finalize

import "github.com/snowlion-run/botok/internal/model"

// SelectSense partitions tok's senses into non-affixed, unspecified,
// and affixed buckets (by the tri-state Sense.Affixed), picks the
// highest-priority non-empty bucket in that order, breaks ties within
// it by PopulatedCount, and copies pos/lemma/freq onto the token's
// top-level fields.
func SelectSense(tok *model.Token) {
	if len(tok.Senses) == 0 {
		return
	}

	var nonAffixed, unspecified, affixed []model.Sense
	for _, s := range tok.Senses {
		switch {
		case s.Affixed == nil:
			unspecified = append(unspecified, s)
		case *s.Affixed:
			affixed = append(affixed, s)
		default:
			nonAffixed = append(nonAffixed, s)
		}
	}

	var chosen model.Sense
	for _, bucket := range [][]model.Sense{nonAffixed, unspecified, affixed} {
		if len(bucket) == 0 {
			continue
		}
		chosen = bucket[0]
		for _, s := range bucket[1:] {
			if s.PopulatedCount() > chosen.PopulatedCount() {
				chosen = s
			}
		}
		break
	}

	tok.Pos = chosen.Pos
	tok.Lemma = chosen.Lemma
	tok.Freq = chosen.Freq
}
