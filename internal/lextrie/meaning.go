package lextrie

import "github.com/snowlion-run/botok/internal/model"

// AddMeaning appends new to senses unless an element already Equal to
// it is present, returning the (possibly unchanged) slice and whether
// an append happened. It is exported so the same idempotent-append
// rule can be applied to a sense slice outside a trie node.
func AddMeaning(senses []model.Sense, new model.Sense) ([]model.Sense, bool) {
	for _, s := range senses {
		if s.Equal(new) {
			return senses, false
		}
	}
	return append(senses, new), true
}

// addMeaning is the node-mutating form AddData/Add use internally.
func addMeaning(n *Node, s model.Sense) bool {
	updated, added := AddMeaning(n.data.Senses, s)
	n.data.Senses = updated
	return added
}
