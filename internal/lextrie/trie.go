package lextrie

import "github.com/snowlion-run/botok/internal/tokerr"

// Trie is a LexicalTrie: dictionary entries keyed by
// ordered sequences of syllable strings.
type Trie struct {
	root *Node
}

// New creates an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Root returns the trie's root node, the starting point for a fresh Walk.
func (t *Trie) Root() *Node { return t.root }

// Add walks or extends the path for word, marks the terminal node a
// leaf, and merges data into it via updateNodeData.
func (t *Trie) Add(word []string, data *NodeData) error {
	if len(word) == 0 {
		return tokerr.ErrEmptyWord
	}
	n := t.root
	for _, syl := range word {
		n = n.getOrCreateChild(syl)
	}
	n.leaf = true
	if data != nil {
		updateNodeData(n, *data)
	}
	return nil
}

// Walk performs a single-syllable transition. from nil starts at the
// trie root.
func (t *Trie) Walk(syl string, from *Node) (*Node, bool) {
	n := from
	if n == nil {
		n = t.root
	}
	return n.child(syl)
}

// HasWord reports whether word's path terminates on a leaf node, and
// returns that node's data when it does.
func (t *Trie) HasWord(word []string) (bool, NodeData, error) {
	if len(word) == 0 {
		return false, NodeData{}, tokerr.ErrEmptyWord
	}
	n := t.root
	for _, syl := range word {
		next, ok := n.child(syl)
		if !ok {
			return false, NodeData{}, nil
		}
		n = next
	}
	return n.leaf, n.data, nil
}

// AddData attaches data to an existing terminal node. It reports false
// (not an error) when word is not an active entry.
func (t *Trie) AddData(word []string, data NodeData) (bool, error) {
	if len(word) == 0 {
		return false, tokerr.ErrEmptyWord
	}
	n := t.root
	for _, syl := range word {
		next, ok := n.child(syl)
		if !ok {
			return false, nil
		}
		n = next
	}
	if !n.leaf {
		return false, nil
	}
	updateNodeData(n, data)
	return true, nil
}

// Deactivate toggles the terminal node's leaf flag without removing
// trie structure: reverse=false deactivates (leaf=false), reverse=true
// reactivates (leaf=true); repeating the same call is idempotent.
// Reports false (not an error) when word is not present.
func (t *Trie) Deactivate(word []string, reverse bool) (bool, error) {
	if len(word) == 0 {
		return false, tokerr.ErrEmptyWord
	}
	n := t.root
	for _, syl := range word {
		next, ok := n.child(syl)
		if !ok {
			return false, nil
		}
		n = next
	}
	n.leaf = reverse
	return true, nil
}

// updateNodeData merges data into an existing node: senses
// are routed through addMeaning one at a time; scalar fields (FormFreq,
// Affixation, Sanskrit) are copied onto the node when present; Extra
// keys are copied verbatim.
func updateNodeData(n *Node, data NodeData) {
	for _, s := range data.Senses {
		addMeaning(n, s)
	}
	if data.FormFreq != nil {
		n.data.FormFreq = data.FormFreq
	}
	if data.Affixation != nil {
		n.data.Affixation = data.Affixation
	}
	if data.Sanskrit {
		n.data.Sanskrit = true
	}
	if len(data.Extra) > 0 {
		if n.data.Extra == nil {
			n.data.Extra = make(map[string]any, len(data.Extra))
		}
		for k, v := range data.Extra {
			n.data.Extra[k] = v
		}
	}
}
