// Package adjustments applies post-load corrections to a LexicalTrie:
// deactivating entries that shouldn't match in a given deployment, or
// reactivating ones a prior adjustment turned off.
package adjustments

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/snowlion-run/botok/internal/lextrie"
)

// Adjuster mutates a trie after its dictionary has loaded.
type Adjuster interface {
	Apply(t *lextrie.Trie) (int, error)
}

// NoopAdjuster applies no changes. It is the default when no
// adjustment file is configured.
type NoopAdjuster struct{}

// Apply does nothing and reports zero adjustments.
func (NoopAdjuster) Apply(t *lextrie.Trie) (int, error) { return 0, nil }

// FileAdjuster reads a line-oriented adjustment file. Each line is
// "+ syllable syllable ..." to reactivate an entry or
// "- syllable syllable ..." to deactivate one; blank lines and lines
// starting with # are skipped.
type FileAdjuster struct {
	Path string
}

// NewFileAdjuster creates an Adjuster reading path.
func NewFileAdjuster(path string) *FileAdjuster {
	return &FileAdjuster{Path: path}
}

// Apply runs every line in the file against t, returning the count of
// entries it touched.
func (a *FileAdjuster) Apply(t *lextrie.Trie) (int, error) {
	f, err := os.Open(a.Path)
	if err != nil {
		return 0, fmt.Errorf("adjustments: %w", err)
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		reverse, word, err := parseDirective(line)
		if err != nil {
			return n, fmt.Errorf("adjustments: %s: %w", a.Path, err)
		}
		touched, err := t.Deactivate(word, reverse)
		if err != nil {
			return n, fmt.Errorf("adjustments: %s: %w", a.Path, err)
		}
		if touched {
			n++
		}
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("adjustments: %s: read error: %w", a.Path, err)
	}
	return n, nil
}

func parseDirective(line string) (reverse bool, word []string, err error) {
	if len(line) < 2 {
		return false, nil, fmt.Errorf("malformed directive %q", line)
	}
	sign, rest := line[0], strings.TrimSpace(line[1:])
	switch sign {
	case '+':
		reverse = true
	case '-':
		reverse = false
	default:
		return false, nil, fmt.Errorf("directive must start with + or -: %q", line)
	}
	if rest == "" {
		return false, nil, fmt.Errorf("missing syllables in directive %q", line)
	}
	return reverse, strings.Split(rest, " "), nil
}
