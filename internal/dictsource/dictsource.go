// Package dictsource loads dictionary entries from line-oriented word
// list files into a LexicalTrie, the way the rest of this codebase
// loads flat resource files: bufio.Scanner over a file, one record per
// line, errors wrapped with the file path.
package dictsource

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/snowlion-run/botok/internal/lextrie"
	"github.com/snowlion-run/botok/internal/model"
)

// Loader populates a trie from some backing resource.
type Loader interface {
	Load(t *lextrie.Trie) (int, error)
}

// FileLoader reads a tab-separated word list: syllables (joined with a
// single space), pos, lemma, freq. Only the syllables column is
// required; trailing columns may be omitted.
type FileLoader struct {
	Path string
}

// NewFileLoader creates a Loader reading path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

// Load reads every line of the file as one dictionary entry, adding it
// to t. It returns the count of entries added.
func (l *FileLoader) Load(t *lextrie.Trie) (int, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return 0, fmt.Errorf("dictsource: %w", err)
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, data, err := parseLine(line)
		if err != nil {
			return n, fmt.Errorf("dictsource: %s: %w", l.Path, err)
		}
		if err := t.Add(word, data); err != nil {
			return n, fmt.Errorf("dictsource: %s: %w", l.Path, err)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("dictsource: %s: read error: %w", l.Path, err)
	}
	return n, nil
}

func parseLine(line string) ([]string, *lextrie.NodeData, error) {
	cols := strings.Split(line, "\t")
	if len(cols) == 0 || cols[0] == "" {
		return nil, nil, fmt.Errorf("empty syllable column")
	}
	word := strings.Split(cols[0], " ")

	sense := model.Sense{}
	if len(cols) > 1 && cols[1] != "" {
		pos := cols[1]
		sense.Pos = &pos
	}
	if len(cols) > 2 && cols[2] != "" {
		lemma := cols[2]
		sense.Lemma = &lemma
	}
	if len(cols) > 3 && cols[3] != "" {
		freq, err := strconv.ParseFloat(cols[3], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("bad freq column %q: %w", cols[3], err)
		}
		sense.Freq = &freq
	}

	return word, &lextrie.NodeData{Senses: []model.Sense{sense}}, nil
}
