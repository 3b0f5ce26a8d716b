package model

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apparentlymart/riscv-isa-meta/bitnum"
)

// readFile reads a metadata file and returns its tokenized lines, one
// []string per non-empty line. For each raw line, everything from the
// first "#" onward is stripped *before* tokenization — this is a
// quote-blind strip, so a "#" inside a double-quoted token is still
// treated as a comment start even though bitnum.ParseLine's own quoted
// state would otherwise preserve it. This mirrors the original loader's
// behavior exactly and is a documented quirk, not a bug: see
// bitnum.ParseLine's doc comment for the corresponding note.
func readFile(dir, name string) ([][]string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	var lines [][]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if h := strings.IndexByte(line, '#'); h >= 0 {
			line = line[:h]
		}
		tokens := bitnum.ParseLine(line)
		if len(tokens) == 0 {
			continue
		}
		lines = append(lines, tokens)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return lines, nil
}
