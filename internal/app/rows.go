package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadRows reads tab-separated step rows, one step per line. Cells are
// taken verbatim: quotes have no meaning and a row never spans lines.
// Blank lines are skipped.
func ReadRows(r io.Reader) ([][]string, error) {
	var rows [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}
