package source

import (
	"bufio"
	"io"
	"strings"

	"github.com/atomicstack/popup-pick/internal/format/table"
)

// ParseLines reads one item per non-blank line. See FromRows for how a
// delimiter changes the result.
func ParseLines(r io.Reader, delimiter string) ([]Item, error) {
	if r == nil {
		return nil, nil
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return FromRows(lines, delimiter), nil
}

// FromArgs turns positional arguments into items.
func FromArgs(args []string, delimiter string) []Item {
	lines := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			continue
		}
		lines = append(lines, arg)
	}
	return FromRows(lines, delimiter)
}

// FromRows builds items from raw rows. Without a delimiter each row is both
// ID and label. With one, the first field is the ID and the label is the row
// with its fields aligned into columns.
func FromRows(rows []string, delimiter string) []Item {
	if len(rows) == 0 {
		return nil
	}
	items := make([]Item, len(rows))
	if delimiter == "" {
		for i, row := range rows {
			items[i] = Item{ID: row, Label: row}
		}
		return items
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		fields := strings.Split(row, delimiter)
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}
		cells[i] = fields
	}
	labels := table.Format(cells, nil)
	for i := range rows {
		items[i] = Item{ID: cells[i][0], Label: labels[i]}
	}
	return items
}
