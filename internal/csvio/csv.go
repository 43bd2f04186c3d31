// Package csvio implements the inventory interchange format: one
// comma-separated line per item with double-quoted name and category
// fields. Embedded quotes and commas inside quoted fields are not
// escaped; round-trips are only guaranteed for values free of them.
package csvio

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	apperrors "invtrack/internal/errors"
	"invtrack/internal/models"
)

// Header is the fixed first line of every export.
const Header = "ID,Name,Category,Quantity,Price,LowStockThreshold"

// rowPattern matches an exported line. Name, category, quantity and
// price are required; the threshold is optional and defaults to zero.
// Trailing garbage after the matched fields is ignored.
var rowPattern = regexp.MustCompile(`^\s*-?\d+,"([^"]+)","([^"]+)",(-?\d+),(-?\d+(?:\.\d+)?)(?:,(-?\d+))?`)

// Row is one successfully parsed import line.
type Row struct {
	Name              string
	Category          string
	Quantity          int
	Price             float64
	LowStockThreshold int
}

// Write serializes the items, header first, with two-decimal prices.
func Write(w io.Writer, items []models.Item) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for i := range items {
		it := &items[i]
		_, err := fmt.Fprintf(w, "%d,\"%s\",\"%s\",%d,%.2f,%d\n",
			it.ID, it.Name, it.Category, it.Quantity, it.Price, it.LowStockThreshold)
		if err != nil {
			return err
		}
	}
	return nil
}

// ParseLine extracts a row from one line, reporting whether it parsed.
func ParseLine(line string) (Row, bool) {
	m := rowPattern.FindStringSubmatch(line)
	if m == nil {
		return Row{}, false
	}

	quantity, err := strconv.Atoi(m[3])
	if err != nil {
		return Row{}, false
	}
	price, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return Row{}, false
	}

	threshold := 0
	if m[5] != "" {
		threshold, err = strconv.Atoi(m[5])
		if err != nil {
			return Row{}, false
		}
	}

	return Row{
		Name:              m[1],
		Category:          m[2],
		Quantity:          quantity,
		Price:             price,
		LowStockThreshold: threshold,
	}, true
}

// Read parses an import stream. The header line is always discarded;
// lines that fail to parse are counted as skipped rather than aborting
// the whole import.
func Read(r io.Reader) (rows []Row, skipped int, err error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if scanErr := scanner.Err(); scanErr != nil {
			return nil, 0, apperrors.Wrap(apperrors.ErrImportFailed, scanErr)
		}
		return nil, 0, apperrors.WithMessage(apperrors.ErrImportFailed, "file is empty")
	}

	for scanner.Scan() {
		row, ok := ParseLine(scanner.Text())
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrImportFailed, scanErr)
	}
	return rows, skipped, nil
}
