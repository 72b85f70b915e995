// Package deniedlist imports uploaded denied-book spreadsheets and
// applies them to the catalog.
package deniedlist

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrParse marks a structurally invalid denied-list upload:
// unreadable bytes or a missing required sheet. A workbook whose
// sheets exist but hold no rows parses successfully into empty sets.
var ErrParse = errors.New("denied list parse failed")

const (
	namesSheet   = "name"
	authorsSheet = "author"
)

// DeniedSet is the pair of name/author sets extracted from one
// upload. Order follows the sheet rows but carries no meaning.
type DeniedSet struct {
	Names   []string
	Authors []string
}

// Parse reads a two-sheet workbook (sheets "name" and "author") and
// collects the first column of each. The first row of every sheet is
// a header and is skipped; empty cells are dropped.
func Parse(raw []byte) (DeniedSet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return DeniedSet{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()

	names, err := firstColumn(f, namesSheet)
	if err != nil {
		return DeniedSet{}, err
	}
	authors, err := firstColumn(f, authorsSheet)
	if err != nil {
		return DeniedSet{}, err
	}

	return DeniedSet{Names: names, Authors: authors}, nil
}

func firstColumn(f *excelize.File, sheet string) ([]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrParse, sheet, err)
	}

	var out []string
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) == 0 || row[0] == "" {
			continue
		}
		out = append(out, row[0])
	}
	return out, nil
}
