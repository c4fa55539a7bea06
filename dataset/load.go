package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/antcolony/matrix"
)

var (
	// ErrEmptyInput is returned when a file holds no data rows.
	ErrEmptyInput = errors.New("dataset: empty input")

	// ErrRagged is returned when a row's cell count differs from the first row.
	ErrRagged = errors.New("dataset: ragged distance rows")

	// ErrParse is returned for a cell that is not a number.
	ErrParse = errors.New("dataset: cannot parse cell")
)

// LoadDistances opens path and reads a distance matrix from it.
func LoadDistances(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadDistances(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// ReadDistances parses a tab-delimited matrix. The result carries the
// distance policy of matrix.FromRows: +Inf is kept, NaN is rejected. Shape
// and value checks beyond that are left to the colony.
//
// Errors: ErrEmptyInput, ErrRagged, ErrParse (with 1-based line and column).
func ReadDistances(r io.Reader) (*matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var (
		rows   [][]float64
		record []string
		line   int
		col    int
		err    error
	)
	for {
		record, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ = cr.FieldPos(0)

		row := make([]float64, len(record))
		for col = range record {
			if row[col], err = strconv.ParseFloat(strings.TrimSpace(record[col]), 64); err != nil {
				return nil, fmt.Errorf("%w at line %d column %d: %q", ErrParse, line, col+1, record[col])
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRagged, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return m, nil
}

// LoadCities opens path and reads one city label per line.
func LoadCities(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cities, err := ReadCities(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cities, nil
}

// ReadCities returns the non-empty, trimmed lines of r.
//
// Errors: ErrEmptyInput when no label is found.
func ReadCities(r io.Reader) ([]string, error) {
	var (
		sc     = bufio.NewScanner(r)
		cities []string
		name   string
	)
	for sc.Scan() {
		if name = strings.TrimSpace(sc.Text()); name != "" {
			cities = append(cities, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return nil, ErrEmptyInput
	}

	return cities, nil
}
