// Package solve holds the line pipeline shared by the day solvers:
// an ordered line source, a per-line record parser, and a sum fold.
// Parsing is fail-fast; the first malformed line aborts the whole run
// with no partial result.
package solve

import (
	"bufio"
	"io"
)

// Lines reads r into a slice of lines, in order.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ParseLines parses every non-empty line with parse, preserving order.
// It returns the first parse error and no records.
func ParseLines[T any](lines []string, parse func(string) (T, error)) ([]T, error) {
	var records []T
	for _, line := range lines {
		if line == "" {
			continue
		}
		rec, err := parse(line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// SumLines parses every non-empty line and sums the parsed values.
// Zero lines sum to 0.
func SumLines(lines []string, parse func(string) (int, error)) (int, error) {
	vals, err := ParseLines(lines, parse)
	if err != nil {
		return 0, err
	}
	var sum int
	for _, v := range vals {
		sum += v
	}
	return sum, nil
}
