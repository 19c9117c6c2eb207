// Package calibration recovers the calibration values hidden in the
// day 1 document. A calibration value combines the first and last
// digit found on a line into one two-digit number.
package calibration

import (
	"errors"
	"strings"

	"github.com/louisroyer/adventofcode-2023/internal/solve"
)

// ErrNoDigit is returned for a line that contains no digit at all.
var ErrNoDigit = errors.New("calibration: line contains no digit")

// digits is the full vocabulary: 1-9 written as ASCII digits or
// spelled out in lowercase. Zero is not a digit here.
var digits = map[string]int{
	"1": 1, "one": 1,
	"2": 2, "two": 2,
	"3": 3, "three": 3,
	"4": 4, "four": 4,
	"5": 5, "five": 5,
	"6": 6, "six": 6,
	"7": 7, "seven": 7,
	"8": 8, "eight": 8,
	"9": 9, "nine": 9,
}

// Value returns the calibration value of line: ten times the first
// digit plus the last digit (a lone digit counts as both). The scan
// checks every byte position for a vocabulary token, so spelled
// digits sharing letters are all seen: "eightwothree" contains eight,
// two and three.
func Value(line string) (int, error) {
	first, last := -1, -1
	for i := range line {
		for tok, d := range digits {
			if strings.HasPrefix(line[i:], tok) {
				if first < 0 {
					first = d
				}
				last = d
				break
			}
		}
	}
	if first < 0 {
		return 0, ErrNoDigit
	}
	return first*10 + last, nil
}

// Sum adds up the calibration values of all non-empty lines.
func Sum(lines []string) (int, error) {
	return solve.SumLines(lines, Value)
}
