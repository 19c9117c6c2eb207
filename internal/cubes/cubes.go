// Package cubes parses the day 2 game records and scores them against
// a reference bag of colored cubes. A record keeps, per color, the
// largest number of cubes shown at once across all handfuls of the
// line; that is all later stages need.
package cubes

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/louisroyer/adventofcode-2023/internal/solve"
)

// ErrBadRecord is returned for any line that does not match the game
// record grammar, including unknown colors and malformed numbers.
var ErrBadRecord = errors.New("cubes: malformed game record")

// Bag is the reference cube count per color a game is validated against.
type Bag struct {
	Red, Green, Blue int
}

// Game is one parsed game record. A color never shown in the line has
// a maximum of 0.
type Game struct {
	ID    int
	Red   int
	Green int
	Blue  int
}

var (
	gameRx = regexp.MustCompile(`^Game (\d+): *(.*)$`)
	cubeRx = regexp.MustCompile(`^(\d+) (red|green|blue)$`)
)

// ParseGame parses a line of the form
//
//	Game <id>: <qty> <color>, <qty> <color>; <qty> <color>, ...
//
// where handfuls are separated by ";" and cube counts within a
// handful by ",".
func ParseGame(line string) (Game, error) {
	m := gameRx.FindStringSubmatch(line)
	if m == nil {
		return Game{}, ErrBadRecord
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Game{}, ErrBadRecord
	}
	g := Game{ID: id}
	for _, handful := range strings.Split(m[2], ";") {
		for _, pair := range strings.Split(handful, ",") {
			cm := cubeRx.FindStringSubmatch(strings.TrimSpace(pair))
			if cm == nil {
				return Game{}, ErrBadRecord
			}
			n, err := strconv.Atoi(cm[1])
			if err != nil {
				return Game{}, ErrBadRecord
			}
			switch cm[2] {
			case "red":
				g.Red = max(g.Red, n)
			case "green":
				g.Green = max(g.Green, n)
			case "blue":
				g.Blue = max(g.Blue, n)
			}
		}
	}
	return g, nil
}

// Validate reports whether g could have been played with the cubes in
// bag: every color maximum fits the bag's count.
func Validate(g Game, bag Bag) bool {
	return g.Red <= bag.Red && g.Green <= bag.Green && g.Blue <= bag.Blue
}

// Power is the product of the minimal cube counts g requires.
func Power(g Game) int {
	return g.Red * g.Green * g.Blue
}

// IDSum parses every non-empty line and sums the IDs of the games
// that validate against bag.
func IDSum(lines []string, bag Bag) (int, error) {
	games, err := solve.ParseLines(lines, ParseGame)
	if err != nil {
		return 0, err
	}
	var sum int
	for _, g := range games {
		if Validate(g, bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

// PowerSum sums the power of every game, valid or not.
func PowerSum(lines []string) (int, error) {
	games, err := solve.ParseLines(lines, ParseGame)
	if err != nil {
		return 0, err
	}
	var sum int
	for _, g := range games {
		sum += Power(g)
	}
	return sum, nil
}
