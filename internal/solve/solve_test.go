package solve

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	lines, err := Lines(strings.NewReader("one\n\ntwo\nthree"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "", "two", "three"}, lines)
}

func TestLinesEmpty(t *testing.T) {
	lines, err := Lines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestParseLines(t *testing.T) {
	t.Run("skips empty lines", func(t *testing.T) {
		got, err := ParseLines([]string{"1", "", "2", ""}, strconv.Atoi)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("fails fast on the first bad line", func(t *testing.T) {
		calls := 0
		parse := func(s string) (int, error) {
			calls++
			return strconv.Atoi(s)
		}
		got, err := ParseLines([]string{"1", "x", "3"}, parse)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, 2, calls, "parsing must stop at the bad line")
	})
}

func TestSumLines(t *testing.T) {
	got, err := SumLines([]string{"1", "2", "", "3"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestSumLinesEmptyInput(t *testing.T) {
	got, err := SumLines(nil, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestSumLinesPropagatesError(t *testing.T) {
	errBad := errors.New("bad")
	_, err := SumLines([]string{"1", "x"}, func(s string) (int, error) {
		if s == "x" {
			return 0, errBad
		}
		return strconv.Atoi(s)
	})
	assert.ErrorIs(t, err, errBad)
}
