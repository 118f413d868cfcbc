package selection

import (
	"errors"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Separators used in range expressions
const (
	TermSeparator     = ","
	IntervalSeparator = "-"
)

// Selection is the result of parsing a range expression against a playlist size
type Selection struct {
	// Indices are 1-based, ascending and unique
	Indices []int
	// Unused lists the terms (trimmed, in input order) that selected no
	// index within the playlist bounds
	Unused []string
}

// Empty reports whether nothing was selected
func (s Selection) Empty() bool {
	return len(s.Indices) == 0
}

// PlaylistItems renders the indices in the "1,2,3" form yt-dlp expects
// for --playlist-items
func (s Selection) PlaylistItems() string {
	return FormatIndices(s.Indices)
}

// FormatIndices joins indices with commas, e.g. []int{1, 2, 5} -> "1,2,5"
func FormatIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, TermSeparator)
}

// ParseRanges parses an expression like "1-3, 5, 10-12" into the sorted,
// de-duplicated indices that lie in [1, total]. Out-of-range numbers and
// empty or inverted intervals are dropped; only syntax errors fail.
func ParseRanges(expression string, total int) ([]int, error) {
	sel, err := Parse(expression, total)
	if err != nil {
		return nil, err
	}
	return sel.Indices, nil
}

// Parse is ParseRanges that also reports which terms contributed nothing
func Parse(expression string, total int) (Selection, error) {
	indices := make(map[int]struct{})
	var unused []string

	for _, part := range strings.Split(expression, TermSeparator) {
		term := strings.TrimSpace(part)

		added, err := addTerm(indices, term, total)
		if err != nil {
			return Selection{}, err
		}
		if !added {
			unused = append(unused, term)
		}
	}

	return Selection{
		Indices: slices.Sorted(maps.Keys(indices)),
		Unused:  unused,
	}, nil
}

// addTerm adds the indices selected by a single term and reports whether
// the term selected anything within bounds
func addTerm(indices map[int]struct{}, term string, total int) (bool, error) {
	if !strings.Contains(term, IntervalSeparator) {
		num, err := parseNumber(term)
		if err != nil {
			return false, &RangeError{Kind: NonNumericTerm, Term: term}
		}
		if num < 1 || num > total {
			return false, nil
		}
		indices[num] = struct{}{}
		return true, nil
	}

	bounds := strings.Split(term, IntervalSeparator)
	if len(bounds) != 2 {
		return false, &RangeError{Kind: MalformedRange, Term: term}
	}

	start, errStart := parseNumber(strings.TrimSpace(bounds[0]))
	end, errEnd := parseNumber(strings.TrimSpace(bounds[1]))
	if errStart != nil || errEnd != nil {
		return false, &RangeError{Kind: NonNumericRange, Term: term}
	}

	start = max(1, start)
	end = min(total, end)
	if start > end {
		return false, nil
	}

	for i := start; i <= end; i++ {
		indices[i] = struct{}{}
	}
	return true, nil
}

// parseNumber is strconv.Atoi except that integers too large for int
// saturate instead of failing, so they are clamped or dropped like any
// other out-of-bounds number
func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	return n, err
}
