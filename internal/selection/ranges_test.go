package selection

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func seq(from, to int) []int {
	var out []int
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func TestParseRanges(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		total      int
		expected   []int
	}{
		{
			name:       "interval clamped to playlist size",
			expression: "1-1000",
			total:      52,
			expected:   seq(1, 52),
		},
		{
			name:       "mixed intervals and single numbers",
			expression: "1-3,5,10-12",
			total:      20,
			expected:   []int{1, 2, 3, 5, 10, 11, 12},
		},
		{
			name:       "interval entirely past the end",
			expression: "80-90",
			total:      52,
			expected:   nil,
		},
		{
			name:       "overlapping intervals collapse",
			expression: "1-3,2-4",
			total:      10,
			expected:   []int{1, 2, 3, 4},
		},
		{
			name:       "whitespace around terms and separators",
			expression: " 1 - 3 ,  7 ",
			total:      10,
			expected:   []int{1, 2, 3, 7},
		},
		{
			name:       "inverted interval contributes nothing",
			expression: "5-2,8",
			total:      10,
			expected:   []int{8},
		},
		{
			name:       "single numbers out of range are dropped",
			expression: "0,11,4",
			total:      10,
			expected:   []int{4},
		},
		{
			name:       "interval start below one is clamped",
			expression: "0-2",
			total:      10,
			expected:   []int{1, 2},
		},
		{
			name:       "terms out of order come back ascending",
			expression: "9,1,5-6,2",
			total:      10,
			expected:   []int{1, 2, 5, 6, 9},
		},
		{
			name:       "zero total selects nothing",
			expression: "1-5,3",
			total:      0,
			expected:   nil,
		},
		{
			name:       "single item interval",
			expression: "4-4",
			total:      10,
			expected:   []int{4},
		},
		{
			name:       "interval end larger than int is clamped",
			expression: "1-99999999999999999999",
			total:      52,
			expected:   seq(1, 52),
		},
		{
			name:       "number larger than int is dropped",
			expression: "99999999999999999999",
			total:      52,
			expected:   nil,
		},
		{
			name:       "interval starting past int range contributes nothing",
			expression: "99999999999999999999-3,2",
			total:      52,
			expected:   []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRanges(tt.expression, tt.total)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.expected) {
				t.Errorf("ParseRanges(%q, %d) = %v, expected %v", tt.expression, tt.total, got, tt.expected)
			}
		})
	}
}

func TestParseRangesErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		total      int
		kind       ErrorKind
		sentinel   error
		term       string
	}{
		{
			name:       "too many hyphens",
			expression: "1-2-3",
			total:      52,
			kind:       MalformedRange,
			sentinel:   ErrMalformedRange,
			term:       "1-2-3",
		},
		{
			name:       "word instead of number",
			expression: "abc",
			total:      52,
			kind:       NonNumericTerm,
			sentinel:   ErrNonNumericTerm,
			term:       "abc",
		},
		{
			name:       "non-numeric interval start",
			expression: "a-5",
			total:      52,
			kind:       NonNumericRange,
			sentinel:   ErrNonNumericRange,
			term:       "a-5",
		},
		{
			name:       "missing interval end",
			expression: "3-",
			total:      52,
			kind:       NonNumericRange,
			sentinel:   ErrNonNumericRange,
			term:       "3-",
		},
		{
			name:       "empty term between commas",
			expression: "1,,3",
			total:      52,
			kind:       NonNumericTerm,
			sentinel:   ErrNonNumericTerm,
			term:       "",
		},
		{
			name:       "syntax still checked when total is zero",
			expression: "1-2,x",
			total:      0,
			kind:       NonNumericTerm,
			sentinel:   ErrNonNumericTerm,
			term:       "x",
		},
		{
			name:       "error after valid terms",
			expression: "1-3, 4-5-6",
			total:      10,
			kind:       MalformedRange,
			sentinel:   ErrMalformedRange,
			term:       "4-5-6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRanges(tt.expression, tt.total)
			if err == nil {
				t.Fatalf("expected error, got %v", got)
			}

			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected *RangeError, got %T", err)
			}
			if rangeErr.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, rangeErr.Kind)
			}
			if rangeErr.Term != tt.term {
				t.Errorf("expected term %q, got %q", tt.term, rangeErr.Term)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("expected errors.Is(err, %v) to be true", tt.sentinel)
			}
			if got != nil {
				t.Errorf("expected nil indices on error, got %v", got)
			}
		})
	}
}

func TestRangeErrorMatchesOnlyItsSentinel(t *testing.T) {
	err := &RangeError{Kind: NonNumericRange, Term: "a-5"}

	if errors.Is(err, ErrMalformedRange) || errors.Is(err, ErrNonNumericTerm) {
		t.Error("NonNumericRange error should not match other sentinels")
	}
	if !strings.Contains(err.Error(), "a-5") {
		t.Errorf("error message should name the term, got %q", err.Error())
	}
}

func TestParseRangesTermOrderDoesNotMatter(t *testing.T) {
	terms := []string{"1-3", "7", "5-6", "2-4", "40"}
	want, err := ParseRanges(strings.Join(terms, ","), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	permutations := [][]int{
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 4, 0, 3, 2},
	}
	for _, order := range permutations {
		shuffled := make([]string, len(order))
		for i, j := range order {
			shuffled[i] = terms[j]
		}
		got, err := ParseRanges(strings.Join(shuffled, ","), 30)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", shuffled, err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("order %v gave %v, expected %v", shuffled, got, want)
		}
	}
}

func TestParseRangesOutputInvariants(t *testing.T) {
	expressions := []string{"1-100", "5,5,5", "3-1,2", "10-20,15-25,1", "0-0", "-0-1"}
	for _, total := range []int{0, 1, 7, 52} {
		for _, expr := range expressions {
			got, err := ParseRanges(expr, total)
			if err != nil {
				continue
			}
			for i, idx := range got {
				if idx < 1 || idx > total {
					t.Errorf("ParseRanges(%q, %d): index %d out of bounds", expr, total, idx)
				}
				if i > 0 && got[i-1] >= idx {
					t.Errorf("ParseRanges(%q, %d): not strictly ascending: %v", expr, total, got)
				}
			}
		}
	}
}

func TestParseReportsUnusedTerms(t *testing.T) {
	sel, err := Parse("1-3, 80-90, 7, 99, 5-2", 52)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(sel.Indices, []int{1, 2, 3, 7}) {
		t.Errorf("unexpected indices %v", sel.Indices)
	}
	expectedUnused := []string{"80-90", "99", "5-2"}
	if !slices.Equal(sel.Unused, expectedUnused) {
		t.Errorf("expected unused %v, got %v", expectedUnused, sel.Unused)
	}
	if sel.Empty() {
		t.Error("selection should not be empty")
	}
}

func TestSelectionPlaylistItems(t *testing.T) {
	tests := []struct {
		name     string
		indices  []int
		expected string
	}{
		{"empty", nil, ""},
		{"single", []int{4}, "4"},
		{"several", []int{1, 2, 3, 10}, "1,2,3,10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := Selection{Indices: tt.indices}
			if got := sel.PlaylistItems(); got != tt.expected {
				t.Errorf("PlaylistItems() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{MalformedRange, "MalformedRange"},
		{NonNumericRange, "NonNumericRange"},
		{NonNumericTerm, "NonNumericTerm"},
		{ErrorKind(42), "Unknown"},
	}

	for _, test := range tests {
		if got := test.kind.String(); got != test.expected {
			t.Errorf("ErrorKind(%d).String() = %s, expected %s", test.kind, got, test.expected)
		}
	}
}
