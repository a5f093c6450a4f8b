package xunit

import (
	"strings"
	"testing"
)

func TestAssertPrefix(t *testing.T) {
	tests := []struct {
		name     string
		args     []interface{}
		expected string
	}{
		{name: "no args", args: nil, expected: ""},
		{name: "plain message", args: []interface{}{"user lookup"}, expected: "user lookup: "},
		{name: "formatted message", args: []interface{}{"user %d", 42}, expected: "user 42: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assertPrefix(tt.args...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDiffValues_MultilineStringsGetUnifiedDiff(t *testing.T) {
	got := diffValues("a\nb\nc", "a\nx\nc")
	if !strings.Contains(got, "-b") || !strings.Contains(got, "+x") {
		t.Errorf("expected a unified diff, got:\n%s", got)
	}
}

func TestDiffValues_ScalarsGetWantGotPair(t *testing.T) {
	got := diffValues(1, 2)
	if !strings.Contains(got, "want: 1") || !strings.Contains(got, "got:  2") {
		t.Errorf("unexpected rendering:\n%s", got)
	}
}
