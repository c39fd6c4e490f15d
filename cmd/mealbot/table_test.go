package main

import (
	"strings"
	"testing"
)

func TestRenderTableRightAlignsColumns(t *testing.T) {
	out := renderTable(
		[]string{"Title", "Rating"},
		[][]string{{"Weeknight Chicken", "4.5"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	if !strings.Contains(out, "Weeknight Chicken") {
		t.Fatalf("expected row content rendered:\n%s", out)
	}
	if !strings.Contains(out, "4.5 │") {
		t.Fatalf("expected right-aligned rating cell:\n%s", out)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}}, nil)
	if !strings.Contains(out, "only") {
		t.Fatalf("expected short row rendered:\n%s", out)
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := renderTable(nil, nil, nil); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
