package dashboard

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateCutsOnRunes(t *testing.T) {
	got := truncate(strings.Repeat("я", 50), 10)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if got != strings.Repeat("я", 7)+"..." {
		t.Fatalf("unexpected truncation %q", got)
	}
}

func TestTruncateLeavesShortStrings(t *testing.T) {
	if got := truncate("приёмка", 12); got != "приёмка" {
		t.Fatalf("expected short string untouched, got %q", got)
	}
	if got := truncate("abc", 2); got != "ab" {
		t.Fatalf("expected hard cut at tiny widths, got %q", got)
	}
}

func TestRenderWritesBoardRows(t *testing.T) {
	board := NewBoard()
	board.Append(Row{
		ID:          "t-1",
		Description: "проверка запасов на стеллаже",
		Status:      "in_progress",
		Assignee:    "Ivan Petrov EMP-1",
		Class:       ClassAssigned,
		Source:      SourceAPI,
	})

	var buf bytes.Buffer
	NewRenderer(&buf).Render(board)
	out := buf.String()

	if !strings.Contains(out, "DESCRIPTION") {
		t.Fatal("expected header in rendered output")
	}
	if !strings.Contains(out, "проверка запасов") {
		t.Fatalf("expected row description in rendered output, got %q", out)
	}
	if !utf8.ValidString(out) {
		t.Fatal("rendered output is not valid UTF-8")
	}
}
