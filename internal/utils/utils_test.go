package utils

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"lifehub/internal/query"
)

func TestParseFlexibleDateLayouts(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2026-02-05", "2026-02-05"},
		{"2026/02/05", "2026-02-05"},
		{"05/02/2026", "2026-02-05"},
		{"Feb 5, 2026", "2026-02-05"},
		{"5 Feb 2026", "2026-02-05"},
	}
	for _, tc := range cases {
		got, err := ParseFlexibleDate(tc.input, time.Local)
		if err != nil {
			t.Errorf("parse %q: %v", tc.input, err)
			continue
		}
		if DayString(got) != tc.want {
			t.Errorf("parse %q = %s, want %s", tc.input, DayString(got), tc.want)
		}
	}
}

func TestParseFlexibleDateNaturalLanguage(t *testing.T) {
	today, err := ParseFlexibleDate("today", time.Local)
	if err != nil {
		t.Fatalf("parse today: %v", err)
	}
	if DayString(today) != DayString(time.Now()) {
		t.Fatalf("today = %s, want %s", DayString(today), DayString(time.Now()))
	}

	yesterday, err := ParseFlexibleDate("yesterday", time.Local)
	if err != nil {
		t.Fatalf("parse yesterday: %v", err)
	}
	if !yesterday.Before(today) {
		t.Fatal("yesterday not before today")
	}

	if _, err := ParseFlexibleDate("", time.Local); err == nil {
		t.Fatal("empty input should error")
	}
	if _, err := ParseFlexibleDate("someday", time.Local); err == nil {
		t.Fatal("nonsense input should error")
	}
}

func TestClosestMatch(t *testing.T) {
	candidates := []string{"groceries", "transport", "dining"}

	got, ok := ClosestMatch("grocries", candidates)
	if !ok || got != "groceries" {
		t.Fatalf("match = %q ok=%v, want groceries", got, ok)
	}

	// Exact matches need no suggestion.
	if _, ok := ClosestMatch("dining", candidates); ok {
		t.Fatal("exact match should not suggest")
	}

	// Too far from anything.
	if _, ok := ClosestMatch("xylophone", candidates); ok {
		t.Fatal("distant input should not suggest")
	}
}

func TestRenderRecordListFormats(t *testing.T) {
	list := &RecordList{
		Records: []query.Record{
			{ID: "a1", Domain: query.DomainFinance, Date: "2026-02-05", Title: "Coffee", Category: "food", Amount: 4.5},
		},
		Page: query.NewPagination(1, 50, 1),
	}

	cfg := DefaultRenderConfig()
	cfg.Color = false

	cfg.Format = FormatTable
	out, err := NewRenderer(cfg).RenderRecordList(list)
	if err != nil {
		t.Fatalf("table render: %v", err)
	}
	if !strings.Contains(out, "Coffee") || !strings.Contains(out, "4.50") {
		t.Fatalf("table output missing fields:\n%s", out)
	}

	cfg.Format = FormatJSON
	out, err = NewRenderer(cfg).RenderRecordList(list)
	if err != nil {
		t.Fatalf("json render: %v", err)
	}
	if !strings.Contains(out, `"entries"`) || !strings.Contains(out, `"total": 1`) {
		t.Fatalf("json output missing envelope:\n%s", out)
	}

	cfg.Format = FormatQuiet
	out, _ = NewRenderer(cfg).RenderRecordList(list)
	if strings.TrimSpace(out) != "a1" {
		t.Fatalf("quiet output = %q, want just the id", out)
	}
}

func TestTruncateKeepsMultibyteTextValid(t *testing.T) {
	got := truncate("crème brûlée récipé", 10)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) != 10 {
		t.Fatalf("rune count = %d, want 10 in %q", utf8.RuneCountInString(got), got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("truncated string %q missing ellipsis", got)
	}
	if s := "short"; truncate(s, 10) != s {
		t.Fatalf("short string changed: %q", truncate(s, 10))
	}
}
