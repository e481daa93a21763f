package sorter

import (
	"testing"

	"github.com/s3h4n/DL-Sorter/internal/rules"
)

func TestClassify(t *testing.T) {
	table := &rules.Table{Rules: []rules.Rule{
		{Category: "Images", Suffixes: []string{".png", ".jpg"}, Destination: "/dl/Images"},
		{Category: "Archives", Suffixes: []string{".tar.gz", ".zip"}, Destination: "/dl/Archives"},
		{Category: "Compressed", Suffixes: []string{".gz", ".png"}, Destination: "/dl/Compressed"},
	}}

	testCases := []struct {
		filename string
		category string
		ok       bool
	}{
		{"a.png", "Images", true},
		{"photo.jpg", "Images", true},
		{"src.tar.gz", "Archives", true},
		{"log.gz", "Compressed", true},
		{"A.PNG", "", false},
		{"c.unknownext", "", false},
		{"png", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			rule, ok := Classify(tc.filename, table)
			if ok != tc.ok {
				t.Fatalf("Classify(%q) ok = %v, want %v", tc.filename, ok, tc.ok)
			}
			if rule.Category != tc.category {
				t.Errorf("Classify(%q) = %q, want %q", tc.filename, rule.Category, tc.category)
			}
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	first := rules.Rule{Category: "B", Suffixes: []string{".pdf"}, Destination: "/b"}
	second := rules.Rule{Category: "A", Suffixes: []string{".txt", ".pdf"}, Destination: "/a"}

	rule, ok := Classify("x.pdf", &rules.Table{Rules: []rules.Rule{first, second}})
	if !ok || rule.Category != "B" {
		t.Errorf("expected B, got %q", rule.Category)
	}

	rule, ok = Classify("x.pdf", &rules.Table{Rules: []rules.Rule{second, first}})
	if !ok || rule.Category != "A" {
		t.Errorf("expected A after reordering, got %q", rule.Category)
	}
}

func TestClassify_NilTable(t *testing.T) {
	if _, ok := Classify("a.png", nil); ok {
		t.Error("expected no match for nil table")
	}
}
