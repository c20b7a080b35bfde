package services

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"static-scraper/models"
	"static-scraper/utils"
)

func newTestAnalyzer() *Analyzer { return NewAnalyzer(utils.Discard()) }

func singleColumn(values ...string) *models.RecordSet {
	rs := models.NewRecordSet([]string{"text", "other"})
	for _, v := range values {
		rs.Append([]string{v, "ignored words here"})
	}
	return rs
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"ab abcd a1bcd ABCD-EFGH", []string{"abcd", "abcd", "efgh"}},
		{"", nil},
		{"abc de f", nil},
		{"Café naïve résumé", nil},
		{"word1234word", []string{"word", "word"}},
		{"It's a Light-in-the-Attic", []string{"light", "attic"}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.text)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestTopWordsTieBreakByFirstAppearance(t *testing.T) {
	got := TopWords(Tokenize("zeta beta zeta beta gamma"), 2)
	want := models.RankedWords{{Word: "zeta", Count: 2}, {Word: "beta", Count: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopWords mismatch (-want +got):\n%s", diff)
	}
}

func TestTopWordsOrdersByCount(t *testing.T) {
	got := TopWords(Tokenize("alpha beta beta gamma gamma gamma delta"), 5)
	want := models.RankedWords{
		{Word: "gamma", Count: 3},
		{Word: "beta", Count: 2},
		{Word: "alpha", Count: 1},
		{Word: "delta", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopWords mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeJoinsColumnInRecordOrder(t *testing.T) {
	rs := singleColumn("first wordy", "wordy second", "third")
	got, err := newTestAnalyzer().Analyze(rs, ColumnByName("text"), 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := []string{"wordy", "first", "second", "third"}
	if diff := cmp.Diff(want, got.Words()); diff != "" {
		t.Errorf("Analyze mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeValuesDoNotMergeAcrossRecords(t *testing.T) {
	rs := singleColumn("ab", "cd")
	got, err := newTestAnalyzer().Analyze(rs, ColumnByIndex(0), 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no words, got %v", got)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	rs := singleColumn("zeta beta", "zeta beta gamma", "omega")
	a := newTestAnalyzer()

	first, err := a.Analyze(rs, ColumnByIndex(0), 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	second, err := a.Analyze(rs, ColumnByIndex(0), 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestAnalyzeEmptyRecordSet(t *testing.T) {
	got, err := newTestAnalyzer().Analyze(models.NewRecordSet([]string{"title"}), ColumnByIndex(0), 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %#v", got)
	}
}

func TestAnalyzeUnknownColumn(t *testing.T) {
	rs := singleColumn("words")
	a := newTestAnalyzer()

	if _, err := a.Analyze(rs, ColumnByIndex(7), 5); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("index 7: expected ErrUnknownColumn, got %v", err)
	}
	if _, err := a.Analyze(rs, ColumnByName("missing"), 5); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("name missing: expected ErrUnknownColumn, got %v", err)
	}
}

func TestParseColumn(t *testing.T) {
	if c := ParseColumn("2"); c.byName || c.Index != 2 {
		t.Errorf("ParseColumn(2): got %+v", c)
	}
	if c := ParseColumn(" title "); !c.byName || c.Name != "title" {
		t.Errorf("ParseColumn(title): got %+v", c)
	}
}
