package services

import (
	"bytes"
	"strings"
	"testing"

	"static-scraper/models"
)

func TestReportPrintOrdinals(t *testing.T) {
	r := &Report{
		SourceURL:  "https://example.com/",
		OutputPath: "out.xlsx",
		Strategy:   "table",
		Records:    3,
		TopWords:   models.RankedWords{{Word: "zeta", Count: 2}},
		Phrases:    []string{"first phrase", "second phrase"},
	}

	var buf bytes.Buffer
	r.Print(&buf)
	out := buf.String()

	for _, want := range []string{"1. first phrase", "2. second phrase", "zeta", "https://example.com/"} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q", want)
		}
	}
}

func TestReportPrintNoWords(t *testing.T) {
	var buf bytes.Buffer
	(&Report{Phrases: GeneratePhrases(nil, DefaultTemplates, DefaultFiller)}).Print(&buf)

	if !strings.Contains(buf.String(), "No qualifying words found") {
		t.Error("expected empty word notice")
	}
	if !strings.Contains(buf.String(), "5. Reflexionar sobre 'conocimiento' nos ayuda a crecer.") {
		t.Error("expected filler phrase with ordinal 5")
	}
}
