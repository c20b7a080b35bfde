package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"static-scraper/models"
)

// Report is the console summary of one run.
type Report struct {
	SourceURL  string
	OutputPath string
	Strategy   string
	Records    int
	TopWords   models.RankedWords
	Phrases    []string
}

// Print renders the report to w.
func (r *Report) Print(w io.Writer) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  WORD ANALYSIS\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(w, "  Source   : %s\n", r.SourceURL)
	fmt.Fprintf(w, "  Strategy : %s\n", r.Strategy)
	fmt.Fprintf(w, "  Records  : %d\n", r.Records)
	fmt.Fprintf(w, "  Saved to : %s\n\n", r.OutputPath)

	fmt.Fprintf(w, "\033[1;33m  Top %d most repeated words\033[0m\n", len(r.TopWords))
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.TopWords) == 0 {
		fmt.Fprintf(w, "  No qualifying words found\n")
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"#", "Word", "Count"})
		for i, wc := range r.TopWords {
			t.AppendRow(table.Row{i + 1, wc.Word, wc.Count})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  %d new phrases\033[0m\n", len(r.Phrases))
	fmt.Fprintf(w, "  %s\n", thin)
	for i, p := range r.Phrases {
		fmt.Fprintf(w, "  %d. %s\n", i+1, p)
	}

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}
