package services

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"static-scraper/models"
	"static-scraper/utils"
)

// ErrUnknownColumn is returned when the analyzed column is not in the schema.
var ErrUnknownColumn = errors.New("analyze: unknown column")

// wordRegexp matches maximal runs of at least four ASCII letters. Input is
// lowercased first, so upper-case letters never reach it.
var wordRegexp = regexp.MustCompile(`[a-z]{4,}`)

// ColumnRef designates the text column either by position or by header name.
type ColumnRef struct {
	Index  int
	Name   string
	byName bool
}

func ColumnByIndex(i int) ColumnRef { return ColumnRef{Index: i} }
func ColumnByName(n string) ColumnRef { return ColumnRef{Name: n, byName: true} }

// ParseColumn treats an integer string as a position and anything else as a name.
func ParseColumn(s string) ColumnRef {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return ColumnByIndex(n)
	}
	return ColumnByName(s)
}

func (c ColumnRef) String() string {
	if c.byName {
		return strconv.Quote(c.Name)
	}
	return "#" + strconv.Itoa(c.Index)
}

// Resolve returns the column position within rs or ErrUnknownColumn.
func (c ColumnRef) Resolve(rs *models.RecordSet) (int, error) {
	idx := c.Index
	if c.byName {
		idx = rs.ColumnIndex(c.Name)
	}
	if idx < 0 || idx >= len(rs.Columns) {
		return 0, fmt.Errorf("%w %s (have %v)", ErrUnknownColumn, c, rs.Columns)
	}
	return idx, nil
}

// Analyzer ranks the most frequent words of one RecordSet column.
type Analyzer struct {
	logger *utils.Logger
}

func NewAnalyzer(logger *utils.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze joins the column values with single spaces, tokenizes the
// lowercased text and returns at most topN words by descending count.
// Ties keep first-appearance order. An empty RecordSet or a column without
// qualifying words yields an empty result, not an error.
func (a *Analyzer) Analyze(rs *models.RecordSet, col ColumnRef, topN int) (models.RankedWords, error) {
	if rs.Len() == 0 || topN <= 0 {
		return models.RankedWords{}, nil
	}

	idx, err := col.Resolve(rs)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, rs.Len())
	for _, r := range rs.Records {
		values = append(values, r.Values[idx])
	}

	tokens := Tokenize(strings.Join(values, " "))
	ranked := TopWords(tokens, topN)
	a.logger.Debug("[analyze] column %s: %d tokens, %d ranked", col, len(tokens), len(ranked))
	return ranked, nil
}

// Tokenize lowercases text and returns every run of four or more ASCII
// letters, in order. Any other character ends a run.
func Tokenize(text string) []string {
	return wordRegexp.FindAllString(strings.ToLower(text), -1)
}

// TopWords counts tokens and returns the n most common. Equal counts are
// ordered by the token's first occurrence.
func TopWords(tokens []string, n int) models.RankedWords {
	counts := make(map[string]int)
	var ranked models.RankedWords
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			ranked = append(ranked, models.WordCount{Word: tok})
		}
		counts[tok]++
	}
	for i := range ranked {
		ranked[i].Count = counts[ranked[i].Word]
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	if ranked == nil {
		ranked = models.RankedWords{}
	}
	return ranked
}
