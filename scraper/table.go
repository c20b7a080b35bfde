package scraper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"static-scraper/models"
	"static-scraper/utils"
)

// TableStrategy reads the first non-empty <table> in document order. Its
// header row names the columns and every later row becomes a Record.
type TableStrategy struct {
	logger *utils.Logger
}

func NewTableStrategy(logger *utils.Logger) *TableStrategy {
	return &TableStrategy{logger: logger}
}

func (s *TableStrategy) Name() string { return "table" }

func (s *TableStrategy) Extract(body string) (*models.RecordSet, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}

	var tables []*goquery.Selection
	doc.Find("table").Each(func(_ int, t *goquery.Selection) {
		if len(ownRows(t)) > 0 {
			tables = append(tables, t)
		}
	})

	s.logger.Info("[extract] Found %d tables", len(tables))
	if len(tables) == 0 {
		return nil, extractionErr(NoTableFound, "document has no table with rows")
	}
	if len(tables) > 1 {
		s.logger.Warn("[extract] Using the first table, %d others ignored", len(tables)-1)
	}

	return tableToRecords(tables[0]), nil
}

// ownRows returns the <tr> elements of t that are not inside a nested table,
// skipping rows without any cell.
func ownRows(t *goquery.Selection) []*goquery.Selection {
	tableNode := t.Get(0)
	var rows []*goquery.Selection
	t.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.Closest("table").Get(0) != tableNode {
			return
		}
		if tr.ChildrenFiltered("th, td").Length() == 0 {
			return
		}
		rows = append(rows, tr)
	})
	return rows
}

func tableToRecords(t *goquery.Selection) *models.RecordSet {
	rows := ownRows(t)

	// The first <thead> row names the columns and further <thead> rows are
	// dropped. Without a <thead> the first row is the header.
	headerIdx := 0
	hasThead := false
	for i, tr := range rows {
		if inThead(tr) {
			headerIdx = i
			hasThead = true
			break
		}
	}

	rs := models.NewRecordSet(headerNames(rowCells(rows[headerIdx])))
	for i, tr := range rows {
		if i == headerIdx || (hasThead && inThead(tr)) {
			continue
		}
		cells := rowCells(tr)
		if allBlank(cells) {
			continue
		}
		rs.Append(cells)
	}
	return rs
}

func inThead(tr *goquery.Selection) bool {
	return tr.Parent().Is("thead")
}

// rowCells returns the cleaned text of each cell, repeated across colspan.
func rowCells(tr *goquery.Selection) []string {
	var cells []string
	tr.ChildrenFiltered("th, td").Each(func(_ int, td *goquery.Selection) {
		n := td.Get(0)
		text := cellText(n)
		for i := spanAttr(n, "colspan"); i > 0; i-- {
			cells = append(cells, text)
		}
	})
	return cells
}

func cellText(n *html.Node) string {
	return cleanText(nodeText(n))
}

// headerNames fills blank names and disambiguates duplicates.
func headerNames(cells []string) []string {
	names := make([]string, len(cells))
	seen := make(map[string]int, len(cells))
	for i, c := range cells {
		name := c
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}

func allBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
