package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"static-scraper/models"
	"static-scraper/utils"
)

// ItemColumns is the fixed schema produced by ItemStrategy.
var ItemColumns = []string{"title", "price", "availability"}

// ItemSelectors locate one catalog item and its three fields. The title is
// read from the "title" attribute of the Title element; price and
// availability are the trimmed text of their elements.
type ItemSelectors struct {
	Item         string
	Title        string
	Price        string
	Availability string
}

// ItemStrategy extracts a fixed {title, price, availability} record per
// catalog item. With skipMalformed set, items missing a field are logged
// and dropped; otherwise the first one aborts extraction.
type ItemStrategy struct {
	sel           ItemSelectors
	skipMalformed bool
	logger        *utils.Logger
}

func NewItemStrategy(sel ItemSelectors, skipMalformed bool, logger *utils.Logger) *ItemStrategy {
	return &ItemStrategy{sel: sel, skipMalformed: skipMalformed, logger: logger}
}

func (s *ItemStrategy) Name() string { return "items" }

func (s *ItemStrategy) Extract(body string) (*models.RecordSet, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}

	items := doc.Find(s.sel.Item)
	s.logger.Info("[extract] Found %d items matching %q", items.Length(), s.sel.Item)
	if items.Length() == 0 {
		return nil, extractionErr(NoItemsFound, fmt.Sprintf("no element matches %q", s.sel.Item))
	}

	rs := models.NewRecordSet(ItemColumns)
	var firstErr error
	skipped := 0

	items.EachWithBreak(func(i int, item *goquery.Selection) bool {
		values, err := s.extractItem(i, item)
		if err != nil {
			if !s.skipMalformed {
				firstErr = err
				return false
			}
			s.logger.Warn("[extract] Skipping malformed item: %v", err)
			skipped++
			return true
		}
		rs.Append(values)
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}

	if skipped > 0 {
		s.logger.Warn("[extract] Skipped %d of %d items", skipped, items.Length())
	}
	return rs, nil
}

func (s *ItemStrategy) extractItem(i int, item *goquery.Selection) ([]string, error) {
	link := item.Find(s.sel.Title).First()
	title, ok := link.Attr("title")
	if link.Length() == 0 || !ok {
		return nil, missingField(i, "title")
	}

	price := item.Find(s.sel.Price).First()
	if price.Length() == 0 {
		return nil, missingField(i, "price")
	}

	availability := item.Find(s.sel.Availability).First()
	if availability.Length() == 0 {
		return nil, missingField(i, "availability")
	}

	return []string{
		strings.TrimSpace(title),
		strings.TrimSpace(price.Text()),
		strings.TrimSpace(availability.Text()),
	}, nil
}

func missingField(i int, field string) *ExtractionError {
	return &ExtractionError{Kind: MissingField, Detail: "no " + field, Item: i}
}
