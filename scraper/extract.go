package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"static-scraper/config"
	"static-scraper/models"
	"static-scraper/utils"
)

// Strategy turns one HTML document into a RecordSet.
type Strategy interface {
	Name() string
	Extract(body string) (*models.RecordSet, error)
}

// NewStrategy picks the extraction strategy named in cfg.
func NewStrategy(cfg *config.Config, logger *utils.Logger) (Strategy, error) {
	switch cfg.Strategy {
	case config.StrategyTable:
		return NewTableStrategy(logger), nil
	case config.StrategyItems:
		return NewItemStrategy(ItemSelectors{
			Item:         cfg.ItemSelector,
			Title:        cfg.ItemTitleSelector,
			Price:        cfg.ItemPriceSelector,
			Availability: cfg.ItemAvailabilitySelector,
		}, cfg.MissingFieldPolicy == config.PolicySkip, logger), nil
	default:
		return nil, fmt.Errorf("extract: unknown strategy %q", cfg.Strategy)
	}
}

func parseDocument(body string) (*goquery.Document, error) {
	if strings.TrimSpace(body) == "" {
		return nil, extractionErr(EmptyDocument, "input is empty")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, &ExtractionError{Kind: EmptyDocument, Detail: "unparsable HTML", Item: -1, Err: err}
	}
	return doc, nil
}
