// Package pipeline runs one fetch, extract, persist, analyze and phrase
// generation pass against a single configured page.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"static-scraper/config"
	"static-scraper/models"
	"static-scraper/scraper"
	"static-scraper/services"
	"static-scraper/storage"
	"static-scraper/utils"
)

// Stage names reported in StageError.
const (
	StageFetch   = "fetch"
	StageExtract = "extract"
	StagePersist = "persist"
	StageAnalyze = "analyze"
)

// StageError tags a failure with the stage that produced it.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return e.Stage + ": " + e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }

// Pipeline holds the collaborators for one run. Nothing is shared between
// runs, so independent instances may target different pages.
type Pipeline struct {
	cfg       *config.Config
	logger    *utils.Logger
	fetcher   scraper.Fetcher
	strategy  scraper.Strategy
	analyzer  *services.Analyzer
	templates []string
	writers   func() ([]storage.RecordWriter, error)
}

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithFetcher replaces the fetcher chosen from FETCH_MODE.
func WithFetcher(f scraper.Fetcher) Option {
	return func(p *Pipeline) { p.fetcher = f }
}

// WithTemplates replaces the phrase templates.
func WithTemplates(templates []string) Option {
	return func(p *Pipeline) { p.templates = templates }
}

// New validates cfg and wires the stage collaborators it selects.
func New(cfg *config.Config, logger *utils.Logger, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strategy, err := scraper.NewStrategy(cfg, logger)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:       cfg,
		logger:    logger,
		fetcher:   newFetcher(cfg, logger),
		strategy:  strategy,
		analyzer:  services.NewAnalyzer(logger),
		templates: services.DefaultTemplates,
	}
	p.writers = p.openWriters
	for _, opt := range opts {
		opt(p)
	}

	// Each ranked word fills exactly one template.
	if cfg.TopN != len(p.templates) {
		return nil, fmt.Errorf("config: TOP_N is %d but there are %d phrase templates", cfg.TopN, len(p.templates))
	}
	return p, nil
}

func newFetcher(cfg *config.Config, logger *utils.Logger) scraper.Fetcher {
	var f scraper.Fetcher
	switch cfg.FetchMode {
	case config.FetchBrowser:
		f = scraper.NewBrowserFetcher(cfg.UserAgent, cfg.ChromeBin, cfg.RequestTimeout(), logger)
	default:
		f = scraper.NewHTTPFetcher(map[string]string{"User-Agent": cfg.UserAgent}, cfg.RequestTimeout(), logger)
	}
	return &scraper.RetryingFetcher{
		Fetcher: f,
		Retry: &utils.RetryConfig{
			MaxAttempts: cfg.FetchAttempts,
			BaseDelay:   time.Second,
			Logger:      logger,
		},
	}
}

// openWriters is called only once records exist, so a failed fetch or
// extraction never creates or truncates the output file.
func (p *Pipeline) openWriters() ([]storage.RecordWriter, error) {
	writers := []storage.RecordWriter{storage.NewFileWriter(p.cfg.OutputPath)}
	if p.cfg.PostgresEnabled {
		pg, err := storage.NewPostgresWriter(p.cfg.DSN(), p.cfg.TargetURL)
		if err != nil {
			return nil, err
		}
		writers = append(writers, pg)
	}
	return writers, nil
}

// Run executes every stage once and stops at the first failure.
func (p *Pipeline) Run(ctx context.Context) (*services.Report, error) {
	body, err := p.fetcher.Fetch(ctx, p.cfg.TargetURL)
	if err != nil {
		return nil, &StageError{Stage: StageFetch, Err: err}
	}

	rs, err := p.strategy.Extract(body)
	if err != nil {
		return nil, &StageError{Stage: StageExtract, Err: err}
	}
	p.logger.Info("[extract] %s strategy produced %d records with columns %v",
		p.strategy.Name(), rs.Len(), rs.Columns)

	// A bad column is a configuration error; fail before anything is written.
	col := services.ParseColumn(p.cfg.TextColumn)
	if rs.Len() > 0 {
		if _, err := col.Resolve(rs); err != nil {
			return nil, &StageError{Stage: StageAnalyze, Err: err}
		}
	}

	if err := p.persist(rs); err != nil {
		return nil, &StageError{Stage: StagePersist, Err: err}
	}

	ranked, err := p.analyzer.Analyze(rs, col, p.cfg.TopN)
	if err != nil {
		return nil, &StageError{Stage: StageAnalyze, Err: err}
	}
	for _, wc := range ranked {
		p.logger.Info("[analyze] %s: %d", wc.Word, wc.Count)
	}

	phrases := services.GeneratePhrases(ranked.Words(), p.templates, p.cfg.FillerWord)

	return &services.Report{
		SourceURL:  p.cfg.TargetURL,
		OutputPath: p.cfg.OutputPath,
		Strategy:   p.strategy.Name(),
		Records:    rs.Len(),
		TopWords:   ranked,
		Phrases:    phrases,
	}, nil
}

func (p *Pipeline) persist(rs *models.RecordSet) error {
	writers, err := p.writers()
	if err != nil {
		return err
	}
	defer func() {
		for _, w := range writers {
			if cerr := w.Close(); cerr != nil {
				p.logger.Warn("[persist] close: %v", cerr)
			}
		}
	}()

	for _, w := range writers {
		if err := w.Write(rs); err != nil {
			return err
		}
	}
	p.logger.Info("[persist] Saved %d records to %s", rs.Len(), p.cfg.OutputPath)
	return nil
}
