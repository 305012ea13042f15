package ingest

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// maxConcurrentFetches bounds parallel posting fetches so multi-URL ingests
// stay polite to job boards.
const maxConcurrentFetches = 4

// Ingestor fetches posting URLs and parses them into Job documents.
type Ingestor struct {
	opts       *FetchOptions
	vocabulary []string
	useBrowser bool
	log        *zap.Logger
}

// IngestorConfig configures posting ingestion.
type IngestorConfig struct {
	FetchOptions *FetchOptions
	// SkillVocabulary drives skill extraction from posting text; typically
	// the career catalog's combined skill list.
	SkillVocabulary []string
	// AllowBrowser enables the headless-browser fallback for pages whose
	// plain HTTP fetch comes back nearly empty.
	AllowBrowser bool
}

// NewIngestor builds an Ingestor. A nil logger uses a no-op logger.
func NewIngestor(cfg IngestorConfig, log *zap.Logger) *Ingestor {
	if cfg.FetchOptions == nil {
		cfg.FetchOptions = DefaultFetchOptions()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Ingestor{
		opts:       cfg.FetchOptions,
		vocabulary: cfg.SkillVocabulary,
		useBrowser: cfg.AllowBrowser,
		log:        log,
	}
}

// IngestURL fetches and parses one posting.
func (in *Ingestor) IngestURL(ctx context.Context, urlStr string) (*types.Job, error) {
	page, err := FetchPage(ctx, urlStr, in.opts)
	if err != nil {
		return nil, err
	}

	if in.useBrowser && NeedsBrowser(page) {
		in.log.Info("posting content too short, retrying with browser",
			zap.String("url", urlStr), zap.Int("text_len", len(page.Text)))
		rendered, err := RenderPage(ctx, urlStr, 30*time.Second, in.log)
		if err != nil {
			// Keep the thin HTTP result rather than failing the ingest.
			in.log.Warn("browser fallback failed", zap.String("url", urlStr), zap.Error(err))
		} else {
			page = rendered
		}
	}

	job := ParsePosting(page, in.vocabulary)
	in.log.Info("ingested posting",
		zap.String("url", urlStr),
		zap.String("title", job.Title),
		zap.Int("skills", len(job.SkillsRequired)))
	return job, nil
}

// IngestURLs fetches all URLs concurrently and returns the parsed postings
// in input order. The first failure cancels the remaining fetches.
func (in *Ingestor) IngestURLs(ctx context.Context, urls []string) ([]types.Job, error) {
	jobs := make([]types.Job, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, urlStr := range urls {
		g.Go(func() error {
			job, err := in.IngestURL(gctx, urlStr)
			if err != nil {
				return err
			}
			jobs[i] = *job
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return jobs, nil
}
