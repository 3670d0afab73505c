package audience

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/audience-scout/internal/classify"
	"github.com/spigell/audience-scout/internal/dictionary"
)

const defaultWorkers = 8

// Pipeline classifies and scores profiles against an immutable store.
// Rows are independent, so they are processed concurrently; results are
// written in place, preserving row order.
type Pipeline struct {
	store   *dictionary.Store
	logger  *zap.Logger
	workers int
}

// NewPipeline builds a pipeline bound to the store. workers <= 0 selects
// the default concurrency.
func NewPipeline(store *dictionary.Store, logger *zap.Logger, workers int) *Pipeline {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Pipeline{
		store:   store,
		logger:  logger,
		workers: workers,
	}
}

// Run classifies and scores every profile in the collection.
// postKeywords enables the title keyword bonus when the post pipeline
// produced keywords for this run.
func (p *Pipeline) Run(ctx context.Context, profiles *Profiles, postKeywords []string) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(p.workers)

	for _, profile := range profiles.Items {
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			p.process(profile, postKeywords)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if p.logger != nil {
		p.logger.Debug("pipeline finished",
			zap.Int("profiles", profiles.Len()),
			zap.Int("excluded", profiles.ExcludedCount()),
		)
	}

	return nil
}

// process fills in the derived fields of one profile. Profiles marked
// excluded by a filter step keep score 0 and their exclusion reason, no
// matter what the attributes would have scored.
func (p *Pipeline) process(profile *Profile, postKeywords []string) {
	parsed := classify.ParseTitle(profile.Title)
	profile.Company = parsed.Company

	attrs := classify.Classify(profile.Title, parsed.Company, p.store)
	profile.RoleFunction = attrs.Function
	profile.Seniority = attrs.Seniority
	profile.CompanyType = attrs.CompanyType
	profile.Geo = attrs.Geo

	if profile.Excluded {
		profile.Score = 0
		return
	}

	result := classify.Score(attrs, profile.Title, postKeywords, p.store)
	profile.Score = result.Score
	profile.ScoreReason = result.Reason
}
