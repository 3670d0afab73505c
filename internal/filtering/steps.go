package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/audience-scout/internal/audience"
	"github.com/spigell/audience-scout/internal/classify"
)

// Rows whose title carries this marker are scraped follower counters,
// not professional titles.
const noiseMarker = "followers"

type noiseFilter struct{}

// NewNoise creates a filter that drops rows with scraper noise instead
// of a title.
func NewNoise() Filter {
	return &noiseFilter{}
}

func (f *noiseFilter) Name() string { return "noise" }

func (f *noiseFilter) Disable(string) {}

func (f *noiseFilter) IsEnabled() bool { return true }

func (f *noiseFilter) Validate(*Config) error { return nil }

func (f *noiseFilter) Apply(_ context.Context, deps Deps, p *audience.Profiles) (*audience.Profiles, Step, error) {
	initial := p.Len()

	var dropped []string
	kept := p.Items[:0]
	for _, profile := range p.Items {
		if strings.Contains(strings.ToLower(profile.Title), noiseMarker) {
			dropped = append(dropped, profile.Name)
			continue
		}
		kept = append(kept, profile)
	}
	p.Items = kept

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("dropping noise rows without a real title",
			zap.Strings("dropped_profiles", dropped),
			zap.Int("profiles_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(dropped), Left: p.Len()}, nil
}

func (f *noiseFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true}
}

type exclusionFilter struct{}

// NewExclusion creates the filter that applies the configured exclusion
// list: a matching profile is marked excluded with score 0 and the
// triggering term as its reason. Rows are kept in the collection.
func NewExclusion() Filter {
	return &exclusionFilter{}
}

func (f *exclusionFilter) Name() string { return "exclusion" }

func (f *exclusionFilter) Disable(string) {}

func (f *exclusionFilter) IsEnabled() bool { return true }

func (f *exclusionFilter) Validate(*Config) error { return nil }

func (f *exclusionFilter) Apply(_ context.Context, deps Deps, p *audience.Profiles) (*audience.Profiles, Step, error) {
	initial := p.Len()
	marked := markExcluded(deps, p)

	if deps.Logger != nil && len(marked) > 0 {
		deps.Logger.Info("excluding profiles by configured terms",
			zap.Strings("excluded_profiles", marked),
			zap.Int("profiles_left", p.Len()-len(marked)),
		)
	}

	return p, Step{Initial: initial, Dropped: len(marked), Left: initial - len(marked)}, nil
}

func (f *exclusionFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true}
}

type excludeFileFilter struct {
	path string

	disabled bool
	reason   string
}

// NewExcludeFile creates a filter that applies extra exclusion terms
// persisted in a file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *excludeFileFilter) IsEnabled() bool { return !f.disabled }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, p *audience.Profiles) (*audience.Profiles, Step, error) {
	initial := p.Len()
	if f.path == "" {
		return p, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	excluded, err := audience.GetExcludedTermsFromFile(f.path)
	if err != nil {
		return p, Step{}, err
	}

	fileDeps := deps
	fileDeps.Store = deps.Store.WithExclusions(excluded.Terms())
	marked := markExcluded(fileDeps, p)

	if deps.Logger != nil && len(marked) > 0 {
		deps.Logger.Info("excluding profiles based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_profiles", marked),
		)
	}

	return p, Step{Initial: initial, Dropped: len(marked), Left: initial - len(marked)}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

// markExcluded marks every not-yet-excluded profile whose title or
// extracted company contains an exclusion term of the store. Returns the
// names of newly marked profiles.
func markExcluded(deps Deps, p *audience.Profiles) []string {
	var marked []string
	for _, profile := range p.Items {
		if profile.Excluded {
			continue
		}

		company := classify.ParseTitle(profile.Title).Company
		term, hit := deps.Store.ExclusionMatch(profile.Title, company)
		if !hit {
			continue
		}

		profile.Excluded = true
		profile.Score = 0
		profile.ScoreReason = term
		marked = append(marked, profile.Name)
	}
	return marked
}
