package providers

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/rafabd1/ubiq/internal/commands"
	"github.com/rafabd1/ubiq/pkg/search"
)

// maxDistance bounds how far a misspelt name may be from a command.
const maxDistance = 2

// CommandProvider implements the search.Searcher interface over the launcher commands.
type CommandProvider struct {
	registry *commands.Registry
}

// NewCommandProvider creates a provider for registry.
func NewCommandProvider(registry *commands.Registry) *CommandProvider {
	return &CommandProvider{registry: registry}
}

type scored struct {
	spec commands.Spec
	rank int // 0 exact, 1 prefix, 2+ edit distance
}

// Search returns commands matching query: the exact name first, then prefix
// matches, then names within a small edit distance. An empty query returns
// every command.
func (p *CommandProvider) Search(ctx context.Context, query string) ([]search.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))

	var matches []scored
	for _, spec := range p.registry.GetAll() {
		switch {
		case query == "":
			matches = append(matches, scored{spec: spec, rank: 1})
		case spec.Name == query:
			matches = append(matches, scored{spec: spec, rank: 0})
		case strings.HasPrefix(spec.Name, query):
			matches = append(matches, scored{spec: spec, rank: 1})
		default:
			if d := levenshtein.ComputeDistance(query, spec.Name); d <= maxDistance {
				matches = append(matches, scored{spec: spec, rank: 1 + d})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].rank < matches[j].rank
	})

	results := make([]search.Result, 0, len(matches))
	for _, m := range matches {
		results = append(results, search.Result{
			Title:   m.spec.Name,
			URL:     m.spec.Pattern(),
			Snippet: m.spec.Description,
		})
	}
	return results, nil
}

// Suggest returns the closest command name to query, or "" when nothing is close.
func (p *CommandProvider) Suggest(ctx context.Context, query string) string {
	results, err := p.Search(ctx, query)
	if err != nil || len(results) == 0 || strings.TrimSpace(query) == "" {
		return ""
	}
	return results[0].Title
}
