package scale

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"
)

// SetRequest generates several named accents against one gray and
// background, e.g. brand, success, warning, error and info colours.
type SetRequest struct {
	Appearance Appearance        `json:"appearance" yaml:"appearance"`
	Gray       string            `json:"gray" yaml:"gray"`
	Background string            `json:"background" yaml:"background"`
	Accents    map[string]string `json:"accents" yaml:"accents"`
}

// SetResult holds one Result per accent name.
type SetResult struct {
	Appearance Appearance         `json:"appearance"`
	Background string             `json:"background"`
	Accents    map[string]*Result `json:"accents"`
}

// Names returns the accent names in sorted order.
func (r *SetResult) Names() []string {
	return slices.Sorted(maps.Keys(r.Accents))
}

// GenerateSet generates every accent in req concurrently. The first failure
// cancels the remaining work and is returned with the accent name attached.
func (g *Generator) GenerateSet(ctx context.Context, req SetRequest) (*SetResult, error) {
	if len(req.Accents) == 0 {
		return nil, fmt.Errorf("generate set: no accents given")
	}

	names := slices.Sorted(maps.Keys(req.Accents))
	results := make([]*Result, len(names))

	eg, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.Generate(Request{
				Appearance: req.Appearance,
				Accent:     req.Accents[name],
				Gray:       req.Gray,
				Background: req.Background,
			})
			if err != nil {
				return fmt.Errorf("accent %s: %w", name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := &SetResult{
		Appearance: req.Appearance,
		Accents:    make(map[string]*Result, len(names)),
	}
	for i, name := range names {
		out.Accents[name] = results[i]
		out.Background = results[i].Background
	}
	return out, nil
}
