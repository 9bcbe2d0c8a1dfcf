package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"sehrimilan/pkg/log"
)

// Generator produces a raw plan by fanning out one request per day range.
type Generator interface {
	// Generate returns the joined plan only when every range succeeds.
	// The first failure cancels the remaining requests.
	Generate(ctx context.Context, input Input) (string, error)
}

type implGenerator struct {
	transport Transport
	l         log.Logger
	chunkSize int
	maxDays   int
}

// New creates a Generator. Zero options fall back to defaults.
func New(l log.Logger, transport Transport, opt Options) Generator {
	if opt.ChunkSize <= 0 {
		opt.ChunkSize = DefaultChunkSize
	}
	if opt.MaxDays <= 0 {
		opt.MaxDays = DefaultMaxDays
	}
	return &implGenerator{
		transport: transport,
		l:         l,
		chunkSize: opt.ChunkSize,
		maxDays:   opt.MaxDays,
	}
}

func (g *implGenerator) Generate(ctx context.Context, input Input) (string, error) {
	if input.Days < 1 || input.Days > g.maxDays {
		return "", fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidDays, input.Days, g.maxDays)
	}

	ranges := Chunks(input.Days, g.chunkSize)
	results := make([]string, len(ranges))
	started := time.Now()

	g.l.Infof(ctx, "generator.Generate: %d days in %d parallel segments", input.Days, len(ranges))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		eg.Go(func() error {
			var b strings.Builder
			err := g.transport.Stream(egCtx, BuildPrompt(r, input.Household), func(fragment string) error {
				b.WriteString(fragment)
				return nil
			})
			if err != nil {
				g.l.Warnf(ctx, "generator.Generate: segment %d-%d failed: %v", r.Start, r.End, err)
				return fmt.Errorf("%w: days %d-%d: %w", ErrSegmentFailed, r.Start, r.End, err)
			}
			results[i] = b.String()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return "", err
	}

	g.l.Infof(ctx, "generator.Generate: %d segments done in %s", len(ranges), time.Since(started).Round(time.Millisecond))
	return strings.Join(results, segmentSeparator), nil
}
