package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cferraz/acordaos-tracker/internal/extract"
	"github.com/cferraz/acordaos-tracker/internal/ingest"
)

type BatchStats struct {
	Processed uint32
	Failed    uint32
}

// ProcessBatch extracts a record from every ingested file, running up to
// `workers` documents concurrently. Per-file failures are logged and
// counted, not propagated; the returned records keep the input file order.
// The only error returned is context cancellation.
func (p *Processor) ProcessBatch(ctx context.Context, files []ingest.FileResult, workers int) ([]extract.Record, BatchStats, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]*extract.Record, len(files))
	failed := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range files {
		if f.Err != "" {
			failed[i] = true
			continue
		}
		i, f := i, f
		g.Go(func() error {
			rec, err := p.ProcessFile(gctx, f.Path)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				p.logger.Error("failed to process file", "file_id", f.FileID, "path", f.Path, "error", err)
				failed[i] = true
				return nil
			}
			results[i] = &rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, BatchStats{}, err
	}

	var stats BatchStats
	records := make([]extract.Record, 0, len(files))
	for i := range files {
		if failed[i] || results[i] == nil {
			stats.Failed++
			continue
		}
		records = append(records, *results[i])
		stats.Processed++
	}
	return records, stats, nil
}
