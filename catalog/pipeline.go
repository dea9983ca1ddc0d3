// Copyright 2026 zoomETFs Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/MOMOGSDIOP/zoomETFsProject/core"
	"github.com/MOMOGSDIOP/zoomETFsProject/storage"
)

// Pipeline validates and ingests catalog records. Validation runs
// concurrently on a worker pool; storage writes stay on the calling
// goroutine.
type Pipeline struct {
	catalog storage.CatalogRepository
	pool    *ants.Pool
	logger  *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent validation.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline over the catalog.
func NewPipeline(catalog storage.CatalogRepository, opts ...Option) (*Pipeline, error) {
	if catalog == nil {
		return nil, ErrCatalogRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		catalog: catalog,
		pool:    pool,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}
	return p, nil
}

// IngestReport summarizes an ingestion run. Rejections are keyed by
// the record's ISIN, or its name when the ISIN is missing.
type IngestReport struct {
	Ingested  int
	Rejected  int
	Rejection map[string][]string
}

func recordKey(etf *core.ETF) string {
	if etf.ISIN != "" {
		return etf.ISIN
	}
	return etf.Name
}

// Ingest validates records concurrently and stores the valid ones.
// Invalid records are logged and reported but never stored; a record
// whose ISIN already exists is counted as rejected, not as an error.
// tracker may be nil.
func (p *Pipeline) Ingest(ctx context.Context, etfs []*core.ETF, tracker *ProgressTracker) (*IngestReport, error) {
	report := &IngestReport{Rejection: make(map[string][]string)}
	if len(etfs) == 0 {
		return report, nil
	}

	if tracker != nil {
		tracker.Start()
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	valid := make([]*core.ETF, 0, len(etfs))

	for _, etf := range etfs {
		etf := etf
		wg.Add(1)
		if err := p.pool.Submit(func() {
			defer wg.Done()
			result := core.ValidateETF(etf)

			mu.Lock()
			defer mu.Unlock()
			if result.Valid {
				valid = append(valid, etf)
			} else {
				report.Rejected++
				report.Rejection[recordKey(etf)] = result.Errors
				p.logger.Warn("rejecting invalid record",
					"record", recordKey(etf),
					"errors", result.Errors)
			}
			if tracker != nil {
				tracker.Increment(1)
			}
		}); err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()

	// Records are stored one at a time so a duplicate ISIN rejects
	// only itself, not the whole batch.
	for _, etf := range valid {
		if _, err := p.catalog.AddETFs(ctx, []*core.ETF{etf}); err != nil {
			if errors.Is(err, storage.ErrETFExists) {
				report.Rejected++
				report.Rejection[recordKey(etf)] = []string{err.Error()}
				p.logger.Warn("skipping duplicate record", "record", recordKey(etf))
				continue
			}
			return nil, err
		}
		report.Ingested++
	}

	if tracker != nil {
		tracker.Finish()
	}
	p.logger.Info("ingestion complete",
		"ingested", report.Ingested,
		"rejected", report.Rejected)
	return report, nil
}

// IngestFile loads a catalog file and ingests its records.
func (p *Pipeline) IngestFile(ctx context.Context, filePath string, tracker *ProgressTracker) (*IngestReport, error) {
	etfs, err := LoadETFs(filePath)
	if err != nil {
		return nil, err
	}
	return p.Ingest(ctx, etfs, tracker)
}

// Release releases the worker pool. The pipeline should not be used
// after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
