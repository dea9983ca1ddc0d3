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

package storage

import (
	"context"

	"github.com/MOMOGSDIOP/zoomETFsProject/core"
)

// CatalogRepository stores and retrieves ETF records.
type CatalogRepository interface {
	// AddETFs stores new records, assigning each a content-derived ID.
	// Records whose ISIN already exists are rejected with
	// ErrETFExists.
	AddETFs(ctx context.Context, etfs []*core.ETF) ([]core.ID, error)

	// UpdateETFs replaces existing records in place, preserving their
	// insertion timestamps.
	UpdateETFs(ctx context.Context, etfs []*core.ETF) error

	// DeleteETFs removes records by ID. Missing IDs are an error.
	DeleteETFs(ctx context.Context, ids []core.ID) error

	// GetETF retrieves a single record by ID.
	GetETF(ctx context.Context, id core.ID) (*core.ETF, error)

	// GetETFs retrieves multiple records by ID, in the given order.
	GetETFs(ctx context.Context, ids []core.ID) ([]*core.ETF, error)

	// GetETFByISIN retrieves a record by its ISIN.
	GetETFByISIN(ctx context.Context, isin string) (*core.ETF, error)

	// AllETFs returns every record in the catalog in key order.
	AllETFs(ctx context.Context) ([]*core.ETF, error)

	// Count returns the number of records in the catalog.
	Count(ctx context.Context) (int, error)

	// Close releases the repository's resources.
	Close() error
}
