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

package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/MOMOGSDIOP/zoomETFsProject/core"
	"github.com/MOMOGSDIOP/zoomETFsProject/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend *Backend
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(backend *Backend) (*CatalogRepository, error) {
	return &CatalogRepository{
		backend: backend,
	}, nil
}

// Close releases resources. CatalogRepository has no resources to release.
func (r *CatalogRepository) Close() error {
	return nil
}

// AddETFs adds records to the catalog. IDs are derived from the ISIN,
// so the same instrument always maps to the same key.
func (r *CatalogRepository) AddETFs(ctx context.Context, etfs []*core.ETF) ([]core.ID, error) {
	ids := make([]core.ID, 0, len(etfs))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, etf := range etfs {
			if etf.ISIN == "" {
				return storage.ErrInvalidETF
			}
			if etf.Id == 0 {
				etf.Id = etf.ContentID()
			}

			isinKey := makeISINKey(etf.ISIN)
			if _, err := tx.Get(isinKey); err == nil {
				return storage.ErrETFExists
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			etf.InsertedAt = time.Now().UTC()
			etf.UpdatedAt = etf.InsertedAt

			key := makeETFKey(etf.Id)
			if err := tx.Set(key, storage.MarshalETF(etf)); err != nil {
				return err
			}
			if err := tx.Set(isinKey, storage.MarshalID(etf.Id)); err != nil {
				return err
			}
			ids = append(ids, etf.Id)
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// UpdateETFs updates existing records, preserving insertion timestamps.
func (r *CatalogRepository) UpdateETFs(ctx context.Context, etfs []*core.ETF) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, etf := range etfs {
			key := makeETFKey(etf.Id)

			old, err := readETF(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrETFNotFound
			}

			etf.InsertedAt = old.InsertedAt
			etf.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalETF(etf)); err != nil {
				return err
			}

			// Move the ISIN index entry if the ISIN changed.
			if old.ISIN != etf.ISIN {
				if err := tx.Delete(makeISINKey(old.ISIN)); err != nil {
					return err
				}
				if err := tx.Set(makeISINKey(etf.ISIN), storage.MarshalID(etf.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
}

// DeleteETFs removes records by their IDs.
func (r *CatalogRepository) DeleteETFs(ctx context.Context, ids []core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeETFKey(id)

			etf, err := readETF(tx, key)
			if err != nil {
				return err
			}
			if etf == nil {
				return storage.ErrETFNotFound
			}

			if err := tx.Delete(makeISINKey(etf.ISIN)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetETF retrieves a single record by ID.
func (r *CatalogRepository) GetETF(ctx context.Context, id core.ID) (*core.ETF, error) {
	var result *core.ETF
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readETF(tx, makeETFKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrETFNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetETFs retrieves multiple records by their IDs. Missing IDs are
// skipped rather than reported.
func (r *CatalogRepository) GetETFs(ctx context.Context, ids []core.ID) ([]*core.ETF, error) {
	var result []*core.ETF
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			etf, err := readETF(tx, makeETFKey(id))
			if err != nil {
				return err
			}
			if etf != nil {
				result = append(result, etf)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetETFByISIN retrieves a record by its ISIN.
func (r *CatalogRepository) GetETFByISIN(ctx context.Context, isin string) (*core.ETF, error) {
	var result *core.ETF
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeISINKey(isin))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrETFNotFound
			}
			return err
		}

		var id core.ID
		err = item.Value(func(val []byte) error {
			id, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		result, err = readETF(tx, makeETFKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrETFNotFound
		}
		return nil
	}, false)
	return result, err
}

// AllETFs retrieves every record from the catalog in key order.
func (r *CatalogRepository) AllETFs(ctx context.Context) ([]*core.ETF, error) {
	var results []*core.ETF
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(etfRecordPrefix + ":")
		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			var etf *core.ETF
			err := iter.Item().Value(func(val []byte) error {
				var err error
				etf, err = storage.UnmarshalETF(val)
				return err
			})
			if err != nil {
				return err
			}
			if etf != nil {
				results = append(results, etf)
			}
		}
		return nil
	}, false)
	return results, err
}

// Count returns the number of records in the catalog.
func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(etfRecordPrefix + ":")
		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readETF reads a record from the transaction. A missing key returns
// nil without an error.
func readETF(tx *badger.Txn, key []byte) (*core.ETF, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var etf *core.ETF
	err = item.Value(func(val []byte) error {
		var err error
		etf, err = storage.UnmarshalETF(val)
		return err
	})
	return etf, err
}
