package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/MOMOGSDIOP/zoomETFsProject/core"
	"github.com/MOMOGSDIOP/zoomETFsProject/storage"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func sampleETF(isin string) *core.ETF {
	return &core.ETF{
		Name:        "Test World ETF",
		ISIN:        isin,
		Category:    "Actions Monde",
		Description: "Broad world equity exposure",
		Sectors:     []string{"global"},
		Region:      "Monde",
		Type:        "ETF",
		Tags:        []string{"monde", "actions"},
		Fees:        floatPtr(0.38),
		Performance: floatPtr(8.5),
		Risk:        intPtr(6),
	}
}

func TestCatalogBasics(t *testing.T) {
	repo, backend, err := NewMemoryCatalog()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	etf := sampleETF("FR0010315770")
	ids, err := repo.AddETFs(ctx, []*core.ETF{etf})
	if err != nil {
		t.Fatalf("Failed to add ETF: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("Expected 1 ID, got %d", len(ids))
	}
	if ids[0] == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if ids[0] != core.IDFromContent("FR0010315770") {
		t.Fatal("Expected content-derived ID")
	}

	retrieved, err := repo.GetETF(ctx, ids[0])
	if err != nil {
		t.Fatalf("Failed to get ETF: %v", err)
	}
	if retrieved.Name != "Test World ETF" {
		t.Fatalf("Expected 'Test World ETF', got '%s'", retrieved.Name)
	}
	if retrieved.Fees == nil || *retrieved.Fees != 0.38 {
		t.Fatal("Expected fees to survive a round trip")
	}
	if retrieved.InsertedAt.IsZero() {
		t.Fatal("Expected insertion timestamp to be set")
	}

	byISIN, err := repo.GetETFByISIN(ctx, "FR0010315770")
	if err != nil {
		t.Fatalf("Failed to get ETF by ISIN: %v", err)
	}
	if byISIN.Id != ids[0] {
		t.Fatalf("Expected ID %d, got %d", ids[0], byISIN.Id)
	}
}

func TestAddDuplicateISIN(t *testing.T) {
	repo, backend, err := NewMemoryCatalog()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := repo.AddETFs(ctx, []*core.ETF{sampleETF("FR0010315770")}); err != nil {
		t.Fatalf("Failed to add ETF: %v", err)
	}

	_, err = repo.AddETFs(ctx, []*core.ETF{sampleETF("FR0010315770")})
	if !errors.Is(err, storage.ErrETFExists) {
		t.Fatalf("Expected ErrETFExists, got %v", err)
	}
}

func TestUpdateETFs(t *testing.T) {
	repo, backend, err := NewMemoryCatalog()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	etf := sampleETF("FR0010315770")
	ids, err := repo.AddETFs(ctx, []*core.ETF{etf})
	if err != nil {
		t.Fatalf("Failed to add ETF: %v", err)
	}
	inserted := etf.InsertedAt

	etf.Fees = floatPtr(0.25)
	if err := repo.UpdateETFs(ctx, []*core.ETF{etf}); err != nil {
		t.Fatalf("Failed to update ETF: %v", err)
	}

	retrieved, err := repo.GetETF(ctx, ids[0])
	if err != nil {
		t.Fatalf("Failed to get ETF: %v", err)
	}
	if retrieved.Fees == nil || *retrieved.Fees != 0.25 {
		t.Fatal("Expected updated fees")
	}
	if !retrieved.InsertedAt.Equal(inserted) {
		t.Fatal("Expected insertion timestamp to be preserved")
	}

	missing := sampleETF("LU0908500753")
	missing.Id = missing.ContentID()
	err = repo.UpdateETFs(ctx, []*core.ETF{missing})
	if !errors.Is(err, storage.ErrETFNotFound) {
		t.Fatalf("Expected ErrETFNotFound, got %v", err)
	}
}

func TestDeleteETFs(t *testing.T) {
	repo, backend, err := NewMemoryCatalog()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	ids, err := repo.AddETFs(ctx, []*core.ETF{sampleETF("FR0010315770")})
	if err != nil {
		t.Fatalf("Failed to add ETF: %v", err)
	}

	if err := repo.DeleteETFs(ctx, ids); err != nil {
		t.Fatalf("Failed to delete ETF: %v", err)
	}

	if _, err := repo.GetETF(ctx, ids[0]); !errors.Is(err, storage.ErrETFNotFound) {
		t.Fatalf("Expected ErrETFNotFound, got %v", err)
	}
	if _, err := repo.GetETFByISIN(ctx, "FR0010315770"); !errors.Is(err, storage.ErrETFNotFound) {
		t.Fatalf("Expected ISIN index entry to be removed, got %v", err)
	}

	if err := repo.DeleteETFs(ctx, ids); !errors.Is(err, storage.ErrETFNotFound) {
		t.Fatalf("Expected ErrETFNotFound on double delete, got %v", err)
	}
}

func TestAllETFsAndCount(t *testing.T) {
	repo, backend, err := NewMemoryCatalog()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	etfs := []*core.ETF{
		sampleETF("FR0010315770"),
		sampleETF("LU0908500753"),
		sampleETF("IE00B4L5Y983"),
	}
	if _, err := repo.AddETFs(ctx, etfs); err != nil {
		t.Fatalf("Failed to add ETFs: %v", err)
	}

	all, err := repo.AllETFs(ctx)
	if err != nil {
		t.Fatalf("Failed to list ETFs: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 ETFs, got %d", len(all))
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count ETFs: %v", err)
	}
	if count != 3 {
		t.Fatalf("Expected count 3, got %d", count)
	}
}
