// internal/services/stats_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/producttracker/backend/internal/models"
)

func seedProduct(t *testing.T, db *gorm.DB, p *models.Product) *models.Product {
	t.Helper()
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedFind(t *testing.T, db *gorm.DB, f *models.Find) *models.Find {
	t.Helper()
	require.NoError(t, db.Create(f).Error)
	return f
}

func TestComputeStatsCounts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)

	seedProduct(t, db, &models.Product{Name: "Pánev", Status: models.ProductStatusSearching, Category: strPtr("kuchyň"), Priority: models.PriorityHigh})
	seedProduct(t, db, &models.Product{Name: "Konvice", Status: models.ProductStatusSearching, Category: strPtr("kuchyň"), Priority: models.PriorityMedium})
	seedProduct(t, db, &models.Product{Name: "Vrtačka", Status: models.ProductStatusSkipped, Category: strPtr("dílna"), Priority: models.PriorityLow})
	seedProduct(t, db, &models.Product{Name: "Mixér", Status: models.ProductStatusFound, Priority: models.PriorityMedium})

	seedFind(t, db, &models.Find{Title: "Pánev Tefal", Status: models.FindStatusNew})
	seedFind(t, db, &models.Find{Title: "Konvice Philips", Status: models.FindStatusNew})
	seedFind(t, db, &models.Find{Title: "Stará konvice", Status: models.FindStatusSkip})

	stats, err := svc.ComputeStats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.ActiveSearching)
	assert.Equal(t, int64(2), stats.NewFinds)
	assert.Equal(t, int64(0), stats.Purchased)
	assert.Equal(t, float64(0), stats.AmountSaved)
	// distinct non-null categories: kuchyň, dílna
	assert.Equal(t, int64(2), stats.CategoryCount)
}

func TestComputeStatsAmountSaved(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)

	seedProduct(t, db, &models.Product{
		Name: "Pánev", Status: models.ProductStatusPurchased, Priority: models.PriorityMedium,
		MaxPrice: floatPtr(1000), CurrentPrice: floatPtr(800),
	})
	seedProduct(t, db, &models.Product{
		Name: "Konvice", Status: models.ProductStatusPurchased, Priority: models.PriorityMedium,
		MaxPrice: floatPtr(500), CurrentPrice: floatPtr(600),
	})
	// Excluded: missing current price
	seedProduct(t, db, &models.Product{
		Name: "Mixér", Status: models.ProductStatusPurchased, Priority: models.PriorityMedium,
		MaxPrice: floatPtr(900),
	})
	// Excluded: not purchased
	seedProduct(t, db, &models.Product{
		Name: "Vrtačka", Status: models.ProductStatusSearching, Priority: models.PriorityMedium,
		MaxPrice: floatPtr(2000), CurrentPrice: floatPtr(100),
	})

	stats, err := svc.ComputeStats()
	require.NoError(t, err)

	// (1000+500) - (800+600)
	assert.Equal(t, float64(100), stats.AmountSaved)
	assert.Equal(t, int64(3), stats.Purchased)
}

func TestComputeStatsAmountSavedClampedToZero(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)

	seedProduct(t, db, &models.Product{
		Name: "Konvice", Status: models.ProductStatusPurchased, Priority: models.PriorityMedium,
		MaxPrice: floatPtr(500), CurrentPrice: floatPtr(600),
	})

	stats, err := svc.ComputeStats()
	require.NoError(t, err)

	assert.Equal(t, float64(0), stats.AmountSaved)
}

func TestDashboardWidgetCaps(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		seedFind(t, db, &models.Find{
			Title:   "Nález",
			Status:  models.FindStatusNew,
			FoundAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	seedFind(t, db, &models.Find{Title: "Prohlédnutý", Status: models.FindStatusViewed, FoundAt: base.Add(48 * time.Hour)})

	for i := 0; i < 7; i++ {
		seedProduct(t, db, &models.Product{
			Name:      "Produkt",
			Status:    models.ProductStatusSearching,
			Priority:  models.PriorityMedium,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	view, err := svc.Dashboard()
	require.NoError(t, err)

	require.Len(t, view.RecentFinds, 6)
	// Only untriaged finds, newest first
	for i, f := range view.RecentFinds {
		assert.Equal(t, models.FindStatusNew, f.Status)
		if i > 0 {
			assert.False(t, f.FoundAt.After(view.RecentFinds[i-1].FoundAt))
		}
	}

	assert.Len(t, view.ActiveProducts, 5)
	assert.Equal(t, int64(7), view.Stats.ActiveSearching)
}

func TestDashboardActiveProductsOrderedByPriority(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)

	seedProduct(t, db, &models.Product{Name: "Nízká", Status: models.ProductStatusSearching, Priority: models.PriorityLow})
	seedProduct(t, db, &models.Product{Name: "Vysoká", Status: models.ProductStatusSearching, Priority: models.PriorityHigh})
	seedProduct(t, db, &models.Product{Name: "Střední", Status: models.ProductStatusSearching, Priority: models.PriorityMedium})

	view, err := svc.Dashboard()
	require.NoError(t, err)

	require.Len(t, view.ActiveProducts, 3)
	assert.Equal(t, "Vysoká", view.ActiveProducts[0].Name)
	assert.Equal(t, "Střední", view.ActiveProducts[1].Name)
	assert.Equal(t, "Nízká", view.ActiveProducts[2].Name)
}
