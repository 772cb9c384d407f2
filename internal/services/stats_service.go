// internal/services/stats_service.go
package services

import (
	"gorm.io/gorm"

	"github.com/producttracker/backend/internal/apperrors"
	"github.com/producttracker/backend/internal/models"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type DashboardStats struct {
	ActiveSearching int64   `json:"active_searching"`
	NewFinds        int64   `json:"new_finds"`
	Purchased       int64   `json:"purchased"`
	AmountSaved     float64 `json:"amount_saved"`
	CategoryCount   int64   `json:"category_count"`
}

type DashboardView struct {
	Stats          DashboardStats   `json:"stats"`
	RecentFinds    []models.Find    `json:"recent_finds"`
	ActiveProducts []models.Product `json:"active_products"`
}

// ComputeStats reads the store once per call. It is a reporting view, not
// a ledger; no snapshot isolation is needed.
func (s *StatsService) ComputeStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.Product{}).
		Where("status = ?", models.ProductStatusSearching).
		Count(&stats.ActiveSearching).Error; err != nil {
		return nil, apperrors.Store("failed to count searching products", err)
	}

	if err := s.db.Model(&models.Find{}).
		Where("status = ?", models.FindStatusNew).
		Count(&stats.NewFinds).Error; err != nil {
		return nil, apperrors.Store("failed to count new finds", err)
	}

	if err := s.db.Model(&models.Product{}).
		Where("status = ?", models.ProductStatusPurchased).
		Count(&stats.Purchased).Error; err != nil {
		return nil, apperrors.Store("failed to count purchased products", err)
	}

	// Savings only count purchases where both the budget and the final
	// price are known.
	var sums struct {
		MaxSum     float64
		CurrentSum float64
	}
	if err := s.db.Model(&models.Product{}).
		Where("status = ? AND current_price IS NOT NULL AND max_price IS NOT NULL", models.ProductStatusPurchased).
		Select("COALESCE(SUM(max_price), 0) AS max_sum, COALESCE(SUM(current_price), 0) AS current_sum").
		Scan(&sums).Error; err != nil {
		return nil, apperrors.Store("failed to sum savings", err)
	}

	stats.AmountSaved = sums.MaxSum - sums.CurrentSum
	if stats.AmountSaved < 0 {
		stats.AmountSaved = 0
	}

	if err := s.db.Model(&models.Product{}).
		Where("category IS NOT NULL AND category <> ''").
		Distinct("category").
		Count(&stats.CategoryCount).Error; err != nil {
		return nil, apperrors.Store("failed to count categories", err)
	}

	return stats, nil
}

// Dashboard assembles the landing page: stats, the six newest untriaged
// finds, and the five most urgent products still being searched for.
func (s *StatsService) Dashboard() (*DashboardView, error) {
	stats, err := s.ComputeStats()
	if err != nil {
		return nil, err
	}

	var recentFinds []models.Find
	if err := s.db.Preload("MatchedProduct").
		Where("status = ?", models.FindStatusNew).
		Order("found_at DESC").
		Limit(6).
		Find(&recentFinds).Error; err != nil {
		return nil, apperrors.Store("failed to fetch recent finds", err)
	}

	var activeProducts []models.Product
	if err := s.db.
		Where("status = ?", models.ProductStatusSearching).
		Order(models.PrioritySortExpr).Order("created_at DESC").
		Limit(5).
		Find(&activeProducts).Error; err != nil {
		return nil, apperrors.Store("failed to fetch active products", err)
	}

	return &DashboardView{
		Stats:          *stats,
		RecentFinds:    recentFinds,
		ActiveProducts: activeProducts,
	}, nil
}
