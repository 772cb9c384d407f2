// internal/services/find_service.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/producttracker/backend/internal/apperrors"
	"github.com/producttracker/backend/internal/models"
	"github.com/producttracker/backend/internal/utils"
)

// activeFindStatuses is the default listing filter: without an explicit
// status parameter only finds still worth triaging come back, never the
// full table.
var activeFindStatuses = []models.FindStatus{
	models.FindStatusNew,
	models.FindStatusViewed,
	models.FindStatusInterested,
}

type FindService struct {
	db *gorm.DB
}

func NewFindService(db *gorm.DB) *FindService {
	return &FindService{db: db}
}

type CreateFindRequest struct {
	Title            string            `json:"title" validate:"required,min=1,max=255"`
	Price            *float64          `json:"price,omitempty" validate:"omitempty,min=0"`
	URL              *string           `json:"url,omitempty"`
	Source           string            `json:"source,omitempty"`
	Description      *string           `json:"description,omitempty"`
	PhotoURL         *string           `json:"photo_url,omitempty"`
	MatchedProductID *uint             `json:"matched_product_id,omitempty"`
	AIConfidence     *int              `json:"ai_confidence,omitempty" validate:"omitempty,min=0,max=10"`
	AIReason         *string           `json:"ai_reason,omitempty"`
	Status           models.FindStatus `json:"status,omitempty" validate:"omitempty,find_status"`
}

type UpdateFindRequest struct {
	Title            *string            `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Price            *float64           `json:"price,omitempty" validate:"omitempty,min=0"`
	URL              *string            `json:"url,omitempty"`
	Description      *string            `json:"description,omitempty"`
	MatchedProductID *uint              `json:"matched_product_id,omitempty"`
	Status           *models.FindStatus `json:"status,omitempty"`
}

type FindFilter struct {
	Status           *models.FindStatus
	Source           *string
	MatchedProductID *uint
	Limit            int
}

// checkMatchedProduct enforces that a written matched_product_id points at
// an existing product. Dangling references only arise from a later product
// delete, never from a write.
func (s *FindService) checkMatchedProduct(id uint) error {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Store("failed to check matched product", err)
	}
	if count == 0 {
		return apperrors.Validationf("matched product %d does not exist", id)
	}
	return nil
}

func (s *FindService) Create(req *CreateFindRequest) (*models.Find, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validationf("validation failed: %v", err)
	}

	if req.MatchedProductID != nil {
		if err := s.checkMatchedProduct(*req.MatchedProductID); err != nil {
			return nil, err
		}
	}

	find := &models.Find{
		Title:            req.Title,
		Price:            req.Price,
		URL:              req.URL,
		Source:           req.Source,
		Description:      req.Description,
		PhotoURL:         req.PhotoURL,
		MatchedProductID: req.MatchedProductID,
		AIConfidence:     req.AIConfidence,
		AIReason:         req.AIReason,
		Status:           req.Status,
	}

	if find.Source == "" {
		find.Source = "manual"
	}
	if find.Status == "" {
		find.Status = models.FindStatus(models.DefaultStatus(models.KindFind))
	}

	if err := s.db.Create(find).Error; err != nil {
		return nil, apperrors.Store("failed to create find", err)
	}

	return find, nil
}

func (s *FindService) Get(id uint) (*models.Find, error) {
	var find models.Find
	if err := s.db.Preload("MatchedProduct").First(&find, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("find %d not found", id)
		}
		return nil, apperrors.Store("failed to fetch find", err)
	}

	return &find, nil
}

func (s *FindService) List(filter FindFilter) ([]models.Find, error) {
	query := s.db.Model(&models.Find{}).Preload("MatchedProduct")

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	} else {
		query = query.Where("status IN ?", activeFindStatuses)
	}

	if filter.Source != nil {
		query = query.Where("source = ?", *filter.Source)
	}

	if filter.MatchedProductID != nil {
		query = query.Where("matched_product_id = ?", *filter.MatchedProductID)
	}

	query = query.Order("ai_confidence DESC NULLS LAST").Order("found_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var finds []models.Find
	if err := query.Find(&finds).Error; err != nil {
		return nil, apperrors.Store("failed to fetch finds", err)
	}

	return finds, nil
}

// Update applies a partial edit. The status write stays permissive: any
// value of the closed enum is accepted, regardless of what the UI offers
// for the current state.
func (s *FindService) Update(id uint, req *UpdateFindRequest) (*models.Find, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validationf("validation failed: %v", err)
	}

	if req.Status != nil {
		if err := models.IsValidStatus(models.KindFind, string(*req.Status)); err != nil {
			return nil, err
		}
	}

	if req.MatchedProductID != nil {
		if err := s.checkMatchedProduct(*req.MatchedProductID); err != nil {
			return nil, err
		}
	}

	var find models.Find
	if err := s.db.First(&find, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("find %d not found", id)
		}
		return nil, apperrors.Store("failed to fetch find", err)
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.MatchedProductID != nil {
		updates["matched_product_id"] = *req.MatchedProductID
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(&find).Updates(updates).Error; err != nil {
			return nil, apperrors.Store("failed to update find", err)
		}
	}

	if err := s.db.First(&find, id).Error; err != nil {
		return nil, apperrors.Store("failed to reload find", err)
	}

	return &find, nil
}

func (s *FindService) Delete(id uint) error {
	result := s.db.Delete(&models.Find{}, id)
	if result.Error != nil {
		return apperrors.Store("failed to delete find", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("find %d not found", id)
	}

	return nil
}

// Transitions returns the advisory next statuses for the find's current
// state, the way the triage UI offers them.
func (s *FindService) Transitions(id uint) ([]models.FindStatus, error) {
	find, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	return models.NextFindStatuses(find.Status), nil
}
