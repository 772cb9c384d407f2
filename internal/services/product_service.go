// internal/services/product_service.go
package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/producttracker/backend/internal/apperrors"
	"github.com/producttracker/backend/internal/models"
	"github.com/producttracker/backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

type CreateProductRequest struct {
	Name       string                 `json:"name" validate:"required,min=1,max=255"`
	Category   *string                `json:"category,omitempty"`
	MinPrice   *float64               `json:"min_price,omitempty" validate:"omitempty,min=0"`
	MaxPrice   *float64               `json:"max_price,omitempty" validate:"omitempty,min=0"`
	Priority   models.Priority        `json:"priority,omitempty" validate:"omitempty,priority"`
	Status     models.ProductStatus   `json:"status,omitempty" validate:"omitempty,product_status"`
	Source     string                 `json:"source,omitempty"`
	URL        *string                `json:"url,omitempty"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}

// UpdateProductRequest is an explicit partial update: only fields present
// in the body touch columns.
type UpdateProductRequest struct {
	Name         *string                `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Category     *string                `json:"category,omitempty"`
	MinPrice     *float64               `json:"min_price,omitempty" validate:"omitempty,min=0"`
	MaxPrice     *float64               `json:"max_price,omitempty" validate:"omitempty,min=0"`
	CurrentPrice *float64               `json:"current_price,omitempty" validate:"omitempty,min=0"`
	Priority     *models.Priority       `json:"priority,omitempty"`
	Status       *models.ProductStatus  `json:"status,omitempty"`
	URL          *string                `json:"url,omitempty"`
	Parameters   map[string]interface{} `json:"parameters,omitempty"`
	AIScore      *float64               `json:"ai_score,omitempty"`
	AIReason     *string                `json:"ai_reason,omitempty"`
}

// ProductFilter carries the recognized list parameters. Anything else on
// the query string is ignored by the handler, never an error.
type ProductFilter struct {
	Status   *models.ProductStatus
	Category *string
	Query    string
	Limit    int
}

func (s *ProductService) Create(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validationf("validation failed: %v", err)
	}

	product := &models.Product{
		Name:       req.Name,
		Category:   req.Category,
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		Priority:   req.Priority,
		Status:     req.Status,
		Source:     req.Source,
		URL:        req.URL,
		Parameters: models.JSONB(req.Parameters),
	}

	if product.Priority == "" {
		product.Priority = models.PriorityMedium
	}
	if product.Status == "" {
		product.Status = models.ProductStatus(models.DefaultStatus(models.KindProduct))
	}
	if product.Source == "" {
		product.Source = "web"
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, apperrors.Store("failed to create product", err)
	}

	return product, nil
}

func (s *ProductService) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Finds").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("product %d not found", id)
		}
		return nil, apperrors.Store("failed to fetch product", err)
	}

	return &product, nil
}

func (s *ProductService) List(filter ProductFilter) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	if filter.Query != "" {
		searchTerm := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchTerm)
	}

	query = query.Order(models.PrioritySortExpr).Order("created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, apperrors.Store("failed to fetch products", err)
	}

	return products, nil
}

func (s *ProductService) Update(id uint, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validationf("validation failed: %v", err)
	}

	if req.Status != nil {
		if err := models.IsValidStatus(models.KindProduct, string(*req.Status)); err != nil {
			return nil, err
		}
	}

	if req.Priority != nil && !req.Priority.IsValid() {
		return nil, apperrors.Validationf("invalid priority %q", *req.Priority)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("product %d not found", id)
		}
		return nil, apperrors.Store("failed to fetch product", err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.MinPrice != nil {
		updates["min_price"] = *req.MinPrice
	}
	if req.MaxPrice != nil {
		updates["max_price"] = *req.MaxPrice
	}
	if req.CurrentPrice != nil {
		updates["current_price"] = *req.CurrentPrice
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.Parameters != nil {
		updates["parameters"] = models.JSONB(req.Parameters)
	}
	if req.AIScore != nil {
		updates["ai_score"] = *req.AIScore
	}
	if req.AIReason != nil {
		updates["ai_reason"] = *req.AIReason
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, apperrors.Store("failed to update product", err)
		}
	}

	// Reload so the caller sees the applied columns
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, apperrors.Store("failed to reload product", err)
	}

	return &product, nil
}

// Delete removes the product. Matched Finds are left in place with a
// dangling reference; there is no cascade.
func (s *ProductService) Delete(id uint) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return apperrors.Store("failed to delete product", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("product %d not found", id)
	}

	return nil
}

// Transitions returns the status changes offered for the product's
// current state.
func (s *ProductService) Transitions(id uint) ([]models.ProductStatus, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	return models.NextProductStatuses(product.Status), nil
}

// Categories lists the distinct non-empty categories in use.
func (s *ProductService) Categories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Product{}).
		Where("category IS NOT NULL AND category <> ''").
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, apperrors.Store("failed to fetch categories", err)
	}

	return categories, nil
}
