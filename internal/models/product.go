// internal/models/product.go
package models

import "time"

// Product is a tracked search target with acceptance criteria. Finds are
// matched to it by the external automation workflow.
type Product struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" gorm:"size:255;not null"`
	Category     *string       `json:"category" gorm:"size:100;index"`
	MinPrice     *float64      `json:"min_price" gorm:"type:decimal(10,2)"`
	MaxPrice     *float64      `json:"max_price" gorm:"type:decimal(10,2)"`
	CurrentPrice *float64      `json:"current_price" gorm:"type:decimal(10,2)"`
	Priority     Priority      `json:"priority" gorm:"type:varchar(10);default:'medium';index"`
	Status       ProductStatus `json:"status" gorm:"type:varchar(20);default:'searching';index"`
	Source       string        `json:"source" gorm:"size:50;default:'web'"`
	URL          *string       `json:"url" gorm:"type:text"`
	Parameters   JSONB         `json:"parameters" gorm:"type:jsonb"`
	AIScore      *float64      `json:"ai_score" gorm:"type:decimal(4,2)"`
	AIReason     *string       `json:"ai_reason" gorm:"type:text"`
	CreatedAt    time.Time     `json:"created_at" gorm:"autoCreateTime"`

	// Relationships. No FK constraint: deleting a Product leaves its
	// Finds in place with a dangling reference.
	Finds []Find `json:"finds,omitempty" gorm:"foreignKey:MatchedProductID"`
}
