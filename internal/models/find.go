// internal/models/find.go
package models

import "time"

// Find is a marketplace listing candidate, written by the automation
// workflow (or by hand) and pending human triage.
type Find struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Title            string     `json:"title" gorm:"size:255;not null"`
	Price            *float64   `json:"price" gorm:"type:decimal(10,2)"`
	URL              *string    `json:"url" gorm:"type:text"`
	Source           string     `json:"source" gorm:"size:50;default:'manual';index"`
	Description      *string    `json:"description" gorm:"type:text"`
	PhotoURL         *string    `json:"photo_url" gorm:"type:text"`
	MatchedProductID *uint      `json:"matched_product_id" gorm:"index"`
	AIConfidence     *int       `json:"ai_confidence"`
	AIReason         *string    `json:"ai_reason" gorm:"type:text"`
	Status           FindStatus `json:"status" gorm:"type:varchar(20);default:'new';index"`
	FoundAt          time.Time  `json:"found_at" gorm:"autoCreateTime"`

	MatchedProduct *Product `json:"matched_product,omitempty" gorm:"foreignKey:MatchedProductID"`
}
