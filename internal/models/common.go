// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB type for PostgreSQL (stored as TEXT under sqlite in tests)
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	}

	return fmt.Errorf("unsupported type %T for JSONB", value)
}

// Enums
type ProductStatus string

const (
	ProductStatusSearching ProductStatus = "searching"
	ProductStatusFound     ProductStatus = "found"
	ProductStatusPurchased ProductStatus = "purchased"
	ProductStatusSkipped   ProductStatus = "skipped"
)

type FindStatus string

const (
	FindStatusNew        FindStatus = "new"
	FindStatusViewed     FindStatus = "viewed"
	FindStatusInterested FindStatus = "interested"
	FindStatusContacted  FindStatus = "contacted"
	FindStatusBought     FindStatus = "bought"
	FindStatusSkip       FindStatus = "skip"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities by urgency. Sorting must go through this, not
// through string comparison of the labels.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// PrioritySortExpr is the SQL ordering expression matching Priority.Rank.
const PrioritySortExpr = "CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 WHEN 'low' THEN 2 ELSE 3 END"
