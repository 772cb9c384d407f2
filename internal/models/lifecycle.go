// internal/models/lifecycle.go
package models

import "github.com/producttracker/backend/internal/apperrors"

// StatusKind selects which entity's status enum a lifecycle call refers to.
type StatusKind string

const (
	KindProduct StatusKind = "product"
	KindFind    StatusKind = "find"
)

var productStatuses = []ProductStatus{
	ProductStatusSearching,
	ProductStatusFound,
	ProductStatusPurchased,
	ProductStatusSkipped,
}

var findStatuses = []FindStatus{
	FindStatusNew,
	FindStatusViewed,
	FindStatusInterested,
	FindStatusContacted,
	FindStatusBought,
	FindStatusSkip,
}

func (s ProductStatus) IsValid() bool {
	for _, v := range productStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s FindStatus) IsValid() bool {
	for _, v := range findStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// DefaultStatus returns the status assigned when a record is created
// without one.
func DefaultStatus(kind StatusKind) string {
	if kind == KindFind {
		return string(FindStatusNew)
	}
	return string(ProductStatusSearching)
}

// IsValidStatus reports whether status belongs to the closed enum of the
// given kind. Services must call this before persisting a status write.
func IsValidStatus(kind StatusKind, status string) error {
	switch kind {
	case KindProduct:
		if ProductStatus(status).IsValid() {
			return nil
		}
	case KindFind:
		if FindStatus(status).IsValid() {
			return nil
		}
	default:
		return apperrors.Validationf("unknown status kind %q", kind)
	}
	return apperrors.Validationf("invalid %s status %q", kind, status)
}

// NextProductStatuses lists the transitions offered from current, in
// display order. Any status is reachable; only the no-op is omitted.
func NextProductStatuses(current ProductStatus) []ProductStatus {
	next := make([]ProductStatus, 0, len(productStatuses)-1)
	for _, s := range productStatuses {
		if s != current {
			next = append(next, s)
		}
	}
	return next
}

// NextFindStatuses lists the transitions offered from current, in display
// order. The gating is advisory: it shapes what the UI offers, while the
// store-level update accepts any value of the closed enum. "contacted" is
// only offered from "interested".
func NextFindStatuses(current FindStatus) []FindStatus {
	offered := []FindStatus{FindStatusInterested, FindStatusContacted, FindStatusBought, FindStatusSkip}
	next := make([]FindStatus, 0, len(offered))
	for _, s := range offered {
		if s == current {
			continue
		}
		if s == FindStatusContacted && current != FindStatusInterested {
			continue
		}
		next = append(next, s)
	}
	return next
}

// NextStatuses is the kind-generic form used by the transitions endpoints.
func NextStatuses(kind StatusKind, current string) ([]string, error) {
	if err := IsValidStatus(kind, current); err != nil {
		return nil, err
	}

	var next []string
	switch kind {
	case KindProduct:
		for _, s := range NextProductStatuses(ProductStatus(current)) {
			next = append(next, string(s))
		}
	case KindFind:
		for _, s := range NextFindStatuses(FindStatus(current)) {
			next = append(next, string(s))
		}
	}
	return next, nil
}
