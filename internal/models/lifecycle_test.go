// internal/models/lifecycle_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/producttracker/backend/internal/apperrors"
)

func TestDefaultStatus(t *testing.T) {
	assert.Equal(t, "searching", DefaultStatus(KindProduct))
	assert.Equal(t, "new", DefaultStatus(KindFind))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"searching", "found", "purchased", "skipped"} {
		assert.NoError(t, IsValidStatus(KindProduct, s))
	}
	for _, s := range []string{"new", "viewed", "interested", "contacted", "bought", "skip"} {
		assert.NoError(t, IsValidStatus(KindFind, s))
	}

	err := IsValidStatus(KindProduct, "bought")
	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = IsValidStatus(KindFind, "hledám")
	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = IsValidStatus(StatusKind("user"), "active")
	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestNextProductStatuses(t *testing.T) {
	// Any status reachable from any other, only the no-op omitted,
	// order fixed.
	assert.Equal(t,
		[]ProductStatus{ProductStatusFound, ProductStatusPurchased, ProductStatusSkipped},
		NextProductStatuses(ProductStatusSearching))
	assert.Equal(t,
		[]ProductStatus{ProductStatusSearching, ProductStatusFound, ProductStatusSkipped},
		NextProductStatuses(ProductStatusPurchased))
}

func TestNextFindStatuses(t *testing.T) {
	// "contacted" is only offered from "interested"
	assert.Equal(t,
		[]FindStatus{FindStatusInterested, FindStatusBought, FindStatusSkip},
		NextFindStatuses(FindStatusNew))
	assert.Equal(t,
		[]FindStatus{FindStatusContacted, FindStatusBought, FindStatusSkip},
		NextFindStatuses(FindStatusInterested))
	assert.Equal(t,
		[]FindStatus{FindStatusInterested, FindStatusBought, FindStatusSkip},
		NextFindStatuses(FindStatusContacted))
	assert.Equal(t,
		[]FindStatus{FindStatusInterested, FindStatusBought},
		NextFindStatuses(FindStatusSkip))
}

func TestNextStatusesGeneric(t *testing.T) {
	next, err := NextStatuses(KindProduct, "searching")
	assert.NoError(t, err)
	assert.Equal(t, []string{"found", "purchased", "skipped"}, next)

	_, err = NextStatuses(KindFind, "nonsense")
	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPriorityRank(t *testing.T) {
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Equal(t, 3, Priority("urgent").Rank())

	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, Priority("urgent").IsValid())
}
