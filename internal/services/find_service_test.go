// internal/services/find_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/producttracker/backend/internal/apperrors"
	"github.com/producttracker/backend/internal/models"
)

func TestCreateFindDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFindService(db)

	find, err := svc.Create(&CreateFindRequest{Title: "Pánev Tefal, skoro nová"})
	require.NoError(t, err)

	assert.Equal(t, models.FindStatusNew, find.Status)
	assert.Equal(t, "manual", find.Source)
	assert.False(t, find.FoundAt.IsZero())
	assert.Nil(t, find.MatchedProductID)
}

func TestCreateFindValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFindService(db)

	_, err := svc.Create(&CreateFindRequest{Title: ""})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(&CreateFindRequest{Title: "Konvice", AIConfidence: intPtr(11)})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	// matched_product_id must reference an existing product on create
	_, err = svc.Create(&CreateFindRequest{Title: "Konvice", MatchedProductID: uintPtr(777)})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateFindRejectsNonexistentMatchedProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFindService(db)

	find, err := svc.Create(&CreateFindRequest{Title: "Konvice"})
	require.NoError(t, err)

	// Same invariant as on create: a write never points at a missing
	// product, only a later product delete leaves a dangling reference.
	_, err = svc.Update(find.ID, &UpdateFindRequest{MatchedProductID: uintPtr(777)})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	got, err := svc.Get(find.ID)
	require.NoError(t, err)
	assert.Nil(t, got.MatchedProductID)
}

func TestListFindsDefaultsToActiveStatuses(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFindService(db)

	seedFind(t, db, &models.Find{Title: "Nový", Status: models.FindStatusNew})
	seedFind(t, db, &models.Find{Title: "Prohlédnutý", Status: models.FindStatusViewed})
	seedFind(t, db, &models.Find{Title: "Se zájmem", Status: models.FindStatusInterested})
	seedFind(t, db, &models.Find{Title: "Kontaktovaný", Status: models.FindStatusContacted})
	seedFind(t, db, &models.Find{Title: "Koupený", Status: models.FindStatusBought})
	seedFind(t, db, &models.Find{Title: "Přeskočený", Status: models.FindStatusSkip})

	finds, err := svc.List(FindFilter{})
	require.NoError(t, err)

	// Never the whole table: only new/viewed/interested without an
	// explicit status
	require.Len(t, finds, 3)
	for _, f := range finds {
		assert.Contains(t, []models.FindStatus{
			models.FindStatusNew,
			models.FindStatusViewed,
			models.FindStatusInterested,
		}, f.Status)
	}

	status := models.FindStatusBought
	finds, err = svc.List(FindFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, finds, 1)
	assert.Equal(t, "Koupený", finds[0].Title)
}

func TestListFindsFilters(t *testing.T) {
	db := setupTestDB(t)
	productSvc := NewProductService(db)
	svc := NewFindService(db)

	product, err := productSvc.Create(&CreateProductRequest{Name: "Konvice"})
	require.NoError(t, err)

	seedFind(t, db, &models.Find{Title: "Z bazaru", Source: "bazos", Status: models.FindStatusNew, MatchedProductID: &product.ID})
	seedFind(t, db, &models.Find{Title: "Ruční", Source: "manual", Status: models.FindStatusNew})

	finds, err := svc.List(FindFilter{Source: strPtr("bazos")})
	require.NoError(t, err)
	require.Len(t, finds, 1)
	assert.Equal(t, "Z bazaru", finds[0].Title)

	finds, err = svc.List(FindFilter{MatchedProductID: &product.ID})
	require.NoError(t, err)
	require.Len(t, finds, 1)
	require.NotNil(t, finds[0].MatchedProduct)
	assert.Equal(t, "Konvice", finds[0].MatchedProduct.Name)
}

func TestListFindsOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFindService(db)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	seedFind(t, db, &models.Find{Title: "Bez skóre starý", Status: models.FindStatusNew, FoundAt: base})
	seedFind(t, db, &models.Find{Title: "Bez skóre nový", Status: models.FindStatusNew, FoundAt: base.Add(time.Hour)})
	seedFind(t, db, &models.Find{Title: "Slabý", Status: models.FindStatusNew, AIConfidence: intPtr(4), FoundAt: base})
	seedFind(t, db, &models.Find{Title: "Silný", Status: models.FindStatusNew, AIConfidence: intPtr(9), FoundAt: base})

	finds, err := svc.List(FindFilter{})
	require.NoError(t, err)
	require.Len(t, finds, 4)

	// Confidence descending, nulls last, then newest first
	assert.Equal(t, "Silný", finds[0].Title)
	assert.Equal(t, "Slabý", finds[1].Title)
	assert.Equal(t, "Bez skóre nový", finds[2].Title)
	assert.Equal(t, "Bez skóre starý", finds[3].Title)
}

func TestListFindsLimit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFindService(db)

	for i := 0; i < 10; i++ {
		seedFind(t, db, &models.Find{Title: "Nález", Status: models.FindStatusNew})
	}

	finds, err := svc.List(FindFilter{Limit: 4})
	require.NoError(t, err)
	assert.Len(t, finds, 4)
}

func TestUpdateFindStatusPermissive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFindService(db)

	find, err := svc.Create(&CreateFindRequest{Title: "Konvice"})
	require.NoError(t, err)

	// The UI would not offer "contacted" from "new", but the store-level
	// update accepts any value of the closed enum.
	status := models.FindStatusContacted
	updated, err := svc.Update(find.ID, &UpdateFindRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.FindStatusContacted, updated.Status)
}

func TestUpdateFindRejectsOutsideEnum(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFindService(db)

	find, err := svc.Create(&CreateFindRequest{Title: "Konvice"})
	require.NoError(t, err)

	status := models.FindStatus("purchased")
	_, err = svc.Update(find.ID, &UpdateFindRequest{Status: &status})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	got, err := svc.Get(find.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FindStatusNew, got.Status)
}

func TestFindTransitionsAdvisoryGating(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFindService(db)

	find, err := svc.Create(&CreateFindRequest{Title: "Konvice"})
	require.NoError(t, err)

	transitions, err := svc.Transitions(find.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.FindStatus{
		models.FindStatusInterested,
		models.FindStatusBought,
		models.FindStatusSkip,
	}, transitions)

	status := models.FindStatusInterested
	_, err = svc.Update(find.ID, &UpdateFindRequest{Status: &status})
	require.NoError(t, err)

	transitions, err = svc.Transitions(find.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.FindStatus{
		models.FindStatusContacted,
		models.FindStatusBought,
		models.FindStatusSkip,
	}, transitions)
}

func TestDeleteFind(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFindService(db)

	find, err := svc.Create(&CreateFindRequest{Title: "Konvice"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(find.ID))

	_, err = svc.Get(find.ID)
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.Delete(find.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
