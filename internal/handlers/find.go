// internal/handlers/find.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/producttracker/backend/internal/models"
	"github.com/producttracker/backend/internal/services"
	"github.com/producttracker/backend/internal/utils"
)

// findListCap bounds the raw finds listing; the dashboard's filtered view
// asks for less via the limit parameter.
const findListCap = 100

type FindHandler struct {
	findService *services.FindService
}

func NewFindHandler(findService *services.FindService) *FindHandler {
	return &FindHandler{findService: findService}
}

// GET /v1/finds
func (h *FindHandler) GetFinds(c *gin.Context) {
	filter := services.FindFilter{
		Limit: findListCap,
	}

	if status := c.Query("status"); status != "" {
		findStatus := models.FindStatus(status)
		filter.Status = &findStatus
	}

	if source := c.Query("source"); source != "" {
		filter.Source = &source
	}

	// product_id is kept as an alias of the documented name
	productIDStr := c.Query("matchedProductId")
	if productIDStr == "" {
		productIDStr = c.Query("product_id")
	}
	if productIDStr != "" {
		if productID, err := strconv.ParseUint(productIDStr, 10, 32); err == nil {
			id := uint(productID)
			filter.MatchedProductID = &id
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= findListCap {
			filter.Limit = limit
		}
	}

	finds, err := h.findService.List(filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"finds": finds,
	})
}

// POST /v1/finds
func (h *FindHandler) CreateFind(c *gin.Context) {
	var req services.CreateFindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	find, err := h.findService.Create(&req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"find": find,
	})
}

// GET /v1/finds/:id
func (h *FindHandler) GetFind(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	find, err := h.findService.Get(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"find": find,
	})
}

// PATCH /v1/finds/:id
func (h *FindHandler) UpdateFind(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.UpdateFindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	find, err := h.findService.Update(id, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"find": find,
	})
}

// DELETE /v1/finds/:id
func (h *FindHandler) DeleteFind(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.findService.Delete(id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"deleted": true,
	})
}

// GET /v1/finds/:id/transitions
func (h *FindHandler) GetFindTransitions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	transitions, err := h.findService.Transitions(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"transitions": transitions,
	})
}
