package controllers

import (
	"strconv"
	"strings"

	"rentmate/config"
	"rentmate/dto"
	"rentmate/models"
	"rentmate/response"
	"rentmate/services"
	"rentmate/validator"

	"github.com/gin-gonic/gin"
)

// ownerOfItem kiểm tra user hiện tại có phải chủ của item không
func ownerOfItem(c *gin.Context, itemID string) (models.Item, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return models.Item{}, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return models.Item{}, false
	}

	var item models.Item
	if err := config.DB.First(&item, itemID).Error; err != nil {
		response.NotFound(c)
		return models.Item{}, false
	}

	if item.UserID != currentUserID && currentUserRole != 2 {
		response.Forbidden(c)
		return models.Item{}, false
	}

	return item, true
}

// GetUnavailableDates trả về các ngày chủ đồ tự chặn của item
func GetUnavailableDates(c *gin.Context) {
	itemID := c.Param("id")

	var item models.Item
	if err := config.DB.First(&item, itemID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var entries []models.UnavailableDate
	if err := config.DB.Where("item_id = ?", itemID).Order("date").Find(&entries).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.UnavailableDateResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, dto.UnavailableDateResponse{
			ID:        e.ID,
			Date:      e.Date,
			Recurring: e.Recurring,
			Reason:    e.Reason,
		})
	}

	response.SuccessWithTotal(c, responses, len(responses))
}

// CreateUnavailableDate chặn một ngày cho item, chỉ chủ đồ được thao tác
func CreateUnavailableDate(c *gin.Context) {
	itemIDStr := c.Param("id")

	item, ok := ownerOfItem(c, itemIDStr)
	if !ok {
		return
	}

	var request dto.CreateUnavailableDateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	entry := models.UnavailableDate{
		ItemID:    item.ID,
		Date:      request.Date,
		Recurring: request.Recurring,
		Reason:    request.Reason,
	}

	if err := validator.ValidateUnavailableDate(&entry); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.UnavailableDate
	if err := config.DB.Where("item_id = ? AND date = ?", item.ID, entry.Date).First(&existing).Error; err == nil {
		response.Conflict(c)
		return
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCache(item.ID, "", "")

	response.Success(c, dto.UnavailableDateResponse{
		ID:        entry.ID,
		Date:      entry.Date,
		Recurring: entry.Recurring,
		Reason:    entry.Reason,
	})
}

// DeleteUnavailableDate bỏ chặn một ngày
func DeleteUnavailableDate(c *gin.Context) {
	itemIDStr := c.Param("id")

	item, ok := ownerOfItem(c, itemIDStr)
	if !ok {
		return
	}

	entryIDStr := c.Query("entryId")
	entryID, err := strconv.ParseUint(entryIDStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "entryId không hợp lệ")
		return
	}

	var entry models.UnavailableDate
	if err := config.DB.Where("id = ? AND item_id = ?", entryID, item.ID).First(&entry).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&entry).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCache(item.ID, "", "")

	response.Success(c, nil)
}
