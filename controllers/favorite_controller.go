package controllers

import (
	"errors"

	"rentmate/config"
	"rentmate/dto"
	"rentmate/models"
	"rentmate/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetFavorites trả về danh sách item yêu thích của user
func GetFavorites(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		response.BadRequest(c, "email là bắt buộc")
		return
	}

	var favorites []models.Favorite
	if err := config.DB.Preload("Item").Where("user_email = ?", email).Find(&favorites).Error; err != nil {
		response.ServerError(c)
		return
	}

	favoriteResponses := make([]dto.FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		favoriteResponses = append(favoriteResponses, dto.FavoriteResponse{
			ID:        favorite.ID,
			Item:      convertToItemSummary(favorite.Item),
			CreatedAt: favorite.CreatedAt,
		})
	}

	response.SuccessWithTotal(c, favoriteResponses, len(favoriteResponses))
}

// AddFavorite thêm item vào danh sách yêu thích, idempotent
func AddFavorite(c *gin.Context) {
	email := c.Param("email")

	var request dto.FavoriteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var item models.Item
	if err := config.DB.First(&item, request.ItemID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var existing models.Favorite
	err := config.DB.Where("user_email = ? AND item_id = ?", email, request.ItemID).First(&existing).Error
	if err == nil {
		existing.Item = item
		response.Success(c, dto.FavoriteResponse{
			ID:        existing.ID,
			Item:      convertToItemSummary(item),
			CreatedAt: existing.CreatedAt,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.ServerError(c)
		return
	}

	favorite := models.Favorite{
		UserEmail: email,
		ItemID:    request.ItemID,
	}
	if err := config.DB.Create(&favorite).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.FavoriteResponse{
		ID:        favorite.ID,
		Item:      convertToItemSummary(item),
		CreatedAt: favorite.CreatedAt,
	})
}

// RemoveFavorite bỏ item khỏi danh sách yêu thích
func RemoveFavorite(c *gin.Context) {
	email := c.Param("email")

	var request dto.FavoriteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var favorite models.Favorite
	if err := config.DB.Where("user_email = ? AND item_id = ?", email, request.ItemID).First(&favorite).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&favorite).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
