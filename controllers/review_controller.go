package controllers

import (
	"strings"

	"rentmate/config"
	"rentmate/constants"
	"rentmate/dto"
	"rentmate/models"
	"rentmate/response"
	"rentmate/services"
	"rentmate/validator"

	"github.com/gin-gonic/gin"
)

func convertToReviewResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		ItemID:    review.ItemID,
		Comment:   review.Comment,
		Star:      review.Star,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
		User: dto.UserInfo{
			ID:     review.User.ID,
			Name:   review.User.Name,
			Email:  review.User.Email,
			Avatar: review.User.Avatar,
		},
	}
}

// GetItemReviews trả về đánh giá của một item
func GetItemReviews(c *gin.Context) {
	itemID := c.Param("id")

	var item models.Item
	if err := config.DB.First(&item, itemID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var reviews []models.Review
	if err := config.DB.Preload("User").Where("item_id = ?", itemID).Order("updated_at DESC").Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, convertToReviewResponse(review))
	}

	response.SuccessWithTotal(c, reviewResponses, len(reviewResponses))
}

// CreateReview tạo đánh giá mới. Chỉ user đã từng thuê item (booking
// confirmed hoặc đã hoàn tất) mới được đánh giá.
func CreateReview(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var item models.Item
	if err := config.DB.First(&item, request.ItemID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var rentedCount int64
	if err := config.DB.Model(&models.Booking{}).
		Where("item_id = ? AND user_email = ? AND status = ?", request.ItemID, user.Email, constants.BookingStatusConfirmed).
		Count(&rentedCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if rentedCount == 0 {
		response.BadRequest(c, "Chỉ người đã thuê mới được đánh giá")
		return
	}

	review := models.Review{
		UserID:  currentUserID,
		ItemID:  request.ItemID,
		Comment: request.Comment,
		Star:    request.Star,
	}

	if err := validator.ValidateReview(&review); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	review.User = user
	response.Success(c, convertToReviewResponse(review))
}

// UpdateReview cập nhật đánh giá của chính mình
func UpdateReview(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var review models.Review
	if err := config.DB.Preload("User").First(&review, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if review.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	if request.Comment != "" {
		review.Comment = request.Comment
	}
	if request.Star != 0 {
		review.Star = request.Star
	}

	if err := validator.ValidateReview(&review); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToReviewResponse(review))
}
