package controllers

import (
	"strings"

	"rentmate/config"
	"rentmate/dto"
	"rentmate/models"
	"rentmate/response"
	"rentmate/services"
	"rentmate/validator"

	"github.com/gin-gonic/gin"
)

func convertToUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Avatar:      user.Avatar,
		Role:        user.Role,
		Status:      user.Status,
		Gender:      user.Gender,
		DateOfBirth: user.DateOfBirth,
		IsVerified:  user.IsVerified,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// GetProfile trả về hồ sơ của user đang đăng nhập
func GetProfile(c *gin.Context) {
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

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// UpdateUser cập nhật hồ sơ, chỉ cho chính chủ hoặc admin
func UpdateUser(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.ID != currentUserID && currentUserRole != 2 {
		response.Forbidden(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.PhoneNumber != "" {
		user.PhoneNumber = request.PhoneNumber
	}
	if request.Avatar != "" {
		user.Avatar = request.Avatar
	}
	if request.DateOfBirth != "" {
		user.DateOfBirth = request.DateOfBirth
	}
	user.Gender = request.Gender

	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}
