package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"rentmate/config"
	"rentmate/dto"
	"rentmate/models"
	"rentmate/response"
	"rentmate/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{
		"user_info":   convertToUserLoginResponse(user),
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateUser(models.User{
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, convertToUserLoginResponse(user))
}

func VerifyEmail(c *gin.Context) {
	code := c.Query("token")
	if code == "" {
		response.BadRequest(c, "Cần mã xác thực")
		return
	}

	var user models.User
	if err := config.DB.Where("code = ?", code).First(&user).Error; err != nil {
		response.BadRequest(c, "Có lỗi xảy ra khi xác minh email")
		return
	}

	// Mã xác thực chỉ có hiệu lực 5 phút
	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Mã xác thực đã hết hạn. Vui lòng yêu cầu mã mới.")
		return
	}

	user.IsVerified = true
	user.Code = ""
	config.DB.Save(&user)

	response.Success(c, convertToUserLoginResponse(user))
}

func ResendVerificationCode(c *gin.Context) {
	var input dto.ResendVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Người dùng không tồn tại.")
		return
	}

	if err := services.RegenerateVerificationCode(user.ID); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// AuthGoogle xử lý đăng nhập bằng tài khoản Google
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := verifyGoogleIDToken(input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleUser := dto.GoogleUser{
		Name:          payload.Claims["name"].(string),
		Email:         payload.Claims["email"].(string),
		VerifiedEmail: payload.Claims["email_verified"].(bool),
		Picture:       payload.Claims["picture"].(string),
	}

	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email chưa được Google xác thực")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", googleUser.Email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(googleUser.Name, googleUser.Email, googleUser.Picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		log.Println("Lỗi khi tạo access token:", err)
		response.BadRequest(c, err.Error())
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{
		"user_info":   convertToUserLoginResponse(user),
		"accessToken": accessToken,
	})
}

// verifyGoogleIDToken xác thực ID token từ Google
func verifyGoogleIDToken(tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(context.Background(), tokenID, clientID)
}

func convertToUserLoginResponse(user models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		UserAvatar:   user.Avatar,
		Gender:       user.Gender,
		DateOfBirth:  user.DateOfBirth,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
