package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"rentmate/config"
	"rentmate/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var secretKey = []byte(os.Getenv("JWT_SECRET"))
var refreshSecretKey = []byte(os.Getenv("JWT_REFRESH_SECRET"))

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// GenerateVerificationCode sinh mã xác thực 6 số
func GenerateVerificationCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// SendVerificationCode gửi mã xác thực cho user. Kênh email chưa triển khai,
// hiện chỉ ghi log.
func SendVerificationCode(email, code string) error {
	log.Printf("[mail-stub] gửi mã xác thực %s tới %s", code, email)
	return nil
}

// SendBookingMail thông báo booking qua email. Chưa triển khai, chỉ ghi log.
func SendBookingMail(email string, bookingID uint, totalAmount float64, startDate, endDate string) error {
	log.Printf("[mail-stub] booking #%d (%s -> %s, %.0f) gửi tới %s", bookingID, startDate, endDate, totalAmount, email)
	return nil
}

// GenerateToken sinh JWT cho user
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

// CreateUser tạo user mới với mật khẩu đã băm
func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, errors.New("không được để trống email, password")
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	input.Password = string(hashedPassword)

	code, err := GenerateVerificationCode()
	if err != nil {
		return models.User{}, err
	}
	input.Code = code
	input.CodeCreatedAt = time.Now()

	if err := config.DB.Create(&input).Error; err != nil {
		return models.User{}, err
	}

	if err := SendVerificationCode(input.Email, code); err != nil {
		log.Printf("Lỗi khi gửi mã xác thực: %v", err)
	}

	return input, nil
}

// CreateGoogleUser tạo user từ tài khoản Google, mật khẩu ngẫu nhiên
func CreateGoogleUser(name, email, picture string) (models.User, error) {
	randomPassword, err := GenerateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(randomPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:       name,
		Email:      email,
		Password:   string(hashedPassword),
		Avatar:     picture,
		IsVerified: true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

// RegenerateVerificationCode cấp lại mã xác thực cho user
func RegenerateVerificationCode(userID uint) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}

	code, err := GenerateVerificationCode()
	if err != nil {
		return err
	}

	user.Code = code
	user.CodeCreatedAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return SendVerificationCode(user.Email, code)
}

// GetUserByEmail tìm user theo email
func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
