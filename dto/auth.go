package dto

import "time"

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Email hoặc số điện thoại
	Password   string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

type GoogleAuthInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

type ResendVerificationInput struct {
	Identifier string `json:"identifier" binding:"required"`
}

// GoogleUser là thông tin lấy ra từ payload của Google ID token
type GoogleUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Picture       string `json:"picture"`
}

type UserLoginResponse struct {
	UserID       uint      `json:"userId"`
	UserName     string    `json:"userName"`
	UserEmail    string    `json:"userEmail"`
	UserVerified bool      `json:"userVerified"`
	UserPhone    string    `json:"userPhone"`
	UserRole     int       `json:"userRole"`
	UserAvatar   string    `json:"userAvatar"`
	Gender       int       `json:"gender"`
	DateOfBirth  string    `json:"dateOfBirth"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
