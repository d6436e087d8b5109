package dto

import "time"

type ReviewResponse struct {
	ID        uint      `json:"id"`
	ItemID    uint      `json:"itemId"`
	Comment   string    `json:"comment"`
	Star      int       `json:"star"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      UserInfo  `json:"user"`
}

type CreateReviewRequest struct {
	ItemID  uint   `json:"itemId" binding:"required"`
	Comment string `json:"comment"`
	Star    int    `json:"star" binding:"required"`
}

type UpdateReviewRequest struct {
	ID      uint   `json:"id" binding:"required"`
	Comment string `json:"comment"`
	Star    int    `json:"star"`
}
