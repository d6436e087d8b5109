package models

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId"`
	ItemID    uint      `json:"itemId"`
	Comment   string    `json:"comment"` // Bình luận của người thuê
	Star      int       `json:"star"`    // Số sao (điểm đánh giá)
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
}
