package models

import "time"

// Favorite là một item nằm trong danh sách yêu thích của user
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserEmail string    `json:"userEmail" gorm:"index"`
	ItemID    uint      `json:"itemId"`
	Item      Item      `json:"item" gorm:"foreignKey:ItemID"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
