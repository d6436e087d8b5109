package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Item struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	UserID           uint            `json:"userId"` // ID của chủ đồ
	User             User            `json:"user" gorm:"foreignKey:UserID"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Address          string          `json:"address"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img" gorm:"type:json"` // Danh sách ảnh
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Status           int             `json:"status"`
	Price            int             `json:"price"` // Giá thuê theo ngày
	Deposit          int             `json:"deposit"`
	Province         string          `json:"province"`
	District         string          `json:"district"`
	Ward             string          `json:"ward"`
	Longitude        float64         `json:"longitude"`
	Latitude         float64         `json:"latitude"`
	// BlockedDates là tập ngày không còn trống đã vật chất hóa trên bản ghi
	// item: hợp của các booking confirmed và ngày chủ đồ tự chặn. Chỉ được
	// cập nhật trong transaction cùng với booking (xem services.BookingFacade).
	BlockedDates pq.StringArray `json:"blockedDates" gorm:"type:text[]"`
	Reviews      []Review       `json:"reviews" gorm:"foreignKey:ItemID"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (i *Item) ValidateStatus() error {
	if i.Status < 0 || i.Status > 2 {
		return fmt.Errorf("invalid Status: %d, must be between 0 and 2", i.Status)
	}
	return nil
}
