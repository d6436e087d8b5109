package models

import (
	"time"
)

// UnavailableDate là ngày chủ đồ tự chặn, độc lập với booking.
// Recurring chỉ là hint hiển thị cho UI, server không tự mở rộng.
type UnavailableDate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ItemID    uint      `json:"itemId"`
	Date      string    `json:"date"` // Định dạng 2006-01-02
	Recurring string    `json:"recurring,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
