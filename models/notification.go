package models

import "time"

// Notification là bản ghi thông báo in-app. Kênh gửi ra ngoài (email/push/SMS)
// chưa triển khai, chỉ ghi log và broadcast websocket.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserEmail string    `json:"userEmail" gorm:"index"`
	BookingID uint      `json:"bookingId"`
	Message   string    `json:"message"`
	IsRead    bool      `gorm:"default:false" json:"isRead"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
