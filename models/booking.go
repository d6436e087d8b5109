package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusRejected  = 2
	BookingStatusCancelled = 3
)

type Booking struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ItemID      uint      `json:"itemId"`
	Item        Item      `json:"item" gorm:"foreignKey:ItemID"`
	UserEmail   string    `json:"userEmail"`  // Email người thuê
	OwnerEmail  string    `json:"ownerEmail"` // Email chủ đồ
	StartDate   string    `json:"startDate"`  // Ngày bắt đầu thuê (2006-01-02, inclusive)
	EndDate     string    `json:"endDate"`    // Ngày kết thúc thuê (2006-01-02, inclusive)
	Status      int       `json:"status"`
	TotalDays   int       `json:"totalDays"`
	TotalAmount float64   `json:"totalAmount"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsTerminal kiểm tra booking đã ở trạng thái cuối chưa
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusRejected || b.Status == BookingStatusCancelled
}

// CoversDate kiểm tra ngày (2006-01-02) có nằm trong khoảng thuê không.
// So sánh chuỗi ISO là đủ vì định dạng sắp xếp được theo thứ tự từ điển.
func (b *Booking) CoversDate(date string) bool {
	return b.StartDate <= date && date <= b.EndDate
}
