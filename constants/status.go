package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusRejected  = 2
	BookingStatusCancelled = 3
)

// Item status
const (
	ItemStatusActive   = 1
	ItemStatusHidden   = 0
	ItemStatusArchived = 2
)

// Trạng thái từng ngày trên lịch của item
const (
	DateStatusPast         = "past"
	DateStatusBooked       = "booked"
	DateStatusPending      = "pending"
	DateStatusOwnerBlocked = "owner-blocked"
	DateStatusAvailable    = "available"
)

// Recurring flag cho ngày chặn của chủ đồ (chỉ là hint hiển thị)
const (
	RecurringNone    = ""
	RecurringWeekly  = "weekly"
	RecurringMonthly = "monthly"
)

// DateLayout là định dạng ngày ISO dùng cho booking và lịch
const DateLayout = "2006-01-02"

// MonthLayout là định dạng tháng cho API lịch
const MonthLayout = "2006-01"
