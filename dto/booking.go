package dto

import "time"

// CreateBookingRequest là DTO cho request tạo booking
type CreateBookingRequest struct {
	UserEmail  string `json:"userEmail" binding:"required"`
	OwnerEmail string `json:"ownerEmail" binding:"required"`
	StartDate  string `json:"startDate" binding:"required"`
	EndDate    string `json:"endDate" binding:"required"`
	Note       string `json:"note,omitempty"`
}

// UpdateBookingStatusRequest là DTO cho request chuyển trạng thái booking
type UpdateBookingStatusRequest struct {
	BookingID  uint   `json:"bookingId" binding:"required"`
	Status     int    `json:"status"`
	OwnerEmail string `json:"ownerEmail,omitempty"`
	UserEmail  string `json:"userEmail,omitempty"`
}

type BookingResponse struct {
	ID          uint        `json:"id"`
	Item        ItemSummary `json:"item"`
	UserEmail   string      `json:"userEmail"`
	OwnerEmail  string      `json:"ownerEmail"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	Status      int         `json:"status"`
	TotalDays   int         `json:"totalDays"`
	TotalAmount float64     `json:"totalAmount"`
	Note        string      `json:"note,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ItemBookingsResponse là DTO trả về cho GET /items/:id/bookings
type ItemBookingsResponse struct {
	Bookings         []BookingResponse         `json:"bookings"`
	UnavailableDates []UnavailableDateResponse `json:"unavailableDates"`
}

// CalendarDayResponse là một ngày trên lịch của item
type CalendarDayResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type UnavailableDateResponse struct {
	ID        uint   `json:"id"`
	Date      string `json:"date"`
	Recurring string `json:"recurring,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type CreateUnavailableDateRequest struct {
	Date      string `json:"date" binding:"required"`
	Recurring string `json:"recurring,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
