package models

import "rentmate/errors"

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Confirm(booking *Booking) error
	Reject(booking *Booking) error
	Cancel(booking *Booking) error
}

// PendingState trạng thái chờ chủ đồ duyệt
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = BookingStatusConfirmed
	return nil
}

func (s *PendingState) Reject(booking *Booking) error {
	booking.Status = BookingStatusRejected
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "booking already confirmed", nil)
}

func (s *ConfirmedState) Reject(booking *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "cannot reject confirmed booking", nil)
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// RejectedState trạng thái bị từ chối (terminal)
type RejectedState struct{}

func (s *RejectedState) Confirm(booking *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "cannot confirm rejected booking", nil)
}

func (s *RejectedState) Reject(booking *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "booking already rejected", nil)
}

func (s *RejectedState) Cancel(booking *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "cannot cancel rejected booking", nil)
}

// CancelledState trạng thái đã hủy (terminal)
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "cannot confirm cancelled booking", nil)
}

func (s *CancelledState) Reject(booking *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "cannot reject cancelled booking", nil)
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "booking already cancelled", nil)
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status int) BookingState {
	switch status {
	case BookingStatusPending:
		return &PendingState{}
	case BookingStatusConfirmed:
		return &ConfirmedState{}
	case BookingStatusRejected:
		return &RejectedState{}
	case BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
