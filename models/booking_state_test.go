package models

import (
	"fmt"
	"testing"

	"rentmate/errors"
)

func TestBookingStateTransitions(t *testing.T) {
	type action func(BookingState, *Booking) error
	confirm := func(s BookingState, b *Booking) error { return s.Confirm(b) }
	reject := func(s BookingState, b *Booking) error { return s.Reject(b) }
	cancel := func(s BookingState, b *Booking) error { return s.Cancel(b) }

	tests := []struct {
		name       string
		from       int
		act        action
		wantErr    bool
		wantStatus int
	}{
		{"pending confirm", BookingStatusPending, confirm, false, BookingStatusConfirmed},
		{"pending reject", BookingStatusPending, reject, false, BookingStatusRejected},
		{"pending cancel", BookingStatusPending, cancel, false, BookingStatusCancelled},
		{"confirmed cancel", BookingStatusConfirmed, cancel, false, BookingStatusCancelled},
		{"confirmed confirm", BookingStatusConfirmed, confirm, true, BookingStatusConfirmed},
		{"confirmed reject", BookingStatusConfirmed, reject, true, BookingStatusConfirmed},
		{"rejected confirm", BookingStatusRejected, confirm, true, BookingStatusRejected},
		{"rejected cancel", BookingStatusRejected, cancel, true, BookingStatusRejected},
		{"rejected reject", BookingStatusRejected, reject, true, BookingStatusRejected},
		{"cancelled confirm", BookingStatusCancelled, confirm, true, BookingStatusCancelled},
		{"cancelled reject", BookingStatusCancelled, reject, true, BookingStatusCancelled},
		{"cancelled cancel", BookingStatusCancelled, cancel, true, BookingStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &Booking{Status: tt.from}
			err := tt.act(GetBookingState(tt.from), booking)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if booking.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", booking.Status, tt.wantStatus)
			}
		})
	}
}

func TestBookingStateTransitionErrorsAreTyped(t *testing.T) {
	// Lỗi chuyển trạng thái không hợp lệ phải là AppError với mã
	// INVALID_STATUS để handler phân biệt được với lỗi hệ thống (DB,
	// transaction): chỉ lỗi chuyển trạng thái được trả 400, còn lại 500.
	invalid := []struct {
		name string
		err  error
	}{
		{"confirmed confirm", GetBookingState(BookingStatusConfirmed).Confirm(&Booking{Status: BookingStatusConfirmed})},
		{"confirmed reject", GetBookingState(BookingStatusConfirmed).Reject(&Booking{Status: BookingStatusConfirmed})},
		{"rejected confirm", GetBookingState(BookingStatusRejected).Confirm(&Booking{Status: BookingStatusRejected})},
		{"rejected cancel", GetBookingState(BookingStatusRejected).Cancel(&Booking{Status: BookingStatusRejected})},
		{"cancelled confirm", GetBookingState(BookingStatusCancelled).Confirm(&Booking{Status: BookingStatusCancelled})},
		{"cancelled cancel", GetBookingState(BookingStatusCancelled).Cancel(&Booking{Status: BookingStatusCancelled})},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.IsAppError(tt.err) {
				t.Fatalf("err = %v, muốn AppError", tt.err)
			}
			if code := errors.GetAppError(tt.err).Code; code != errors.ErrCodeInvalidStatus {
				t.Errorf("code = %s, muốn %s", code, errors.ErrCodeInvalidStatus)
			}
		})
	}

	if errors.IsAppError(fmt.Errorf("driver: bad connection")) {
		t.Error("lỗi hệ thống không được nhận nhầm là AppError")
	}
}

func TestBookingIsTerminal(t *testing.T) {
	for status, want := range map[int]bool{
		BookingStatusPending:   false,
		BookingStatusConfirmed: false,
		BookingStatusRejected:  true,
		BookingStatusCancelled: true,
	} {
		b := Booking{Status: status}
		if b.IsTerminal() != want {
			t.Errorf("IsTerminal(status=%d) = %v, want %v", status, b.IsTerminal(), want)
		}
	}
}

func TestBookingCoversDate(t *testing.T) {
	b := Booking{StartDate: "2024-03-10", EndDate: "2024-03-12"}

	for date, want := range map[string]bool{
		"2024-03-09": false,
		"2024-03-10": true,
		"2024-03-11": true,
		"2024-03-12": true,
		"2024-03-13": false,
	} {
		if b.CoversDate(date) != want {
			t.Errorf("CoversDate(%s) = %v, want %v", date, b.CoversDate(date), want)
		}
	}
}
