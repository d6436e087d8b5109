package validator

import (
	"testing"
	"time"

	"rentmate/constants"
	"rentmate/errors"
	"rentmate/models"
)

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(constants.DateLayout)
}

func TestValidateBooking(t *testing.T) {
	valid := models.Booking{
		ItemID:     1,
		UserEmail:  "renter@mail.com",
		OwnerEmail: "owner@mail.com",
		StartDate:  futureDate(5),
		EndDate:    futureDate(7),
	}

	tests := []struct {
		name     string
		mutate   func(b *models.Booking)
		wantCode errors.ErrorCode
	}{
		{"valid", func(b *models.Booking) {}, ""},
		{"single day", func(b *models.Booking) { b.EndDate = b.StartDate }, ""},
		{"missing item", func(b *models.Booking) { b.ItemID = 0 }, errors.ErrCodeRequiredField},
		{"missing renter", func(b *models.Booking) { b.UserEmail = "" }, errors.ErrCodeRequiredField},
		{"bad renter email", func(b *models.Booking) { b.UserEmail = "not-an-email" }, errors.ErrCodeInvalidEmail},
		{"missing owner", func(b *models.Booking) { b.OwnerEmail = "" }, errors.ErrCodeRequiredField},
		{"bad start format", func(b *models.Booking) { b.StartDate = "05/03/2024" }, errors.ErrCodeInvalidFormat},
		{"bad end format", func(b *models.Booking) { b.EndDate = "tomorrow" }, errors.ErrCodeInvalidFormat},
		{"end before start", func(b *models.Booking) { b.StartDate, b.EndDate = b.EndDate, b.StartDate }, errors.ErrCodeInvalidDateRange},
		{"start in the past", func(b *models.Booking) {
			b.StartDate = futureDate(-3)
			b.EndDate = futureDate(1)
		}, errors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			err := ValidateBooking(&b)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			appErr := errors.GetAppError(err)
			if appErr == nil {
				t.Fatalf("expected AppError %s, got %v", tt.wantCode, err)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestValidateBookingStatus(t *testing.T) {
	for _, status := range []int{
		constants.BookingStatusPending,
		constants.BookingStatusConfirmed,
		constants.BookingStatusRejected,
		constants.BookingStatusCancelled,
	} {
		if err := ValidateBookingStatus(status); err != nil {
			t.Errorf("status %d should be valid: %v", status, err)
		}
	}

	for _, status := range []int{-1, 4, 99} {
		if err := ValidateBookingStatus(status); err == nil {
			t.Errorf("status %d should be invalid", status)
		}
	}
}

func TestValidateUnavailableDate(t *testing.T) {
	tests := []struct {
		name    string
		entry   models.UnavailableDate
		wantErr bool
	}{
		{"valid", models.UnavailableDate{ItemID: 1, Date: "2024-06-01"}, false},
		{"weekly", models.UnavailableDate{ItemID: 1, Date: "2024-06-01", Recurring: "weekly"}, false},
		{"monthly", models.UnavailableDate{ItemID: 1, Date: "2024-06-01", Recurring: "monthly"}, false},
		{"missing item", models.UnavailableDate{Date: "2024-06-01"}, true},
		{"bad date", models.UnavailableDate{ItemID: 1, Date: "01/06/2024"}, true},
		{"bad recurring", models.UnavailableDate{ItemID: 1, Date: "2024-06-01", Recurring: "daily"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUnavailableDate(&tt.entry)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReview(t *testing.T) {
	if err := ValidateReview(&models.Review{ItemID: 1, Star: 5}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateReview(&models.Review{ItemID: 1, Star: 0}); err == nil {
		t.Error("star 0 should be invalid")
	}
	if err := ValidateReview(&models.Review{ItemID: 1, Star: 6}); err == nil {
		t.Error("star 6 should be invalid")
	}
	if err := ValidateReview(&models.Review{Star: 3}); err == nil {
		t.Error("missing item should be invalid")
	}
}
