package validator

import (
	"regexp"
	"time"

	"rentmate/constants"
	"rentmate/errors"
	"rentmate/models"
)

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateBooking validate yêu cầu thuê đồ. Không kiểm tra trùng lịch ở đây,
// phần đó thuộc về availability.
func ValidateBooking(booking *models.Booking) error {
	if booking.ItemID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID item không được để trống", nil)
	}

	if booking.UserEmail == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email người thuê không được để trống", nil)
	}

	if !isValidEmail(booking.UserEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email người thuê không hợp lệ", nil)
	}

	if booking.OwnerEmail == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email chủ đồ không được để trống", nil)
	}

	startDate, err := time.Parse(constants.DateLayout, booking.StartDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày bắt đầu không hợp lệ", err)
	}

	endDate, err := time.Parse(constants.DateLayout, booking.EndDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày kết thúc không hợp lệ", err)
	}

	if endDate.Before(startDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày kết thúc phải từ ngày bắt đầu trở đi", nil)
	}

	today := time.Now().Format(constants.DateLayout)
	if booking.StartDate < today {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày bắt đầu không được nhỏ hơn ngày hiện tại", nil)
	}

	return nil
}

// ValidateBookingStatus kiểm tra giá trị trạng thái hợp lệ
func ValidateBookingStatus(status int) error {
	switch status {
	case constants.BookingStatusPending, constants.BookingStatusConfirmed,
		constants.BookingStatusRejected, constants.BookingStatusCancelled:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái không hợp lệ", nil)
}

// ValidateItem validate thông tin item
func ValidateItem(item *models.Item) error {
	if item.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên item không được để trống", nil)
	}

	if item.UserID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID chủ đồ không được để trống", nil)
	}

	if item.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá thuê phải lớn hơn 0", nil)
	}

	if item.Deposit < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Tiền cọc không được âm", nil)
	}

	return item.ValidateStatus()
}

// ValidateReview validate đánh giá
func ValidateReview(review *models.Review) error {
	if review.ItemID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID item không được để trống", nil)
	}

	if review.Star < 1 || review.Star > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số sao phải từ 1 đến 5", nil)
	}

	return nil
}

// ValidateUnavailableDate validate ngày chặn của chủ đồ
func ValidateUnavailableDate(entry *models.UnavailableDate) error {
	if entry.ItemID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID item không được để trống", nil)
	}

	if _, err := time.Parse(constants.DateLayout, entry.Date); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày không hợp lệ", err)
	}

	switch entry.Recurring {
	case constants.RecurringNone, constants.RecurringWeekly, constants.RecurringMonthly:
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Recurring chỉ nhận weekly hoặc monthly", nil)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
