// Package availability chứa logic phân loại ngày và kiểm tra trùng lịch cho
// booking. Toàn bộ hàm trong package là pure function, không đụng tới DB hay
// HTTP để có thể test độc lập.
package availability

import (
	"time"

	"rentmate/constants"
)

// BookingWindow là khoảng thuê tối thiểu mà reconciler cần biết về một
// booking, tách khỏi models để tránh kéo theo gorm.
type BookingWindow struct {
	ID        uint
	UserEmail string
	StartDate string // 2006-01-02, inclusive
	EndDate   string // 2006-01-02, inclusive
	Status    int
}

// Covers kiểm tra ngày có nằm trong khoảng thuê không. So sánh chuỗi ISO
// trực tiếp vì định dạng sắp xếp được theo thứ tự từ điển.
func (w BookingWindow) Covers(date string) bool {
	return w.StartDate <= date && date <= w.EndDate
}

// Result là kết quả kiểm tra xác nhận booking. Trả về đầy đủ danh sách ngày
// trùng chứ không chỉ ngày đầu tiên để UI hiển thị chính xác.
type Result struct {
	OK            bool     `json:"ok"`
	ConflictDates []string `json:"conflictDates,omitempty"`
}

// DateRange trả về danh sách ngày ISO từ start đến end (inclusive), mỗi bước
// một ngày theo lịch địa phương. end trước start hoặc ngày không parse được
// thì trả về rỗng.
func DateRange(start, end string) []string {
	startDate, err := time.ParseInLocation(constants.DateLayout, start, time.Local)
	if err != nil {
		return nil
	}
	endDate, err := time.ParseInLocation(constants.DateLayout, end, time.Local)
	if err != nil {
		return nil
	}

	var dates []string
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day.Format(constants.DateLayout))
	}
	return dates
}

// Today trả về ngày hiện tại theo lịch địa phương, định dạng ISO.
func Today() string {
	return time.Now().Format(constants.DateLayout)
}

// Classify phân loại một ngày trên lịch của item theo thứ tự ưu tiên:
// past > booked > pending > owner-blocked > available.
//
// Booking confirmed là tín hiệu mạnh nhất (đồ đã giao). Pending chỉ hiện với
// chủ đồ và chính người gửi yêu cầu, người lạ thấy available để không lộ yêu
// cầu của người khác. Ngày chủ đồ chặn yếu nhất, nhường chỗ cho mọi booking.
func Classify(date, today string, bookings []BookingWindow, ownerBlocked []string, viewerEmail string, viewerIsOwner bool) string {
	if date < today {
		return constants.DateStatusPast
	}

	for _, b := range bookings {
		if b.Status == constants.BookingStatusConfirmed && b.Covers(date) {
			return constants.DateStatusBooked
		}
	}

	for _, b := range bookings {
		if b.Status != constants.BookingStatusPending || !b.Covers(date) {
			continue
		}
		if viewerIsOwner || (viewerEmail != "" && b.UserEmail == viewerEmail) {
			return constants.DateStatusPending
		}
	}

	for _, blocked := range ownerBlocked {
		if blocked == date {
			return constants.DateStatusOwnerBlocked
		}
	}

	return constants.DateStatusAvailable
}

// ValidateConfirmation kiểm tra toàn bộ khoảng ngày đề xuất với các booking
// confirmed khác (đã loại booking đang được xác nhận) và tập ngày chủ đồ
// chặn. Không cho xác nhận một phần: chỉ cần một ngày trùng là từ chối cả
// khoảng, kèm đầy đủ danh sách ngày trùng.
func ValidateConfirmation(proposed []string, confirmed []BookingWindow, ownerBlocked []string) Result {
	blockedSet := make(map[string]struct{}, len(ownerBlocked))
	for _, d := range ownerBlocked {
		blockedSet[d] = struct{}{}
	}

	var conflicts []string
	for _, date := range proposed {
		if _, ok := blockedSet[date]; ok {
			conflicts = append(conflicts, date)
			continue
		}
		for _, b := range confirmed {
			if b.Covers(date) {
				conflicts = append(conflicts, date)
				break
			}
		}
	}

	if len(conflicts) > 0 {
		return Result{OK: false, ConflictDates: conflicts}
	}
	return Result{OK: true}
}

// SubtractDates bỏ các ngày của một booking confirmed vừa hủy ra khỏi tập
// blocked đã vật chất hóa, nhưng giữ lại ngày vẫn còn được booking confirmed
// khác hoặc ngày chặn của chủ đồ cover.
func SubtractDates(blocked []string, removing []string, otherConfirmed []BookingWindow, ownerBlocked []string) []string {
	removeSet := make(map[string]struct{}, len(removing))
	for _, d := range removing {
		removeSet[d] = struct{}{}
	}
	ownerSet := make(map[string]struct{}, len(ownerBlocked))
	for _, d := range ownerBlocked {
		ownerSet[d] = struct{}{}
	}

	keep := func(date string) bool {
		if _, ok := ownerSet[date]; ok {
			return true
		}
		for _, b := range otherConfirmed {
			if b.Covers(date) {
				return true
			}
		}
		return false
	}

	result := make([]string, 0, len(blocked))
	for _, date := range blocked {
		if _, ok := removeSet[date]; ok && !keep(date) {
			continue
		}
		result = append(result, date)
	}
	return result
}

// UnionDates hợp khoảng ngày mới xác nhận vào tập blocked, bỏ trùng lặp và
// giữ nguyên thứ tự chèn.
func UnionDates(blocked []string, adding []string) []string {
	seen := make(map[string]struct{}, len(blocked)+len(adding))
	result := make([]string, 0, len(blocked)+len(adding))
	for _, d := range blocked {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}
	for _, d := range adding {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}
	return result
}
