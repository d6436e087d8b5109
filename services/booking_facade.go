package services

import (
	"rentmate/availability"
	"rentmate/constants"
	"rentmate/models"
	"rentmate/services/logger"
	"rentmate/services/notification"

	"gorm.io/gorm"
)

// BookingFacade gom toàn bộ nghiệp vụ chuyển trạng thái booking: kiểm tra
// trùng lịch, cập nhật booking và tập ngày blocked của item trong cùng một
// transaction, rồi gửi thông báo. Handler chỉ lo parse request và phân quyền.
type BookingFacade struct {
	db       *gorm.DB
	notifier notification.Service
	logger   logger.Logger
}

// BookingFacadeOptions là tham số khởi tạo cho BookingFacade
type BookingFacadeOptions struct {
	DB       *gorm.DB
	Notifier notification.Service
	Logger   logger.Logger
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(opts BookingFacadeOptions) *BookingFacade {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel, "booking")
	}
	return &BookingFacade{
		db:       opts.DB,
		notifier: opts.Notifier,
		logger:   l,
	}
}

// ConfirmedWindows lấy các booking confirmed của item, loại trừ excludeID,
// dưới dạng BookingWindow cho reconciler.
func (f *BookingFacade) ConfirmedWindows(itemID uint, excludeID uint) ([]availability.BookingWindow, error) {
	var bookings []models.Booking
	tx := f.db.Where("item_id = ? AND status = ?", itemID, constants.BookingStatusConfirmed)
	if excludeID != 0 {
		tx = tx.Where("id != ?", excludeID)
	}
	if err := tx.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return ToWindows(bookings), nil
}

// OwnerBlockedDates lấy danh sách ngày chủ đồ tự chặn của item
func (f *BookingFacade) OwnerBlockedDates(itemID uint) ([]string, error) {
	var entries []models.UnavailableDate
	if err := f.db.Where("item_id = ?", itemID).Find(&entries).Error; err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		dates = append(dates, e.Date)
	}
	return dates, nil
}

// ValidateCreation kiểm tra khoảng ngày đề xuất lúc tạo booking. Pending
// khác không chặn: nhiều yêu cầu chờ duyệt được phép trùng ngày, xung đột
// chỉ chốt lúc xác nhận.
func (f *BookingFacade) ValidateCreation(itemID uint, startDate, endDate string) (availability.Result, error) {
	confirmed, err := f.ConfirmedWindows(itemID, 0)
	if err != nil {
		return availability.Result{}, err
	}
	blocked, err := f.OwnerBlockedDates(itemID)
	if err != nil {
		return availability.Result{}, err
	}
	return availability.ValidateConfirmation(availability.DateRange(startDate, endDate), confirmed, blocked), nil
}

// Confirm xác nhận booking: kiểm tra lại trùng lịch (giữa lúc tạo và lúc
// duyệt ngày có thể đã bị booking khác chiếm), rồi ghi trạng thái mới cùng
// với tập blocked của item trong MỘT transaction.
func (f *BookingFacade) Confirm(booking *models.Booking) (availability.Result, error) {
	confirmed, err := f.ConfirmedWindows(booking.ItemID, booking.ID)
	if err != nil {
		return availability.Result{}, err
	}
	blocked, err := f.OwnerBlockedDates(booking.ItemID)
	if err != nil {
		return availability.Result{}, err
	}

	proposed := availability.DateRange(booking.StartDate, booking.EndDate)
	result := availability.ValidateConfirmation(proposed, confirmed, blocked)
	if !result.OK {
		return result, nil
	}

	err = f.db.Transaction(func(tx *gorm.DB) error {
		if err := models.GetBookingState(booking.Status).Confirm(booking); err != nil {
			return err
		}
		if err := tx.Save(booking).Error; err != nil {
			return err
		}

		var item models.Item
		if err := tx.First(&item, booking.ItemID).Error; err != nil {
			return err
		}
		item.BlockedDates = availability.UnionDates(item.BlockedDates, proposed)
		return tx.Save(&item).Error
	})
	if err != nil {
		return availability.Result{}, err
	}

	f.notify(booking, "confirmed")
	return result, nil
}

// NotifyCreated báo cho hai bên khi có yêu cầu thuê mới
func (f *BookingFacade) NotifyCreated(booking *models.Booking) {
	f.notify(booking, "created")
}

// Reject từ chối booking đang pending
func (f *BookingFacade) Reject(booking *models.Booking) error {
	if err := models.GetBookingState(booking.Status).Reject(booking); err != nil {
		return err
	}
	if err := f.db.Save(booking).Error; err != nil {
		return err
	}

	f.notify(booking, "rejected")
	return nil
}

// Cancel hủy booking. Nếu booking đang confirmed thì bỏ các ngày của nó khỏi
// tập blocked của item, nhưng giữ lại ngày còn được booking confirmed khác
// hoặc ngày chặn của chủ đồ cover.
func (f *BookingFacade) Cancel(booking *models.Booking) error {
	wasConfirmed := booking.Status == constants.BookingStatusConfirmed

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := models.GetBookingState(booking.Status).Cancel(booking); err != nil {
			return err
		}
		if err := tx.Save(booking).Error; err != nil {
			return err
		}

		if !wasConfirmed {
			return nil
		}

		var otherBookings []models.Booking
		if err := tx.Where("item_id = ? AND status = ? AND id != ?",
			booking.ItemID, constants.BookingStatusConfirmed, booking.ID).Find(&otherBookings).Error; err != nil {
			return err
		}

		var entries []models.UnavailableDate
		if err := tx.Where("item_id = ?", booking.ItemID).Find(&entries).Error; err != nil {
			return err
		}
		ownerBlocked := make([]string, 0, len(entries))
		for _, e := range entries {
			ownerBlocked = append(ownerBlocked, e.Date)
		}

		var item models.Item
		if err := tx.First(&item, booking.ItemID).Error; err != nil {
			return err
		}
		removing := availability.DateRange(booking.StartDate, booking.EndDate)
		item.BlockedDates = availability.SubtractDates(item.BlockedDates, removing, ToWindows(otherBookings), ownerBlocked)
		return tx.Save(&item).Error
	})
	if err != nil {
		return err
	}

	f.notify(booking, "cancelled")
	return nil
}

func (f *BookingFacade) notify(booking *models.Booking, event string) {
	var item models.Item
	if err := f.db.First(&item, booking.ItemID).Error; err != nil {
		f.logger.Error("Lỗi khi lấy item cho thông báo: %v", err)
		return
	}

	message := notification.NewBookingMessageBuilder(booking.ID, item.Name, event).Build()

	for _, email := range []string{booking.UserEmail, booking.OwnerEmail} {
		record := models.Notification{
			UserEmail: email,
			BookingID: booking.ID,
			Message:   message,
		}
		if err := f.db.Create(&record).Error; err != nil {
			f.logger.Error("Lỗi khi lưu thông báo: %v", err)
		}
	}

	if f.notifier != nil {
		if err := f.notifier.SendMessage(message); err != nil {
			f.logger.Warn("Lỗi khi broadcast thông báo: %v", err)
		}
	}
}

// ToWindows chuyển booking gorm sang BookingWindow cho package availability
func ToWindows(bookings []models.Booking) []availability.BookingWindow {
	windows := make([]availability.BookingWindow, 0, len(bookings))
	for _, b := range bookings {
		windows = append(windows, availability.BookingWindow{
			ID:        b.ID,
			UserEmail: b.UserEmail,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
			Status:    b.Status,
		})
	}
	return windows
}
