package jobs

import (
	"log"
	"time"

	"rentmate/config"
	"rentmate/constants"
	"rentmate/models"
	"rentmate/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Chạy lúc 0h mỗi ngày: tự động từ chối các booking chờ duyệt đã quá ngày
	// bắt đầu, và dọn các ngày chặn một lần đã trôi qua
	_, err := c.AddFunc("0 0 * * *", func() {
		if err := rejectExpiredPendingBookings(m); err != nil {
			log.Printf("Lỗi khi dọn các booking chờ duyệt quá hạn: %v", err)
		}
		if err := cleanPastUnavailableDates(); err != nil {
			log.Printf("Lỗi khi dọn các ngày chặn đã qua: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// rejectExpiredPendingBookings từ chối mọi booking vẫn chờ duyệt
// khi ngày bắt đầu đã trôi qua.
func rejectExpiredPendingBookings(m *melody.Melody) error {
	today := time.Now().Format(constants.DateLayout)

	var expired []models.Booking
	if err := config.DB.Where("status = ? AND start_date < ?", constants.BookingStatusPending, today).Find(&expired).Error; err != nil {
		return err
	}

	if len(expired) == 0 {
		return nil
	}

	for i := range expired {
		expired[i].Status = constants.BookingStatusRejected
		if err := config.DB.Save(&expired[i]).Error; err != nil {
			log.Printf("Lỗi khi từ chối booking #%d: %v", expired[i].ID, err)
			continue
		}

		notice := models.Notification{
			UserEmail: expired[i].UserEmail,
			BookingID: expired[i].ID,
			Message:   "Yêu cầu thuê của bạn đã bị từ chối do quá ngày bắt đầu",
		}
		if err := config.DB.Create(&notice).Error; err != nil {
			log.Printf("Lỗi khi ghi thông báo cho booking #%d: %v", expired[i].ID, err)
		}

		if m != nil {
			m.Broadcast([]byte(notice.Message))
		}
	}

	utils.Audit("cron: đã từ chối %d booking chờ duyệt quá hạn", len(expired))
	log.Printf("Đã từ chối %d booking chờ duyệt quá hạn", len(expired))
	return nil
}

// cleanPastUnavailableDates xóa các ngày chặn một lần đã trôi qua. Ngày chặn
// lặp lại (weekly/monthly) là hint hiển thị nên giữ nguyên.
func cleanPastUnavailableDates() error {
	today := time.Now().Format(constants.DateLayout)

	result := config.DB.Where("recurring = ? AND date < ?", constants.RecurringNone, today).
		Delete(&models.UnavailableDate{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		utils.Audit("cron: đã dọn %d ngày chặn đã qua", result.RowsAffected)
	}
	return nil
}
