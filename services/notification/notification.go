package notification

import (
	"fmt"
	"log"

	"github.com/olahol/melody"
)

// Service gửi thông báo cho người dùng. Kênh email/push/SMS chưa triển khai,
// mọi thông báo chỉ được ghi log và broadcast qua websocket.
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// LogService là stub cho kênh gửi ra ngoài (email/SMS): chỉ ghi log
type LogService struct{}

func NewLogService() *LogService {
	return &LogService{}
}

func (s *LogService) SendMessage(message string) error {
	log.Printf("[notification] %s", message)
	return nil
}

// BookingMessageBuilder dựng nội dung thông báo cho sự kiện booking
type BookingMessageBuilder struct {
	bookingID uint
	itemName  string
	event     string
}

func NewBookingMessageBuilder(bookingID uint, itemName, event string) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		bookingID: bookingID,
		itemName:  itemName,
		event:     event,
	}
}

func (b *BookingMessageBuilder) Build() string {
	switch b.event {
	case "created":
		return fmt.Sprintf("🔔 Yêu cầu thuê #%d cho %q đã được gửi, chờ chủ đồ duyệt.", b.bookingID, b.itemName)
	case "confirmed":
		return fmt.Sprintf("🔔 Yêu cầu thuê #%d cho %q đã được xác nhận.", b.bookingID, b.itemName)
	case "rejected":
		return fmt.Sprintf("🔔 Yêu cầu thuê #%d cho %q đã bị từ chối.", b.bookingID, b.itemName)
	case "cancelled":
		return fmt.Sprintf("🔔 Booking #%d cho %q đã bị hủy.", b.bookingID, b.itemName)
	default:
		return fmt.Sprintf("🔔 Booking #%d cho %q có cập nhật mới.", b.bookingID, b.itemName)
	}
}
