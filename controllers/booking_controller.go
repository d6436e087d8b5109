package controllers

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"rentmate/availability"
	"rentmate/config"
	"rentmate/constants"
	"rentmate/dto"
	apperrors "rentmate/errors"
	"rentmate/models"
	"rentmate/response"
	"rentmate/services"
	"rentmate/services/logger"
	"rentmate/services/notification"
	"rentmate/utils"
	"rentmate/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

var bookingFacade *services.BookingFacade

// InitBookingController khởi tạo facade dùng chung cho các handler booking
func InitBookingController(m *melody.Melody) {
	bookingFacade = services.NewBookingFacade(services.BookingFacadeOptions{
		DB:       config.DB,
		Notifier: notification.NewMelodyService(m),
		Logger:   logger.NewDefaultLogger(logger.InfoLevel, "booking"),
	})
}

func convertToItemSummary(item models.Item) dto.ItemSummary {
	return dto.ItemSummary{
		ID:       item.ID,
		Name:     item.Name,
		Category: item.Category,
		Address:  item.Address,
		Province: item.Province,
		District: item.District,
		Price:    item.Price,
		Avatar:   item.Avatar,
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:          booking.ID,
		Item:        convertToItemSummary(booking.Item),
		UserEmail:   booking.UserEmail,
		OwnerEmail:  booking.OwnerEmail,
		StartDate:   booking.StartDate,
		EndDate:     booking.EndDate,
		Status:      booking.Status,
		TotalDays:   booking.TotalDays,
		TotalAmount: booking.TotalAmount,
		Note:        booking.Note,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}

// viewerOwnsItem kiểm tra người xem có thực sự là chủ của item không: phải
// khai đúng cặp email và email đó phải trùng với chủ sở hữu trên bản ghi item.
func viewerOwnsItem(item models.Item, viewerEmail, ownerEmail string) bool {
	return ownerEmail != "" && viewerEmail == ownerEmail && ownerEmail == item.User.Email
}

// visibleToViewer kiểm tra booking có được hiện cho người xem không.
// Confirmed hiện với tất cả; pending chỉ hiện với chủ đồ và chính người gửi
// yêu cầu; trạng thái cuối chỉ hiện với hai bên liên quan.
func visibleToViewer(booking models.Booking, viewerEmail string, viewerIsOwner bool) bool {
	if viewerIsOwner {
		return true
	}
	if booking.Status == constants.BookingStatusConfirmed {
		return true
	}
	return viewerEmail != "" && booking.UserEmail == viewerEmail
}

func loadItemBookings(itemID string) ([]models.Booking, error) {
	cacheKey := fmt.Sprintf("items:%s:bookings", itemID)

	var bookings []models.Booking
	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &bookings); err == nil {
			return bookings, nil
		}
	}

	if err := config.DB.Preload("Item").Where("item_id = ?", itemID).Find(&bookings).Error; err != nil {
		return nil, err
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, bookings, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu booking vào Redis: %v", err)
		}
	}
	return bookings, nil
}

func invalidateBookingCache(itemID uint, userEmail, ownerEmail string) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteManyFromRedis(config.Ctx, rdb,
		fmt.Sprintf("items:%d:bookings", itemID),
		fmt.Sprintf("bookings:user:%s", userEmail),
		fmt.Sprintf("bookings:user:%s", ownerEmail),
		"items:all",
	)
}

// GetItemBookings trả về booking và ngày chặn của một item, lọc theo danh
// tính người xem
func GetItemBookings(c *gin.Context) {
	itemID := c.Param("id")
	viewerEmail := c.Query("userEmail")
	ownerEmail := c.Query("ownerEmail")

	var item models.Item
	if err := config.DB.Preload("User").First(&item, itemID).Error; err != nil {
		response.NotFound(c)
		return
	}

	bookings, err := loadItemBookings(itemID)
	if err != nil {
		response.ServerError(c)
		return
	}

	viewerIsOwner := viewerOwnsItem(item, viewerEmail, ownerEmail)

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if !visibleToViewer(booking, viewerEmail, viewerIsOwner) {
			continue
		}
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	sort.Slice(bookingResponses, func(i, j int) bool {
		return bookingResponses[i].UpdatedAt.After(bookingResponses[j].UpdatedAt)
	})

	var entries []models.UnavailableDate
	if err := config.DB.Where("item_id = ?", itemID).Find(&entries).Error; err != nil {
		response.ServerError(c)
		return
	}
	unavailable := make([]dto.UnavailableDateResponse, 0, len(entries))
	for _, e := range entries {
		unavailable = append(unavailable, dto.UnavailableDateResponse{
			ID:        e.ID,
			Date:      e.Date,
			Recurring: e.Recurring,
			Reason:    e.Reason,
		})
	}

	response.Success(c, dto.ItemBookingsResponse{
		Bookings:         bookingResponses,
		UnavailableDates: unavailable,
	})
}

// CreateItemBooking tạo yêu cầu thuê mới ở trạng thái pending. Pending khác
// trùng ngày vẫn được phép, chỉ booking confirmed và ngày chủ đồ chặn mới
// chặn tạo.
func CreateItemBooking(c *gin.Context) {
	itemIDStr := c.Param("id")
	itemID, err := strconv.ParseUint(itemIDStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "ID item không hợp lệ")
		return
	}

	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var item models.Item
	if err := config.DB.Preload("User").First(&item, itemID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if item.Status != constants.ItemStatusActive {
		response.BadRequest(c, "Item hiện không cho thuê")
		return
	}

	booking := models.Booking{
		ItemID:     uint(itemID),
		UserEmail:  request.UserEmail,
		OwnerEmail: request.OwnerEmail,
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		Note:       request.Note,
		Status:     constants.BookingStatusPending,
	}

	if err := validator.ValidateBooking(&booking); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if booking.OwnerEmail != item.User.Email {
		response.BadRequest(c, "Email chủ đồ không khớp với item")
		return
	}

	result, err := bookingFacade.ValidateCreation(uint(itemID), booking.StartDate, booking.EndDate)
	if err != nil {
		response.ServerError(c)
		return
	}
	if !result.OK {
		response.ConflictDates(c, result.ConflictDates)
		return
	}

	booking.TotalDays = len(availability.DateRange(booking.StartDate, booking.EndDate))
	booking.TotalAmount = float64(booking.TotalDays * item.Price)

	if err := config.DB.Create(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingFacade.NotifyCreated(&booking)

	if err := services.SendBookingMail(booking.UserEmail, booking.ID, booking.TotalAmount, booking.StartDate, booking.EndDate); err != nil {
		log.Printf("Gửi email không thành công: %v", err)
	}

	invalidateBookingCache(booking.ItemID, booking.UserEmail, booking.OwnerEmail)

	booking.Item = item
	response.Success(c, convertToBookingResponse(booking))
}

// respondTransitionError phân loại lỗi khi chuyển trạng thái booking: lỗi
// chuyển trạng thái không hợp lệ (AppError từ state machine) là lỗi phía
// client, mọi lỗi khác (DB, transaction) chỉ ghi log và trả lỗi chung.
func respondTransitionError(c *gin.Context, err error) {
	if apperrors.IsAppError(err) {
		response.BadRequest(c, err.Error())
		return
	}
	log.Printf("Lỗi khi chuyển trạng thái booking: %v", err)
	response.ServerError(c)
}

// UpdateItemBookingStatus chuyển trạng thái booking theo state machine:
// chỉ chủ đồ được confirm/reject, người thuê hoặc chủ đồ được cancel.
// Confirm kiểm tra lại trùng lịch vì ngày có thể đã bị chiếm giữa lúc tạo
// và lúc duyệt.
func UpdateItemBookingStatus(c *gin.Context) {
	itemID := c.Param("id")

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateBookingStatus(req.Status); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Item").First(&booking, req.BookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if strconv.FormatUint(uint64(booking.ItemID), 10) != itemID {
		response.NotFound(c)
		return
	}

	// Trạng thái cuối không chuyển đi đâu được nữa, chặn sớm trước khi
	// vào state machine
	if booking.IsTerminal() {
		response.BadRequest(c, "Booking đã ở trạng thái cuối")
		return
	}

	switch req.Status {
	case constants.BookingStatusConfirmed:
		if req.OwnerEmail == "" || req.OwnerEmail != booking.OwnerEmail {
			response.Forbidden(c)
			return
		}
		result, err := bookingFacade.Confirm(&booking)
		if err != nil {
			respondTransitionError(c, err)
			return
		}
		if !result.OK {
			response.ConflictDates(c, result.ConflictDates)
			return
		}

	case constants.BookingStatusRejected:
		if req.OwnerEmail == "" || req.OwnerEmail != booking.OwnerEmail {
			response.Forbidden(c)
			return
		}
		if err := bookingFacade.Reject(&booking); err != nil {
			respondTransitionError(c, err)
			return
		}

	case constants.BookingStatusCancelled:
		isRenter := req.UserEmail != "" && req.UserEmail == booking.UserEmail
		isOwner := req.OwnerEmail != "" && req.OwnerEmail == booking.OwnerEmail
		if !isRenter && !isOwner {
			response.Forbidden(c)
			return
		}
		if err := bookingFacade.Cancel(&booking); err != nil {
			respondTransitionError(c, err)
			return
		}

	default:
		response.BadRequest(c, "Không thể chuyển về trạng thái pending")
		return
	}

	utils.Audit("booking #%d chuyển sang trạng thái %d", booking.ID, booking.Status)
	invalidateBookingCache(booking.ItemID, booking.UserEmail, booking.OwnerEmail)

	response.Success(c, convertToBookingResponse(booking))
}

// GetBookingsByUser trả về lịch sử thuê của một user (cả hai vai trò)
func GetBookingsByUser(c *gin.Context) {
	email := c.Query("userEmail")
	if email == "" {
		response.BadRequest(c, "userEmail là bắt buộc")
		return
	}

	cacheKey := fmt.Sprintf("bookings:user:%s", email)
	var bookings []models.Booking

	rdb, redisErr := config.ConnectRedis()
	if redisErr != nil || services.GetFromRedis(config.Ctx, rdb, cacheKey, &bookings) != nil {
		if err := config.DB.Preload("Item").
			Where("user_email = ? OR owner_email = ?", email, email).
			Find(&bookings).Error; err != nil {
			response.ServerError(c)
			return
		}
		if redisErr == nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKey, bookings, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu lịch sử booking vào Redis: %v", err)
			}
		}
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].UpdatedAt.After(bookings[j].UpdatedAt)
	})

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithTotal(c, bookingResponses, len(bookingResponses))
}

// GetItemCalendar phân loại từng ngày trong tháng yêu cầu cho một item
func GetItemCalendar(c *gin.Context) {
	itemID := c.Param("id")
	month := c.DefaultQuery("month", "")
	viewerEmail := c.Query("userEmail")
	ownerEmail := c.Query("ownerEmail")

	if month == "" {
		response.BadRequest(c, "month là bắt buộc")
		return
	}

	parsedMonth, err := time.ParseInLocation(constants.MonthLayout, month, time.Local)
	if err != nil {
		response.BadRequest(c, "Tháng không hợp lệ, vui lòng sử dụng định dạng yyyy-mm")
		return
	}

	var item models.Item
	if err := config.DB.Preload("User").First(&item, itemID).Error; err != nil {
		response.NotFound(c)
		return
	}

	bookings, err := loadItemBookings(itemID)
	if err != nil {
		log.Printf("Error retrieving item bookings: %v", err)
		response.ServerError(c)
		return
	}

	var entries []models.UnavailableDate
	if err := config.DB.Where("item_id = ?", itemID).Find(&entries).Error; err != nil {
		response.ServerError(c)
		return
	}
	ownerBlocked := make([]string, 0, len(entries))
	for _, e := range entries {
		ownerBlocked = append(ownerBlocked, e.Date)
	}

	firstDay := time.Date(parsedMonth.Year(), parsedMonth.Month(), 1, 0, 0, 0, 0, time.Local)
	lastDay := firstDay.AddDate(0, 1, -1)

	viewerIsOwner := viewerOwnsItem(item, viewerEmail, ownerEmail)
	windows := services.ToWindows(bookings)
	today := availability.Today()

	var days []dto.CalendarDayResponse
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(constants.DateLayout)
		days = append(days, dto.CalendarDayResponse{
			Date:   dateStr,
			Status: availability.Classify(dateStr, today, windows, ownerBlocked, viewerEmail, viewerIsOwner),
		})
	}

	response.Success(c, days)
}
