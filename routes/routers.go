package routes

import (
	"context"
	"net/http"

	"rentmate/config"
	"rentmate/controllers"
	middlewares "rentmate/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	controllers.InitBookingController(m)

	v1 := router.Group("/api/v1")

	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/resendCode", controllers.ResendVerificationCode)
	v1.POST("/auth/google", controllers.AuthGoogle)

	v1.GET("/profile", controllers.GetProfile)
	v1.PUT("/users", middlewares.AuthMiddleware(0, 1, 2), controllers.UpdateUser)

	v1.GET("/items", controllers.GetAllItems)
	v1.POST("/items", controllers.CreateItem)
	v1.GET("/items/:id", controllers.GetItemDetail)
	v1.PUT("/itemUpdate", controllers.UpdateItem)
	v1.PUT("/itemStatus", controllers.ChangeItemStatus)

	v1.GET("/items/:id/bookings", controllers.GetItemBookings)
	v1.POST("/items/:id/bookings", controllers.CreateItemBooking)
	v1.PUT("/items/:id/bookings", controllers.UpdateItemBookingStatus)
	v1.GET("/items/:id/calendar", controllers.GetItemCalendar)
	v1.GET("/bookingHistory", controllers.GetBookingsByUser)

	v1.GET("/items/:id/unavailable-dates", controllers.GetUnavailableDates)
	v1.POST("/items/:id/unavailable-dates", controllers.CreateUnavailableDate)
	v1.DELETE("/items/:id/unavailable-dates", controllers.DeleteUnavailableDate)

	v1.GET("/users/:email/favorites", controllers.GetFavorites)
	v1.POST("/users/:email/favorites", controllers.AddFavorite)
	v1.DELETE("/users/:email/favorites", controllers.RemoveFavorite)

	v1.GET("/items/:id/reviews", controllers.GetItemReviews)
	v1.POST("/items/:id/reviews", controllers.CreateReview)
	v1.PUT("/reviewUpdate", controllers.UpdateReview)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "items"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})
}
