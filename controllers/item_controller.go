package controllers

import (
	"errors"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"rentmate/config"
	"rentmate/constants"
	"rentmate/dto"
	"rentmate/models"
	"rentmate/response"
	"rentmate/services"
	"rentmate/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// Hàm chuẩn hóa chuỗi tìm kiếm
func normalizeInput(input string) string {
	input = norm.NFC.String(strings.TrimSpace(input))
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// matchesKeyword kiểm tra item có khớp từ khóa tìm kiếm không: chứa chuỗi
// trực tiếp hoặc đủ gần theo levenshtein
func matchesKeyword(item models.Item, keyword string) bool {
	if keyword == "" {
		return true
	}

	name := normalizeInput(item.Name)
	if strings.Contains(name, keyword) {
		return true
	}
	if strings.Contains(normalizeInput(item.Category), keyword) {
		return true
	}

	for _, word := range strings.Fields(name) {
		if calculateSimilarity(word, keyword) >= 0.7 {
			return true
		}
	}
	return false
}

func convertToItemResponse(item models.Item) dto.ItemResponse {
	numReview := len(item.Reviews)
	totalStar := 0
	for _, r := range item.Reviews {
		totalStar += r.Star
	}
	avgStar := 0.0
	if numReview > 0 {
		avgStar = float64(totalStar) / float64(numReview)
	}

	return dto.ItemResponse{
		ID:               item.ID,
		UserID:           item.UserID,
		Name:             item.Name,
		Category:         item.Category,
		Address:          item.Address,
		Avatar:           item.Avatar,
		Img:              item.Img,
		ShortDescription: item.ShortDescription,
		Description:      item.Description,
		Status:           item.Status,
		Price:            item.Price,
		Deposit:          item.Deposit,
		Province:         item.Province,
		District:         item.District,
		Ward:             item.Ward,
		NumReview:        numReview,
		AvgStar:          avgStar,
		Owner: dto.UserInfo{
			ID:     item.User.ID,
			Name:   item.User.Name,
			Email:  item.User.Email,
			Avatar: item.User.Avatar,
		},
	}
}

// GetAllItems trả về danh sách item đang cho thuê, có filter và phân trang
func GetAllItems(c *gin.Context) {
	cacheKey := "items:all"

	var allItems []models.Item
	rdb, err := config.ConnectRedis()
	if err != nil || services.GetFromRedis(config.Ctx, rdb, cacheKey, &allItems) != nil {
		if err := config.DB.Preload("User").Preload("Reviews").
			Where("status = ?", constants.ItemStatusActive).
			Find(&allItems).Error; err != nil {
			response.ServerError(c)
			return
		}
		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allItems, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách item vào Redis: %v", err)
			}
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	categoryFilter := c.Query("category")
	provinceFilter := c.Query("province")
	maxPriceStr := c.Query("maxPrice")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	keyword := ""
	if nameFilter != "" {
		decodedName, _ := url.QueryUnescape(nameFilter)
		keyword = normalizeInput(decodedName)
	}

	// Matcher theo tỉnh để chấp nhận từ khóa gõ sai chính tả
	var cmProvince *closestmatch.ClosestMatch
	if provinceFilter != "" {
		provinces := make([]string, 0, len(allItems))
		seen := map[string]struct{}{}
		for _, item := range allItems {
			p := normalizeInput(item.Province)
			if p == "" {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			provinces = append(provinces, p)
		}
		cmProvince = createMatcher(provinces)
	}

	filteredItems := make([]models.Item, 0)
	for _, item := range allItems {
		if !matchesKeyword(item, keyword) {
			continue
		}
		if categoryFilter != "" && !strings.EqualFold(item.Category, categoryFilter) {
			continue
		}
		if provinceFilter != "" {
			want := cmProvince.Closest(normalizeInput(provinceFilter))
			if normalizeInput(item.Province) != want {
				continue
			}
		}
		if maxPriceStr != "" {
			maxPrice, err := strconv.Atoi(maxPriceStr)
			if err == nil && item.Price > maxPrice {
				continue
			}
		}
		filteredItems = append(filteredItems, item)
	}

	totalFiltered := len(filteredItems)

	sort.Slice(filteredItems, func(i, j int) bool {
		return filteredItems[i].UpdatedAt.After(filteredItems[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredItems = []models.Item{}
	} else if end > totalFiltered {
		filteredItems = filteredItems[start:]
	} else {
		filteredItems = filteredItems[start:end]
	}

	itemResponses := make([]dto.ItemResponse, 0, len(filteredItems))
	for _, item := range filteredItems {
		itemResponses = append(itemResponses, convertToItemResponse(item))
	}

	response.SuccessWithPagination(c, itemResponses, page, limit, totalFiltered)
}

// GetItemDetail trả về chi tiết một item
func GetItemDetail(c *gin.Context) {
	itemID := c.Param("id")

	var item models.Item
	if err := config.DB.Preload("User").Preload("Reviews").Preload("Reviews.User").First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToItemResponse(item))
}

// CreateItem tạo item mới cho user hiện tại
func CreateItem(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.BadRequest(c, "Người dùng không tồn tại")
			return
		}
		response.ServerError(c)
		return
	}

	item := models.Item{
		UserID:           currentUserID,
		Name:             request.Name,
		Category:         request.Category,
		Address:          request.Address,
		Avatar:           request.Avatar,
		Img:              request.Img,
		ShortDescription: request.ShortDescription,
		Description:      request.Description,
		Status:           constants.ItemStatusActive,
		Price:            request.Price,
		Deposit:          request.Deposit,
		Province:         request.Province,
		District:         request.District,
		Ward:             request.Ward,
		Longitude:        request.Longitude,
		Latitude:         request.Latitude,
	}

	if err := validator.ValidateItem(&item); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	user.ItemIDs = append(user.ItemIDs, int64(item.ID))
	if err := config.DB.Save(&user).Error; err != nil {
		log.Printf("Lỗi khi cập nhật danh sách item của user: %v", err)
	}

	if rdb, err := config.ConnectRedis(); err == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, "items:all")
	}

	item.User = user
	response.Success(c, convertToItemResponse(item))
}

// UpdateItem cập nhật thông tin item, chỉ chủ đồ được sửa
func UpdateItem(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var item models.Item
	if err := config.DB.Preload("User").First(&item, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if item.UserID != currentUserID && currentUserRole != 2 {
		response.Forbidden(c)
		return
	}

	if request.Name != "" {
		item.Name = request.Name
	}
	if request.Category != "" {
		item.Category = request.Category
	}
	if request.Address != "" {
		item.Address = request.Address
	}
	if request.Avatar != "" {
		item.Avatar = request.Avatar
	}
	if request.Img != nil {
		item.Img = request.Img
	}
	if request.ShortDescription != "" {
		item.ShortDescription = request.ShortDescription
	}
	if request.Description != "" {
		item.Description = request.Description
	}
	if request.Price > 0 {
		item.Price = request.Price
	}
	if request.Deposit > 0 {
		item.Deposit = request.Deposit
	}
	if request.Province != "" {
		item.Province = request.Province
	}
	if request.District != "" {
		item.District = request.District
	}
	if request.Ward != "" {
		item.Ward = request.Ward
	}
	if request.Longitude != 0 {
		item.Longitude = request.Longitude
	}
	if request.Latitude != 0 {
		item.Latitude = request.Latitude
	}

	if err := validator.ValidateItem(&item); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	if rdb, err := config.ConnectRedis(); err == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, "items:all")
	}

	response.Success(c, convertToItemResponse(item))
}

// ChangeItemStatus đổi trạng thái hiển thị của item
func ChangeItemStatus(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.ChangeItemStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var item models.Item
	if err := config.DB.First(&item, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if item.UserID != currentUserID && currentUserRole != 2 {
		response.Forbidden(c)
		return
	}

	item.Status = request.Status
	if err := item.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if err := config.DB.Save(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	if rdb, err := config.ConnectRedis(); err == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, "items:all")
	}

	response.Success(c, convertToItemResponse(item))
}
