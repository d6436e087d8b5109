package dto

import "time"

type FavoriteRequest struct {
	ItemID uint `json:"itemId" binding:"required"`
}

type FavoriteResponse struct {
	ID        uint        `json:"id"`
	Item      ItemSummary `json:"item"`
	CreatedAt time.Time   `json:"createdAt"`
}
