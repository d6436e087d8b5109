package dto

import "encoding/json"

// ItemSummary là DTO rút gọn của item dùng trong booking/favorite
type ItemSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Address  string `json:"address"`
	Province string `json:"province"`
	District string `json:"district"`
	Price    int    `json:"price"`
	Avatar   string `json:"avatar"`
}

type ItemResponse struct {
	ID               uint            `json:"id"`
	UserID           uint            `json:"userId"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Address          string          `json:"address"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Status           int             `json:"status"`
	Price            int             `json:"price"`
	Deposit          int             `json:"deposit"`
	Province         string          `json:"province"`
	District         string          `json:"district"`
	Ward             string          `json:"ward"`
	NumReview        int             `json:"numReview"`
	AvgStar          float64         `json:"avgStar"`
	Owner            UserInfo        `json:"owner"`
}

type CreateItemRequest struct {
	Name             string          `json:"name" binding:"required"`
	Category         string          `json:"category"`
	Address          string          `json:"address"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Price            int             `json:"price" binding:"required"`
	Deposit          int             `json:"deposit"`
	Province         string          `json:"province"`
	District         string          `json:"district"`
	Ward             string          `json:"ward"`
	Longitude        float64         `json:"longitude"`
	Latitude         float64         `json:"latitude"`
}

type UpdateItemRequest struct {
	ID               uint            `json:"id" binding:"required"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Address          string          `json:"address"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Price            int             `json:"price"`
	Deposit          int             `json:"deposit"`
	Province         string          `json:"province"`
	District         string          `json:"district"`
	Ward             string          `json:"ward"`
	Longitude        float64         `json:"longitude"`
	Latitude         float64         `json:"latitude"`
}

type ChangeItemStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}
