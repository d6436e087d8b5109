package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string        `gorm:"default:New User" json:"name"`
	Email         string        `gorm:"unique" json:"email"`
	Password      string        `json:"password"`
	IsVerified    bool          `gorm:"default:false" json:"is_verified"`
	Code          string        `json:"code"`
	CodeCreatedAt time.Time     `gorm:"autoCreateTime" json:"codeCreatedAt"`
	PhoneNumber   string        `gorm:"type:varchar(11)" json:"phoneNumber"`
	Avatar        string        `json:"avatar"`
	Role          int           `gorm:"default:0" json:"role"`
	Status        int           `gorm:"default:0" json:"status"`
	Gender        int           `json:"gender"`
	DateOfBirth   string        `json:"dateOfBirth"`
	ItemIDs       pq.Int64Array `json:"item_ids" gorm:"type:integer[]"` // Item thuộc sở hữu, phục vụ tra cứu nhanh
}
