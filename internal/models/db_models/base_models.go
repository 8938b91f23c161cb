package db_models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DayInfo is the title/description pair shared by every child record
// (hotel comforts, place notes, tour itinerary days).
type DayInfo struct {
	Title       string  `gorm:"type:varchar(255)" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
}
