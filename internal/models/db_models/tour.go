package db_models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TourInfo holds the columns common to one-day, multi-day and author tours.
type TourInfo struct {
	Title        string                      `gorm:"type:varchar(255);not null" json:"title"`
	Transport    *string                     `gorm:"type:varchar(255)" json:"transport"`
	Duration     *string                     `gorm:"type:varchar(255)" json:"duration"`
	TimeToStart  *string                     `gorm:"type:varchar(255)" json:"timeToStart"`
	Type         *string                     `gorm:"column:tour_type;type:varchar(128)" json:"type"`
	Level        *string                     `gorm:"type:varchar(128)" json:"level"`
	MinNumPeople *int                        `json:"minNumPeople"`
	MaxNumPeople *int                        `json:"maxNumPeople"`
	Price        *decimal.Decimal            `gorm:"type:numeric(12,2)" json:"price"`
	AddInfo      *string                     `gorm:"type:text" json:"addInfo"`
	Img          datatypes.JSONSlice[string] `json:"img"`
	TourDates    datatypes.JSONSlice[string] `json:"tourDates"`
	BookingType  string                      `gorm:"type:varchar(64);not null;default:'default'" json:"bookingType"`
	Places       datatypes.JSONSlice[string] `json:"places"`
	Checklists   datatypes.JSONSlice[string] `json:"checklists"`
}

type OneDayTour struct {
	BaseModel
	TourInfo

	RegionID uint    `gorm:"not null;index" json:"regionId"`
	Region   *Region `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"region,omitempty"`

	InfoByDays []OneDayInfo `gorm:"foreignKey:OneDayTourID;constraint:OnDelete:CASCADE" json:"infoByDays"`
}

type OneDayInfo struct {
	BaseModel
	DayInfo
	OneDayTourID uint `gorm:"not null;index" json:"oneDayTourId"`
}

// MultiDayTour is listed by Order first; values need not be unique or
// contiguous.
type MultiDayTour struct {
	BaseModel
	TourInfo
	Order int `gorm:"column:sort_order;not null;default:0;index" json:"order"`

	RegionID uint    `gorm:"not null;index" json:"regionId"`
	Region   *Region `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"region,omitempty"`

	InfoByDays []MultiDayInfo `gorm:"foreignKey:MultiDayTourID;constraint:OnDelete:CASCADE" json:"infoByDays"`
}

type MultiDayInfo struct {
	BaseModel
	DayInfo
	MultiDayTourID uint `gorm:"not null;index" json:"multiDayTourId"`
}

type AutorTour struct {
	BaseModel
	TourInfo

	RegionID uint    `gorm:"not null;index" json:"regionId"`
	Region   *Region `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"region,omitempty"`

	InfoByDaysAutor []AutorDayInfo `gorm:"foreignKey:AutorTourID;constraint:OnDelete:CASCADE" json:"InfoByDaysAutor"`
}

type AutorDayInfo struct {
	BaseModel
	DayInfo
	AutorTourID uint `gorm:"not null;index" json:"autorTourId"`
}
