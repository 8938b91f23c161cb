package db_models

import "gorm.io/datatypes"

type Hotel struct {
	BaseModel
	Title       string                      `gorm:"type:varchar(255);not null" json:"title"`
	City        string                      `gorm:"type:varchar(255);not null" json:"city"`
	HotelType   *string                     `gorm:"type:varchar(128)" json:"hotelType"`
	Address     *string                     `gorm:"type:varchar(512)" json:"address"`
	NumStars    *int                        `json:"numStars"`
	Description *string                     `gorm:"type:text" json:"description"`
	AddInfo     *string                     `gorm:"type:text" json:"addInfo"`
	Img         datatypes.JSONSlice[string] `json:"img"`
	Links       datatypes.JSONSlice[string] `json:"links"`

	RegionID uint    `gorm:"not null;index" json:"regionId"`
	Region   *Region `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"region,omitempty"`

	Comforts []Comfort `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"comforts"`
}

type Comfort struct {
	BaseModel
	DayInfo
	HotelID uint `gorm:"not null;index" json:"hotelId"`
}
