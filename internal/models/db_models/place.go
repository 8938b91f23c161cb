package db_models

import "gorm.io/datatypes"

type Place struct {
	BaseModel
	Title       string                      `gorm:"type:varchar(255);not null" json:"title"`
	Description *string                     `gorm:"type:text" json:"description"`
	Links       *string                     `gorm:"type:text" json:"links"`
	Img         datatypes.JSONSlice[string] `json:"img"`

	RegionID uint    `gorm:"not null;index" json:"regionId"`
	Region   *Region `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"region,omitempty"`

	InfoPlaces []InfoPlace `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE" json:"infoPlaces"`
}

type InfoPlace struct {
	BaseModel
	DayInfo
	PlaceID uint `gorm:"not null;index" json:"placeId"`
}
