package db_models

import "gorm.io/datatypes"

// Event is the only resource whose region is optional; it is detached,
// not blocked, when its region goes away.
type Event struct {
	BaseModel
	Title       string                      `gorm:"type:varchar(255);not null" json:"title"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Link        *string                     `gorm:"type:varchar(512)" json:"link"`
	Img         datatypes.JSONSlice[string] `json:"img"`

	RegionID *uint   `gorm:"index" json:"regionId"`
	Region   *Region `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"Region,omitempty"`
}
