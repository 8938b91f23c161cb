package db_models

import "gorm.io/datatypes"

type Region struct {
	BaseModel
	Title       string                      `gorm:"type:varchar(255);not null" json:"title"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Img         datatypes.JSONSlice[string] `json:"img"`
	Link        *string                     `gorm:"type:varchar(512)" json:"link"`

	// gorm builds the foreign keys from these has-many sides, so the
	// delete rules live here.
	MultiDayTours []MultiDayTour `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"MultiDayTours"`
	OneDayTours   []OneDayTour   `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"OneDayTours"`
	Hotels        []Hotel        `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"Hotels"`
	Events        []Event        `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"Events"`
	Places        []Place        `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"Places"`
	AutorTours    []AutorTour    `gorm:"foreignKey:RegionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"AutorTours"`
}

// RegionAssociations lists the collections loaded with a region, each
// with its own child records.
var RegionAssociations = []string{
	"MultiDayTours", "MultiDayTours.InfoByDays",
	"OneDayTours", "OneDayTours.InfoByDays",
	"Hotels", "Hotels.Comforts",
	"Events",
	"Places", "Places.InfoPlaces",
	"AutorTours", "AutorTours.InfoByDaysAutor",
}

// NewRegion returns a region whose collections are empty rather than nil,
// so a freshly created region serializes them as [].
func NewRegion() *Region {
	return &Region{
		MultiDayTours: []MultiDayTour{},
		OneDayTours:   []OneDayTour{},
		Hotels:        []Hotel{},
		Events:        []Event{},
		Places:        []Place{},
		AutorTours:    []AutorTour{},
	}
}
