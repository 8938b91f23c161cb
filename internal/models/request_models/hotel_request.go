package request_models

import "tourcms/internal/models/db_models"

const HotelRequiredMessage = "Title, city, regionId, and img (array) are required"

type CreateHotelRequest struct {
	Title       string             `json:"title" binding:"required,notblank"`
	City        string             `json:"city" binding:"required,notblank"`
	HotelType   *string            `json:"hotelType"`
	Address     *string            `json:"address"`
	NumStars    *int               `json:"numStars"`
	Description *string            `json:"description"`
	AddInfo     *string            `json:"addInfo"`
	Img         ImageList          `json:"img" binding:"required,min=1"`
	Links       Optional[[]string] `json:"links"`
	RegionID    FlexID             `json:"regionId" binding:"required"`
	Comforts    []DayInput         `json:"comforts"`
}

func (r CreateHotelRequest) ToModel() *db_models.Hotel {
	hotel := &db_models.Hotel{
		Title:       r.Title,
		City:        r.City,
		HotelType:   r.HotelType,
		Address:     r.Address,
		NumStars:    r.NumStars,
		Description: r.Description,
		AddInfo:     r.AddInfo,
		Img:         ToJSONSlice(r.Img),
		Links:       ListOrEmpty(r.Links),
		RegionID:    r.RegionID.Uint(),
		Comforts:    make([]db_models.Comfort, 0, len(r.Comforts)),
	}
	for _, c := range r.Comforts {
		hotel.Comforts = append(hotel.Comforts, db_models.Comfort{DayInfo: c.toDayInfo()})
	}
	return hotel
}

type UpdateHotelRequest struct {
	Title       Optional[string]    `json:"title"`
	City        Optional[string]    `json:"city"`
	HotelType   Optional[string]    `json:"hotelType"`
	Address     Optional[string]    `json:"address"`
	NumStars    Optional[int]       `json:"numStars"`
	Description Optional[string]    `json:"description"`
	AddInfo     Optional[string]    `json:"addInfo"`
	Img         Optional[ImageList] `json:"img"`
	Links       Optional[[]string]  `json:"links"`
	RegionID    Optional[FlexID]    `json:"regionId"`
}

// NewRegionID returns the region the hotel should move to, if any.
func (r UpdateHotelRequest) NewRegionID() (uint, bool) {
	if r.RegionID.Valid && r.RegionID.Value != 0 {
		return r.RegionID.Value.Uint(), true
	}
	return 0, false
}

func (r UpdateHotelRequest) ApplyTo(hotel *db_models.Hotel) {
	r.Title.Apply(&hotel.Title)
	r.City.Apply(&hotel.City)
	r.HotelType.ApplyNullable(&hotel.HotelType)
	r.Address.ApplyNullable(&hotel.Address)
	r.NumStars.ApplyNullable(&hotel.NumStars)
	r.Description.ApplyNullable(&hotel.Description)
	r.AddInfo.ApplyNullable(&hotel.AddInfo)
	ApplyList(r.Img, &hotel.Img, false)
	ApplyList(r.Links, &hotel.Links, true)
	if id, ok := r.NewRegionID(); ok {
		hotel.RegionID = id
	}
}

func (d DayInput) toDayInfo() db_models.DayInfo {
	return db_models.DayInfo{Title: d.Title, Description: d.Description}
}
