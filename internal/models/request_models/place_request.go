package request_models

import "tourcms/internal/models/db_models"

const PlaceRequiredMessage = "Title, img (array), and regionId are required"

type CreatePlaceRequest struct {
	Title       string     `json:"title" binding:"required,notblank"`
	Description *string    `json:"description"`
	Links       *string    `json:"links"`
	Img         ImageList  `json:"img" binding:"required,min=1"`
	RegionID    FlexID     `json:"regionId" binding:"required"`
	InfoPlaces  []DayInput `json:"infoPlaces"`
}

func (r CreatePlaceRequest) ToModel() *db_models.Place {
	place := &db_models.Place{
		Title:       r.Title,
		Description: r.Description,
		Links:       r.Links,
		Img:         ToJSONSlice(r.Img),
		RegionID:    r.RegionID.Uint(),
		InfoPlaces:  make([]db_models.InfoPlace, 0, len(r.InfoPlaces)),
	}
	for _, info := range r.InfoPlaces {
		place.InfoPlaces = append(place.InfoPlaces, db_models.InfoPlace{DayInfo: info.toDayInfo()})
	}
	return place
}

type UpdatePlaceRequest struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	Links       Optional[string]    `json:"links"`
	Img         Optional[ImageList] `json:"img"`
	RegionID    Optional[FlexID]    `json:"regionId"`
}

func (r UpdatePlaceRequest) NewRegionID() (uint, bool) {
	if r.RegionID.Valid && r.RegionID.Value != 0 {
		return r.RegionID.Value.Uint(), true
	}
	return 0, false
}

func (r UpdatePlaceRequest) ApplyTo(place *db_models.Place) {
	r.Title.Apply(&place.Title)
	r.Description.ApplyNullable(&place.Description)
	r.Links.ApplyNullable(&place.Links)
	ApplyList(r.Img, &place.Img, false)
	if id, ok := r.NewRegionID(); ok {
		place.RegionID = id
	}
}
