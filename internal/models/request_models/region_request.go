package request_models

import "tourcms/internal/models/db_models"

const RegionRequiredMessage = "Title, description, and img (array) are required"

type CreateRegionRequest struct {
	Title       string    `json:"title" binding:"required,notblank"`
	Description string    `json:"description" binding:"required,notblank"`
	Img         ImageList `json:"img" binding:"required,min=1"`
	Link        *string   `json:"link"`
}

func (r CreateRegionRequest) ToModel() *db_models.Region {
	region := db_models.NewRegion()
	region.Title = r.Title
	region.Description = r.Description
	region.Img = ToJSONSlice(r.Img)
	region.Link = r.Link
	return region
}

type UpdateRegionRequest struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	Img         Optional[ImageList] `json:"img"`
	Link        Optional[string]    `json:"link"`
}

func (r UpdateRegionRequest) ApplyTo(region *db_models.Region) {
	r.Title.Apply(&region.Title)
	r.Description.Apply(&region.Description)
	ApplyList(r.Img, &region.Img, false)
	r.Link.ApplyNullable(&region.Link)
}
