package request_models

import "tourcms/internal/models/db_models"

const EventRequiredMessage = "Title, description, and img (array) are required"

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,notblank"`
	Description string    `json:"description" binding:"required,notblank"`
	Link        *string   `json:"link"`
	Img         ImageList `json:"img" binding:"required,min=1"`
	RegionID    *FlexID   `json:"regionId"`
}

func (r CreateEventRequest) ToModel() *db_models.Event {
	event := &db_models.Event{
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
		Img:         ToJSONSlice(r.Img),
	}
	if r.RegionID != nil && *r.RegionID != 0 {
		id := r.RegionID.Uint()
		event.RegionID = &id
	}
	return event
}

type UpdateEventRequest struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	Link        Optional[string]    `json:"link"`
	Img         Optional[ImageList] `json:"img"`
	RegionID    Optional[FlexID]    `json:"regionId"`
}

// NewRegionID reports the region to attach, if a valid id was supplied.
func (r UpdateEventRequest) NewRegionID() (uint, bool) {
	if r.RegionID.Valid && r.RegionID.Value != 0 {
		return r.RegionID.Value.Uint(), true
	}
	return 0, false
}

func (r UpdateEventRequest) ApplyTo(event *db_models.Event) {
	r.Title.Apply(&event.Title)
	r.Description.Apply(&event.Description)
	r.Link.ApplyNullable(&event.Link)
	ApplyList(r.Img, &event.Img, false)

	switch id, ok := r.NewRegionID(); {
	case ok:
		event.RegionID = &id
	case r.RegionID.Null:
		event.RegionID = nil
	}
}
