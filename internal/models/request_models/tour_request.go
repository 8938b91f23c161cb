package request_models

import (
	"github.com/shopspring/decimal"
	"tourcms/internal/models/db_models"
)

const (
	TourRequiredMessage = "Title, img (array), and regionId are required"
	defaultBookingType  = "default"
)

// TourFields are the create-time fields shared by every tour type.
type TourFields struct {
	Title        string             `json:"title" binding:"required,notblank"`
	Transport    *string            `json:"transport"`
	Duration     *string            `json:"duration"`
	TimeToStart  *string            `json:"timeToStart"`
	Type         *string            `json:"type"`
	Level        *string            `json:"level"`
	MinNumPeople *int               `json:"minNumPeople"`
	MaxNumPeople *int               `json:"maxNumPeople"`
	Price        *decimal.Decimal   `json:"price"`
	AddInfo      *string            `json:"addInfo"`
	Img          ImageList          `json:"img" binding:"required,min=1"`
	TourDates    Optional[[]string] `json:"tourDates"`
	BookingType  *string            `json:"bookingType"`
	Places       Optional[[]string] `json:"places"`
	Checklists   Optional[[]string] `json:"checklists"`
	RegionID     FlexID             `json:"regionId" binding:"required"`
}

func (f TourFields) ToTourInfo() db_models.TourInfo {
	info := db_models.TourInfo{
		Title:        f.Title,
		Transport:    f.Transport,
		Duration:     f.Duration,
		TimeToStart:  f.TimeToStart,
		Type:         f.Type,
		Level:        f.Level,
		MinNumPeople: f.MinNumPeople,
		MaxNumPeople: f.MaxNumPeople,
		Price:        f.Price,
		AddInfo:      f.AddInfo,
		Img:          ToJSONSlice(f.Img),
		TourDates:    ListOrEmpty(f.TourDates),
		BookingType:  defaultBookingType,
		Places:       ListOrEmpty(f.Places),
		Checklists:   ListOrEmpty(f.Checklists),
	}
	if f.BookingType != nil && *f.BookingType != "" {
		info.BookingType = *f.BookingType
	}
	return info
}

func dayInfos(days []DayInput) []db_models.DayInfo {
	out := make([]db_models.DayInfo, 0, len(days))
	for _, d := range days {
		out = append(out, d.toDayInfo())
	}
	return out
}

type CreateOneDayTourRequest struct {
	TourFields
	InfoByDays []DayInput `json:"infoByDays"`
}

func (r CreateOneDayTourRequest) ToModel() *db_models.OneDayTour {
	tour := &db_models.OneDayTour{
		TourInfo:   r.ToTourInfo(),
		RegionID:   r.RegionID.Uint(),
		InfoByDays: []db_models.OneDayInfo{},
	}
	for _, d := range dayInfos(r.InfoByDays) {
		tour.InfoByDays = append(tour.InfoByDays, db_models.OneDayInfo{DayInfo: d})
	}
	return tour
}

type CreateMultiDayTourRequest struct {
	TourFields
	// Order is appended after the current maximum when omitted.
	Order      *int       `json:"order"`
	InfoByDays []DayInput `json:"infoByDays"`
}

func (r CreateMultiDayTourRequest) ToModel() *db_models.MultiDayTour {
	tour := &db_models.MultiDayTour{
		TourInfo:   r.ToTourInfo(),
		RegionID:   r.RegionID.Uint(),
		InfoByDays: []db_models.MultiDayInfo{},
	}
	if r.Order != nil {
		tour.Order = *r.Order
	}
	for _, d := range dayInfos(r.InfoByDays) {
		tour.InfoByDays = append(tour.InfoByDays, db_models.MultiDayInfo{DayInfo: d})
	}
	return tour
}

type CreateAutorTourRequest struct {
	TourFields
	InfoByDaysAutor []DayInput `json:"InfoByDaysAutor"`
}

func (r CreateAutorTourRequest) ToModel() *db_models.AutorTour {
	tour := &db_models.AutorTour{
		TourInfo:        r.ToTourInfo(),
		RegionID:        r.RegionID.Uint(),
		InfoByDaysAutor: []db_models.AutorDayInfo{},
	}
	for _, d := range dayInfos(r.InfoByDaysAutor) {
		tour.InfoByDaysAutor = append(tour.InfoByDaysAutor, db_models.AutorDayInfo{DayInfo: d})
	}
	return tour
}

// TourPatch is the partial update accepted by every tour type.
type TourPatch struct {
	Title        Optional[string]          `json:"title"`
	Transport    Optional[string]          `json:"transport"`
	Duration     Optional[string]          `json:"duration"`
	TimeToStart  Optional[string]          `json:"timeToStart"`
	Type         Optional[string]          `json:"type"`
	Level        Optional[string]          `json:"level"`
	MinNumPeople Optional[int]             `json:"minNumPeople"`
	MaxNumPeople Optional[int]             `json:"maxNumPeople"`
	Price        Optional[decimal.Decimal] `json:"price"`
	AddInfo      Optional[string]          `json:"addInfo"`
	Img          Optional[ImageList]       `json:"img"`
	TourDates    Optional[[]string]        `json:"tourDates"`
	BookingType  Optional[string]          `json:"bookingType"`
	Places       Optional[[]string]        `json:"places"`
	Checklists   Optional[[]string]        `json:"checklists"`
	RegionID     Optional[FlexID]          `json:"regionId"`
}

func (p TourPatch) NewRegionID() (uint, bool) {
	if p.RegionID.Valid && p.RegionID.Value != 0 {
		return p.RegionID.Value.Uint(), true
	}
	return 0, false
}

// ApplyTo merges the patch into info and the tour's region id.
func (p TourPatch) ApplyTo(info *db_models.TourInfo, regionID *uint) {
	p.Title.Apply(&info.Title)
	p.Transport.ApplyNullable(&info.Transport)
	p.Duration.ApplyNullable(&info.Duration)
	p.TimeToStart.ApplyNullable(&info.TimeToStart)
	p.Type.ApplyNullable(&info.Type)
	p.Level.ApplyNullable(&info.Level)
	p.MinNumPeople.ApplyNullable(&info.MinNumPeople)
	p.MaxNumPeople.ApplyNullable(&info.MaxNumPeople)
	p.Price.ApplyNullable(&info.Price)
	p.AddInfo.ApplyNullable(&info.AddInfo)
	ApplyList(p.Img, &info.Img, false)
	ApplyList(p.TourDates, &info.TourDates, true)
	p.BookingType.Apply(&info.BookingType)
	ApplyList(p.Places, &info.Places, true)
	ApplyList(p.Checklists, &info.Checklists, true)
	if id, ok := p.NewRegionID(); ok {
		*regionID = id
	}
}

type UpdateMultiDayTourRequest struct {
	TourPatch
	Order Optional[int] `json:"order"`
}

func (r UpdateMultiDayTourRequest) ApplyTo(tour *db_models.MultiDayTour) {
	r.TourPatch.ApplyTo(&tour.TourInfo, &tour.RegionID)
	r.Order.Apply(&tour.Order)
}
