package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	"tourcms/internal/api"
	"tourcms/internal/api/controllers"
	"tourcms/internal/config"
	"tourcms/internal/models/db_models"
	"tourcms/internal/repositories"
	"tourcms/internal/services"
	"tourcms/internal/storage"
	"tourcms/internal/testutil"
	"tourcms/pkg/middleware"
	"tourcms/pkg/utils"
)

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memoryStore) Put(_ context.Context, name string, r io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[name] = data
	m.types[name] = contentType
	return nil
}

func (m *memoryStore) Get(_ context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[name]
	if !ok {
		return nil, storage.ObjectInfo{}, storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), storage.ObjectInfo{ContentType: m.types[name], Size: int64(len(data))}, nil
}

type RouterSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	store  *memoryStore
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.Require().NoError(utils.RegisterValidators())

	log := zaptest.NewLogger(s.T())

	s.db = testutil.NewDB(s.T())
	s.store = newMemoryStore()

	regionRepo := repositories.NewRegionRepository(s.db)
	ctl := api.Controllers{
		Regions:       controllers.NewRegionsController(services.NewRegionService(regionRepo, log)),
		Hotels:        controllers.NewHotelsController(services.NewHotelService(repositories.NewHotelRepository(s.db), regionRepo, log)),
		Events:        controllers.NewEventsController(services.NewEventService(repositories.NewEventRepository(s.db), regionRepo, log)),
		Places:        controllers.NewPlacesController(services.NewPlaceService(repositories.NewPlaceRepository(s.db), regionRepo, log)),
		OneDayTours:   controllers.NewOneDayToursController(services.NewOneDayTourService(repositories.NewOneDayTourRepository(s.db), regionRepo, log)),
		MultiDayTours: controllers.NewMultiDayToursController(services.NewMultiDayTourService(repositories.NewMultiDayTourRepository(s.db), regionRepo, log)),
		AutorTours:    controllers.NewAutorToursController(services.NewAutorTourService(repositories.NewAutorTourRepository(s.db), regionRepo, log)),
		Health:        controllers.NewHealthController(s.db),
		Uploads:       controllers.NewUploadsController(services.NewUploadService(s.store, log)),
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode, APIPrefix: "/api"},
		CORS:   config.CORSConfig{AllowOrigins: []string{"*"}},
	}
	s.router = api.NewRouter(cfg, log, ctl)
}

func (s *RouterSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (s *RouterSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var resp utils.ErrorResponse
	s.decode(w, &resp)
	return resp.Error
}

func (s *RouterSuite) createRegion(title string) uint {
	w := s.do(http.MethodPost, "/api/regions", map[string]any{
		"title":       title,
		"description": "About " + title,
		"img":         []string{"/uploads/" + strings.ToLower(title) + ".jpg"},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var region db_models.Region
	s.decode(w, &region)
	return region.ID
}

func (s *RouterSuite) createMultiDayTour(title string, regionID uint, extra map[string]any) db_models.MultiDayTour {
	body := map[string]any{"title": title, "img": []string{"a.jpg"}, "regionId": regionID}
	for k, v := range extra {
		body[k] = v
	}
	w := s.do(http.MethodPost, "/api/multidaytours", body)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var tour db_models.MultiDayTour
	s.decode(w, &tour)
	return tour
}

func listQuery(rng, sort, filter string) string {
	v := url.Values{}
	if rng != "" {
		v.Set("range", rng)
	}
	if sort != "" {
		v.Set("sort", sort)
	}
	if filter != "" {
		v.Set("filter", filter)
	}
	return "?" + v.Encode()
}

func (s *RouterSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.NotEmpty(w.Header().Get(middleware.TraceIDHeader))
}

func (s *RouterSuite) TestListContentRange() {
	for i := 0; i < 3; i++ {
		s.createRegion(fmt.Sprintf("Region%d", i))
	}

	w := s.do(http.MethodGet, "/api/regions"+listQuery("[0,9]", "", ""), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("regions 0-2/3", w.Header().Get("Content-Range"))

	var regions []db_models.Region
	s.decode(w, &regions)
	s.Len(regions, 3)

	w = s.do(http.MethodGet, "/api/regions"+listQuery("[0,1]", `["title","ASC"]`, ""), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("regions 0-1/3", w.Header().Get("Content-Range"))
	s.decode(w, &regions)
	s.Require().Len(regions, 2)
	s.Equal("Region0", regions[0].Title)
	s.Equal("Region1", regions[1].Title)
}

func (s *RouterSuite) TestListOpenEndedRange() {
	s.createRegion("Only")

	w := s.do(http.MethodGet, "/api/regions"+listQuery("[0,9223372036854775807]", "", ""), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("regions 0-0/1", w.Header().Get("Content-Range"))

	var regions []db_models.Region
	s.decode(w, &regions)
	s.Len(regions, 1)
}

func (s *RouterSuite) TestRegionCollectionsAreNeverNull() {
	w := s.do(http.MethodPost, "/api/regions", map[string]any{
		"title": "Empty", "description": "Nothing yet", "img": []string{"e.jpg"},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created map[string]any
	s.decode(w, &created)
	for _, key := range []string{"MultiDayTours", "OneDayTours", "Hotels", "Events", "Places", "AutorTours"} {
		s.Equal([]any{}, created[key], key)
	}

	regionID := uint(created["id"].(float64))
	w = s.do(http.MethodPost, "/api/hotels", map[string]any{
		"title": "Inn", "city": "Bern", "img": []string{"a.jpg"}, "regionId": regionID,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, fmt.Sprintf("/api/regions/%d", regionID), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var got map[string]any
	s.decode(w, &got)
	s.Equal([]any{}, got["Places"])
	hotels, ok := got["Hotels"].([]any)
	s.Require().True(ok)
	s.Require().Len(hotels, 1)
	s.Equal([]any{}, hotels[0].(map[string]any)["comforts"])
}

func (s *RouterSuite) TestCreateRejectsNullImages() {
	for _, img := range []any{[]any{nil}, []any{""}, []any{"a.jpg", nil}} {
		w := s.do(http.MethodPost, "/api/regions", map[string]any{
			"title": "T", "description": "d", "img": img,
		})
		s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
	}

	var count int64
	s.Require().NoError(s.db.Model(&db_models.Region{}).Count(&count).Error)
	s.Zero(count)
}

func (s *RouterSuite) TestListDefaultsToNewestFirst() {
	first := s.createRegion("First")
	second := s.createRegion("Second")

	w := s.do(http.MethodGet, "/api/regions", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var regions []db_models.Region
	s.decode(w, &regions)
	s.Require().Len(regions, 2)
	s.Equal(second, regions[0].ID)
	s.Equal(first, regions[1].ID)
}

func (s *RouterSuite) TestListFilterIsCaseInsensitiveSubstring() {
	s.createRegion("Swiss Alps")
	s.createRegion("ALPINE Valley")
	s.createRegion("Black Sea")

	w := s.do(http.MethodGet, "/api/regions"+listQuery("", `["title","ASC"]`, `{"title":"alp"}`), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("regions 0-1/2", w.Header().Get("Content-Range"))

	var regions []db_models.Region
	s.decode(w, &regions)
	s.Require().Len(regions, 2)
	s.Equal("ALPINE Valley", regions[0].Title)
	s.Equal("Swiss Alps", regions[1].Title)
}

func (s *RouterSuite) TestListRejectsMalformedQuery() {
	for _, q := range []string{
		listQuery("0-9", "", ""),
		listQuery("", `["password","ASC"]`, ""),
		listQuery("", "", `{"title":`),
	} {
		w := s.do(http.MethodGet, "/api/regions"+q, nil)
		s.Equal(http.StatusBadRequest, w.Code, q)
	}
}

func (s *RouterSuite) TestCreateRequiresFields() {
	w := s.do(http.MethodPost, "/api/regions", map[string]any{"description": "d", "img": []string{"a.jpg"}})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Title, description, and img (array) are required", s.errorMessage(w))

	w = s.do(http.MethodPost, "/api/regions", map[string]any{"title": "   ", "description": "d", "img": []string{"a.jpg"}})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/regions", map[string]any{"title": "T", "description": "d", "img": []string{}})
	s.Equal(http.StatusBadRequest, w.Code)

	var count int64
	s.Require().NoError(s.db.Model(&db_models.Region{}).Count(&count).Error)
	s.Zero(count)

	w = s.do(http.MethodPost, "/api/hotels", map[string]any{"title": "Inn", "city": "Bern", "img": []string{"a.jpg"}})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Title, city, regionId, and img (array) are required", s.errorMessage(w))
}

func (s *RouterSuite) TestCreateRejectsUnknownRegion() {
	w := s.do(http.MethodPost, "/api/hotels", map[string]any{
		"title": "Inn", "city": "Bern", "img": []string{"a.jpg"}, "regionId": 999,
	})
	s.Equal(http.StatusBadRequest, w.Code)

	var count int64
	s.Require().NoError(s.db.Model(&db_models.Hotel{}).Count(&count).Error)
	s.Zero(count)
}

func (s *RouterSuite) TestMissingRecords() {
	for _, path := range []string{
		"/api/regions/42", "/api/hotels/42", "/api/events/42", "/api/places/42",
		"/api/onedaytours/42", "/api/multidaytours/42", "/api/autortours/42",
	} {
		s.Equal(http.StatusNotFound, s.do(http.MethodGet, path, nil).Code, path)
		s.Equal(http.StatusNotFound, s.do(http.MethodDelete, path, nil).Code, path)
		s.Equal(http.StatusNotFound, s.do(http.MethodPut, path, `{"title":"x"}`).Code, path)
	}

	w := s.do(http.MethodGet, "/api/regions/abc", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestHotelRoundTrip() {
	regionID := s.createRegion("Alps")

	w := s.do(http.MethodPost, "/api/hotels", map[string]any{
		"title":    "Grand Hotel",
		"city":     "Zermatt",
		"numStars": 5,
		"img":      []any{"a.jpg", map[string]any{"rawFile": map[string]any{"path": "b.png"}}},
		"links":    []string{"https://grand.example"},
		"regionId": fmt.Sprint(regionID),
		"comforts": []map[string]any{{"title": "Spa", "description": "Indoor pool"}, {"title": "Wifi"}},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created db_models.Hotel
	s.decode(w, &created)
	s.Require().NotZero(created.ID)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/hotels/%d", created.ID), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var got db_models.Hotel
	s.decode(w, &got)
	s.Equal("Grand Hotel", got.Title)
	s.Equal("Zermatt", got.City)
	s.Require().NotNil(got.NumStars)
	s.Equal(5, *got.NumStars)
	s.Equal([]string{"a.jpg", "/uploads/b.png"}, []string(got.Img))
	s.Equal([]string{"https://grand.example"}, []string(got.Links))
	s.Equal(regionID, got.RegionID)
	s.Require().NotNil(got.Region)
	s.Equal("Alps", got.Region.Title)
	s.Require().Len(got.Comforts, 2)
	s.Equal("Spa", got.Comforts[0].Title)
	s.Nil(got.Comforts[1].Description)
}

func (s *RouterSuite) TestPartialUpdateIsIdempotent() {
	regionID := s.createRegion("Alps")

	w := s.do(http.MethodPost, "/api/onedaytours", map[string]any{
		"title": "Glacier walk", "img": []string{"g.jpg"}, "regionId": regionID,
		"transport": "bus", "price": 49.5, "places": []string{"Glacier"},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var tour db_models.OneDayTour
	s.decode(w, &tour)
	path := fmt.Sprintf("/api/onedaytours/%d", tour.ID)

	var first, second db_models.OneDayTour
	w = s.do(http.MethodPut, path, map[string]any{"title": "Glacier hike"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.decode(w, &first)

	w = s.do(http.MethodPut, path, map[string]any{"title": "Glacier hike"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &second)

	s.Equal("Glacier hike", second.Title)
	s.Require().NotNil(second.Transport)
	s.Equal("bus", *second.Transport)
	s.Require().NotNil(second.Price)
	s.Equal("49.5", second.Price.String())
	s.Equal([]string{"Glacier"}, []string(second.Places))
	s.Equal(first.TourInfo, second.TourInfo)
	s.Equal(first.RegionID, second.RegionID)

	w = s.do(http.MethodPut, path, map[string]any{"transport": nil, "minNumPeople": "lots"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &second)
	s.Nil(second.Transport)
	s.Nil(second.MinNumPeople)
	s.Equal("Glacier hike", second.Title)

	w = s.do(http.MethodPut, path, "[1,2]")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestMultiDayOrderAppendsAfterMax() {
	regionID := s.createRegion("Alps")

	first := s.createMultiDayTour("First", regionID, nil)
	s.Equal(1, first.Order)

	explicit := s.createMultiDayTour("Explicit", regionID, map[string]any{"order": 7})
	s.Equal(7, explicit.Order)

	next := s.createMultiDayTour("Next", regionID, nil)
	s.Equal(8, next.Order)
}

func (s *RouterSuite) TestMultiDayReorder() {
	regionID := s.createRegion("Alps")
	a := s.createMultiDayTour("A", regionID, nil)
	b := s.createMultiDayTour("B", regionID, nil)
	c := s.createMultiDayTour("C", regionID, nil)

	payload := fmt.Sprintf(`[{"id":%d},{"id":%d},{"id":%d}]`, c.ID, a.ID, b.ID)
	w := s.do(http.MethodPut, "/api/multidaytours/order", payload)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	orders := map[uint]int{}
	var tours []db_models.MultiDayTour
	s.Require().NoError(s.db.Find(&tours).Error)
	for _, t := range tours {
		orders[t.ID] = t.Order
	}
	s.Equal(map[uint]int{c.ID: 0, a.ID: 1, b.ID: 2}, orders)

	w = s.do(http.MethodGet, "/api/multidaytours"+listQuery("", `["title","DESC"]`, ""), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &tours)
	s.Require().Len(tours, 3)
	s.Equal([]string{"C", "A", "B"}, []string{tours[0].Title, tours[1].Title, tours[2].Title})

	w = s.do(http.MethodPut, "/api/multidaytours/order", map[string]any{
		"orderedTours": []map[string]any{{"id": a.ID}, {"id": b.ID}},
	})
	s.Require().Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestMultiDayReorderIsAtomic() {
	regionID := s.createRegion("Alps")
	a := s.createMultiDayTour("A", regionID, nil)
	b := s.createMultiDayTour("B", regionID, nil)

	w := s.do(http.MethodPut, "/api/multidaytours/order", fmt.Sprintf(`[{"id":%d},{"id":999},{"id":%d}]`, b.ID, a.ID))
	s.Equal(http.StatusNotFound, w.Code)

	var reloaded db_models.MultiDayTour
	s.Require().NoError(s.db.First(&reloaded, b.ID).Error)
	s.Equal(b.Order, reloaded.Order)

	for _, body := range []string{`{"id":1}`, `"x"`, `{"orderedTours":"x"}`} {
		w = s.do(http.MethodPut, "/api/multidaytours/order", body)
		s.Equal(http.StatusBadRequest, w.Code, body)
		s.Equal("Invalid data format", s.errorMessage(w))
	}
}

func (s *RouterSuite) TestRegionDelete() {
	busy := s.createRegion("Busy")
	s.createMultiDayTour("Trek", busy, nil)

	w := s.do(http.MethodDelete, fmt.Sprintf("/api/regions/%d", busy), nil)
	s.Equal(http.StatusConflict, w.Code)

	free := s.createRegion("Free")
	w = s.do(http.MethodPost, "/api/events", map[string]any{
		"title": "Festival", "description": "Music", "img": []string{"f.jpg"}, "regionId": free,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var event db_models.Event
	s.decode(w, &event)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/regions/%d", free), nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, fmt.Sprintf("/api/events/%d", event.ID), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &event)
	s.Nil(event.RegionID)
}

func (s *RouterSuite) TestEventRegionIsOptional() {
	w := s.do(http.MethodPost, "/api/events", map[string]any{
		"title": "Festival", "description": "Music", "img": []string{"f.jpg"},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var event db_models.Event
	s.decode(w, &event)
	s.Nil(event.RegionID)

	regionID := s.createRegion("Alps")
	w = s.do(http.MethodPut, fmt.Sprintf("/api/events/%d", event.ID), map[string]any{"regionId": regionID})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.decode(w, &event)
	s.Require().NotNil(event.RegionID)
	s.Equal(regionID, *event.RegionID)

	w = s.do(http.MethodPut, fmt.Sprintf("/api/events/%d", event.ID), `{"regionId":null}`)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &event)
	s.Nil(event.RegionID)
}

func (s *RouterSuite) TestDeleteRemovesChildren() {
	regionID := s.createRegion("Alps")
	w := s.do(http.MethodPost, "/api/autortours", map[string]any{
		"title": "Author trail", "img": []string{"t.jpg"}, "regionId": regionID,
		"InfoByDaysAutor": []map[string]any{{"title": "Day 1"}, {"title": "Day 2"}},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var tour db_models.AutorTour
	s.decode(w, &tour)
	s.Len(tour.InfoByDaysAutor, 2)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/autortours/%d", tour.ID), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var days int64
	s.Require().NoError(s.db.Model(&db_models.AutorDayInfo{}).Count(&days).Error)
	s.Zero(days)
}

func (s *RouterSuite) TestUploadAndServe() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "photo.PNG")
	s.Require().NoError(err)
	_, err = part.Write([]byte("png-bytes"))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp controllers.UploadResponse
	s.decode(w, &resp)
	s.True(strings.HasPrefix(resp.Path, "/uploads/img_"))
	s.True(strings.HasSuffix(resp.Path, ".png"))

	w = s.do(http.MethodGet, resp.Path, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("image/png", w.Header().Get("Content-Type"))
	s.Equal("png-bytes", w.Body.String())

	w = s.do(http.MethodGet, "/uploads/missing.png", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestUploadRejectsNonImages() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "notes.txt")
	s.Require().NoError(err)
	_, _ = part.Write([]byte("hello"))
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Empty(s.store.objects)
}
