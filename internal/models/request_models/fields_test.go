package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"tourcms/internal/models/db_models"
	"tourcms/pkg/utils"
)

func TestOptionalTracksPresence(t *testing.T) {
	var req struct {
		Title Optional[string] `json:"title"`
		Link  Optional[string] `json:"link"`
		Stars Optional[int]    `json:"stars"`
		Skip  Optional[string] `json:"skip"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Alps","link":null,"stars":"five"}`), &req))

	assert.Equal(t, Optional[string]{Value: "Alps", Present: true, Valid: true}, req.Title)
	assert.True(t, req.Link.Present)
	assert.True(t, req.Link.Null)
	assert.True(t, req.Stars.Present)
	assert.False(t, req.Stars.Valid, "malformed value must not be applied")
	assert.False(t, req.Skip.Present)
}

func TestOptionalApply(t *testing.T) {
	title := "kept"
	Optional[string]{}.Apply(&title)
	assert.Equal(t, "kept", title)

	Optional[string]{Present: true, Null: true}.Apply(&title)
	assert.Equal(t, "kept", title, "null leaves a required column alone")

	Some("new").Apply(&title)
	assert.Equal(t, "new", title)

	link := &title
	Optional[string]{Present: true}.ApplyNullable(&link)
	assert.NotNil(t, link, "malformed value leaves a nullable column alone")

	Optional[string]{Present: true, Null: true}.ApplyNullable(&link)
	assert.Nil(t, link)

	Some("x").ApplyNullable(&link)
	require.NotNil(t, link)
	assert.Equal(t, "x", *link)
}

func TestApplyList(t *testing.T) {
	dst := datatypes.JSONSlice[string]{"a"}

	ApplyList(Optional[[]string]{Present: true, Null: true}, &dst, false)
	assert.Equal(t, datatypes.JSONSlice[string]{"a"}, dst)

	ApplyList(Optional[[]string]{Present: true, Null: true}, &dst, true)
	assert.Equal(t, datatypes.JSONSlice[string]{}, dst)

	ApplyList(Some([]string{"b", "c"}), &dst, false)
	assert.Equal(t, datatypes.JSONSlice[string]{"b", "c"}, dst)

	assert.Equal(t, datatypes.JSONSlice[string]{}, ListOrEmpty(Optional[[]string]{}))
}

func TestFlexID(t *testing.T) {
	cases := []struct {
		in      string
		want    FlexID
		wantErr bool
	}{
		{in: `7`, want: 7},
		{in: `"12"`, want: 12},
		{in: `" 3 "`, want: 3},
		{in: `null`, want: 0},
		{in: `0`, wantErr: true},
		{in: `-4`, wantErr: true},
		{in: `"abc"`, wantErr: true},
		{in: `1.5`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var id FlexID
			err := json.Unmarshal([]byte(tc.in), &id)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestImageList(t *testing.T) {
	var l ImageList
	err := json.Unmarshal([]byte(`["https://cdn/x.jpg", {"rawFile":{"path":"img_1.png"}}, {"src":"/uploads/y.gif"}]`), &l)
	require.NoError(t, err)
	assert.Equal(t, ImageList{"https://cdn/x.jpg", "/uploads/img_1.png", "/uploads/y.gif"}, l)

	assert.Error(t, json.Unmarshal([]byte(`"x.jpg"`), &l))
	assert.Error(t, json.Unmarshal([]byte(`[{"title":"x"}]`), &l))
	assert.Error(t, json.Unmarshal([]byte(`[null]`), &l))
	assert.Error(t, json.Unmarshal([]byte(`["a.jpg", "  "]`), &l))
	assert.Error(t, json.Unmarshal([]byte(`[""]`), &l))
}

func TestParseOrderedTours(t *testing.T) {
	ids, err := ParseOrderedTours([]byte(`[{"id":5},{"id":"2"},{"id":8}]`))
	require.NoError(t, err)
	assert.Equal(t, []uint{5, 2, 8}, ids)

	ids, err = ParseOrderedTours([]byte(`{"orderedTours":[{"id":1}]}`))
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, ids)

	ids, err = ParseOrderedTours([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, ids)

	for _, body := range []string{``, `{}`, `{"orderedTours":{"id":1}}`, `"x"`, `[{"id":0}]`, `[{"name":"a"}]`, `[1,2]`} {
		_, err := ParseOrderedTours([]byte(body))
		assert.ErrorIs(t, err, utils.ErrInvalidOrderPayload, body)
	}
}

func TestTourPatchKeepsUntouchedFields(t *testing.T) {
	transport := "bus"
	info := db_models.TourInfo{
		Title:       "Old",
		Transport:   &transport,
		BookingType: "default",
		Places:      datatypes.JSONSlice[string]{"Lake"},
	}
	regionID := uint(1)

	var patch TourPatch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New","transport":null,"regionId":"4","bookingType":null}`), &patch))
	patch.ApplyTo(&info, &regionID)

	assert.Equal(t, "New", info.Title)
	assert.Nil(t, info.Transport)
	assert.Equal(t, "default", info.BookingType)
	assert.Equal(t, datatypes.JSONSlice[string]{"Lake"}, info.Places)
	assert.Equal(t, uint(4), regionID)
}

func TestCreateTourDefaults(t *testing.T) {
	var req CreateMultiDayTourRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Trek","img":["a.jpg"],"regionId":3,"infoByDays":[{"title":"Day 1"}]}`), &req))

	tour := req.ToModel()
	assert.Equal(t, "default", tour.BookingType)
	assert.Equal(t, datatypes.JSONSlice[string]{}, tour.TourDates)
	assert.Equal(t, uint(3), tour.RegionID)
	assert.Nil(t, req.Order)
	require.Len(t, tour.InfoByDays, 1)
	assert.Equal(t, "Day 1", tour.InfoByDays[0].Title)
}
