package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testSchema = Schema{
	Resource: "items",
	Fields: With(BaseFields(), map[string]Field{
		"title":    Text("title"),
		"regionId": Number("region_id"),
	}),
	DefaultSort: Sort{Field: "createdAt", Direction: Desc},
}

func TestParseDefaults(t *testing.T) {
	p, err := Parse(testSchema, "", "", "")
	require.NoError(t, err)

	assert.Equal(t, 0, p.Start)
	assert.Equal(t, 10, p.End)
	assert.Empty(t, p.filters)

	cols := p.OrderColumns()
	require.Len(t, cols, 2)
	assert.Equal(t, "created_at", cols[0].Column.Name)
	assert.True(t, cols[0].Desc)
	assert.Equal(t, "id", cols[1].Column.Name)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name                string
		rng, sort, filterBy string
	}{
		{name: "range not json", rng: "0-9"},
		{name: "range wrong arity", rng: "[0]"},
		{name: "range negative start", rng: "[-1,4]"},
		{name: "sort not json", sort: "title"},
		{name: "sort unknown field", sort: `["secret","ASC"]`},
		{name: "sort bad direction", sort: `["title","UP"]`},
		{name: "filter not object", filterBy: `["title"]`},
		{name: "filter unknown field", filterBy: `{"password":"x"}`},
		{name: "filter time field", filterBy: `{"createdAt":"2024"}`},
		{name: "filter object value", filterBy: `{"title":{"contains":"x"}}`},
		{name: "filter bool value", filterBy: `{"title":true}`},
		{name: "filter non numeric id", filterBy: `{"regionId":"abc"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(testSchema, tc.rng, tc.sort, tc.filterBy)
			assert.ErrorIs(t, err, ErrInvalidQuery)
		})
	}
}

func TestSortDirectionIsCaseInsensitive(t *testing.T) {
	p, err := Parse(testSchema, "", `["title","asc"]`, "")
	require.NoError(t, err)

	cols := p.OrderColumns()
	require.Len(t, cols, 2)
	assert.Equal(t, "title", cols[0].Column.Name)
	assert.False(t, cols[0].Desc)
	assert.Equal(t, "id", cols[1].Column.Name)
	assert.False(t, cols[1].Desc)
}

func TestPinnedSortComesFirst(t *testing.T) {
	pinned := Sort{Field: "order", Direction: Asc}
	schema := Schema{
		Resource:    "tours",
		Fields:      With(BaseFields(), map[string]Field{"order": Number("sort_order"), "title": Text("title")}),
		DefaultSort: pinned,
		Pinned:      &pinned,
	}

	p, err := Parse(schema, "", `["title","DESC"]`, "")
	require.NoError(t, err)
	cols := p.OrderColumns()
	require.Len(t, cols, 3)
	assert.Equal(t, "sort_order", cols[0].Column.Name)
	assert.False(t, cols[0].Desc)
	assert.Equal(t, "title", cols[1].Column.Name)
	assert.True(t, cols[1].Desc)

	p, err = Parse(schema, "", "", "")
	require.NoError(t, err)
	cols = p.OrderColumns()
	require.Len(t, cols, 2)
	assert.Equal(t, "sort_order", cols[0].Column.Name)
	assert.Equal(t, "id", cols[1].Column.Name)
}

func TestLimitAndContentRange(t *testing.T) {
	cases := []struct {
		rng       string
		total     int64
		wantLimit int
		wantRange string
	}{
		{rng: "[0,9]", total: 25, wantLimit: 10, wantRange: "items 0-9/25"},
		{rng: "[0,9]", total: 3, wantLimit: 3, wantRange: "items 0-2/3"},
		{rng: "[20,29]", total: 25, wantLimit: 10, wantRange: "items 20-24/25"},
		{rng: "[5,4]", total: 25, wantLimit: 0, wantRange: "items 5-4/25"},
		{rng: "[0,9]", total: 0, wantLimit: 0, wantRange: "items 0--1/0"},
		{rng: "[0,9223372036854775807]", total: 1, wantLimit: 1, wantRange: "items 0-0/1"},
		{rng: "[3,9223372036854775807]", total: 5, wantLimit: 5, wantRange: "items 3-4/5"},
	}

	for _, tc := range cases {
		t.Run(tc.rng, func(t *testing.T) {
			p, err := Parse(testSchema, tc.rng, "", "")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLimit, p.Limit(tc.total))
			assert.Equal(t, tc.wantRange, p.ContentRange(tc.total))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now`, escapeLike("50% off_now"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}

type item struct {
	ID       uint
	Title    string
	RegionID *uint
}

func newItemsDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&item{}))

	one, two := uint(1), uint(2)
	require.NoError(t, db.Create(&[]item{
		{Title: "Swiss Alps", RegionID: &one},
		{Title: "ALPINE lakes", RegionID: &two},
		{Title: "Black Sea", RegionID: &two},
		{Title: "100% Beach"},
	}).Error)
	return db
}

func findTitles(t *testing.T, db *gorm.DB, filter string) []string {
	t.Helper()
	p, err := Parse(testSchema, "", `["id","ASC"]`, filter)
	require.NoError(t, err)

	var titles []string
	require.NoError(t, p.Order(p.Where(db.Model(&item{}))).Pluck("title", &titles).Error)
	return titles
}

func TestWhereAgainstSQLite(t *testing.T) {
	db := newItemsDB(t)

	assert.Equal(t, []string{"Swiss Alps", "ALPINE lakes"}, findTitles(t, db, `{"title":"alp"}`))
	assert.Equal(t, []string{"Swiss Alps", "ALPINE lakes"}, findTitles(t, db, `{"title":"ALP"}`))
	assert.Equal(t, []string{"100% Beach"}, findTitles(t, db, `{"title":"0%"}`))
	assert.Equal(t, []string{"ALPINE lakes", "Black Sea"}, findTitles(t, db, `{"regionId":2}`))
	assert.Equal(t, []string{"ALPINE lakes", "Black Sea"}, findTitles(t, db, `{"regionId":"2"}`))
	assert.Equal(t, []string{"Swiss Alps", "Black Sea"}, findTitles(t, db, `{"id":[1,3]}`))
	assert.Equal(t, []string{"100% Beach"}, findTitles(t, db, `{"regionId":null}`))
	assert.Empty(t, findTitles(t, db, `{"id":[]}`))
	assert.Equal(t, []string{"ALPINE lakes"}, findTitles(t, db, `{"regionId":2,"title":"lake"}`))
}
