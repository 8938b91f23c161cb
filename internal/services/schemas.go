package services

import "tourcms/internal/query"

var newestFirst = query.Sort{Field: "createdAt", Direction: query.Desc}

var regionSchema = query.Schema{
	Resource: "regions",
	Fields: query.With(query.BaseFields(), map[string]query.Field{
		"title":       query.Text("title"),
		"description": query.Text("description"),
		"link":        query.Text("link"),
	}),
	DefaultSort: newestFirst,
}

var hotelSchema = query.Schema{
	Resource: "hotels",
	Fields: query.With(query.BaseFields(), map[string]query.Field{
		"title":       query.Text("title"),
		"city":        query.Text("city"),
		"hotelType":   query.Text("hotel_type"),
		"address":     query.Text("address"),
		"numStars":    query.Number("num_stars"),
		"description": query.Text("description"),
		"addInfo":     query.Text("add_info"),
		"regionId":    query.Number("region_id"),
	}),
	DefaultSort: newestFirst,
}

var eventSchema = query.Schema{
	Resource: "events",
	Fields: query.With(query.BaseFields(), map[string]query.Field{
		"title":       query.Text("title"),
		"description": query.Text("description"),
		"link":        query.Text("link"),
		"regionId":    query.Number("region_id"),
	}),
	DefaultSort: newestFirst,
}

var placeSchema = query.Schema{
	Resource: "places",
	Fields: query.With(query.BaseFields(), map[string]query.Field{
		"title":       query.Text("title"),
		"description": query.Text("description"),
		"links":       query.Text("links"),
		"regionId":    query.Number("region_id"),
	}),
	DefaultSort: newestFirst,
}

var tourFields = query.With(query.BaseFields(), map[string]query.Field{
	"title":        query.Text("title"),
	"transport":    query.Text("transport"),
	"duration":     query.Text("duration"),
	"timeToStart":  query.Text("time_to_start"),
	"type":         query.Text("tour_type"),
	"level":        query.Text("level"),
	"minNumPeople": query.Number("min_num_people"),
	"maxNumPeople": query.Number("max_num_people"),
	"price":        query.Number("price"),
	"addInfo":      query.Text("add_info"),
	"bookingType":  query.Text("booking_type"),
	"regionId":     query.Number("region_id"),
})

var oneDayTourSchema = query.Schema{
	Resource:    "oneDayTours",
	Fields:      tourFields,
	DefaultSort: newestFirst,
}

var orderAsc = query.Sort{Field: "order", Direction: query.Asc}

// Multi-day tours always list in manual order first.
var multiDayTourSchema = query.Schema{
	Resource: "multiDayTours",
	Fields: query.With(tourFields, map[string]query.Field{
		"order": query.Number("sort_order"),
	}),
	DefaultSort: orderAsc,
	Pinned:      &orderAsc,
}

var autorTourSchema = query.Schema{
	Resource:    "autorTours",
	Fields:      tourFields,
	DefaultSort: newestFirst,
}
