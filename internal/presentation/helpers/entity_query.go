package helpers

import (
	"net/url"
	"strconv"
)

// MaxEntityLimit caps every list result regardless of the requested limit.
const MaxEntityLimit = 10000

// DefaultEntitySort lists newest records first.
const DefaultEntitySort = "-created_date"

// reserved query keys never treated as entity filters.
var reservedEntityParams = map[string]bool{
	"sort":    true,
	"limit":   true,
	"_single": true,
}

type EntityQuery struct {
	Filters map[string]interface{}
	Sort    string
	Limit   int64
	Single  bool
	Id      string
}

// ParseEntityQuery maps URL query parameters onto the generic entity
// contract: any non-reserved key is an equality filter, "id" addresses the
// primary key, and _single switches get-by-id semantics on.
func ParseEntityQuery(urlQueries url.Values) *EntityQuery {
	query := &EntityQuery{
		Filters: map[string]interface{}{},
		Sort:    DefaultEntitySort,
		Limit:   MaxEntityLimit,
	}

	for key, values := range urlQueries {
		if reservedEntityParams[key] || len(values) == 0 {
			continue
		}
		if key == "id" {
			query.Id = values[0]
			continue
		}
		query.Filters[key] = values[0]
	}

	if sort := urlQueries.Get("sort"); sort != "" {
		query.Sort = sort
	}

	if limit := urlQueries.Get("limit"); limit != "" {
		if parsed, err := strconv.ParseInt(limit, 10, 64); err == nil && parsed > 0 {
			query.Limit = parsed
		}
	}
	if query.Limit > MaxEntityLimit {
		query.Limit = MaxEntityLimit
	}

	query.Single = urlQueries.Get("_single") == "true"

	return query
}
