package helpers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEntityQueryDefaults(t *testing.T) {
	query := ParseEntityQuery(url.Values{})

	assert.Equal(t, DefaultEntitySort, query.Sort)
	assert.Equal(t, int64(MaxEntityLimit), query.Limit)
	assert.Empty(t, query.Filters)
	assert.False(t, query.Single)
	assert.Empty(t, query.Id)
}

func TestParseEntityQueryFilters(t *testing.T) {
	query := ParseEntityQuery(url.Values{
		"category": {"groceries"},
		"month":    {"2026-08"},
		"sort":     {"amount"},
		"limit":    {"25"},
	})

	assert.Equal(t, map[string]interface{}{
		"category": "groceries",
		"month":    "2026-08",
	}, query.Filters)
	assert.Equal(t, "amount", query.Sort)
	assert.Equal(t, int64(25), query.Limit)
}

func TestParseEntityQueryReservedKeysAreNotFilters(t *testing.T) {
	query := ParseEntityQuery(url.Values{
		"sort":    {"-amount"},
		"limit":   {"10"},
		"_single": {"true"},
		"id":      {"abc123"},
	})

	assert.Empty(t, query.Filters)
	assert.True(t, query.Single)
	assert.Equal(t, "abc123", query.Id)
}

func TestParseEntityQueryLimitCap(t *testing.T) {
	query := ParseEntityQuery(url.Values{"limit": {"999999"}})
	assert.Equal(t, int64(MaxEntityLimit), query.Limit)

	// Malformed and non-positive limits fall back to the cap.
	query = ParseEntityQuery(url.Values{"limit": {"abc"}})
	assert.Equal(t, int64(MaxEntityLimit), query.Limit)

	query = ParseEntityQuery(url.Values{"limit": {"-5"}})
	assert.Equal(t, int64(MaxEntityLimit), query.Limit)
}
