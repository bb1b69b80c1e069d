package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery_Defaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, defaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 0, filter.Offset)
	assert.True(t, filter.WithPagination)
}

func TestParseFilterFromQuery_PageAndLimit(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{
		"page":   []string{"3"},
		"limit":  []string{"20"},
		"search": []string{"Maliniak"},
	})

	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 40, filter.Offset)
	assert.Equal(t, "Maliniak", filter.Search)
}

func TestParseFilterFromQuery_IgnoresBadValues(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{
		"page":  []string{"-1"},
		"limit": []string{"999999"},
	})

	assert.Equal(t, defaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
}
