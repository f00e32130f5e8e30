package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name        string
		page, limit string
		want        Request
	}{
		{"defaults when absent", "", "", Request{Page: 1, Limit: 10}},
		{"non numeric", "abc", "x10", Request{Page: 1, Limit: 10}},
		{"explicit values", "3", "25", Request{Page: 3, Limit: 25}},
		{"zero and negative", "0", "-5", Request{Page: 1, Limit: 10}},
		{"limit capped", "1", "1000", Request{Page: 1, Limit: MaxLimit}},
		{"page capped to int32 offsets", "214748366", "10", Request{Page: 214748365, Limit: 10}},
		{"page near int64 max", "922337203685477581", "10", Request{Page: 214748365, Limit: 10}},
		{"page beyond int64", "99999999999999999999", "10", Request{Page: 1, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRequest(tt.page, tt.limit))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Request{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, Request{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 15, Request{Page: 4, Limit: 5}.Offset())
}

func TestOffsetStaysInRange(t *testing.T) {
	for _, limit := range []string{"1", "7", "10", "100", "1000"} {
		r := ParseRequest("922337203685477581", limit)
		assert.GreaterOrEqual(t, r.Offset(), 0, "limit=%s", limit)
		assert.LessOrEqual(t, r.Offset(), MaxOffset, "limit=%s", limit)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 25, TotalPages(25, 1))
}

func TestNewResultNavigation(t *testing.T) {
	base := url.URL{Path: "/postagens"}
	items := []int{1, 2, 3}

	first := NewResult(Request{Page: 1, Limit: 10}, 25, items, base)
	assert.Equal(t, 3, first.TotalPages)
	require.NotNil(t, first.CurrentPage)
	assert.Equal(t, 1, *first.CurrentPage)
	require.NotNil(t, first.NextPageLink)
	assert.Equal(t, "/postagens?limit=10&page=2", *first.NextPageLink)

	last := NewResult(Request{Page: 3, Limit: 10}, 25, items, base)
	require.NotNil(t, last.CurrentPage)
	assert.Equal(t, 3, *last.CurrentPage)
	assert.Nil(t, last.NextPageLink)

	beyond := NewResult(Request{Page: 7, Limit: 10}, 25, []int(nil), base)
	assert.Nil(t, beyond.NextPageLink)
	assert.Empty(t, beyond.Items)
}

func TestNewResultEmpty(t *testing.T) {
	res := NewResult[string](Request{Page: 1, Limit: 10}, 0, nil, url.URL{Path: "/postagens"})

	assert.Equal(t, int64(0), res.TotalItems)
	assert.Equal(t, 0, res.TotalPages)
	assert.Nil(t, res.CurrentPage)
	assert.Nil(t, res.NextPageLink)
	assert.NotNil(t, res.Items)
}

func TestLinkKeepsFilters(t *testing.T) {
	base := url.URL{Path: "/postagens", RawQuery: "authorId=abc"}
	assert.Equal(t, "/postagens?authorId=abc&limit=5&page=2", Link(base, 2, 5))
}
