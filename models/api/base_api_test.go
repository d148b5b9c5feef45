package apimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginationGetPage(t *testing.T) {
	page, limit := Pagination{}.GetPage()
	require.Equal(t, 1, page)
	require.Equal(t, 10, limit)

	page, limit = Pagination{Page: 3, Limit: 25}.GetPage()
	require.Equal(t, 3, page)
	require.Equal(t, 25, limit)

	_, limit = Pagination{Limit: 500}.GetPage()
	require.Equal(t, 100, limit)

	page, limit = Pagination{Page: -1, Limit: -5}.GetPage()
	require.Equal(t, 1, page)
	require.Equal(t, 10, limit)
}

func TestNewPaginationView(t *testing.T) {
	view := NewPaginationView(1, 10, 25)
	require.Equal(t, 1, view.Current)
	require.Equal(t, int64(3), view.Pages)
	require.Equal(t, int64(25), view.Total)

	view = NewPaginationView(1, 10, 30)
	require.Equal(t, int64(3), view.Pages)

	view = NewPaginationView(4, 10, 0)
	require.Equal(t, int64(0), view.Pages)
	require.Equal(t, int64(0), view.Total)
}
