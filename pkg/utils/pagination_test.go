package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, -1)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 0, p.Limit)

	p = GetPaginationParams(3, 20)
	require.Equal(t, 3, p.Page)
	require.Equal(t, 20, p.Limit)
}

func TestCalculateOffset(t *testing.T) {
	require.Equal(t, 0, PaginationParams{Page: 1, Limit: 10}.CalculateOffset())
	require.Equal(t, 20, PaginationParams{Page: 3, Limit: 10}.CalculateOffset())
	require.Equal(t, 0, PaginationParams{Page: 0, Limit: 10}.CalculateOffset())
	require.Equal(t, 0, PaginationParams{Page: 5, Limit: 0}.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(25, 2, 10)
	require.Equal(t, 2, meta.Page)
	require.Equal(t, 10, meta.Limit)
	require.EqualValues(t, 25, meta.TotalCount)
	require.Equal(t, 3, meta.TotalPages)

	// no limit means a single page with everything
	meta = CalculateMeta(25, 1, 0)
	require.Equal(t, 1, meta.Page)
	require.Equal(t, 25, meta.Limit)
	require.Equal(t, 1, meta.TotalPages)

	meta = CalculateMeta(0, 1, 10)
	require.Equal(t, 0, meta.TotalPages)
}
