package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateOffsetLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"negative page clamps to first", -4, 10, 0, 10},
		{"zero size uses default", 2, 0, 10, 10},
		{"oversized size uses default", 1, 500, 0, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Parallel()

	t.Run("exact pages", func(t *testing.T) {
		t.Parallel()
		info := NewPaginationInfo(40, 2, 10)
		assert.Equal(t, 2, info.CurrentPage)
		assert.Equal(t, 4, info.TotalPages)
		assert.Equal(t, int64(40), info.TotalItems)
	})

	t.Run("partial last page rounds up", func(t *testing.T) {
		t.Parallel()
		info := NewPaginationInfo(41, 1, 10)
		assert.Equal(t, 5, info.TotalPages)
	})

	t.Run("empty result set still reports one page", func(t *testing.T) {
		t.Parallel()
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, 1, info.CurrentPage)
	})

	t.Run("page past the end clamps", func(t *testing.T) {
		t.Parallel()
		info := NewPaginationInfo(15, 9, 10)
		assert.Equal(t, 2, info.TotalPages)
		assert.Equal(t, 2, info.CurrentPage)
	})
}

func TestParseOptionalBool(t *testing.T) {
	t.Parallel()

	got := ParseOptionalBool("true")
	require.NotNil(t, got)
	assert.True(t, *got)

	got = ParseOptionalBool("false")
	require.NotNil(t, got)
	assert.False(t, *got)

	assert.Nil(t, ParseOptionalBool(""))
	assert.Nil(t, ParseOptionalBool("True"))
	assert.Nil(t, ParseOptionalBool("1"))
	assert.Nil(t, ParseOptionalBool("yes"))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	s := "1990-03-01"
	got, err := ParseDate(&s)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(1990, time.March, 1, 0, 0, 0, 0, time.UTC), *got)

	got, err = ParseDate(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = ParseDate(&empty)
	require.NoError(t, err)
	assert.Nil(t, got)

	bad := "01/03/1990"
	_, err = ParseDate(&bad)
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}
