package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 10, 45)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.EqualValues(t, 45, meta.Total)
	assert.Equal(t, 5, meta.TotalPages)

	// Chia hết
	assert.Equal(t, 4, NewMeta(1, 10, 40).TotalPages)

	// Rỗng
	assert.Equal(t, 0, NewMeta(1, 10, 0).TotalPages)
}

func TestPaginationRequest_Normalize(t *testing.T) {
	p := PaginationRequest{}
	p.Normalize(20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset())

	p = PaginationRequest{Page: 3, Limit: 50}
	p.Normalize(20, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, 100, p.Offset())

	// Vượt max -> quay về default
	p = PaginationRequest{Page: 1, Limit: 500}
	p.Normalize(20, 100)
	assert.Equal(t, 20, p.Limit)
}

func TestResponseBuilders(t *testing.T) {
	ok := Success(map[string]int{"count": 1})
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)

	fail := Error("STALE_TARGET", "Hạn liên hệ đã qua")
	assert.False(t, fail.Success)
	assert.Equal(t, "STALE_TARGET", fail.Error.Code)
	assert.Equal(t, "Hạn liên hệ đã qua", fail.Error.Message)

	withMeta := SuccessWithMeta([]int{1, 2}, NewMeta(1, 10, 2))
	assert.True(t, withMeta.Success)
	assert.NotNil(t, withMeta.Meta)
}
