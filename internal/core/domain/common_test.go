package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuditFields(t *testing.T) {
	zurich := time.FixedZone("CET", 3600)
	created := time.Date(2024, time.January, 5, 9, 0, 0, 0, zurich)

	a := NewAuditFields("user-1", created)
	assert.Equal(t, time.UTC, a.CreatedAt.Location())
	assert.True(t, a.CreatedAt.Equal(created))
	assert.Equal(t, a.CreatedAt, a.LastUpdatedAt)
	assert.Equal(t, "user-1", a.LastUpdatedBy)

	a.Touch("user-2", created.Add(time.Hour))
	assert.Equal(t, "user-1", a.CreatedBy)
	assert.Equal(t, "user-2", a.LastUpdatedBy)
	assert.True(t, a.LastUpdatedAt.After(a.CreatedAt))
}

func TestAssetFilterNormalize(t *testing.T) {
	assert.Equal(t, DefaultAssetListLimit, AssetFilter{}.Normalize().Limit)
	assert.Equal(t, MaxAssetListLimit, AssetFilter{Limit: 1000}.Normalize().Limit)
	assert.Equal(t, 0, AssetFilter{Limit: 5, Offset: -3}.Normalize().Offset)
	assert.Equal(t, 5, AssetFilter{Limit: 5}.Normalize().Limit)
}
