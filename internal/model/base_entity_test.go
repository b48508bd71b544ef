package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseEntity_SoftDeleteFlagIsIsolated(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	e := BaseEntity{ID: 7, CreatedAt: now, UpdatedAt: now}

	e.IsDeleted = true

	assert.Equal(t, int64(7), e.ID)
	assert.True(t, e.CreatedAt.Equal(now))
	assert.True(t, e.UpdatedAt.Equal(now), "打软删除标记不应刷新 updated_at")
}

func TestBaseEntity_ZeroValueIsActive(t *testing.T) {
	var e BaseEntity
	assert.False(t, e.IsDeleted)
	assert.Zero(t, e.ID)
}

func TestBaseEntity_JSON(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	e := BaseEntity{ID: 1, CreatedAt: now, UpdatedAt: now}

	b, err := json.Marshal(e)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	for _, key := range []string{"id", "is_deleted", "created_at", "updated_at"} {
		assert.Contains(t, m, key)
	}
}
