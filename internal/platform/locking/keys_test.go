package locking_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/SscSPs/fixed_assets_app/internal/platform/locking"
	"github.com/stretchr/testify/assert"
)

func TestDepreciationRunKey(t *testing.T) {
	assert.Equal(t, "depreciation:ws-42:2025", locking.DepreciationRunKey("ws-42", 2025))
}

func TestConnect_RequiresAddress(t *testing.T) {
	_, err := locking.Connect(context.Background(), "", 1, slog.Default())
	assert.Error(t, err)
}
