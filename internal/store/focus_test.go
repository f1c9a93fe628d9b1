package store

import (
	"context"
	"testing"

	"github.com/lmonteiro/studa/internal/kv"
	"github.com/lmonteiro/studa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	devices := kv.NewMemory()

	first := NewFocusStore(devices, testutil.DiscardLogger())
	first.Load(ctx)
	first.SetText("pass the calculus exam")
	first.Flush()

	second := NewFocusStore(devices, testutil.DiscardLogger())
	second.Load(ctx)
	assert.Equal(t, "pass the calculus exam", second.Text())
}

func TestFocusStoreEmptyWithoutPersistedText(t *testing.T) {
	s := NewFocusStore(kv.NewMemory(), testutil.DiscardLogger())
	s.Load(context.Background())
	assert.Equal(t, "", s.Text())
}

func TestFocusStoreSuppressesWritesBeforeLoad(t *testing.T) {
	ctx := context.Background()
	devices := kv.NewMemory()

	s := NewFocusStore(devices, testutil.DiscardLogger())
	s.SetText("too early")
	s.Flush()

	_, ok, err := devices.Get(ctx, KeyFocus)
	require.NoError(t, err)
	assert.False(t, ok, "pre-load write must not reach the device store")
}
