package aconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipe-io/aconfig"
	"github.com/swipe-io/aconfig/internal/errors"
)

func TestFlagStateText(t *testing.T) {
	tests := []struct {
		text    string
		want    aconfig.FlagState
		wantErr bool
	}{
		{"ENABLED", aconfig.Enabled, false},
		{"disabled", aconfig.Disabled, false},
		{" Enabled ", aconfig.Enabled, false},
		{"on", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		var s aconfig.FlagState
		err := s.UnmarshalText([]byte(tt.text))
		if tt.wantErr {
			assert.Error(t, err, tt.text)
			continue
		}
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, s)

		text, err := s.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tt.want.String(), string(text))
	}

	_, err := aconfig.FlagState(0).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "FlagState(7)", aconfig.FlagState(7).String())
}

func TestPermissionText(t *testing.T) {
	tests := []struct {
		text    string
		want    aconfig.Permission
		wantErr bool
	}{
		{"READ_ONLY", aconfig.ReadOnly, false},
		{"read_write", aconfig.ReadWrite, false},
		{"rw", 0, true},
	}
	for _, tt := range tests {
		var p aconfig.Permission
		err := p.UnmarshalText([]byte(tt.text))
		if tt.wantErr {
			assert.Error(t, err, tt.text)
			continue
		}
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, p)
	}
	assert.Equal(t, "READ_WRITE", aconfig.ReadWrite.String())
	assert.False(t, aconfig.Permission(0).IsValid())
}

func testItems() []aconfig.Item {
	return []aconfig.Item{
		{Namespace: "aconfig_test", Name: "enabled_rw", State: aconfig.Enabled, Permission: aconfig.ReadWrite},
		{Namespace: "aconfig_test", Name: "disabled_ro", State: aconfig.Disabled, Permission: aconfig.ReadOnly},
	}
}

func TestNewCache(t *testing.T) {
	items := testItems()
	cache, err := aconfig.NewCache("com.android.aconfig.test", items)
	require.NoError(t, err)

	assert.Equal(t, "com.android.aconfig.test", cache.Package())
	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, items, cache.Items())

	// the cache does not share memory with its input or its callers
	items[0].Name = "changed"
	got := cache.Items()
	got[1].Name = "changed"
	assert.Equal(t, "enabled_rw", cache.Items()[0].Name)
	assert.Equal(t, "disabled_ro", cache.Items()[1].Name)
}

func TestNewCacheEmpty(t *testing.T) {
	cache, err := aconfig.NewCache("com.example", nil)
	require.NoError(t, err)
	assert.Empty(t, cache.Items())
}

func TestNewCacheInvalid(t *testing.T) {
	valid := aconfig.Item{Namespace: "ns", Name: "flag", State: aconfig.Enabled, Permission: aconfig.ReadOnly}
	with := func(f func(*aconfig.Item)) []aconfig.Item {
		item := valid
		f(&item)
		return []aconfig.Item{item}
	}
	tests := []struct {
		name  string
		pkg   string
		items []aconfig.Item
	}{
		{"bad package", "com.Example", []aconfig.Item{valid}},
		{"empty package", "", []aconfig.Item{valid}},
		{"bad name", "com.example", with(func(i *aconfig.Item) { i.Name = "Flag" })},
		{"empty namespace", "com.example", with(func(i *aconfig.Item) { i.Namespace = "" })},
		{"missing state", "com.example", with(func(i *aconfig.Item) { i.State = 0 })},
		{"missing permission", "com.example", with(func(i *aconfig.Item) { i.Permission = 0 })},
		{"duplicate", "com.example", []aconfig.Item{valid, valid}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, err := aconfig.NewCache(tt.pkg, tt.items)
			require.Error(t, err)
			assert.Nil(t, cache)
			assert.True(t, errors.Is(err, aconfig.ErrInvalidCache))
		})
	}
}
