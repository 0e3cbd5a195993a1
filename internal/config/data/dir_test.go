package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirLoadMissing(t *testing.T) {
	d := NewDirAt(t.TempDir())

	ctx, err := d.Load("storefront/address")
	require.NoError(t, err)

	assert.Equal(t, "storefront/address", ctx.Resource)
	assert.Equal(t, 0, ctx.PageSize)
	assert.True(t, ctx.IsMobile(true))
}

func TestDirRoundTrip(t *testing.T) {
	root := t.TempDir()
	d := NewDirAt(root)

	ctx := NewResourceContext("storefront/quote")
	ctx.SetSort("total", "desc")
	ctx.SetPageSize(25)
	ctx.FeatureGates.Merge(FeatureGates{CrossPageSelection: true})
	require.NoError(t, d.Save(ctx))

	assert.FileExists(t, filepath.Join(root, "storefront-quote.yaml"))

	got, err := d.Load("storefront/quote")
	require.NoError(t, err)
	orderBy, dir := got.Sort()
	assert.Equal(t, "total", orderBy)
	assert.Equal(t, "desc", dir)
	assert.Equal(t, 25, got.PageSize)
	assert.True(t, got.FeatureGates.CrossPageSelection)

	names, err := d.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"storefront-quote"}, names)
}

func TestDirLoadSanitizes(t *testing.T) {
	root := t.TempDir()
	raw := []byte("resource: x\npageSize: -3\nsortDirection: sideways\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "user.yaml"), raw, 0600))

	ctx, err := NewDirAt(root).Load("user")
	require.NoError(t, err)

	assert.Equal(t, "user", ctx.Resource)
	assert.Equal(t, 0, ctx.PageSize)
	assert.Empty(t, ctx.SortDirection)
}

func TestDirSaveUnnamed(t *testing.T) {
	assert.Error(t, NewDirAt(t.TempDir()).Save(&ResourceContext{}))
}
