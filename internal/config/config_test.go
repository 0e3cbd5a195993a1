package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b3/b3t/internal/config/data"
)

func TestConfigLoadValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b3t.yaml")
	raw := "b3t:\n  pageSize: 20\n  rowsPerPageOptions: [50, 5, -1, 5]\n  defaultView: ''\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))

	cfg := NewConfig()
	require.NoError(t, cfg.Load(path, false))

	assert.Equal(t, 20, cfg.B3t.PageSize)
	assert.Equal(t, []int{5, 20, 50}, cfg.B3t.RowsPerPageOptions)
	assert.Equal(t, DefaultView, cfg.B3t.DefaultView)
	assert.Equal(t, float32(DefaultRefreshRate), cfg.B3t.RefreshRate)
	assert.Equal(t, "info", cfg.B3t.Logger.Level)
}

func TestConfigLoadMissing(t *testing.T) {
	cfg := NewConfig()
	path := filepath.Join(t.TempDir(), "nope.yaml")

	require.NoError(t, cfg.Load(path, false))
	assert.ErrorIs(t, cfg.Load(path, true), data.ErrMissingFile)
	assert.Equal(t, DefaultPageSize, cfg.B3t.PageSize)
}

func TestConfigSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b3t.yaml")
	cfg := NewConfig()
	require.NoError(t, cfg.Load(path, false))

	require.NoError(t, cfg.Save(false))
	assert.NoFileExists(t, path)

	cfg.B3t.PageSize = 25
	require.NoError(t, cfg.Save(true))

	again := NewConfig()
	require.NoError(t, again.Load(path, true))
	assert.Equal(t, 25, again.B3t.PageSize)
}

func TestConfigRefine(t *testing.T) {
	catalog := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte("addresses: []\n"), 0600))

	flags := NewFlags()
	*flags.Command = ":sl"
	*flags.PageSize = 7
	*flags.Mobile = true
	*flags.Catalog = catalog
	*flags.LogLevel = "debug"

	cfg := NewConfig()
	require.NoError(t, cfg.Refine(flags))

	assert.Equal(t, "storefront/shoppinglist", cfg.B3t.DefaultView)
	assert.Equal(t, 7, cfg.B3t.PageSize)
	assert.Contains(t, cfg.B3t.RowsPerPageOptions, 7)
	assert.True(t, cfg.B3t.IsMobile(nil))
	assert.Equal(t, catalog, cfg.B3t.Catalog)
	assert.Equal(t, "debug", cfg.B3t.Logger.Level)

	*flags.Catalog = filepath.Join(t.TempDir(), "missing.yaml")
	assert.Error(t, NewConfig().Refine(flags))
}

func TestB3tViews(t *testing.T) {
	b := NewB3t()
	b.SetDir(data.NewDirAt(t.TempDir()))

	ctx, err := b.ActivateView("storefront/quote")
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, b.PageSizeFor(ctx))
	assert.False(t, b.CrossPageFor(ctx))

	ctx.SetPageSize(50)
	ctx.FeatureGates.CrossPageSelection = true
	mobile := true
	ctx.Mobile = &mobile
	require.NoError(t, b.SaveView("storefront/quote"))

	again, err := b.ActivateView("storefront/quote")
	require.NoError(t, err)
	assert.Same(t, ctx, again)
	assert.Equal(t, 50, b.PageSizeFor(again))
	assert.True(t, b.CrossPageFor(again))
	assert.True(t, b.IsMobile(again))

	_, err = b.ActivateView("")
	assert.Error(t, err)
}

func TestAliases(t *testing.T) {
	a := NewAliases()

	assert.Equal(t, "storefront/quote", a.Get(":q"))
	assert.Equal(t, "storefront/address", a.Get("Address"))
	assert.Equal(t, "bozo", a.Get("bozo"))
	assert.Equal(t, []string{"q", "quote", "quotes"}, a.ShortNames("storefront/quote"))
	assert.Len(t, a.Resources(), 4)

	path := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aliases:\n  qq: storefront/quote\n"), 0600))
	require.NoError(t, a.LoadFrom(path))
	assert.Equal(t, "storefront/quote", a.Get("qq"))
}

func TestHotKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hotkeys.yaml")
	raw := "hotKeys:\n  quotes:\n    shortCut: Shift-1\n    command: quote\n  carts:\n    shortCut: Alt-2\n    command: sl\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))

	h := NewHotKeys()
	require.NoError(t, h.LoadFrom(path))

	bb := h.Bindings()
	require.Len(t, bb, 2)
	assert.Equal(t, "Alt-2", bb[0].ShortCut)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("hotKeys:\n  x:\n    shortCut: Shift-1\n"), 0600))
	assert.Error(t, NewHotKeys().LoadFrom(bad))
}

func TestInitLocs(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	require.NoError(t, InitLocs())
	require.NoError(t, InitLogLoc())

	assert.DirExists(t, filepath.Join(root, "config", AppName))
	assert.DirExists(t, filepath.Join(root, "data", AppName, "views"))
	assert.DirExists(t, filepath.Dir(AppLogFile))
	assert.Equal(t, filepath.Join(root, "state", AppName, "b3t.log"), AppLogFile)
}
