package view

import (
	"context"
	"io"
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/b3/b3t/internal/config"
	"github.com/b3/b3t/internal/config/data"
	"github.com/b3/b3t/internal/dao"
)

func init() {
	logrus.SetOutput(io.Discard)
}

func newTestApp(t *testing.T) (*App, *dao.StoreFactory) {
	t.Helper()

	return newTestAppAt(t, t.TempDir())
}

func newTestAppAt(t *testing.T, dir string) (*App, *dao.StoreFactory) {
	t.Helper()

	cfg := config.NewConfig()
	cfg.B3t.SetDir(data.NewDirAt(dir))
	f := dao.NewFactory(dao.SeedCatalog())
	app := NewApp(cfg, "test")
	app.SetFactory(f)
	require.NoError(t, app.Init())

	return app, f
}

func syncExec(f func()) { f() }

type mountable interface {
	ResourceViewer
	SetExecutor(func(func()))
}

// startBrowser mounts a view with synchronous model operations.
func startBrowser(t *testing.T, b mountable) {
	t.Helper()

	require.NoError(t, b.Init(context.Background()))
	b.SetExecutor(syncExec)
	b.Start()
	t.Cleanup(b.Stop)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}
