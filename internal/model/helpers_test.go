package model

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/b3/b3t/internal/model1"
)

var errBoom = errors.New("boom")

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fakeFetcher records calls and serves fixed rows.
type fakeFetcher struct {
	rows   model1.Rows
	calls  []model1.FilterSnapshot
	err    error
	gates  []chan struct{}
	mx     sync.Mutex
	called chan struct{}
}

func newFakeFetcher(recs ...model1.Record) *fakeFetcher {
	return &fakeFetcher{rows: model1.RowsOf(recs...)}
}

// block makes the next fetch wait until the returned channel is closed.
func (f *fakeFetcher) block() chan struct{} {
	f.mx.Lock()
	defer f.mx.Unlock()

	c := make(chan struct{})
	f.gates = append(f.gates, c)
	if f.called == nil {
		f.called = make(chan struct{}, 8)
	}
	return c
}

func (f *fakeFetcher) setRows(recs ...model1.Record) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.rows = model1.RowsOf(recs...)
}

func (f *fakeFetcher) setErr(err error) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.err = err
}

func (f *fakeFetcher) count() int {
	f.mx.Lock()
	defer f.mx.Unlock()
	return len(f.calls)
}

func (f *fakeFetcher) last() model1.FilterSnapshot {
	f.mx.Lock()
	defer f.mx.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeFetcher) Fetch(_ context.Context, params model1.FilterSnapshot) (model1.PageResult, error) {
	f.mx.Lock()
	f.calls = append(f.calls, params)
	rows, err := f.rows, f.err
	var gate chan struct{}
	if len(f.gates) > 0 {
		gate, f.gates = f.gates[0], f.gates[1:]
	}
	called := f.called
	f.mx.Unlock()

	if gate != nil {
		if called != nil {
			called <- struct{}{}
		}
		<-gate
	}
	if err != nil {
		return model1.PageResult{}, err
	}
	return Window(rows, params.Window()), nil
}

// recorder is a TableListener keeping the notifications it got.
type recorder struct {
	loading []bool
	data    []Snapshot
	noData  int
	errs    []error
	mx      sync.Mutex
}

func (r *recorder) TableLoading(b bool) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.loading = append(r.loading, b)
}

func (r *recorder) TableNoData(Snapshot) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.noData++
}

func (r *recorder) TableDataChanged(s Snapshot) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.data = append(r.data, s)
}

func (r *recorder) TableLoadFailed(err error) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.errs = append(r.errs, err)
}

func scenarioRecords() []model1.Record {
	return []model1.Record{
		{"id": 1, "qty": 2, model1.DisabledField: false},
		{"id": 2, "qty": 0, model1.DisabledField: true},
	}
}

func manyRecords(n int) []model1.Record {
	rr := make([]model1.Record, 0, n)
	for i := 1; i <= n; i++ {
		rr = append(rr, model1.Record{"id": i, "name": "item"})
	}
	return rr
}
