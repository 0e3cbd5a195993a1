package dao

import (
	"context"
	"fmt"
	"sync"

	"github.com/b3/b3t/internal/model"
	"github.com/b3/b3t/internal/model1"
)

// StoreResource is the base struct that all specific DAOs embed.
// It provides factory access, resource identification, and caching.
type StoreResource struct {
	Factory
	rid      *ResourceID
	envelope bool
	mx       sync.RWMutex
}

// Init initializes the StoreResource with factory and resource ID.
func (r *StoreResource) Init(f Factory, rid *ResourceID) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.Factory = f
	r.rid = rid
}

// ResourceID returns the resource identifier.
func (r *StoreResource) ResourceID() *ResourceID {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.rid
}

// wrapEdges makes List return {node: record} edges.
func (r *StoreResource) wrapEdges() {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.envelope = true
}

func (r *StoreResource) getFactory() Factory {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.Factory
}

func (r *StoreResource) cacheKey() string {
	r.mx.RLock()
	defer r.mx.RUnlock()
	if r.rid == nil {
		return ""
	}
	return r.rid.String()
}

// records returns the resource snapshot, served from the cache while fresh.
func (r *StoreResource) records() ([]model1.Record, error) {
	f := r.getFactory()
	if f == nil {
		return nil, fmt.Errorf("factory not initialized")
	}

	key := r.cacheKey()
	if rr, ok := f.Cache().Get(key); ok {
		return rr, nil
	}
	rr, err := f.Catalog().Records(r.ResourceID())
	if err != nil {
		return nil, err
	}
	f.Cache().Set(key, rr)

	return rr, nil
}

// invalidate drops the cached snapshot after a mutation.
func (r *StoreResource) invalidate() {
	if f := r.getFactory(); f != nil {
		f.Cache().Invalidate(r.cacheKey())
	}
}

// List returns one window of records, filtered and ordered per params.
func (r *StoreResource) List(ctx context.Context, params model1.FilterSnapshot) (model1.PageResult, error) {
	f := r.getFactory()
	if f == nil {
		return model1.PageResult{}, fmt.Errorf("factory not initialized")
	}
	if err := f.Wait(ctx); err != nil {
		return model1.PageResult{}, err
	}
	if err := params.Window().Validate(); err != nil {
		return model1.PageResult{}, err
	}

	rr, err := r.records()
	if err != nil {
		return model1.PageResult{}, err
	}
	res, err := model.NewLocalFetcher(model1.RowsOf(rr...), model1.DefaultIdentityField).Fetch(ctx, params)
	if err != nil {
		return model1.PageResult{}, err
	}

	r.mx.RLock()
	envelope := r.envelope
	r.mx.RUnlock()
	if envelope {
		for i, e := range res.Edges {
			res.Edges[i] = map[string]any{model1.NodeField: map[string]any(model1.Unwrap(e))}
		}
	}

	return res, nil
}

// Get returns a record by identity.
func (r *StoreResource) Get(_ context.Context, id string) (model1.Record, error) {
	rr, err := r.records()
	if err != nil {
		return nil, err
	}
	for _, rec := range rr {
		if model1.Normalize(rec[model1.DefaultIdentityField]) == id {
			return rec.Clone(), nil
		}
	}

	return nil, fmt.Errorf("%s %q: %w", r.cacheKey(), id, ErrNotFound)
}
