// Package observability lets an embedding program watch ringlayout at work.
//
// The pipeline, the cache layer and the HTTP server report events through
// three hook interfaces. Until something is registered every hook is a
// no-op, so callers emit unconditionally:
//
//	observability.SetCacheHooks(promCacheHooks{})
//
//	hooks := observability.Pipeline()
//	hooks.OnLayoutStart(ctx, sc.Name, sc.Counts().Total())
//	layout := sc.Layout()
//	hooks.OnLayoutComplete(ctx, sc.Name, time.Since(start), nil)
//
// Register hooks before serving; swapping them at runtime is safe but
// in-flight events may still reach the old set.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks observes layout computation and artifact rendering.
type PipelineHooks interface {
	OnLayoutStart(ctx context.Context, scene string, items int)
	OnLayoutComplete(ctx context.Context, scene string, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks observes cache traffic. keyType is "layout" or "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// ServerHooks observes HTTP requests. route is the matched chi pattern when
// one is known, otherwise the request path.
type ServerHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                       {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, time.Duration, error)   {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// registry holds the active hook set.
type registry struct {
	mu       sync.RWMutex
	pipeline PipelineHooks
	cache    CacheHooks
	server   ServerHooks
}

var active = newRegistry()

func newRegistry() *registry {
	return &registry{
		pipeline: NoopPipelineHooks{},
		cache:    NoopCacheHooks{},
		server:   NoopServerHooks{},
	}
}

func (r *registry) update(fn func(*registry)) {
	r.mu.Lock()
	fn(r)
	r.mu.Unlock()
}

func (r *registry) snapshot() (PipelineHooks, CacheHooks, ServerHooks) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pipeline, r.cache, r.server
}

// SetPipelineHooks installs h. A nil h keeps the current hooks.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		active.update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks installs h. A nil h keeps the current hooks.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		active.update(func(r *registry) { r.cache = h })
	}
}

// SetServerHooks installs h. A nil h keeps the current hooks.
func SetServerHooks(h ServerHooks) {
	if h != nil {
		active.update(func(r *registry) { r.server = h })
	}
}

func Pipeline() PipelineHooks {
	p, _, _ := active.snapshot()
	return p
}

func Cache() CacheHooks {
	_, c, _ := active.snapshot()
	return c
}

func Server() ServerHooks {
	_, _, s := active.snapshot()
	return s
}

// Reset reinstalls the no-op hooks.
func Reset() {
	fresh := newRegistry()
	active.update(func(r *registry) {
		r.pipeline, r.cache, r.server = fresh.pipeline, fresh.cache, fresh.server
	})
}
