// FILE: compat/builder.go
// Package compat provides adapters that let gnet and fasthttp route
// their internal logging through a console.Logger.
package compat

import (
	"fmt"

	"github.com/lixenwraith/console"
)

// Builder produces configured adapters. It either wraps an existing
// *console.Logger or builds one from a *console.Config; in the latter
// case the logger is built once and shared by every adapter from this
// Builder.
type Builder struct {
	logger *console.Logger
	logCfg *console.Config
	err    error
}

// NewBuilder creates an adapter builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger supplies an existing logger for the adapters. Applications
// with a central logger should prefer this; it takes precedence over
// WithConfig.
func (b *Builder) WithLogger(l *console.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("console/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig supplies a configuration for a new logger, used only when
// no logger was given via WithLogger.
func (b *Builder) WithConfig(cfg *console.Config) *Builder {
	b.logCfg = cfg
	return b
}

// BuildGnet creates a gnet adapter.
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.resolveLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter.
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.resolveLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying logger, building it if needed. Useful
// for flushing or shutting down a logger the Builder created.
func (b *Builder) GetLogger() (*console.Logger, error) {
	return b.resolveLogger()
}

func (b *Builder) resolveLogger() (*console.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.logger != nil {
		return b.logger, nil
	}

	l, err := console.New(b.logCfg)
	if err != nil {
		return nil, err
	}
	b.logger = l
	return l, nil
}
