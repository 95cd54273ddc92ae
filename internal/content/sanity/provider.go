package sanity

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
)

// Provider hands out the process client, building it on first use.
//
// The configuration is captured when the provider is created; later changes
// to the environment are not observed. A failed build is reported and not
// cached, so the next call tries again.
type Provider struct {
	cfg    Config
	build  func(Config) (*Client, error)
	report func(error)

	mu     sync.Mutex
	client atomic.Pointer[Client]
}

// ProviderOption customizes a Provider.
type ProviderOption func(*Provider)

// WithBuilder replaces the client constructor.
func WithBuilder(build func(Config) (*Client, error)) ProviderOption {
	return func(p *Provider) {
		if build != nil {
			p.build = build
		}
	}
}

// WithClientOptions passes options to the default constructor.
func WithClientOptions(opts ...ClientOption) ProviderOption {
	return func(p *Provider) {
		p.build = func(cfg Config) (*Client, error) {
			return NewClient(cfg, opts...)
		}
	}
}

// WithFailureReporter replaces the reporter called when a build fails.
func WithFailureReporter(report func(error)) ProviderOption {
	return func(p *Provider) {
		if report != nil {
			p.report = report
		}
	}
}

// NewProvider returns a provider bound to cfg.
func NewProvider(cfg Config, opts ...ProviderOption) *Provider {
	p := &Provider{
		cfg: cfg,
		build: func(cfg Config) (*Client, error) {
			return NewClient(cfg)
		},
		report: func(err error) {
			log.Printf("content client unavailable err=%v", err)
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Config returns the configuration captured at construction.
func (p *Provider) Config() Config {
	if p == nil {
		return Config{}
	}
	return p.cfg
}

// Configured reports whether the guard accepts the captured configuration.
func (p *Provider) Configured() bool {
	return p != nil && p.cfg.Configured()
}

// Client returns the shared client, or false when the source is unusable.
func (p *Provider) Client() (*Client, bool) {
	if !p.Configured() {
		return nil, false
	}
	if c := p.client.Load(); c != nil {
		return c, true
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if c := p.client.Load(); c != nil {
		return c, true
	}
	c, err := p.safeBuild()
	if err != nil {
		p.report(fmt.Errorf("build content client: %w", err))
		return nil, false
	}
	if c == nil {
		p.report(fmt.Errorf("build content client: constructor returned no client"))
		return nil, false
	}
	p.client.Store(c)
	return c, true
}

// Querier returns the shared client as a Querier.
func (p *Provider) Querier() (Querier, bool) {
	c, ok := p.Client()
	if !ok {
		return nil, false
	}
	return c, true
}

func (p *Provider) safeBuild() (c *Client, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			c, err = nil, fmt.Errorf("constructor panicked: %v", recovered)
		}
	}()
	return p.build(p.cfg)
}
