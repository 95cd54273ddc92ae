package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/content/sanity"
	"github.com/louisbranch/aicopilot/internal/platform/timeouts"
	"github.com/louisbranch/aicopilot/internal/services/web/app"
	"github.com/louisbranch/aicopilot/internal/services/web/modules"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/httpx"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/observability"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
	"github.com/louisbranch/aicopilot/internal/services/web/static"
	"github.com/louisbranch/aicopilot/internal/services/web/storage"
	"github.com/louisbranch/aicopilot/internal/services/web/storage/sqlite"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	Sanity   sanity.Config
	// Revalidate is how long fetched content is reused. Zero disables the
	// cache.
	Revalidate time.Duration
	// ContactDBPath locates the contact message database. Empty disables
	// the contact store; the form then answers 503.
	ContactDBPath       string
	TrustForwardedProto bool
	// SanityClientOptions customize the content API client.
	SanityClientOptions []sanity.ClientOption
	Now                 func() time.Time
	Logger              *log.Logger
}

// Server hosts the site handler.
type Server struct {
	httpAddr     string
	httpServer   *http.Server
	contactStore *sqlite.Store
}

// NewServer builds the content source, contact store and HTTP handler.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	provider := sanity.NewProvider(cfg.Sanity, sanity.WithClientOptions(cfg.SanityClientOptions...))
	if !provider.Configured() {
		log.Printf("content source not configured; pages render setup instructions")
	} else if _, ok := provider.Client(); !ok {
		log.Printf("content source configured but unavailable; pages render their missing state")
	}
	executor, err := content.NewExecutor(provider, content.WithRevalidate(cfg.Revalidate), content.WithClock(cfg.Now))
	if err != nil {
		return nil, fmt.Errorf("build content executor: %w", err)
	}

	var (
		contactStore *sqlite.Store
		contacts     storage.ContactStore
	)
	if path := strings.TrimSpace(cfg.ContactDBPath); path != "" {
		contactStore, err = sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open contact store: %w", err)
		}
		contacts = contactStore
	} else {
		log.Printf("contact store disabled; contact submissions are rejected")
	}

	handler, err := NewHandler(HandlerConfig{
		Dependencies: modules.Dependencies{
			Content: executor,
			Images:  provider.Config(),
			Contact: contacts,
			Now:     cfg.Now,
		},
		RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Logger:              cfg.Logger,
	})
	if err != nil {
		if contactStore != nil {
			_ = contactStore.Close()
		}
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		if contactStore != nil {
			_ = contactStore.Close()
		}
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		contactStore: contactStore,
	}, nil
}

// HandlerConfig wires the site modules.
type HandlerConfig struct {
	Dependencies        modules.Dependencies
	RequestSchemePolicy requestmeta.SchemePolicy
	Logger              *log.Logger
}

// NewHandler composes the static assets and page modules behind the shared
// middleware chain.
func NewHandler(cfg HandlerConfig) (http.Handler, error) {
	pages, err := app.Compose(app.ComposeInput{
		Modules:             modules.Default(cfg.Dependencies),
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, httpx.Chain(
		http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))),
		httpx.AllowMethods(http.MethodGet),
	))
	mux.Handle(routepath.Root, pages)

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "[WEB] ", log.LstdFlags)
	}
	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.SecureHeaders(),
		observability.RequestLogger(logger),
	), nil
}

// ListenAndServe serves HTTP until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		err := s.httpServer.Shutdown(shutdownCtx)
		if err != nil {
			return fmt.Errorf("shutdown web server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web: %w", err)
	}
}

// Close releases the contact store.
func (s *Server) Close() {
	if s == nil || s.contactStore == nil {
		return
	}
	if err := s.contactStore.Close(); err != nil {
		log.Printf("close contact store: %v", err)
	}
}

// Handler exposes the composed handler for embedding and tests.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return http.NotFoundHandler()
	}
	return s.httpServer.Handler
}
