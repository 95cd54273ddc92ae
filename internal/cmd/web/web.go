// Package web parses web command flags and starts the site server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/louisbranch/aicopilot/internal/content/sanity"
	entrypoint "github.com/louisbranch/aicopilot/internal/platform/cmd"
	"github.com/louisbranch/aicopilot/internal/services/web"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr            string        `env:"AICOPILOT_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	Revalidate          time.Duration `env:"AICOPILOT_CONTENT_REVALIDATE" envDefault:"60s"`
	ContactDBPath       string        `env:"AICOPILOT_CONTACT_DB_PATH" envDefault:"data/aicopilot.db"`
	TrustForwardedProto bool          `env:"AICOPILOT_TRUST_FORWARDED_PROTO" envDefault:"false"`
	Sanity              sanity.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.DurationVar(&cfg.Revalidate, "revalidate", cfg.Revalidate, "How long fetched content is reused (0 disables)")
	fs.StringVar(&cfg.ContactDBPath, "contact-db-path", cfg.ContactDBPath, "Contact message SQLite path (empty disables the form)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Revalidate < 0 {
		return Config{}, fmt.Errorf("revalidate must not be negative, got %s", cfg.Revalidate)
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			Sanity:              cfg.Sanity,
			Revalidate:          cfg.Revalidate,
			ContactDBPath:       cfg.ContactDBPath,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
