// Package contentcheck reports whether the content source is reachable and
// whether every page query returns renderable records.
package contentcheck

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/content/sanity"
	entrypoint "github.com/louisbranch/aicopilot/internal/platform/cmd"
	"github.com/sanity-io/litter"
	"gopkg.in/yaml.v3"
)

// Config holds contentcheck command configuration.
type Config struct {
	Sanity  sanity.Config
	Timeout time.Duration `env:"AICOPILOT_CONTENTCHECK_TIMEOUT" envDefault:"10s"`
	// Slug additionally checks the case study detail query.
	Slug   string
	Dump   bool
	Schema bool
	// ClientOptions customize the content API client.
	ClientOptions []sanity.ClientOption
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Overall timeout for all queries")
	fs.StringVar(&cfg.Slug, "slug", cfg.Slug, "Also check the case study with this slug")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "Print decoded records")
	fs.BoolVar(&cfg.Schema, "schema", cfg.Schema, "Print the schema catalog and exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type check struct {
	query content.Query
	fetch func(context.Context, *content.Executor) (any, int, error)
}

func one[T any](q content.Query) check {
	return check{query: q, fetch: func(ctx context.Context, exec *content.Executor) (any, int, error) {
		record, err := content.Fetch[T](ctx, exec, q)
		if err != nil {
			return nil, 0, err
		}
		return record, 1, nil
	}}
}

func many[T any](q content.Query) check {
	return check{query: q, fetch: func(ctx context.Context, exec *content.Executor) (any, int, error) {
		records, err := content.Fetch[[]T](ctx, exec, q)
		if err != nil {
			return nil, 0, err
		}
		return records, len(records), nil
	}}
}

func checks(slug string) []check {
	list := []check{
		one[content.SiteSettings](content.SiteSettingsQuery),
		one[content.HomePage](content.HomePageQuery),
		one[content.Playbook](content.PlaybookQuery),
		one[content.FrameworkPage](content.FrameworkPageQuery),
		many[content.CaseStudy](content.AllCaseStudiesQuery),
		many[content.Talk](content.AllTalksQuery),
	}
	if slug = strings.TrimSpace(slug); slug != "" {
		list = append(list, one[content.CaseStudy](content.CaseStudyBySlugQuery(slug)))
	}
	return list
}

var dumper = litter.Options{
	StripPackageNames: true,
	HidePrivateFields: true,
	HideZeroValues:    true,
}

// Run prints the guard status and one line per query outcome. It fails when
// any query hits a transport, decode or validation problem.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	provider := sanity.NewProvider(cfg.Sanity, sanity.WithClientOptions(cfg.ClientOptions...))
	exec, err := content.NewExecutor(provider,
		content.WithRevalidate(0),
		content.WithReporter(func(*content.FetchError) {}),
	)
	if err != nil {
		return err
	}

	if cfg.Schema {
		return printSchema(out, exec)
	}

	source := provider.Config()
	if !provider.Configured() {
		fmt.Fprintln(out, "content source: not configured")
		fmt.Fprintln(out, "  set SANITY_PROJECT_ID and SANITY_DATASET in .env.local to real values")
		return nil
	}
	fmt.Fprintf(out, "content source: project=%s dataset=%s api_version=%s cdn=%t\n",
		source.ProjectID, source.Dataset, source.APIVersion, source.UseCDN)

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var failed []string
	for _, c := range checks(cfg.Slug) {
		start := time.Now()
		record, count, err := c.fetch(ctx, exec)
		elapsed := time.Since(start).Round(time.Millisecond)
		switch reason := content.ReasonOf(err); {
		case err == nil:
			fmt.Fprintf(out, "ok    %-16s records=%d latency=%s\n", c.query.Name, count, elapsed)
			if cfg.Dump {
				fmt.Fprintln(out, dumper.Sdump(record))
			}
		case reason == content.ReasonNoRecord || reason == content.ReasonNotConfigured:
			fmt.Fprintf(out, "empty %-16s reason=%s latency=%s\n", c.query.Name, reason, elapsed)
		default:
			fmt.Fprintf(out, "FAIL  %-16s reason=%s err=%v\n", c.query.Name, reason, errors.Unwrap(err))
			failed = append(failed, c.query.Name)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d queries failed: %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

func printSchema(out io.Writer, exec *content.Executor) error {
	catalog := exec.Catalog()
	if catalog == nil {
		return errors.New("schema catalog is unavailable")
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(catalog.Types()); err != nil {
		return fmt.Errorf("encode schema catalog: %w", err)
	}
	return enc.Close()
}
