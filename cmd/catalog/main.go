// Command catalog runs the storefront's catalog pipeline from the terminal:
// fetch a listing, filter it and print one page, or print its facets.
//
// Usage:
//
//	catalog list --query serum --category Face --discount sale --max-price 40 --page 2
//	catalog facets --query serum
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Modeva-Ecommerce/sepia-storefront/cache"
	"github.com/Modeva-Ecommerce/sepia-storefront/config"
	"github.com/Modeva-Ecommerce/sepia-storefront/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cliOptions struct {
	baseURL string
	timeout time.Duration
	query   string
	asJSON  bool
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:          "catalog",
		Short:        "Query the storefront catalog from the command line",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.baseURL, "base-url", "", "upstream API base URL (default: API_BASE_URL)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "upstream timeout (default: UPSTREAM_TIMEOUT)")
	flags.StringVarP(&opts.query, "query", "q", "", "search term")
	flags.BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log upstream requests to stderr")

	root.AddCommand(newListCmd(opts), newFacetsCmd(opts))
	return root
}

// service builds the storefront service from config, with flags taking
// precedence over the environment.
func (o *cliOptions) service() (*services.StorefrontService, *config.Config, error) {
	cfg := config.Default()
	if o.baseURL == "" {
		loaded, err := config.Load()
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	} else {
		cfg.Upstream.BaseURL = o.baseURL
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}
	if o.timeout > 0 {
		cfg.Upstream.Timeout = o.timeout
	}
	config.UpstreamTimeout = cfg.Upstream.Timeout

	log := zap.NewNop()
	if o.verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("init logger: %w", err)
		}
		log = dev
	}

	client := services.NewUpstreamClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log)
	return services.NewStorefrontService(client, cache.NewMemoryListingCache(cache.ListingTTL), log), cfg, nil
}
