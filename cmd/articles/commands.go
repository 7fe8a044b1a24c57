// ABOUTME: Cobra commands for browsing trending articles and searching the archive
// ABOUTME: Each command wires a client, drives one feed controller and prints its state

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"articles-app-core/client"
	"articles-app-core/core/domain"
	"articles-app-core/core/feed"
	"articles-app-core/infrastructure/dispatch"
	loggerInfra "articles-app-core/infrastructure/logger/logrus"
	"articles-app-core/pkg/config"
)

type options struct {
	period     int
	thumbnails bool
	timeout    time.Duration
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "articles",
		Short:         "Browse most popular and searched NYT articles",
		Long:          "articles lists the most viewed, shared or emailed New York Times articles and searches the article archive. Set NYT_API_KEY before use.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().BoolVar(&opts.thumbnails, "thumbnails", false, "load each article thumbnail and print its size")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "give up when results take longer than this")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(newTrendingCmd(opts))
	root.AddCommand(newSearchCmd(opts))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "articles %s (commit: %s)\n", version, commit)
		},
	})

	return root
}

func newTrendingCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trending [viewed|shared|emailed]",
		Short: "List the most popular articles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := domain.CategoryMostViewed
			if len(args) == 1 {
				parsed, ok := domain.ParseCategory(args[0])
				if !ok {
					return fmt.Errorf("unknown category %q", args[0])
				}
				category = parsed
			}

			if opts.period != 0 && !domain.Period(opts.period).IsValid() {
				return fmt.Errorf("period must be 1, 7 or 30, got %d", opts.period)
			}

			return run(cmd, opts, func(c *feed.Controller) {
				c.ConfigureTrending(category)
			})
		},
	}
	cmd.Flags().IntVar(&opts.period, "period", 0, "window in days: 1, 7 or 30 (default from DEFAULT_PERIOD)")
	return cmd
}

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search the article archive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if !domain.IsSearchable(query) {
				return errors.New("search query cannot be blank")
			}
			return run(cmd, opts, func(c *feed.Controller) {
				c.ConfigureSearch(query)
			})
		},
	}
}

// run builds the client, applies configure and pumps the dispatch queue
// until the feed settles and any requested thumbnails have arrived
func run(cmd *cobra.Command, opts *options, configure func(*feed.Controller)) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = strings.ToLower(opts.logLevel)
	}
	if opts.period != 0 {
		cfg.Feed.DefaultPeriod = opts.period
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logCfg := loggerInfra.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.File = cfg.Log.File
	logger, err := loggerInfra.New(logCfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	queue := dispatch.NewQueue()
	c, err := client.New(
		client.WithAppConfig(cfg),
		client.WithLogger(logger),
		client.WithDispatcher(queue),
	)
	if err != nil {
		return err
	}
	defer c.Close()

	controller, err := c.NewFeedController()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	out := cmd.OutOrStdout()
	var failure error

	controller.Subscribe(func(state domain.FeedState) {
		switch state.Phase {
		case domain.PhaseLoaded:
			printFeed(out, state)
			if !opts.thumbnails || !loadThumbnails(out, c, state.Items, cancel) {
				cancel()
			}
		case domain.PhaseFailed:
			failure = errors.New(state.LastError)
			cancel()
		}
	})

	configure(controller)

	if err := queue.Run(ctx); errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("no results within %s", opts.timeout)
	}
	return failure
}

// loadThumbnails requests every item's thumbnail and calls done once all
// have been delivered. It reports whether any request was made.
func loadThumbnails(out io.Writer, c *client.Client, items []domain.Article, done func()) bool {
	remaining := 0
	for _, item := range items {
		if item.ThumbnailURL() != "" {
			remaining++
		}
	}
	if remaining == 0 {
		return false
	}

	fmt.Fprintln(out, "\nThumbnails:")
	for i, item := range items {
		url := item.ThumbnailURL()
		if url == "" {
			continue
		}
		index := i + 1
		c.Images().Request(url, func(img image.Image) {
			if img == nil {
				fmt.Fprintf(out, "%3d. placeholder\n", index)
			} else {
				b := img.Bounds()
				fmt.Fprintf(out, "%3d. %dx%d\n", index, b.Dx(), b.Dy())
			}
			remaining--
			if remaining == 0 {
				done()
			}
		})
	}
	return true
}

func printFeed(out io.Writer, state domain.FeedState) {
	switch state.Mode.Kind {
	case domain.ModeTrending:
		fmt.Fprintf(out, "%s · %s · %d articles\n\n", state.Mode.Category.DisplayName(), state.Mode.Period.DisplayName(), len(state.Items))
	case domain.ModeSearch:
		fmt.Fprintf(out, "Search %q · %d articles\n\n", state.Mode.Query, len(state.Items))
	}

	for i, item := range state.Items {
		fmt.Fprintf(out, "%3d. %s\n", i+1, item.Headline())
		meta := item.SectionName()
		if published := item.PublishedAt(); !published.IsZero() {
			meta += " · " + published.Format("Jan 2, 2006")
		}
		fmt.Fprintf(out, "     %s\n", meta)
		if summary := item.Summary(); summary != "" {
			fmt.Fprintf(out, "     %s\n", summary)
		}
		fmt.Fprintf(out, "     %s\n", item.WebURL())
	}
}
