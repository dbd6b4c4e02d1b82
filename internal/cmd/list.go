package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lunarok/pokedex-cli/internal/api"
	"github.com/lunarok/pokedex-cli/internal/catalog"
	"github.com/lunarok/pokedex-cli/internal/config"
)

// ListCmd returns the `pokedex list` command: one load cycle printed as a
// plain table.
func ListCmd() *cobra.Command {
	var limit int
	var partial bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch the catalog and print it",
		RunE: func(c *cobra.Command, _ []string) error {
			loader, usePartial, err := buildLoader(limit, partial, c.Flags().Changed("partial"))
			if err != nil {
				return err
			}
			entries, err := runLoad(loader, usePartial, c.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			printEntries(c.OutOrStdout(), entries)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of entries to fetch (default from config)")
	cmd.Flags().BoolVar(&partial, "partial", false, "keep going when single fetches fail")
	return cmd
}

// SearchCmd returns the `pokedex search` command: load, filter, print.
func SearchCmd() *cobra.Command {
	var limit int
	var partial bool
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fetch the catalog and print entries matching a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			loader, usePartial, err := buildLoader(limit, partial, c.Flags().Changed("partial"))
			if err != nil {
				return err
			}
			entries, err := runLoad(loader, usePartial, c.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			matches := catalog.Filter(entries, args[0])
			if len(matches) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "no matches")
				return nil
			}
			printEntries(c.OutOrStdout(), matches)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of entries to fetch (default from config)")
	cmd.Flags().BoolVar(&partial, "partial", false, "keep going when single fetches fail")
	return cmd
}

func buildLoader(limit int, partial, partialSet bool) (*catalog.Loader, bool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, false, err
	}
	if limit < 1 {
		limit = cfg.Limit
	}
	usePartial := cfg.PartialLoad
	if partialSet {
		usePartial = partial
	}
	client := api.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	return catalog.NewLoader(client, limit), usePartial, nil
}

func runLoad(loader *catalog.Loader, partial bool, errOut io.Writer) ([]catalog.Entry, error) {
	if !partial {
		return loader.Load()
	}
	entries, failed, err := loader.LoadPartial()
	if err != nil {
		return nil, err
	}
	if failed > 0 {
		fmt.Fprintf(errOut, "warning: %d entries failed to load\n", failed)
	}
	return entries, nil
}

func printEntries(out io.Writer, entries []catalog.Entry) {
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %-14s %-18s %5s m %7s kg\n",
			catalog.FormatID(e.ID),
			e.Name,
			strings.Join(e.Types, ","),
			catalog.FormatMetric(e.Height),
			catalog.FormatMetric(e.Weight),
		)
	}
}
