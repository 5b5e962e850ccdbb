package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planarity/store"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}

	cmd.AddCommand(c.cacheInfoCommand())
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// openCache opens the configured cache directory; ok is false when it does
// not exist yet.
func (c *CLI) openCache(cmd *cobra.Command) (s *store.BadgerStore, ok bool, err error) {
	if _, err = os.Stat(c.cfg.Cache.Dir); errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	s, err = store.OpenBadger(store.Config{Dir: c.cfg.Cache.Dir, Logger: loggerFromContext(cmd.Context())})
	if err != nil {
		return nil, false, err
	}

	return s, true, nil
}

func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the number of cached results",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := printer{w: cmd.OutOrStdout()}
			s, ok, err := c.openCache(cmd)
			if err != nil {
				return err
			}
			if !ok {
				p.info("Cache is empty")
				return nil
			}
			defer s.Close()

			n, err := s.Len(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), StyleTitle.Render("Cache"))
			p.detail("Directory: %s", c.cfg.Cache.Dir)
			p.detail("Enabled:   %t", c.cfg.Cache.Enabled)
			p.detail("Results:   %d", n)

			return nil
		},
	}
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached results",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := printer{w: cmd.OutOrStdout()}
			s, ok, err := c.openCache(cmd)
			if err != nil {
				return err
			}
			if !ok {
				p.info("Cache is empty")
				return nil
			}
			defer s.Close()

			n, err := s.Len(cmd.Context())
			if err != nil {
				return err
			}
			if err = s.Clear(cmd.Context()); err != nil {
				return err
			}
			p.success("Cleared %d cached results", n)
			p.detail("Directory: %s", c.cfg.Cache.Dir)

			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.cfg.Cache.Dir)
			return nil
		},
	}
}
