package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/artcache/internal/app"
	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Remove stale temp files and finish pending deletions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withStack(cmd, app.OpenOptions{}, func(s *app.Stack) error {
				renderReport(cmd.OutOrStdout(), "sweep", s.Sweep(cmd.Context()))
				return nil
			})
		},
	}
}

func (c *CLI) newWipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wipe",
		Short: "Remove every generated file from the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withStack(cmd, app.OpenOptions{}, func(s *app.Stack) error {
				report, err := s.Wipe(cmd.Context())
				renderReport(cmd.OutOrStdout(), "wipe", report)
				return err
			})
		},
	}
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <module>",
		Short: "Remove a compiled module and its related files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStack(cmd, app.OpenOptions{}, func(s *app.Stack) error {
				report, err := s.Remove(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				renderReport(cmd.OutOrStdout(), "remove "+args[0], report)
				return nil
			})
		},
	}
}

func (c *CLI) newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Look a key up and write its payload to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStack(cmd, app.OpenOptions{Watch: true}, func(s *app.Stack) error {
				a, ok, err := s.Get(args[0])
				if err != nil {
					return err
				}
				if !ok {
					return zerr.With(domain.ErrCacheMiss, "key", args[0])
				}
				_, err = cmd.OutOrStdout().Write(a.Payload)
				return err
			})
		},
	}
	return cmd
}

func (c *CLI) newPutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "put <key> [file]",
		Short: "Store a payload under key, read from file or stdin",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := artifactFromFlags(cmd)
			if err != nil {
				return err
			}
			a.Payload, err = readPayload(cmd, args[1:])
			if err != nil {
				return err
			}
			return c.withStack(cmd, app.OpenOptions{}, func(s *app.Stack) error {
				return s.Put(args[0], a)
			})
		},
	}
	cmd.Flags().String("category", domain.CategoryGeneric.String(), "Artifact category (generic, page, indirect-page, code, resource)")
	cmd.Flags().String("virtual-path", "", "Source path checked for freshness")
	cmd.Flags().String("module", "", "Name of the compiled module bound to the artifact")
	cmd.Flags().StringSlice("input", nil, "Input the artifact was built from (repeatable)")
	cmd.Flags().Bool("memory-only", false, "Do not write a preservation file")
	return cmd
}

func artifactFromFlags(cmd *cobra.Command) (*domain.Artifact, error) {
	name, _ := cmd.Flags().GetString("category")
	category, ok := domain.ParseCategory(name)
	if !ok {
		return nil, zerr.With(domain.ErrInvalidCategory, "category", name)
	}
	virtualPath, _ := cmd.Flags().GetString("virtual-path")
	module, _ := cmd.Flags().GetString("module")
	inputs, _ := cmd.Flags().GetStringSlice("input")
	memoryOnly, _ := cmd.Flags().GetBool("memory-only")

	a := &domain.Artifact{
		VirtualPath:   virtualPath,
		Category:      category,
		CacheToMemory: true,
		CacheToDisk:   !memoryOnly,
		Inputs:        inputs,
	}
	if module != "" {
		a.Module = &domain.Module{Name: module, Path: module + domain.ModuleExt}
		a.IsUnloadable = true
	}
	return a, nil
}

func readPayload(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read payload"), "path", args[0])
	}
	return data, nil
}

func (c *CLI) newFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [hash]",
		Short: "Show the saved and current configuration fingerprint, or save hash",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var set string
			if len(args) == 1 {
				set = args[0]
			}
			return c.withStack(cmd, app.OpenOptions{}, func(s *app.Stack) error {
				status, err := s.Fingerprint(set)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				stored := status.Stored
				if stored == "" {
					stored = "(none)"
				}
				_, _ = fmt.Fprintf(w, "stored:  %s\n", stored)
				_, _ = fmt.Fprintf(w, "current: %s\n", status.Current)
				if status.Changed() {
					_, _ = fmt.Fprintln(w, "configuration changed, the cache will be wiped on the next serve")
				}
				return nil
			})
		},
	}
}
