package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"langchecker/internal/cache"
	"langchecker/internal/config"
	"langchecker/internal/filewalker"
	"langchecker/internal/parser"
	"langchecker/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func exportCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the strings and metadata of a lang file as TSV or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, _ := cmd.Flags().GetBool("reference")
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			locale, _ := cmd.Flags().GetString("locale")

			p := parser.New(cache.NewParseCache(), parser.WithShowErrors(cfg.ShowMissingFiles))
			lf := p.Parse(args[0], reference)
			name := filepath.Base(args[0])

			switch format {
			case "json":
				if output == "" {
					return store.WriteJSON(cmd.OutOrStdout(), store.NewFileDump(locale, name, lf))
				}
				return store.ExportJSON(output, locale, name, lf)
			case "tsv":
				if output == "" {
					return store.WriteTSV(cmd.OutOrStdout(), store.Rows(locale, name, lf))
				}
				return store.ExportTSV(output, locale, name, lf)
			default:
				return fmt.Errorf("unknown export format %q (want tsv or json)", format)
			}
		},
	}

	cmd.Flags().Bool("reference", false, "Parse as the reference locale")
	cmd.Flags().String("format", "tsv", "Export format: tsv or json")
	cmd.Flags().String("output", "", "Output file (default stdout)")
	cmd.Flags().String("locale", "", "Locale recorded in the export")

	return cmd
}

func snapshotCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [repo]",
		Short: "Store the reference lang files of a repository in PostgreSQL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := cfg.RepoPath
			if len(args) == 1 {
				repo = args[0]
			}
			if v, _ := cmd.Flags().GetString("reference-locale"); v != "" {
				cfg.ReferenceLocale = v
			}

			ctx, cancel := setupContext()
			defer cancel()
			return runSnapshot(ctx, cfg, repo)
		},
	}

	cmd.Flags().String("reference-locale", "", "Reference locale directory (default from REFERENCE_LOCALE)")

	return cmd
}

func runSnapshot(ctx context.Context, cfg *config.Config, repo string) error {
	entries, err := filewalker.NewWalker().Walk(repo)
	if err != nil {
		return fmt.Errorf("walk repository: %w", err)
	}
	references := filewalker.ForLocale(entries, cfg.ReferenceLocale)
	if len(references) == 0 {
		return fmt.Errorf("no lang files for reference locale %q", cfg.ReferenceLocale)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect PostgreSQL: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping PostgreSQL: %w", err)
	}
	log.Info().Msg("Connected to PostgreSQL")

	rs := store.NewReferenceStore(pool)
	if err := rs.EnsureSchema(ctx); err != nil {
		return err
	}

	p := parser.New(cache.NewParseCache(), parser.WithShowErrors(cfg.ShowMissingFiles))

	total := 0
	for _, e := range references {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := rs.Upsert(ctx, e.Locale, e.Name, p.Parse(e.Path, true))
		if err != nil {
			return fmt.Errorf("store %s: %w", e.Name, err)
		}
		total += n
	}

	log.Info().
		Str("locale", cfg.ReferenceLocale).
		Int("files", len(references)).
		Int("strings", total).
		Msg("Snapshot complete")
	return nil
}
