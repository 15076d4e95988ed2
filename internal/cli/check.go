package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"langchecker/internal/cache"
	"langchecker/internal/config"
	"langchecker/internal/filewalker"
	"langchecker/internal/langcheck"
	"langchecker/internal/parser"
	"langchecker/internal/textutil"
	"langchecker/internal/worker"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errIncomplete = errors.New("some locales are incomplete")

// checkJob pairs one locale file with its reference file.
type checkJob struct {
	Locale        string
	Name          string
	ReferencePath string
	Path          string
}

func checkCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [repo]",
		Short: "Compare every locale of a repository with the reference locale",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := cfg.RepoPath
			if len(args) == 1 {
				repo = args[0]
			}
			if v, _ := cmd.Flags().GetString("reference-locale"); v != "" {
				cfg.ReferenceLocale = v
			}
			if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
				cfg.WorkerCount = v
			}
			locales, _ := cmd.Flags().GetStringSlice("locale")
			strict, _ := cmd.Flags().GetBool("strict")

			ctx, cancel := setupContext()
			defer cancel()

			reports, err := runCheck(ctx, cfg, repo, locales)
			if err != nil {
				return err
			}

			printReports(cmd.OutOrStdout(), reports)

			if strict && langcheck.Summarize(reports).Complete < len(reports) {
				return errIncomplete
			}
			return nil
		},
	}

	cmd.Flags().String("reference-locale", "", "Reference locale directory (default from REFERENCE_LOCALE)")
	cmd.Flags().StringSlice("locale", nil, "Only check these locales")
	cmd.Flags().Int("workers", 0, "Number of files parsed concurrently (default from WORKER_COUNT)")
	cmd.Flags().Bool("strict", false, "Exit with an error when a locale is incomplete")

	return cmd
}

// runCheck compares each reference file with the same file in every other
// locale. A locale missing a file is reported with every string missing.
func runCheck(ctx context.Context, cfg *config.Config, repo string, locales []string) ([]langcheck.Report, error) {
	root, err := filepath.Abs(repo)
	if err != nil {
		return nil, fmt.Errorf("resolve repository path: %w", err)
	}

	entries, err := filewalker.NewWalker().Walk(root)
	if err != nil {
		return nil, fmt.Errorf("walk repository: %w", err)
	}

	references := filewalker.ForLocale(entries, cfg.ReferenceLocale)
	if len(references) == 0 {
		return nil, fmt.Errorf("no lang files for reference locale %q in %s", cfg.ReferenceLocale, root)
	}

	if len(locales) == 0 {
		locales = filewalker.Locales(entries)
	}
	locales = slices.DeleteFunc(slices.Clone(locales), func(l string) bool {
		return l == cfg.ReferenceLocale
	})

	var jobs []checkJob
	for _, locale := range locales {
		for _, ref := range references {
			jobs = append(jobs, checkJob{
				Locale:        locale,
				Name:          ref.Name,
				ReferencePath: ref.Path,
				Path:          filewalker.PathFor(root, locale, ref.Name),
			})
		}
	}

	log.Info().
		Str("reference", cfg.ReferenceLocale).
		Int("locales", len(locales)).
		Int("files", len(references)).
		Msg("Starting check")

	// One cache for the whole run: each reference file is read once no
	// matter how many locales are compared with it.
	c := cache.NewParseCache()
	p := parser.New(c, parser.WithShowErrors(cfg.ShowMissingFiles))

	pool := worker.NewPool[checkJob, langcheck.Report](cfg.WorkerCount, func(ctx context.Context, job checkJob) (langcheck.Report, error) {
		reference := p.Parse(job.ReferencePath, true)
		r := langcheck.Compare(reference, p.Parse(job.Path, false))
		r.Locale = job.Locale
		r.File = job.Name
		return r, nil
	})

	tasks := pool.Execute(ctx, jobs)

	reports := make([]langcheck.Report, 0, len(tasks))
	for _, task := range tasks {
		if task.Err != nil {
			return nil, fmt.Errorf("check %s/%s: %w", task.Input.Locale, task.Input.Name, task.Err)
		}
		reports = append(reports, task.Result)
	}

	log.Info().Int("reports", len(reports)).Int("cached_references", c.Len()).Msg("Check complete")
	return reports, nil
}

func printReports(w io.Writer, reports []langcheck.Report) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	for _, r := range reports {
		status := green.Sprint("complete")
		if !r.Complete() {
			status = red.Sprint("incomplete")
		}
		active := ""
		if r.Activated {
			active = " (active)"
		}
		fmt.Fprintf(w, "%s %s%s\n", bold.Sprintf("%s/%s", r.Locale, r.File), status, active)

		printList(w, red, "missing", r.Missing)
		printList(w, yellow, "untranslated", r.Untranslated)
		printList(w, yellow, "obsolete", r.Obsolete)
		printList(w, red, "variables differ", r.PlaceholderMismatch)
		printList(w, yellow, "duplicated in reference", r.Duplicates)
		for _, v := range r.TooLong {
			red.Fprintf(w, "  too long (%d > %d): %s\n", v.Length, v.Limit, textutil.Truncate(v.Translation, 60))
		}
	}

	s := langcheck.Summarize(reports)
	fmt.Fprintf(w, "\n%d/%d files complete, %d missing, %d untranslated, %d obsolete, %d errors\n",
		s.Complete, s.Files, s.Missing, s.Untranslated, s.Obsolete, s.Errors)
}

func printList(w io.Writer, c *color.Color, label string, items []string) {
	if len(items) == 0 {
		return
	}
	c.Fprintf(w, "  %s (%d):\n", label, len(items))
	for _, item := range items {
		fmt.Fprintf(w, "    %s\n", textutil.Truncate(strings.ReplaceAll(item, "\n", " "), 80))
	}
}
