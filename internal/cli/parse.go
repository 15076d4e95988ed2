package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"langchecker/internal/cache"
	"langchecker/internal/config"
	"langchecker/internal/parser"
	"langchecker/internal/store"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func parseCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the content of a lang file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, _ := cmd.Flags().GetBool("reference")
			asJSON, _ := cmd.Flags().GetBool("json")

			p := parser.New(cache.NewParseCache(), parser.WithShowErrors(cfg.ShowMissingFiles))
			lf := p.Parse(args[0], reference)

			if asJSON {
				return store.WriteJSON(cmd.OutOrStdout(), store.NewFileDump("", filepath.Base(args[0]), lf))
			}
			printLangFile(cmd.OutOrStdout(), args[0], lf)
			return nil
		},
	}

	cmd.Flags().Bool("reference", false, "Parse as the reference locale (comments, tags, length limits, duplicates)")
	cmd.Flags().Bool("json", false, "Print as JSON")

	return cmd
}

func printLangFile(w io.Writer, path string, lf *parser.LangFile) {
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	yellow := color.New(color.FgYellow)

	bold.Fprintln(w, path)
	fmt.Fprintf(w, "  activated:   %t\n", lf.Activated)
	if len(lf.Description) > 0 {
		fmt.Fprintf(w, "  description: %s\n", strings.Join(lf.Description, " / "))
	}
	if lf.URL != "" {
		fmt.Fprintf(w, "  url:         %s\n", lf.URL)
	}
	if len(lf.Tags) > 0 {
		fmt.Fprintf(w, "  tags:        %s\n", strings.Join(lf.Tags, ", "))
	}
	fmt.Fprintf(w, "  strings:     %d\n", lf.Strings.Len())
	if len(lf.Duplicates) > 0 {
		yellow.Fprintf(w, "  duplicates:  %s\n", strings.Join(lf.Duplicates, ", "))
	}

	for _, ref := range lf.Strings.Keys() {
		fmt.Fprintln(w)
		for _, c := range lf.Comments[ref] {
			dim.Fprintf(w, "  # %s\n", c)
		}
		if tag, ok := lf.TagBindings[ref]; ok {
			dim.Fprintf(w, "  [tag %s]\n", tag)
		}
		if n, ok := lf.MaxLengths[ref]; ok {
			dim.Fprintf(w, "  [max %d]\n", n)
		}
		fmt.Fprintf(w, "  ;%s\n", ref)

		tr, _ := lf.Strings.Lookup(ref)
		if tr.Translated {
			fmt.Fprintf(w, "  %s\n", tr.Text)
		} else {
			yellow.Fprintln(w, "  (untranslated)")
		}
	}
}
