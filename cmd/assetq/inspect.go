package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tsawler/assetquality"
	"github.com/tsawler/assetquality/locate"
	"github.com/tsawler/assetquality/numeric"
	"github.com/tsawler/assetquality/reader"
	"github.com/tsawler/assetquality/tables"
)

func inspectCmd() *cobra.Command {
	var profiles string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show how a single document would be extracted",
		Long: `inspect opens one disclosure PDF and reports what the pipeline sees:
whether the document has a text layer, which pages score as candidates,
and the rows the winning strategy produces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()

			doc, err := reader.Open(path)
			if err != nil {
				return err
			}
			defer doc.Close()

			fmt.Fprintf(out, "pages: %d\n", doc.PageCount())
			if doc.ImageOnly() {
				fmt.Fprintln(out, "text layer: none (routed to OCR)")
			} else {
				fmt.Fprintln(out, "text layer: present")
				printCandidates(cmd, doc)
			}

			job := assetquality.Open(path)
			if profiles != "" {
				job = job.ProfilesFile(profiles)
			}
			res := job.Extract(cmd.Context())

			fmt.Fprintf(out, "status: %s", res.Status)
			if res.Strategy != "" {
				fmt.Fprintf(out, " (strategy %s)", res.Strategy)
			}
			fmt.Fprintln(out)
			if res.Diagnostic != "" {
				fmt.Fprintf(out, "diagnostic: %s\n", res.Diagnostic)
			}

			if len(res.Rows) > 0 {
				w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
				fmt.Fprintln(w, "subject\toverdue\ttotal\tratio")
				for _, row := range res.Rows {
					fmt.Fprintf(w, "%s\t%s\t%s\t%.2f%%\n",
						row.Subject,
						numeric.FormatAmount(row.OverdueAmount),
						numeric.FormatAmount(row.TotalLoan),
						row.OverdueRatio)
				}
				w.Flush()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profiles, "profiles", "", "YAML file overlaying the issuer profiles")
	return cmd
}

func printCandidates(cmd *cobra.Command, doc *reader.Document) {
	pages := doc.Pages()
	builder := tables.NewBuilder()
	grids := make(map[int]bool)
	hasTable := func(i int) bool {
		if v, ok := grids[i]; ok {
			return v
		}
		v := builder.Build(pages[i].Chars) != nil
		grids[i] = v
		return v
	}

	candidates := locate.Scan(pages, hasTable)
	if len(candidates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "candidates: none")
		return
	}
	for _, c := range candidates {
		fmt.Fprintf(cmd.OutOrStdout(), "candidate page %d: score %d grid=%v\n",
			c.Index+1, c.Score, c.HasTable)
	}
}
