package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"faqbot/internal/service"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List FAQ entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, _, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		return runList(ctx, a.FAQs, listJSON, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(ctx context.Context, faqs service.FAQService, asJSON bool, out io.Writer) error {
	entries, err := faqs.List(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tQUESTION\tTAGS")
	for _, e := range entries {
		tags := ""
		if e.Tags != nil {
			tags = *e.Tags
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", e.ID, e.Question, tags)
	}
	return tw.Flush()
}
