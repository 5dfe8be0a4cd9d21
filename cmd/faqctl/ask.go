package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"faqbot/internal/service"
)

var (
	askDebug bool
	askJSON  bool
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Answer a message against the FAQ corpus",
	Long: `Answer a message the same way POST /api/chat/query does.

Examples:
  faqctl ask "¿Cómo restablezco mi contraseña?"
  faqctl ask --debug precios planes`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, _, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		return runAsk(ctx, a.Chat, strings.Join(args, " "), askDebug, askJSON, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().BoolVarP(&askDebug, "debug", "d", false, "Show scored candidates")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "Output as JSON")
}

func runAsk(ctx context.Context, chat service.ChatService, message string, debug, asJSON bool, out io.Writer) error {
	resp, err := chat.ProcessChat(ctx, service.ChatRequest{Message: message, Debug: debug})
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	fmt.Fprintf(out, "[%s %.3f] %s\n", resp.Intent, resp.Confidence, resp.Answer)
	for _, s := range resp.Suggestions {
		fmt.Fprintf(out, "  - %s\n", s)
	}
	if resp.Debug != nil {
		fmt.Fprintf(out, "generation %d, %d entries, %s distance\n",
			resp.Debug.Generation, resp.Debug.CorpusSize, resp.Debug.DistanceBackend)
		for _, c := range resp.Debug.Candidates {
			fmt.Fprintf(out, "  #%d lex=%.3f fuzzy=%.3f final=%.3f %s\n",
				c.ID, c.LexicalScore, c.FuzzyScore, c.FinalScore, c.Question)
		}
	}
	return nil
}
