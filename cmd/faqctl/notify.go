package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"faqbot/internal/config"
	"faqbot/internal/handlers"
)

const notifyTimeout = 30 * time.Second

var errServerDown = errors.New("server not running")

var serverURL string

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Ask the running API server to rebuild its index",
	Long: `Ask the running API server to rebuild its index from the database.
Use it after changing the database outside the API.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		client := &http.Client{Timeout: notifyTimeout}
		return notifyServer(cmd.Context(), client, resolveServerURL(cfg), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(reindexCmd)

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "API server base URL (defaults to FAQBOT_SERVER_URL)")
}

func resolveServerURL(cfg *config.Config) string {
	if serverURL != "" {
		return serverURL
	}
	return cfg.ServerURL
}

// notifyServer asks the API server to rebuild its index so it serves entries
// written by this process. It returns an error wrapping errServerDown when
// nothing listens at baseURL.
func notifyServer(ctx context.Context, client *http.Client, baseURL string, out io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/index/rebuild", nil)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return fmt.Errorf("%w at %s", errServerDown, baseURL)
		}
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp handlers.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("server index rebuild failed with status %d: %s", resp.StatusCode, errResp.Error)
	}

	var indexResp handlers.IndexResponse
	if err := json.NewDecoder(resp.Body).Decode(&indexResp); err != nil {
		return fmt.Errorf("failed to decode server response: %w", err)
	}
	fmt.Fprintf(out, "server index rebuilt: generation %d, %d entries\n", indexResp.Generation, indexResp.CorpusSize)
	return nil
}
