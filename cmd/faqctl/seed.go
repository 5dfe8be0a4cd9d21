package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"faqbot/internal/service"
	"faqbot/internal/storage"
)

var (
	seedFile  string
	seedForce bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert starter FAQ entries",
	Long: `Insert FAQ entries from a YAML file (--file, or SEED_FILE) or the
built-in starter set. Seeding is skipped when the corpus already has
entries unless --force is given. Afterwards the running API server
(--server, or FAQBOT_SERVER_URL) is asked to rebuild its index.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, cfg, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		path := seedFile
		if path == "" {
			path = cfg.SeedFile
		}
		entries, err := loadSeedEntries(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		seeded, seedErr := runSeed(ctx, a.FAQs, entries, seedForce, out)
		if seeded == 0 {
			return seedErr
		}

		// the rebuilds above only refreshed this process's index
		client := &http.Client{Timeout: notifyTimeout}
		err = notifyServer(ctx, client, resolveServerURL(cfg), out)
		if errors.Is(err, errServerDown) {
			fmt.Fprintf(out, "%v; it will load the new entries on startup\n", err)
			err = nil
		}
		return errors.Join(seedErr, err)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file (defaults to SEED_FILE, then the built-in set)")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Insert even if the corpus is not empty")
}

func loadSeedEntries(path string) ([]storage.SeedEntry, error) {
	if path == "" {
		return storage.DefaultSeed()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return storage.LoadSeed(f)
}

// runSeed creates the entries and returns how many were written.
func runSeed(ctx context.Context, faqs service.FAQService, entries []storage.SeedEntry, force bool, out io.Writer) (int, error) {
	existing, err := faqs.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 && !force {
		fmt.Fprintf(out, "corpus already has %d entries, nothing seeded (use --force)\n", len(existing))
		return 0, nil
	}

	seeded := 0
	for _, e := range entries {
		in := service.FAQInput{Question: e.Question, Answer: e.Answer}
		if e.Tags != "" {
			tags := e.Tags
			in.Tags = &tags
		}
		faq, err := faqs.Create(ctx, in)
		if err != nil {
			return seeded, fmt.Errorf("failed to seed %q: %w", e.Question, err)
		}
		seeded++
		fmt.Fprintf(out, "seeded #%d %s\n", faq.ID, faq.Question)
	}
	fmt.Fprintf(out, "%d entries seeded\n", seeded)
	return seeded, nil
}
