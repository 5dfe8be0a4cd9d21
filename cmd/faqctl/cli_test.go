package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"faqbot/internal/matcher"
	"faqbot/internal/service"
	"faqbot/internal/service/mocks"
	"faqbot/internal/storage"
)

func TestCommands_Registered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"seed", "list", "ask", "reindex"} {
		if !names[want] {
			t.Errorf("command %q not registered", want)
		}
	}

	if f := seedCmd.Flags().Lookup("file"); f == nil || f.Shorthand != "f" {
		t.Error("seed --file flag missing")
	}
	if f := askCmd.Flags().Lookup("debug"); f == nil || f.DefValue != "false" {
		t.Error("ask --debug flag missing")
	}
	if f := rootCmd.PersistentFlags().Lookup("server"); f == nil {
		t.Error("--server flag missing")
	}
}

func TestRunSeed(t *testing.T) {
	entries, err := storage.DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed() error = %v", err)
	}

	t.Run("empty corpus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		faqs := mocks.NewMockFAQService(ctrl)

		faqs.EXPECT().List(gomock.Any()).Return([]storage.FAQRecord{}, nil)
		var next int64
		faqs.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in service.FAQInput) (*storage.FAQRecord, error) {
				if in.Tags == nil || *in.Tags == "" {
					t.Errorf("seed entry %q should carry tags", in.Question)
				}
				next++
				return &storage.FAQRecord{ID: next, Question: in.Question, Answer: in.Answer}, nil
			}).
			Times(len(entries))

		var out bytes.Buffer
		seeded, err := runSeed(context.Background(), faqs, entries, false, &out)
		if err != nil {
			t.Fatalf("runSeed() error = %v", err)
		}
		if seeded != 5 || !strings.Contains(out.String(), "5 entries seeded") {
			t.Errorf("seeded = %d, output = %q", seeded, out.String())
		}
	})

	t.Run("existing corpus skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		faqs := mocks.NewMockFAQService(ctrl)

		faqs.EXPECT().List(gomock.Any()).Return([]storage.FAQRecord{{ID: 1}}, nil)

		var out bytes.Buffer
		seeded, err := runSeed(context.Background(), faqs, entries, false, &out)
		if err != nil {
			t.Fatalf("runSeed() error = %v", err)
		}
		if seeded != 0 || !strings.Contains(out.String(), "nothing seeded") {
			t.Errorf("seeded = %d, output = %q", seeded, out.String())
		}
	})

	t.Run("create failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		faqs := mocks.NewMockFAQService(ctrl)

		faqs.EXPECT().List(gomock.Any()).Return([]storage.FAQRecord{}, nil)
		faqs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, service.ErrIndexRebuild)

		_, err := runSeed(context.Background(), faqs, entries, false, &bytes.Buffer{})
		if !errors.Is(err, service.ErrIndexRebuild) {
			t.Fatalf("runSeed() error = %v, want ErrIndexRebuild", err)
		}
	})
}

func TestLoadSeedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := "- question: \"¿Tienen app?\"\n  answer: \"Sí, iOS y Android.\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	entries, err := loadSeedEntries(path)
	if err != nil {
		t.Fatalf("loadSeedEntries() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Question != "¿Tienen app?" {
		t.Errorf("entries = %+v", entries)
	}

	if _, err := loadSeedEntries(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	defaults, err := loadSeedEntries("")
	if err != nil || len(defaults) != 5 {
		t.Errorf("default seed = %d entries, err %v", len(defaults), err)
	}
}

func TestRunList(t *testing.T) {
	ctrl := gomock.NewController(t)
	faqs := mocks.NewMockFAQService(ctrl)

	tags := "precios"
	records := []storage.FAQRecord{{ID: 1, Question: "¿Precios?", Tags: &tags}, {ID: 2, Question: "¿Facturas?"}}
	faqs.EXPECT().List(gomock.Any()).Return(records, nil).Times(2)

	var out bytes.Buffer
	if err := runList(context.Background(), faqs, false, &out); err != nil {
		t.Fatalf("runList() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[1], "precios") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := runList(context.Background(), faqs, true, &out); err != nil {
		t.Fatalf("runList() error = %v", err)
	}
	var decoded []storage.FAQRecord
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil || len(decoded) != 2 {
		t.Errorf("json output = %q, err %v", out.String(), err)
	}
}

func TestRunAsk(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockChatService(ctrl)

	chat.EXPECT().
		ProcessChat(gomock.Any(), service.ChatRequest{Message: "precios planes", Debug: true}).
		Return(service.ChatResponse{
			Answer:      "Básico $9",
			Intent:      matcher.IntentFAQSuggest,
			Confidence:  0.61,
			Suggestions: []string{"¿Qué planes tienen y precios?"},
			Debug: &matcher.DebugInfo{
				Generation:      1,
				CorpusSize:      5,
				DistanceBackend: matcher.BackendLevenshtein,
				Candidates:      []matcher.Candidate{{ID: 4, LexicalScore: 0.6, FuzzyScore: 0.65, FinalScore: 0.61, Question: "que planes tienen y precios"}},
			},
		}, nil)

	var out bytes.Buffer
	if err := runAsk(context.Background(), chat, "precios planes", true, false, &out); err != nil {
		t.Fatalf("runAsk() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"[faq_suggest 0.610] Básico $9", "- ¿Qué planes tienen y precios?", "#4 lex=0.600"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}
