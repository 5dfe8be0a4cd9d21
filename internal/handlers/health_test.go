package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"faqbot/internal/matcher"
	"faqbot/internal/storage"
	"faqbot/internal/vectorstore"
	vsmocks "faqbot/internal/vectorstore/mocks"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

type staticSource []storage.FAQRecord

func (s staticSource) ListAll(context.Context) ([]storage.FAQRecord, error) { return s, nil }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	built := matcher.NewManager(staticSource{{ID: 1, Question: "¿Precios?"}, {ID: 2, Question: "¿Facturas?"}})
	if err := built.Rebuild(context.Background()); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	unbuilt := matcher.NewManager(staticSource{})

	tests := []struct {
		name       string
		db         Pinger
		index      IndexState
		withStore  bool
		storeSetup func(*vsmocks.MockIndexStore)
		wantStatus int
		wantHealth string
		wantBuilt  bool
		wantChecks map[string]string
		wantPoints int
	}{
		{
			name:       "healthy with built index",
			db:         stubPinger{},
			index:      built,
			wantStatus: http.StatusOK,
			wantHealth: "healthy",
			wantBuilt:  true,
			wantChecks: map[string]string{"database": "ok", "index": "ok"},
		},
		{
			name:       "index not built yet",
			db:         stubPinger{},
			index:      unbuilt,
			wantStatus: http.StatusOK,
			wantHealth: "healthy",
			wantChecks: map[string]string{"database": "ok", "index": "not_built"},
		},
		{
			name:       "database down",
			db:         stubPinger{err: errors.New("closed")},
			index:      built,
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: "unhealthy",
			wantBuilt:  true,
			wantChecks: map[string]string{"database": "error", "index": "ok"},
		},
		{
			name:      "vector store ok",
			db:        stubPinger{},
			index:     built,
			withStore: true,
			storeSetup: func(m *vsmocks.MockIndexStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "faq_tfidf").Return(true, nil)
				m.EXPECT().GetCollectionInfo(gomock.Any(), "faq_tfidf").
					Return(&vectorstore.CollectionInfo{PointsCount: 2, Status: "Green"}, nil)
			},
			wantStatus: http.StatusOK,
			wantHealth: "healthy",
			wantBuilt:  true,
			wantChecks: map[string]string{"database": "ok", "index": "ok", "vector_store": "ok"},
			wantPoints: 2,
		},
		{
			name:      "vector store behind the index degrades",
			db:        stubPinger{},
			index:     built,
			withStore: true,
			storeSetup: func(m *vsmocks.MockIndexStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "faq_tfidf").Return(true, nil)
				m.EXPECT().GetCollectionInfo(gomock.Any(), "faq_tfidf").
					Return(&vectorstore.CollectionInfo{PointsCount: 1, Status: "Green"}, nil)
			},
			wantStatus: http.StatusOK,
			wantHealth: "degraded",
			wantBuilt:  true,
			wantChecks: map[string]string{"database": "ok", "index": "ok", "vector_store": "out_of_sync"},
			wantPoints: 1,
		},
		{
			name:      "vector store collection missing",
			db:        stubPinger{},
			index:     unbuilt,
			withStore: true,
			storeSetup: func(m *vsmocks.MockIndexStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "faq_tfidf").Return(false, nil)
			},
			wantStatus: http.StatusOK,
			wantHealth: "degraded",
			wantChecks: map[string]string{"database": "ok", "index": "not_built", "vector_store": "missing"},
		},
		{
			name:      "vector store unreachable degrades",
			db:        stubPinger{},
			index:     built,
			withStore: true,
			storeSetup: func(m *vsmocks.MockIndexStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "faq_tfidf").Return(false, errors.New("connection refused"))
			},
			wantStatus: http.StatusOK,
			wantHealth: "degraded",
			wantBuilt:  true,
			wantChecks: map[string]string{"database": "ok", "index": "ok", "vector_store": "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			var store vectorstore.IndexStore
			if tt.withStore {
				m := vsmocks.NewMockIndexStore(ctrl)
				tt.storeSetup(m)
				store = m
			}

			handler := NewHealthHandler(tt.db, tt.index, store, "faq_tfidf")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Status != tt.wantHealth {
				t.Errorf("Status = %q, want %q", resp.Status, tt.wantHealth)
			}
			if resp.Index.Built != tt.wantBuilt {
				t.Errorf("Index.Built = %v, want %v", resp.Index.Built, tt.wantBuilt)
			}
			if tt.wantBuilt && resp.Index.CorpusSize != 2 {
				t.Errorf("Index.CorpusSize = %d, want 2", resp.Index.CorpusSize)
			}
			for k, v := range tt.wantChecks {
				if resp.Checks[k] != v {
					t.Errorf("Checks[%s] = %q, want %q", k, resp.Checks[k], v)
				}
			}
			if len(resp.Checks) != len(tt.wantChecks) {
				t.Errorf("Checks = %v, want %v", resp.Checks, tt.wantChecks)
			}
			if tt.withStore != (resp.VectorStore != nil) {
				t.Fatalf("VectorStore = %+v, want present=%v", resp.VectorStore, tt.withStore)
			}
			if resp.VectorStore != nil {
				if resp.VectorStore.PointsCount != tt.wantPoints {
					t.Errorf("VectorStore.PointsCount = %d, want %d", resp.VectorStore.PointsCount, tt.wantPoints)
				}
				if tt.wantBuilt && resp.VectorStore.ExpectedPoints != 2 {
					t.Errorf("VectorStore.ExpectedPoints = %d, want 2", resp.VectorStore.ExpectedPoints)
				}
			}
		})
	}
}

func TestHealthHandler_MethodNotAllowed(t *testing.T) {
	handler := NewHealthHandler(stubPinger{}, matcher.NewManager(staticSource{}), nil, "")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/health", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}
