package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"faqbot/internal/contextutil"
	"faqbot/internal/service"
)

// FAQPageHandler serves a single FAQ entry as an HTML page, rendering the
// answer as markdown.
type FAQPageHandler struct {
	faqService service.FAQService
	markdown   goldmark.Markdown
	template   *template.Template
}

// faqPageData holds template data for rendered FAQ pages.
type faqPageData struct {
	ID       int64
	Question string
	Tags     string
	Updated  string
	Content  template.HTML
}

var faqPageTemplate = template.Must(template.New("faq").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Question}}</title>
  <style>
    :root {
      color-scheme: dark;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 760px;
      line-height: 1.7;
      background: #050b18;
      color: #e4ecff;
    }
    header {
      margin-bottom: 2rem;
      border-bottom: 1px solid rgba(148, 163, 184, 0.2);
      padding-bottom: 1.5rem;
    }
    h1 {
      margin-top: 0;
      color: #fff;
      font-size: 1.75rem;
    }
    article {
      background: rgba(12, 19, 35, 0.85);
      border: 1px solid rgba(99, 102, 241, 0.2);
      border-radius: 16px;
      padding: 2rem;
    }
    code {
      font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
      background: rgba(99, 102, 241, 0.18);
      padding: 2px 5px;
      border-radius: 6px;
    }
    a {
      color: #60a5fa;
    }
    .meta {
      color: #94a3b8;
      font-size: 0.95rem;
      margin-top: 0.5rem;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Question}}</h1>
    <p class="meta">#{{.ID}}{{if .Tags}} &middot; {{.Tags}}{{end}} &middot; {{.Updated}}</p>
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

// NewFAQPageHandler creates a new FAQPageHandler.
func NewFAQPageHandler(faqService service.FAQService) *FAQPageHandler {
	return &FAQPageHandler{
		faqService: faqService,
		// Raw HTML in answers is escaped: answers are user-editable.
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: faqPageTemplate,
	}
}

// ServeHTTP renders the requested FAQ entry as HTML.
func (h *FAQPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid FAQ id", http.StatusBadRequest)
		return
	}

	faq, err := h.faqService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "FAQ not found", http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "failed to load FAQ", "faq_id", id, "error", err)
		http.Error(w, "failed to load FAQ", http.StatusInternalServerError)
		return
	}

	htmlContent, err := h.renderMarkdown([]byte(faq.Answer))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "faq_id", id, "error", err)
		http.Error(w, "failed to render FAQ", http.StatusInternalServerError)
		return
	}

	pageData := faqPageData{
		ID:       faq.ID,
		Question: faq.Question,
		Updated:  faq.UpdatedAt.UTC().Format("2006-01-02 15:04 MST"),
		Content:  template.HTML(htmlContent),
	}
	if faq.Tags != nil {
		pageData.Tags = *faq.Tags
	}

	var buf bytes.Buffer
	if err := h.template.Execute(&buf, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute FAQ template", "faq_id", id, "error", err)
		http.Error(w, "failed to render FAQ", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (h *FAQPageHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.markdown.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
