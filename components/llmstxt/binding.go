// components/llmstxt/binding.go
//
// Route Binding for the llms.txt endpoint.
//
// Context
// -------
// The binding owns one exact path, "/" + endpoint, registered in the
// module dispatch table while the component is active.  A match is
// terminal: the handler writes the whole response and nothing else in the
// chain runs.
//
// Notes
// -----
//   - GET and HEAD only.  Other verbs get 405 with an Allow header.
//   - Query strings are ignored.
//   - A collaborator failure answers 500 and is logged.  Bad or missing
//     settings never fail because every field has a default.
package llmstxt

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/yanizio/adept-llmstxt/internal/metrics"
	"github.com/yanizio/adept-llmstxt/internal/requestinfo"
)

// DefaultEndpoint is served at the site root.
const DefaultEndpoint = "llms.txt"

// DocumentSource builds the document.  *llmstxt.Service satisfies it.
type DocumentSource interface {
	Document(ctx context.Context) (string, error)
}

// Binding maps the endpoint path to the document.
type Binding struct {
	path string
	docs DocumentSource
}

// NewBinding binds endpoint (without leading slash) to docs.
func NewBinding(endpoint string, docs DocumentSource) *Binding {
	endpoint = strings.Trim(endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Binding{path: "/" + endpoint, docs: docs}
}

// Path returns the absolute request path served.
func (b *Binding) Path() string { return b.path }

// Match reports whether path is exactly the endpoint path.
func (b *Binding) Match(path string) bool { return path == b.path }

// ServeHTTP writes the document as text/plain.
func (b *Binding) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	doc, err := b.docs.Document(r.Context())
	if err != nil {
		metrics.LLMSTxtErrorsTotal.Inc()
		zap.L().Error("llms.txt generation failed", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	info := requestinfo.FromContext(r.Context())
	if info == nil {
		parsed := requestinfo.Parse(r.UserAgent())
		info = &parsed
	}
	metrics.LLMSTxtRequestsTotal.WithLabelValues(info.Agent()).Inc()
	if info.Crawler != "" {
		zap.L().Debug("llms.txt served to crawler", zap.String("crawler", info.Crawler))
	}

	h := w.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(doc))
}
