// internal/sitemap/handler.go
//
// HTTP surface of the Registry.
//
// Workflow
// --------
//  1. Routes mounts the index and the per-provider page pattern on a chi
//     router.
//  2. The index resolves the site root URL through BaseURLFunc on every
//     request so its <loc> values are absolute.  Provider pages carry
//     whatever Loc the provider returns.
//  3. Documents are buffered before writing so an encoding failure still
//     answers 500 instead of a truncated body.
package sitemap

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/adept-llmstxt/internal/metrics"
	"github.com/yanizio/adept-llmstxt/internal/routing"
)

// DefaultIndex is the index filename served when none is configured.
const DefaultIndex = "wp-sitemap.xml"

const contentType = "application/xml; charset=UTF-8"

// BaseURLFunc returns the absolute site root.
type BaseURLFunc func(ctx context.Context) (string, error)

// Routes returns a router serving the index at "/"+index and the provider
// pages next to it.
func (r *Registry) Routes(index string, base BaseURLFunc) chi.Router {
	stem := Stem(index)

	rt := chi.NewRouter()
	rt.Get("/"+stem+".xml", r.serveIndex(stem, base))
	rt.Get("/"+stem+"-{name:[a-z]+}-{page:[0-9]+}.xml", r.servePage())
	return rt
}

// Stem strips the leading slash and ".xml" suffix from index.
func Stem(index string) string {
	index = strings.Trim(index, "/")
	if index == "" {
		index = DefaultIndex
	}
	return strings.TrimSuffix(index, ".xml")
}

// PageURL returns the absolute URL of one provider page.
func PageURL(base, stem, name string, page int) string {
	return routing.JoinURL(base, fmt.Sprintf("%s-%s-%d.xml", stem, name, page))
}

func (r *Registry) serveIndex(stem string, base BaseURLFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		root, err := base(req.Context())
		if err != nil {
			zap.L().Error("sitemap base url", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		var locs []string
		for _, name := range r.Names() {
			p, ok := r.Lookup(name)
			if !ok {
				continue
			}
			for page := 1; page <= p.MaxNumPages(); page++ {
				locs = append(locs, PageURL(root, stem, name, page))
			}
		}

		var buf bytes.Buffer
		if err := writeIndex(&buf, locs); err != nil {
			zap.L().Error("sitemap index encode", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		metrics.SitemapRequestsTotal.WithLabelValues("index").Inc()
		write(w, buf.Bytes())
	}
}

func (r *Registry) servePage() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		page, err := strconv.Atoi(chi.URLParam(req, "page"))
		p, ok := r.Lookup(name)
		if err != nil || !ok || page < 1 || page > p.MaxNumPages() {
			http.NotFound(w, req)
			return
		}
		entries, err := p.URLList(req.Context(), page)
		if err != nil {
			zap.L().Error("sitemap provider", zap.String("provider", name), zap.Int("page", page), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := writeURLSet(&buf, entries); err != nil {
			zap.L().Error("sitemap page encode", zap.String("provider", name), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		metrics.SitemapRequestsTotal.WithLabelValues(name).Inc()
		write(w, buf.Bytes())
	}
}

func write(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	_, _ = w.Write(body)
}
