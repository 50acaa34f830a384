// components/llmstxt/admin.go
//
// Admin settings page.
//
// Workflow
// --------
//  1. GET renders the YAML-defined form prefilled from the current
//     Configuration, a link to the live document, and a notice after a
//     successful save (?updated=1).
//  2. POST checks the CSRF token and render timestamp, passes the raw
//     values to Store.Update, and redirects 303 back to the page.  Field
//     values are never rejected; the store normalises them.
//  3. A rejected submission (stale token, too fast, expired) re-renders
//     the page with 400 and the messages.  Store failures answer 500.
package llmstxt

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/yanizio/adept-llmstxt/internal/form"
	"github.com/yanizio/adept-llmstxt/internal/head"
	"github.com/yanizio/adept-llmstxt/internal/metrics"
	"github.com/yanizio/adept-llmstxt/internal/settings"
)

// SettingsStore is the Configuration Store contract.  *settings.Store
// satisfies it.
type SettingsStore interface {
	Read(ctx context.Context) (settings.Configuration, error)
	Update(ctx context.Context, in settings.Input) (settings.Configuration, error)
}

// Admin serves the settings page.
type Admin struct {
	path    string
	liveURL func(ctx context.Context) (string, error)
	store   SettingsStore
	def     *form.FormDef
	signer  *form.Signer
}

var pageTmpl = template.Must(template.New("admin").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
{{.Head.Title}}
{{.Head.Metas}}
{{.Head.Links}}
</head>
<body>
<h1>{{.Title}}</h1>
{{- if .Updated}}
<div class="notice notice-success"><p>Settings saved.</p></div>
{{- end}}
{{- range .Errors}}
<div class="notice notice-error"><p>{{.Message}}</p></div>
{{- end}}
{{- with .LiveURL}}
<p>Your llms.txt file is available at <a href="{{.}}" target="_blank" rel="noopener">{{.}}</a>.</p>
{{- end}}
{{.Form}}
</body>
</html>
`))

// ServeGet renders the form.
func (a *Admin) ServeGet(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, nil)
}

// ServePost saves the submission.
func (a *Admin) ServePost(w http.ResponseWriter, r *http.Request) {
	values, err := form.HandleSubmit(a.def, r, a.signer)
	if err != nil {
		var ve form.ValidationError
		if errors.As(err, &ve) {
			a.render(w, r, http.StatusBadRequest, ve.Fields)
			return
		}
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if _, err := a.store.Update(r.Context(), settings.Input(values)); err != nil {
		zap.L().Error("llms.txt settings save failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	metrics.SettingsUpdatesTotal.Inc()
	zap.L().Info("llms.txt settings updated")

	http.Redirect(w, r, a.path+"?updated=1", http.StatusSeeOther)
}

func (a *Admin) render(w http.ResponseWriter, r *http.Request, status int, errs []form.ErrorField) {
	ctx := r.Context()

	cfg, err := a.store.Read(ctx)
	if err != nil {
		zap.L().Error("llms.txt settings read failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	markup, err := form.Render(a.def, form.RenderOptions{
		Action: a.path,
		Values: formValues(cfg),
		Signer: a.signer,
	})
	if err != nil {
		zap.L().Error("llms.txt settings form", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	live, err := a.liveURL(ctx)
	if err != nil {
		zap.L().Warn("llms.txt live url", zap.Error(err))
		live = ""
	}

	hb := head.New()
	hb.SetTitle(a.def.Title)
	hb.Robots("noindex, nofollow")
	hb.Link("alternate", live, "text/plain")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	err = pageTmpl.Execute(w, map[string]any{
		"Head":    hb,
		"Title":   a.def.Title,
		"Updated": status == http.StatusOK && r.URL.Query().Get("updated") == "1",
		"Errors":  errs,
		"LiveURL": live,
		"Form":    markup,
	})
	if err != nil {
		zap.L().Error("llms.txt admin page", zap.Error(err))
	}
}

// formValues converts cfg to form prefill strings.
func formValues(cfg settings.Configuration) map[string]string {
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return ""
	}
	return map[string]string{
		settings.FieldSiteDescription: cfg.SiteDescription,
		settings.FieldContactEmail:    cfg.ContactEmail,
		settings.FieldContactURL:      cfg.ContactURL,
		settings.FieldIncludePages:    flag(cfg.IncludePages),
		settings.FieldIncludePosts:    flag(cfg.IncludePosts),
		settings.FieldMaxPages:        strconv.Itoa(cfg.MaxPages),
		settings.FieldMaxPosts:        strconv.Itoa(cfg.MaxPosts),
	}
}
