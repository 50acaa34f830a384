// internal/form/renderer.go
//
// Forms subsystem: HTML renderer.
//
// Context
//   Render turns a FormDef into a complete <form> element.  Each group is a
//   <fieldset> with a <legend>; each field is wrapped in
//   <div class="form-field">, gets id="fld-{name}", and is followed by its
//   help text when the definition has one.  Hidden inputs carry the CSRF
//   token and the render timestamp checked by Collect.
//
// Notes
//   •  html/template escapes every attribute and text node.
//   •  Checkboxes post "1" and render checked for any truthy prefill.
//   •  Output is plain markup with class hooks only.
//
//------------------------------------------------------------------------------

package form

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"
)

// Hidden input names shared by Render and Collect.
const (
	TokenField    = "csrf_token"
	RenderTSField = "render_ts"
)

// RenderOptions bundles per-request rendering inputs.
type RenderOptions struct {
	Action string            // POST target.  Empty posts to the current URL.
	Values map[string]string // Prefill keyed by field name.
	Signer *Signer           // nil selects DefaultSigner.
	Now    time.Time         // Zero selects time.Now.
}

var formTmpl = template.Must(template.New("form").Funcs(template.FuncMap{
	"checked": isChecked,
}).Parse(`<form class="adept-form" method="post"{{with .Action}} action="{{.}}"{{end}}>
{{- range .Def.Groups}}
<fieldset id="grp-{{.ID}}">
{{- with .Title}}
<legend>{{.}}</legend>
{{- end}}
{{- range .Fields}}{{$v := index $.Values .Name}}
<div class="form-field">
{{- if eq .Type "checkbox"}}
<label for="fld-{{.Name}}"><input id="fld-{{.Name}}" name="{{.Name}}" type="checkbox" value="1"{{if checked $v}} checked{{end}}> {{.Label}}</label>
{{- else}}
<label for="fld-{{.Name}}">{{.Label}}</label>
{{- if eq .Type "textarea"}}
<textarea id="fld-{{.Name}}" name="{{.Name}}"{{with .Rows}} rows="{{.}}"{{end}}{{with .MaxLength}} maxlength="{{.}}"{{end}}{{with .Placeholder}} placeholder="{{.}}"{{end}}>{{$v}}</textarea>
{{- else}}
<input id="fld-{{.Name}}" name="{{.Name}}" type="{{.Type}}"{{with .Min}} min="{{.}}"{{end}}{{with .Max}} max="{{.}}"{{end}}{{with .MaxLength}} maxlength="{{.}}"{{end}}{{with .Placeholder}} placeholder="{{.}}"{{end}} value="{{$v}}">
{{- end}}
{{- end}}
{{- with .Description}}
<p class="description">{{.}}</p>
{{- end}}
</div>
{{- end}}
</fieldset>
{{- end}}
<input type="hidden" name="` + TokenField + `" value="{{.Token}}">
<input type="hidden" name="` + RenderTSField + `" value="{{.RenderTS}}">
<button type="submit">{{.Def.Submit}}</button>
</form>`))

// Render returns the HTML markup for fd.
func Render(fd *FormDef, opts RenderOptions) (template.HTML, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	signer := opts.Signer
	if signer == nil {
		signer = DefaultSigner()
	}

	tok, err := signer.Token(now)
	if err != nil {
		return "", fmt.Errorf("render %s: csrf token: %w", fd.ID, err)
	}
	values := opts.Values
	if values == nil {
		values = map[string]string{}
	}

	var buf bytes.Buffer
	err = formTmpl.Execute(&buf, struct {
		Def      *FormDef
		Action   string
		Values   map[string]string
		Token    string
		RenderTS string
	}{fd, opts.Action, values, tok, strconv.FormatInt(now.UnixMicro(), 10)})
	if err != nil {
		return "", fmt.Errorf("render %s: %w", fd.ID, err)
	}
	return template.HTML(buf.String()), nil
}

func isChecked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off", "no":
		return false
	}
	return true
}
