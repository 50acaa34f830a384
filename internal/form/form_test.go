package form

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

const sampleYAML = `
id: demo/settings
title: Demo
groups:
  - id: general
    title: General
    fields:
      - name: about
        label: About
        type: textarea
        rows: 3
        description: Shown as a quote.
      - name: site
        label: Site URL
        type: url
  - title: Content
    fields:
      - name: show
        label: Show items
        type: checkbox
      - name: limit
        label: Limit
        type: number
        min: 1
        max: 100
`

func testSigner(t *testing.T) *Signer {
	t.Helper()
	s, err := NewSigner([]byte(strings.Repeat("k", 32)))
	if err != nil {
		t.Fatalf("NewSigner: %v", err)
	}
	return s
}

func TestParse(t *testing.T) {
	fd, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fd.Submit != "Save Changes" {
		t.Errorf("Submit = %q", fd.Submit)
	}
	if fd.Groups[1].ID != "group2" {
		t.Errorf("derived group id = %q", fd.Groups[1].ID)
	}
	if got := len(fd.Fields()); got != 4 {
		t.Errorf("Fields() = %d, want 4", got)
	}
}

func TestParse_Rejects(t *testing.T) {
	bad := map[string]string{
		"no id":        "groups: [{fields: [{name: a, label: A, type: text}]}]",
		"no groups":    "id: x",
		"bad type":     "id: x\ngroups: [{fields: [{name: a, label: A, type: color}]}]",
		"no label":     "id: x\ngroups: [{fields: [{name: a, type: text}]}]",
		"duplicate":    "id: x\ngroups: [{fields: [{name: a, label: A, type: text}, {name: a, label: B, type: text}]}]",
		"min over max": "id: x\ngroups: [{fields: [{name: a, label: A, type: number, min: 5, max: 1}]}]",
	}
	for name, raw := range bad {
		if _, err := Parse([]byte(raw)); err == nil {
			t.Errorf("%s: Parse succeeded, want error", name)
		}
	}
}

func TestSigner(t *testing.T) {
	s := testSigner(t)
	now := time.Now()

	tok, err := s.Token(now)
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if !s.Verify(tok, now.Add(time.Minute)) {
		t.Error("fresh token rejected")
	}
	if s.Verify(tok, now.Add(MaxTokenAge+time.Second)) {
		t.Error("expired token accepted")
	}
	b := []byte(tok)
	if b[40] == 'A' {
		b[40] = 'B'
	} else {
		b[40] = 'A'
	}
	if s.Verify(string(b), now) {
		t.Error("tampered token accepted")
	}

	other, _ := NewSigner([]byte(strings.Repeat("z", 32)))
	if other.Verify(tok, now) {
		t.Error("token verified under a different key")
	}
	if _, err := NewSigner([]byte("short")); err == nil {
		t.Error("short key accepted")
	}
}

func TestRender(t *testing.T) {
	fd, _ := Parse([]byte(sampleYAML))
	html, err := Render(fd, RenderOptions{
		Action: "/admin/demo",
		Values: map[string]string{"about": `<b>"hi"</b>`, "show": "1", "limit": "7"},
		Signer: testSigner(t),
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := string(html)

	for _, want := range []string{
		`action="/admin/demo"`,
		`<legend>General</legend>`,
		`<textarea id="fld-about" name="about" rows="3">&lt;b&gt;&#34;hi&#34;&lt;/b&gt;</textarea>`,
		`type="checkbox" value="1" checked>`,
		`min="1" max="100"`,
		`value="7"`,
		`<p class="description">Shown as a quote.</p>`,
		`name="csrf_token"`,
		`<button type="submit">Save Changes</button>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in\n%s", want, out)
		}
	}
}

func TestCollect(t *testing.T) {
	fd, _ := Parse([]byte(sampleYAML))
	s := testSigner(t)
	rendered := time.Now().Add(-time.Minute)
	tok, _ := s.Token(rendered)

	posted := url.Values{
		TokenField:    {tok},
		RenderTSField: {strconv.FormatInt(rendered.UnixMicro(), 10)},
		"about":       {"  keep spaces  "},
		"show":        {"1"},
		"limit":       {"abc"},
		"extra":       {"ignored"},
	}
	got, err := Collect(fd, posted, s, time.Now())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if got["about"] != "  keep spaces  " || got["show"] != true || got["limit"] != "abc" {
		t.Errorf("unexpected values: %#v", got)
	}
	if _, ok := got["site"]; ok {
		t.Error("absent field present in result")
	}
	if _, ok := got["extra"]; ok {
		t.Error("undeclared field collected")
	}
}

func TestCollect_FormLevelFailures(t *testing.T) {
	fd, _ := Parse([]byte(sampleYAML))
	s := testSigner(t)
	now := time.Now()
	tok, _ := s.Token(now)

	cases := map[string]url.Values{
		"missing token": {RenderTSField: {strconv.FormatInt(now.Add(-time.Minute).UnixMicro(), 10)}},
		"too fast":      {TokenField: {tok}, RenderTSField: {strconv.FormatInt(now.UnixMicro(), 10)}},
		"expired":       {TokenField: {tok}, RenderTSField: {strconv.FormatInt(now.Add(-time.Hour).UnixMicro(), 10)}},
		"no timestamp":  {TokenField: {tok}},
	}
	for name, posted := range cases {
		if _, err := Collect(fd, posted, s, now); !IsValidationError(err) {
			t.Errorf("%s: err = %v, want ValidationError", name, err)
		}
	}
}

func TestHandleSubmit_RoundTrip(t *testing.T) {
	fd, _ := Parse([]byte(sampleYAML))
	s := testSigner(t)
	html, _ := Render(fd, RenderOptions{Signer: s, Now: time.Now().Add(-5 * time.Second)})

	re := regexp.MustCompile(`name="(csrf_token|render_ts)" value="([^"]+)"`)
	form := url.Values{"site": {"https://acme.com"}}
	for _, m := range re.FindAllStringSubmatch(string(html), -1) {
		form.Set(m[1], m[2])
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	got, err := HandleSubmit(fd, r, s)
	if err != nil {
		t.Fatalf("HandleSubmit: %v", err)
	}
	if got["site"] != "https://acme.com" {
		t.Errorf("site = %v", got["site"])
	}
}
