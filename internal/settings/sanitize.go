// internal/settings/sanitize.go
//
// Permissive input normalisation.
//
// Context
// -------
// Settings updates never fail because of what the user typed.  Each field
// is normalised instead:
//
//   • description – markup stripped (script and style bodies dropped),
//     line endings unified, invalid UTF-8 removed, trimmed.
//   • email       – trimmed; kept only when it is valid email syntax.
//   • URL         – trimmed; kept only when absolute with an allowed scheme.
//   • flags       – form truthiness ("", "0", "false", "off" are false).
//   • counts      – leading integer, absolute value; fallback when absent.
//
// Invalid email or URL input becomes "", never an error.  This mirrors the
// observed behaviour of the settings page it replaces.

package settings

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// allowedSchemes lists the URL schemes accepted for the contact URL.
var allowedSchemes = map[string]bool{
	"http": true, "https": true, "ftp": true, "ftps": true, "mailto": true,
	"news": true, "irc": true, "gopher": true, "nntp": true, "feed": true,
	"telnet": true, "mms": true, "rtsp": true, "sms": true, "svn": true,
	"tel": true, "fax": true, "xmpp": true, "webcal": true, "urn": true,
}

// SanitizeDescription returns raw as plain text.
func SanitizeDescription(raw string) string {
	raw = strings.ToValidUTF8(raw, "")
	if !strings.ContainsAny(raw, "<&") {
		return normaliseText(raw)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	doc.Find("script, style").Remove()
	return normaliseText(doc.Text())
}

func normaliseText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}

// SanitizeEmail returns the trimmed address or "" when it is not valid.
func SanitizeEmail(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || validate.Var(s, "email") != nil {
		return ""
	}
	return s
}

// SanitizeURL returns the trimmed URL or "" when it is not an absolute URL
// with an allowed scheme.  Hierarchical web schemes also need a host.
func SanitizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, " \t\n\"<>") {
		return ""
	}
	if validate.Var(s, "url") != nil {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return ""
	}
	scheme := strings.ToLower(u.Scheme)
	if !allowedSchemes[scheme] {
		return ""
	}
	switch scheme {
	case "http", "https", "ftp", "ftps":
		if u.Host == "" {
			return ""
		}
	}
	return s
}

// Truthy reports whether a form value counts as "checked".
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "", "0", "false", "off", "no":
			return false
		}
		return true
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

// AbsInt coerces v to a non-negative integer.  Strings contribute their
// leading integer ("12abc" → 12, "abc" → 0); a negative result is negated.
func AbsInt(v any) int {
	var n int64
	switch t := v.(type) {
	case nil:
		return 0
	case bool:
		if t {
			n = 1
		}
	case int:
		n = int64(t)
	case int64:
		n = t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0
		}
		n = int64(t)
	case string:
		n = leadingInt(t)
	default:
		return 0
	}
	if n < 0 {
		n = -n
	}
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	return int(n)
}

// leadingInt parses an optional sign followed by digits, ignoring
// whatever follows.
func leadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Overflow: saturate in the direction of the sign.
		if s[0] == '-' {
			return math.MinInt64 + 1
		}
		return math.MaxInt64
	}
	return n
}
