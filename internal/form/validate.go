// internal/form/validate.go
//
// Forms subsystem: submission checks and value collection.
//
// Context
//   Collect verifies that a POST came from a form this process rendered
//   (CSRF token) and was neither submitted implausibly fast nor long after
//   rendering (render timestamp).  It then gathers the raw values of the
//   fields the definition declares and nothing else.
//
//   Per-field policy stays with the caller.  Collect does not reject or
//   rewrite values, so a component may choose to normalise instead of
//   refusing input.
//
// Workflow
//   •  Form-level failures come back as a ValidationError listing the
//      problems; callers re-render with the messages instead of a 500.
//   •  Present fields map to their first submitted value.  Checked
//      checkboxes map to true; unchecked checkboxes are absent.
//
//------------------------------------------------------------------------------

package form

import (
	"errors"
	"net/url"
	"strconv"
	"time"
)

// Timing bounds for a submission, measured from render_ts.
const (
	MinFillTime = 2 * time.Second
	MaxFillTime = 30 * time.Minute
)

// ErrorField describes a single failure so the template can show it.  An
// empty Name marks a form-level problem.
type ErrorField struct {
	Name    string
	Message string
}

// ValidationError wraps []ErrorField and satisfies the error interface.
type ValidationError struct{ Fields []ErrorField }

func (ve ValidationError) Error() string { return "form validation failed" }

// IsValidationError reports whether err came from a rejected submission.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// Collect checks posted against fd and returns the declared fields' values.
func Collect(fd *FormDef, posted url.Values, signer *Signer, now time.Time) (map[string]any, error) {
	if signer == nil {
		signer = DefaultSigner()
	}

	tok := posted.Get(TokenField)
	if tok == "" || !signer.Verify(tok, now) {
		return nil, ValidationError{[]ErrorField{{"", "Security token invalid.  Please refresh and try again."}}}
	}
	if msg := checkTiming(posted.Get(RenderTSField), now); msg != "" {
		return nil, ValidationError{[]ErrorField{{"", msg}}}
	}

	out := make(map[string]any)
	for _, f := range fd.Fields() {
		raw, ok := posted[f.Name]
		if !ok || len(raw) == 0 {
			continue
		}
		if f.Type == "checkbox" {
			out[f.Name] = isChecked(raw[0])
			continue
		}
		out[f.Name] = raw[0]
	}
	return out, nil
}

// checkTiming returns "" when tsRaw lies inside the fill window, or a
// user-visible message.
func checkTiming(tsRaw string, now time.Time) string {
	if tsRaw == "" {
		return "Timestamp missing.  Please reload the page."
	}
	ts, err := strconv.ParseInt(tsRaw, 10, 64)
	if err != nil {
		return "Bad timestamp.  Please retry."
	}
	delta := now.Sub(time.UnixMicro(ts))
	switch {
	case delta < MinFillTime:
		return "Form submitted too quickly.  Please try again."
	case delta > MaxFillTime:
		return "Form expired.  Please reload and submit again."
	default:
		return ""
	}
}
