// internal/form/submit.go
//
// Forms subsystem: one-call submit helper.
//
// HandleSubmit parses the POST body and runs Collect so handlers stay terse.
// Parse failures are system errors; CSRF and timing failures come back as a
// ValidationError.

package form

import (
	"net/http"
	"time"
)

// HandleSubmit parses r and collects the values declared by fd.
func HandleSubmit(fd *FormDef, r *http.Request, signer *Signer) (map[string]any, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return Collect(fd, r.PostForm, signer, time.Now())
}
