// internal/form/csrf.go
//
// Forms subsystem: stateless CSRF tokens.
//
// Context
//   Rendered forms embed a hidden `csrf_token`.  The token needs no server
//   state:
//
//      base64url( nonce | unixMicro | HMAC_SHA256(key, nonce+unixMicro) )
//
//   •  nonce – 16 random bytes.
//   •  unixMicro – issue time, 8 bytes, big-endian.
//   •  HMAC – keyed with the process secret.
//
//   Verification recomputes the HMAC in constant time and rejects tokens
//   older than MaxTokenAge or issued more than a minute in the future.
//
// Notes
//   The key comes from ADEPT_CSRF_KEY (base64url, at least 32 bytes).  When
//   unset, a random key is generated and tokens stop verifying on restart.
//
//------------------------------------------------------------------------------

package form

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	nonceBytes   = 16
	tokenBytes   = nonceBytes + 8 + sha256.Size
	secretEnvKey = "ADEPT_CSRF_KEY"

	// MaxTokenAge bounds how long a rendered form stays submittable.
	MaxTokenAge = 2 * time.Hour
)

// Signer issues and verifies CSRF tokens with one HMAC key.
type Signer struct {
	key []byte
}

// NewSigner returns a Signer for key.  Keys shorter than 32 bytes are
// rejected.
func NewSigner(key []byte) (*Signer, error) {
	if len(key) < 32 {
		return nil, errors.New("form: csrf key must be at least 32 bytes")
	}
	return &Signer{key: append([]byte(nil), key...)}, nil
}

var (
	defaultOnce   sync.Once
	defaultSigner *Signer
)

// DefaultSigner returns the process-wide Signer keyed from ADEPT_CSRF_KEY.
func DefaultSigner() *Signer {
	defaultOnce.Do(func() {
		if env := os.Getenv(secretEnvKey); env != "" {
			if b, err := base64.RawURLEncoding.DecodeString(env); err == nil {
				if s, err := NewSigner(b); err == nil {
					defaultSigner = s
					return
				}
			}
			zap.L().Warn("ADEPT_CSRF_KEY unusable, using random key")
		} else {
			zap.L().Warn("ADEPT_CSRF_KEY not set, using random key")
		}
		key := make([]byte, 32)
		_, _ = rand.Read(key)
		defaultSigner = &Signer{key: key}
	})
	return defaultSigner
}

// Token creates a token issued at now.
func (s *Signer) Token(now time.Time) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf[:nonceBytes]); err != nil {
		return "", err
	}
	binary.BigEndian.PutUint64(buf[nonceBytes:nonceBytes+8], uint64(now.UnixMicro()))
	copy(buf[nonceBytes+8:], s.sign(buf[:nonceBytes+8]))
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Verify reports whether tok is authentic and fresh at now.
func (s *Signer) Verify(tok string, now time.Time) bool {
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil || len(raw) != tokenBytes {
		return false
	}

	issued := time.UnixMicro(int64(binary.BigEndian.Uint64(raw[nonceBytes : nonceBytes+8])))
	if now.Sub(issued) > MaxTokenAge || issued.Sub(now) > time.Minute {
		return false
	}
	return hmac.Equal(raw[nonceBytes+8:], s.sign(raw[:nonceBytes+8]))
}

func (s *Signer) sign(msg []byte) []byte {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(msg)
	return mac.Sum(nil)
}
