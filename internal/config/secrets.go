// internal/config/secrets.go
//
// Vault reference resolution.
//
// Context
// -------
// Any string leaf in the merged Koanf tree may hold a reference of the form
//
//	vault:<mount>/<path>#<key>        e.g. vault:kv/adept/db#password
//
// resolveSecrets walks the flattened tree and replaces each reference with
// the secret value before unmarshal.  The Vault client is created lazily, so
// deployments that keep plain values never need VAULT_ADDR.
//
// Notes
// -----
//   • Secrets are cached by the client for secretTTL.
//   • Oxford commas, two spaces after periods.

package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/yanizio/adept-llmstxt/internal/vault"
)

const (
	vaultPrefix = "vault:"
	secretTTL   = 10 * time.Minute
)

// secretGetter is the slice of *vault.Client the resolver needs.
type secretGetter interface {
	GetKV(ctx context.Context, secretPath, key string, ttl time.Duration) (string, error)
}

// newSecretGetter is swapped by tests.
var newSecretGetter = func(ctx context.Context) (secretGetter, error) {
	return vault.New(ctx, zap.S().Infof)
}

// resolveSecrets replaces every `vault:` string leaf in k.
func resolveSecrets(ctx context.Context, k *koanf.Koanf) error {
	var cli secretGetter

	for key, raw := range k.All() {
		s, ok := raw.(string)
		if !ok || !strings.HasPrefix(s, vaultPrefix) {
			continue
		}

		path, field, err := parseVaultRef(s)
		if err != nil {
			return fmt.Errorf("config key %s: %w", key, err)
		}

		if cli == nil {
			if cli, err = newSecretGetter(ctx); err != nil {
				return err
			}
		}

		val, err := cli.GetKV(ctx, path, field, secretTTL)
		if err != nil {
			return fmt.Errorf("config key %s: %w", key, err)
		}
		if err := k.Set(key, val); err != nil {
			return err
		}
		zap.S().Debugw("config secret resolved", "key", key, "path", path)
	}
	return nil
}

// parseVaultRef splits "vault:kv/app/db#password" into path and key.
func parseVaultRef(ref string) (path, key string, err error) {
	body := strings.TrimPrefix(ref, vaultPrefix)
	i := strings.LastIndexByte(body, '#')
	if i <= 0 || i == len(body)-1 {
		return "", "", fmt.Errorf("malformed vault reference %q, want vault:<path>#<key>", ref)
	}
	return body[:i], body[i+1:], nil
}
