package httpx

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
	"golang.org/x/crypto/blake2b"
)

// APIKeyHeader is the request header carrying the shared secret.
const APIKeyHeader = "X-API-KEY"

// KeySet is the allow-list of accepted API keys. Only BLAKE2b digests of the
// keys are held in memory.
type KeySet struct {
	digests [][blake2b.Size256]byte
}

// NewKeySet builds a KeySet from raw keys. Blank entries are ignored, so a
// trailing comma in API_KEYS does not accidentally admit empty keys.
func NewKeySet(keys []string) *KeySet {
	ks := &KeySet{}
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		ks.digests = append(ks.digests, blake2b.Sum256([]byte(k)))
	}
	return ks
}

// Len returns the number of accepted keys.
func (ks *KeySet) Len() int { return len(ks.digests) }

// Match reports whether key is in the set and returns its fingerprint.
// Every digest is compared so the time taken does not depend on which entry
// matched.
func (ks *KeySet) Match(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	sum := blake2b.Sum256([]byte(key))
	matched := 0
	for i := range ks.digests {
		matched |= subtle.ConstantTimeCompare(sum[:], ks.digests[i][:])
	}
	if matched != 1 {
		return "", false
	}
	return hex.EncodeToString(sum[:4]), true
}

// APIKeyMiddleware rejects requests whose X-API-KEY header is missing or not
// in the key set with 401 and a JSON error body.
func APIKeyMiddleware(keys *KeySet) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := r.Header.Get(APIKeyHeader)
			if raw == "" {
				log.Warn("api key missing")
				WriteError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
				return
			}

			keyID, ok := keys.Match(raw)
			if !ok {
				log.Warn("api key rejected")
				WriteError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyAPIKeyID, keyID)
			ctx = slogx.WithContext(ctx, log.With("api_key_id", keyID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
