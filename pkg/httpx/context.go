package httpx

import "context"

type ctxKey string

// CtxKeyAPIKeyID holds the fingerprint of the API key that passed the gate.
const CtxKeyAPIKeyID ctxKey = "api_key_id"

// APIKeyIDFromContext returns the fingerprint stored by APIKeyMiddleware, or
// an empty string when the request never went through the gate.
func APIKeyIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAPIKeyID).(string); ok {
		return v
	}
	return ""
}
