package a2a

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"ai-coach-agent-be/internal/pkg/logger"
)

const DefaultToleranceSec = 300

// VerifySignature checks an inbound webhook's HMAC-SHA256 signature.
//
// Expected signature format: hex-encoded HMAC of (timestamp + body) using the
// shared secret, carried in these headers:
//
//	X-A2A-Signature: <hex-hmac>
//	X-A2A-Timestamp: <unix-timestamp>
//
// The timestamp must be within toleranceSec of now to prevent replays.
// Whether this gates a route is the caller's deployment policy; the primitive
// only answers valid/invalid.
func VerifySignature(log logger.ILogger, bodyBytes []byte, timestamp, signature, secret string, toleranceSec int64) bool {
	if log != nil {
		// Audit entry before validation. The secret is never logged.
		log.Info("A2A", "verifying signature", map[string]interface{}{
			"timestamp": timestamp,
			"signature": signature,
		})
	}

	if secret == "" {
		return false
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		if log != nil {
			log.Warn("A2A", "invalid signature timestamp", map[string]interface{}{"error": err.Error()})
		}
		return false
	}

	now := time.Now().Unix()
	diff := now - ts
	if diff < 0 {
		diff = -diff
	}
	if diff > toleranceSec {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write(bodyBytes)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
