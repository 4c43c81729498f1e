package delivery

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Delivery request headers.
const (
	HeaderSignature = "X-Docflow-Signature"
	HeaderTimestamp = "X-Docflow-Timestamp"
)

// Sign computes the hex HMAC-SHA256 over "<unix timestamp>.<body>" with the
// receiver's secret. Binding the timestamp into the MAC lets receivers
// reject replayed payloads.
func Sign(body []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts.Unix(), 10)))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a signature the way a receiver would.
func Verify(body []byte, secret, signature string, ts time.Time) bool {
	expect := Sign(body, secret, ts)
	return hmac.Equal([]byte(expect), []byte(signature))
}
