package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Compute derives the dedup identity for a document upload: a sha256 over the
// raw file bytes, the rule id, and the exact rule version. Pinning the version
// (never "latest") prevents silent reuse of a stale extraction after a rule
// update. NUL separators keep (rule "a", version "bc") distinct from
// (rule "ab", version "c").
func Compute(fileBytes []byte, ruleID, ruleVersion string) string {
	h := sha256.New()
	h.Write(fileBytes)
	h.Write([]byte{0})
	h.Write([]byte(ruleID))
	h.Write([]byte{0})
	h.Write([]byte(ruleVersion))
	return hex.EncodeToString(h.Sum(nil))
}
