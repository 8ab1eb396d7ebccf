package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Sign computes the gateway's checksum over a callback parameter set:
// HMAC-SHA256 of "key1value1|key2value2|..." with the parameters sorted
// by key, keyed with the account's signature key. The "x_signature"
// field itself is never part of the source string.
func (c *Client) Sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "x_signature" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+params[k])
	}

	mac := hmac.New(sha256.New, []byte(c.signatureKey))
	mac.Write([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a callback signature in constant time.
func (c *Client) VerifySignature(params map[string]string, signature string) bool {
	if signature == "" {
		return false
	}
	expected := c.Sign(params)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}
