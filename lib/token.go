package lib

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GenerateRandomToken generates a cryptographically secure random token
func GenerateRandomToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// GenerateOrderID generates a time-derived order identifier in the format
// ORD-<unix millis>-<suffix>. The suffix guards against two checkouts landing
// on the same millisecond.
func GenerateOrderID() string {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const suffixLen = 4

	suffix := make([]byte, suffixLen)
	if _, err := rand.Read(suffix); err != nil {
		// rand failing this deep means the process is in trouble anyway;
		// fall back to a fixed suffix rather than an error return.
		return "ORD-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-XXXX"
	}
	for i := range suffix {
		suffix[i] = chars[int(suffix[i])%len(chars)]
	}

	var b strings.Builder
	b.WriteString("ORD-")
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	b.WriteByte('-')
	b.Write(suffix)
	return b.String()
}
