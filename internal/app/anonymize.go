package app

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// AnonymizeUser maps a display name to a short opaque id: the first 10
// hex characters of the md5 of the trimmed, lowercased name. Empty names
// map to the literal "anonymous".
func AnonymizeUser(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "anonymous"
	}
	sum := md5.Sum([]byte(name))
	return hex.EncodeToString(sum[:])[:10]
}
