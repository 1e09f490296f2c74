package utils

import (
	"crypto/rand"
	"encoding/base64"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const maxKeyNameLength = 100

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// GenerateSecureToken creates a cryptographically secure random token.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateStorageKey builds a blob key of the form <unix-nanos>-<token>-<name>.
// Two uploads of the same original name never share a key.
func GenerateStorageKey(originalName string) (string, error) {
	token, err := GenerateSecureToken(9)
	if err != nil {
		return "", err
	}
	// base64url may emit '-' and '_', keep the key splittable on '-'
	token = strings.NewReplacer("-", "x", "_", "y").Replace(token)
	return strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + token + "-" + SanitizeFilename(originalName), nil
}

// SanitizeFilename strips directories and characters that are unsafe in a
// path or object key.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeKeyChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	if len(name) > maxKeyNameLength {
		name = name[len(name)-maxKeyNameLength:]
	}
	return name
}
