package roster

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

func tokenCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "roster:token:" + hex.EncodeToString(sum[:])
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
