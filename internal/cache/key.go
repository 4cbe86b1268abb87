// Cache key generation
//
// Keys are derived from the content being cached — the manifest bytes
// themselves — rather than from a request, since the parser has no HTTP
// surface of its own.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key represents a cache key.
type Key string

// FromString creates a cache key from a string verbatim.
func FromString(s string) Key {
	return Key(s)
}

// FromContent derives a cache key from the SHA-256 digest of buf, so that
// two identical manifest bodies — a common occurrence when polling a live
// playlist that hasn't changed since the last fetch — map to the same
// key regardless of where they came from.
func FromContent(buf []byte, opts ...KeyOption) Key {
	options := defaultKeyOptions()
	for _, opt := range opts {
		opt(&options)
	}
	sum := sha256.Sum256(buf)
	return Key(options.prefix + hex.EncodeToString(sum[:]))
}

// KeyOption configures key generation.
type KeyOption func(*keyOptions)

type keyOptions struct {
	prefix string
}

func defaultKeyOptions() keyOptions {
	return keyOptions{prefix: "hls:"}
}

// WithPrefix overrides the default key prefix.
func WithPrefix(prefix string) KeyOption {
	return func(o *keyOptions) {
		o.prefix = prefix
	}
}
