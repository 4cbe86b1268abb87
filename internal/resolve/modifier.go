// Playlist URL resolution
//
// Resolves every relative URI in a parsed playlist against a base URL:
// - Segment, Key, Map, Part URIs
// - Variant, I-Frame Variant, Image Variant, Media Rendition URIs
// - RenditionReport, SessionData, PreloadHint, Tiles URIs
package resolve

import (
	"errors"
	"net/url"

	"github.com/arsovski/hlsparse/pkg/hls"
)

// Common errors.
var (
	ErrInvalidBaseURL  = errors.New("invalid base URL")
	ErrInvalidPlaylist = errors.New("invalid playlist")
)

// Resolver rewrites every relative URI it finds in a parsed Playlist to
// an absolute URL against a fixed base. It never fetches anything; it is
// a pure downstream consumer of the hls.Playlist data model.
type Resolver struct {
	baseURL *url.URL
}

// NewResolver creates a Resolver anchored at baseURL.
func NewResolver(baseURL *url.URL) *Resolver {
	return &Resolver{baseURL: baseURL}
}

// Resolve rewrites playlist in place, dispatching to the master or media
// resolver depending on which kind of playlist was parsed.
func (r *Resolver) Resolve(playlist *hls.Playlist) error {
	if r.baseURL == nil {
		return ErrInvalidBaseURL
	}
	if playlist == nil {
		return ErrInvalidPlaylist
	}

	if playlist.IsMaster() {
		(&masterResolver{baseURL: r.baseURL}).resolve(playlist)
	}
	if len(playlist.Segments) > 0 {
		(&mediaResolver{baseURL: r.baseURL}).resolve(playlist)
	}
	return nil
}

// resolveURL resolves urlStr against base if it is relative; absolute
// URLs and empty strings are returned unchanged.
func resolveURL(base *url.URL, urlStr string) string {
	if urlStr == "" {
		return urlStr
	}
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return urlStr
	}
	if parsed.IsAbs() {
		return urlStr
	}
	return base.ResolveReference(parsed).String()
}
