package hls

import (
	"io"
)

// Parse reads a complete M3U8 manifest from r and parses it into a
// Playlist. Parsing is single-pass, forward-only, and synchronous: it
// performs no network access and holds no state beyond the call. Apart
// from an error reading r, the only error returned is ErrEmptyInput;
// everything else is absorbed
// best-effort into the returned Playlist, which is never nil alongside a
// nil error.
func Parse(r io.Reader) (*Playlist, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(buf)
}

// ParseBytes parses a complete M3U8 manifest already held in memory. It is
// the core entry point; Parse is a thin io.Reader wrapper over it.
func ParseBytes(buf []byte) (*Playlist, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyInput
	}
	p := newParseState()
	for _, ln := range scanLines(string(buf)) {
		switch ln.kind {
		case lineBlank:
			continue
		case lineTag:
			dispatch(p, ln.text)
		case lineURI:
			// Mixed content (a staged variant followed by a segment tag)
			// resolves in favor of the segment path, matching the
			// best-effort model: no explicit error, the more specific
			// in-progress state wins.
			if p.expectSegment || p.currentSegment != nil {
				finalizeSegment(p, ln.text)
			} else if p.expectPlaylist {
				finalizePlaylist(p, ln.text)
			}
		}
	}
	finalizeRemainder(p)
	return p.doc, nil
}
