// Package hls implements a single-pass parser for HLS (HTTP Live
// Streaming) M3U8 manifests.
//
// Parsing is synchronous and performs no I/O of its own: callers supply
// the manifest bytes (or an io.Reader over them) and receive a fully
// populated Playlist or an error. The parser never fetches child
// playlists, never resolves relative URIs, and never validates HLS
// semantics beyond what is required to build the structure — malformed
// or unrecognized input is skipped on a best-effort basis rather than
// aborting the parse.
package hls
