package hls

import "errors"

// ErrEmptyInput is returned when Parse or ParseBytes is given no bytes to
// parse. It is the only structural error the parser ever returns: every
// other malformation is absorbed best-effort into missing or default
// fields on the returned Playlist, per the error handling model this
// package follows.
var ErrEmptyInput = errors.New("hls: empty input")
