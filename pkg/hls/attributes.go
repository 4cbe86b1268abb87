package hls

import "strconv"

// AttrList is the ordered result of lexing the attribute portion of a tag
// line. Keys are normalized (ASCII-lowercased, '-' -> '_'); values retain
// surrounding quote characters verbatim. A bare positional value (no '=')
// is stored with an empty key.
type AttrList struct {
	pairs []Attribute
}

// parseAttrList lexes s, the slice following a tag's ':' separator, into
// an ordered attribute list. It tolerates whitespace around commas and
// equals signs and never returns an error: malformed input simply yields
// fewer or emptier pairs.
func parseAttrList(s string) *AttrList {
	al := &AttrList{}
	i, n := 0, len(s)
	for i < n {
		for i < n && isSpace(s[i]) {
			i++
		}
		if i >= n {
			break
		}
		start := i
		for i < n && s[i] != '=' && s[i] != ',' {
			i++
		}
		if i < n && s[i] == '=' {
			key := normalizeKey(trimTrailingSpace(s[start:i]))
			i++ // consume '='
			for i < n && isSpace(s[i]) {
				i++
			}
			valStart := i
			if i < n && (s[i] == '"' || s[i] == '\'') {
				quote := s[i]
				i++
				for i < n && s[i] != quote {
					i++
				}
				if i < n {
					i++ // consume closing quote
				}
			} else {
				for i < n && s[i] != ',' {
					i++
				}
			}
			al.pairs = append(al.pairs, Attribute{Key: key, Value: trimTrailingSpace(s[valStart:i])})
		} else {
			// Bare positional value: no '=' found before the next comma.
			al.pairs = append(al.pairs, Attribute{Key: "", Value: trimTrailingSpace(s[start:i])})
		}
		for i < n && isSpace(s[i]) {
			i++
		}
		if i < n && s[i] == ',' {
			i++
		}
	}
	return al
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

func trimTrailingSpace(s string) string {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	return s[:end]
}

func normalizeKey(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '-':
			b[i] = '_'
		case c >= 'A' && c <= 'Z':
			b[i] = c - 'A' + 'a'
		default:
			b[i] = c
		}
	}
	return string(b)
}

// unquote strips a single balanced pair of surrounding ASCII quotes
// ('"' or '\'') if both are present; otherwise it returns s unchanged.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// find returns the raw value of the first pair matching key, and whether
// it was present.
func (al *AttrList) find(key string) (string, bool) {
	if al == nil {
		return "", false
	}
	for _, p := range al.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// bare returns the first positional (empty-key) value, if any.
func (al *AttrList) bare() (string, bool) {
	if al == nil {
		return "", false
	}
	for _, p := range al.pairs {
		if p.Key == "" {
			return p.Value, true
		}
	}
	return "", false
}

// containsToken reports whether token appears anywhere in the raw attribute
// text s, case-insensitively, regardless of key/value structure. Used for the
// DURATION-token sniff on #EXT-X-CUE-OUT.
func containsToken(s, token string) bool {
	ls, lt := toLower(s), toLower(token)
	return indexOf(ls, lt) >= 0
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

func indexOf(s, sub string) int {
	n, m := len(s), len(sub)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == sub {
			return i
		}
	}
	return -1
}

// getStr returns the raw (quotes preserved) value for key, or def.
func (al *AttrList) getStr(key, def string) string {
	if v, ok := al.find(key); ok {
		return v
	}
	return def
}

// getStrUnquoted returns the quote-stripped value for key, or def.
func (al *AttrList) getStrUnquoted(key, def string) string {
	if v, ok := al.find(key); ok {
		return unquote(v)
	}
	return def
}

// getInt parses key as a base-10 integer, returning def on absence or
// malformed input.
func (al *AttrList) getInt(key string, def int) int {
	v, ok := al.find(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(unquote(v))
	if err != nil {
		return def
	}
	return n
}

// getI64 parses key as a base-10 64-bit integer, tolerating a leading
// sign and a trailing fractional part (truncated), returning def on
// absence or malformed input.
func (al *AttrList) getI64(key string, def int64) int64 {
	v, ok := al.find(key)
	if !ok {
		return def
	}
	v = unquote(v)
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int64(f)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// getDouble parses key as a floating point number, returning def on
// absence or malformed input.
func (al *AttrList) getDouble(key string, def float64) float64 {
	v, ok := al.find(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(unquote(v), 64)
	if err != nil {
		return def
	}
	return f
}
