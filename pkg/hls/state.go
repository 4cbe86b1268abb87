package hls

// parseState is the mutable accumulator threaded through a single parse.
// It carries the document under construction plus everything a tag
// handler needs to stage before the next URI line finalizes a segment or
// variant playlist.
type parseState struct {
	doc *Playlist

	currentSegment *Segment
	expectSegment  bool
	expectPlaylist bool

	currentKeyRef int
	currentMapRef int

	// Per-segment one-shots, reset at finalizeSegment.
	discontinuity   bool
	gap             bool
	hasBlackout     bool
	blackout        string
	programDateTime string
	hasProgramDateTime bool
	assetMetadata   *AttrList
	pendingDateRanges []DateRange

	// Cue-out span state. finalizeSegment clears cueOut after every
	// segment; a span stays open across segments only because each
	// #EXT-X-CUE-OUT-CONT sets cueOut again before the next URI.
	cueIn                    bool
	cueOut                   bool
	cueOutStart              bool
	cueOutExplicitlyDuration bool
	scte35                   string
	oatclsSCTE35             string
	scte35Duration           string
	scte35ElapsedTime        string

	// Variant staging for #EXT-X-STREAM-INF.
	streamInfo *AttrList
}

func newParseState() *parseState {
	return &parseState{
		doc:           &Playlist{},
		currentKeyRef: noRef,
		currentMapRef: noRef,
	}
}

// segment lazily creates the in-progress segment so per-segment tags that
// precede #EXTINF (BYTERANGE, BITRATE) have somewhere to attach.
func (p *parseState) segment() *Segment {
	if p.currentSegment == nil {
		p.currentSegment = &Segment{KeyRef: noRef, MapRef: noRef}
	}
	return p.currentSegment
}
