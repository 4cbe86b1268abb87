package hls

// finalizeSegment consumes all pending per-segment state at a URI line,
// producing an immutable Segment and resetting per-segment one-shots for
// the next segment.
func finalizeSegment(p *parseState, uri string) {
	s := p.segment()
	s.URI = uri
	s.Discontinuity = p.discontinuity
	s.CueIn = p.cueIn
	s.CueOut = p.cueOut
	s.CueOutStart = p.cueOutStart
	s.CueOutExplicitlyDuration = p.cueOutExplicitlyDuration
	s.GapTag = p.gap
	if p.hasBlackout {
		s.HasBlackout = true
		s.Blackout = p.blackout
	}

	if p.hasProgramDateTime {
		s.ProgramDateTime = p.programDateTime
		p.programDateTime = ""
		p.hasProgramDateTime = false
	}

	// SCTE-35 ownership rule: copy while the cue-out span is open (more
	// segments in the span will see the same values); move once the span
	// has closed (this URI follows a CUE-IN).
	s.SCTE35 = p.scte35
	s.OatclsSCTE35 = p.oatclsSCTE35
	s.SCTE35Duration = p.scte35Duration
	s.SCTE35ElapsedTime = p.scte35ElapsedTime
	if !p.cueOut {
		p.scte35 = ""
		p.oatclsSCTE35 = ""
		p.scte35Duration = ""
		p.scte35ElapsedTime = ""
	}

	// Asset metadata follows the same copy-inside-span, move-outside rule.
	s.AssetMetadata = p.assetMetadata
	if !p.cueOut {
		p.assetMetadata = nil
	}

	s.KeyRef = p.currentKeyRef
	s.MapRef = p.currentMapRef

	s.DateRanges = p.pendingDateRanges
	p.pendingDateRanges = nil

	p.doc.Segments = append(p.doc.Segments, *s)

	p.currentSegment = nil
	p.expectSegment = false
	p.discontinuity = false
	p.cueIn = false
	p.cueOut = false
	p.cueOutStart = false
	p.cueOutExplicitlyDuration = false
	p.gap = false
	p.hasBlackout = false
	p.blackout = ""
}

// finalizePlaylist consumes the staged #EXT-X-STREAM-INF attributes at a
// URI line, producing a Variant.
func finalizePlaylist(p *parseState, uri string) {
	v := variantFromAttrs(p.streamInfo)
	v.URI = uri
	p.doc.Variants = append(p.doc.Variants, v)
	p.streamInfo = nil
	p.expectPlaylist = false
}

// finalizeRemainder appends any in-progress segment left over at
// end-of-input, with no URI, rather than discarding the tags that were
// staged for it. Pending dateranges/asset metadata not yet attached to a
// segment are dropped, matching the best-effort error model: nothing
// halts, and nothing not explicitly attached survives.
func finalizeRemainder(p *parseState) {
	if p.currentSegment == nil {
		return
	}
	finalizeSegment(p, "")
}
