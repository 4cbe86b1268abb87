package hls

import "strconv"

// --- scalar / flag tags -----------------------------------------------

func handleTargetDuration(p *parseState, body string) {
	if n, err := strconv.Atoi(trimTrailingSpace(body)); err == nil {
		p.doc.TargetDuration = n
	}
}

func handleMediaSequence(p *parseState, body string) {
	if n, err := strconv.ParseInt(trimTrailingSpace(body), 10, 64); err == nil {
		p.doc.MediaSequence = n
		p.doc.HasMediaSequence = true
	}
}

func handleDiscontinuitySequence(p *parseState, body string) {
	if n, err := strconv.ParseInt(trimTrailingSpace(body), 10, 64); err == nil {
		p.doc.DiscontinuitySequence = n
	}
}

func handleVersion(p *parseState, body string) {
	if n, err := strconv.Atoi(trimTrailingSpace(body)); err == nil {
		p.doc.Version = n
	}
}

func handleAllowCache(p *parseState, body string) {
	p.doc.AllowCache = toLower(trimTrailingSpace(body))
}

func handlePlaylistType(p *parseState, body string) {
	p.doc.PlaylistType = toLower(trimTrailingSpace(body))
}

func handleProgramDateTime(p *parseState, body string) {
	ts := trimTrailingSpace(body)
	p.programDateTime = ts
	p.hasProgramDateTime = true
	if p.doc.ProgramDateTime == "" {
		p.doc.ProgramDateTime = ts
	}
}

func handleEndlist(p *parseState, body string)            { p.doc.IsEndlist = true }
func handleIFramesOnly(p *parseState, body string)         { p.doc.IsIFramesOnly = true }
func handleIndependentSegments(p *parseState, body string) { p.doc.IsIndependentSegments = true }
func handleImagesOnly(p *parseState, body string)          { p.doc.IsImagesOnly = true }
func handleDiscontinuity(p *parseState, body string)       { p.discontinuity = true }
func handleGap(p *parseState, body string)                 { p.gap = true }

func handleBlackout(p *parseState, body string) {
	b := trimTrailingSpace(body)
	p.hasBlackout = true
	p.blackout = b
}

// --- Key / Map (sticky references) -------------------------------------

func handleKey(p *parseState, body string) {
	k := parseKeyAttrs(body)
	p.doc.Keys = append(p.doc.Keys, k)
	p.currentKeyRef = len(p.doc.Keys) - 1
}

func handleSessionKey(p *parseState, body string) {
	k := parseKeyAttrs(body)
	p.doc.SessionKeys = append(p.doc.SessionKeys, k)
}

func parseKeyAttrs(body string) Key {
	al := parseAttrList(body)
	return Key{
		Method:            al.getStrUnquoted("method", ""),
		URI:               al.getStrUnquoted("uri", ""),
		IV:                al.getStrUnquoted("iv", ""),
		KeyFormat:         al.getStrUnquoted("keyformat", ""),
		KeyFormatVersions: al.getStrUnquoted("keyformatversions", ""),
	}
}

func handleMap(p *parseState, body string) {
	al := parseAttrList(body)
	m := Map{
		URI:       al.getStrUnquoted("uri", ""),
		ByteRange: al.getStrUnquoted("byterange", ""),
	}
	p.doc.Maps = append(p.doc.Maps, m)
	p.currentMapRef = len(p.doc.Maps) - 1
}

// --- segment-path staging tags -----------------------------------------

func handleExtinf(p *parseState, body string) {
	duration, rest := parseLeadingDouble(body)
	title := ""
	if idx := indexOf(rest, ","); idx >= 0 {
		title = trimLeadingSpace(rest[idx+1:])
	}
	s := p.segment()
	s.Duration = duration
	s.Title = title
	p.expectSegment = true
}

// parseLeadingDouble parses as much of a leading floating point number as
// possible, stopping at the first non-numeric byte, and returns the
// remainder of the string starting at that byte.
func parseLeadingDouble(s string) (float64, string) {
	i := 0
	n := len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		f = 0
	}
	return f, s[i:]
}

func trimLeadingSpace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:]
}

func handleByteRange(p *parseState, body string) {
	s := p.segment()
	s.ByteRange = trimTrailingSpace(body)
	p.expectSegment = true
}

func handleBitrate(p *parseState, body string) {
	s := p.segment()
	if n, err := strconv.Atoi(trimTrailingSpace(body)); err == nil {
		s.Bitrate = n
	}
}

// --- cue-out / cue-in / SCTE-35 -----------------------------------------

func handleCueOut(p *parseState, body string) {
	p.cueOut = true
	p.cueOutStart = true
	if containsToken(body, "duration") {
		p.cueOutExplicitlyDuration = true
	}
	al := parseAttrList(body)
	if v, ok := al.find("cue"); ok {
		p.scte35 = unquote(v)
	}
	if v, ok := al.find("duration"); ok {
		p.scte35Duration = unquote(v)
	} else if v, ok := al.bare(); ok {
		p.scte35Duration = unquote(v)
	}
}

func handleCueOutCont(p *parseState, body string) {
	p.cueOut = true
	al := parseAttrList(body)
	if v, ok := al.bare(); ok {
		if idx := indexOf(v, "/"); idx >= 0 {
			p.scte35ElapsedTime = v[:idx]
			p.scte35Duration = v[idx+1:]
		}
	}
	if v, ok := al.find("duration"); ok {
		p.scte35Duration = unquote(v)
	}
	if v, ok := al.find("scte35"); ok {
		p.scte35 = unquote(v)
	}
	if v, ok := al.find("elapsedtime"); ok {
		p.scte35ElapsedTime = unquote(v)
	}
}

func handleCueIn(p *parseState, body string) {
	p.cueIn = true
}

func handleCueSpan(p *parseState, body string) {
	p.cueOut = true
	p.cueOutStart = true
}

func handleOatclsSCTE35(p *parseState, body string) {
	v := trimTrailingSpace(body)
	p.oatclsSCTE35 = v
	if p.scte35 == "" {
		p.scte35 = v
	}
}

func handleAsset(p *parseState, body string) {
	p.assetMetadata = parseAttrList(body)
}

// --- DateRange -----------------------------------------------------------

func handleDateRange(p *parseState, body string) {
	al := parseAttrList(body)
	dr := DateRange{
		ID:              al.getStrUnquoted("id", ""),
		Class:           al.getStrUnquoted("class", ""),
		StartDate:       al.getStrUnquoted("start_date", ""),
		EndDate:         al.getStrUnquoted("end_date", ""),
		Duration:        al.getDouble("duration", 0),
		PlannedDuration: al.getDouble("planned_duration", 0),
		SCTE35Cmd:       al.getStr("scte35_cmd", ""),
		SCTE35Out:       al.getStr("scte35_out", ""),
		SCTE35In:        al.getStr("scte35_in", ""),
		EndOnNext:       al.getStr("end_on_next", ""),
	}
	for _, attr := range al.pairs {
		if len(attr.Key) > 2 && attr.Key[:2] == "x_" {
			dr.XAttrs = append(dr.XAttrs, attr)
		}
	}
	p.pendingDateRanges = append(p.pendingDateRanges, dr)
}

// --- variant / rendition tags --------------------------------------------

func handleStreamInf(p *parseState, body string) {
	p.doc.IsVariant = true
	p.doc.HasMediaSequence = false
	p.streamInfo = parseAttrList(body)
	p.expectPlaylist = true
}

func variantFromAttrs(al *AttrList) Variant {
	return Variant{
		ProgramID:        al.getStr("program_id", ""),
		Bandwidth:        al.getI64("bandwidth", 0),
		AverageBandwidth: al.getI64("average_bandwidth", 0),
		Resolution:       al.getStr("resolution", ""),
		Codecs:           al.getStrUnquoted("codecs", ""),
		FrameRate:        al.getStr("frame_rate", ""),
		Video:            al.getStrUnquoted("video", ""),
		Audio:            al.getStrUnquoted("audio", ""),
		Subtitles:        al.getStrUnquoted("subtitles", ""),
		ClosedCaptions:   al.getStr("closed_captions", ""),
		VideoRange:       al.getStrUnquoted("video_range", ""),
		HDCPLevel:        al.getStr("hdcp_level", ""),
		PathwayID:        al.getStrUnquoted("pathway_id", ""),
		StableVariantID:  al.getStrUnquoted("stable_variant_id", ""),
		ReqVideoLayout:   al.getStr("req_video_layout", ""),
	}
}

func handleIFrameStreamInf(p *parseState, body string) {
	al := parseAttrList(body)
	v := variantFromAttrs(al)
	v.URI = al.getStrUnquoted("uri", "")
	p.doc.IFrameVariants = append(p.doc.IFrameVariants, v)
}

func handleImageStreamInf(p *parseState, body string) {
	al := parseAttrList(body)
	v := variantFromAttrs(al)
	v.URI = al.getStrUnquoted("uri", "")
	p.doc.ImageVariants = append(p.doc.ImageVariants, v)
}

func handleMedia(p *parseState, body string) {
	al := parseAttrList(body)
	m := MediaRendition{
		Type:              al.getStr("type", ""),
		URI:               al.getStrUnquoted("uri", ""),
		GroupID:           al.getStrUnquoted("group_id", ""),
		Language:          al.getStrUnquoted("language", ""),
		AssocLanguage:     al.getStrUnquoted("assoc_language", ""),
		Name:              al.getStrUnquoted("name", ""),
		Default:           al.getStr("default", ""),
		Autoselect:        al.getStr("autoselect", ""),
		Forced:            al.getStr("forced", ""),
		InstreamID:        al.getStrUnquoted("instream_id", ""),
		Characteristics:   al.getStrUnquoted("characteristics", ""),
		Channels:          al.getStrUnquoted("channels", ""),
		StableRenditionID: al.getStrUnquoted("stable_rendition_id", ""),
	}
	p.doc.Media = append(p.doc.Media, m)
}

// --- nested aggregates ---------------------------------------------------

func handleStart(p *parseState, body string) {
	al := parseAttrList(body)
	p.doc.HasStart = true
	p.doc.Start = Start{
		TimeOffset: al.getDouble("time_offset", 0),
		Precise:    al.getStr("precise", ""),
	}
}

func handleServerControl(p *parseState, body string) {
	al := parseAttrList(body)
	p.doc.HasServerControl = true
	p.doc.ServerControl = ServerControl{
		CanSkipUntil:      al.getDouble("can_skip_until", 0),
		CanSkipDateRanges: al.getStr("can_skip_dateranges", ""),
		HoldBack:          al.getDouble("hold_back", 0),
		PartHoldBack:      al.getDouble("part_hold_back", 0),
		CanBlockReload:    al.getStr("can_block_reload", ""),
	}
}

func handlePartInf(p *parseState, body string) {
	al := parseAttrList(body)
	p.doc.HasPartInf = true
	p.doc.PartInf = PartInf{PartTarget: al.getDouble("part_target", 0)}
}

func handleSkip(p *parseState, body string) {
	al := parseAttrList(body)
	p.doc.HasSkip = true
	p.doc.Skip = Skip{
		SkippedSegments:           al.getI64("skipped_segments", 0),
		RecentlyRemovedDateranges: al.getStr("recently_removed_dateranges", ""),
	}
}

func handlePreloadHint(p *parseState, body string) {
	al := parseAttrList(body)
	h := PreloadHint{
		Type:           al.getStr("type", ""),
		URI:            al.getStrUnquoted("uri", ""),
		ByteRangeStart: al.getI64("byterange_start", 0),
	}
	if v, ok := al.find("byterange_length"); ok {
		h.HasByteRangeLength = true
		h.ByteRangeLength, _ = strconv.ParseInt(unquote(v), 10, 64)
	}
	p.doc.PreloadHints = append(p.doc.PreloadHints, h)
}

func handleContentSteering(p *parseState, body string) {
	al := parseAttrList(body)
	p.doc.HasContentSteering = true
	p.doc.ContentSteering = ContentSteering{
		ServerURI: al.getStrUnquoted("server_uri", ""),
		PathwayID: al.getStrUnquoted("pathway_id", ""),
	}
}

func handleRenditionReport(p *parseState, body string) {
	al := parseAttrList(body)
	r := RenditionReport{URI: al.getStrUnquoted("uri", "")}
	if v, ok := al.find("last_msn"); ok {
		r.HasLastMSN = true
		r.LastMSN, _ = strconv.ParseInt(unquote(v), 10, 64)
	}
	if v, ok := al.find("last_part"); ok {
		r.HasLastPart = true
		r.LastPart, _ = strconv.ParseInt(unquote(v), 10, 64)
	}
	p.doc.RenditionReports = append(p.doc.RenditionReports, r)
}

func handleSessionData(p *parseState, body string) {
	al := parseAttrList(body)
	p.doc.SessionData = append(p.doc.SessionData, SessionData{
		DataID:   al.getStrUnquoted("data_id", ""),
		Value:    al.getStrUnquoted("value", ""),
		URI:      al.getStrUnquoted("uri", ""),
		Language: al.getStrUnquoted("language", ""),
	})
}

func handleTiles(p *parseState, body string) {
	al := parseAttrList(body)
	p.doc.Tiles = append(p.doc.Tiles, Tiles{
		URI:        al.getStrUnquoted("uri", ""),
		Resolution: al.getStr("resolution", ""),
		Layout:     al.getStr("layout", ""),
		Duration:   al.getDouble("duration", 0),
	})
}

func handlePart(p *parseState, body string) {
	al := parseAttrList(body)
	part := Part{
		URI:         al.getStrUnquoted("uri", ""),
		Duration:    al.getDouble("duration", 0),
		ByteRange:   al.getStr("byterange", ""),
		Independent: al.getStr("independent", ""),
		Gap:         al.getStr("gap", ""),
		GapTag:      p.gap,
	}
	part.DateRanges = p.pendingDateRanges
	p.pendingDateRanges = nil
	p.gap = false

	s := p.segment()
	s.Parts = append(s.Parts, part)
}
