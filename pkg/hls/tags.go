package hls

// tagEntry pairs a recognized tag prefix (including its trailing ':' when
// the tag carries a body) with the handler that consumes its body. Flag
// tags carry no body and match on the bare tag name.
type tagEntry struct {
	prefix  string
	hasBody bool
	handle  func(p *parseState, body string)
}

// dispatchTable lists every recognized tag prefix. dispatch picks the
// longest matching prefix regardless of table order, so overlapping tag
// names (DISCONTINUITY / DISCONTINUITY-SEQUENCE, CUE-OUT / CUE-OUT-CONT)
// resolve to the longer, more specific match.
var dispatchTable = []tagEntry{
	{"#EXT-X-DISCONTINUITY-SEQUENCE:", true, handleDiscontinuitySequence},
	{"#EXT-X-CUE-OUT-CONT:", true, handleCueOutCont},
	{"#EXT-X-CUE-OUT-CONT", false, handleCueOutCont},
	{"#EXT-X-CUE-OUT:", true, handleCueOut},
	{"#EXT-X-CUE-OUT", false, handleCueOut},
	{"#EXT-X-CUE-IN", false, handleCueIn},
	{"#EXT-X-CUE-SPAN:", true, handleCueSpan},
	{"#EXT-X-CUE-SPAN", false, handleCueSpan},
	{"#EXT-X-DISCONTINUITY", false, handleDiscontinuity},
	{"#EXT-X-TARGETDURATION:", true, handleTargetDuration},
	{"#EXT-X-MEDIA-SEQUENCE:", true, handleMediaSequence},
	{"#EXT-X-VERSION:", true, handleVersion},
	{"#EXT-X-ALLOW-CACHE:", true, handleAllowCache},
	{"#EXT-X-PLAYLIST-TYPE:", true, handlePlaylistType},
	{"#EXT-X-PROGRAM-DATE-TIME:", true, handleProgramDateTime},
	{"#EXT-X-ENDLIST", false, handleEndlist},
	{"#EXT-X-I-FRAMES-ONLY", false, handleIFramesOnly},
	{"#EXT-X-INDEPENDENT-SEGMENTS", false, handleIndependentSegments},
	{"#EXT-X-IMAGES-ONLY", false, handleImagesOnly},
	{"#EXT-X-GAP", false, handleGap},
	{"#EXT-X-BLACKOUT:", true, handleBlackout},
	{"#EXT-X-BLACKOUT", false, handleBlackout},
	{"#EXT-X-SESSION-KEY:", true, handleSessionKey},
	{"#EXT-X-KEY:", true, handleKey},
	{"#EXT-X-MAP:", true, handleMap},
	{"#EXTINF:", true, handleExtinf},
	{"#EXT-X-BYTERANGE:", true, handleByteRange},
	{"#EXT-X-BITRATE:", true, handleBitrate},
	{"#EXT-OATCLS-SCTE35:", true, handleOatclsSCTE35},
	{"#EXT-X-ASSET:", true, handleAsset},
	{"#EXT-X-DATERANGE:", true, handleDateRange},
	{"#EXT-X-STREAM-INF:", true, handleStreamInf},
	{"#EXT-X-I-FRAME-STREAM-INF:", true, handleIFrameStreamInf},
	{"#EXT-X-IMAGE-STREAM-INF:", true, handleImageStreamInf},
	{"#EXT-X-MEDIA:", true, handleMedia},
	{"#EXT-X-START:", true, handleStart},
	{"#EXT-X-SERVER-CONTROL:", true, handleServerControl},
	{"#EXT-X-PART-INF:", true, handlePartInf},
	{"#EXT-X-SKIP:", true, handleSkip},
	{"#EXT-X-RENDITION-REPORT:", true, handleRenditionReport},
	{"#EXT-X-SESSION-DATA:", true, handleSessionData},
	{"#EXT-X-PRELOAD-HINT:", true, handlePreloadHint},
	{"#EXT-X-CONTENT-STEERING:", true, handleContentSteering},
	{"#EXT-X-TILES:", true, handleTiles},
	{"#EXT-X-PART:", true, handlePart},
	{"#EXTM3U", false, handleIgnore},
}

// dispatch matches text (a full tag line, including its leading '#')
// against dispatchTable by longest prefix and invokes the matching
// handler. A line matching no known prefix is silently ignored, the same
// as any other unrecognized '#' line.
func dispatch(p *parseState, text string) {
	bestLen := -1
	var best *tagEntry
	for i := range dispatchTable {
		e := &dispatchTable[i]
		if len(e.prefix) <= bestLen || len(text) < len(e.prefix) {
			continue
		}
		if text[:len(e.prefix)] != e.prefix {
			continue
		}
		best = e
		bestLen = len(e.prefix)
	}
	if best == nil {
		return
	}
	body := ""
	if best.hasBody {
		body = text[len(best.prefix):]
	}
	best.handle(p, body)
}

func handleIgnore(p *parseState, body string) {}
