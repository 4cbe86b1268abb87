package hls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlackout_WithAndWithoutParams(t *testing.T) {
	input := "#EXT-X-BLACKOUT:TYPE=NETWORK\n" +
		"#EXTINF:4,\n" +
		"a.ts\n" +
		"#EXT-X-BLACKOUT\n" +
		"#EXTINF:4,\n" +
		"b.ts\n" +
		"#EXTINF:4,\n" +
		"c.ts\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Segments, 3)

	assert.True(t, p.Segments[0].HasBlackout)
	assert.Equal(t, "TYPE=NETWORK", p.Segments[0].Blackout)

	assert.True(t, p.Segments[1].HasBlackout)
	assert.Equal(t, "", p.Segments[1].Blackout)

	assert.False(t, p.Segments[2].HasBlackout)
}

func TestProgramDateTime_FirstWinsAtDocumentScope(t *testing.T) {
	input := "#EXT-X-PROGRAM-DATE-TIME:2024-01-01T00:00:00Z\n" +
		"#EXTINF:4,\n" +
		"a.ts\n" +
		"#EXT-X-PROGRAM-DATE-TIME:2024-01-01T00:00:04Z\n" +
		"#EXTINF:4,\n" +
		"b.ts\n" +
		"#EXTINF:4,\n" +
		"c.ts\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Segments, 3)

	assert.Equal(t, "2024-01-01T00:00:00Z", p.ProgramDateTime)
	assert.Equal(t, "2024-01-01T00:00:00Z", p.Segments[0].ProgramDateTime)
	assert.Equal(t, "2024-01-01T00:00:04Z", p.Segments[1].ProgramDateTime)
	assert.Equal(t, "", p.Segments[2].ProgramDateTime)
}

func TestOatclsSCTE35_StagesBothAndMovesOutsideSpan(t *testing.T) {
	input := "#EXT-OATCLS-SCTE35:payload\n" +
		"#EXTINF:4,\n" +
		"a.ts\n" +
		"#EXTINF:4,\n" +
		"b.ts\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Segments, 2)

	assert.Equal(t, "payload", p.Segments[0].SCTE35)
	assert.Equal(t, "payload", p.Segments[0].OatclsSCTE35)

	// No cue-out span was open, so the quartet moved into the first segment.
	assert.Equal(t, "", p.Segments[1].SCTE35)
	assert.Equal(t, "", p.Segments[1].OatclsSCTE35)
}

func TestAssetMetadata_CopiedInsideSpanMovedAfterCueIn(t *testing.T) {
	input := "#EXT-X-ASSET:CAID=0x0000000012345678\n" +
		"#EXT-X-CUE-OUT:30\n" +
		"#EXTINF:10,\n" +
		"p1.ts\n" +
		"#EXT-X-CUE-OUT-CONT:10/30\n" +
		"#EXTINF:10,\n" +
		"p2.ts\n" +
		"#EXT-X-CUE-IN\n" +
		"#EXTINF:10,\n" +
		"p3.ts\n" +
		"#EXTINF:10,\n" +
		"p4.ts\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Segments, 4)

	assert.NotNil(t, p.Segments[0].AssetMetadata)
	assert.NotNil(t, p.Segments[1].AssetMetadata)
	assert.NotNil(t, p.Segments[2].AssetMetadata)
	assert.Nil(t, p.Segments[3].AssetMetadata)

	// The SCTE-35 quartet follows the same rule: present across the span,
	// moved into the cue-in segment, gone afterwards.
	assert.Equal(t, "30", p.Segments[0].SCTE35Duration)
	assert.Equal(t, "30", p.Segments[1].SCTE35Duration)
	assert.Equal(t, "", p.Segments[3].SCTE35Duration)
}

func TestCueOut_BareDuration(t *testing.T) {
	input := "#EXT-X-CUE-OUT:30\n#EXTINF:10,\na.ts\n"
	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Segments, 1)

	s := p.Segments[0]
	assert.True(t, s.CueOut)
	assert.True(t, s.CueOutStart)
	assert.False(t, s.CueOutExplicitlyDuration)
	assert.Equal(t, "30", s.SCTE35Duration)
}

func TestCueSpan_OpensSpanWithoutPayload(t *testing.T) {
	input := "#EXT-X-CUE-SPAN\n#EXTINF:10,\na.ts\n"
	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Segments, 1)

	assert.True(t, p.Segments[0].CueOut)
	assert.True(t, p.Segments[0].CueOutStart)
	assert.Equal(t, "", p.Segments[0].SCTE35)
}

func TestMedia_UnquotingMatrix(t *testing.T) {
	input := `#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID="aud",NAME="English",LANGUAGE="en",DEFAULT=YES,AUTOSELECT=YES,URI="en.m3u8",CHANNELS="2"` + "\n"
	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Media, 1)

	m := p.Media[0]
	assert.Equal(t, "AUDIO", m.Type)
	assert.Equal(t, "aud", m.GroupID)
	assert.Equal(t, "English", m.Name)
	assert.Equal(t, "en", m.Language)
	assert.Equal(t, "YES", m.Default)
	assert.Equal(t, "YES", m.Autoselect)
	assert.Equal(t, "en.m3u8", m.URI)
	assert.Equal(t, "2", m.Channels)
}

func TestIFrameAndImageStreamInf_NoURILineNeeded(t *testing.T) {
	input := `#EXT-X-I-FRAME-STREAM-INF:BANDWIDTH=100000,URI="iframe.m3u8",CODECS="avc1.4d401f",RESOLUTION=640x360` + "\n" +
		`#EXT-X-IMAGE-STREAM-INF:BANDWIDTH=50000,URI="thumbs.m3u8",RESOLUTION=320x180` + "\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)

	require.Len(t, p.IFrameVariants, 1)
	assert.Equal(t, "iframe.m3u8", p.IFrameVariants[0].URI)
	assert.Equal(t, int64(100000), p.IFrameVariants[0].Bandwidth)
	assert.Equal(t, "avc1.4d401f", p.IFrameVariants[0].Codecs)
	assert.Equal(t, "640x360", p.IFrameVariants[0].Resolution)

	require.Len(t, p.ImageVariants, 1)
	assert.Equal(t, "thumbs.m3u8", p.ImageVariants[0].URI)
}

func TestSessionKey_DoesNotBecomeCurrentKey(t *testing.T) {
	input := `#EXT-X-SESSION-KEY:METHOD=AES-128,URI="sk"` + "\n" +
		"#EXTINF:4,\n" +
		"a.ts\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.SessionKeys, 1)
	assert.Equal(t, "sk", p.SessionKeys[0].URI)
	assert.Empty(t, p.Keys)

	require.Len(t, p.Segments, 1)
	assert.Nil(t, p.Segments[0].Key(p))
}

func TestDocumentScopedLLHLSTags(t *testing.T) {
	input := "#EXT-X-SERVER-CONTROL:CAN-SKIP-UNTIL=36.0,CAN-BLOCK-RELOAD=YES,PART-HOLD-BACK=1.5\n" +
		"#EXT-X-SKIP:SKIPPED-SEGMENTS=10\n" +
		"#EXT-X-START:TIME-OFFSET=-12.5,PRECISE=YES\n" +
		`#EXT-X-PRELOAD-HINT:TYPE=PART,URI="next.ts",BYTERANGE-START=0,BYTERANGE-LENGTH=2048` + "\n" +
		`#EXT-X-RENDITION-REPORT:URI="low.m3u8",LAST-MSN=32,LAST-PART=3` + "\n" +
		`#EXT-X-SESSION-DATA:DATA-ID="com.example.title",VALUE="Show",LANGUAGE="en"` + "\n" +
		`#EXT-X-CONTENT-STEERING:SERVER-URI="steer.json",PATHWAY-ID="cdn-a"` + "\n" +
		`#EXT-X-TILES:RESOLUTION=320x180,LAYOUT=5x4,DURATION=6.0,URI="tiles.jpg"` + "\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)

	assert.True(t, p.HasServerControl)
	assert.Equal(t, 36.0, p.ServerControl.CanSkipUntil)
	assert.Equal(t, "YES", p.ServerControl.CanBlockReload)
	assert.Equal(t, 1.5, p.ServerControl.PartHoldBack)

	assert.True(t, p.HasSkip)
	assert.Equal(t, int64(10), p.Skip.SkippedSegments)

	assert.True(t, p.HasStart)
	assert.Equal(t, -12.5, p.Start.TimeOffset)
	assert.Equal(t, "YES", p.Start.Precise)

	require.Len(t, p.PreloadHints, 1)
	assert.Equal(t, "next.ts", p.PreloadHints[0].URI)
	assert.True(t, p.PreloadHints[0].HasByteRangeLength)
	assert.Equal(t, int64(2048), p.PreloadHints[0].ByteRangeLength)

	require.Len(t, p.RenditionReports, 1)
	assert.Equal(t, "low.m3u8", p.RenditionReports[0].URI)
	assert.True(t, p.RenditionReports[0].HasLastMSN)
	assert.Equal(t, int64(32), p.RenditionReports[0].LastMSN)
	assert.True(t, p.RenditionReports[0].HasLastPart)
	assert.Equal(t, int64(3), p.RenditionReports[0].LastPart)

	require.Len(t, p.SessionData, 1)
	assert.Equal(t, "com.example.title", p.SessionData[0].DataID)
	assert.Equal(t, "Show", p.SessionData[0].Value)

	assert.True(t, p.HasContentSteering)
	assert.Equal(t, "steer.json", p.ContentSteering.ServerURI)
	assert.Equal(t, "cdn-a", p.ContentSteering.PathwayID)

	require.Len(t, p.Tiles, 1)
	assert.Equal(t, "tiles.jpg", p.Tiles[0].URI)
	assert.Equal(t, "5x4", p.Tiles[0].Layout)
	assert.Equal(t, 6.0, p.Tiles[0].Duration)
}

func TestPart_GapAndDateRangeTransfer(t *testing.T) {
	input := `#EXT-X-DATERANGE:ID="d1",START-DATE="2024-01-01T00:00:00Z"` + "\n" +
		"#EXT-X-GAP\n" +
		`#EXT-X-PART:URI="p1.ts",DURATION=0.5,INDEPENDENT=YES` + "\n" +
		`#EXT-X-PART:URI="p2.ts",DURATION=0.5` + "\n" +
		"#EXTINF:1.0,\n" +
		"full.ts\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Segments, 1)
	s := p.Segments[0]
	require.Len(t, s.Parts, 2)

	assert.True(t, s.Parts[0].GapTag)
	assert.Equal(t, "YES", s.Parts[0].Independent)
	require.Len(t, s.Parts[0].DateRanges, 1)
	assert.Equal(t, "d1", s.Parts[0].DateRanges[0].ID)

	assert.False(t, s.Parts[1].GapTag)
	assert.Empty(t, s.Parts[1].DateRanges)

	// The part consumed both the pending daterange and the gap flag.
	assert.Empty(t, s.DateRanges)
	assert.False(t, s.GapTag)
}

func TestUnterminatedQuoteConsumedToEndOfLine(t *testing.T) {
	input := "#EXT-X-KEY:METHOD=AES-128,URI=\"unterminated\n" +
		"#EXTINF:4,\n" +
		"a.ts\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Keys, 1)
	// The opening quote never closes, so the value keeps it verbatim.
	assert.Equal(t, "\"unterminated", p.Keys[0].URI)
}

func TestUnknownTagAndStrayURIIgnored(t *testing.T) {
	input := "#EXT-X-BOGUS:whatever\n" +
		"# just a comment\n" +
		"stray.ts\n" +
		"#EXTINF:1,\n" +
		"a.ts\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Segments, 1)
	assert.Equal(t, "a.ts", p.Segments[0].URI)
}

func TestStreamInfClearsMediaSequencePresence(t *testing.T) {
	input := "#EXT-X-MEDIA-SEQUENCE:5\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=1000\n" +
		"v.m3u8\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	assert.True(t, p.IsVariant)
	assert.False(t, p.HasMediaSequence)
}

func TestMediaSequencePresenceTracked(t *testing.T) {
	p, err := ParseBytes([]byte("#EXT-X-MEDIA-SEQUENCE:0\n"))
	require.NoError(t, err)
	assert.True(t, p.HasMediaSequence)
	assert.Equal(t, int64(0), p.MediaSequence)

	p, err = ParseBytes([]byte("#EXTM3U\n"))
	require.NoError(t, err)
	assert.False(t, p.HasMediaSequence)
}

func TestMixedContentSegmentPathWins(t *testing.T) {
	input := "#EXT-X-STREAM-INF:BANDWIDTH=1000\n" +
		"#EXTINF:2,\n" +
		"seg.ts\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Segments, 1)
	assert.Equal(t, "seg.ts", p.Segments[0].URI)
	assert.Empty(t, p.Variants)
}

func TestByteRangeAndBitrateAttachBeforeExtinf(t *testing.T) {
	input := "#EXT-X-BITRATE:8000\n" +
		"#EXT-X-BYTERANGE:75232@0\n" +
		"#EXTINF:6,\n" +
		"a.ts\n"

	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Segments, 1)
	assert.Equal(t, 8000, p.Segments[0].Bitrate)
	assert.Equal(t, "75232@0", p.Segments[0].ByteRange)
	assert.Equal(t, 6.0, p.Segments[0].Duration)
}

func TestExtinfTitleKeepsInternalCommas(t *testing.T) {
	input := "#EXTINF:5.5, One, Two, Three\na.ts\n"
	p, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Len(t, p.Segments, 1)
	assert.Equal(t, 5.5, p.Segments[0].Duration)
	assert.Equal(t, "One, Two, Three", p.Segments[0].Title)
}
