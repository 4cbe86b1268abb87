// Media playlist URI resolution: segment, key, map, part, rendition-report
// and preload-hint URIs.
package resolve

import (
	"net/url"

	"github.com/arsovski/hlsparse/pkg/hls"
)

type mediaResolver struct {
	baseURL *url.URL
}

func (r *mediaResolver) resolve(p *hls.Playlist) {
	for i := range p.Keys {
		p.Keys[i].URI = resolveURL(r.baseURL, p.Keys[i].URI)
	}
	for i := range p.SessionKeys {
		p.SessionKeys[i].URI = resolveURL(r.baseURL, p.SessionKeys[i].URI)
	}
	for i := range p.Maps {
		p.Maps[i].URI = resolveURL(r.baseURL, p.Maps[i].URI)
	}
	for i := range p.Segments {
		s := &p.Segments[i]
		s.URI = resolveURL(r.baseURL, s.URI)
		for j := range s.Parts {
			s.Parts[j].URI = resolveURL(r.baseURL, s.Parts[j].URI)
		}
	}
	for i := range p.RenditionReports {
		p.RenditionReports[i].URI = resolveURL(r.baseURL, p.RenditionReports[i].URI)
	}
	for i := range p.PreloadHints {
		p.PreloadHints[i].URI = resolveURL(r.baseURL, p.PreloadHints[i].URI)
	}
	for i := range p.Tiles {
		p.Tiles[i].URI = resolveURL(r.baseURL, p.Tiles[i].URI)
	}
}
