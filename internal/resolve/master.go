// Master playlist URI resolution: variants, I-frame/image variants, media
// renditions, session data, session keys, and the content-steering server URI all carry
// URIs that may be relative to the manifest's own location.
package resolve

import (
	"net/url"

	"github.com/arsovski/hlsparse/pkg/hls"
)

type masterResolver struct {
	baseURL *url.URL
}

func (r *masterResolver) resolve(p *hls.Playlist) {
	for i := range p.Variants {
		p.Variants[i].URI = resolveURL(r.baseURL, p.Variants[i].URI)
	}
	for i := range p.IFrameVariants {
		p.IFrameVariants[i].URI = resolveURL(r.baseURL, p.IFrameVariants[i].URI)
	}
	for i := range p.ImageVariants {
		p.ImageVariants[i].URI = resolveURL(r.baseURL, p.ImageVariants[i].URI)
	}
	for i := range p.Media {
		p.Media[i].URI = resolveURL(r.baseURL, p.Media[i].URI)
	}
	for i := range p.SessionData {
		p.SessionData[i].URI = resolveURL(r.baseURL, p.SessionData[i].URI)
	}
	for i := range p.SessionKeys {
		p.SessionKeys[i].URI = resolveURL(r.baseURL, p.SessionKeys[i].URI)
	}
	if p.HasContentSteering {
		p.ContentSteering.ServerURI = resolveURL(r.baseURL, p.ContentSteering.ServerURI)
	}
}
