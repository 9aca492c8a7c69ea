// Package media recognizes the two supported third-party video hosting
// patterns and produces embeddable player URLs. Unrecognized URLs are
// reported as unsupported rather than guessed at.
package media

import "strings"

// Provider identifies a recognized video host.
type Provider string

const (
	ProviderYouTube     Provider = "youtube"
	ProviderVimeo       Provider = "vimeo"
	ProviderUnsupported Provider = "unsupported"
)

// Embed describes how a video URL should be rendered.
type Embed struct {
	Provider Provider `json:"provider"`
	// EmbedURL is empty when the provider is unsupported.
	EmbedURL string `json:"embedUrl,omitempty"`
}

// Resolve classifies url and builds its player embed URL.
func Resolve(url string) Embed {
	switch {
	case strings.Contains(url, "youtube.com"), strings.Contains(url, "youtu.be"):
		return Embed{
			Provider: ProviderYouTube,
			EmbedURL: "https://www.youtube.com/embed/" + youtubeID(url) + "?autoplay=1",
		}
	case strings.Contains(url, "vimeo.com"):
		return Embed{
			Provider: ProviderVimeo,
			EmbedURL: "https://player.vimeo.com/video/" + lastSegment(url) + "?autoplay=1",
		}
	}
	return Embed{Provider: ProviderUnsupported}
}

// youtubeID extracts the video id from watch URLs (?v=) and short links.
func youtubeID(url string) string {
	if _, after, found := strings.Cut(url, "v="); found {
		if id, _, _ := strings.Cut(after, "&"); id != "" {
			return id
		}
	}
	return lastSegment(url)
}

func lastSegment(url string) string {
	url = strings.TrimSuffix(url, "/")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		url = url[i+1:]
	}
	if id, _, _ := strings.Cut(url, "?"); id != "" {
		return id
	}
	return url
}
