package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_YouTubeWatchURL(t *testing.T) {
	e := Resolve("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	assert.Equal(t, ProviderYouTube, e.Provider)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", e.EmbedURL)
}

func TestResolve_YouTubeWatchURLWithExtraParams(t *testing.T) {
	e := Resolve("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s")
	assert.Equal(t, ProviderYouTube, e.Provider)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", e.EmbedURL)
}

func TestResolve_YouTubeShortLink(t *testing.T) {
	e := Resolve("https://youtu.be/dQw4w9WgXcQ")
	assert.Equal(t, ProviderYouTube, e.Provider)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", e.EmbedURL)
}

func TestResolve_Vimeo(t *testing.T) {
	e := Resolve("https://vimeo.com/123456789")
	assert.Equal(t, ProviderVimeo, e.Provider)
	assert.Equal(t, "https://player.vimeo.com/video/123456789?autoplay=1", e.EmbedURL)
}

func TestResolve_VimeoTrailingSlash(t *testing.T) {
	e := Resolve("https://vimeo.com/123456789/")
	assert.Equal(t, ProviderVimeo, e.Provider)
	assert.Equal(t, "https://player.vimeo.com/video/123456789?autoplay=1", e.EmbedURL)
}

func TestResolve_Unsupported(t *testing.T) {
	for _, url := range []string{
		"https://example.com/video.mp4",
		"https://dailymotion.com/video/x7tgad0",
		"",
	} {
		e := Resolve(url)
		assert.Equal(t, ProviderUnsupported, e.Provider, "url %q", url)
		assert.Empty(t, e.EmbedURL, "url %q", url)
	}
}
