package media

import (
	"encoding/json"
	"regexp"
	"strings"
)

// RawLink is one unresolved video entry from a project config. The JSON form
// is either a bare URL string or an object {"url": ..., "kind": ...}; the two
// forms resolve differently, so Bare records which one was seen.
type RawLink struct {
	URL  string
	Kind VideoKind
	// Bare is true when the entry was a plain string rather than an object.
	Bare bool
}

// UnmarshalJSON accepts both the string and the object form.
func (l *RawLink) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.URL = s
		l.Kind = ""
		l.Bare = true
		return nil
	}

	var obj struct {
		URL  string    `json:"url"`
		Kind VideoKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	l.URL = obj.URL
	l.Kind = obj.Kind
	l.Bare = false
	return nil
}

var (
	youtubeID = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([A-Za-z0-9_-]{6,})`)
	vimeoID   = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// EmbedURL extracts a hosted-video identifier from a raw URL and returns the
// canonical embeddable URL for it. URLs that already have the canonical embed
// shape pass through unchanged. The second return value is false when no
// hosted video is recognized.
func EmbedURL(raw string) (string, bool) {
	u := strings.TrimSpace(raw)
	if u == "" {
		return "", false
	}
	if m := youtubeID.FindStringSubmatch(u); m != nil {
		return "https://www.youtube.com/embed/" + m[1], true
	}
	if m := vimeoID.FindStringSubmatch(u); m != nil {
		return "https://player.vimeo.com/video/" + m[1], true
	}
	if strings.Contains(u, "youtube.com/embed/") || strings.Contains(u, "player.vimeo.com/video/") {
		return u, true
	}
	return "", false
}

// ResolveLink normalizes one config-declared video entry.
//
// A bare string entry must yield an embed URL; otherwise it is dropped (the
// second return value is false — an unrecognized link is not an error). An
// object entry falls back to its raw URL when extraction fails, and its kind
// defaults to "embed" when unset.
func ResolveLink(l RawLink) (VideoRef, bool) {
	u := strings.TrimSpace(l.URL)
	if u == "" {
		return VideoRef{}, false
	}

	embed, ok := EmbedURL(u)
	if l.Bare {
		if !ok {
			return VideoRef{}, false
		}
		return VideoRef{Kind: VideoEmbed, URL: embed}, true
	}

	if !ok {
		embed = u
	}
	kind := l.Kind
	if kind == "" {
		kind = VideoEmbed
	}
	return VideoRef{Kind: kind, URL: embed}, true
}

// FileRef builds the reference for a locally discovered video file. Local
// files never pass through embed extraction.
func FileRef(slug string, phase Phase, name string) VideoRef {
	return VideoRef{
		Kind: VideoFile,
		URL:  "/projects/" + slug + "/video/" + string(phase) + "/" + name,
	}
}
