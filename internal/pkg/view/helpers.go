package view

import (
	"regexp"
	"strings"
)

const excerptLimit = 160

var (
	schemeRe = regexp.MustCompile(`(?i)^https?://`)
	htmlTag  = regexp.MustCompile(`<[^>]*>`)
)

func trimBase(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}

// AbsoluteURL resolves a stored URL against base. URLs that already
// carry an http(s) scheme pass through unchanged; with no base
// configured the relative value is returned as-is rather than
// fabricating a malformed URL.
func AbsoluteURL(raw, base string) string {
	if raw == "" || schemeRe.MatchString(raw) {
		return raw
	}
	base = trimBase(base)
	if base == "" {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return base + raw
}

// MediaKind classifies a URL by file extension into image, video or
// unknown so clients can pick a renderer without a HEAD request.
func MediaKind(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	i := strings.LastIndexByte(url, '.')
	if i < 0 || strings.ContainsRune(url[i:], '/') {
		return "unknown"
	}
	switch strings.ToLower(url[i+1:]) {
	case "jpg", "jpeg", "png", "webp", "gif":
		return "image"
	case "mp4", "mov", "webm", "ogg":
		return "video"
	default:
		return "unknown"
	}
}

// Excerpt strips HTML tags, trims, and applies a hard cut at 160
// characters. The cut is intentionally not word-boundary aware and adds
// no ellipsis.
func Excerpt(s string) string {
	s = strings.TrimSpace(htmlTag.ReplaceAllString(s, ""))
	r := []rune(s)
	if len(r) > excerptLimit {
		return string(r[:excerptLimit])
	}
	return s
}

// ShortDescription picks the first non-empty candidate in preference
// order (curated, long description, card body) and excerpts it. Returns
// nil when nothing usable exists.
func ShortDescription(candidates ...string) *string {
	for _, c := range candidates {
		if v := Excerpt(c); v != "" {
			return &v
		}
	}
	return nil
}

// ClassifyLink buckets a link into none, external or internal. External
// links open in a new tab, everything else stays in the same tab.
func ClassifyLink(link string) LinkMeta {
	link = strings.TrimSpace(link)
	if link == "" {
		return LinkMeta{Kind: "none", Target: "same_tab"}
	}
	if schemeRe.MatchString(link) {
		return LinkMeta{Kind: "external", Target: "new_tab", URL: &link}
	}
	return LinkMeta{Kind: "internal", Target: "same_tab", URL: &link}
}

// AvailabilityStatus maps the course availability flag to its public
// status value.
func AvailabilityStatus(isAvailable bool) string {
	if isAvailable {
		return "available"
	}
	return "coming_soon"
}

// CanRegister reports whether a course accepts registrations. Both
// flags must hold; nothing else influences it.
func CanRegister(isActive, isAvailable bool) bool {
	return isActive && isAvailable
}

// AbsoluteURL resolves a stored path against the projector's base URL.
func (p *Projector) AbsoluteURL(raw string) string {
	return AbsoluteURL(raw, p.baseURL)
}

func (p *Projector) media(url, alt string) *Media {
	if strings.TrimSpace(url) == "" {
		return nil
	}
	return &Media{
		URL:  AbsoluteURL(url, p.baseURL),
		Alt:  alt,
		Kind: MediaKind(url),
	}
}
