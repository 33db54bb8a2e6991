package siteconf

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"
)

// ErrEditDisabled is returned when an edit link is requested but editing is off.
var ErrEditDisabled = errors.New("siteconf: edit link disabled")

// dateLayout is how post dates are shown on listing and detail pages.
const dateLayout = "02 Jan, 2006"

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// resolveURL resolves ref against base. Absolute refs are returned unchanged.
func resolveURL(base, ref string) string {
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if r.IsAbs() {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// HTMLLang returns the html lang attribute, falling back to DefaultLang.
func (s Settings) HTMLLang() string {
	if l := strings.TrimSpace(s.Lang); l != "" {
		return l
	}
	return DefaultLang
}

// Location loads the site's reference timezone.
func (s Settings) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("siteconf: load timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// ScheduledMargin returns ScheduledPostMargin as a duration.
func (s Settings) ScheduledMargin() time.Duration {
	return time.Duration(s.ScheduledPostMargin) * time.Millisecond
}

// FormatDate renders t in the timezone tz, or the site timezone when tz is
// empty. Unknown timezones fall back to UTC.
func (s Settings) FormatDate(t time.Time, tz string) string {
	if tz == "" {
		tz = s.Timezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dateLayout)
}

// EditLink builds the edit link for a repository-relative file path.
func (s Settings) EditLink(filePath string) (EditLink, error) {
	if !s.EditPost.Enabled {
		return EditLink{}, ErrEditDisabled
	}
	rel := strings.TrimPrefix(strings.TrimSpace(filePath), "./")
	rel = strings.TrimLeft(rel, "/")
	return EditLink{
		Text: s.EditPost.Text,
		URL:  s.EditPost.URL + rel,
	}, nil
}

// PostEditLink is EditLink for a post, honouring the post's opt-out.
func (s Settings) PostEditLink(p Post) (EditLink, bool) {
	if p.HideEditPost {
		return EditLink{}, false
	}
	link, err := s.EditLink(p.FilePath)
	if err != nil {
		return EditLink{}, false
	}
	return link, true
}

// SiteOGImageURL returns the absolute URL of the default social preview image.
func (s Settings) SiteOGImageURL() string {
	img := s.OGImage
	if img == "" {
		img = "og.png"
	}
	return resolveURL(s.Website, img)
}

// PostOGImageURL picks the social preview for a post: its own image, then a
// generated per-post image when DynamicOGImage is set, then the site default.
func (s Settings) PostOGImageURL(p Post) string {
	if p.OGImage != "" {
		return resolveURL(s.Website, p.OGImage)
	}
	if s.DynamicOGImage {
		slug := p.Slug
		if slug == "" {
			slug = Slugify(p.Title)
		}
		if slug != "" {
			return resolveURL(s.Website, "/posts/"+slug+"/index.png")
		}
	}
	return s.SiteOGImageURL()
}
