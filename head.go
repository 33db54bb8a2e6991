package siteconf

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// HTMLAttrs returns the lang and dir attributes for the <html> element.
func HTMLAttrs(s Settings) templ.Attributes {
	dir := s.Dir
	if dir == "" {
		dir = DirLTR
	}
	return templ.Attributes{
		"lang": s.HTMLLang(),
		"dir":  dir,
	}
}

// SiteMeta returns the PageMeta for a site-level page such as the index.
func SiteMeta(s Settings) PageMeta {
	return PageMeta{
		Title:       s.Title,
		Description: s.Desc,
		URL:         BuildURL(s.Website),
		OGType:      "website",
		OGImage:     s.SiteOGImageURL(),
	}
}

// PostMeta returns the PageMeta for a post detail page.
func PostMeta(s Settings, p Post) PageMeta {
	desc := p.Description
	if desc == "" {
		desc = s.Desc
	}
	return PageMeta{
		Title:       p.Title + " | " + s.Title,
		Description: desc,
		URL:         BuildURL(s.Website, "posts", p.Slug),
		OGType:      "article",
		OGImage:     s.PostOGImageURL(p),
	}
}

// Head returns a templ.Component that writes the <head> meta block for meta.
// Empty meta fields fall back to the site-level values.
func Head(s Settings, meta PageMeta) templ.Component {
	site := SiteMeta(s)
	if meta.Title == "" {
		meta.Title = site.Title
	}
	if meta.Description == "" {
		meta.Description = site.Description
	}
	if meta.URL == "" {
		meta.URL = site.URL
	}
	if meta.OGType == "" {
		meta.OGType = site.OGType
	}
	if meta.OGImage == "" {
		meta.OGImage = site.OGImage
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<meta charset="UTF-8">`)
		writeTag(&b, "title", meta.Title)
		writeMeta(&b, "name", "title", meta.Title)
		writeMeta(&b, "name", "description", meta.Description)
		writeMeta(&b, "name", "author", s.Author)
		b.WriteString(`<link rel="canonical" href="` + templ.EscapeString(meta.URL) + `">`)
		writeMeta(&b, "property", "og:type", meta.OGType)
		writeMeta(&b, "property", "og:title", meta.Title)
		writeMeta(&b, "property", "og:description", meta.Description)
		writeMeta(&b, "property", "og:url", meta.URL)
		writeMeta(&b, "property", "og:image", meta.OGImage)
		writeMeta(&b, "property", "twitter:card", "summary_large_image")
		writeMeta(&b, "property", "twitter:image", meta.OGImage)
		b.WriteString(`<script type="application/ld+json">`)
		b.WriteString(WebsiteJsonLD(s))
		b.WriteString(`</script>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeTag(b *strings.Builder, tag, text string) {
	b.WriteString("<" + tag + ">" + templ.EscapeString(text) + "</" + tag + ">")
}

func writeMeta(b *strings.Builder, attr, key, content string) {
	if content == "" {
		return
	}
	b.WriteString(`<meta ` + attr + `="` + key + `" content="` + templ.EscapeString(content) + `">`)
}
