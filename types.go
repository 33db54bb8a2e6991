package siteconf

import "time"

// Post is the subset of post frontmatter the settings helpers look at.
type Post struct {
	Slug         string
	Title        string
	Description  string
	FilePath     string // repository-relative source path, appended to EditPost.URL
	PubDatetime  time.Time
	ModDatetime  time.Time // zero when the post was never modified
	Draft        bool
	OGImage      string // per-post override for the social preview image
	Timezone     string // per-post override for Settings.Timezone
	HideEditPost bool
	Tags         []string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> block.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	OGImage     string
}

// EditLink is the resolved "edit this page" link for one post.
type EditLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Page is one page of a paginated post listing.
type Page struct {
	Number     int
	TotalPages int
	Posts      []Post
	PrevURL    string // empty on the first page
	NextURL    string // empty on the last page
}
