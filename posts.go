package siteconf

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrPageNotFound is returned by Paginate for a page number outside the listing.
var ErrPageNotFound = errors.New("siteconf: page not found")

// IsPublished reports whether a post dated pubDate is listed at now. Posts
// dated less than ScheduledPostMargin into the future already count as
// published; anything later is scheduled.
func (s Settings) IsPublished(pubDate, now time.Time, draft bool) bool {
	if draft {
		return false
	}
	return now.After(pubDate.Add(-s.ScheduledMargin()))
}

// VisiblePosts returns the published posts at now, newest first. A post's
// ModDatetime takes precedence over its PubDatetime for ordering.
func (s Settings) VisiblePosts(posts []Post, now time.Time) []Post {
	visible := make([]Post, 0, len(posts))
	for _, p := range posts {
		if s.IsPublished(p.PubDatetime, now, p.Draft) {
			visible = append(visible, p)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return sortTime(visible[i]).After(sortTime(visible[j]))
	})
	return visible
}

func sortTime(p Post) time.Time {
	if !p.ModDatetime.IsZero() {
		return p.ModDatetime
	}
	return p.PubDatetime
}

// IndexPosts returns the posts shown on the home index. A negative
// PostPerIndex shows none.
func (s Settings) IndexPosts(posts []Post, now time.Time) []Post {
	visible := s.VisiblePosts(posts, now)
	if s.PostPerIndex < 0 {
		return visible[:0]
	}
	if s.PostPerIndex < len(visible) {
		visible = visible[:s.PostPerIndex]
	}
	return visible
}

// TotalPages returns the number of listing pages for n posts. There is always
// at least one page; a PostPerPage of zero puts everything on it.
func (s Settings) TotalPages(n int) int {
	if s.PostPerPage <= 0 || n == 0 {
		return 1
	}
	return (n + s.PostPerPage - 1) / s.PostPerPage
}

// Paginate returns page number page (1-based) of posts. basePath is the
// listing root, e.g. "/posts/"; page 1 lives at basePath and page n at
// basePath + "n/".
func (s Settings) Paginate(posts []Post, page int, basePath string) (Page, error) {
	total := s.TotalPages(len(posts))
	if page < 1 || page > total {
		return Page{}, ErrPageNotFound
	}
	start, end := 0, len(posts)
	if s.PostPerPage > 0 {
		start = (page - 1) * s.PostPerPage
		if e := start + s.PostPerPage; e < end {
			end = e
		}
	}
	p := Page{
		Number:     page,
		TotalPages: total,
		Posts:      posts[start:end],
	}
	if page > 1 {
		p.PrevURL = pageURL(basePath, page-1)
	}
	if page < total {
		p.NextURL = pageURL(basePath, page+1)
	}
	return p, nil
}

func pageURL(basePath string, n int) string {
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	if n == 1 {
		return basePath
	}
	return basePath + strconv.Itoa(n) + "/"
}
