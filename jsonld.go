package siteconf

import (
	"encoding/json"
	"strings"
)

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using s.
func WebsiteJsonLD(s Settings) string {
	data := map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "WebSite",
		"name":       s.Title,
		"url":        BuildURL(s.Website),
		"inLanguage": s.HTMLLang(),
	}
	if s.Desc != "" {
		data["description"] = s.Desc
	}
	if s.Author != "" {
		data["author"] = person(s)
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(s Settings, post Post) string {
	postURL := BuildURL(s.Website, "posts", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Description,
		"image":         s.PostOGImageURL(post),
		"datePublished": post.PubDatetime.Format("2006-01-02T15:04:05Z07:00"),
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if !post.ModDatetime.IsZero() {
		data["dateModified"] = post.ModDatetime.Format("2006-01-02T15:04:05Z07:00")
	}
	if s.Author != "" {
		data["author"] = person(s)
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func person(s Settings) map[string]string {
	p := map[string]string{
		"@type": "Person",
		"name":  s.Author,
	}
	if s.Profile != "" {
		p["url"] = s.Profile
	}
	return p
}
