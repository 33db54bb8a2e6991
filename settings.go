// Package siteconf holds the site-wide settings record for a personal blog
// and the read-only helpers its renderers use to project it into pages.
//
// The record is a constant. Default returns a fresh copy on every call, so
// callers may read and pass it around freely but never change the shared value.
package siteconf

// Settings is the site settings record. Every field is always present; Lang
// may be empty, in which case renderers fall back to "en".
type Settings struct {
	Website             string   `json:"website" yaml:"website" toml:"website" mapstructure:"website" validate:"required,url"`
	Author              string   `json:"author" yaml:"author" toml:"author" mapstructure:"author"`
	Profile             string   `json:"profile" yaml:"profile" toml:"profile" mapstructure:"profile" validate:"required,url"`
	Desc                string   `json:"desc" yaml:"desc" toml:"desc" mapstructure:"desc"`
	Title               string   `json:"title" yaml:"title" toml:"title" mapstructure:"title"`
	OGImage             string   `json:"ogImage" yaml:"ogImage" toml:"ogImage" mapstructure:"ogImage"`
	LightAndDarkMode    bool     `json:"lightAndDarkMode" yaml:"lightAndDarkMode" toml:"lightAndDarkMode" mapstructure:"lightAndDarkMode"`
	PostPerIndex        int      `json:"postPerIndex" yaml:"postPerIndex" toml:"postPerIndex" mapstructure:"postPerIndex" validate:"gte=0"`
	PostPerPage         int      `json:"postPerPage" yaml:"postPerPage" toml:"postPerPage" mapstructure:"postPerPage" validate:"gte=0"`
	ScheduledPostMargin int64    `json:"scheduledPostMargin" yaml:"scheduledPostMargin" toml:"scheduledPostMargin" mapstructure:"scheduledPostMargin" validate:"gte=0"` // milliseconds
	ShowArchives        bool     `json:"showArchives" yaml:"showArchives" toml:"showArchives" mapstructure:"showArchives"`
	ShowBackButton      bool     `json:"showBackButton" yaml:"showBackButton" toml:"showBackButton" mapstructure:"showBackButton"`
	EditPost            EditPost `json:"editPost" yaml:"editPost" toml:"editPost" mapstructure:"editPost"`
	DynamicOGImage      bool     `json:"dynamicOgImage" yaml:"dynamicOgImage" toml:"dynamicOgImage" mapstructure:"dynamicOgImage"`
	Dir                 string   `json:"dir" yaml:"dir" toml:"dir" mapstructure:"dir" validate:"oneof=ltr rtl auto"`
	Lang                string   `json:"lang" yaml:"lang" toml:"lang" mapstructure:"lang" validate:"html_lang"`
	Timezone            string   `json:"timezone" yaml:"timezone" toml:"timezone" mapstructure:"timezone" validate:"required,timezone"`
}

// EditPost controls the "edit this page" link shown on post pages. URL is a
// prefix; the post's repository-relative file path is appended to it.
type EditPost struct {
	Enabled bool   `json:"enabled" yaml:"enabled" toml:"enabled" mapstructure:"enabled"`
	Text    string `json:"text" yaml:"text" toml:"text" mapstructure:"text"`
	URL     string `json:"url" yaml:"url" toml:"url" mapstructure:"url" validate:"omitempty,url"`
}

// Text directions accepted in Settings.Dir.
const (
	DirLTR  = "ltr"
	DirRTL  = "rtl"
	DirAuto = "auto"
)

// DefaultLang is used for the html lang attribute when Settings.Lang is empty.
const DefaultLang = "en"

// Default returns the site's settings record.
func Default() Settings {
	return Settings{
		Website:             "https://graceliying82.github.io/",
		Author:              "Grace Li",
		Profile:             "https://graceliying82.github.io/",
		Desc:                "Grace Li's Technical Blog.",
		Title:               "Grace Li",
		OGImage:             "astropaper-og.jpg",
		LightAndDarkMode:    true,
		PostPerIndex:        4,
		PostPerPage:         4,
		ScheduledPostMargin: 15 * 60 * 1000, // 15 minutes
		ShowArchives:        true,
		ShowBackButton:      true,
		EditPost: EditPost{
			Enabled: true,
			Text:    "Edit page",
			URL:     "https://github.com/Graceliying82/graceliying82.github.io/edit/main/",
		},
		DynamicOGImage: true,
		Dir:            DirLTR,
		Lang:           "en",
		Timezone:       "America/New_York",
	}
}
