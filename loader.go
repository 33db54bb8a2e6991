package siteconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides: SITE_TITLE, SITE_EDITPOST_ENABLED.
// A variable set to the empty string counts, so SITE_LANG= clears lang.
const EnvPrefix = "SITE"

// DefaultConfigName is the settings file searched for in "." when Load is
// given no explicit path (site.yaml, site.json or site.toml).
const DefaultConfigName = "site"

// Load builds the settings record once at startup: Default, then the
// settings file, then SITE_ environment variables. The result is validated.
// An explicit path that cannot be read is an error; a missing default file
// is not.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v, Default())

	explicit := path != ""
	if !explicit {
		path = findDefaultFile()
	}
	if path != "" {
		f, err := ParseFormat(filepath.Ext(path))
		if err != nil {
			return Settings{}, err
		}
		v.SetConfigFile(path)
		v.SetConfigType(string(f))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("siteconf: read settings: %w", err)
		}
		log.Infof("siteconf: using settings file %s", v.ConfigFileUsed())
	} else {
		log.Infof("siteconf: no %s settings file found, using defaults and environment", DefaultConfigName)
	}

	var s Settings
	if err := v.UnmarshalExact(&s); err != nil {
		return Settings{}, fmt.Errorf("siteconf: decode settings: %w", err)
	}
	if err := Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// findDefaultFile returns the first site.{yaml,yml,json,toml} in ".", or "".
func findDefaultFile() string {
	for _, ext := range []string{".yaml", ".yml", ".json", ".toml"} {
		name := DefaultConfigName + ext
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// setDefaults registers every key of s so AutomaticEnv can see it.
func setDefaults(v *viper.Viper, s Settings) {
	v.SetDefault("website", s.Website)
	v.SetDefault("author", s.Author)
	v.SetDefault("profile", s.Profile)
	v.SetDefault("desc", s.Desc)
	v.SetDefault("title", s.Title)
	v.SetDefault("ogImage", s.OGImage)
	v.SetDefault("lightAndDarkMode", s.LightAndDarkMode)
	v.SetDefault("postPerIndex", s.PostPerIndex)
	v.SetDefault("postPerPage", s.PostPerPage)
	v.SetDefault("scheduledPostMargin", s.ScheduledPostMargin)
	v.SetDefault("showArchives", s.ShowArchives)
	v.SetDefault("showBackButton", s.ShowBackButton)
	v.SetDefault("editPost.enabled", s.EditPost.Enabled)
	v.SetDefault("editPost.text", s.EditPost.Text)
	v.SetDefault("editPost.url", s.EditPost.URL)
	v.SetDefault("dynamicOgImage", s.DynamicOGImage)
	v.SetDefault("dir", s.Dir)
	v.SetDefault("lang", s.Lang)
	v.SetDefault("timezone", s.Timezone)
}
