// Package i18n holds the runner's user-facing strings as gettext catalogs.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Message IDs.
const (
	HUDScore     = "HUD_SCORE"     // %d orbs
	HintControls = "HINT_CONTROLS"
	IntroTitle   = "INTRO_TITLE"
	IntroStart   = "INTRO_START"
	PausedTitle  = "PAUSED_TITLE"
	PausedResume = "PAUSED_RESUME"
	Loading      = "LOADING"
	PhaseLabel   = "PHASE_LABEL" // %d of %d
	LinksHeading = "LINKS_HEADING"
	QuitHint     = "QUIT_HINT"
)

// DefaultLang is used when a requested catalog does not exist.
const DefaultLang = "en"

const localesSubdir = "locales"

//go:embed locales/*.po
var locales embed.FS

// Catalog resolves message IDs for one language.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Load returns the catalog for lang. Region suffixes are ignored ("es_MX"
// loads "es") and unknown languages fall back to English.
func Load(lang string) (*Catalog, error) {
	base := normalize(lang)
	data, err := fs.ReadFile(locales, localesSubdir+"/"+base+".po")
	if err != nil {
		base = DefaultLang
		data, err = fs.ReadFile(locales, localesSubdir+"/"+DefaultLang+".po")
		if err != nil {
			return nil, fmt.Errorf("i18n: default catalog missing: %w", err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{lang: base, po: po}, nil
}

// MustLoad is Load for callers that only pass known languages.
func MustLoad(lang string) *Catalog {
	c, err := Load(lang)
	if err != nil {
		panic(err)
	}
	return c
}

func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" {
		return DefaultLang
	}
	return lang
}

// Lang returns the language actually loaded.
func (c *Catalog) Lang() string {
	if c == nil {
		return DefaultLang
	}
	return c.lang
}

// Get translates id. Messages with verbs are formatted by the caller.
// A nil catalog returns the ID itself.
func (c *Catalog) Get(id string) string {
	if c == nil || c.po == nil {
		return id
	}
	return c.po.Get(id)
}

// Languages lists the embedded catalogs.
func Languages() []string {
	entries, err := locales.ReadDir(localesSubdir)
	if err != nil {
		return []string{DefaultLang}
	}
	var langs []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			langs = append(langs, name)
		}
	}
	sort.Strings(langs)
	return langs
}
