// Package locale picks the UI language and loads its message catalog.
// Message ids are the English strings, so English needs no catalog.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

//go:embed po/*.po
var catalogs embed.FS

// Supported lists the languages with a catalog, English first as the
// fallback.
var Supported = []language.Tag{
	language.English,
	language.Korean,
}

var matcher = language.NewMatcher(Supported)

// Match picks the supported language closest to pref. pref may be a BCP 47
// tag ("ko-KR") or a POSIX locale ("ko_KR.UTF-8"); anything unreadable is
// English.
func Match(pref string) language.Tag {
	pref = posixToBCP47(pref)
	if pref == "" {
		return language.English
	}
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.English
	}
	return Supported[idx]
}

// Detect reads the language from the usual environment variables.
func Detect() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" && v != "C" && v != "POSIX" {
			return Match(v)
		}
	}
	return language.English
}

func posixToBCP47(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}

// Load returns the catalog for tag. Languages without a catalog get an
// empty one, which echoes the English ids.
func Load(tag language.Tag) *gotext.Po {
	po := gotext.NewPo()
	base, _ := tag.Base()
	data, err := fs.ReadFile(catalogs, "po/"+base.String()+".po")
	if err != nil {
		if base.String() != "en" {
			log.Printf("locale: no catalog for %v", tag)
		}
		return po
	}
	po.Parse(data)
	return po
}

// LoadFile reads a catalog from disk, for translations shipped outside the
// binary.
func LoadFile(path string) (*gotext.Po, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}
