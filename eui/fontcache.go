package eui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-text/typesetting/fontscan"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// faceSource is a parsed font plus its cmap, used to decide which source
// in a chain draws a rune.
type faceSource struct {
	name string
	src  *text.GoTextFaceSource
	cmap *sfnt.Font
}

var (
	regularFaceSource *faceSource
	boldFaceSource    *faceSource
	// fallbackSources are tried in order for runes the regular or bold
	// source lacks.
	fallbackSources []*faceSource

	faceCache     = map[float64]text.Face{}
	boldFaceCache = map[float64]text.Face{}
)

// textPresentation maps pictographs to symbols the bundled fallback
// carries. It applies only when no loaded font has the pictograph.
var textPresentation = map[rune]string{
	'🥇': "①",
	'🥈': "②",
	'🥉': "③",
	'🏆': "★",
	'⭐': "★",
}

// LoadDefaultFonts parses the Go font family as the regular and bold
// sources and M+ 1p as the first fallback, which carries the symbol and
// kana ranges the Go fonts lack.
func LoadDefaultFonts() error {
	regular, err := newFaceSource("Go Regular", goregular.TTF, 0)
	if err != nil {
		return fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := newFaceSource("Go Bold", gobold.TTF, 0)
	if err != nil {
		return fmt.Errorf("parse bold font: %w", err)
	}
	mplus, err := newFaceSource("M+ 1p", fonts.MPlus1pRegular_ttf, 0)
	if err != nil {
		return fmt.Errorf("parse fallback font: %w", err)
	}
	regularFaceSource = regular
	boldFaceSource = bold
	fallbackSources = []*faceSource{mplus}
	resetFaceCaches()
	return nil
}

func resetFaceCaches() {
	faceCache = map[float64]text.Face{}
	boldFaceCache = map[float64]text.Face{}
}

func isCollection(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == "ttcf"
}

func newFaceSource(name string, data []byte, index int) (*faceSource, error) {
	fs := &faceSource{name: name}
	if isCollection(data) {
		srcs, err := text.NewGoTextFaceSourcesFromCollection(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if index < 0 || index >= len(srcs) {
			return nil, fmt.Errorf("%s: no face %d in collection of %d", name, index, len(srcs))
		}
		coll, err := sfnt.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		if fs.cmap, err = coll.Font(index); err != nil {
			return nil, err
		}
		fs.src = srcs[index]
		return fs, nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if fs.cmap, err = sfnt.Parse(data); err != nil {
		return nil, err
	}
	fs.src = src
	return fs, nil
}

func (f *faceSource) glyph(r rune) sfnt.GlyphIndex {
	var buf sfnt.Buffer
	i, err := f.cmap.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return i
}

// AddFallbackFont appends a font to the fallback chain. data may be a
// single font or a collection, in which case index selects the face.
func AddFallbackFont(name string, data []byte, index int) error {
	fs, err := newFaceSource(name, data, index)
	if err != nil {
		return fmt.Errorf("font %s: %w", name, err)
	}
	fallbackSources = append(fallbackSources, fs)
	resetFaceCaches()
	return nil
}

// AddFontDir appends every .ttf, .otf and .ttc file in dir to the fallback
// chain. A missing directory adds nothing.
func AddFontDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	added := 0
	var errs []error
	for _, e := range entries {
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".ttf", ".otf", ".ttc":
		default:
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := AddFallbackFont(e.Name(), data, 0); err != nil {
			errs = append(errs, err)
			continue
		}
		added++
	}
	return added, errors.Join(errs...)
}

// AddSystemFallbacks scans the installed fonts and, for each rune of sample
// the chain cannot draw, appends the first system font that can. cacheDir
// holds the scan index; empty picks the platform default.
func AddSystemFallbacks(sample, cacheDir string) (int, error) {
	missing := Missing(sample)
	if len(missing) == 0 {
		return 0, nil
	}
	footprints, err := fontscan.SystemFonts(log.New(io.Discard, "", 0), cacheDir)
	if err != nil {
		return 0, fmt.Errorf("scan system fonts: %w", err)
	}
	added := 0
	tried := map[fontscan.Location]bool{}
	for _, r := range missing {
		if Covers(r) {
			continue
		}
		for _, fp := range footprints {
			// text/v2 rasterizes outlines, so bitmap emoji fonts draw nothing.
			if tried[fp.Location] || !fp.Runes.Contains(r) || strings.Contains(fp.Family, "color") {
				continue
			}
			tried[fp.Location] = true
			data, err := os.ReadFile(fp.Location.File)
			if err != nil {
				continue
			}
			if AddFallbackFont(filepath.Base(fp.Location.File), data, int(fp.Location.Index)) != nil {
				continue
			}
			added++
			if Covers(r) {
				break
			}
		}
	}
	return added, nil
}

// FallbackNames lists the fallback chain in lookup order.
func FallbackNames() []string {
	names := make([]string, len(fallbackSources))
	for i, fb := range fallbackSources {
		names[i] = fb.name
	}
	return names
}

// GlyphIndex is the glyph r maps to in the first regular or fallback source
// that has it, or 0 when none does.
func GlyphIndex(r rune) sfnt.GlyphIndex {
	if regularFaceSource != nil {
		if g := regularFaceSource.glyph(r); g != 0 {
			return g
		}
	}
	for _, fb := range fallbackSources {
		if g := fb.glyph(r); g != 0 {
			return g
		}
	}
	return 0
}

// Covers reports whether some loaded source draws r. Control characters and
// whitespace count as covered.
func Covers(r rune) bool {
	if r <= ' ' {
		return true
	}
	return GlyphIndex(r) != 0
}

// DisplayText replaces uncovered pictographs with their text presentation.
// Without loaded fonts s is returned unchanged.
func DisplayText(s string) string {
	if regularFaceSource == nil || !strings.ContainsFunc(s, needsSubstitute) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if needsSubstitute(r) {
			b.WriteString(textPresentation[r])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func needsSubstitute(r rune) bool {
	_, ok := textPresentation[r]
	return ok && !Covers(r)
}

// Missing lists the runes of s, after DisplayText, that no loaded source
// draws.
func Missing(s string) []rune {
	var out []rune
	for _, r := range DisplayText(s) {
		if !Covers(r) {
			out = append(out, r)
		}
	}
	return out
}

func buildFace(primary *faceSource, size float64) text.Face {
	faces := make([]text.Face, 0, 1+len(fallbackSources))
	faces = append(faces, &text.GoTextFace{Source: primary.src, Size: size})
	for _, fb := range fallbackSources {
		faces = append(faces, &text.GoTextFace{Source: fb.src, Size: size})
	}
	if len(faces) == 1 {
		return faces[0]
	}
	mf, err := text.NewMultiFace(faces...)
	if err != nil {
		return faces[0]
	}
	return mf
}

func textFace(size float64) text.Face {
	if regularFaceSource == nil {
		return nil
	}
	if f, ok := faceCache[size]; ok {
		return f
	}
	f := buildFace(regularFaceSource, size)
	faceCache[size] = f
	return f
}

func boldFace(size float64) text.Face {
	if boldFaceSource == nil {
		return textFace(size)
	}
	if f, ok := boldFaceCache[size]; ok {
		return f
	}
	f := buildFace(boldFaceSource, size)
	boldFaceCache[size] = f
	return f
}

// FaceFor resolves a Font request to a cached face chain, or nil before
// any font is loaded.
func FaceFor(f Font) text.Face {
	if f.Bold {
		return boldFace(f.Size)
	}
	return textFace(f.Size)
}

// measureWidth measures s with the face for f. Without a loaded font it
// falls back to a simple approximation so layout still works in tests.
func measureWidth(s string, f Font) float64 {
	face := FaceFor(f)
	if face == nil {
		// Approximate average advance as ~0.6x size per rune.
		return float64(len([]rune(s))) * (f.Size * 0.6)
	}
	w, _ := text.Measure(DisplayText(s), face, 0)
	return w
}

// ascent is the distance from the top of a line to its baseline.
func ascent(f Font) float64 {
	face := FaceFor(f)
	if face == nil {
		return f.Size * 0.8
	}
	return face.Metrics().HAscent
}
