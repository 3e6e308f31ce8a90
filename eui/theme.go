package eui

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

//go:embed themes/palettes/*.json
var embeddedThemes embed.FS

// Palette is the colour set the overlay host draws with. MarbleLightness is
// the HSL lightness percent used for marble rows; RankStroke outlines rank
// text and is optional.
type Palette struct {
	Name            string
	MarbleLightness float64
	RankStroke      *Color
	Background      Color
	Text            Color
	Toast           Color
}

type paletteFile struct {
	Comment         string            `json:"Comment"`
	Colors          map[string]string `json:"Colors"`
	MarbleLightness float64           `json:"MarbleLightness"`
	RankStroke      string            `json:"RankStroke"`
	Background      string            `json:"Background"`
	Text            string            `json:"Text"`
	Toast           string            `json:"Toast"`
}

// defaultPalette fills in anything a palette file leaves out.
var defaultPalette = Palette{
	Name:            "Dark",
	MarbleLightness: 75,
	Background:      NewColor(0x10, 0x12, 0x18, 0xff),
	Text:            NewColor(255, 255, 255, 255),
	Toast:           NewColor(0, 0, 0, 0xb3),
}

// resolveColor recursively resolves string references to colors after the
// palette JSON has been parsed. Color strings may reference other named colors
// from the same file.
func resolveColor(s string, colors map[string]string, seen map[string]bool) (Color, error) {
	s = strings.TrimSpace(s)
	key := strings.ToLower(s)
	if c, ok := namedColors[key]; ok {
		return c, nil
	}
	if val, ok := colors[key]; ok {
		if seen[key] {
			return Color{}, fmt.Errorf("color reference cycle for %s", key)
		}
		seen[key] = true
		c, err := resolveColor(val, colors, seen)
		if err != nil {
			return Color{}, err
		}
		namedColors[key] = c
		return c, nil
	}
	var c Color
	if err := c.UnmarshalJSON([]byte(strconv.Quote(s))); err != nil {
		return Color{}, err
	}
	return c, nil
}

// LoadPalette reads a palette JSON file from themes/palettes, falling back to
// the palettes compiled into the binary.
func LoadPalette(name string) (*Palette, error) {
	// Try local filesystem first so palettes can be edited without a rebuild.
	file := filepath.Join("themes", "palettes", name+".json")
	data, err := os.ReadFile(file)
	if err != nil {
		// Fallback to embedded palettes; embed paths must use forward slashes
		data, err = embeddedThemes.ReadFile(path.Join("themes", "palettes", name+".json"))
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", name, err)
		}
	}
	return parsePalette(name, data)
}

func parsePalette(name string, data []byte) (*Palette, error) {
	var pf paletteFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("palette %s: %w", name, err)
	}

	// Reset named colors
	resetNamedColors()
	colors := make(map[string]string, len(pf.Colors))
	for n, v := range pf.Colors {
		colors[strings.ToLower(n)] = v
	}
	for n, v := range colors {
		c, err := resolveColor(v, colors, map[string]bool{n: true})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n, err)
		}
		namedColors[n] = c
	}

	p := defaultPalette
	p.Name = name
	if pf.MarbleLightness > 0 {
		p.MarbleLightness = clamp(pf.MarbleLightness, 0, 100)
	}
	fields := []struct {
		src string
		dst *Color
	}{
		{pf.Background, &p.Background},
		{pf.Text, &p.Text},
		{pf.Toast, &p.Toast},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		c, err := resolveColor(f.src, colors, map[string]bool{})
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", name, err)
		}
		*f.dst = c
	}
	if pf.RankStroke != "" {
		c, err := resolveColor(pf.RankStroke, colors, map[string]bool{})
		if err != nil {
			return nil, fmt.Errorf("palette %s: RankStroke: %w", name, err)
		}
		p.RankStroke = &c
	}
	return &p, nil
}

// ListPalettes returns the sorted names of the embedded palettes and any
// found on disk.
func ListPalettes() ([]string, error) {
	seen := map[string]bool{}
	entries, err := fs.ReadDir(embeddedThemes, "themes/palettes")
	if err != nil {
		return nil, err
	}
	if local, err := os.ReadDir(filepath.Join("themes", "palettes")); err == nil {
		entries = append(entries, local...)
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
