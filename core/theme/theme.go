// Package theme is the presentation bootstrap: named palettes shipped as
// embedded TOML assets, and the process-wide styles applied once before the
// first frame is drawn.
package theme

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

//go:embed themes/*.toml
var assets embed.FS

// DefaultName is the theme used when configuration names none.
const DefaultName = "mocha"

var (
	ErrThemeNotFound = errors.New("theme: not found")
	ErrInvalidTheme  = errors.New("theme: invalid asset")
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Palette holds the semantic colors a theme asset must define.
type Palette struct {
	Text    lipgloss.Color `mapstructure:"text"`
	Subtext lipgloss.Color `mapstructure:"subtext"`
	Overlay lipgloss.Color `mapstructure:"overlay"`
	Border  lipgloss.Color `mapstructure:"border"`
	Surface lipgloss.Color `mapstructure:"surface"`
	Base    lipgloss.Color `mapstructure:"base"`
	Mantle  lipgloss.Color `mapstructure:"mantle"`
	Accent  lipgloss.Color `mapstructure:"accent"`
	Brand   lipgloss.Color `mapstructure:"brand"`
	Focus   lipgloss.Color `mapstructure:"focus"`
	Success lipgloss.Color `mapstructure:"success"`
	Error   lipgloss.Color `mapstructure:"error"`
	Warning lipgloss.Color `mapstructure:"warning"`
	Info    lipgloss.Color `mapstructure:"info"`
}

// Colors returns every palette entry keyed by its asset name.
func (p Palette) Colors() map[string]lipgloss.Color {
	return map[string]lipgloss.Color{
		"text": p.Text, "subtext": p.Subtext, "overlay": p.Overlay, "border": p.Border,
		"surface": p.Surface, "base": p.Base, "mantle": p.Mantle, "accent": p.Accent,
		"brand": p.Brand, "focus": p.Focus, "success": p.Success, "error": p.Error,
		"warning": p.Warning, "info": p.Info,
	}
}

type Theme struct {
	Name    string  `mapstructure:"name"`
	Dark    bool    `mapstructure:"dark"`
	Palette Palette `mapstructure:"palette"`
}

// Names lists the embedded theme assets.
func Names() []string {
	entries, err := fs.ReadDir(assets, "themes")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".toml" {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(out)
	return out
}

// Load reads the named theme asset. A missing asset is a startup failure for
// the caller; there is no fallback palette.
func Load(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultName
	}
	data, err := assets.ReadFile(path.Join("themes", name+".toml"))
	if err != nil {
		return Theme{}, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return Parse(data)
}

// Parse decodes a TOML theme asset and validates its palette.
func Parse(data []byte) (Theme, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	var t Theme
	if err := v.Unmarshal(&t); err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	if strings.TrimSpace(t.Name) == "" {
		return Theme{}, fmt.Errorf("%w: missing name", ErrInvalidTheme)
	}
	for key, c := range t.Palette.Colors() {
		if !hexColor.MatchString(string(c)) {
			return Theme{}, fmt.Errorf("%w: %s color %q in %q", ErrInvalidTheme, key, string(c), t.Name)
		}
	}
	return t, nil
}
