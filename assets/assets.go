// Package assets resolves the resources a render needs before it starts: the
// bold and medium font families and the decoded background and logo images.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/webp"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/fonts"
	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/layout"
)

// Resource can be provided either by Bytes or by Path. Font paths may also name a
// built-in font ("builtin:go-bold").
type Resource struct {
	Bytes []byte
	Path  string
}

// Options lists the resources to load. Relative paths are resolved against BaseDir.
type Options struct {
	BaseDir    string
	BoldFont   Resource
	MediumFont Resource
	Background Resource
	Logo       Resource
}

// Bundle holds everything the renderer needs. Fonts are keyed by family name.
type Bundle struct {
	Fonts      map[string][]byte
	Background image.Image
	Logo       image.Image
}

// DefaultOptions uses the built-in Go fonts and the conventional image locations.
func DefaultOptions(baseDir string) Options {
	return Options{
		BaseDir:    baseDir,
		BoldFont:   Resource{Path: "builtin:go-bold"},
		MediumFont: Resource{Path: "builtin:go-medium"},
		Background: Resource{Path: "images/background.webp"},
		Logo:       Resource{Path: "images/logo.webp"},
	}
}

// Load reads and decodes every resource. Nothing is retried: a missing or
// undecodable asset fails the whole load.
func Load(opts Options) (*Bundle, error) {
	bold, err := loadFont(opts.BaseDir, opts.BoldFont)
	if err != nil {
		return nil, fmt.Errorf("bold font: %w", err)
	}
	medium, err := loadFont(opts.BaseDir, opts.MediumFont)
	if err != nil {
		return nil, fmt.Errorf("medium font: %w", err)
	}
	background, err := DecodeImage(opts.BaseDir, opts.Background)
	if err != nil {
		return nil, fmt.Errorf("background image: %w", err)
	}
	logo, err := DecodeImage(opts.BaseDir, opts.Logo)
	if err != nil {
		return nil, fmt.Errorf("logo image: %w", err)
	}
	return &Bundle{
		Fonts: map[string][]byte{
			layout.FamilyBold:   bold,
			layout.FamilyMedium: medium,
		},
		Background: background,
		Logo:       logo,
	}, nil
}

func loadFont(baseDir string, res Resource) ([]byte, error) {
	if len(res.Bytes) > 0 {
		return res.Bytes, nil
	}
	if res.Path == "" {
		return nil, fmt.Errorf("missing src")
	}
	if fonts.IsBuiltin(res.Path) {
		return fonts.Load(res.Path)
	}
	return os.ReadFile(resolve(baseDir, res.Path))
}

// DecodeImage decodes a webp, png, jpeg or gif resource.
func DecodeImage(baseDir string, res Resource) (image.Image, error) {
	data := res.Bytes
	if len(data) == 0 {
		if res.Path == "" {
			return nil, fmt.Errorf("missing src")
		}
		var err error
		data, err = os.ReadFile(resolve(baseDir, res.Path))
		if err != nil {
			return nil, err
		}
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", describe(res), err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%s image %s is empty", format, describe(res))
	}
	return img, nil
}

func resolve(baseDir, path string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func describe(res Resource) string {
	if res.Path != "" {
		return res.Path
	}
	return fmt.Sprintf("<%d bytes>", len(res.Bytes))
}
