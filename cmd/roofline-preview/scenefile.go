package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lumina-lights/roofline/effect"
	"github.com/lumina-lights/roofline/pattern"
	"github.com/lumina-lights/roofline/render"
	"github.com/lumina-lights/roofline/scene"
	"github.com/lumina-lights/roofline/segment"
	"github.com/lumina-lights/roofline/trace"
)

// sceneFile mirrors the plain-data snapshot the Lumina app exports:
// configuration, template, effect, and optional traced path
type sceneFile struct {
	Configuration struct {
		ID       string        `json:"id"`
		Name     string        `json:"name"`
		Segments []segmentFile `json:"segments"`
	} `json:"configuration"`
	Template templateFile `json:"template"`
	Effect   string       `json:"effect"`
	Path     []pointFile  `json:"path"`
}

type segmentFile struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	PixelCount         int      `json:"pixelCount"`
	Type               string   `json:"type"`
	AnchorPixels       []int    `json:"anchorPixels"`
	AnchorLedCount     int      `json:"anchorLedCount"`
	Direction          string   `json:"direction"`
	ArchitecturalRole  string   `json:"architecturalRole"`
	IsConnectedToPrev  bool     `json:"isConnectedToPrevious"`
	Level              int      `json:"level"`
	AdjacentSegmentIds []string `json:"adjacentSegmentIds"`
}

type templateFile struct {
	TemplateType   string  `json:"templateType"`
	AnchorColor    string  `json:"anchorColor"`
	SpacedColor    string  `json:"spacedColor"`
	SpacingCount   int     `json:"spacingCount"`
	AnchorAlwaysOn bool    `json:"anchorAlwaysOn"`
	Speed          float64 `json:"speed"`
	Intensity      float64 `json:"intensity"`
	SecondaryColor string  `json:"secondaryColor"`
}

type pointFile struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func loadScene(path string) (scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scene.Scene{}, err
	}
	var sf sceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return scene.Scene{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return sf.toScene()
}

func (sf sceneFile) toScene() (scene.Scene, error) {
	segments := make([]segment.Segment, len(sf.Configuration.Segments))
	for i, s := range sf.Configuration.Segments {
		typ, err := parseSegmentType(s.Type)
		if err != nil {
			return scene.Scene{}, fmt.Errorf("segment %s: %w", s.ID, err)
		}
		dir := segment.DirectionForward
		if s.Direction == "reverse" {
			dir = segment.DirectionReverse
		}
		segments[i] = segment.Segment{
			ID:                  s.ID,
			Name:                s.Name,
			PixelCount:          s.PixelCount,
			Type:                typ,
			AnchorPixels:        s.AnchorPixels,
			AnchorLedCount:      s.AnchorLedCount,
			Direction:           dir,
			ArchitecturalRole:   s.ArchitecturalRole,
			ConnectedToPrevious: s.IsConnectedToPrev,
			Level:               s.Level,
			AdjacentSegmentIDs:  s.AdjacentSegmentIds,
		}
	}

	tpl, err := sf.Template.toTemplate()
	if err != nil {
		return scene.Scene{}, err
	}
	kind, err := parseEffect(sf.Effect)
	if err != nil {
		return scene.Scene{}, err
	}

	var path []trace.Point
	for _, p := range sf.Path {
		path = append(path, trace.Point{X: p.X, Y: p.Y})
	}

	return scene.Scene{
		Config:   segment.NewConfiguration(sf.Configuration.ID, sf.Configuration.Name, segments),
		Template: tpl,
		Effect:   kind,
		Path:     path,
	}, nil
}

func (tf templateFile) toTemplate() (pattern.Template, error) {
	typ, err := parseTemplateType(tf.TemplateType)
	if err != nil {
		return pattern.Template{}, err
	}
	anchor, err := parseColor(tf.AnchorColor, render.RGBADefault)
	if err != nil {
		return pattern.Template{}, fmt.Errorf("anchorColor: %w", err)
	}
	spaced, err := parseColor(tf.SpacedColor, render.RGBAUnlit)
	if err != nil {
		return pattern.Template{}, fmt.Errorf("spacedColor: %w", err)
	}
	tpl := pattern.Template{
		Type:           typ,
		AnchorColor:    anchor,
		SpacedColor:    spaced,
		SpacingCount:   tf.SpacingCount,
		AnchorAlwaysOn: tf.AnchorAlwaysOn,
		Speed:          tf.Speed,
		Intensity:      tf.Intensity,
	}
	if tf.SecondaryColor != "" {
		secondary, err := parseColor(tf.SecondaryColor, render.RGBAUnlit)
		if err != nil {
			return pattern.Template{}, fmt.Errorf("secondaryColor: %w", err)
		}
		tpl.SecondaryColor = &secondary
	}
	return tpl, nil
}

// parseColor accepts "#RRGGBB" hex; empty strings take the fallback
func parseColor(hex string, fallback render.RGBA) (render.RGBA, error) {
	if hex == "" {
		return fallback, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return render.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return render.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func parseSegmentType(name string) (segment.Type, error) {
	for _, t := range []segment.Type{segment.TypeRun, segment.TypeCorner, segment.TypePeak, segment.TypeColumn, segment.TypeConnector} {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown segment type %q", name)
}

func parseTemplateType(name string) (pattern.TemplateType, error) {
	for _, t := range []pattern.TemplateType{pattern.Downlighting, pattern.ChaseBySegment, pattern.AlternatingSegments, pattern.CornerAccent, pattern.Uniform} {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown template type %q", name)
}

func parseEffect(name string) (effect.Kind, error) {
	if name == "" {
		return effect.Solid, nil
	}
	for _, k := range effect.Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown effect %q", name)
}
