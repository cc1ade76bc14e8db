// Command roofline-preview renders a roofline scene in the terminal: every
// virtual LED becomes a colored cell along the traced outline, animated at
// ~60 FPS. Without a scene file it shows a built-in demo house.
//
// Keys: e cycles effects, t cycles templates, space pauses, q/esc quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lumina-lights/roofline/constants"
	"github.com/lumina-lights/roofline/effect"
	"github.com/lumina-lights/roofline/pattern"
	"github.com/lumina-lights/roofline/render"
	"github.com/lumina-lights/roofline/scene"
	"github.com/lumina-lights/roofline/segment"
	"github.com/lumina-lights/roofline/trace"
)

func main() {
	scenePath := flag.String("scene", "", "JSON scene file (omit for the built-in demo)")
	deviceCount := flag.Int("device-pixels", 0, "physical LED count to validate against (0 skips)")
	flag.Parse()

	sc := demoScene()
	if *scenePath != "" {
		loaded, err := loadScene(*scenePath)
		if err != nil {
			log.Fatalf("load scene: %v", err)
		}
		sc = loaded
	}

	if *deviceCount > 0 && !sc.Config.ValidateAgainstDevice(*deviceCount) {
		// Advisory only; the preview keeps the logical configuration
		log.Printf("warning: configuration has %d pixels, device reports %d",
			sc.Config.TotalPixelCount(), *deviceCount)
	}
	for _, w := range segment.Validate(sc.Config) {
		log.Printf("warning: segment %s: %s (%s)", w.SegmentID, w.Code, w.Detail)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	app := &previewApp{
		screen:    screen,
		sc:        sc,
		templates: []pattern.TemplateType{pattern.Downlighting, pattern.ChaseBySegment, pattern.AlternatingSegments, pattern.CornerAccent, pattern.Uniform},
		effects:   effect.Kinds(),
	}
	app.rebuild()
	app.run()
}

type previewApp struct {
	screen   tcell.Screen
	sc       scene.Scene
	renderer *scene.Renderer

	templates []pattern.TemplateType
	effects   []effect.Kind
	tplIdx    int
	fxIdx     int

	paused  bool
	elapsed time.Duration
}

// rebuild recomputes everything phase-independent after a scene edit or a
// terminal resize: screen-space sample positions and resolved base colors
func (a *previewApp) rebuild() {
	w, h := a.screen.Size()
	if w < 2 || h < 2 {
		w, h = 80, 24
	}

	pts := a.sc.Path
	if len(pts) < 2 {
		pts = trace.DefaultArc()
	}
	// Scale the normalized trace into cell coordinates so the derived
	// sample count reflects on-screen path length
	scaled := make([]trace.Point, len(pts))
	for i, p := range pts {
		scaled[i] = trace.Point{X: p.X * float64(w-1), Y: p.Y * float64(h-2)}
	}

	screenScene := a.sc
	screenScene.Path = scaled
	a.renderer = scene.NewRenderer(screenScene, 0)
}

func (a *previewApp) run() {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(constants.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !a.paused {
				a.elapsed += constants.FrameInterval
			}
			a.draw()
		}
	}
}

// handleEvent returns false when the app should exit
func (a *previewApp) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.rebuild()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			return false
		case ev.Rune() == 'e':
			a.fxIdx = (a.fxIdx + 1) % len(a.effects)
			a.sc.Effect = a.effects[a.fxIdx]
			a.rebuild()
		case ev.Rune() == 't':
			a.tplIdx = (a.tplIdx + 1) % len(a.templates)
			a.sc.Template.Type = a.templates[a.tplIdx]
			a.rebuild()
		case ev.Rune() == ' ':
			a.paused = !a.paused
		}
	}
	return true
}

func (a *previewApp) draw() {
	speed := a.sc.Template.Speed
	if speed <= 0 {
		speed = 1
	}
	loop := constants.DefaultLoopDuration.Seconds() / speed
	phase := a.elapsed.Seconds() / loop
	phase -= float64(int(phase))

	frame := a.renderer.Frame(phase)
	samples := a.renderer.Samples()

	a.screen.Clear()
	for i, c := range frame {
		flat := c.Over(render.RGBABlack)
		style := tcell.StyleDefault.Foreground(
			tcell.NewRGBColor(int32(flat.R), int32(flat.G), int32(flat.B)))
		a.screen.SetContent(int(samples[i].X), int(samples[i].Y), '●', nil, style)
	}

	status := fmt.Sprintf(" %s / %s | %d LEDs | e:effect t:template space:pause q:quit ",
		a.sc.Effect, a.sc.Template.Type, a.renderer.SampleCount())
	_, h := a.screen.Size()
	drawText(a.screen, 0, h-1, status)
	a.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// demoScene is a typical single-story installation: two eave runs meeting
// at a corner, a gable rising to a peak, and a porch column
func demoScene() scene.Scene {
	warm := render.RGBADefault
	cool := render.Opaque(120, 160, 255)

	cfg := segment.NewConfiguration("demo", "Demo House", []segment.Segment{
		{ID: "eave-left", Name: "Left Eave", PixelCount: 40, Type: segment.TypeRun, ConnectedToPrevious: false},
		{ID: "corner-fl", Name: "Front Left Corner", PixelCount: 8, Type: segment.TypeCorner, ConnectedToPrevious: true},
		{ID: "gable-up", Name: "Gable Rise", PixelCount: 30, Type: segment.TypeRun, ConnectedToPrevious: true},
		{ID: "peak", Name: "Front Peak", PixelCount: 10, Type: segment.TypePeak, ConnectedToPrevious: true},
		{ID: "gable-down", Name: "Gable Fall", PixelCount: 30, Type: segment.TypeRun, ConnectedToPrevious: true},
		{ID: "eave-right", Name: "Right Eave", PixelCount: 40, Type: segment.TypeRun, ConnectedToPrevious: true},
		{ID: "column", Name: "Porch Column", PixelCount: 24, Type: segment.TypeColumn, Level: 0, ConnectedToPrevious: false},
	})

	return scene.Scene{
		Config: cfg,
		Template: pattern.Template{
			Type:           pattern.Downlighting,
			AnchorColor:    warm,
			SpacedColor:    cool,
			SpacingCount:   3,
			AnchorAlwaysOn: true,
			Speed:          1,
			Intensity:      60,
		},
		Effect: effect.Solid,
	}
}
