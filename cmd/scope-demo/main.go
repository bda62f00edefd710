// Command scope-demo plays a generated XY pattern as stereo audio and shows
// the live oscilloscope preview in a window.
//
// Usage:
//
//	scope-demo [flags]
//
// Examples:
//
//	scope-demo -pattern lissajous -fx 2 -fy 3
//	scope-demo -pattern random -seed 42 -rotate 15
//	scope-demo -pattern spiral -export spiral.wav
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/effects"
	"github.com/cwbudde/algo-scope/scope/pattern"
	"github.com/cwbudde/algo-scope/scope/playback"
	"github.com/cwbudde/algo-scope/scope/render"
	"github.com/cwbudde/algo-scope/scope/wav"
)

const (
	windowSize = 640
	pointSize  = 2
)

var (
	flagPattern = flag.String("pattern", "lissajous", "pattern: lissajous, circle, spiral, random, diagonal, cross")
	flagFX      = flag.Int("fx", 2, "lissajous x frequency")
	flagFY      = flag.Int("fy", 3, "lissajous y frequency")
	flagSeed    = flag.Int64("seed", 1, "random pattern seed")
	flagRate    = flag.Float64("rate", 44100, "sample rate in Hz")
	flagRepeats = flag.Int("repeats", 200, "pattern repeats per loop")
	flagRotate  = flag.Float64("rotate", 0, "rotation speed in degrees per repeat (0 = off)")
	flagTremolo = flag.Float64("tremolo", 0, "tremolo depth in [0, 1] (0 = off)")
	flagEcho    = flag.Bool("echo", false, "enable echo")
	flagExport  = flag.String("export", "", "write the generated loop to a WAV file and exit")
	flagStatic  = flag.Bool("static", false, "show a density-weighted still render instead of playing")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	base, err := makePattern()
	if err != nil {
		return err
	}
	chain, err := makeChain()
	if err != nil {
		return err
	}
	seq, err := chain.Apply(base)
	if err != nil {
		return err
	}

	if *flagExport != "" {
		return exportWAV(seq)
	}
	if *flagStatic {
		return runStatic(seq)
	}

	engine, err := playback.NewEngine(core.WithSampleRate(*flagRate))
	if err != nil {
		return err
	}
	if err := engine.SetSequence(seq); err != nil {
		return err
	}
	if err := engine.Start(); err != nil {
		return err
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(*flagRate),
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("audio context: %w", err)
	}
	<-ready
	player := otoCtx.NewPlayer(engine)
	player.Play()
	defer player.Close()

	scheduler, err := render.NewScheduler(engine)
	if err != nil {
		return err
	}

	view := newScopeView(scheduler)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		// Run returns context.Canceled on shutdown; nothing to report.
		_ = scheduler.Run(ctx, view.setFrame)
	}()

	ebiten.SetWindowSize(windowSize, windowSize)
	ebiten.SetWindowTitle("scope-demo")
	ebiten.SetVsyncEnabled(true)
	if err := ebiten.RunGame(view); err != nil && err != ebiten.Termination {
		return err
	}
	engine.Stop()
	return nil
}

func makePattern() (pattern.Sequence, error) {
	g := pattern.NewGeneratorWithOptions(
		[]core.Option{core.WithSampleRate(*flagRate)},
		pattern.WithSeed(*flagSeed),
	)
	switch *flagPattern {
	case "lissajous":
		return g.Lissajous(*flagFX, *flagFY, 0, 0)
	case "circle":
		return g.Circle(0)
	case "spiral":
		return g.Spiral(0, 0.05, 5, 0)
	case "random":
		return g.RandomHarmonics(4, 0)
	case "diagonal":
		return g.Diagonal(0)
	case "cross":
		return g.Cross(0)
	default:
		return pattern.Sequence{}, fmt.Errorf("unknown pattern %q", *flagPattern)
	}
}

func makeChain() (*effects.Chain, error) {
	opts := []effects.ChainOption{effects.WithRepeats(*flagRepeats)}
	if *flagRotate > 0 {
		rot, err := effects.NewRotation(effects.RotationCCW, effects.WithRotationSpeed(*flagRotate))
		if err != nil {
			return nil, err
		}
		opts = append(opts, effects.WithRotation(rot))
	}
	if *flagTremolo > 0 {
		trem, err := effects.NewTremolo(effects.WithTremoloDepth(*flagTremolo))
		if err != nil {
			return nil, err
		}
		opts = append(opts, effects.WithTremolo(trem))
	}
	if *flagEcho {
		echo, err := effects.NewEcho()
		if err != nil {
			return nil, err
		}
		opts = append(opts, effects.WithEcho(echo))
	}
	return effects.NewChain(*flagRate, opts...)
}

func exportWAV(seq pattern.Sequence) error {
	f, err := os.Create(*flagExport)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := wav.Write(f, seq, int(*flagRate)); err != nil {
		return err
	}
	log.Printf("wrote %d frames to %s", seq.Len(), *flagExport)
	return nil
}

// runStatic shows a single density-weighted render of the full sequence.
func runStatic(seq pattern.Sequence) error {
	d, err := render.NewDensityRenderer()
	if err != nil {
		return err
	}
	brightness, opacity, err := d.Render(seq.X, seq.Y)
	if err != nil {
		return err
	}
	view := &staticView{
		seq:        seq,
		brightness: brightness,
		opacity:    opacity,
		pixels:     make([]byte, windowSize*windowSize*4),
	}
	ebiten.SetWindowSize(windowSize, windowSize)
	ebiten.SetWindowTitle("scope-demo (static)")
	if err := ebiten.RunGame(view); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

type staticView struct {
	seq        pattern.Sequence
	brightness []float64
	opacity    []float64
	pixels     []byte
	rendered   bool
}

func (v *staticView) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return nil
}

func (v *staticView) Draw(screen *ebiten.Image) {
	if !v.rendered {
		for i := range v.seq.X {
			px := int((v.seq.X[i] + 1.5) / 3 * windowSize)
			py := int((1.5 - v.seq.Y[i]) / 3 * windowSize)
			if px < 0 || px >= windowSize || py < 0 || py >= windowSize {
				continue
			}
			off := (py*windowSize + px) * 4
			// Premultiplied alpha, as WritePixels expects.
			a := v.opacity[i]
			green := byte(v.brightness[i] * a * 255)
			if green > v.pixels[off+1] {
				v.pixels[off] = byte(0x20 * a)
				v.pixels[off+1] = green
				v.pixels[off+2] = byte(0x40 * a)
				v.pixels[off+3] = byte(a * 255)
			}
		}
		v.rendered = true
	}
	screen.Fill(color.Black)
	screen.WritePixels(v.pixels)
}

func (v *staticView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowSize, windowSize
}

// scopeView draws the latest preview frame as green points on black,
// flat-colored in live mode.
type scopeView struct {
	scheduler *render.Scheduler
	frame     atomic.Pointer[render.Frame]
	pixels    []byte
}

func newScopeView(s *render.Scheduler) *scopeView {
	return &scopeView{
		scheduler: s,
		pixels:    make([]byte, windowSize*windowSize*4),
	}
}

func (v *scopeView) setFrame(f render.Frame) {
	v.frame.Store(&f)
}

func (v *scopeView) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return nil
}

func (v *scopeView) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	frame := v.frame.Load()
	if frame == nil {
		return
	}
	for i := range v.pixels {
		v.pixels[i] = 0
	}
	for i := range frame.X {
		px := int((frame.X[i] + 1.5) / 3 * windowSize)
		py := int((1.5 - frame.Y[i]) / 3 * windowSize)
		v.plot(px, py)
	}
	screen.WritePixels(v.pixels)
}

func (v *scopeView) plot(px, py int) {
	for dy := 0; dy < pointSize; dy++ {
		for dx := 0; dx < pointSize; dx++ {
			x, y := px+dx, py+dy
			if x < 0 || x >= windowSize || y < 0 || y >= windowSize {
				continue
			}
			off := (y*windowSize + x) * 4
			v.pixels[off] = 0x20
			v.pixels[off+1] = 0xff
			v.pixels[off+2] = 0x40
			v.pixels[off+3] = 0xff
		}
	}
}

func (v *scopeView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowSize, windowSize
}
