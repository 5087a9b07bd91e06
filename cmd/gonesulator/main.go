// Command gonesulator runs a ROM file in an ebiten window.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/nesbox/gonesulator/nes"
)

var romFile = flag.String("rom", "", "path to an iNES ROM file to run")

const sampleRate = 44100

// keymap maps a host keyboard key to a controller button on pad 1.
var keymap = map[ebiten.Key]int{
	ebiten.KeyZ:     nes.ButtonA,
	ebiten.KeyX:     nes.ButtonB,
	ebiten.KeyShift: nes.ButtonSelect,
	ebiten.KeyEnter: nes.ButtonStart,
	ebiten.KeyUp:    nes.ButtonUp,
	ebiten.KeyDown:  nes.ButtonDown,
	ebiten.KeyLeft:  nes.ButtonLeft,
	ebiten.KeyRight: nes.ButtonRight,
}

// game adapts an *nes.Emulator to the ebiten.Game interface.
type game struct {
	ctx context.Context
	emu *nes.Emulator
	rgb *ebiten.Image
}

func newGame(ctx context.Context, emu *nes.Emulator) *game {
	return &game{
		ctx: ctx,
		emu: emu,
		rgb: ebiten.NewImage(nes.Width, nes.Height),
	}
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for key, button := range keymap {
		g.emu.SetButtonPressed(nes.Pad1, button, ebiten.IsKeyPressed(key))
	}

	target := g.emu.Cycles() + nes.CyclesPerFrame
	for g.emu.Cycles() < target {
		g.emu.Step()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	rgba := toRGBA(g.emu.Buffer())
	g.rgb.WritePixels(rgba)
	screen.DrawImage(g.rgb, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return nes.Width, nes.Height
}

// toRGBA expands the emulator's packed RGB frame buffer into the RGBA
// pixels ebiten.Image.WritePixels expects.
func toRGBA(rgb []byte) []byte {
	out := make([]byte, (len(rgb)/3)*4)
	for i, j := 0, 0; i < len(rgb); i, j = i+3, j+4 {
		out[j] = rgb[i]
		out[j+1] = rgb[i+1]
		out[j+2] = rgb[i+2]
		out[j+3] = 0xff
	}
	return out
}

// silentStream drains the APU's (always silent) sample generator for
// ebiten's audio player, which otherwise stalls waiting for reads.
type silentStream struct {
	emu *nes.Emulator
}

func (s *silentStream) Read(p []byte) (int, error) {
	n := len(p) / 4
	copy(p, s.emu.Samples(n))
	return n * 4, nil
}

func main() {
	flag.Parse()
	if *romFile == "" {
		log.Fatal("usage: gonesulator -rom path/to/game.nes")
	}

	rom, err := os.ReadFile(*romFile)
	if err != nil {
		log.Fatalf("reading ROM: %v", err)
	}

	emu, err := nes.New(rom)
	if err != nil {
		log.Fatalf("loading ROM: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	audioCtx := audio.NewContext(sampleRate)
	player, err := audioCtx.NewPlayer(&silentStream{emu: emu})
	if err != nil {
		log.Fatalf("audio player: %v", err)
	}
	player.Play()

	ebiten.SetWindowSize(nes.Width*2, nes.Height*2)
	ebiten.SetWindowTitle("gonesulator")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newGame(ctx, emu)); err != nil {
		log.Fatal(err)
	}

	cancel()
}
