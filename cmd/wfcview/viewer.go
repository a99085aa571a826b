package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/wavefc/config"
	"github.com/katalvlaran/wavefc/internal/job"
	"github.com/katalvlaran/wavefc/wave"
)

// viewer implements ebiten.Game over one solver.
type viewer struct {
	model   *job.Model
	solver  *wave.Solver
	seed    int64
	speed   int
	running bool

	frame *ebiten.Image
	dirty bool
}

func newViewer(m *job.Model, j config.Job, speed int) (*viewer, error) {
	s, err := m.NewSolver(j)
	if err != nil {
		return nil, err
	}
	if speed < 1 {
		speed = 1
	}
	v := &viewer{model: m, solver: s, seed: j.Seed, speed: speed, dirty: true}
	v.reset()
	return v, nil
}

// reset clears the wave and restarts the random stream from the current seed.
func (v *viewer) reset() {
	v.solver.Reseed(v.seed)
	v.solver.Clear()
	v.running = false
	v.dirty = true
}

// step performs up to n observations and reports whether the run can go on.
func (v *viewer) step(n int) bool {
	for i := 0; i < n; i++ {
		if v.solver.RunOneStep() != wave.StateReady {
			v.dirty = true
			return false
		}
	}
	v.dirty = true
	return true
}

// Update handles input. Keys are edge-triggered.
func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.seed++
		v.reset()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.running = false
		v.step(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		v.running = true
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		v.running = false
	}
	if v.running {
		v.running = v.step(v.speed)
	}
	return nil
}

// Draw renders the wave preview, refreshing the texture only after changes.
func (v *viewer) Draw(screen *ebiten.Image) {
	if v.dirty {
		img := v.model.Render(v.solver, v.model.RenderOptions)
		v.upload(img)
		v.dirty = false
	}
	screen.DrawImage(v.frame, nil)

	status := "SPACE=step  ENTER=run  ESC=stop  R=reseed\n"
	status += fmt.Sprintf("seed=%d steps=%d state=%s", v.seed, v.solver.Steps(), v.solver.State())
	if x, y, ok := v.solver.Contradiction(); ok {
		status += fmt.Sprintf(" at (%d,%d)", x, y)
	}
	if v.running {
		status += "  [RUNNING]"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (v *viewer) upload(img *image.RGBA) {
	b := img.Bounds()
	if v.frame == nil || v.frame.Bounds().Size() != b.Size() {
		v.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	v.frame.WritePixels(img.Pix)
}

// Layout keeps the logical screen at the rendered image size.
func (v *viewer) Layout(_, _ int) (int, int) {
	if v.frame != nil {
		b := v.frame.Bounds()
		return b.Dx(), b.Dy()
	}
	b := v.model.Render(v.solver, v.model.RenderOptions).Bounds()
	return b.Dx(), b.Dy()
}
