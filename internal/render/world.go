package render

import (
	"github.com/vovakirdan/homeward/internal/assets"
	"github.com/vovakirdan/homeward/internal/camera"
	"github.com/vovakirdan/homeward/internal/core"
	"github.com/vovakirdan/homeward/internal/entity"
	"github.com/vovakirdan/homeward/internal/progress"
	"github.com/vovakirdan/homeward/internal/world"
)

// DrawWorld renders the entire world as it looks at step, with both
// characters on their spawn points. The returned screen is sized to fit
// the whole map.
func DrawWorld(w *world.World, sheet *assets.Sheet, proj camera.Projection, step int) *core.Screen {
	cols, rows := proj.Cells(w.Width(), w.Height())
	dst := core.NewScreen(cols, rows)

	r := New(sheet, proj)
	r.Draw(dst, FrameView{
		World:    w,
		Progress: progress.Snapshot{Step: step, TotalSteps: w.Steps()},
		Player:   *entity.NewPlayer(w.PlayerSpawn()),
		Pursuer:  *entity.NewPursuer(w.PursuerSpawn()),
		Camera:   camera.Camera{W: w.Width(), H: w.Height()},
		Ready:    true,
	})
	return dst
}
