package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/homeward/internal/progress"
)

// logEvents writes progression events to l. Clock syncs are frequent and
// go to debug.
func logEvents(l *log.Logger) progress.Observer {
	return func(e progress.Event) {
		switch e.Kind {
		case progress.EventDiscovered:
			l.Info("discovered", "trigger", e.Trigger, "item", e.Item, "step", e.Step)
		case progress.EventModalOpened:
			l.Info("modal opened", "modal", e.Modal, "step", e.Step)
		case progress.EventModalClosed:
			l.Info("modal closed", "modal", e.Modal, "step", e.Step)
		case progress.EventTimeSynced:
			l.Debug("clock", "elapsed", e.Elapsed)
		case progress.EventGameOver:
			l.Info("game over", "reason", e.Reason, "step", e.Step, "elapsed", e.Elapsed)
		case progress.EventReset:
			l.Info("reset")
		}
	}
}
