package game

import (
	"math"
	"time"
)

// clock is the countdown. It only runs once the player has engaged and
// publishes its value to the progress state every syncInterval seconds.
// Time is summed in whole nanoseconds so frames that add up to the
// duration reach it exactly.
type clock struct {
	elapsed  time.Duration
	lastSync int // elapsed / syncInterval at the last publish
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// advance adds dt, capped at duration. It reports whether the sync bucket
// changed and whether time ran out.
func (c *clock) advance(dt, duration, syncInterval float64) (synced, expired bool) {
	limit := seconds(duration)
	c.elapsed = min(c.elapsed+seconds(dt), limit)

	bucket := int(c.elapsed / max(seconds(syncInterval), 1))
	if bucket != c.lastSync {
		c.lastSync = bucket
		synced = true
	}
	return synced, c.elapsed >= limit
}

// Seconds returns the elapsed time in seconds.
func (c *clock) Seconds() float64 {
	return c.elapsed.Seconds()
}

func (c *clock) reset() {
	*c = clock{}
}
