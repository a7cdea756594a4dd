package world

import "time"

// Tick is the host's clock for one simulation step.
type Tick struct {
	// Delta is the time elapsed since the previous tick, in seconds.
	Delta float32
	// Since is the absolute time since the host started.
	Since time.Duration
}

// Update runs one simulation step. The stages always run in the same order:
// input, movement, fire events, then projectile spawn, advance and sweep.
func (w *World) Update(now Tick, intents Intents) *Frame {
	w.tick++
	frame := &Frame{Tick: w.tick}

	fired := w.applyIntents(now, intents)

	w.ForEachEntity(func(e *Entity) {
		e.Advance(w.grid, &e.Transform, now.Delta, w.moveDuration)
	})

	var shots []Shot
	if fired {
		player := w.Entity(w.playerID)
		shots = append(shots, Shot{
			Source:    w.playerID,
			Origin:    player.Translation,
			Direction: w.bulletDirection,
		})
	}

	for _, shot := range shots {
		shot.ID = w.bullets.Spawn(shot.Origin, shot.Direction)
		frame.Spawned = append(frame.Spawned, shot)
	}
	w.bullets.Advance(now.Delta)
	frame.Despawned = w.bullets.Sweep()
	for _, ID := range frame.Despawned {
		w.log.Debugw("bullet despawned", "id", ID)
	}

	w.ForEachEntity(func(e *Entity) {
		frame.Moveables = append(frame.Moveables, MoveableUpdate{
			ID:        e.ID,
			Cell:      e.Cell,
			State:     e.Movement.State,
			Transform: e.Transform,
		})
	})
	w.bullets.ForEach(func(b *Bullet) {
		frame.Bullets = append(frame.Bullets, BulletUpdate{
			ID:          b.ID,
			Translation: b.Translation,
		})
	})
	return frame
}
