package world

import "strings"

// Intents is the set of abstract inputs held during a tick. Mapping physical
// keys and gamepad buttons onto it is the host's job.
type Intents uint8

const (
	IntentUp Intents = 1 << iota
	IntentDown
	IntentLeft
	IntentRight
	IntentAction

	intentsMask = IntentUp | IntentDown | IntentLeft | IntentRight | IntentAction
)

var intentDirections = []struct {
	intent    Intents
	direction Direction
}{
	{IntentUp, MoveUp},
	{IntentDown, MoveDown},
	{IntentLeft, MoveLeft},
	{IntentRight, MoveRight},
}

func (i Intents) Has(o Intents) bool {
	return i&o != 0
}

func (i Intents) Fire() bool {
	return i.Has(IntentAction)
}

// Direction resolves held directions. They are checked up, down, left, right
// and the last one held wins.
func (i Intents) Direction() (Direction, bool) {
	var (
		direction Direction
		ok        bool
	)
	for _, d := range intentDirections {
		if i.Has(d.intent) {
			direction, ok = d.direction, true
		}
	}
	return direction, ok
}

func (i Intents) String() string {
	var names []string
	for _, d := range intentDirections {
		if i.Has(d.intent) {
			names = append(names, d.direction.String())
		}
	}
	if i.Fire() {
		names = append(names, "fire")
	}
	return "[" + strings.Join(names, " ") + "]"
}

// applyIntents is the input stage of the tick for the player: the fire latch
// is consulted and a direction is queued if the player is stopped. It reports
// whether a shot was accepted.
func (w *World) applyIntents(now Tick, intents Intents) bool {
	w.latch.Update(now.Since)

	fired := intents.Fire() && w.latch.TryFire(now.Since)
	if fired {
		w.log.Debugw("fire accepted", "since", now.Since)
	}

	player := w.Entity(w.playerID)
	if direction, ok := intents.Direction(); ok && player.Queue(direction) {
		w.log.Debugw("move queued", "id", w.playerID, "cell", player.Cell, "direction", direction)
	}
	return fired
}
