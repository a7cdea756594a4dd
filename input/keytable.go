// Package input turns raw device state into world intents. It knows nothing
// about a particular windowing library: key and button types are parameters.
package input

import "pewpew/world"

// Binding maps any of its keys to one intent.
type Binding[K comparable] struct {
	Keys   []K
	Intent world.Intents
}

// KeyTable is an ordered list of bindings.
type KeyTable[K comparable] []Binding[K]

// Resolve ORs together the intents of every binding with a pressed key.
func (t KeyTable[K]) Resolve(pressed func(K) bool) world.Intents {
	var intents world.Intents
	for _, b := range t {
		for _, k := range b.Keys {
			if pressed(k) {
				intents |= b.Intent
				break
			}
		}
	}
	return intents
}

// DefaultStickThreshold is how far a stick must be pushed to count as a direction.
const DefaultStickThreshold = 0.5

// StickIntents converts analog stick values to directions. Vertical is
// negative upwards, as on standard gamepads.
func StickIntents(horizontal, vertical, threshold float64) world.Intents {
	var intents world.Intents
	switch {
	case vertical <= -threshold:
		intents |= world.IntentUp
	case vertical >= threshold:
		intents |= world.IntentDown
	}
	switch {
	case horizontal <= -threshold:
		intents |= world.IntentLeft
	case horizontal >= threshold:
		intents |= world.IntentRight
	}
	return intents
}
