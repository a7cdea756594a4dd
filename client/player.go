package client

import (
	"pewpew/input"
	"pewpew/world"

	"github.com/hajimehoshi/ebiten/v2"
)

var keyTable = input.KeyTable[ebiten.Key]{
	{Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}, Intent: world.IntentUp},
	{Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}, Intent: world.IntentDown},
	{Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, Intent: world.IntentLeft},
	{Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}, Intent: world.IntentRight},
	{Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyJ}, Intent: world.IntentAction},
}

var buttonTable = input.KeyTable[ebiten.StandardGamepadButton]{
	{Keys: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop}, Intent: world.IntentUp},
	{Keys: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}, Intent: world.IntentDown},
	{Keys: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}, Intent: world.IntentLeft},
	{Keys: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}, Intent: world.IntentRight},
	{Keys: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}, Intent: world.IntentAction},
}

// pressedIntents polls the keyboard and every gamepad with a standard layout.
func pressedIntents() world.Intents {
	intents := keyTable.Resolve(ebiten.IsKeyPressed)

	for _, id := range ebiten.GamepadIDs() {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		intents |= buttonTable.Resolve(func(b ebiten.StandardGamepadButton) bool {
			return ebiten.IsStandardGamepadButtonPressed(id, b)
		})
		intents |= input.StickIntents(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			input.DefaultStickThreshold,
		)
	}
	return intents
}
