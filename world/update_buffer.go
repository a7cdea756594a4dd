package world

// UpdateBuffer collects the latest intents of every controller between ticks.
type UpdateBuffer struct {
	Intents map[string]Intents
}

func NewUpdateBuffer() *UpdateBuffer {
	return &UpdateBuffer{
		Intents: make(map[string]Intents),
	}
}

// Set replaces what a controller holds. Inputs are levels, not edges, so only
// the newest message from each controller matters.
func (u *UpdateBuffer) Set(ID string, intents Intents) {
	u.Intents[ID] = intents
}

func (u *UpdateBuffer) Remove(ID string) {
	delete(u.Intents, ID)
}

// Merged is the union of everything held by every controller.
func (u *UpdateBuffer) Merged() Intents {
	var merged Intents
	for _, intents := range u.Intents {
		merged |= intents
	}
	return merged
}
