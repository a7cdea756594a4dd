package world

import "testing"

func TestFrameBufferWraps(t *testing.T) {
	s := NewFrameBuffer(3)
	if s.Latest() != nil {
		t.Fatalf(`Latest() on an empty buffer = %+v, want nil`, s.Latest())
	}

	for tick := int64(1); tick <= 5; tick++ {
		s.Add(&Frame{Tick: tick})
	}
	if got := s.Latest().Tick; got != 5 {
		t.Fatalf(`Latest().Tick = %d, want 5`, got)
	}
	if s.CurrentTick() != 5 {
		t.Fatalf(`CurrentTick() = %d, want 5`, s.CurrentTick())
	}
	if s.Len() != 3 {
		t.Fatalf(`Len() = %d, want 3`, s.Len())
	}
	if _, ok := s.At(2); ok {
		t.Fatalf(`At(2) still buffered after wrapping`)
	}
	if f, ok := s.At(3); !ok || f.Tick != 3 {
		t.Fatalf(`At(3) = %+v, %v`, f, ok)
	}

	s.Clear()
	if s.Latest() != nil || s.Len() != 0 || s.CurrentTick() != NilTick {
		t.Fatalf(`Clear() left frames behind`)
	}
}

func TestUpdateBufferMerges(t *testing.T) {
	u := NewUpdateBuffer()
	u.Set("a", IntentUp)
	u.Set("b", IntentAction)
	u.Set("a", IntentLeft)
	if got := u.Merged(); got != IntentLeft|IntentAction {
		t.Fatalf(`Merged() = %v, want [left fire]`, got)
	}
	u.Remove("b")
	if got := u.Merged(); got != IntentLeft {
		t.Fatalf(`Merged() = %v, want [left]`, got)
	}
}
