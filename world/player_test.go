package world

import "testing"

func TestIntentsDirectionLastWins(t *testing.T) {
	tests := []struct {
		intents Intents
		want    Direction
		ok      bool
	}{
		{0, 0, false},
		{IntentAction, 0, false},
		{IntentUp, MoveUp, true},
		{IntentUp | IntentDown, MoveDown, true},
		{IntentDown | IntentLeft, MoveLeft, true},
		{IntentLeft | IntentRight, MoveRight, true},
		{IntentUp | IntentDown | IntentLeft | IntentRight | IntentAction, MoveRight, true},
	}
	for _, tt := range tests {
		got, ok := tt.intents.Direction()
		if ok != tt.ok || (ok && got != tt.want) {
			t.Fatalf(`%v.Direction() = %v, %v, want %v, %v`, tt.intents, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIntentsString(t *testing.T) {
	if got := (IntentUp | IntentAction).String(); got != "[up fire]" {
		t.Fatalf(`String() = %q, want "[up fire]"`, got)
	}
}

func TestIntentsWireRoundTrip(t *testing.T) {
	want := IntentLeft | IntentAction
	got, err := UnmarshalIntents(MarshalIntents(want))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf(`UnmarshalIntents = %v, want %v`, got, want)
	}

	got, err = UnmarshalIntents(MarshalIntents(Intents(0xff)))
	if err != nil {
		t.Fatal(err)
	}
	if got != intentsMask {
		t.Fatalf(`unknown bits kept: %08b`, got)
	}
}
