package world

import "google.golang.org/protobuf/encoding/protowire"

const intentsField protowire.Number = 1

// MarshalIntents encodes the intents a remote controller holds this tick.
func MarshalIntents(i Intents) []byte {
	b := protowire.AppendTag(nil, intentsField, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(i))
}

// UnmarshalIntents decodes a controller message. Unknown intent bits are dropped.
func UnmarshalIntents(b []byte) (Intents, error) {
	var intents Intents
	err := walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != intentsField {
			return 0, nil
		}
		v, n, err := consumeVarint(typ, b)
		intents = Intents(v) & intentsMask
		return n, err
	})
	return intents, err
}
