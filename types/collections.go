package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

type jsonValue[T any] struct {
	name string
}

// JSONValue returns a collections value codec storing T as its JSON
// encoding. Contract state is JSON on the wire, so the stored bytes are the
// same bytes a query returns.
func JSONValue[T any](name string) collcodec.ValueCodec[T] {
	return jsonValue[T]{name: name}
}

func (c jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) Decode(b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("%w: %s: %v", ErrUnmarshal, c.name, err)
	}
	return v, nil
}

func (c jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValue[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValue[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("<%s: %v>", c.name, err)
	}
	return string(bz)
}

func (c jsonValue[T]) ValueType() string {
	return "json/" + c.name
}
