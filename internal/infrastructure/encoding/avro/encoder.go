package avro

import (
	"encoding/json"
	"fmt"

	"github.com/linkedin/goavro/v2"
)

// Encoder wraps a goavro codec. goavro codecs are safe for concurrent use.
type Encoder struct {
	codec *goavro.Codec
}

// NewEncoder creates a new encoder from an Avro schema string
func NewEncoder(schema string) (*Encoder, error) {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create avro codec: %w", err)
	}
	return &Encoder{
		codec: codec,
	}, nil
}

// EncodeJSON converts a JSON object to Avro binary format
func (e *Encoder) EncodeJSON(jsonData []byte) ([]byte, error) {
	native, _, err := e.codec.NativeFromTextual(jsonData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avro json: %w", err)
	}
	return e.EncodeNative(native)
}

// EncodeNative converts a Go native map to Avro binary format
func (e *Encoder) EncodeNative(native any) ([]byte, error) {
	binary, err := e.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("failed to encode to avro binary: %w", err)
	}
	return binary, nil
}

// DecodeNative converts Avro binary back to a Go native value.
func (e *Encoder) DecodeNative(binary []byte) (any, error) {
	native, rest, err := e.codec.NativeFromBinary(binary)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avro binary: %w", err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("failed to decode avro binary: %d trailing bytes", len(rest))
	}
	return native, nil
}

// DecodeJSON converts Avro binary to its JSON form, mostly for logging.
func (e *Encoder) DecodeJSON(binary []byte) (json.RawMessage, error) {
	native, err := e.DecodeNative(binary)
	if err != nil {
		return nil, err
	}
	text, err := e.codec.TextualFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("failed to encode avro json: %w", err)
	}
	return text, nil
}
