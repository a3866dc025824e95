// Package live implements the cross-context update protocol: an editing
// host pushes a replacement layer tree into a running embedded or
// sandboxed renderer without reloading it.
//
// The protocol is fire-and-forget. A snapshot fully replaces the
// previous one; there is no merge, no partial application, and no
// acknowledgment.
package live

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/overlay"
)

// TypeUpdateLayers replaces the renderer's layer snapshot wholesale.
const TypeUpdateLayers = "design:updateLayers"

// Message is one protocol message.
type Message struct {
	Type   string           `json:"type"`
	Layers []*overlay.Layer `json:"layers"`
}

// UpdateLayers builds a layer-replacement message.
func UpdateLayers(layers []*overlay.Layer) Message {
	return Message{Type: TypeUpdateLayers, Layers: layers}
}

// Encode serializes the message as JSON.
func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode parses a protocol message.
func Decode(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("live: decode: %w", err)
	}
	return m, nil
}
