package shoppingv1

import "encoding/json"

// Codec marshals API messages as JSON. It is registered under the name
// "json", replacing Connect's protobuf JSON codec for this service.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}
