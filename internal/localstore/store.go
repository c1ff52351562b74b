package localstore

import "encoding/json"

// Store is a small JSON document store keyed by string, holding the
// client-side state (carts, orders, wishlists, reviews). Values are whole
// documents: a Set replaces the previous document for that key
// (last-write-wins), there is no partial update or merge.
type Store interface {
	// Get unmarshals the document stored under key into target. The boolean
	// reports whether the key existed; a missing key is not an error.
	Get(key string, target interface{}) (bool, error)
	// Set marshals value and replaces the document under key.
	Set(key string, value interface{}) error
	// Delete removes the document under key, if any.
	Delete(key string) error
}

func marshal(value interface{}) ([]byte, error) {
	return json.Marshal(value)
}

func unmarshal(data []byte, target interface{}) error {
	return json.Unmarshal(data, target)
}
