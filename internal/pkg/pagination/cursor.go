// Package pagination implements opaque-cursor paging over collections with a
// strictly increasing int64 key.
//
// A cursor encodes "the id of the last row already returned". The token is
// opaque to callers; its only contract is that Encode/Decode round-trip valid
// keys exactly and that malformed input decodes softly to "no cursor" instead
// of failing the request.
package pagination

import (
	"encoding/base64"
	"encoding/json"
)

type cursorPayload struct {
	ID int64 `json:"id"`
}

// Encode returns the opaque token for the given key.
func Encode(id int64) string {
	raw, _ := json.Marshal(cursorPayload{ID: id})
	return base64.URLEncoding.EncodeToString(raw)
}

// Decode parses a token produced by Encode. It is a total function: any
// malformed, tampered, or non-positive payload yields (0, false) and the
// caller treats the cursor as absent.
func Decode(token string) (int64, bool) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, false
	}
	var p cursorPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return 0, false
	}
	if p.ID <= 0 {
		return 0, false
	}
	return p.ID, true
}

// After maps a cursor token to the exclusive lower bound for the next page.
// An empty or undecodable token means "start from the beginning".
func After(token string) int64 {
	if token == "" {
		return 0
	}
	id, ok := Decode(token)
	if !ok {
		return 0
	}
	return id
}
