package models

import "encoding/json"

// BranchRule is one named policy unit returned by the branch rules API.
// Parameters stay raw: each rule type carries a different shape and most
// carry none.
type BranchRule struct {
	Type       string          `json:"type"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
}
