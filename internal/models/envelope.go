// Package models defines typed representations of Splunk resources and the
// request/response envelopes the REST client decodes them from.
package models

import "encoding/json"

// Envelope is Splunk's universal list/get response shape:
// {"entry":[{"name": "...", "content": {...}}]}. The content's identity
// lives outside the content object, so every endpoint that returns this
// shape must merge entry.name into content before handing typed records to
// callers (spec §4.1f). EntryNameWins documents the resolution the system
// chose for the case where content also carries its own "name" field and it
// differs from the envelope's: the envelope's name always wins, because it
// is the identity Splunk itself uses to address the resource via URL.
type Envelope struct {
	Entry []Entry `json:"entry"`
}

// Entry is one element of an Envelope.
type Entry struct {
	Name    string          `json:"name"`
	Content json.RawMessage `json:"content"`
}

// MergeName decodes raw content into dst (a pointer to a struct with a Name
// field) and then overwrites dst's Name with the envelope's entry name,
// implementing the entry-name merge invariant.
func MergeName(entryName string, raw json.RawMessage, dst Named) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return err
	}
	dst.SetName(entryName)
	return nil
}

// Named is implemented by every resource model so the envelope merge step
// can assign the canonical name uniformly.
type Named interface {
	SetName(name string)
}
