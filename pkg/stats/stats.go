package stats

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Identifier is a module name as reported by the bundler.
// The zero value is invalid.
type Identifier struct {
	value string
	valid bool
}

// NewIdentifier returns a valid identifier holding s.
func NewIdentifier(s string) Identifier {
	return Identifier{value: s, valid: true}
}

// String returns the raw identifier, or "" when invalid.
func (id Identifier) String() string { return id.value }

// Valid reports whether the bundler supplied a string for this identifier.
func (id Identifier) Valid() bool { return id.valid }

// UnmarshalJSON accepts any JSON value. Non-strings leave id invalid.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	*id = Identifier{}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		id.value, id.valid = s, true
	}
	return nil
}

// MarshalJSON writes the identifier as a string, or null when invalid.
func (id Identifier) MarshalJSON() ([]byte, error) {
	if !id.valid {
		return jsonNull, nil
	}
	return json.Marshal(id.value)
}

// Issuer is one ancestor in a module's issuer path.
type Issuer struct {
	Name Identifier `json:"name"`
}

// Reason is one inbound reference to a module.
type Reason struct {
	ModuleName Identifier `json:"moduleName"`
}

// IssuerList is the ordered issuer path of a module.
type IssuerList struct {
	Items []Issuer
	valid bool
}

// Issuers returns a valid list holding items.
func Issuers(items ...Issuer) IssuerList {
	return IssuerList{Items: items, valid: true}
}

// Valid reports whether the bundler supplied an array.
func (l IssuerList) Valid() bool { return l.valid }

// UnmarshalJSON accepts any JSON value. Non-arrays leave l invalid;
// elements that are not objects decode as issuers with an invalid name.
func (l *IssuerList) UnmarshalJSON(data []byte) error {
	*l = IssuerList{}
	raw, ok := decodeArray(data)
	if !ok {
		return nil
	}
	l.valid = true
	l.Items = make([]Issuer, len(raw))
	for i, r := range raw {
		_ = json.Unmarshal(r, &l.Items[i])
	}
	return nil
}

// MarshalJSON writes the list as an array, or null when invalid.
func (l IssuerList) MarshalJSON() ([]byte, error) {
	if !l.valid {
		return jsonNull, nil
	}
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

// ReasonList is the ordered list of reasons of a module.
type ReasonList struct {
	Items []Reason
	valid bool
}

// Reasons returns a valid list holding items.
func Reasons(items ...Reason) ReasonList {
	return ReasonList{Items: items, valid: true}
}

// Valid reports whether the bundler supplied an array.
func (l ReasonList) Valid() bool { return l.valid }

// UnmarshalJSON accepts any JSON value. Non-arrays leave l invalid.
func (l *ReasonList) UnmarshalJSON(data []byte) error {
	*l = ReasonList{}
	raw, ok := decodeArray(data)
	if !ok {
		return nil
	}
	l.valid = true
	l.Items = make([]Reason, len(raw))
	for i, r := range raw {
		_ = json.Unmarshal(r, &l.Items[i])
	}
	return nil
}

// MarshalJSON writes the list as an array, or null when invalid.
func (l ReasonList) MarshalJSON() ([]byte, error) {
	if !l.valid {
		return jsonNull, nil
	}
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

// Module is one compiled module of the build.
type Module struct {
	Name       Identifier `json:"name"`
	IssuerPath IssuerList `json:"issuerPath"`
	Reasons    ReasonList `json:"reasons"`
}

// Stats is a parsed module graph report.
type Stats struct {
	Modules []Module

	raw json.RawMessage
}

// Raw returns the document the stats were parsed from.
// It is nil for Stats built in code.
func (s *Stats) Raw() json.RawMessage { return s.raw }

func decodeArray(data []byte) ([]json.RawMessage, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, false
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false
	}
	return raw, true
}
