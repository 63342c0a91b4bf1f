package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Choice is a subclass, house, or heritage selection.
// It is either a SimpleChoice or a CompoundChoice; callers switch on the concrete type.
type Choice interface {
	// Main returns the top-level option that was picked
	Main() string
	isChoice()
}

// SimpleChoice picks a single named option
type SimpleChoice struct {
	Name string
}

// Main returns the option name
func (c SimpleChoice) Main() string { return c.Name }

func (SimpleChoice) isChoice() {}

// CompoundChoice picks an option and a nested sub-option, e.g. Study Buddy -> Herbology
type CompoundChoice struct {
	MainChoice string `json:"main_choice"`
	SubChoice  string `json:"sub_choice"`
}

// Main returns the outer option name
func (c CompoundChoice) Main() string { return c.MainChoice }

func (CompoundChoice) isChoice() {}

// ChoiceMap holds choices keyed by feature name
type ChoiceMap map[string]Choice

// Keys returns the feature names in sorted order so that scans are deterministic
func (m ChoiceMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy; Choice values are immutable
func (m ChoiceMap) Clone() ChoiceMap {
	if m == nil {
		return nil
	}
	out := make(ChoiceMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes simple choices as a bare string and compound choices as an object
func (m ChoiceMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	raw := make(map[string]interface{}, len(m))
	for k, v := range m {
		switch c := v.(type) {
		case SimpleChoice:
			raw[k] = c.Name
		case CompoundChoice:
			raw[k] = c
		case nil:
			continue
		default:
			return nil, fmt.Errorf("choice %q: unsupported type %T", k, v)
		}
	}
	return json.Marshal(raw)
}

// UnmarshalJSON accepts either shape per key: "Name" or {"main_choice": ..., "sub_choice": ...}.
// The camelCase keys written by older clients are accepted too.
func (m *ChoiceMap) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = nil
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(ChoiceMap, len(raw))
	for k, v := range raw {
		c, err := decodeChoice(v)
		if err != nil {
			return fmt.Errorf("choice %q: %w", k, err)
		}
		if c != nil {
			out[k] = c
		}
	}
	*m = out
	return nil
}

func decodeChoice(data json.RawMessage) (Choice, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return nil, err
		}
		if name == "" {
			return nil, nil
		}
		return SimpleChoice{Name: name}, nil
	}

	var obj struct {
		MainChoice      string `json:"main_choice"`
		SubChoice       string `json:"sub_choice"`
		LegacyMainCamel string `json:"mainChoice"`
		LegacySubCamel  string `json:"subChoice"`
	}
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, err
	}

	main := obj.MainChoice
	if main == "" {
		main = obj.LegacyMainCamel
	}
	sub := obj.SubChoice
	if sub == "" {
		sub = obj.LegacySubCamel
	}

	switch {
	case main == "":
		return nil, nil
	case sub == "":
		return SimpleChoice{Name: main}, nil
	default:
		return CompoundChoice{MainChoice: main, SubChoice: sub}, nil
	}
}
