package tools

import (
	"encoding/json"
)

// Snapshot is the persisted form of a registry: tools and aliases, both in declaration order
type Snapshot struct {
	ToolOrder  []ToolID
	Tools      map[ToolID]ToolConfig
	AliasOrder []ToolID
	Aliases    map[ToolID][]string
}

type snapshotJSON struct {
	Tools   json.RawMessage `json:"tools"`
	Aliases json.RawMessage `json:"aliases"`
}

// MarshalJSON encodes the snapshot as {"tools": {...}, "aliases": {...}}
func (s Snapshot) MarshalJSON() ([]byte, error) {
	tools, err := encodeObject(idStrings(s.ToolOrder), func(i int) any {
		return s.Tools[s.ToolOrder[i]]
	})
	if err != nil {
		return nil, err
	}

	aliases, err := encodeObject(idStrings(s.AliasOrder), func(i int) any {
		list := s.Aliases[s.AliasOrder[i]]
		if list == nil {
			list = []string{}
		}
		return list
	})
	if err != nil {
		return nil, err
	}

	return json.Marshal(snapshotJSON{Tools: tools, Aliases: aliases})
}

// UnmarshalJSON decodes a snapshot, keeping the order of tools and aliases
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw snapshotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := Snapshot{
		Tools:   make(map[ToolID]ToolConfig),
		Aliases: make(map[ToolID][]string),
	}

	if len(raw.Tools) > 0 {
		err := decodeObject(raw.Tools, func(key string, value json.RawMessage) error {
			var cfg ToolConfig
			if err := json.Unmarshal(value, &cfg); err != nil {
				return err
			}
			id := ToolID(key)
			if _, seen := out.Tools[id]; !seen {
				out.ToolOrder = append(out.ToolOrder, id)
			}
			out.Tools[id] = cfg
			return nil
		})
		if err != nil {
			return err
		}
	}

	if len(raw.Aliases) > 0 {
		err := decodeObject(raw.Aliases, func(key string, value json.RawMessage) error {
			var list []string
			if err := json.Unmarshal(value, &list); err != nil {
				return err
			}
			id := ToolID(key)
			if _, seen := out.Aliases[id]; !seen {
				out.AliasOrder = append(out.AliasOrder, id)
			}
			out.Aliases[id] = list
			return nil
		})
		if err != nil {
			return err
		}
	}

	*s = out
	return nil
}

func idStrings(ids []ToolID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
