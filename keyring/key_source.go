package keyring

import (
	"encoding/json"
	"os"
)

type KeySource interface {
	Candidates() Table
}

// MemoryKeySource is a user supplied key table, usually loaded from a
// JSON key file.
type MemoryKeySource struct {
	Name string `json:"name"`
	Keys Table  `json:"keys"`
}

func (ks MemoryKeySource) Candidates() Table {
	return ks.Keys
}

func LoadKeyFile(name string) (*MemoryKeySource, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	ks := &MemoryKeySource{}
	if err := json.Unmarshal(data, ks); err != nil {
		return nil, err
	}
	if len(ks.Keys) == 0 {
		return nil, keyringError(name + ": key file contains no keys")
	}
	return ks, nil
}
