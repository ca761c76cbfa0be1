package pet

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Store reads and writes the save file: a single flat JSON object holding
// exactly the State fields. Writes go through a temp file and rename so a
// power loss mid-write never corrupts the previous save.
type Store struct {
	path string
}

// NewStore returns a store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the save file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the saved state. A missing, unreadable or malformed file falls
// back silently to a fresh default pet; loading never fails the host.
func (s *Store) Load() State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Printf("No save at %s (%v), starting fresh", s.path, err)
		return DefaultState()
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		log.Printf("Corrupt save at %s (%v), starting fresh", s.path, err)
		return DefaultState()
	}
	return st
}

// Save writes the state durably. Errors are logged and swallowed: in-memory
// state stays authoritative and the previous save file stays intact.
func (s *Store) Save(st *State) {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		log.Printf("Error encoding state: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Printf("Error creating save directory: %v", err)
		return
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Printf("Error writing state: %v", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		log.Printf("Error committing state: %v", err)
	}
}
