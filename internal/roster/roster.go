// Package roster loads the pool of candidate player names that targets are
// drawn from at the start of each game.
package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"
)

// ErrEmpty is returned when the roster file contains no usable names.
var ErrEmpty = errors.New("roster contains no players")

// entry mirrors one element of the roster JSON file.
type entry struct {
	Name string `json:"name"`
}

// Roster is a fixed pool of player names with random selection.
type Roster struct {
	names []string

	mu  sync.Mutex
	rng *rand.Rand
}

// Load reads a JSON array of {"name": ...} objects from path.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return Parse(data)
}

// Parse builds a roster from raw JSON. Entries with empty names are skipped.
func Parse(data []byte) (*Roster, error) {
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name != "" {
			names = append(names, e.Name)
		}
	}
	if len(names) == 0 {
		return nil, ErrEmpty
	}

	return &Roster{
		names: names,
		rng:   rand.New(rand.NewSource(rand.Int63())),
	}, nil
}

// Random returns a uniformly random name from the pool.
func (r *Roster) Random() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.names[r.rng.Intn(len(r.names))]
}

// Size returns the number of names in the pool.
func (r *Roster) Size() int {
	return len(r.names)
}
