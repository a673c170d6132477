// Package registry provides a global registry of paddle players.
// Players register themselves in init() functions, allowing the platform
// to pick who drives each paddle by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/physics"
	"github.com/vovakirdan/tui-pong/internal/round"
)

// Player decides a paddle's intent once per frame.
type Player interface {
	// ID returns a unique identifier (e.g., "human", "tracker").
	// Used for CLI flags and stored replays.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Intent returns the movement for the paddle on side given the
	// current view of the field.
	Intent(side physics.Side, view round.View) physics.Direction
}

// InputReceiver is implemented by players that are driven by keyboard
// input. The platform feeds them the seat's frame before asking for an
// intent.
type InputReceiver interface {
	Feed(frame core.InputFrame)
}

// PlayerInfo contains metadata about a registered player.
type PlayerInfo struct {
	ID    string
	Title string
}

// Settings are the tunables handed to a factory.
type Settings struct {
	Deadband   float64 // tracker offset below which the paddle holds still
	HoldFrames int     // ticks a key press keeps a human paddle moving
}

// Factory creates a new player.
type Factory func(s Settings) Player

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a player factory to the registry.
// Typically called from an init() function.
// Panics if a player with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: player %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(Settings{}).Title()
}

// List returns information about all registered players, sorted by ID.
func List() []PlayerInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PlayerInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PlayerInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a player by its ID.
// Returns an error if the ID is not registered.
func Create(id string, s Settings) (Player, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown player %q", id)
	}

	return f(s), nil
}

// Exists checks if a player with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
