package domain

import "fmt"

// RoomType tags what happens on the first visit to a room.
type RoomType string

const (
	RoomCombat   RoomType = "combat"
	RoomTreasure RoomType = "treasure"
	RoomEvent    RoomType = "event"
	RoomMiniBoss RoomType = "mini_boss"
)

// Direction names an exit.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists exits in display order.
var Directions = []Direction{North, South, East, West}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// ParseDirection accepts full names and single-letter shorthands.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	case "west", "w":
		return West, nil
	default:
		return "", fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, s)
	}
}

// Room is a node of the run's grid. Rooms live for one run.
type Room struct {
	ID          int
	X, Y        int
	Type        RoomType
	Description string
	Enemies     []*Enemy
	Items       []Item
	EventID     string
	NPC         string
	Visited     bool
	Exits       map[Direction]*Room
}

// NewRoom creates an unconnected room.
func NewRoom(roomType RoomType, description string) *Room {
	return &Room{
		Type:        roomType,
		Description: description,
		Exits:       make(map[Direction]*Room),
	}
}

// Connect links r and other in both directions.
func (r *Room) Connect(dir Direction, other *Room) {
	r.Exits[dir] = other
	other.Exits[dir.Opposite()] = r
}

// Disconnect removes the exit in dir and its reverse.
func (r *Room) Disconnect(dir Direction) {
	other, ok := r.Exits[dir]
	if !ok {
		return
	}
	delete(r.Exits, dir)
	if back, ok := other.Exits[dir.Opposite()]; ok && back == r {
		delete(other.Exits, dir.Opposite())
	}
}

// LivingEnemies returns enemies that are still standing.
func (r *Room) LivingEnemies() []*Enemy {
	alive := make([]*Enemy, 0, len(r.Enemies))
	for _, e := range r.Enemies {
		if e.Stats.IsAlive() {
			alive = append(alive, e)
		}
	}
	return alive
}
