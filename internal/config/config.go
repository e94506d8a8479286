package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed default_config.json
var defaultConfig []byte

const (
	NumSuspects = 6
	NumWeapons  = 9
	NumRooms    = 9
)

var (
	ErrInvalidVocabulary   = errors.New("invalid vocabulary")
	ErrUnknownAdjacentRoom = errors.New("adjacency references an unknown room")
	ErrInvalidRoomDegree   = errors.New("room must connect to 2-4 other rooms")
	ErrAsymmetricGraph     = errors.New("room graph is not symmetric")
	ErrDuplicateAdjacency  = errors.New("room lists the same neighbour twice")
	ErrInvalidStartRoom    = errors.New("invalid human start room")
)

// CardCategory defines the type of a card using a typed enum.
type CardCategory int

const (
	CategorySuspect CardCategory = iota
	CategoryWeapon
	CategoryRoom
)

// Categories lists every card category in dealing order.
var Categories = []CardCategory{CategorySuspect, CategoryWeapon, CategoryRoom}

func (cc CardCategory) String() string {
	return []string{"suspects", "weapons", "rooms"}[cc]
}

// SuspectID, WeaponID and RoomID index into the matching vocabulary of a GameConfig.
type (
	SuspectID int
	WeaponID  int
	RoomID    int
)

// NoSuspect marks an empty room.
const NoSuspect SuspectID = -1

// RoomDef is one entry of the room table: a name and the rooms reachable from it.
type RoomDef struct {
	Name     string   `json:"name"`
	Adjacent []string `json:"adjacent"`
}

// GameConfig holds the static definitions for a game: vocabularies, the room
// table and the lookup tables derived from them. It is read-only once loaded.
type GameConfig struct {
	Suspects       []string  `json:"suspects"`
	Weapons        []string  `json:"weapons"`
	Rooms          []RoomDef `json:"rooms"`
	HumanStartRoom string    `json:"human_start_room"`

	suspectIDs map[string]SuspectID
	weaponIDs  map[string]WeaponID
	roomIDs    map[string]RoomID
	adjacency  [][]RoomID
	startRoom  RoomID
}

// Default returns the built-in nine room mansion.
func Default() (*GameConfig, error) {
	return Parse(defaultConfig)
}

// Load reads, parses, and validates the game configuration from a file.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a JSON game definition and builds its lookup tables.
func Parse(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.prepare(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *GameConfig) prepare() error {
	if len(c.Suspects) != NumSuspects || len(c.Weapons) != NumWeapons || len(c.Rooms) != NumRooms {
		return fmt.Errorf("%w: want %d suspects, %d weapons and %d rooms, got %d, %d and %d",
			ErrInvalidVocabulary, NumSuspects, NumWeapons, NumRooms, len(c.Suspects), len(c.Weapons), len(c.Rooms))
	}

	seen := make(map[string]CardCategory)
	claim := func(name string, cat CardCategory) error {
		if name == "" {
			return fmt.Errorf("%w: empty name in %s", ErrInvalidVocabulary, cat)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q appears in both %s and %s", ErrInvalidVocabulary, name, prev, cat)
		}
		seen[name] = cat
		return nil
	}

	c.suspectIDs = make(map[string]SuspectID, len(c.Suspects))
	for i, name := range c.Suspects {
		if err := claim(name, CategorySuspect); err != nil {
			return err
		}
		c.suspectIDs[name] = SuspectID(i)
	}
	c.weaponIDs = make(map[string]WeaponID, len(c.Weapons))
	for i, name := range c.Weapons {
		if err := claim(name, CategoryWeapon); err != nil {
			return err
		}
		c.weaponIDs[name] = WeaponID(i)
	}
	c.roomIDs = make(map[string]RoomID, len(c.Rooms))
	for i, room := range c.Rooms {
		if err := claim(room.Name, CategoryRoom); err != nil {
			return err
		}
		c.roomIDs[room.Name] = RoomID(i)
	}

	c.adjacency = make([][]RoomID, len(c.Rooms))
	for i, room := range c.Rooms {
		if n := len(room.Adjacent); n < 2 || n > 4 {
			return fmt.Errorf("%w: %s has %d", ErrInvalidRoomDegree, room.Name, n)
		}
		listed := make(map[RoomID]bool, len(room.Adjacent))
		for _, name := range room.Adjacent {
			id, ok := c.roomIDs[name]
			if !ok {
				return fmt.Errorf("%w: %s -> %q", ErrUnknownAdjacentRoom, room.Name, name)
			}
			if id == RoomID(i) {
				return fmt.Errorf("%w: %s connects to itself", ErrInvalidVocabulary, room.Name)
			}
			if listed[id] {
				return fmt.Errorf("%w: %s -> %s", ErrDuplicateAdjacency, room.Name, name)
			}
			listed[id] = true
			c.adjacency[i] = append(c.adjacency[i], id)
		}
	}

	if err := c.validateSymmetry(); err != nil {
		return err
	}

	start, ok := c.roomIDs[c.HumanStartRoom]
	if !ok {
		return fmt.Errorf("%w: unknown room %q", ErrInvalidStartRoom, c.HumanStartRoom)
	}
	// Suspect slot i starts in room i, so the human's room must lie past them.
	if int(start) < len(c.Suspects) {
		return fmt.Errorf("%w: %s is a suspect starting room", ErrInvalidStartRoom, c.HumanStartRoom)
	}
	c.startRoom = start
	return nil
}

func (c *GameConfig) validateSymmetry() error {
	for from, neighbours := range c.adjacency {
		for _, to := range neighbours {
			back := false
			for _, r := range c.adjacency[to] {
				if r == RoomID(from) {
					back = true
					break
				}
			}
			if !back {
				return fmt.Errorf("%w: %s -> %s has no return edge",
					ErrAsymmetricGraph, c.Rooms[from].Name, c.Rooms[to].Name)
			}
		}
	}
	return nil
}

// CardListForCategory is a helper to get the correct name list from the config.
func (c *GameConfig) CardListForCategory(cat CardCategory) []string {
	switch cat {
	case CategorySuspect:
		return c.Suspects
	case CategoryWeapon:
		return c.Weapons
	case CategoryRoom:
		names := make([]string, len(c.Rooms))
		for i, r := range c.Rooms {
			names[i] = r.Name
		}
		return names
	default:
		return nil
	}
}

// CategorySize returns the number of cards in a category.
func (c *GameConfig) CategorySize(cat CardCategory) int {
	switch cat {
	case CategorySuspect:
		return len(c.Suspects)
	case CategoryWeapon:
		return len(c.Weapons)
	case CategoryRoom:
		return len(c.Rooms)
	default:
		return 0
	}
}

func (c *GameConfig) SuspectID(name string) (SuspectID, bool) {
	id, ok := c.suspectIDs[name]
	return id, ok
}

func (c *GameConfig) WeaponID(name string) (WeaponID, bool) {
	id, ok := c.weaponIDs[name]
	return id, ok
}

func (c *GameConfig) RoomID(name string) (RoomID, bool) {
	id, ok := c.roomIDs[name]
	return id, ok
}

func (c *GameConfig) SuspectName(id SuspectID) string {
	if id < 0 || int(id) >= len(c.Suspects) {
		return ""
	}
	return c.Suspects[id]
}

func (c *GameConfig) WeaponName(id WeaponID) string {
	if id < 0 || int(id) >= len(c.Weapons) {
		return ""
	}
	return c.Weapons[id]
}

func (c *GameConfig) RoomName(id RoomID) string {
	if id < 0 || int(id) >= len(c.Rooms) {
		return ""
	}
	return c.Rooms[id].Name
}

// Adjacency returns the validated adjacency list of a room in configured order.
func (c *GameConfig) Adjacency(id RoomID) []RoomID {
	if id < 0 || int(id) >= len(c.adjacency) {
		return nil
	}
	return c.adjacency[id]
}

// HumanStart is the room every human player begins in.
func (c *GameConfig) HumanStart() RoomID { return c.startRoom }
