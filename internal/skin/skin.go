// Package skin provides the registry of looks the hosts draw the game with.
// The simulation only knows geometry; a skin turns each kind of object into
// something a terminal can print, with a plain fallback for terminals that
// cannot draw emoji.
package skin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/emoji-flappy/internal/core"
)

// Tag names a kind of drawable object.
type Tag int

const (
	TagPlayer Tag = iota
	TagObstacle
	TagObstacleEdge
	TagGround
	TagCloud
)

// Look is how one tag is drawn.
type Look struct {
	Glyph    string // Preferred glyph, usually an emoji. May be empty.
	Fallback rune   // Single-width rune used when Glyph cannot be drawn
	Color    core.Color
}

// Skin is a named set of looks.
type Skin struct {
	ID    string
	Title string
	Looks map[Tag]Look
}

// Glyph is a resolved look ready to be written into a core.Screen.
type Glyph struct {
	Rune  rune
	Wide  bool // Occupies two terminal columns
	Color core.Color
}

// Glyph resolves the look for tag. Without emoji support, or when the look
// has no emoji, the fallback rune is used.
func (s Skin) Glyph(tag Tag, emojiOK bool) Glyph {
	look, ok := s.Looks[tag]
	if !ok {
		return Glyph{Rune: ' ', Color: core.ColorDefault}
	}
	if emojiOK {
		if r := []rune(look.Glyph); len(r) > 0 {
			return Glyph{Rune: r[0], Wide: runewidth.RuneWidth(r[0]) == 2, Color: look.Color}
		}
	}
	return Glyph{Rune: look.Fallback, Color: look.Color}
}

// Info describes a registered skin.
type Info struct {
	ID    string
	Title string
}

var (
	skins = make(map[string]Skin)
	mu    sync.RWMutex
)

// Register adds a skin. It panics if the ID is taken.
func Register(s Skin) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := skins[s.ID]; exists {
		panic(fmt.Sprintf("skin: %q already registered", s.ID))
	}
	skins[s.ID] = s
}

// List returns all registered skins sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(skins))
	for _, s := range skins {
		result = append(result, Info{ID: s.ID, Title: s.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the skin registered under id.
func Get(id string) (Skin, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := skins[id]
	if !ok {
		return Skin{}, fmt.Errorf("skin: unknown skin %q", id)
	}
	return s, nil
}

// Exists checks if a skin with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := skins[id]
	return ok
}

// Resolve returns the skin for id, or the ascii skin when the terminal cannot
// draw emoji and the requested skin depends on them.
func Resolve(id string, emojiOK bool) (Skin, error) {
	s, err := Get(id)
	if err != nil {
		return Skin{}, err
	}
	if !emojiOK && s.needsEmoji() {
		return Get(ASCII)
	}
	return s, nil
}

// needsEmoji reports whether any look relies on an emoji glyph.
func (s Skin) needsEmoji() bool {
	for _, look := range s.Looks {
		if look.Glyph != "" {
			return true
		}
	}
	return false
}
