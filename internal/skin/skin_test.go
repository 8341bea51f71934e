package skin

import (
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/emoji-flappy/internal/core"
)

func TestBuiltinsRegistered(t *testing.T) {
	list := List()
	if len(list) < 3 {
		t.Fatalf("expected at least 3 skins, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	for _, id := range []string{Emoji, ASCII, Block} {
		if !Exists(id) {
			t.Errorf("skin %q not registered", id)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Error("expected error for unknown skin")
	}
	if _, err := Resolve("nope", true); err == nil {
		t.Error("expected error resolving unknown skin")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(Skin{ID: ASCII})
}

func TestGlyphFallback(t *testing.T) {
	s, err := Get(Emoji)
	if err != nil {
		t.Fatal(err)
	}

	g := s.Glyph(TagPlayer, true)
	if g.Rune != '🐤' || !g.Wide || g.Color != core.ColorPlayer {
		t.Errorf("unexpected emoji glyph %+v", g)
	}

	g = s.Glyph(TagPlayer, false)
	if g.Rune != '@' || g.Wide {
		t.Errorf("unexpected fallback glyph %+v", g)
	}

	// Looks without an emoji always use the fallback.
	g = s.Glyph(TagObstacleEdge, true)
	if g.Rune != '=' || g.Wide {
		t.Errorf("unexpected edge glyph %+v", g)
	}

	g = Skin{}.Glyph(TagPlayer, true)
	if g.Rune != ' ' {
		t.Errorf("missing look should draw a space, got %q", g.Rune)
	}
}

func TestGlyphWidthMatchesDisplay(t *testing.T) {
	tags := []Tag{TagPlayer, TagObstacle, TagObstacleEdge, TagGround, TagCloud}
	for _, info := range List() {
		s, err := Get(info.ID)
		if err != nil {
			t.Fatal(err)
		}
		for _, emojiOK := range []bool{true, false} {
			for _, tag := range tags {
				g := s.Glyph(tag, emojiOK)
				w := runewidth.RuneWidth(g.Rune)
				if w == 0 {
					t.Errorf("%s tag %d: glyph %q has no display width", info.ID, tag, g.Rune)
				}
				if g.Wide != (w == 2) {
					t.Errorf("%s tag %d glyph %q: Wide=%v but display width %d", info.ID, tag, g.Rune, g.Wide, w)
				}
			}
		}
	}
}

func TestCloudGlyphIsNarrow(t *testing.T) {
	s, err := Get(Emoji)
	if err != nil {
		t.Fatal(err)
	}
	g := s.Glyph(TagCloud, true)
	if g.Rune != '☁' || g.Wide {
		t.Errorf("expected a single-column cloud, got %+v", g)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		id      string
		emojiOK bool
		want    string
	}{
		{Emoji, true, Emoji},
		{Emoji, false, ASCII},
		{Block, false, Block},
		{ASCII, true, ASCII},
	}
	for _, tt := range tests {
		s, err := Resolve(tt.id, tt.emojiOK)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.id, err)
		}
		if s.ID != tt.want {
			t.Errorf("Resolve(%q, %v) = %q, want %q", tt.id, tt.emojiOK, s.ID, tt.want)
		}
	}
}
