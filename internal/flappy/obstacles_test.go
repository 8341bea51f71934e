package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/emoji-flappy/internal/config"
)

const eps = 1e-9

func TestSpawnerGapBounds(t *testing.T) {
	for _, preset := range config.Presets() {
		t.Run(string(preset), func(t *testing.T) {
			cfg := config.Default()
			if err := config.ApplyPreset(&cfg, preset); err != nil {
				t.Fatalf("ApplyPreset: %v", err)
			}
			sp := NewSpawner(cfg, rand.New(rand.NewSource(99)))
			oc := cfg.Obstacles
			h := cfg.Playfield.Height

			now := 0.0
			for i := 0; i < 10000; i++ {
				now = sp.Deadline()
				o, ok := sp.MaybeSpawn(now)
				if !ok {
					t.Fatalf("draw %d: expected spawn at deadline", i)
				}
				if o.GapTop >= o.GapBottom {
					t.Fatalf("draw %d: gap top %v not above bottom %v", i, o.GapTop, o.GapBottom)
				}
				if g := o.GapSize(); g < oc.MinGap-eps || g > oc.MaxGap+eps {
					t.Fatalf("draw %d: gap size %v outside [%v, %v]", i, g, oc.MinGap, oc.MaxGap)
				}
				if o.GapTop < oc.Margin-eps {
					t.Fatalf("draw %d: gap top %v above margin %v", i, o.GapTop, oc.Margin)
				}
				if o.GapBottom > h-oc.Margin+eps {
					t.Fatalf("draw %d: gap bottom %v below %v", i, o.GapBottom, h-oc.Margin)
				}
				if o.X != cfg.Playfield.Width || o.Width != oc.Width || o.Passed {
					t.Fatalf("draw %d: unexpected spawn %+v", i, o)
				}
			}
		})
	}
}

func TestSpawnerDeadline(t *testing.T) {
	cfg := config.Default()
	sp := NewSpawner(cfg, rand.New(rand.NewSource(3)))
	oc := cfg.Obstacles

	first := sp.Deadline()
	if first < oc.MinInterval || first > oc.MaxInterval {
		t.Fatalf("first deadline %v outside [%v, %v]", first, oc.MinInterval, oc.MaxInterval)
	}

	if _, ok := sp.MaybeSpawn(first - 0.001); ok {
		t.Error("spawned before the deadline")
	}
	if sp.Deadline() != first {
		t.Error("deadline moved without a spawn")
	}

	if _, ok := sp.MaybeSpawn(first); !ok {
		t.Fatal("expected spawn at the deadline")
	}
	next := sp.Deadline()
	if d := next - first; d < oc.MinInterval-eps || d > oc.MaxInterval+eps {
		t.Errorf("interval %v outside [%v, %v]", d, oc.MinInterval, oc.MaxInterval)
	}

	sp.Schedule(50)
	if d := sp.Deadline() - 50; d < oc.MinInterval-eps || d > oc.MaxInterval+eps {
		t.Errorf("rescheduled deadline %v not relative to 50", d)
	}
}

func TestSpawnerAdvanceAndRetire(t *testing.T) {
	cfg := config.Default()
	sp := NewSpawner(cfg, rand.New(rand.NewSource(1)))
	o := Obstacle{X: 10, Width: 64, GapTop: 200, GapBottom: 360}

	sp.Advance(&o, 0.25)
	if o.X != 10-cfg.Physics.ScrollSpeed*0.25 {
		t.Fatalf("unexpected x after advance: %v", o.X)
	}

	tests := []struct {
		x    float64
		want bool
	}{
		{0, false},
		{-64, false}, // right edge exactly at 0
		{-64.5, true},
		{-500, true},
	}
	for _, tt := range tests {
		o := Obstacle{X: tt.x, Width: 64}
		if got := sp.IsRetired(o); got != tt.want {
			t.Errorf("IsRetired(x=%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestSpawnersWithDifferentSeedsDiffer(t *testing.T) {
	cfg := config.Default()
	a := NewSpawner(cfg, rand.New(rand.NewSource(1)))
	b := NewSpawner(cfg, rand.New(rand.NewSource(2)))

	same := 0
	for i := 0; i < 20; i++ {
		oa, _ := a.MaybeSpawn(a.Deadline())
		ob, _ := b.MaybeSpawn(b.Deadline())
		if oa.GapTop == ob.GapTop && oa.GapBottom == ob.GapBottom {
			same++
		}
	}
	if same == 20 {
		t.Error("spawners with different seeds produced identical obstacles")
	}
}

func TestSpawnersWithSameSeedAgree(t *testing.T) {
	cfg := config.Default()
	a := NewSpawner(cfg, rand.New(rand.NewSource(42)))
	b := NewSpawner(cfg, rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		oa, _ := a.MaybeSpawn(a.Deadline())
		ob, _ := b.MaybeSpawn(b.Deadline())
		if oa != ob {
			t.Fatalf("draw %d: %+v != %+v", i, oa, ob)
		}
	}
}
