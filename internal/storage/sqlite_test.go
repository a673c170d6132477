package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/physics"
	"github.com/vovakirdan/tui-pong/internal/round"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testReplay(seed int64) Replay {
	cfg := config.DefaultPongConfig()
	cfg.Launch.MinDeg = 7
	return Replay{
		ReplayInfo: ReplayInfo{
			Seed:        seed,
			Field:       round.Playfield{HalfWidth: 8.5, HalfHeight: 5},
			LeftPlayer:  "tracker",
			RightPlayer: "human",
		},
		Config: cfg,
		Steps: []round.Frame{
			{Delta: 0.016, Left: physics.DirectionUp},
			{Delta: 0.017, Right: physics.DirectionDown},
			{Delta: 0.05},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)
	want := testReplay(99)

	id, err := store.SaveReplay(want)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.LoadReplay(id)
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}

	if got.ID != id || got.Seed != 99 {
		t.Errorf("header = %+v", got.ReplayInfo)
	}
	if got.Field != want.Field {
		t.Errorf("Field = %+v, expected %+v", got.Field, want.Field)
	}
	if got.LeftPlayer != "tracker" || got.RightPlayer != "human" {
		t.Errorf("players = %q/%q", got.LeftPlayer, got.RightPlayer)
	}
	if got.Config != want.Config {
		t.Errorf("Config = %+v, expected %+v", got.Config, want.Config)
	}
	if got.Frames != len(want.Steps) || len(got.Steps) != len(want.Steps) {
		t.Fatalf("frames = %d/%d, expected %d", got.Frames, len(got.Steps), len(want.Steps))
	}
	for i := range want.Steps {
		if got.Steps[i] != want.Steps[i] {
			t.Errorf("frame %d = %+v, expected %+v", i, got.Steps[i], want.Steps[i])
		}
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestLoadReplayNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadReplay(42)
	if !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("LoadReplay() error = %v, expected ErrReplayNotFound", err)
	}
}

func TestListReplays(t *testing.T) {
	store := openTestStore(t)

	for seed := int64(1); seed <= 3; seed++ {
		if _, err := store.SaveReplay(testReplay(seed)); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	list, err := store.ListReplays(2)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 replays, got %d", len(list))
	}
	// Most recent first
	if list[0].Seed != 3 || list[1].Seed != 2 {
		t.Errorf("unexpected order: seeds %d, %d", list[0].Seed, list[1].Seed)
	}
	if list[0].Frames != 3 {
		t.Errorf("Frames = %d, expected 3", list[0].Frames)
	}
}

func TestDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(testReplay(5))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, err := store.LoadReplay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("LoadReplay() after delete = %v, expected ErrReplayNotFound", err)
	}
	if err := store.DeleteReplay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("second DeleteReplay() = %v, expected ErrReplayNotFound", err)
	}
}

func TestReplayReproducesSession(t *testing.T) {
	store := openTestStore(t)
	cfg := config.DefaultPongConfig()
	field := round.PlayfieldFromAspect(1.6, cfg.Field.HalfHeight)

	live := round.New(field, round.NewLaunchSampler(11, cfg.Launch.MinDeg), round.WithLayout(cfg.Layout()))
	rec := round.NewRecorder(0)
	for i := 0; i < 900; i++ {
		v := live.View()
		f := round.Frame{
			Delta: 1.0 / 60,
			Left:  round.Track(v.Ball.Y, v.Left.Y, cfg.AI.Deadband),
			Right: physics.Direction(i / 30 % 3),
		}
		rec.Record(f)
		live.Step(f)
	}

	id, err := store.SaveReplay(Replay{
		ReplayInfo: ReplayInfo{Seed: 11, Field: field, LeftPlayer: "tracker", RightPlayer: "human"},
		Config:     cfg,
		Steps:      rec.Frames(),
	})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	r, err := store.LoadReplay(id)
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}
	again := round.New(r.Field, round.NewLaunchSampler(r.Seed, r.Config.Launch.MinDeg), round.WithLayout(r.Config.Layout()))
	round.Replay(again, r.Steps)

	if again.Ball().Position() != live.Ball().Position() {
		t.Errorf("replayed ball at %v, live ball at %v", again.Ball().Position(), live.Ball().Position())
	}
}
