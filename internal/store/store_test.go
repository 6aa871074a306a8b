package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/game"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(config.StoreConfig{})
	if err != nil {
		t.Fatalf("Open(in-memory): %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func playedGame(t *testing.T) *game.Game {
	t.Helper()
	g := game.New(config.NewConfigBuilder().WithVerbosity(0).Build())
	g.StartGame()
	for _, click := range []string{"e2", "e4", "e7", "e5", "g1", "f3"} {
		g.SelectSquare(testutil.MustSquare(t, click))
	}
	if g.MoveCount() != 3 {
		t.Fatalf("setup played %d plies, want 3", g.MoveCount())
	}
	return g
}

func TestSaveLoad(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	g := playedGame(t)

	testutil.AssertNoError(t, s.Save(ctx, "opening", g.Snapshot()))

	rec, err := s.Load(ctx, "opening")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Name, "opening")
	testutil.AssertFalse(t, rec.SavedAt.IsZero(), "saved time recorded")
	testutil.AssertEqual(t, rec.Snapshot, g.Snapshot())

	restored := game.New(config.NewConfigBuilder().WithVerbosity(0).Build())
	testutil.AssertNoError(t, restored.Restore(rec.Snapshot))
	testutil.AssertEqual(t, restored.FEN(), g.FEN())
	testutil.AssertNoError(t, restored.Undo(), "history survives the store")
}

func TestSaveReplaces(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	g := playedGame(t)

	testutil.AssertNoError(t, s.Save(ctx, "game", g.Snapshot()))
	testutil.AssertNoError(t, g.Undo())
	testutil.AssertNoError(t, s.Save(ctx, "game", g.Snapshot()))

	rec, err := s.Load(ctx, "game")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Snapshot.State.MoveCount, uint(2))
}

func TestLoadMissing(t *testing.T) {
	s := openMemory(t)
	_, err := s.Load(context.Background(), "nothing")
	testutil.AssertErrorIs(t, err, errors.ErrSnapshotNotFound)
}

func TestInvalidName(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	testutil.AssertErrorIs(t, s.Save(ctx, " ", game.Snapshot{}), errors.ErrInvalidName)
	_, err := s.Load(ctx, "")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidName)
	testutil.AssertErrorIs(t, s.Delete(ctx, ""), errors.ErrInvalidName)
}

func TestLoadDetectsTampering(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	snap := playedGame(t).Snapshot()
	snap.Fingerprint++

	data, err := json.Marshal(Record{Name: "bad", Snapshot: snap})
	testutil.AssertNoError(t, err)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+"bad"), data)
	})
	testutil.AssertNoError(t, err)

	_, err = s.Load(ctx, "bad")
	testutil.AssertErrorIs(t, err, errors.ErrCorruptSnapshot)
}

func TestLoadRejectsColourlessPiece(t *testing.T) {
	s := openMemory(t)
	snap := playedGame(t).Snapshot()
	snap.Pieces[0].Colour = chess.NoColour

	data, err := json.Marshal(Record{Name: "none", Snapshot: snap})
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+"none"), data)
	}))

	_, err = s.Load(context.Background(), "none")
	testutil.AssertErrorIs(t, err, errors.ErrCorruptSnapshot)
}

func TestLoadUndecodable(t *testing.T) {
	s := openMemory(t)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+"junk"), []byte("{not json"))
	})
	testutil.AssertNoError(t, err)

	_, err = s.Load(context.Background(), "junk")
	testutil.AssertErrorIs(t, err, errors.ErrCorruptSnapshot)
}

func TestListAndDelete(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	snap := playedGame(t).Snapshot()

	names, err := s.List(ctx)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(names), 0, "empty store")

	for _, name := range []string{"b", "a", "c"} {
		testutil.AssertNoError(t, s.Save(ctx, name, snap))
	}
	// Keys outside the prefix are not snapshots.
	testutil.AssertNoError(t, s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("other/key"), []byte("x"))
	}))

	names, err = s.List(ctx)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, names, []string{"a", "b", "c"})

	testutil.AssertNoError(t, s.Delete(ctx, "b"))
	testutil.AssertErrorIs(t, s.Delete(ctx, "b"), errors.ErrSnapshotNotFound)

	names, err = s.List(ctx)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, names, []string{"a", "c"})
}

func TestCancelledContext(t *testing.T) {
	s := openMemory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	testutil.AssertErrorIs(t, s.Save(ctx, "x", game.Snapshot{}), context.Canceled)
	_, err := s.Load(ctx, "x")
	testutil.AssertErrorIs(t, err, context.Canceled)
	_, err = s.List(ctx)
	testutil.AssertErrorIs(t, err, context.Canceled)
	testutil.AssertErrorIs(t, s.Delete(ctx, "x"), context.Canceled)
}

func TestOpenOnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	snap := playedGame(t).Snapshot()

	s, err := Open(config.StoreConfig{Dir: dir, SyncWrites: true})
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, s.Save(ctx, "kept", snap))
	testutil.AssertNoError(t, s.Close())

	s, err = Open(config.StoreConfig{Dir: dir})
	testutil.AssertNoError(t, err)
	defer s.Close()
	rec, err := s.Load(ctx, "kept")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Snapshot, snap)
}
