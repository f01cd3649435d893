// Package strategy persists engine caches between runs.
package strategy

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"tag/game"
	"tag/searcher"
)

const Extension = ".gob"

// Path names the strategy file of an engine kind, board size and piece.
func Path(dir string, kind searcher.Kind, size int, piece game.Piece) string {
	return filepath.Join(dir, fmt.Sprintf("%s-s%d-p%v%s", kind, size, piece, Extension))
}

func Save(path string, s searcher.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create strategy directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create strategy file: %w", err)
	}
	return encode(file, s)
}

// encode writes s and closes w. A failed close means the file may be
// truncated, so it is reported like a failed write.
func encode(w io.WriteCloser, s searcher.Snapshot) (err error) {
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close strategy file: %w", closeErr)
		}
	}()

	if err := gob.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("failed to encode strategy: %w", err)
	}
	return nil
}

// Load reads a strategy file. A missing file is not an error.
func Load(path string) (searcher.Snapshot, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return searcher.Snapshot{}, false, nil
		}
		return searcher.Snapshot{}, false, fmt.Errorf("failed to open strategy file: %w", err)
	}
	defer file.Close()

	var s searcher.Snapshot
	if err := gob.NewDecoder(file).Decode(&s); err != nil {
		return searcher.Snapshot{}, false, fmt.Errorf("failed to decode strategy %s: %w", path, err)
	}
	return s, true, nil
}

// Find looks for the piece's own strategy first and falls back to the one
// stored for the other piece.
func Find(dir string, kind searcher.Kind, size int, piece game.Piece) (searcher.Snapshot, bool, error) {
	for _, p := range []game.Piece{piece, piece.Inverse()} {
		s, ok, err := Load(Path(dir, kind, size, p))
		if err != nil || ok {
			return s, ok, err
		}
	}
	return searcher.Snapshot{}, false, nil
}

// Restore imports the best available strategy into e.
func Restore(e searcher.Engine, dir string) (bool, error) {
	s, ok, err := Find(dir, e.Kind(), e.Size(), e.Piece())
	if err != nil || !ok {
		return false, err
	}
	if err := e.Import(s); err != nil {
		return false, fmt.Errorf("failed to import strategy: %w", err)
	}
	log.Info().Msgf("loaded %s strategy for size %d piece %v from piece %v with %d positions", e.Kind(), e.Size(), e.Piece(), s.Piece, len(s.Entries))
	return true, nil
}

// Persist writes e's cache to its strategy file.
func Persist(e searcher.Engine, dir string) error {
	s := e.Export()
	path := Path(dir, e.Kind(), e.Size(), e.Piece())
	if err := Save(path, s); err != nil {
		return err
	}
	log.Info().Msgf("saved %d positions to %s", len(s.Entries), path)
	return nil
}
