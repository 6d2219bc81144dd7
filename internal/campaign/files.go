package campaign

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"wargame/internal/roster"
)

const (
	BattlesFile = "battles.json"
	RosterFile  = "roster.json"
)

var ErrIO = errors.New("file i/o failed")

// Models of different sessions share one data directory. fileLocks holds a
// mutex per file path so saves and loads of the same file never interleave.
var fileLocks sync.Map

func lockFile(path string) func() {
	v, _ := fileLocks.LoadOrStore(path, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (m *Model) path(name string) string { return filepath.Join(m.dataDir, name) }

// SaveBattles writes every named battle to the data directory.
func (m *Model) SaveBattles() error {
	var buf bytes.Buffer
	if err := m.journal.Write(&buf, m.now()); err != nil {
		return fmt.Errorf("%w: encode battles: %v", ErrIO, err)
	}
	if err := writeFileAtomic(m.path(BattlesFile), buf.Bytes()); err != nil {
		return err
	}
	slog.Info("battles saved", "path", m.path(BattlesFile), "battles", len(m.journal.Names())-1)
	return nil
}

// LoadBattles replaces the named battles with the saved ones.
func (m *Model) LoadBattles() error {
	data, err := readFileLocked(m.path(BattlesFile))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := m.journal.Load(bytes.NewReader(data)); err != nil {
		slog.Warn("battles file rejected", "path", m.path(BattlesFile), "err", err)
		return err
	}
	slog.Info("battles loaded", "path", m.path(BattlesFile), "battles", len(m.journal.Names())-1)
	return nil
}

func (m *Model) SaveRoster() error {
	var buf bytes.Buffer
	if err := m.roster.Write(&buf, m.now()); err != nil {
		return fmt.Errorf("%w: encode roster: %v", ErrIO, err)
	}
	if err := writeFileAtomic(m.path(RosterFile), buf.Bytes()); err != nil {
		return err
	}
	slog.Info("roster saved", "path", m.path(RosterFile), "units", m.roster.Len())
	return nil
}

// LoadRoster replaces the roster with the saved one. Participants refer to
// units of the old roster, so they are reset.
func (m *Model) LoadRoster() error {
	data, err := readFileLocked(m.path(RosterFile))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	r, err := roster.Read(bytes.NewReader(data))
	if err != nil {
		slog.Warn("roster file rejected", "path", m.path(RosterFile), "err", err)
		return err
	}
	m.roster = r
	m.ResetParticipants()
	slog.Info("roster loaded", "path", m.path(RosterFile), "units", r.Len())
	return nil
}

func readFileLocked(path string) ([]byte, error) {
	defer lockFile(path)()
	return os.ReadFile(path)
}

// writeFileAtomic writes through a uniquely named temporary file in the same
// directory so a failed save never truncates the previous file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer lockFile(path)()
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	tmp := f.Name()
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, 0o644)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
