package tablestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// envelopeFormat identifies the on-disk layout.
const envelopeFormat = 1

type envelope struct {
	Format   int    `json:"format"`
	Payload  Table  `json:"payload"`
	Checksum string `json:"checksum"` // BLAKE2b-256 of the compact payload JSON
}

// FileStore stores reaction data tables on disk.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string { return s.dir }

// Path returns where the table for a reaction and kind lives.
func (s *FileStore) Path(reaction string, kind Kind) string {
	return filepath.Join(s.dir, fileName(reaction, kind))
}

// Save writes a table, replacing any previous one for the same
// reaction and kind.
func (s *FileStore) Save(t Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := t.validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	env, err := seal(t)
	if err != nil {
		return err
	}
	return writeJSON(filepath.Join(s.dir, fileName(t.Reaction, t.Kind)), env, 0o644)
}

// Load returns the stored table for a reaction and kind. A missing
// table is reported through ok, not an error.
func (s *FileStore) Load(reaction string, kind Kind) (Table, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(filepath.Join(s.dir, fileName(reaction, kind)))
	if err != nil {
		return Table{}, false, err
	}
	if b == nil {
		return Table{}, false, nil
	}
	t, err := open(b)
	if err != nil {
		return Table{}, false, fmt.Errorf("tablestore: %s %s: %w", reaction, kind, err)
	}
	return t, true, nil
}

// seal wraps a table in an envelope with its payload checksum.
func seal(t Table) (envelope, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return envelope{}, err
	}
	sum := blake2b.Sum256(b)
	return envelope{
		Format:   envelopeFormat,
		Payload:  t,
		Checksum: fmt.Sprintf("%x", sum),
	}, nil
}

// open unwraps an envelope, verifying format and checksum.
func open(b []byte) (Table, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return Table{}, err
	}
	if env.Format != envelopeFormat {
		return Table{}, fmt.Errorf("unsupported table format %d", env.Format)
	}
	payload, err := json.Marshal(env.Payload)
	if err != nil {
		return Table{}, err
	}
	sum := blake2b.Sum256(payload)
	if got := fmt.Sprintf("%x", sum); got != env.Checksum {
		return Table{}, fmt.Errorf("checksum mismatch: table corrupted or edited")
	}
	if err := env.Payload.validate(); err != nil {
		return Table{}, err
	}
	return env.Payload, nil
}
