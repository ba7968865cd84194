// Package cache stores minify results on disk, keyed by the content of
// the input and the exact configuration that produced the output. A hit
// means the stored code and map can be reused verbatim; any change to the
// source, the options, or the tool invalidates the key.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion is bumped whenever the payload layout changes, so stale
// entries from older builds read as misses instead of garbage.
const schemaVersion uint16 = 1

// Key identifies one cached result.
type Key [sha256.Size]byte

// KeyFor derives the cache key from the input source, the serialized
// caller options, and the tool version.
func KeyFor(source []byte, optionsFingerprint []byte, toolVersion string) Key {
	h := sha256.New()
	h.Write(source)
	h.Write([]byte{0})
	h.Write(optionsFingerprint)
	h.Write([]byte{0})
	h.Write([]byte(toolVersion))
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

// Payload is the stored result.
type Payload struct {
	Schema uint16
	Code   string
	// Map is the JSON-encoded source map, empty when none was produced.
	Map []byte
}

// Cache is a content-addressed store under one directory. Safe for
// concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a cache at the standard user cache location for app.
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDir(filepath.Join(base, app))
}

// OpenDir initializes a cache rooted at dir.
func OpenDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache root on disk.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) pathFor(key Key) string {
	return filepath.Join(c.dir, "min", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a payload. The write is atomic: a temp file
// renamed into place, so readers never observe a partial entry.
func (c *Cache) Put(key Key, payload *Payload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = schemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

// Get reads a payload; ok reports whether a usable entry exists. A
// missing file, a decode failure, or a schema mismatch is a miss, never
// an error: the cache regenerates, it does not break the build.
func (c *Cache) Get(key Key) (*Payload, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != schemaVersion {
		return nil, false
	}
	return &payload, true
}

// Clear removes every entry.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.RemoveAll(filepath.Join(c.dir, "min"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
