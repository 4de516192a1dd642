package driver

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when CacheEntry format changes
const digestCacheSchemaVersion uint16 = 1

// DigestCache запоминает хэши файлов, которые уже являются результатом минификации.
// Повторный прогон по тем же файлам пропускает их без токенизации.
// Thread-safe for concurrent access.
type DigestCache struct {
	mu  sync.RWMutex
	fs  afero.Fs
	dir string
}

// CacheEntry is stored per digest.
type CacheEntry struct {
	Schema     uint16
	Path       string
	Size       int
	MinifiedAt int64 // unix seconds
}

// DefaultCacheDir returns $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// OpenDigestCache initializes a cache rooted at dir on fs.
func OpenDigestCache(fs afero.Fs, dir string) (*DigestCache, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DigestCache{fs: fs, dir: dir}, nil
}

// Dir returns the cache root.
func (c *DigestCache) Dir() string {
	return c.dir
}

func (c *DigestCache) pathFor(key Digest) string {
	hexKey := key.String()
	// подкаталог по первым двум символам, чтобы не раздувать один каталог
	return filepath.Join(c.dir, "digests", hexKey[:2], hexKey+".mp")
}

// Put records key as minified output.
func (c *DigestCache) Put(key Digest, entry *CacheEntry) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry.Schema == 0 {
		entry.Schema = digestCacheSchemaVersion
	}
	if entry.MinifiedAt == 0 {
		entry.MinifiedAt = time.Now().Unix()
	}

	p := c.pathFor(key)
	if err = c.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := afero.TempFile(c.fs, filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer func() {
		// после успешного Rename временного файла уже нет
		if rmErr := c.fs.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(entry); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return c.fs.Rename(tmpName, p)
}

// Get loads the entry for key. Entries from another schema read as missing.
func (c *DigestCache) Get(key Digest, out *CacheEntry) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := c.fs.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == digestCacheSchemaVersion, nil
}

// Has reports whether key is recorded. Read errors count as a miss.
func (c *DigestCache) Has(key Digest) bool {
	var entry CacheEntry
	ok, err := c.Get(key, &entry)
	return err == nil && ok
}

// DropAll invalidates the cache.
func (c *DigestCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.fs.RemoveAll(filepath.Join(c.dir, "digests")); err != nil {
		return err
	}
	return c.fs.MkdirAll(c.dir, 0o755)
}
