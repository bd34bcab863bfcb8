package sprite

import (
	"image"
	_ "image/png" // register PNG decoder
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// extensions tried, in order, when a name is given without one.
var extensions = []string{".png", ".bmp", ".webp"}

// Store loads images by name from a file system and caches the decoded
// result. A missing image is not an error: Load logs it and returns nil.
type Store struct {
	fsys   fs.FS
	logger *log.Logger

	mu     sync.Mutex
	images map[string]image.Image
	sheets map[sheetKey]*Sprite
}

type sheetKey struct {
	name       string
	rows, cols int
}

// NewStore creates a store reading from fsys. fsys may be nil for a store
// that only holds images registered with Put.
func NewStore(fsys fs.FS, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		fsys:   fsys,
		logger: logger.WithPrefix("images"),
		images: make(map[string]image.Image),
		sheets: make(map[sheetKey]*Sprite),
	}
}

// Put registers img under name, replacing any cached image.
func (s *Store) Put(name string, img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[name] = img
	for k := range s.sheets {
		if k.name == name {
			delete(s.sheets, k)
		}
	}
}

// Has reports whether name is cached or can be found on disk.
func (s *Store) Has(name string) bool {
	return s.Load(name) != nil
}

// Load returns the image called name, decoding and caching it on first use.
// The name may omit the file extension.
func (s *Store) Load(name string) image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	if img, ok := s.images[name]; ok {
		return img
	}
	img, err := s.decode(name)
	if err != nil {
		s.logger.Warn("cannot load image", "name", name, "error", err)
		return nil
	}
	s.images[name] = img
	s.logger.Debug("loaded image", "name", name, "size", img.Bounds().Size())
	return img
}

func (s *Store) decode(name string) (image.Image, error) {
	if s.fsys == nil {
		return nil, fs.ErrNotExist
	}
	candidates := []string{name}
	if path.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range extensions {
			candidates = append(candidates, name+ext)
		}
	}

	var lastErr error = fs.ErrNotExist
	for _, p := range candidates {
		f, err := s.fsys.Open(strings.TrimPrefix(p, "/"))
		if err != nil {
			lastErr = err
			continue
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		return img, nil
	}
	return nil, lastErr
}

// Sprite returns the image called name as a single-frame sprite, or nil.
func (s *Store) Sprite(name string) *Sprite {
	return s.Sheet(name, 1, 1)
}

// Sheet returns the image called name divided into rows×cols frames. Sheets
// are cached per grid. It returns nil when the image is missing or the grid
// is invalid.
func (s *Store) Sheet(name string, rows, cols int) *Sprite {
	key := sheetKey{name, rows, cols}
	s.mu.Lock()
	sh, ok := s.sheets[key]
	s.mu.Unlock()
	if ok {
		return sh
	}

	img := s.Load(name)
	if img == nil {
		return nil
	}
	sh, err := NewSheet(img, rows, cols)
	if err != nil {
		s.logger.Warn("cannot divide image", "name", name, "error", err)
		return nil
	}

	s.mu.Lock()
	s.sheets[key] = sh
	s.mu.Unlock()
	return sh
}

// Names returns the names of all cached images.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.images))
	for n := range s.images {
		names = append(names, n)
	}
	return names
}
