// ABOUTME: Game version and jacket index keyed by normalized title
// ABOUTME: TOML-backed external mapping with exact-then-prefix lookup

package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// GameVersions lists the known release editions, oldest first. The last
// one is the default for songs absent from the index.
var GameVersions = []string{
	"jubeat",
	"ripples",
	"knit",
	"copious",
	"saucer",
	"saucer fulfill",
	"prop",
	"qubell",
	"clan",
	"festo",
	"ave.",
}

// NewestVersion returns the default version for unresolved titles.
func NewestVersion() string {
	return GameVersions[len(GameVersions)-1]
}

// PlaceholderJacket is the artwork reference used when a title cannot
// be resolved against the index.
const PlaceholderJacket = "jackets/_placeholder.png"

// minPrefixKeyLen is the shortest index key eligible for prefix
// matching. Index files built from truncated source data carry short
// keys; anything under four characters matches too much to be useful.
const minPrefixKeyLen = 4

// indexSong is one entry of the TOML index file.
type indexSong struct {
	Title   string `toml:"title"`
	Version string `toml:"version"`
	Jacket  string `toml:"jacket"`
}

// indexFile is the on-disk shape of the version index.
type indexFile struct {
	Songs []indexSong `toml:"song"`
}

// VersionIndex maps normalized title keys to game version and jacket
// reference. Entries keep their file order so the prefix fallback is
// deterministic: the first inserted match wins.
type VersionIndex struct {
	keys  []string // insertion order, normalized
	byKey map[string]indexSong
}

// NewVersionIndex returns an empty index. Every lookup against it
// resolves to the newest version and the placeholder jacket.
func NewVersionIndex() *VersionIndex {
	return &VersionIndex{byKey: make(map[string]indexSong)}
}

// Add inserts a title mapping. The title is normalized to its key; a
// duplicate key keeps the first inserted mapping.
func (vi *VersionIndex) Add(title, version, jacket string) {
	key := TitleKey(title)
	if key == "" {
		return
	}

	if _, exists := vi.byKey[key]; exists {
		return
	}

	vi.keys = append(vi.keys, key)
	vi.byKey[key] = indexSong{Title: title, Version: version, Jacket: jacket}
}

// Len returns the number of indexed titles.
func (vi *VersionIndex) Len() int {
	return len(vi.keys)
}

// Resolve maps a raw catalog title to its game version and jacket
// reference. Exact key match first; failing that, the first index key
// of length >= 4 that prefixes the title's key wins. Unresolvable
// titles fall back to the newest version and the placeholder jacket.
func (vi *VersionIndex) Resolve(title string) (version, jacket string) {
	key := TitleKey(title)

	if song, ok := vi.byKey[key]; ok {
		return resolved(song)
	}

	for _, known := range vi.keys {
		if len(known) < minPrefixKeyLen {
			continue
		}

		if len(known) <= len(key) && key[:len(known)] == known {
			return resolved(vi.byKey[known])
		}
	}

	return NewestVersion(), PlaceholderJacket
}

// resolved fills per-field fallbacks for a matched index entry.
func resolved(song indexSong) (version, jacket string) {
	version = song.Version
	if version == "" {
		version = NewestVersion()
	}

	jacket = song.Jacket
	if jacket == "" {
		jacket = PlaceholderJacket
	}

	return version, jacket
}

// LoadVersionIndex reads a TOML index file. A missing file yields an
// empty index without error, mirroring config loading: the picker works
// without an index, it just cannot filter by version.
func LoadVersionIndex(path string) (*VersionIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewVersionIndex(), nil
		}

		return NewVersionIndex(), fmt.Errorf("failed to read version index: %w", err)
	}

	var file indexFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return NewVersionIndex(), fmt.Errorf("failed to parse version index: %w", err)
	}

	vi := NewVersionIndex()
	for _, song := range file.Songs {
		vi.Add(song.Title, song.Version, song.Jacket)
	}

	return vi, nil
}

// SaveVersionIndex writes the index as TOML, preserving insertion order.
func SaveVersionIndex(path string, vi *VersionIndex) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create index file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close index file: %v\n", err)
		}
	}()

	file := indexFile{Songs: make([]indexSong, 0, len(vi.keys))}
	for _, key := range vi.keys {
		file.Songs = append(file.Songs, vi.byKey[key])
	}

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(file); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	return nil
}
