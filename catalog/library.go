// ABOUTME: Builds the version/jacket index from a local audio library
// ABOUTME: Reads file tags in parallel and maps album names to game versions

package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhowden/tag"

	"chartpick/pool"
)

// audioExtensions lists the file types the scanner reads tags from.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".flac": true,
	".ogg":  true,
}

// scanResult is one scanned file's contribution to the index.
type scanResult struct {
	title   string
	version string
	jacket  string
	err     error
}

// ScanLibrary walks an audio library (typically a soundtrack rip), reads
// the tags of every audio file and builds a version index from them: the
// title tag becomes the index key, the album tag is mapped to a game
// version, and embedded artwork is extracted into jacketDir when given.
//
// Files are read in parallel but added to the index in path order, so
// the index (and therefore prefix-fallback behavior) is deterministic
// for a given library.
func ScanLibrary(root, jacketDir string, verbose bool) (*VersionIndex, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && audioExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk library: %w", err)
	}

	sort.Strings(paths)

	if jacketDir != "" {
		if err := os.MkdirAll(jacketDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create jacket directory: %w", err)
		}
	}

	results := make([]scanResult, len(paths))

	workers := pool.New(len(paths))
	for i, path := range paths {
		workers.Submit(func() {
			results[i] = scanFile(path, jacketDir)
		})
	}

	workers.Wait()
	workers.Close()

	vi := NewVersionIndex()
	skipped := 0

	for i, res := range results {
		if res.err != nil {
			if verbose {
				fmt.Printf("[!] Skipping file (could not read tags): %s: %v\n", paths[i], res.err)
			}

			skipped++

			continue
		}

		vi.Add(res.title, res.version, res.jacket)
	}

	if verbose {
		fmt.Printf("Indexed %d titles from %d files (%d skipped)\n", vi.Len(), len(paths), skipped)
	}

	return vi, nil
}

// scanFile reads one audio file's tags and extracts embedded artwork.
func scanFile(path, jacketDir string) scanResult {
	file, err := os.Open(path)
	if err != nil {
		return scanResult{err: fmt.Errorf("failed to open file: %w", err)}
	}
	defer func() { _ = file.Close() }()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return scanResult{err: fmt.Errorf("failed to read metadata: %w", err)}
	}

	title := metadata.Title()
	if title == "" {
		// Fall back to the filename, minus extension
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	res := scanResult{
		title:   title,
		version: versionFromAlbum(metadata.Album()),
	}

	if jacketDir != "" {
		if pic := metadata.Picture(); pic != nil && len(pic.Data) > 0 {
			res.jacket = writeJacket(jacketDir, title, pic)
		}
	}

	return res
}

// versionFromAlbum maps an album tag to a known game version. Album
// names in soundtrack rips embed the edition name ("jubeat saucer
// fulfill ORIGINAL SOUNDTRACK"); the longest edition match wins so
// "saucer fulfill" is not claimed by "saucer". The bare franchise name
// appears in every album title and only identifies the first release,
// so it is consulted last. Unrecognized albums resolve to the newest
// version.
func versionFromAlbum(album string) string {
	a := strings.ToLower(album)

	best := ""
	for _, v := range GameVersions[1:] {
		if strings.Contains(a, v) && len(v) > len(best) {
			best = v
		}
	}

	if best != "" {
		return best
	}

	if strings.Contains(a, GameVersions[0]) {
		return GameVersions[0]
	}

	return NewestVersion()
}

// writeJacket stores embedded artwork under jacketDir, named after the
// title's normalized key. Returns the written path, or empty on failure
// (a missing jacket just falls back to the placeholder at display time).
func writeJacket(jacketDir, title string, pic *tag.Picture) string {
	ext := pictureExt(pic)
	name := jacketFileName(TitleKey(title)) + ext
	path := filepath.Join(jacketDir, name)

	if err := os.WriteFile(path, pic.Data, 0644); err != nil {
		return ""
	}

	return path
}

// pictureExt picks a file extension from the picture MIME type.
func pictureExt(pic *tag.Picture) string {
	switch pic.MIMEType {
	case "image/png":
		return ".png"
	default:
		return ".jpg"
	}
}

// jacketFileName makes a title key safe as a file name.
func jacketFileName(key string) string {
	var b strings.Builder

	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('_')
		}
	}

	if b.Len() == 0 {
		return "_untitled"
	}

	return b.String()
}
