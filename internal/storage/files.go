package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const (
	// maxJSONFileSize exported objects are small; use 1MB as a cut off to
	// avoid reading invalid, extremely large, files
	maxJSONFileSize = 1024 * 1024 // 1MB
)

var (
	// nonAlphanumericRegex matches any non-alphanumeric characters for filename sanitization
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]+`)
)

// ParseError indicates a local JSON file could not be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteJSONFile writes data as JSON to the specified path with indentation.
// Creates the parent directory if it doesn't exist. Map keys marshal in
// sorted order, so repeated exports of unchanged objects are byte-identical.
func WriteJSONFile(path string, data any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	return nil
}

// ReadJSONFile reads and parses one JSON object file. Files larger than 1MB
// are rejected before reading.
func ReadJSONFile(path string) (map[string]any, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxJSONFileSize {
		return nil, fmt.Errorf("file too large: %s (%d bytes, max %d)", path, info.Size(), maxJSONFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var content map[string]any
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return content, nil
}

// ListJSONFiles walks dir recursively and returns the paths of all .json
// files in sorted order.
func ListJSONFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", dir)
	}

	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(info.Name(), ".json") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// SanitizeFilename replaces non-alphanumeric characters with hyphens and trims.
func SanitizeFilename(name string) string {
	return strings.Trim(nonAlphanumericRegex.ReplaceAllString(name, "-"), "-")
}
