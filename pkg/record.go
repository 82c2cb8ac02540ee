package relcut

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const recordHeader = "# Release version record. Generated by relcut; do not edit by hand."

// LoadRecord reads the version record at path. A missing file fails with
// ErrRecordMissing; unparsable content fails with ErrInvalidVersion.
func LoadRecord(path string) (Version, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Version{}, fmt.Errorf("%w: %s", ErrRecordMissing, path)
		}
		return Version{}, fmt.Errorf("reading version record %s: %w", path, err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		value, ok := strings.CutPrefix(line, "version=")
		if !ok {
			return Version{}, fmt.Errorf("%w: unexpected line %q in %s", ErrInvalidVersion, line, path)
		}
		return ParseVersion(value)
	}
	return Version{}, fmt.Errorf("%w: no version entry in %s", ErrInvalidVersion, path)
}

// SaveRecord replaces the record file with the given version. The file is
// written whole via a temp file and rename so a reader performing a single
// full read never observes partial content. No crash-transactional guarantee
// is made beyond that.
func SaveRecord(path string, v Version) error {
	content := fmt.Sprintf("%s\nversion=%s\n", recordHeader, v)
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing version record %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing version record %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing version record %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing version record %s: %w", path, err)
	}
	return nil
}

// InitRecord returns the recorded version, creating the record on first use.
// When the file is absent the confirmer is asked for the initial version,
// with candidate as the default; the answer is validated and persisted.
// When the file already exists this is equivalent to LoadRecord and the
// confirmer is never consulted.
func InitRecord(path string, candidate Version, confirm Confirmer) (Version, error) {
	v, err := LoadRecord(path)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, ErrRecordMissing) {
		return Version{}, err
	}
	answer, err := confirm.Confirm("Initial version", candidate.String())
	if err != nil {
		return Version{}, err
	}
	initial, err := ParseVersion(answer)
	if err != nil {
		return Version{}, err
	}
	if err := SaveRecord(path, initial); err != nil {
		return Version{}, err
	}
	return initial, nil
}
