package file

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const tempSuffix = ".tmp"

// WriteAtomic stores data at path by writing a uuid-named temp file in the same directory and renaming it into
// place. Readers of path either see nothing or the complete content.
func WriteAtomic(afs afero.Fs, path string, data []byte) error {
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("error generating temp name %w", err)
	}

	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s%s", id.String(), tempSuffix))

	log.Debug().Int("bytes", len(data)).Str("path", tmp).Msg("creating temp file")

	if err := afero.WriteFile(afs, tmp, data, 0o644); err != nil {
		Remove(afs, tmp)
		return fmt.Errorf("error writing temp file %w", err)
	}

	if err := afs.Rename(tmp, path); err != nil {
		Remove(afs, tmp)
		return fmt.Errorf("error moving temp file into place %w", err)
	}

	log.Debug().Str("path", path).Msg("created file")

	return nil
}

// Exists reports whether a regular file is present at path.
func Exists(afs afero.Fs, path string) (bool, error) {
	info, err := afs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return info.Mode().IsRegular(), nil
}

// Readable opens and closes path to make sure it is a regular file the process may read.
func Readable(afs afero.Fs, path string) error {
	f, err := afs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}

	return nil
}

// Remove deletes path and logs the outcome. A missing file is not an error.
func Remove(afs afero.Fs, path string) {
	err := afs.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up file")
		return
	}
	log.Debug().Str("path", path).Msg("cleaned up file")
}
