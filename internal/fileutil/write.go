// Package fileutil provides file-writing helpers for persisted artifacts.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"

	"github.com/xavi-mat/simplertf/core/errors"
)

// WriteFile writes data to path in one bulk write. The write goes to a
// temporary file in the same directory first and is renamed into place,
// so readers never observe a partial artifact.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewIO("create directory", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.NewIO("create", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.NewIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.NewIO("close", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.NewIO("rename", path, err)
	}
	return nil
}

// WriteFileXZ writes data to path as an xz-compressed stream. The same
// temp-then-rename discipline as WriteFile applies.
func WriteFileXZ(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewIO("create directory", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.NewIO("create", path, err)
	}
	tmpPath := tmp.Name()

	w, err := xz.NewWriter(tmp)
	if err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.NewIO("compress", path, fmt.Errorf("xz writer: %w", err))
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		tmp.Close()
		os.Remove(tmpPath)
		return errors.NewIO("compress", path, err)
	}
	if err := w.Close(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.NewIO("compress", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.NewIO("close", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.NewIO("rename", path, err)
	}
	return nil
}
