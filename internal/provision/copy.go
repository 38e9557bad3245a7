package provision

import (
	"io"
	"os"
	"path/filepath"

	"rgbsdk/internal/staging"
)

// syncFile installs src at dst and reports whether any bytes moved. When dst
// already matches src's size and modification time the copy is skipped, so
// repeat provisioning of an unchanged build is a cheap no-op.
//
// The copy writes to a temp file in dst's directory and renames it into
// place. A failed copy never leaves a truncated artifact at dst; whatever
// was there before stays intact. Source mode and mtime carry over to the
// destination.
func syncFile(src, dst string) (bool, error) {
	sfi, err := os.Stat(src)
	if err != nil {
		return false, &staging.IOError{Op: "stat", Path: src, Err: err}
	}
	if dfi, err := os.Stat(dst); err == nil &&
		dfi.Size() == sfi.Size() && dfi.ModTime().Equal(sfi.ModTime()) {
		return false, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return false, &staging.IOError{Op: "open", Path: src, Err: err}
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return false, &staging.IOError{Op: "create", Path: dst, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return false, &staging.IOError{Op: "copy", Path: tmpName, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return false, &staging.IOError{Op: "close", Path: tmpName, Err: err}
	}
	if err := os.Chmod(tmpName, sfi.Mode().Perm()); err != nil {
		return false, &staging.IOError{Op: "chmod", Path: tmpName, Err: err}
	}
	if err := os.Chtimes(tmpName, sfi.ModTime(), sfi.ModTime()); err != nil {
		return false, &staging.IOError{Op: "chtimes", Path: tmpName, Err: err}
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return false, &staging.IOError{Op: "rename", Path: dst, Err: err}
	}
	return true, nil
}
