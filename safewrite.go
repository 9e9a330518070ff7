package cartesian

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
)

// FileWriter is a surface that can encode itself to a file, choosing the
// format from the extension.
type FileWriter interface {
	WriteFile(fname string) error
}

// SafeWrite noisily saves to a tmp file and then moves it to fname.
func SafeWrite(w FileWriter, fname string) error {
	if err := safeWrite(w, fname); err != nil {
		fmt.Printf("Problem saving %s: %v\n", fname, err)
		return err
	}
	fmt.Printf("Saved to %s\n", fname)
	return nil
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(w FileWriter, fname string) error {
	if err := MaybeCreateDir(path.Dir(fname)); err != nil {
		return err
	}

	ext := path.Ext(fname)
	tmpfile, err := ioutil.TempFile(path.Dir(fname), "cartesian.*"+ext)
	if err != nil {
		return err
	}
	tmpfile.Close()
	if err := w.WriteFile(tmpfile.Name()); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}

	return os.Chmod(fname, 0664)
}

// MaybeCreateDir creates dir and its parents if it does not exist yet.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}
