package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"unicode/utf8"
)

// Entry is one child of a listed directory.
type Entry struct {
	Path  string
	Name  string
	IsDir bool
}

// OpError records a failed filesystem operation together with its target.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// FormatError wraps err with the operation and path it belongs to.
// A nil err stays nil; an existing *OpError is not wrapped twice.
func FormatError(err error, path, op string) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	// os errors already carry the path; keep only the cause
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		err = linkErr.Err
	}
	return &OpError{Op: op, Path: path, Err: err}
}

// List reads the immediate children of dir sorted by full path. Children
// whose metadata cannot be read are dropped; only a failure to open or read
// dir itself is returned.
func List(dir string) ([]Entry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, FormatError(err, dir, "list")
	}
	defer f.Close()

	dirEntries, err := f.ReadDir(-1)
	if err != nil && len(dirEntries) == 0 {
		return nil, FormatError(err, dir, "list")
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			continue
		}

		path := filepath.Join(dir, de.Name())
		isDir := info.IsDir()
		if info.Mode()&os.ModeSymlink != 0 {
			// Follow the link; a dangling one lists as a file
			if target, err := os.Stat(path); err == nil {
				isDir = target.IsDir()
			}
		}

		entries = append(entries, Entry{
			Path:  path,
			Name:  de.Name(),
			IsDir: isDir,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// ReadText loads a regular file for preview. ok is false for directories,
// unreadable files and content that is not valid UTF-8.
func ReadText(path string) (content string, lines int, ok bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", 0, false
	}
	data, err := os.ReadFile(path)
	if err != nil || !utf8.Valid(data) {
		return "", 0, false
	}
	content = string(data)
	return content, CountLines(content), true
}

// CountLines counts lines the way a line reader does: a trailing newline does
// not start another line and empty content has none.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

// trashPathEnv carries the path to the Windows trash script.
const trashPathEnv = "BURROW_TRASH_PATH"

const darwinTrashScript = `on run argv
tell application "Finder" to delete POSIX file (item 1 of argv)
end run`

const windowsTrashScript = `Add-Type -AssemblyName Microsoft.VisualBasic
$p = $env:BURROW_TRASH_PATH
if (Test-Path -LiteralPath $p -PathType Container) {
  [Microsoft.VisualBasic.FileIO.FileSystem]::DeleteDirectory($p, 'OnlyErrorDialogs', 'SendToRecycleBin')
} else {
  [Microsoft.VisualBasic.FileIO.FileSystem]::DeleteFile($p, 'OnlyErrorDialogs', 'SendToRecycleBin')
}`

// MoveToTrash moves a file or directory to the system trash/recycle bin
func MoveToTrash(path string) error {
	cmd, err := trashCommand(runtime.GOOS, path)
	if err != nil {
		return err
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("move to trash: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// trashCommand builds the trash command for goos. The path never becomes
// part of a script; it is passed as an argument or through the environment.
func trashCommand(goos, path string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("osascript", "-e", darwinTrashScript, path), nil

	case "windows":
		cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", windowsTrashScript)
		cmd.Env = append(os.Environ(), trashPathEnv+"="+path)
		return cmd, nil

	default:
		if commandExists("gio") {
			return exec.Command("gio", "trash", "--", path), nil
		}
		if commandExists("trash-put") {
			return exec.Command("trash-put", "--", path), nil
		}
		return nil, fmt.Errorf("trash command not available (install trash-cli or gvfs)")
	}
}

// Delete removes path, recursively when it is a directory. With useTrash the
// entry goes to the platform trash instead, and a trash failure leaves it in
// place. A path that is already gone is an error.
func Delete(path string, useTrash bool) error {
	info, err := os.Lstat(path)
	if err != nil {
		return FormatError(err, path, "delete")
	}

	if useTrash {
		return FormatError(MoveToTrash(path), path, "trash")
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	return FormatError(err, path, "delete")
}

// Rename renames a file or directory to newName inside its parent directory.
// An existing target is never overwritten.
func Rename(oldPath, newName string) error {
	if err := validName(newName); err != nil {
		return FormatError(err, oldPath, "rename")
	}
	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if newPath == oldPath {
		return nil
	}
	if _, err := os.Lstat(newPath); err == nil {
		return FormatError(fs.ErrExist, newPath, "rename")
	}
	return FormatError(os.Rename(oldPath, newPath), oldPath, "rename")
}

// CreateFile creates a new empty file; it fails if name already exists.
func CreateFile(dir, name string) error {
	path := filepath.Join(dir, name)
	if err := validName(name); err != nil {
		return FormatError(err, path, "create file")
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return FormatError(err, path, "create file")
	}
	return FormatError(file.Close(), path, "create file")
}

// CreateDir creates a new directory
func CreateDir(dir, name string) error {
	path := filepath.Join(dir, name)
	if err := validName(name); err != nil {
		return FormatError(err, path, "create directory")
	}
	return FormatError(os.Mkdir(path, 0755), path, "create directory")
}

// validName rejects names that would escape the target directory.
func validName(name string) error {
	if name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return fs.ErrInvalid
	}
	return nil
}

// commandExists checks if a command is available in PATH
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
