package git

import (
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Status is the working tree state of the repository containing a directory.
type Status struct {
	Branch string
	// Modified holds absolute paths of changed or untracked files.
	Modified map[string]bool
}

// InRepo reports whether the status came from a git repository.
func (s Status) InRepo() bool {
	return s.Branch != ""
}

// IsModified reports whether path, or anything below it, has changes.
func (s Status) IsModified(path string) bool {
	if s.Modified[path] {
		return true
	}
	prefix := path + string(filepath.Separator)
	for p := range s.Modified {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// GetStatus returns the branch and modified files for dir. Outside a
// repository, or without git installed, it returns an empty Status.
func GetStatus(dir string) Status {
	cmd := exec.Command("git", "rev-parse", "--show-prefix")
	cmd.Dir = dir
	prefix, err := cmd.Output()
	if err != nil {
		return Status{Modified: map[string]bool{}}
	}

	cmd = exec.Command("git", "status", "--porcelain", "--branch")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return Status{Modified: map[string]bool{}}
	}

	return parseStatus(string(output), repoRoot(dir, strings.TrimSpace(string(prefix))))
}

// repoRoot walks up from dir by the components of its prefix inside the
// repository, so paths keep the spelling dir was given in.
func repoRoot(dir, prefix string) string {
	root := filepath.Clean(dir)
	for _, part := range strings.Split(strings.Trim(prefix, "/"), "/") {
		if part != "" {
			root = filepath.Dir(root)
		}
	}
	return root
}

// parseStatus reads `git status --porcelain --branch` output. Paths in that
// format are relative to the repository root.
func parseStatus(output, root string) Status {
	status := Status{Modified: make(map[string]bool)}

	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "## ") {
			status.Branch = parseBranch(line[3:])
			continue
		}
		if len(line) <= 3 {
			continue
		}

		// Status is in first two characters, filename starts at position 3
		name := line[3:]
		if i := strings.Index(name, " -> "); i >= 0 {
			name = name[i+4:]
		}
		if unquoted, err := strconv.Unquote(name); err == nil {
			name = unquoted
		}
		name = strings.TrimSuffix(name, "/")
		if name != "" {
			status.Modified[filepath.Join(root, filepath.FromSlash(name))] = true
		}
	}

	return status
}

func parseBranch(header string) string {
	header = strings.TrimPrefix(header, "No commits yet on ")
	header = strings.TrimPrefix(header, "Initial commit on ")
	if i := strings.Index(header, "..."); i >= 0 {
		header = header[:i]
	}
	if i := strings.IndexByte(header, ' '); i >= 0 {
		header = header[:i]
	}
	return header
}
