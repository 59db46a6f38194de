package listing

import "strings"

// NormalizeDir returns path in "directory with one trailing separator" form
// so child names can be appended directly. A path made only of separators
// becomes "/". path must not be empty.
func NormalizeDir(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed + "/"
}

// ChildPath joins a directory path and an entry name.
func ChildPath(dir, name string) string {
	return NormalizeDir(dir) + name
}

func isDotEntry(name string) bool {
	return name == "." || name == ".."
}
