package filesystem

import (
	"io/fs"
	"path"
	"strings"
)

// resolvePath canonicalises an absolute slash-separated path by walking it
// one component at a time, expanding symbolic links as they are met.
// lstat must not follow a final symlink; it is only ever called on paths
// whose parent is already resolved.
func resolvePath(name string, lstat func(string) (FileInfo, error), readlink func(string) (string, error)) (string, error) {
	pending := strings.Split(name, "/")
	resolved := "/"
	hops := 0

	for len(pending) > 0 {
		component := pending[0]
		pending = pending[1:]

		switch component {
		case "", ".":
			continue
		case "..":
			resolved = path.Dir(resolved)
			continue
		}

		next := path.Join(resolved, component)
		info, err := lstat(next)
		if err != nil {
			return "", err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > maxSymlinkHops {
			return "", &fs.PathError{Op: "realpath", Path: name, Err: errTooManyLinks}
		}
		target, err := readlink(next)
		if err != nil {
			return "", err
		}
		if path.IsAbs(target) {
			resolved = "/"
		}
		pending = append(strings.Split(target, "/"), pending...)
	}

	return resolved, nil
}
