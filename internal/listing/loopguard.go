package listing

import (
	"github.com/vvka-141/gols/internal/files/filesystem"
)

// LoopGuard tracks the canonical real paths of the directories on the
// active recursion stack.
type LoopGuard struct {
	fs    filesystem.Provider
	stack []string
}

// NewLoopGuard creates an empty guard resolving paths through fs.
func NewLoopGuard(fs filesystem.Provider) *LoopGuard {
	return &LoopGuard{fs: fs}
}

// Enter resolves path and pushes it unless it is already on the stack.
// It returns true when a cycle is detected, in which case nothing is
// pushed and Leave must not be called. An error means the path could not
// be resolved; nothing is pushed either.
func (g *LoopGuard) Enter(path string) (bool, error) {
	resolved, err := g.fs.RealPath(path)
	if err != nil {
		return false, err
	}
	for _, p := range g.stack {
		if p == resolved {
			return true, nil
		}
	}
	g.stack = append(g.stack, resolved)
	return false, nil
}

// Leave pops the most recently entered path.
func (g *LoopGuard) Leave() {
	if len(g.stack) == 0 {
		return
	}
	g.stack = g.stack[:len(g.stack)-1]
}

// Depth returns the number of directories on the stack.
func (g *LoopGuard) Depth() int {
	return len(g.stack)
}
