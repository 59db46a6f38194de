//go:build !linux

package filesystem

// platformAttributes is not decoded on this platform; callers fall back to
// defaultAttributes.
func platformAttributes(info FileInfo) (Attributes, bool) {
	return Attributes{}, false
}
