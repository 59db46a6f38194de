package identity

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	r := Static{
		Users:  map[uint32]string{0: "root"},
		Groups: map[uint32]string{10: "wheel"},
	}

	name, err := r.User(0)
	require.NoError(t, err)
	assert.Equal(t, "root", name)

	_, err = r.User(7)
	assert.Error(t, err)

	name, err = r.Group(10)
	require.NoError(t, err)
	assert.Equal(t, "wheel", name)

	_, err = r.Group(11)
	assert.Error(t, err)
}

func TestOSResolver_CurrentUser(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("numeric uids are not meaningful on windows")
	}
	r := NewOSResolver()
	uid := uint32(os.Getuid())

	first, firstErr := r.User(uid)
	second, secondErr := r.User(uid)

	assert.Equal(t, first, second, "cached lookup must return the same name")
	assert.Equal(t, firstErr, secondErr)
}

func TestOSResolver_UnknownIDIsCached(t *testing.T) {
	r := NewOSResolver()
	const unlikely = 4000000123

	_, err := r.Group(unlikely)
	require.Error(t, err)

	r.mu.Lock()
	_, cached := r.groups[unlikely]
	r.mu.Unlock()
	assert.True(t, cached)
}
