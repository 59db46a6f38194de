// Package identity maps numeric owner and group ids to names.
package identity

import (
	"fmt"
	"os/user"
	"strconv"
	"sync"
)

// Resolver maps numeric ids to names.
// A non-nil error means the id has no name; callers fall back to the number.
type Resolver interface {
	User(uid uint32) (string, error)
	Group(gid uint32) (string, error)
}

type lookupResult struct {
	name string
	err  error
}

// OSResolver resolves ids against the system user and group databases.
// Results, including failures, are cached for the life of the resolver.
// Safe for concurrent use by multiple goroutines.
type OSResolver struct {
	mu     sync.Mutex
	users  map[uint32]lookupResult
	groups map[uint32]lookupResult
}

// NewOSResolver creates a new OSResolver
func NewOSResolver() *OSResolver {
	return &OSResolver{
		users:  make(map[uint32]lookupResult),
		groups: make(map[uint32]lookupResult),
	}
}

// User returns the login name for uid
func (r *OSResolver) User(uid uint32) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res, ok := r.users[uid]; ok {
		return res.name, res.err
	}
	var res lookupResult
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		res.err = err
	} else {
		res.name = u.Username
	}
	r.users[uid] = res
	return res.name, res.err
}

// Group returns the group name for gid
func (r *OSResolver) Group(gid uint32) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res, ok := r.groups[gid]; ok {
		return res.name, res.err
	}
	var res lookupResult
	g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil {
		res.err = err
	} else {
		res.name = g.Name
	}
	r.groups[gid] = res
	return res.name, res.err
}

// Static resolves ids from fixed maps. Useful for testing.
type Static struct {
	Users  map[uint32]string
	Groups map[uint32]string
}

// User implements Resolver.User
func (s Static) User(uid uint32) (string, error) {
	if name, ok := s.Users[uid]; ok {
		return name, nil
	}
	return "", fmt.Errorf("unknown user id %d", uid)
}

// Group implements Resolver.Group
func (s Static) Group(gid uint32) (string, error) {
	if name, ok := s.Groups[gid]; ok {
		return name, nil
	}
	return "", fmt.Errorf("unknown group id %d", gid)
}
