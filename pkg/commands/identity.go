package commands

import (
	"os/user"
	"strconv"

	"github.com/sirupsen/logrus"
)

// NameResolver maps numeric user and group IDs to names. Lookups are
// remembered for the lifetime of the resolver since the same few IDs show up
// on almost every entry of a listing.
type NameResolver struct {
	Log         *logrus.Entry
	lookupUser  func(string) (*user.User, error)
	lookupGroup func(string) (*user.Group, error)
	users       map[uint32]string
	groups      map[uint32]string
}

// NewNameResolver returns a resolver backed by the system's user database
func NewNameResolver(log *logrus.Entry) *NameResolver {
	return &NameResolver{
		Log:         log,
		lookupUser:  user.LookupId,
		lookupGroup: user.LookupGroupId,
		users:       map[uint32]string{},
		groups:      map[uint32]string{},
	}
}

// ResolveUser returns the user's name, or the decimal ID when there's no such user
func (r *NameResolver) ResolveUser(uid uint32) string {
	if name, ok := r.users[uid]; ok {
		return name
	}

	id := strconv.FormatUint(uint64(uid), 10)
	name := id
	if u, err := r.lookupUser(id); err == nil {
		name = u.Username
	} else {
		r.Log.Debugf("falling back to uid %s: %v", id, err)
	}

	r.users[uid] = name
	return name
}

// ResolveGroup returns the group's name, or the decimal ID when there's no such group
func (r *NameResolver) ResolveGroup(gid uint32) string {
	if name, ok := r.groups[gid]; ok {
		return name
	}

	id := strconv.FormatUint(uint64(gid), 10)
	name := id
	if g, err := r.lookupGroup(id); err == nil {
		name = g.Name
	} else {
		r.Log.Debugf("falling back to gid %s: %v", id, err)
	}

	r.groups[gid] = name
	return name
}
