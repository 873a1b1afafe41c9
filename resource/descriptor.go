// Package resource implements the one generic mechanism shared by every
// ownership-scoped resource family: query scoping to the principal's
// ownership graph, write authorization against parent ownership, and
// cached list/detail responses.
package resource

import "time"

// Ownership selects how a resource's rows tie back to a user.
type Ownership int

const (
	// OwnedDirect resources carry the owning user_id column themselves
	// (posts, albums, todos).
	OwnedDirect Ownership = iota

	// OwnedViaParent resources inherit their owner from a parent row one
	// hop away (comments through posts, photos through albums).
	OwnedViaParent
)

// Descriptor is everything the generic handlers need to serve one resource
// family. M is the stored model, In the externally settable shape, Out the
// external shape. Each concrete resource supplies only this table.
type Descriptor[M any, In any, Out any] struct {
	// Name is the plural resource name; it names the routes and prefixes
	// cache keys.
	Name string

	// Table is the model's SQL table name.
	Table string

	Ownership Ownership

	// ParentTable and ParentFK describe the one-hop ownership path for
	// OwnedViaParent resources: ParentTable owns the user_id column and
	// ParentFK is the column on Table referencing it.
	ParentTable string
	ParentFK    string

	// ParentField is the external payload field naming the parent on
	// create ("post", "album"). Its Id-suffixed form is the list filter
	// query parameter.
	ParentField string

	ToExternal func(M) Out

	// Apply copies the externally settable fields onto the model. It must
	// never touch the owning foreign key.
	Apply func(*M, In)

	// ParentID extracts the parent reference from a create payload
	// (OwnedViaParent only). Zero means the client did not supply one.
	ParentID func(In) uint

	// SetOwner forces the owner column to the principal on create
	// (OwnedDirect only); any client-supplied owner value is ignored.
	SetOwner func(*M, uint)

	// SetParent sets the owning foreign key on create (OwnedViaParent
	// only), after the guard has approved the parent.
	SetParent func(*M, uint)

	// TTL bounds the staleness of cached list/detail responses for this
	// family. Zero caches with no per-entry deadline.
	TTL time.Duration
}
