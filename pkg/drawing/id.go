package drawing

import "github.com/google/uuid"

// namespace scopes entity IDs so they never collide with other UUIDv5 users.
var namespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("arcsect/drawing"))

// EntityID is a content-addressed identifier derived from the entity path
// (kind plus name or ordinal) assigned during evaluation.
type EntityID uuid.UUID

// NewEntityID returns the deterministic ID for path.
func NewEntityID(path string) EntityID {
	return EntityID(uuid.NewSHA1(namespace, []byte(path)))
}

// IsZero reports whether id is the zero value.
func (id EntityID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

// Short returns the first eight hex digits, for messages.
func (id EntityID) Short() string {
	return id.String()[:8]
}

func (id EntityID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the ID in canonical UUID form.
func (id EntityID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText parses a canonical UUID.
func (id *EntityID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}
