package value

import uuid "github.com/satori/go.uuid"

// UUID is a concrete custom-scalar wrapper over github.com/satori/go.uuid,
// mirroring the UUID scalar fixtures the teacher exercises in
// sqlgen/example_test.go and graphql/textmarshal_test.go. It lets a schema
// declare an ID field whose Raw form is additionally validated/decoded as
// a UUID, without forcing every ID in the system through UUID parsing.
type UUID struct {
	uuid.UUID
}

// ParseID attempts to interpret an ID's raw text as a UUID, returning ok
// false (not an error) when it isn't UUID-shaped; ID values are not
// required to be UUIDs.
func ParseID(id ID) (ID, bool) {
	u, err := uuid.FromString(id.Raw)
	if err != nil {
		return id, false
	}
	id.Parsed = &UUID{u}
	return id, true
}

// NewUUID generates a fresh random-form UUID, for callers that mint new
// opaque identifiers.
func NewUUID() UUID {
	return UUID{uuid.NewV4()}
}
