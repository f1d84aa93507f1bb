package identity

// Claim is a (type, value) attribute attached to a user. Claims have no
// identity of their own: deleting one requires an exact match on user id,
// type and value.
type Claim struct {
	Type  string
	Value string
}
