package identity

// LoginInfo links a user to an external identity provider. The
// (LoginProvider, ProviderKey) pair resolves to at most one user.
type LoginInfo struct {
	LoginProvider string
	ProviderKey   string
}
