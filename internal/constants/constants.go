package constants

const (
	// ContextKeyIdentity is the gin context key holding the authenticated
	// identity set by the auth middleware.
	ContextKeyIdentity = "identity"

	// LatestItemsLimit is the number of items returned by the "latest" view.
	LatestItemsLimit = 20
)
