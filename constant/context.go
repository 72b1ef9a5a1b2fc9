package constant

type contextKey string

const (
	IdentityKey contextKey = "identity"
)
