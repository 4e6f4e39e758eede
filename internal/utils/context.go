package utils

// ctxKey is the private type for context keys defined by this package, so
// values stored here can never collide with keys from other packages.
type ctxKey int

// UserIDCtxKey is the context key under which the auth middleware stores the
// authenticated user's id.
const UserIDCtxKey ctxKey = iota
