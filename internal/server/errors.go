package server

import "errors"

// errNoAddressConfigured is returned by NewServer when the configuration
// carries no HTTP listen address. Treated as a fatal misconfiguration at
// startup.
var errNoAddressConfigured = errors.New("no server address configured")
