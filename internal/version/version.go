// internal/version/version.go
package version

// Version is the toolkit release tag, overridable at build time via
// -ldflags "-X blasthits/internal/version.Version=...".
var Version = "0.3.0"
