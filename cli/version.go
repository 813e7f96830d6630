package cli

// version is stamped at build time via
// -ldflags "-X github.com/gofind-io/gofind/cli.version=v1.2.3".
var version = "v0.1.0-dev"

// Version returns the version baked into the binary.
func Version() string {
	return version
}
