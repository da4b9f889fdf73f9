package app

// Version is the psel release version. Overridden at build time via
// -ldflags "-X github.com/performer-tools/cli/internal/app.Version=v1.2.3".
var Version = "dev"
