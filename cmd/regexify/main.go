package main

import (
	"github.com/DevSymphony/regexify/internal/cmd"
)

// Version is set by build -ldflags "-X main.Version=x.y.z"
var Version = "dev"

func main() {
	// Set version for version command
	cmd.SetVersion(Version)

	// Execute exits with the command's status code
	cmd.Execute()
}
