package main

import (
	"github.com/iudanet/qrninja/cmd/qrninja/cmd"
	"github.com/iudanet/qrninja/internal/client/cli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cmd.Execute(cli.BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	})
}
