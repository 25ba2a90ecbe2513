// Command simplex exercises this module's public API end to end:
// building fixture triangulations, validating them, and round-tripping
// them through the wire codec.
package main

import (
	"os"

	"github.com/golang/glog"

	"github.com/katalvlaran/simplex/cmd/simplex/internal/cli"
)

func main() {
	defer glog.Flush()
	if err := cli.Root().Execute(); err != nil {
		glog.Errorf("simplex: %v", err)
		os.Exit(1)
	}
}
