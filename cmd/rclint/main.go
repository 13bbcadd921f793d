// Package main provides the rclint command, a style checker for FreeBSD
// rc.d scripts.
package main

import (
	"os"

	"github.com/leapstack-labs/rclint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
