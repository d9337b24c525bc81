// Package main is the entry point for the nscache CLI.
package main

import (
	"os"

	// Embed the IANA database so timezone conversion works on hosts
	// without /usr/share/zoneinfo.
	_ "time/tzdata"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
