// Hexpal - C++ colour constants from JSON palettes
//
// Hexpal reads a colour palette such as Open Color's open-color.json and
// prints constexpr declarations for every entry.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/hexpal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
