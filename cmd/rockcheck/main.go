/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ssargent/rockcheck/cmd/rockcheck/cmd"
)

func main() {
	cmd.Execute()
}
