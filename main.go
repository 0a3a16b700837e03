package main

import (
	"fmt"
	"os"

	"github.com/ssotools/ssoctl/cmd/root"
)

func main() {
	rootCmd := root.NewRootCmd(root.DefaultDependencies())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
