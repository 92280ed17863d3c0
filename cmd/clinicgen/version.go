package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print clinicgen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clinicgen %s\n", Version)
	},
}
