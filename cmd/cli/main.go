package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dono-tools/receipt-atlas/pkg/terminal/commands"
	"github.com/dono-tools/receipt-atlas/pkg/terminal/export"
)

func main() {
	reporter := export.NewReporter(os.Stdout)

	rootCmd := &cobra.Command{
		Use:   "receipt",
		Short: "Donation receipt tool",
	}
	rootCmd.AddCommand(commands.NewDonationsCmd(reporter))
	rootCmd.AddCommand(commands.NewCompanyCmd(reporter))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
