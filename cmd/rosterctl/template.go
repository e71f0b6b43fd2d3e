package main

import (
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/importer"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the CSV import template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(append(importer.TemplateCSV(), '\n'))
		return err
	},
}
