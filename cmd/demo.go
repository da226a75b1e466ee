package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kaiyomaru/fieldassign/sampledata"
)

var demoDir string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate an anonymized demo dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sampledata.Write(demoDir); err != nil {
			return fmt.Errorf("write demo data: %w", err)
		}
		cmd.Printf("demo dataset written to %s\n", demoDir)
		return nil
	},
}

func init() {
	demoCmd.Flags().StringVarP(&demoDir, "dir", "d", "testdata", "output directory")
	rootCmd.AddCommand(demoCmd)
}
