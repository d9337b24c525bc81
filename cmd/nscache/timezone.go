package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/nscache/tzconv"
)

var timezoneCmd = &cobra.Command{
	Use:   "timezone <RFC3339-time> <zone>",
	Short: "Convert a time to another IANA timezone",
	Example: `  nscache timezone 2024-06-01T12:00:00Z Europe/Amsterdam
  nscache timezone now Asia/Tokyo`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := time.Now()
		if args[0] != "now" {
			var err error
			t, err = time.Parse(time.RFC3339, args[0])
			if err != nil {
				return fmt.Errorf("parse time: %w", err)
			}
		}
		out, err := tzconv.Convert(t, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Format(time.RFC3339))
		return nil
	},
}
