package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/nscache/password"
	"github.com/unkn0wn-root/nscache/password/words"
)

var (
	passwordWords int
	passwordDB    string
)

// builtin fallback list used when no word database is given.
var defaultWords = password.List{
	"anchor", "basket", "candle", "dolphin", "ember", "falcon", "garden",
	"harbor", "island", "jungle", "kettle", "lantern", "meadow", "nectar",
	"orchid", "pebble", "quiver", "river", "saddle", "timber", "umbrella",
	"violet", "walnut", "yonder", "zephyr", "marble", "copper", "salmon",
	"willow", "thunder", "breeze", "cinder", "drift", "frost", "glacier",
	"hollow", "ivory", "juniper", "maple", "prairie",
}

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Generate a human-readable password",
	RunE: func(cmd *cobra.Command, args []string) error {
		src := password.Source(defaultWords)
		if passwordDB != "" {
			store, err := words.Open(passwordDB)
			if err != nil {
				return err
			}
			src = store
		}
		pw, err := password.Generate(cmd.Context(), src, passwordWords)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), pw)
		return nil
	},
}

func init() {
	passwordCmd.Flags().IntVar(&passwordWords, "words", 3, "number of words (min 2)")
	passwordCmd.Flags().StringVar(&passwordDB, "db", "", "sqlite word database (default: builtin list)")
}
