package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panelworks/cutplan/pkg/cutlist"
	"github.com/panelworks/cutplan/pkg/logging"
)

// validateCmd checks every part in a snapshot against the model
// invariants: positive dimensions, positive thickness, qty >= 1.
var validateCmd = &cobra.Command{
	Use:   "validate <cutlist.yaml>",
	Short: "Validate a cutlist snapshot against the part invariants",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	parts, err := cutlist.LoadFile(args[0])
	if err != nil {
		return err
	}

	invalid := 0
	for i := range parts {
		if err := parts[i].Validate(); err != nil {
			invalid++
			logging.Warn().
				Str("part_id", parts[i].ID).
				Err(err).
				Msg("invalid part")
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d parts failed validation", invalid, len(parts))
	}
	fmt.Printf("All %d parts valid.\n", len(parts))
	return nil
}
