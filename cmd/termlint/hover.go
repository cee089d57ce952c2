package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/termtools/termlint/internal/assist"
)

// ErrUnknownKey is returned when hover is asked about a key the schema
// does not contain.
var ErrUnknownKey = errors.New("unknown configuration key")

var hoverCmd = &cobra.Command{
	Use:   "hover <key>",
	Short: "Show documentation for a configuration key",
	Args:  cobra.ExactArgs(1),
	RunE:  runHover,
}

func runHover(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sch := loadSchema(cfg, log)

	doc, ok := assist.Hover(sch, args[0])
	if !ok {
		return errors.Wrapf(ErrUnknownKey, "%q", args[0])
	}

	fmt.Fprint(cmd.OutOrStdout(), doc)

	return nil
}
