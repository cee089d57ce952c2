package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all configuration keys in the schema",
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) error {
	log := newLogger()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sch := loadSchema(cfg, log)

	if desc := sch.Description(); desc != "" {
		header := desc
		if v := sch.Version(); v != "" {
			header = fmt.Sprintf("%s (v%s)", desc, v)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", header)
	}

	t := tablewriter.NewTable(cmd.OutOrStdout())
	t.Header([]string{"Key", "Type", "Default", "Platforms", "Notes"})

	for _, key := range sch.Keys() {
		opt, _ := sch.Lookup(key)

		notes := make([]string, 0, 2)
		if opt.Deprecated {
			notes = append(notes, "deprecated")
		}

		if sch.IsRepeatable(key) {
			notes = append(notes, "repeatable")
		}

		_ = t.Append([]string{
			key,
			opt.Type,
			opt.Default,
			strings.Join(opt.Platforms, ", "),
			strings.Join(notes, ", "),
		})
	}

	return t.Render()
}
