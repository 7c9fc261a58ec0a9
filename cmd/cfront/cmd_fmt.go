package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/cfront/codebase"
	"github.com/dhamidi/cfront/format"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty-print a C file",
		Long: `Pretty-print a C file to stdout.

If a file is provided, it must have a .c or .h extension.
If no file is provided, reads C source from stdin.
Comments are not preserved.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && fmtOverwrite {
				return fmt.Errorf("-w requires a file argument")
			}
			if len(args) > 0 && !codebase.IsSource(args[0]) {
				return fmt.Errorf("expected .c or .h file, got %s", args[0])
			}

			name, source, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			stmts, err := parseSource(cmd.ErrOrStderr(), name, source, false)
			if err != nil {
				return err
			}

			output, err := format.NewCPrettyPrinter(nil).MarshalText(stmts)
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}

			if fmtOverwrite {
				return os.WriteFile(name, output, 0644)
			}
			_, err = cmd.OutOrStdout().Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
