package main

import (
	"fmt"

	"github.com/dhamidi/cfront/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool
	var trace bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a C file and dump the syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			stmts, err := parseSource(cmd.ErrOrStderr(), name, source, trace)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var encoder format.Encoder
			switch outputFormat {
			case "json":
				enc := format.NewASTJSONEncoder(out)
				if includePositions {
					enc.Source = string(source)
					enc.File = name
				}
				encoder = enc
			case "sexp":
				encoder = format.NewSexpEncoder(out)
			case "lines":
				enc := format.NewLineEncoder(out)
				if includePositions {
					enc.Source = string(source)
				}
				encoder = enc
			case "c":
				encoder = format.NewCPrettyPrinter(out)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(stmts); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			if outputFormat == "json" {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, sexp, lines, c)")
	cmd.Flags().BoolVar(&includePositions, "positions", true, "include line and column numbers in json and lines output")
	cmd.Flags().BoolVar(&trace, "trace", false, "log parser alternatives at debug level (use with -vv)")

	return cmd
}
