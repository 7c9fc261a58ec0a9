package main

import (
	"fmt"

	"github.com/dhamidi/cfront/c/lexer"
	"github.com/dhamidi/cfront/diag"
	"github.com/dhamidi/cfront/format"
	"github.com/spf13/cobra"
)

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex [file]",
		Short: "Print the tokens of a C file, one per line",
		Long: `Print the tokens of a C file as tab-separated lines:

    offset  line:column  kind  text

Reads from stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(string(source), lexer.WithFile(name))
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), diag.Snippet(string(source), name, err))
				return errReported
			}
			return format.NewTokenEncoder(cmd.OutOrStdout()).Encode(string(source), tokens)
		},
	}
}
