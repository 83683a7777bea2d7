package main

import (
	"fmt"
	"os"

	"github.com/ImOnALampshade/brandy/internal/config"
	"github.com/ImOnALampshade/brandy/internal/lexer"
	"github.com/ImOnALampshade/brandy/internal/source"
	"github.com/spf13/cobra"
)

func newTokensCmd(loadOpts func() (*config.Options, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream for a Brandy source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadOpts(); err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tu := &source.TranslationUnit{Path: args[0], Bytes: data}
			toks, err := source.Tokenize(tu, lexer.Default())
			if err != nil {
				return err
			}
			for i, t := range toks {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-18s %q\n", i, t.Kind, t.Text(data))
			}
			return nil
		},
	}
}
