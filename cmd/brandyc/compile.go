package main

import (
	"fmt"
	"os"

	"github.com/ImOnALampshade/brandy/internal/config"
	"github.com/ImOnALampshade/brandy/internal/sema"
	"github.com/spf13/cobra"
)

func newCompileCmd(loadOpts func() (*config.Options, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <file>",
		Short: "Run the full pipeline (lex, parse, and all semantic passes) over a Brandy source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadOpts(); err != nil {
				return err
			}
			mod, data, err := parseFile(args[0])
			if err != nil {
				return err
			}

			_, coll := sema.Run(mod, data)
			for _, d := range coll.Diagnostics {
				fmt.Fprintln(cmd.ErrOrStderr(), d.String())
			}
			if coll.HasErrors() {
				os.Exit(1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
