package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count [text...]",
		Short: "Print the token count of text",
		Long:  "Print the token count of the arguments, or of stdin when none are given, followed by the counter mode.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				content, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				text = string(content)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", a.counter.Count(text), a.counter.Mode())
			return err
		},
	}
}
