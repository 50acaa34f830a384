package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// documentSource is satisfied by *llmstxt.Service.
type documentSource interface {
	Document(ctx context.Context) (string, error)
}

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Print the llms.txt document as it would be served",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := boot(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer e.Close()
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), e.comp.Service())
		},
	}
}

func runGenerate(ctx context.Context, w io.Writer, docs documentSource) error {
	doc, err := docs.Document(ctx)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	_, err = io.WriteString(w, doc)
	return err
}
