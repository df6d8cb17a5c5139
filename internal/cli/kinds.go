package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/latexmark/internal/logging"
	"github.com/yaklabco/latexmark/pkg/texmark"
)

type kindsFlags struct {
	format string
}

const formatJSON = "json"

// kindInfo represents a mark kind in JSON output.
type kindInfo struct {
	Kind string `json:"kind"`
}

func newKindsCommand() *cobra.Command {
	flags := &kindsFlags{}

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the closed vocabulary of structural mark kinds",
		Long: `List every MarkKind the tokenizer recognizes.

This is a fixed, closed set - new kinds are never added without a
corresponding change to the tokenizer itself, so this list is stable
across runs and useful for validating a host integration's switch
statement against the full vocabulary.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := texmark.AllKinds()

			if flags.format == formatJSON {
				return outputKindsJSON(cmd.OutOrStdout(), kinds)
			}

			logger := logging.NewInteractive()
			logger.Info("recognized mark kinds")

			for _, kind := range kinds {
				logger.Info(kind.String())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func outputKindsJSON(w io.Writer, kinds []texmark.MarkKind) error {
	infos := make([]kindInfo, 0, len(kinds))
	for _, kind := range kinds {
		infos = append(infos, kindInfo{Kind: kind.String()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding kinds: %w", err)
	}
	return nil
}
