package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cx-luo/go-smiles/graph"
	"github.com/cx-luo/go-smiles/read"
)

var readCmd = &cobra.Command{
	Use:   "read <smiles>",
	Short: "Parse a SMILES string and report its atom and bond structure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.New()
		input := args[0]

		builder := graph.NewBuilder()
		if err := read.Read(input, builder, nil); err != nil {
			logger.Error("parse failed",
				zap.String("run_id", runID.String()),
				zap.String("input", input),
				zap.Error(err),
			)
			return exitError("parse failed: %w", err)
		}

		atoms, err := builder.Build()
		if err != nil {
			logger.Error("graph build failed",
				zap.String("run_id", runID.String()),
				zap.Error(err),
			)
			return exitError("graph build failed: %w", err)
		}

		logger.Info("parsed molecule",
			zap.String("run_id", runID.String()),
			zap.Int("atom_count", len(atoms)),
		)

		for i, atom := range atoms {
			fmt.Printf("%d: %s  bonds=%d  suppressed_h=%d\n",
				i, atom.Kind.String(), len(atom.Bonds), atom.SuppressedHydrogens())
		}
		return nil
	},
}
