package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cx-luo/go-smiles/graph"
	"github.com/cx-luo/go-smiles/read"
	"github.com/cx-luo/go-smiles/walk"
	"github.com/cx-luo/go-smiles/write"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip <smiles>",
	Short: "Parse a SMILES string, rebuild its graph, and re-emit it as SMILES",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.New()
		input := args[0]

		builder := graph.NewBuilder()
		if err := read.Read(input, builder, nil); err != nil {
			return exitError("parse failed: %w", err)
		}

		atoms, err := builder.Build()
		if err != nil {
			return exitError("graph build failed: %w", err)
		}

		writer := write.New()
		if err := walk.Walk(atoms, writer); err != nil {
			logger.Error("walk failed", zap.String("run_id", runID.String()), zap.Error(err))
			return exitError("walk failed: %w", err)
		}

		out := writer.Write()
		logger.Info("round-tripped molecule",
			zap.String("run_id", runID.String()),
			zap.String("input", input),
			zap.String("output", out),
		)
		fmt.Println(out)
		return nil
	},
}
