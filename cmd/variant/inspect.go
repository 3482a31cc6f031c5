package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Neumenon/variant/convert"
	"github.com/Neumenon/variant/variant"
)

func newInspectCmd(a *app) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "inspect [kind:value ...]",
		Short: "Load literals into an AnyArray and print each slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("size") {
				size = a.cfg.ArraySize
			}
			reg := convert.NewRegistry(convert.Default(), convert.WithLogger(a.logger))
			arr, err := parseLiterals(reg, args, size)
			if err != nil {
				return err
			}
			a.logger.Debug("array loaded", zap.Int("len", arr.Len()), zap.Int("cap", arr.Cap()))
			return renderArray(cmd.OutOrStdout(), arr, reg)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "minimum array size (extra slots stay empty)")
	return cmd
}

func renderArray(w io.Writer, arr *variant.AnyArray, lookup variant.ConverterLookup) error {
	table := tablewriter.NewWriter(w)
	table.Header("Slot", "Type", "Value", "JSON", "Raw")
	for i, cell := range arr.All() {
		raw := ""
		if cell.Type().IsPrimitive() {
			raw = fmt.Sprintf("%#016x", cell.Raw())
		}
		if err := table.Append([]string{
			strconv.Itoa(i),
			cell.Type().String(),
			cell.String(),
			cell.JSONTypeWith(lookup).String(),
			raw,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
