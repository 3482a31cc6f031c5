package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Neumenon/variant/convert"
	"github.com/Neumenon/variant/record"
	"github.com/Neumenon/variant/variant"
)

func newRecordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "record [kind:value ...]",
		Short: "Write literals into a record sequentially and read them back",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := convert.NewRegistry(convert.Default(), convert.WithLogger(a.logger))
			arr, err := parseLiterals(reg, args, 0)
			if err != nil {
				return err
			}
			g, err := record.NewWithCapacity(a.cfg.Record.ObjectCapacity, a.cfg.Record.DataCapacity)
			if err != nil {
				return err
			}
			for i, cell := range arr.All() {
				if err := writeCell(g, cell); err != nil {
					return fmt.Errorf("slot %d: %w", i, err)
				}
			}
			a.logger.Debug("record written",
				zap.Int("objects", g.ObjectIndex()),
				zap.Int("data", g.DataIndex()),
				zap.Int("objectCap", g.ObjectCapacity()),
				zap.Int("dataCap", g.DataCapacity()))

			if err := g.SetObjectIndex(0); err != nil {
				return err
			}
			if err := g.SetDataIndex(0); err != nil {
				return err
			}
			return renderRecord(cmd.OutOrStdout(), g, arr)
		},
	}
}

// writeCell appends cell to g: primitives on the data axis, objects on the
// object axis. Empty cells are skipped.
func writeCell(g *record.GenericObject, cell variant.Any) error {
	switch cell.Type() {
	case variant.TypeEmpty:
		return nil
	case variant.TypeBoolean:
		return g.SetBoolSafe(cell.BoolUnsafe())
	case variant.TypeByte:
		return g.SetByteSafe(cell.ByteUnsafe())
	case variant.TypeChar:
		return g.SetCharSafe(cell.CharUnsafe())
	case variant.TypeShort:
		return g.SetShortSafe(cell.ShortUnsafe())
	case variant.TypeInt:
		return g.SetIntSafe(cell.IntUnsafe())
	case variant.TypeLong:
		return g.SetLongSafe(cell.LongUnsafe())
	case variant.TypeFloat:
		return g.SetFloatSafe(cell.FloatUnsafe())
	case variant.TypeDouble:
		return g.SetDoubleSafe(cell.DoubleUnsafe())
	default:
		return g.SetObjectSafe(cell.ObjectUnsafe())
	}
}

// readCell reads the next value of kind from g.
func readCell(g *record.GenericObject, kind variant.AnyType) (record.Axis, int, any, error) {
	var (
		v   any
		err error
	)
	axis, index := record.AxisData, g.DataIndex()
	switch kind {
	case variant.TypeBoolean:
		v, err = g.Bool()
	case variant.TypeByte:
		v, err = g.Byte()
	case variant.TypeChar:
		v, err = g.Char()
	case variant.TypeShort:
		v, err = g.Short()
	case variant.TypeInt:
		v, err = g.Int()
	case variant.TypeLong:
		v, err = g.Long()
	case variant.TypeFloat:
		v, err = g.Float()
	case variant.TypeDouble:
		v, err = g.Double()
	default:
		axis, index = record.AxisObject, g.ObjectIndex()
		v, err = g.Object()
	}
	return axis, index, v, err
}

func renderRecord(w io.Writer, g *record.GenericObject, arr *variant.AnyArray) error {
	table := tablewriter.NewWriter(w)
	table.Header("Axis", "Index", "Type", "Value")
	for _, cell := range arr.All() {
		if cell.IsEmpty() {
			continue
		}
		axis, index, v, err := readCell(g, cell.Type())
		if err != nil {
			return err
		}
		text := fmt.Sprintf("%v", v)
		if r, ok := v.(rune); ok && cell.Type() == variant.TypeChar {
			text = strconv.QuoteRune(r)
		}
		if err := table.Append([]string{
			string(axis),
			strconv.Itoa(index),
			cell.Type().String(),
			text,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
