package main

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Neumenon/variant/domain"
)

const internDomain = "intern"

func newDomainCmd(a *app) *cobra.Command {
	var decode bool
	cmd := &cobra.Command{
		Use:   "domain NAME [value|id ...]",
		Short: "Encode values to IDs, or decode IDs, through a named domain",
		Long: "Encode values to dense IDs through a named domain, or decode IDs with --decode.\n" +
			"The \"intern\" domain is a string interner seeded from the config file.\n" +
			"The literal null encodes to the domain's null ID.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.domains()
			if err != nil {
				return err
			}
			d, ok := reg.ByName(args[0])
			if !ok {
				return fmt.Errorf("unknown domain %q (known: %v)", args[0], reg.Names())
			}
			if decode {
				return decodeIDs(cmd.OutOrStdout(), d, args[1:])
			}
			return encodeValues(cmd.OutOrStdout(), d, args[1:])
		},
	}
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "decode IDs instead of encoding values")
	return cmd
}

// domains builds a registry holding the built-in domains and the seeded
// string interner.
func (a *app) domains() (*domain.Registry, error) {
	reg := domain.NewRegistry(domain.WithLogger(a.logger))
	builtins := domain.Default()
	for _, name := range builtins.Names() {
		d, _ := builtins.ByName(name)
		reg.RegisterName(d)
	}

	in := domain.NewInterner[string](internDomain,
		domain.WithLogger(a.logger),
		domain.WithMaxSize(a.cfg.Intern.MaxSize))
	for _, s := range a.cfg.Intern.Seed {
		if _, err := in.ID(s); err != nil {
			return nil, err
		}
	}
	reg.Register(in)
	a.logger.Debug("interner seeded", zap.Int64("size", in.Len()))
	return reg, nil
}

func encodeValues(w io.Writer, d domain.Descriptor, args []string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Value", "ID")
	for _, arg := range args {
		v, err := parseDomainValue(d, arg)
		if err != nil {
			return err
		}
		id, err := d.IDOf(v)
		if err != nil {
			return err
		}
		if err := table.Append([]string{arg, strconv.Itoa(id)}); err != nil {
			return err
		}
	}
	return table.Render()
}

func decodeIDs(w io.Writer, d domain.Descriptor, args []string) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Value")
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("id %q: %w", arg, err)
		}
		v, err := d.Boxed(id)
		if err != nil {
			return err
		}
		text := "null"
		if v != nil {
			text = fmt.Sprintf("%v", v)
		}
		if err := table.Append([]string{arg, text}); err != nil {
			return err
		}
	}
	return table.Render()
}

// parseDomainValue parses s as a value of d's type. "null" is nil.
func parseDomainValue(d domain.Descriptor, s string) (any, error) {
	if s == "null" {
		return nil, nil
	}
	var (
		v   any
		err error
	)
	switch d.Type().Kind() {
	case reflect.Bool:
		v, err = strconv.ParseBool(s)
	case reflect.Uint8:
		var n uint64
		n, err = strconv.ParseUint(s, 0, 8)
		v = uint8(n)
	case reflect.Int16:
		var n int64
		n, err = strconv.ParseInt(s, 0, 16)
		v = int16(n)
	case reflect.Int32:
		if d.Name() == "char" {
			r, size := utf8.DecodeRuneInString(s)
			if size != len(s) || size == 0 {
				return nil, fmt.Errorf("value %q: want exactly one character", s)
			}
			return r, nil
		}
		var n int64
		n, err = strconv.ParseInt(s, 0, 32)
		v = int32(n)
	case reflect.Float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		v = float32(f)
	case reflect.String:
		v = s
	default:
		return nil, fmt.Errorf("domain %s: cannot parse %s values", d.Name(), d.Type())
	}
	if err != nil {
		return nil, fmt.Errorf("value %q: %w", s, err)
	}
	return v, nil
}
