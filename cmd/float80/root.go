// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/db47h/float80"
	"github.com/db47h/float80/kernel"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errParse = errors.New("unable to read extended float from input")

// newRootCmd builds the command tree. opts are passed to kernel.New by every
// subcommand.
func newRootCmd(opts ...kernel.Option) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("float80")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "float80",
		Short:         "Inspect 80-bit extended precision values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReprCmd(opts), newPrintCmd(v, opts))
	return root
}

func newReprCmd(opts []kernel.Option) *cobra.Command {
	return &cobra.Command{
		Use:   "repr [number]",
		Short: "Print the 10-byte image of a number and of π",
		Args:  cobra.MaximumNArgs(1),
		// repr has no flags: "-2" is a number, not a shorthand flag
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			k, err := kernel.New(opts...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var s string
			if len(args) > 0 {
				s = args[0]
			} else {
				fmt.Fprint(out, "Desired constant: ")
				if s, err = readLine(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			var x float80.Float80
			if k.Parse(&x, strings.TrimSpace(s)) == 0 {
				return errParse
			}
			var pi float80.Float80
			k.ConvertFromI64(&pi, -1)
			k.Acos(&pi)

			printRepr(out, "input", &x)
			printRepr(out, "pi", &pi)
			return nil
		},
	}
}

func newPrintCmd(v *viper.Viper, opts []kernel.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print number",
		Short: `Format a number like "%*.*Lg"`,
		// flags are parsed by RunE, after the number has been set apart
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := kernel.New(opts...)
			if err != nil {
				return err
			}
			pos, flags := splitArgs(cmd, args)
			if err = cmd.Flags().Parse(flags); err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			if len(pos) != 1 {
				return fmt.Errorf("accepts 1 arg(s), received %d", len(pos))
			}
			var x float80.Float80
			if k.Parse(&x, strings.TrimSpace(pos[0])) == 0 {
				return errParse
			}
			s, _ := k.Print(&x, v.GetInt("width"), v.GetInt("precision"))
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntP("width", "w", 0, "minimum field width, negative to left-justify")
	f.IntP("precision", "p", -1, "significant digits, negative for the default of 6")
	// only fails on a nil flag
	_ = v.BindPFlag("width", f.Lookup("width"))
	_ = v.BindPFlag("precision", f.Lookup("precision"))
	return cmd
}

// splitArgs sets the operands of print apart from its flags. pflag would
// take a negative number such as -2.5 for a shorthand flag.
func splitArgs(cmd *cobra.Command, args []string) (pos, flags []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			pos = append(pos, args[i+1:]...)
			i = len(args)
		case len(a) > 1 && a[0] == '-' && !isNumber(a):
			flags = append(flags, a)
			if takesValue(cmd, a) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			pos = append(pos, a)
		}
	}
	return pos, flags
}

// takesValue reports whether the flag argument a expects its value in the
// next argument.
func takesValue(cmd *cobra.Command, a string) bool {
	if strings.Contains(a, "=") {
		return false
	}
	fs := cmd.Flags()
	switch {
	case strings.HasPrefix(a, "--"):
		if f := fs.Lookup(a[2:]); f != nil {
			return f.NoOptDefVal == ""
		}
	case len(a) == 2:
		if f := fs.ShorthandLookup(a[1:]); f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}

func isNumber(s string) bool {
	var x float80.Float80
	return x.Parse(s) == len(s)
}

func readLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errParse
	}
	return sc.Text(), nil
}

// printRepr writes the image of x as a list of bytes in memory order.
func printRepr(w io.Writer, name string, x *float80.Float80) {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range x {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%02X", c)
	}
	b.WriteByte(']')
	fmt.Fprintf(w, "Binary representation of %s (%.6f): %s\n", name, x, b.String())
}

// execute runs cmd and reports a failure on its error output.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	return err
}
