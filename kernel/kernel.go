// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel provides the extended float operation catalog behind an
// explicit host layout check.
//
// Operations follow the in-place convention of the catalog: binary and unary
// operations overwrite their first operand with the result, as in
//
//	func (k *Kernel) BinaryOp(first, second *float80.Float80)
//	func (k *Kernel) UnaryOp(first *float80.Float80)
//
// comparisons and classifications only read their operands, and conversions
// read one representation and write another. Operands may alias.
//
// A Kernel is obtained from New, which verifies once that the host stores
// extended values in the layout the 10-byte image is reinterpreted with.
// Every entry point of a Kernel that did not come from New panics before
// touching its operands.
//
// Numeric edge cases are never errors: division by zero, overflow and
// invalid operations produce infinities and NaNs that callers inspect with
// the classification operations.
package kernel

import (
	"errors"

	"github.com/db47h/float80"
)

// A Kernel gives access to the operation catalog on a verified host.
// The zero value is not usable; use New.
type Kernel struct {
	layout   float80.Layout
	verified bool
}

// An Option configures New.
type Option func(*config)

type config struct {
	layout float80.Layout
}

// WithLayout makes New verify l instead of the layout of the running host.
func WithLayout(l float80.Layout) Option {
	return func(c *config) {
		c.layout = l
	}
}

// WithNativeSize makes New verify the host layout with the native register
// size replaced by size.
func WithNativeSize(size uintptr) Option {
	return func(c *config) {
		c.layout.NativeSize = size
	}
}

// New verifies the host layout and returns a Kernel. It returns a
// *float80.LayoutError if the layout does not match the one expected by the
// 10-byte image.
func New(opts ...Option) (*Kernel, error) {
	c := config{layout: float80.HostLayout()}
	for _, o := range opts {
		o(&c)
	}
	if err := float80.VerifyLayout(c.layout); err != nil {
		return nil, err
	}
	return &Kernel{layout: c.layout, verified: true}, nil
}

// MustNew is like New but panics if the layout check fails.
func MustNew(opts ...Option) *Kernel {
	k, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return k
}

// Layout returns the layout verified by New.
func (k *Kernel) Layout() float80.Layout {
	k.guard()
	return k.layout
}

// ErrUnverified is the panic value of operations on a Kernel that was not
// returned by New.
var ErrUnverified = errors.New("kernel: host layout not verified")

func (k *Kernel) guard() {
	if k == nil || !k.verified {
		panic(ErrUnverified)
	}
}
