package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/pi/packedflags/flags"
)

// result is any flag list the calculator can print.
type result interface {
	flags.Getter
	fmt.Formatter
	MaxLen() uint
}

type calc interface {
	unary(op string, a []bool, n uint) (result, error)
	binary(op string, a, b []bool) (result, error)
	toLong(a []bool) (*flags.Long, error)
	fromLong(l *flags.Long) (result, error)
}

func calcFor(width string) (calc, error) {
	switch width {
	case "32":
		return fixedCalc[flags.W32]{}, nil
	case "64":
		return fixedCalc[flags.W64]{}, nil
	case "128":
		return fixedCalc[flags.W128]{}, nil
	case "size":
		return fixedCalc[flags.WSize]{}, nil
	case "256":
		return fixedCalc[flags.W256]{}, nil
	case "long":
		return longCalc{}, nil
	}
	return nil, errors.Errorf("unknown list type %q", width)
}

type fixedCalc[W flags.Word[W]] struct{}

func (fixedCalc[W]) unary(op string, a []bool, n uint) (result, error) {
	x, err := flags.FromFlags[W](a)
	if err != nil {
		return nil, err
	}
	switch op {
	case "show":
		return x, nil
	case "not":
		return x.Not(), nil
	case "shl":
		return x.Shl(n), nil
	case "shr":
		return x.Shr(n), nil
	}
	return nil, errors.Errorf("unknown operation %q", op)
}

func (fixedCalc[W]) binary(op string, a, b []bool) (result, error) {
	x, err := flags.FromFlags[W](a)
	if err != nil {
		return nil, errors.Wrap(err, "first operand")
	}
	y, err := flags.FromFlags[W](b)
	if err != nil {
		return nil, errors.Wrap(err, "second operand")
	}
	switch op {
	case "and":
		return x.And(y), nil
	case "or":
		return x.Or(y), nil
	case "xor":
		return x.Xor(y), nil
	case "sub":
		return x.Sub(y), nil
	}
	return nil, errors.Errorf("unknown operation %q", op)
}

func (fixedCalc[W]) toLong(a []bool) (*flags.Long, error) {
	x, err := flags.FromFlags[W](a)
	if err != nil {
		return nil, err
	}
	return flags.LongFrom(x), nil
}

func (fixedCalc[W]) fromLong(l *flags.Long) (result, error) {
	x, err := flags.FixedFromLong[W](l)
	if err != nil {
		return nil, err
	}
	return x, nil
}

type longCalc struct{}

func (longCalc) unary(op string, a []bool, n uint) (result, error) {
	x := flags.LongFromFlags(a)
	switch op {
	case "show":
		return x, nil
	case "not":
		return x.Not(), nil
	case "shl":
		return x.Shl(n), nil
	case "shr":
		return x.Shr(n), nil
	}
	return nil, errors.Errorf("unknown operation %q", op)
}

func (longCalc) binary(op string, a, b []bool) (result, error) {
	x, y := flags.LongFromFlags(a), flags.LongFromFlags(b)
	switch op {
	case "and":
		return x.And(y), nil
	case "or":
		return x.Or(y), nil
	case "xor":
		return x.Xor(y), nil
	case "sub":
		return x.Sub(y), nil
	}
	return nil, errors.Errorf("unknown operation %q", op)
}

func (longCalc) toLong(a []bool) (*flags.Long, error) {
	return flags.LongFromFlags(a), nil
}

func (longCalc) fromLong(l *flags.Long) (result, error) {
	return l, nil
}

// parseFlags reads a 0/1 string, index 0 first. Underscores are ignored.
func parseFlags(s string) ([]bool, error) {
	fs := make([]bool, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			fs = append(fs, false)
		case '1':
			fs = append(fs, true)
		case '_':
		default:
			return nil, errors.Errorf("invalid flag %q at offset %d", c, i)
		}
	}
	return fs, nil
}

func formatFlags(g flags.Getter) string {
	var sb strings.Builder
	for i := uint(0); i < g.Len(); i++ {
		if f, _ := g.Get(i); f {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
