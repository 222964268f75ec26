package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pi/packedflags/flags"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"flagls"}, args...))
	return out.String(), err
}

func TestParseFlags(t *testing.T) {
	fs, err := parseFlags("10_11")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, true}, fs)

	fs, err = parseFlags("")
	require.NoError(t, err)
	assert.Empty(t, fs)

	_, err = parseFlags("102")
	assert.EqualError(t, err, `invalid flag '2' at offset 2`)
}

func TestFormatFlags(t *testing.T) {
	assert.Equal(t, "0110", formatFlags(flags.LongFromFlags([]bool{false, true, true, false})))
	assert.Equal(t, "", formatFlags(flags.B32{}))
}

func TestCalcFor(t *testing.T) {
	for _, w := range []string{"32", "64", "128", "size", "256", "long"} {
		c, err := calcFor(w)
		require.NoError(t, err, w)
		r, err := c.unary("not", []bool{true, false}, 0)
		require.NoError(t, err, w)
		assert.Equal(t, "01", formatFlags(r), w)
	}
	_, err := calcFor("17")
	assert.EqualError(t, err, `unknown list type "17"`)

	c, _ := calcFor("32")
	_, err = c.unary("show", make([]bool, 33), 0)
	assert.ErrorIs(t, err, flags.ErrCapacityExceeded)
	_, err = c.binary("and", nil, make([]bool, 40))
	assert.ErrorIs(t, err, flags.ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "second operand")
}

func TestCommands(t *testing.T) {
	maxLong := fmt.Sprint(flags.NewLong().MaxLen())
	maxSize := fmt.Sprint(flags.BSize{}.MaxLen())
	for _, tt := range []struct {
		args []string
		want string
	}{
		{[]string{"show", "1011"}, "len=4 max=" + maxLong + " flags=1011 raw=0b1101\n"},
		{[]string{"show", "--width", "32", "1011"}, "len=4 max=32 flags=1011 raw=0b1101\n"},
		{[]string{"--format", "hex", "not", "--width", "64", "0000"}, "len=4 max=64 flags=1111 raw=0xf\n"},
		{[]string{"shl", "--width", "32", "--by", "2", "1"}, "len=3 max=32 flags=001 raw=0b100\n"},
		{[]string{"shr", "--by", "1", "011"}, "len=2 max=" + maxLong + " flags=11 raw=0b11\n"},
		{[]string{"and", "--width", "128", "110", "1"}, "len=3 max=128 flags=100 raw=0b1\n"},
		{[]string{"or", "--width", "256", "100", "011"}, "len=3 max=256 flags=111 raw=0b111\n"},
		{[]string{"xor", "--width", "size", "110", "011"}, "len=3 max=" + maxSize + " flags=101 raw=0b101\n"},
		{[]string{"sub", "110", "011"}, "len=3 max=" + maxLong + " flags=100 raw=0b1\n"},
		{[]string{"--format", "oct", "convert", "--to", "64", "1111"}, "len=4 max=64 flags=1111 raw=017\n"},
	} {
		out, err := run(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, out, "%v", tt.args)
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "and", "1")
	assert.EqualError(t, err, "expected 2 flag list argument(s), got 1")

	_, err = run(t, "--format", "dec", "show", "1")
	assert.EqualError(t, err, `unknown format "dec"`)

	_, err = run(t, "convert", "--to", "32", "--from", "64", "1")
	assert.NoError(t, err)

	_, err = run(t, "convert", "--to", "32", strings.Repeat("1", 33))
	assert.ErrorIs(t, err, flags.ErrCapacityExceeded)

	_, err = run(t, "--verbosity", "loud", "show", "1")
	assert.Error(t, err)
}
