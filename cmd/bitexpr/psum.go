package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/caio/go-bitexpr/fenwick"
)

// intsFlag collects repeated colon separated integer tuples of a fixed
// arity, e.g. "-add 3:10 -add 4:-2".
type intsFlag struct {
	arity int
	vals  [][]int64
}

func (f *intsFlag) String() string {
	parts := make([]string, len(f.vals))
	for i, v := range f.vals {
		s := make([]string, len(v))
		for j, n := range v {
			s[j] = strconv.FormatInt(n, 10)
		}
		parts[i] = strings.Join(s, ":")
	}
	return strings.Join(parts, ",")
}

func (f *intsFlag) Set(s string) error {
	fields := strings.Split(s, ":")
	if len(fields) != f.arity {
		return fmt.Errorf("expected %d colon separated integers, got %q", f.arity, s)
	}
	v := make([]int64, f.arity)
	for i, field := range fields {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return err
		}
		v[i] = n
	}
	f.vals = append(f.vals, v)
	return nil
}

func cmdPsum(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("psum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	adds := &intsFlag{arity: 2}
	addRanges := &intsFlag{arity: 3}
	ranges := &intsFlag{arity: 2}
	prefixes := &intsFlag{arity: 1}
	values := &intsFlag{arity: 1}
	fs.Var(adds, "add", "add `k:d` to value k (repeatable)")
	fs.Var(addRanges, "addrange", "add `i:j:d` to values i..j as a difference array (repeatable)")
	fs.Var(ranges, "range", "print the sum of values `i:j` (repeatable)")
	fs.Var(prefixes, "prefix", "print the prefix sum up to `k` (repeatable)")
	fs.Var(values, "value", "print value `k` (repeatable)")
	encode := fs.Bool("encode", false, "print the base64 encoded index")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	nums := make([]int64, fs.NArg())
	for i, a := range fs.Args() {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			fmt.Fprintf(stderr, "invalid value %q: %s\n", a, err)
			return 2
		}
		nums[i] = n
	}
	x := fenwick.Build(nums...)

	inRange := func(ks ...int64) bool {
		for _, k := range ks {
			if k < 0 || k >= int64(x.Len()) {
				fmt.Fprintf(stderr, "index %d out of range [0,%d)\n", k, x.Len())
				return false
			}
		}
		return true
	}
	ordered := func(i, j int64) bool {
		if i > j {
			fmt.Fprintf(stderr, "invalid range %d:%d\n", i, j)
			return false
		}
		return true
	}

	for _, v := range adds.vals {
		if !inRange(v[0]) {
			return 2
		}
		x.Update(int(v[0]), v[1])
	}
	for _, v := range addRanges.vals {
		if !inRange(v[0], v[1]) || !ordered(v[0], v[1]) {
			return 2
		}
		x.UpdateRange(int(v[0]), int(v[1]), v[2])
	}

	for _, v := range values.vals {
		if !inRange(v[0]) {
			return 2
		}
		fmt.Fprintf(stdout, "value %d = %d\n", v[0], x.Value(int(v[0])))
	}
	for _, v := range prefixes.vals {
		if !inRange(v[0]) {
			return 2
		}
		fmt.Fprintf(stdout, "prefix %d = %d\n", v[0], x.PrefixSum(int(v[0])))
	}
	for _, v := range ranges.vals {
		if !inRange(v[0], v[1]) || !ordered(v[0], v[1]) {
			return 2
		}
		fmt.Fprintf(stdout, "range %d:%d = %d\n", v[0], v[1], x.RangeSum(int(v[0]), int(v[1])))
	}

	if *encode {
		fmt.Fprintln(stdout, base64.StdEncoding.EncodeToString(x.AsBytes()))
	}
	return 0
}
