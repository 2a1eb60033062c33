package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/typevec/size"
)

// ErrNotTight is returned when a planned length pattern is not the minimal
// length admitting its index.
var ErrNotTight = errors.New("length pattern is not tight")

// Op names a positional operation.
type Op string

const (
	OpGet    Op = "Get"
	OpInsert Op = "Insert"
	OpRemove Op = "Remove"
)

// Rule is one pre-verified positional function: Op at Index, accepting any
// static vector of length In or more and producing length Out (plus the same
// surplus).
type Rule struct {
	Op    Op
	Index int
	In    size.Size
	Out   size.Size
}

// Plan derives the rules for indices 0..maxIndex, grouped by operation.
//
// For the strict operations (get, remove) the minimal length is index+1; for
// insert it is the index itself. Each minimum is verified to be in range
// while one less is out of range, so the generated tag patterns accept
// exactly the valid vectors.
func Plan(maxIndex int) ([]Rule, error) {
	var gets, inserts, removes []Rule

	for k := 0; k <= maxIndex; k++ {
		index := size.Exact(k)

		strict := size.Add(index, size.Exact(1))
		if err := verifyTight(strict, index, size.CheckIndex); err != nil {
			return nil, fmt.Errorf("get/remove %d: %w", k, err)
		}
		shrunk, err := size.Decrement(strict)
		if err != nil {
			return nil, fmt.Errorf("remove %d: %w", k, err)
		}
		gets = append(gets, Rule{Op: OpGet, Index: k, In: strict, Out: strict})
		removes = append(removes, Rule{Op: OpRemove, Index: k, In: strict, Out: shrunk})

		if err := verifyTight(index, index, size.CheckIndexInclusive); err != nil {
			return nil, fmt.Errorf("insert %d: %w", k, err)
		}
		inserts = append(inserts, Rule{Op: OpInsert, Index: k, In: index, Out: size.Increment(index)})
	}

	return slices.Concat(gets, inserts, removes), nil
}

func verifyTight(minLen, index size.Size, check func(length, index size.Size) size.Verdict) error {
	if v := check(minLen, index); v != size.InRange {
		return fmt.Errorf("%w: index %s at length %s is %s", ErrNotTight, index, minLen, v)
	}

	below, err := size.Decrement(minLen)
	if errors.Is(err, size.ErrUnderflow) {
		return nil
	}
	if err != nil {
		return err
	}
	if v := check(below, index); v != size.OutOfRange {
		return fmt.Errorf("%w: index %s at length %s is %s", ErrNotTight, index, below, v)
	}
	return nil
}

// Name returns the exported function name, e.g. Get3.
func (r Rule) Name() string {
	return fmt.Sprintf("%s%d", r.Op, r.Index)
}

// Doc returns the doc comment sentence following the name.
func (r Rule) Doc() string {
	switch r.Op {
	case OpGet:
		return fmt.Sprintf("returns the element at index %d of a static vector of length >= %d.", r.Index, r.In.Value())
	case OpInsert:
		return fmt.Sprintf("inserts elem at index %d of a static vector of length >= %d.", r.Index, r.In.Value())
	default:
		return fmt.Sprintf("removes the element at index %d of a static vector of length >= %d.", r.Index, r.In.Value())
	}
}

// Signature returns the function signature.
func (r Rule) Signature() string {
	in, out := pattern(r.In), pattern(r.Out)
	switch r.Op {
	case OpGet:
		return fmt.Sprintf("func %s[T any, N Nat](v Vect[T, %s]) T", r.Name(), in)
	case OpInsert:
		return fmt.Sprintf("func %s[T any, N Nat](v Vect[T, %s], elem T) Vect[T, %s]", r.Name(), in, out)
	default:
		return fmt.Sprintf("func %s[T any, N Nat](v Vect[T, %s]) (Vect[T, %s], T)", r.Name(), in, out)
	}
}

// Body returns the single statement of the function body.
func (r Rule) Body() string {
	switch r.Op {
	case OpGet:
		return fmt.Sprintf("return getUnchecked(v, %d)", r.Index)
	case OpInsert:
		return fmt.Sprintf("return insertUnchecked[%s](v, %d, elem)", pattern(r.Out), r.Index)
	default:
		return fmt.Sprintf("return removeUnchecked[%s](v, %d)", pattern(r.Out), r.Index)
	}
}

// pattern spells the static length s as Succ applied s times to the free
// surplus N.
func pattern(s size.Size) string {
	n := s.Value()
	return strings.Repeat("Succ[", n) + "N" + strings.Repeat("]", n)
}
