package digit

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/RoaringBitmap/roaring/v2"
)

var (
	// ErrInvalidRadix is returned when the radix is smaller than 2.
	ErrInvalidRadix = errors.New("digit: radix must be >= 2")

	// ErrNegative is returned when a negative integer is decomposed.
	ErrNegative = errors.New("digit: negative integers are not supported")
)

// ErrDigitRange indicates a digit outside [0, radix).
type ErrDigitRange struct {
	Digit int
	Radix int
}

func (e *ErrDigitRange) Error() string {
	return fmt.Sprintf("digit: %d out of range for radix %d", e.Digit, e.Radix)
}

// Decompose splits n into its digits in radix b, least-significant first.
// Zero yields the single digit [0]. The input is not modified.
func Decompose(n *big.Int, b int) ([]int, error) {
	if b < 2 {
		return nil, ErrInvalidRadix
	}
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	if n.Sign() == 0 {
		return []int{0}, nil
	}

	radix := big.NewInt(int64(b))
	cur := new(big.Int).Set(n)
	rem := new(big.Int)

	digits := make([]int, 0, cur.BitLen())
	for cur.Sign() > 0 {
		cur.QuoRem(cur, radix, rem)
		digits = append(digits, int(rem.Int64()))
	}

	return digits, nil
}

// Compose reconstructs the integer whose radix-b digits, least-significant
// first, are the given sequence. It is the exact inverse of Decompose.
func Compose(digits []int, b int) (*big.Int, error) {
	if b < 2 {
		return nil, ErrInvalidRadix
	}

	radix := big.NewInt(int64(b))
	n := new(big.Int)
	tmp := new(big.Int)

	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if d < 0 || d >= b {
			return nil, &ErrDigitRange{Digit: d, Radix: b}
		}
		n.Mul(n, radix)
		n.Add(n, tmp.SetInt64(int64(d)))
	}

	return n, nil
}

// Set is the admissible digit set for a radix: the padding digit zero plus
// every residue in [1, b) coprime to b. A Set is immutable after NewSet and
// safe for concurrent use.
type Set struct {
	radix  int
	bitmap *roaring.Bitmap
	digits []int
}

// NewSet enumerates the admissible digits of radix b.
func NewSet(b int) (*Set, error) {
	if b < 2 {
		return nil, ErrInvalidRadix
	}

	bitmap := roaring.New()
	bitmap.Add(0)
	digits := []int{0}

	for r := 1; r < b; r++ {
		if gcd(r, b) == 1 {
			bitmap.Add(uint32(r))
			digits = append(digits, r)
		}
	}

	return &Set{radix: b, bitmap: bitmap, digits: digits}, nil
}

// Contains reports whether r is an admissible digit.
func (s *Set) Contains(r int) bool {
	if r < 0 || r >= s.radix {
		return false
	}
	return s.bitmap.Contains(uint32(r))
}

// Digits returns the admissible digits in ascending order, starting with the
// padding digit zero. Callers must not modify the returned slice.
func (s *Set) Digits() []int { return s.digits }

// Len returns the number of admissible digits.
func (s *Set) Len() int { return len(s.digits) }

// Radix returns the radix the set was built for.
func (s *Set) Radix() int { return s.radix }

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
