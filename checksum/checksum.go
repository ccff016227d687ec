package checksum

import (
	"fmt"
	"math/rand"
	"strings"

	errs "github.com/tidepool-org/fakegen/errors"
)

// Digits is an ordered sequence of decimal digits, each in 0-9
type Digits []int

func RandomDigits(rng *rand.Rand, n int) Digits {
	digits := make(Digits, n)
	for i := range digits {
		digits[i] = rng.Intn(10)
	}
	return digits
}

func ParseDigits(s string) (Digits, error) {
	digits := make(Digits, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q is not a digit sequence", errs.Value, s)
		}
		digits = append(digits, int(r-'0'))
	}
	return digits, nil
}

// Append returns a copy of d with the given digits appended
func (d Digits) Append(digits ...int) Digits {
	result := make(Digits, 0, len(d)+len(digits))
	result = append(result, d...)
	return append(result, digits...)
}

// Int returns the decimal value of the sequence
func (d Digits) Int() int64 {
	var n int64
	for _, digit := range d {
		n = n*10 + int64(digit)
	}
	return n
}

func (d Digits) String() string {
	var b strings.Builder
	b.Grow(len(d))
	for _, digit := range d {
		b.WriteByte(byte('0' + digit))
	}
	return b.String()
}

// Weighted returns the sum of digits multiplied by the matching weights, modulo modulus
func Weighted(digits Digits, weights []int, modulus int) (int, error) {
	if len(digits) != len(weights) {
		return 0, fmt.Errorf("%w: %d digits for %d weights", errs.Value, len(digits), len(weights))
	}
	if modulus <= 0 {
		return 0, fmt.Errorf("%w: modulus must be positive", errs.Value)
	}
	sum := 0
	for i, digit := range digits {
		sum += digit * weights[i]
	}
	return sum % modulus, nil
}

// ISO7064Mod11_10 calculates the check digit of ISO 7064 MOD 11,10, as used by the
// Croatian personal identification number (OIB).
func ISO7064Mod11_10(digits Digits) int {
	remainder := 10
	for _, digit := range digits {
		remainder = (remainder + digit) % 10
		if remainder == 0 {
			remainder = 10
		}
		remainder = (remainder * 2) % 11
	}
	check := 11 - remainder
	if check == 10 {
		return 0
	}
	return check
}

// DescendingMod11 calculates a check digit using weights from len(digits)+1 down to 2, as
// used twice in a row by the Brazilian CPF.
func DescendingMod11(digits Digits) int {
	weights := make([]int, len(digits))
	for i := range weights {
		weights[i] = len(digits) + 1 - i
	}
	remainder, _ := Weighted(digits, weights, 11)
	if remainder < 2 {
		return 1
	}
	return 11 - remainder
}

// Mod97 returns 97 minus the remainder of n divided by 97, in 1-97
func Mod97(n int64) int {
	return 97 - int(n%97)
}
