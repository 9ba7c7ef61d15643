package domain

import "fmt"

// Money is an amount of currency in minor units (paise).
// All arithmetic truncates toward zero so that every calculation path
// rounds the same way.
type Money int64

const MinorUnitsPerRupee = 100

func FromRupees(rupees int64) Money {
	return Money(rupees * MinorUnitsPerRupee)
}

func (m Money) MulInt(n int) Money {
	return m * Money(n)
}

// PercentFloor returns percent% of m, truncated toward zero.
func (m Money) PercentFloor(percent int) Money {
	return m * Money(percent) / 100
}

// WholeRupees returns the number of whole currency units in m,
// discarding any sub-rupee remainder.
func (m Money) WholeRupees() int64 {
	return int64(m) / MinorUnitsPerRupee
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", int64(m)/MinorUnitsPerRupee, int64(m)%MinorUnitsPerRupee)
}
