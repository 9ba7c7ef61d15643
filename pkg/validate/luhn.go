package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a numeric string with a valid Luhn check
// digit. Referral codes issued by the platform are Luhn-valid.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
