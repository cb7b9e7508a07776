// Package validators holds the explicit input checks run at the top of each
// operation. Checks accumulate into Violations so a response reports every
// bad field, not just the first one.
package validators

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

type Violations map[string]string

func (v Violations) Add(field, message string) { v[field] = message }

func (v Violations) Empty() bool { return len(v) == 0 }

func Required(v Violations, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, field+" is required")
	}
}

func Email(v Violations, field, value string) {
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, "must be a valid email address")
	}
}

func MinRunes(v Violations, field, value string, n int) {
	if utf8.RuneCountInString(value) < n {
		v.Add(field, field+" must be at least "+strconv.Itoa(n)+" characters")
	}
}

func PositiveInt(v Violations, field string, value *int) {
	if value == nil {
		v.Add(field, field+" is required")
		return
	}
	if *value <= 0 {
		v.Add(field, field+" must be greater than zero")
	}
}

func RequiredInt64(v Violations, field string, value *int64) {
	if value == nil {
		v.Add(field, field+" is required")
	}
}

func PositiveAmount(v Violations, field string, value decimal.Decimal) {
	if value.Sign() <= 0 {
		v.Add(field, field+" must be greater than zero")
	}
}
