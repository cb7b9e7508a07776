package validators

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestViolationsCollectAllFields(t *testing.T) {
	t.Parallel()

	v := Violations{}
	Required(v, "customerId", "   ")
	Required(v, "method", "")
	PositiveAmount(v, "amount", decimal.Zero)

	assert.Len(t, v, 3)
	assert.Contains(t, v, "customerId")
	assert.Contains(t, v, "method")
	assert.Contains(t, v, "amount")
	assert.False(t, v.Empty())
}

func TestEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "plain", email: "user@example.com", valid: true},
		{name: "subaddress", email: "user+tag@example.com", valid: true},
		{name: "no at", email: "userexample.com", valid: false},
		{name: "no domain", email: "user@", valid: false},
		{name: "empty", email: "", valid: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v := Violations{}
			Email(v, "email", tc.email)
			assert.Equal(t, tc.valid, v.Empty())
		})
	}
}

func TestPositiveInt(t *testing.T) {
	t.Parallel()

	zero, one, minus := 0, 1, -3

	v := Violations{}
	PositiveInt(v, "quantity", nil)
	assert.Contains(t, v, "quantity")

	v = Violations{}
	PositiveInt(v, "quantity", &zero)
	assert.Contains(t, v, "quantity")

	v = Violations{}
	PositiveInt(v, "quantity", &minus)
	assert.Contains(t, v, "quantity")

	v = Violations{}
	PositiveInt(v, "quantity", &one)
	assert.True(t, v.Empty())
}

func TestMinRunes(t *testing.T) {
	t.Parallel()

	v := Violations{}
	MinRunes(v, "password", "abc", 6)
	assert.Contains(t, v, "password")

	v = Violations{}
	MinRunes(v, "password", "abcdef", 6)
	assert.True(t, v.Empty())
}
