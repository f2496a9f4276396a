package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.True(t, Email("user@example.com"))
	assert.True(t, Email("a.b+c@sub.domain.org"))
	assert.False(t, Email("not-an-email"))
	assert.False(t, Email("user@nodomain"))
	assert.False(t, Email("user @example.com"))
	assert.False(t, Email(""))
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("123456"))
	assert.True(t, Password("a very long passphrase"))
	assert.False(t, Password("12345"))
	assert.False(t, Password(""))
}

func TestProductFields(t *testing.T) {
	ok := map[string]any{"name": "Radio", "description": "Vintage", "price": 10.5, "stock": float64(3)}
	assert.True(t, ProductFields(ok))

	missing := map[string]any{"name": "Radio", "price": 10.5, "stock": float64(3)}
	assert.False(t, ProductFields(missing))

	// Zero values count as absent: a free product or zero stock is rejected.
	zeroPrice := map[string]any{"name": "Radio", "description": "Vintage", "price": float64(0), "stock": float64(3)}
	assert.False(t, ProductFields(zeroPrice))
	zeroStock := map[string]any{"name": "Radio", "description": "Vintage", "price": 10.5, "stock": float64(0)}
	assert.False(t, ProductFields(zeroStock))
	emptyName := map[string]any{"name": "", "description": "Vintage", "price": 10.5, "stock": float64(3)}
	assert.False(t, ProductFields(emptyName))
}

func TestPatchFields(t *testing.T) {
	assert.True(t, PatchFields(map[string]any{"price": 149.99}))
	assert.True(t, PatchFields(map[string]any{"name": "x", "description": "y", "price": 1.0, "stock": float64(2)}))

	assert.False(t, PatchFields(map[string]any{}))
	assert.False(t, PatchFields(nil))
	// One unknown key poisons the whole patch, even next to valid ones.
	assert.False(t, PatchFields(map[string]any{"price": 1.0, "color": "red"}))
	assert.False(t, PatchFields(map[string]any{"id": "7"}))
}

func TestToNumberIfPresent(t *testing.T) {
	in := map[string]any{"name": "Radio", "price": "149.99", "stock": float64(4)}
	out := ToNumberIfPresent(in, "price", "stock")

	assert.Equal(t, 149.99, out["price"])
	assert.Equal(t, float64(4), out["stock"])
	assert.Equal(t, "Radio", out["name"])
	// Input is left untouched.
	assert.Equal(t, "149.99", in["price"])

	// Garbage never overwrites a stored number; the field is dropped.
	bad := ToNumberIfPresent(map[string]any{"price": "not a number"}, "price")
	_, present := bad["price"]
	assert.False(t, present)
}

func TestToNumber(t *testing.T) {
	n, ok := ToNumber(float64(3.5))
	assert.True(t, ok)
	assert.Equal(t, 3.5, n)

	n, ok = ToNumber("42")
	assert.True(t, ok)
	assert.Equal(t, float64(42), n)

	_, ok = ToNumber("abc")
	assert.False(t, ok)
	_, ok = ToNumber(nil)
	assert.False(t, ok)
}
