package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEnglish(t *testing.T) {
	f := NewFormatter("en-US", "EGP")
	assert.Equal(t, "21.00 EGP", f.Format(21))
	assert.Equal(t, "1250.50 EGP", f.Format(1250.5))
	assert.Equal(t, "0.00 EGP", f.Format(0))
}

func TestFormatWithoutSymbol(t *testing.T) {
	f := NewFormatter("not a locale!!", "")
	assert.Equal(t, "5.50", f.Format(5.5))
}

func TestFormatDoesNotGroupThousands(t *testing.T) {
	f := NewFormatter("ar-EG", "ج.م")
	assert.Equal(t, "21.00 ج.م", f.Format(21))
	assert.Equal(t, "1250.50 ج.م", f.Format(1250.5))
	assert.Equal(t, "1000000.00 EGP", NewFormatter("en-US", "EGP").Format(1e6))
}
