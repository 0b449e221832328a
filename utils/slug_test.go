package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Red Shirt":          "red-shirt",
		"  Red   Shirt  ":    "red-shirt",
		"Crew-Neck T/Shirt!": "crew-neck-t-shirt",
		"100% Cotton":        "100-cotton",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestMakeSlugIsUnique(t *testing.T) {
	a := MakeSlug("Red Shirt")
	b := MakeSlug("Red Shirt")

	assert.True(t, strings.HasPrefix(a, "red-shirt-"))
	assert.NotEqual(t, a, b)
}
