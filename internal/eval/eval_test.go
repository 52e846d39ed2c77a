package eval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/floppy/pkg/floppy"
)

func TestHCL_Run(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"arithmetic", "x = 1 + 2\n", []string{"x = 3"}},
		{"string function", "greeting = upper(\"hi\")\n", []string{`greeting = "HI"`}},
		{"references earlier attribute", "a = 2\nb = a * 10\n", []string{"a = 2", "b = 20"}},
		{"source order", "z = 1\na = 2\n", []string{"z = 1", "a = 2"}},
		{"template", "n = 3\nmsg = \"n is ${n}\"\n", []string{"n = 3", `msg = "n is 3"`}},
		{"list", "l = concat([1], [2, 3])\n", []string{"l = [1,2,3]"}},
		{"null", "v = null\n", []string{"v = null"}},
		{"empty", "", []string{}},
	}

	e := NewHCL()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Run("script", tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHCL_Faults(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", "x = = 1\n"},
		{"host code", "alert('hi')\n"},
		{"unknown function", "x = file(\"/etc/passwd\")\n"},
		{"forward reference", "a = b\nb = 1\n"},
		{"block", "thing {\n}\n"},
		{"type error", "x = 1 + \"a\"\n"},
	}

	e := NewHCL()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := e.Run("script", tt.src)
			assert.True(t, errors.Is(err, floppy.ErrExecutionFault), "got %v", err)
			assert.Nil(t, lines)
		})
	}
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Run("script", "x = 1")
	assert.True(t, errors.Is(err, floppy.ErrRunDisabled))
}
