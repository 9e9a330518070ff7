package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottkirkwood/cartesian/plane"
)

func TestParseVars(t *testing.T) {
	vars, err := parseVars(" a=2, b = -0.5 ")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 2, "b": -0.5}, vars)

	vars, err = parseVars("")
	require.NoError(t, err)
	assert.Nil(t, vars)

	_, err = parseVars("a")
	assert.Error(t, err)
	_, err = parseVars("a=x")
	assert.Error(t, err)
}

func TestNewSurface(t *testing.T) {
	cfg := plane.DefaultConfig()
	for fname, vector := range map[string]bool{"a.svg": true, "a.pdf": true, "a.png": false, "a.bmp": false, "a.tiff": false} {
		_, isVector := newSurface(fname, cfg).(interface{ WritePDF(string) error })
		assert.Equal(t, vector, isVector, fname)
	}
}
