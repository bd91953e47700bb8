package main

import (
	"testing"

	"github.com/katalvlaran/plotcore/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoints_ValidList(t *testing.T) {
	pts, err := parsePoints("0,0 10,0 10,10 0,10")
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(10, 0),
		geom.NewPoint(10, 10),
		geom.NewPoint(0, 10),
	}, pts)
}

func TestParsePoints_Empty(t *testing.T) {
	pts, err := parsePoints("")
	require.NoError(t, err)
	assert.Nil(t, pts)
}

func TestParsePoints_Malformed(t *testing.T) {
	_, err := parsePoints("0,0 garbage")
	assert.Error(t, err)
}
