package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(1.80, 90)
	require.NoError(t, err)
	assert.InDelta(t, 27.78, bmi, 0.01)

	_, err = CalculateBMI(0, 90)
	assert.Error(t, err)
	_, err = CalculateBMI(1.80, 0)
	assert.Error(t, err)
	_, err = CalculateBMI(3.2, 90)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.8))
	assert.Equal(t, "Obesity class I", BMICategory(32.0))
	assert.Equal(t, "Obesity class III", BMICategory(45.0))
}
