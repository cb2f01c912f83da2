package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 81)
	require.NoError(t, err)
	require.InDelta(t, 25.0, bmi, 0.01)

	_, err = CalculateBMI(0, 81)
	require.Error(t, err)

	_, err = CalculateBMI(180, 500)
	require.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	require.Equal(t, "Underweight", BMICategory(17.0))
	require.Equal(t, "Normal weight", BMICategory(22.0))
	require.Equal(t, "Overweight", BMICategory(27.5))
	require.Equal(t, "Obesity class I", BMICategory(32.0))
	require.Equal(t, "Obesity class III", BMICategory(45.0))
}
