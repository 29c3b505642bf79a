package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareNames(t *testing.T) {
	assert.True(t, CompareNames("Ravi Kumar", "Ravi Kumar"))
	assert.True(t, CompareNames("Ravi Kumar", "RAVI KUMAR"))
	assert.True(t, CompareNames("Ravi Kumar", "Shri Ravi Kumar"))
	assert.True(t, CompareNames("Ravi Kumar", "Kumar Ravi"))
	assert.False(t, CompareNames("Ravi Kumar", "Anita Singh"))
	assert.False(t, CompareNames("", "Ravi Kumar"))
	assert.False(t, CompareNames("Ravi Kumar", ""))
}

func TestNameSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, NameSimilarity("Ravi Kumar", "ravi kumar"))
	assert.Equal(t, 0.0, NameSimilarity("Ravi", ""))

	// One OCR-garbled character in a nine-letter name.
	sim := NameSimilarity("Ravi Kumar", "Ravi Kunar")
	assert.Greater(t, sim, 0.8)
	assert.Less(t, sim, 1.0)

	assert.Less(t, NameSimilarity("Ravi Kumar", "Anita Singh"), 0.5)
}

func TestNormalizeString(t *testing.T) {
	assert.Equal(t, "ravikumar", NormalizeString("Ravi Kumar"))
	assert.Equal(t, "rkumar", NormalizeString("R. Kumar"))
}
