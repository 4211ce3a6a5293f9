package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleItinerary(t *testing.T) *Itinerary {
	itinerary, err := NewItinerary(
		[]string{"A", "B", "C"},
		Budget{0, 1000},
		[]StayWindow{{1, 5}, {1, 5}},
		[]Flight{{"A", "B", 1, 100}, {"A", "B", 10, 50}, {"B", "C", 3, 200}, {"B", "C", 20, 10}},
	)
	require.NoError(t, err)
	return itinerary
}

func TestVerify(t *testing.T) {
	itinerary := exampleItinerary(t)

	assert.True(t, Verify(itinerary, []Flight{{"A", "B", 1, 100}, {"B", "C", 3, 200}}))

	assert.False(t, Verify(itinerary, []Flight{{"A", "B", 1, 100}}), "incomplete")
	assert.False(t, Verify(itinerary, []Flight{{"A", "B", 10, 50}, {"B", "C", 20, 10}}), "gap outside stay window")
	assert.False(t, Verify(itinerary, []Flight{{"A", "B", 10, 50}, {"B", "C", 3, 200}}), "days not increasing")
	assert.False(t, Verify(itinerary, []Flight{{"B", "C", 3, 200}, {"B", "C", 5, 10}}), "wrong route")
}

func TestVerifyBudget(t *testing.T) {
	itinerary, err := NewItinerary(
		[]string{"A", "B", "C"},
		Budget{300, 300},
		[]StayWindow{{1, 5}, {1, 5}},
		nil,
	)
	require.NoError(t, err)

	assert.True(t, Verify(itinerary, []Flight{{"A", "B", 1, 100}, {"B", "C", 3, 200}}))
	assert.False(t, Verify(itinerary, []Flight{{"A", "B", 1, 100}, {"B", "C", 3, 201}}))
}

func TestWriteSolution(t *testing.T) {
	var buffer bytes.Buffer

	require.NoError(t, WriteSolution(&buffer, []Flight{{"A", "B", 1, 100}, {"B", "C", 3, 200}}))

	assert.Equal(t, "A B 1 100\nB C 3 200\nTotal Cost: 300\n", buffer.String())
}

func TestWriteNoSolution(t *testing.T) {
	var buffer bytes.Buffer

	require.NoError(t, WriteNoSolution(&buffer))

	assert.Equal(t, "No Solution\n", buffer.String())
}
