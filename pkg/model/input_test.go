package model

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const instancesDirectory = "../../test/instances/"

func TestInputFromText(t *testing.T) {
	//** Arrange
	text := `4
0 1000

A B C
1 5 1 5
A B 1 100
A B 10 50
B C 3 200
   B C 20 10
`

	//** Act
	itinerary, err := InputFromText(strings.NewReader(text))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, itinerary.Cities())
	assert.Equal(t, Budget{0, 1000}, itinerary.Budget())
	assert.Equal(t, StayWindow{1, 5}, itinerary.Leg(1).Stay)
	assert.Equal(t, []Flight{{"A", "B", 1, 100}, {"A", "B", 10, 50}}, itinerary.Domain(0))
	assert.Equal(t, []Flight{{"B", "C", 3, 200}, {"B", "C", 20, 10}}, itinerary.Domain(1))
}

func TestInputFromTextConfigurationErrors(t *testing.T) {
	scenarios := map[string]string{
		"empty input":          "",
		"non-numeric count":    "x\n0 10\nA B\n1 2\n",
		"negative count":       "-1\n0 10\nA B\n1 2\n",
		"single price":         "0\n10\nA B\n1 2\n",
		"odd stay values":      "0\n0 10\nA B C\n1 2 3\n",
		"stay count mismatch":  "0\n0 10\nA B C\n1 2\n",
		"missing flight lines": "2\n0 10\nA B\n1 2\nA B 1 1\n",
		"short flight line":    "1\n0 10\nA B\n1 2\nA B 1\n",
		"non-numeric day":      "1\n0 10\nA B\n1 2\nA B one 1\n",
		"inverted budget":      "0\n10 0\nA B\n1 2\n",
		"single city":          "0\n0 10\nA\n1 2\n",
		"huge count":           "1000000000000000000\n0 10\nA B\n1 2\nA B 1 1\n",
	}

	for name, text := range scenarios {
		t.Run(name, func(t *testing.T) {
			itinerary, err := InputFromText(strings.NewReader(text))

			assert.Nil(t, itinerary)
			var configurationError *ConfigurationError
			assert.True(t, errors.As(err, &configurationError), "unexpected error: %v", err)
		})
	}
}

func TestInputFromTextReportsNumberSyntax(t *testing.T) {
	_, err := InputFromText(strings.NewReader("1\n0 10\nA B\n1 2\nA B 1 cheap\n"))

	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.ErrorContains(t, err, "flight 1")
}

func TestInputFromJson(t *testing.T) {
	itinerary, err := InputFromJson(instancesDirectory + "satisfiable_tour.json")

	require.NoError(t, err)
	assert.Equal(t, []string{"NYC", "LON", "BER", "NYC"}, itinerary.Cities())
	assert.Equal(t, Budget{0, 700}, itinerary.Budget())
	assert.Equal(t, StayWindow{0, 0}, itinerary.Leg(2).Stay)
	assert.Equal(t, []Flight{{"NYC", "LON", 1, 450}, {"NYC", "LON", 5, 300}}, itinerary.Domain(0))
}

func TestInputFromJsonConfigurationErrors(t *testing.T) {
	scenarios := map[string]string{
		"malformed json":    `{"cities": [`,
		"wrong type":        `{"minPrice": 0, "maxPrice": 10, "cities": "A B", "stays": [[1, 2]]}`,
		"stay not a pair":   `{"minPrice": 0, "maxPrice": 10, "cities": ["A", "B"], "stays": [[1, 2, 3]]}`,
		"missing origin":    `{"minPrice": 0, "maxPrice": 10, "cities": ["A", "B"], "stays": [[1, 2]], "flights": [{"destination": "B", "day": 1, "price": 1}]}`,
		"inverted budget":   `{"minPrice": 10, "maxPrice": 0, "cities": ["A", "B"], "stays": [[1, 2]]}`,
		"too few cities":    `{"minPrice": 0, "maxPrice": 10, "cities": ["A"], "stays": []}`,
		"missing stay pair": `{"minPrice": 0, "maxPrice": 10, "cities": ["A", "B", "C"], "stays": [[1, 2]]}`,
		"fractional values": `{"minPrice": 0, "maxPrice": 10, "cities": ["A", "B"], "stays": [[1, 2]], "flights": [{"origin": "A", "destination": "B", "day": 1.9, "price": 2.7}]}`,
		"fractional stay":   `{"minPrice": 0, "maxPrice": 10, "cities": ["A", "B"], "stays": [[1.5, 2]]}`,
		"out of range":      `{"minPrice": 0, "maxPrice": 1e30, "cities": ["A", "B"], "stays": [[1, 2]]}`,
	}

	for name, content := range scenarios {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "input.json")
			require.NoError(t, os.WriteFile(file, []byte(content), 0666))

			itinerary, err := InputFromJson(file)

			assert.Nil(t, itinerary)
			var configurationError *ConfigurationError
			assert.True(t, errors.As(err, &configurationError), "unexpected error: %v", err)
		})
	}
}

func TestInputFromTextAcceptsInvertedLastStay(t *testing.T) {
	// The last leg has no successor, so its window never constrains anything
	itinerary, err := InputFromText(strings.NewReader("1\n0 10\nA B\n5 1\nA B 3 4\n"))

	require.NoError(t, err)
	assert.Equal(t, StayWindow{5, 1}, itinerary.Leg(0).Stay)
}

func TestInputFromJsonMissingFile(t *testing.T) {
	_, err := InputFromJson(filepath.Join(t.TempDir(), "missing.json"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
