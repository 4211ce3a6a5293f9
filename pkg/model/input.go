package model

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type RawFlight struct {
	Origin      string `mapstructure:"origin" validate:"required"`
	Destination string `mapstructure:"destination" validate:"required"`
	Day         int    `mapstructure:"day"`
	Price       int    `mapstructure:"price"`
}

type RawTripInput struct {
	MinPrice int         `mapstructure:"minPrice"`
	MaxPrice int         `mapstructure:"maxPrice" validate:"gtefield=MinPrice"`
	Cities   []string    `mapstructure:"cities" validate:"min=2,dive,required"`
	Stays    [][]int     `mapstructure:"stays" validate:"dive,len=2"`
	Flights  []RawFlight `mapstructure:"flights" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func InputFromJson(file string) (*Itinerary, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read input file: %w", err)
	}
	// Numbers are kept as json.Number so that fractional days or prices fail integer decoding
	decoder := json.NewDecoder(strings.NewReader(string(bytes)))
	decoder.UseNumber()
	var inputJson map[string]any
	if err := decoder.Decode(&inputJson); err != nil {
		return nil, &ConfigurationError{Field: "json", Err: err}
	}

	var rawInput RawTripInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return nil, &ConfigurationError{Field: "json", Err: err}
	}
	return ProcessRawInput(rawInput)
}

// InputFromText reads the line-based format:
//
//	M
//	minPrice maxPrice
//	city1 city2 ... cityN
//	minStay1 maxStay1 ... minStayN-1 maxStayN-1
//	origin destination day price   (M lines)
func InputFromText(reader io.Reader) (*Itinerary, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // City lists may exceed the default token size

	// Returns the fields of the next non-blank line
	nextLine := func(field string) ([]string, error) {
		for scanner.Scan() {
			if fields := strings.Fields(scanner.Text()); len(fields) > 0 {
				return fields, nil
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("cannot read input: %w", err)
		}
		return nil, configurationErrorf(field, "unexpected end of input")
	}

	//** Flight count
	fields, err := nextLine("flight count")
	if err != nil {
		return nil, err
	}
	counts, err := parseInts("flight count", fields, 1)
	if err != nil {
		return nil, err
	} else if counts[0] < 0 {
		return nil, configurationErrorf("flight count", "must not be negative: %d", counts[0])
	}
	flightCount := counts[0]

	//** Budget
	if fields, err = nextLine("budget"); err != nil {
		return nil, err
	}
	prices, err := parseInts("budget", fields, 2)
	if err != nil {
		return nil, err
	}

	//** Cities
	cities, err := nextLine("cities")
	if err != nil {
		return nil, err
	}

	//** Stay windows
	if fields, err = nextLine("stays"); err != nil {
		return nil, err
	}
	if len(fields)%2 != 0 {
		return nil, configurationErrorf("stays", "expected pairs of integers, got %d values", len(fields))
	}
	stayValues, err := parseInts("stays", fields, len(fields))
	if err != nil {
		return nil, err
	}

	//** Flights
	flights := make([]RawFlight, 0) // The declared count is not trusted for allocation
	for i := range flightCount {
		field := fmt.Sprintf("flight %d", i+1)
		if fields, err = nextLine(field); err != nil {
			return nil, err
		} else if len(fields) != 4 {
			return nil, configurationErrorf(field, "expected \"origin destination day price\", got %q", strings.Join(fields, " "))
		}
		values, err := parseInts(field, fields[2:], 2)
		if err != nil {
			return nil, err
		}
		flights = append(flights, RawFlight{Origin: fields[0], Destination: fields[1], Day: values[0], Price: values[1]})
	}

	return ProcessRawInput(RawTripInput{
		MinPrice: prices[0],
		MaxPrice: prices[1],
		Cities:   cities,
		Stays:    lo.Chunk(stayValues, 2),
		Flights:  flights,
	})
}

func ProcessRawInput(rawInput RawTripInput) (*Itinerary, error) {
	if err := validate.Struct(rawInput); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return nil, &ConfigurationError{Field: validationErrors[0].Namespace(), Err: err}
		}
		return nil, &ConfigurationError{Field: "input", Err: err}
	}

	stays := lo.Map(rawInput.Stays, func(pair []int, _ int) StayWindow {
		return StayWindow{Min: pair[0], Max: pair[1]}
	})
	flights := lo.Map(rawInput.Flights, func(rawFlight RawFlight, _ int) Flight {
		return Flight(rawFlight)
	})

	return NewItinerary(rawInput.Cities, Budget{Min: rawInput.MinPrice, Max: rawInput.MaxPrice}, stays, flights)
}

func parseInts(field string, fields []string, expected int) ([]int, error) {
	if len(fields) != expected {
		return nil, configurationErrorf(field, "expected %d integer(s), got %d", expected, len(fields))
	}
	values := make([]int, 0, len(fields))
	for _, valueStr := range fields {
		value, err := strconv.Atoi(valueStr)
		if err != nil {
			return nil, &ConfigurationError{Field: field, Err: err}
		}
		values = append(values, value)
	}
	return values, nil
}
