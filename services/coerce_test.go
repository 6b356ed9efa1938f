package services

import (
	"encoding/json"
	"testing"
)

func TestCoerceNumeric(t *testing.T) {
	cases := []struct {
		name     string
		value    interface{}
		def      float64
		expected float64
	}{
		{name: "float64 passes through", value: 2.5, def: 0, expected: 2.5},
		{name: "int converts", value: 12, def: 0, expected: 12},
		{name: "int64 converts", value: int64(7), def: 0, expected: 7},
		{name: "plain string parses", value: "3.25", def: 0, expected: 3.25},
		{name: "comma decimal parses", value: "1.234,56", def: 0, expected: 1234.56},
		{name: "comma only decimal parses", value: "0,75", def: 0, expected: 0.75},
		{name: "padded string parses", value: "  42 ", def: 0, expected: 42},
		{name: "json number parses", value: json.Number("9.5"), def: 0, expected: 9.5},
		{name: "corrupted string degrades to default", value: "abc", def: 0, expected: 0},
		{name: "empty string uses default", value: "", def: 1, expected: 1},
		{name: "nil uses default", value: nil, def: 1, expected: 1},
		{name: "nested object uses default", value: map[string]interface{}{"v": 1}, def: 0, expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CoerceNumeric(tc.value, tc.def); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
