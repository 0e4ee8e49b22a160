package main

import (
	"fmt"
	"strconv"
	"strings"
)

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseCoefficients(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	coeffs := make([]float64, 0, len(parts))
	for i, part := range parts {
		c, err := parseFloat(part)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %d (%q): %w", i, part, err)
		}
		coeffs = append(coeffs, c)
	}

	return coeffs, nil
}
