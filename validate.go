package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Sentinel amount that ends a change session.
const Sentinel = -1.0

type Kind int

const (
	NoInput Kind = iota
	TooFewInputs
	TooManyInputs
	ParseFailure
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case NoInput:
		return "no input"
	case TooFewInputs:
		return "too few inputs"
	case TooManyInputs:
		return "too many inputs"
	case ParseFailure:
		return "parse failure"
	case OutOfRange:
		return "out of range"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var errNotFinite = xerrors.New("value is not finite")

// ValidationError describes why one input line was rejected.
type ValidationError struct {
	Kind Kind
	// Subject names what was expected, e.g. "numbers".
	Subject string
	// Want is the required arity for TooFewInputs/TooManyInputs.
	Want int
	// Token and Err are set for ParseFailure.
	Token string
	Err   error
	// Value is set for OutOfRange.
	Value float64
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case NoInput:
		return fmt.Sprintf("no input %s", e.Subject)
	case TooFewInputs:
		return fmt.Sprintf("fewer than %d %s", e.Want, e.Subject)
	case TooManyInputs:
		return fmt.Sprintf("more than %d %s", e.Want, e.Subject)
	case ParseFailure:
		return fmt.Sprintf("parse %q: %v", e.Token, e.Err)
	case OutOfRange:
		return fmt.Sprintf("%v is out of range", e.Value)
	}
	return e.Kind.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func parseFloats(tokens []string) ([]float64, error) {
	res := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &ValidationError{Kind: ParseFailure, Token: tok, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ValidationError{Kind: ParseFailure, Token: tok, Err: errNotFinite}
		}
		res = append(res, v)
	}
	return res, nil
}

func checkArity(got, want int, subject string) error {
	switch {
	case got == 0:
		return &ValidationError{Kind: NoInput, Subject: subject}
	case got < want:
		return &ValidationError{Kind: TooFewInputs, Subject: subject, Want: want}
	case got > want:
		return &ValidationError{Kind: TooManyInputs, Subject: subject, Want: want}
	}
	return nil
}

// ParseSamples reads any non-zero number of floats.
func ParseSamples(line string) ([]float64, error) {
	samples, err := parseFloats(strings.Fields(line))
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, &ValidationError{Kind: NoInput, Subject: "numbers"}
	}
	return samples, nil
}

// ParsePoint reads exactly two int32 tokens. All tokens are parsed before the
// arity is checked.
func ParsePoint(line string) (Point, error) {
	tokens := strings.Fields(line)
	coords := make([]int32, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return Point{}, &ValidationError{Kind: ParseFailure, Token: tok, Err: err}
		}
		coords = append(coords, int32(v))
	}
	if err := checkArity(len(coords), 2, "numbers"); err != nil {
		return Point{}, err
	}
	return Point{X: coords[0], Y: coords[1]}, nil
}

// ParseAmount reads one dollar amount in [0, 1], or the Sentinel.
func ParseAmount(line string) (float64, error) {
	values, err := parseFloats(strings.Fields(line))
	if err != nil {
		return 0, err
	}
	if err := checkArity(len(values), 1, "amounts"); err != nil {
		return 0, err
	}
	v := values[0]
	if v > 1.0 || (v < 0.0 && v != Sentinel) {
		return 0, &ValidationError{Kind: OutOfRange, Value: v}
	}
	return v, nil
}
