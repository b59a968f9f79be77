/* Copyright (c) 2021 David Bulkow */

package dateutil

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

/*
Accepted input:

	YYYY-MM-DD                 date
	HH:MM[:SS[.ffffff]]        time
	YYYY-MM-DDTHH:MM:SS[.fff]  datetime, 'T' or ' ' between date and time
	YYYYMMDD[HH[MM[SS]]]       compact, fixed width; YYYYMMDD alone is a date

A single trailing 'Z' is dropped. Delimiters are '-', 'T', ':' and ' '.

The kind is picked from the raw input: '-' without ':' is a date, ':'
without '-' is a time, anything else is a datetime. A '.' anywhere means
the last component carries fractional seconds.
*/

const (
	yearChars  = 4
	fieldChars = 2

	microsPerSecond = 1000000
	microsDigits    = 6
)

// Parser converts strings to calendar values. The zero value is ready
// to use; Log, when set, receives debug output.
type Parser struct {
	Log *log.Logger
}

var defaultParser = &Parser{}

// Parse converts text into a Date, Time or DateTime. All failures are
// reported as *ParseError.
func Parse(text string) (Value, error) {
	return defaultParser.Parse(text)
}

func (p *Parser) debugf(format string, args ...interface{}) {
	if p.Log == nil {
		return
	}
	p.Log.Printf(format, args...)
}

func (p *Parser) Parse(text string) (Value, error) {
	p.debugf("parsing %q", text)

	tokens, compact, ok := tokenize(text)
	if !ok {
		return nil, castError(text)
	}

	comps := make([]component, 0, len(tokens))
	for _, tok := range tokens {
		c, err := castComponent(tok)
		if err != nil {
			p.debugf("bad component %q: %v", tok, err)
			return nil, castError(text)
		}
		comps = append(comps, c)
	}

	p.debugf("processing components %v", comps)

	kind, fraction := classify(text)

	if kind == KindDateTime && compact && len(comps) == 3 {
		kind = KindDate
	}

	if fraction && kind != KindDate {
		p.debugf("scaling fractional second to microseconds")
		comps = splitFraction(comps)
	}

	p.debugf("converting to %s", kind)

	v, err := build(kind, comps)
	if err != nil {
		return nil, constructError(text, err)
	}
	return v, nil
}

func isDelimiter(r rune) bool {
	switch r {
	case '-', 'T', ':', ' ':
		return true
	}
	return false
}

// tokenize strips the zone marker and splits on the delimiters. Empty
// tokens between adjacent delimiters are kept so they fail the number
// cast. Input without delimiters is cut into fixed width fields.
func tokenize(text string) (tokens []string, compact bool, ok bool) {
	s := strings.TrimSuffix(text, "Z")

	start := 0
	for i, r := range s {
		if isDelimiter(r) {
			tokens = append(tokens, s[start:i])
			start = i + 1
		}
	}
	tokens = append(tokens, s[start:])

	if len(tokens) > 1 {
		return tokens, false, true
	}

	tokens, ok = splitCompact(s)
	return tokens, true, ok
}

func splitCompact(s string) ([]string, bool) {
	if len(s) <= yearChars {
		return []string{s}, true
	}

	tokens := []string{s[:yearChars]}
	rest := s[yearChars:]
	for len(rest) > 0 {
		if len(rest) < fieldChars {
			return nil, false
		}
		tokens = append(tokens, rest[:fieldChars])
		rest = rest[fieldChars:]
	}
	return tokens, true
}

func classify(text string) (kind Kind, fraction bool) {
	hasDash := strings.Contains(text, "-")
	hasColon := strings.Contains(text, ":")
	fraction = strings.Contains(text, ".")

	switch {
	case hasDash && !hasColon:
		return KindDate, fraction
	case hasColon && !hasDash:
		return KindTime, fraction
	}
	return KindDateTime, fraction
}

type component struct {
	num    int
	micros int
	float  bool
	text   string
}

func (c component) String() string {
	return c.text
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// castComponent reads an integer, or a decimal number with one '.'
// whose fraction is kept exactly as microseconds. Digits past the
// sixth fractional place are dropped.
func castComponent(tok string) (component, error) {
	whole, frac, ok := strings.Cut(tok, ".")
	if !ok {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return component{}, err
		}
		return component{num: n, text: tok}, nil
	}

	if whole+frac == "" || !isDigits(whole) || !isDigits(frac) {
		return component{}, fmt.Errorf("invalid decimal %q", tok)
	}

	c := component{float: true, text: tok}

	if whole != "" {
		n, err := strconv.Atoi(whole)
		if err != nil {
			return component{}, err
		}
		c.num = n
	}

	frac = (frac + "000000")[:microsDigits]
	c.micros, _ = strconv.Atoi(frac)

	return c, nil
}

// splitFraction replaces the last component with whole seconds followed
// by microseconds.
func splitFraction(comps []component) []component {
	if len(comps) == 0 {
		return comps
	}

	last := comps[len(comps)-1]

	out := append([]component{}, comps[:len(comps)-1]...)
	return append(out,
		component{num: last.num, text: strconv.Itoa(last.num)},
		component{num: last.micros, text: strconv.Itoa(last.micros)},
	)
}

// integers checks the component count against the constructor arity and
// pads the optional trailing fields with zero.
func integers(name string, comps []component, min, max int) ([]int, error) {
	if len(comps) < min || len(comps) > max {
		if min == max {
			return nil, fmt.Errorf("%s takes exactly %d components (%d given)", name, min, len(comps))
		}
		return nil, fmt.Errorf("%s takes %d to %d components (%d given)", name, min, max, len(comps))
	}

	args := make([]int, max)
	for i, c := range comps {
		if c.float {
			return nil, fmt.Errorf("integer argument expected, got float")
		}
		args[i] = c.num
	}
	return args, nil
}

func build(kind Kind, comps []component) (Value, error) {
	switch kind {
	case KindDate:
		a, err := integers("date", comps, 3, 3)
		if err != nil {
			return nil, err
		}
		d, err := NewDate(a[0], a[1], a[2])
		if err != nil {
			return nil, err
		}
		return d, nil

	case KindTime:
		a, err := integers("time", comps, 1, 4)
		if err != nil {
			return nil, err
		}
		t, err := NewTime(a[0], a[1], a[2], a[3])
		if err != nil {
			return nil, err
		}
		return t, nil

	case KindDateTime:
		a, err := integers("datetime", comps, 3, 7)
		if err != nil {
			return nil, err
		}
		dt, err := NewDateTime(a[0], a[1], a[2], a[3], a[4], a[5], a[6])
		if err != nil {
			return nil, err
		}
		return dt, nil
	}

	return nil, fmt.Errorf("unknown kind %s", kind)
}
