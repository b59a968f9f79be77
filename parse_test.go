/* Copyright (c) 2021 David Bulkow */

package dateutil

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
		error string
	}{
		{
			name:  "full datetime",
			input: "2012-12-06T12:53:56.123",
			want:  DateTime{2012, 12, 6, 12, 53, 56, 123000},
		},
		{
			name:  "datetime with zone marker",
			input: "2013-06-21T20:30:40.066183Z",
			want:  DateTime{2013, 6, 21, 20, 30, 40, 66183},
		},
		{
			name:  "space separated datetime",
			input: "2012-12-06 12:53:56.123",
			want:  DateTime{2012, 12, 6, 12, 53, 56, 123000},
		},
		{
			name:  "partial datetime",
			input: "2012-12-06T12:53:56",
			want:  DateTime{2012, 12, 6, 12, 53, 56, 0},
		},
		{
			name:  "datetime without seconds",
			input: "2012-12-06T12:53",
			want:  DateTime{2012, 12, 6, 12, 53, 0, 0},
		},
		{
			name:  "compact datetime",
			input: "20121206125356",
			want:  DateTime{2012, 12, 6, 12, 53, 56, 0},
		},
		{
			name:  "compact datetime with zone marker",
			input: "20121206125356Z",
			want:  DateTime{2012, 12, 6, 12, 53, 56, 0},
		},
		{
			name:  "compact hour and minute",
			input: "201212061253",
			want:  DateTime{2012, 12, 6, 12, 53, 0, 0},
		},
		{
			name:  "compact date",
			input: "20121206",
			want:  Date{2012, 12, 6},
		},
		{
			name:  "date",
			input: "2012-12-06",
			want:  Date{2012, 12, 6},
		},
		{
			name:  "leap day",
			input: "2016-02-29",
			want:  Date{2016, 2, 29},
		},
		{
			name:  "time with fraction",
			input: "12:53:56.123",
			want:  Time{12, 53, 56, 123000},
		},
		{
			name:  "time",
			input: "12:53:56",
			want:  Time{12, 53, 56, 0},
		},
		{
			name:  "time with zone marker",
			input: "23:59:59Z",
			want:  Time{23, 59, 59, 0},
		},
		{
			name:  "hour and minute",
			input: "07:45",
			want:  Time{7, 45, 0, 0},
		},
		{
			name:  "fraction past sixth digit at end of minute",
			input: "23:59:59.9999999",
			want:  Time{23, 59, 59, 999999},
		},
		{
			name:  "fraction past sixth digit at end of year",
			input: "2012-12-31T23:59:59.9999997",
			want:  DateTime{2012, 12, 31, 23, 59, 59, 999999},
		},
		{
			name:  "hex float seconds",
			input: "12:53:0x1.8p1",
			error: "Unable to create datetime from '12:53:0x1.8p1'",
		},
		{
			name:  "exponent seconds",
			input: "12:53:5.0e1",
			error: "Unable to create datetime from '12:53:5.0e1'",
		},
		{
			name:  "not a number",
			input: "bad string",
			error: "Unable to create datetime from 'bad string'",
		},
		{
			name:  "empty",
			input: "",
			error: "Unable to create datetime from ''",
		},
		{
			name:  "doubled delimiter",
			input: "2012--12-06",
			error: "Unable to create datetime from '2012--12-06'",
		},
		{
			name:  "odd compact length",
			input: "201212061",
			error: "Unable to create datetime from '201212061'",
		},
		{
			name:  "bad fraction",
			input: "12:53:56.1.2",
			error: "Unable to create datetime from '12:53:56.1.2'",
		},
		{
			name:  "fractional day",
			input: "2012-12-6.3",
			error: "integer argument expected, got float",
		},
		{
			name:  "month out of range",
			input: "2012-13-06",
			error: "month must be in 1..12",
		},
		{
			name:  "day out of range",
			input: "2015-02-29",
			error: "day is out of range for month",
		},
		{
			name:  "year zero",
			input: "0000-01-01",
			error: "year 0 is out of range",
		},
		{
			name:  "hour out of range",
			input: "24:00:00",
			error: "hour must be in 0..23",
		},
		{
			name:  "second out of range",
			input: "2012-12-06T12:53:60",
			error: "second must be in 0..59",
		},
		{
			name:  "too many date fields",
			input: "2012-12-06-01",
			error: "date takes exactly 3 components (4 given)",
		},
		{
			name:  "too many time fields",
			input: "12:53:56:01:02",
			error: "time takes 1 to 4 components (5 given)",
		},
		{
			name:  "year only",
			input: "2012",
			error: "datetime takes 3 to 7 components (1 given)",
		},
		{
			name:  "microseconds past last field",
			input: "2012-12-06T12:53:56:01.5",
			error: "datetime takes 3 to 7 components (8 given)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.error != "" {
				if err == nil {
					t.Fatalf("expected error %q, got %v", tc.error, got)
				}
				perr, ok := err.(*ParseError)
				if !ok {
					t.Fatalf("expected *ParseError, got %T", err)
				}
				if perr.Error() != tc.error {
					t.Fatalf("error exp %q got %q", tc.error, perr.Error())
				}
				if perr.Input() != tc.input {
					t.Fatalf("input exp %q got %q", tc.input, perr.Input())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("exp %#v got %#v", tc.want, got)
			}
		})
	}
}

func TestParseErrorKinds(t *testing.T) {
	_, err := Parse("bad string")
	perr := err.(*ParseError)
	if !perr.CastFailed() || perr.Invalid() {
		t.Errorf("cast failure flags: cast %t invalid %t", perr.CastFailed(), perr.Invalid())
	}

	_, err = Parse("2012-13-06")
	perr = err.(*ParseError)
	if perr.CastFailed() || !perr.Invalid() {
		t.Errorf("construction failure flags: cast %t invalid %t", perr.CastFailed(), perr.Invalid())
	}
}

func TestSeparatorsInterchangeable(t *testing.T) {
	a, err := Parse("2012-12-06T12:53:56.123")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("2012-12-06 12:53:56.123")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("%v != %v", a, b)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input    string
		kind     Kind
		fraction bool
	}{
		{input: "2012-12-06", kind: KindDate},
		{input: "2012-12-6.3", kind: KindDate, fraction: true},
		{input: "12:53:56", kind: KindTime},
		{input: "12:53:56.123", kind: KindTime, fraction: true},
		{input: "2012-12-06T12:53:56", kind: KindDateTime},
		{input: "20121206125356", kind: KindDateTime},
		{input: "bad string", kind: KindDateTime},
	}

	for _, tc := range tests {
		kind, fraction := classify(tc.input)
		if kind != tc.kind || fraction != tc.fraction {
			t.Errorf("%q got %s/%t exp %s/%t", tc.input, kind, fraction, tc.kind, tc.fraction)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input   string
		tokens  []string
		compact bool
		ok      bool
	}{
		{input: "2012-12-06T12:53:56.123Z", tokens: []string{"2012", "12", "06", "12", "53", "56.123"}, ok: true},
		{input: "12:53", tokens: []string{"12", "53"}, ok: true},
		{input: "2012-12-06ZZ", tokens: []string{"2012", "12", "06Z"}, ok: true},
		{input: "20121206", tokens: []string{"2012", "12", "06"}, compact: true, ok: true},
		{input: "2012", tokens: []string{"2012"}, compact: true, ok: true},
		{input: "2012120", compact: true},
	}

	for _, tc := range tests {
		tokens, compact, ok := tokenize(tc.input)
		if ok != tc.ok || compact != tc.compact {
			t.Errorf("%q got compact %t ok %t", tc.input, compact, ok)
			continue
		}
		if strings.Join(tokens, ",") != strings.Join(tc.tokens, ",") {
			t.Errorf("%q got %q exp %q", tc.input, tokens, tc.tokens)
		}
	}
}

func TestSplitFraction(t *testing.T) {
	comps := splitFraction([]component{{num: 12}, {num: 53}, {num: 59, micros: 999999, float: true}})
	if len(comps) != 4 || comps[2].num != 59 || comps[3].num != 999999 || comps[2].float || comps[3].float {
		t.Fatalf("fractional last component: %v", comps)
	}

	comps = splitFraction([]component{{num: 12}, {num: 53}, {num: 56}})
	if len(comps) != 4 || comps[2].num != 56 || comps[3].num != 0 {
		t.Fatalf("integer last component: %v", comps)
	}
}

func TestCastComponent(t *testing.T) {
	tests := []struct {
		tok    string
		num    int
		micros int
		float  bool
		valid  bool
	}{
		{tok: "56", num: 56, valid: true},
		{tok: "06", num: 6, valid: true},
		{tok: "56.123", num: 56, micros: 123000, float: true, valid: true},
		{tok: "40.066183", num: 40, micros: 66183, float: true, valid: true},
		{tok: "59.9999999", num: 59, micros: 999999, float: true, valid: true},
		{tok: ".5", micros: 500000, float: true, valid: true},
		{tok: "5.", num: 5, float: true, valid: true},
		{tok: "."},
		{tok: ""},
		{tok: "1.2.3"},
		{tok: "0x1.8p1"},
		{tok: "1.5e1"},
		{tok: "+1.5"},
		{tok: "bad"},
	}

	for _, tc := range tests {
		c, err := castComponent(tc.tok)
		if (err == nil) != tc.valid {
			t.Errorf("%q got valid %t exp %t (%v)", tc.tok, err == nil, tc.valid, err)
			continue
		}
		if !tc.valid {
			continue
		}
		if c.num != tc.num || c.micros != tc.micros || c.float != tc.float {
			t.Errorf("%q got %+v", tc.tok, c)
		}
	}
}

func TestParserLog(t *testing.T) {
	var buf bytes.Buffer
	p := &Parser{Log: log.New(&buf, "", 0)}

	if _, err := p.Parse("12:53:56.123"); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{`parsing "12:53:56.123"`, "scaling fractional second", "converting to time"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestIdempotent(t *testing.T) {
	inputs := []string{
		"2012-12-06T12:53:56.123",
		"2013-06-21T20:30:40.066183Z",
		"20121206125356",
		"20121206",
		"0099-01-01",
		"12:53:56.123",
		"00:00:00.000001",
		"23:59:59.999999",
	}

	for _, input := range inputs {
		v, err := Parse(input)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		again, err := Parse(v.String())
		if err != nil {
			t.Fatalf("%q reparse %q: %v", input, v.String(), err)
		}
		if again != v {
			t.Errorf("%q: %#v reparsed as %#v", input, v, again)
		}
	}
}
