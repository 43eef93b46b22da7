package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		err error
	}{
		{"5", 5, nil},
		{"5.0", 5, nil},
		{"4.5", 4.5, nil},
		{"4,50", 4.5, nil},
		{" 2.25 ", 2.25, nil},
		{".5", 0.5, nil},
		{"3.", 3, nil},
		{"+1", 1, nil},
		{"0", 0, nil},
		{"-1", 0, ErrNegativeValue},
		{"abc", 0, ErrInvalidNumber},
		{"1.2.3", 0, ErrInvalidNumber},
		{"1e5", 0, ErrInvalidNumber},
		{".", 0, ErrInvalidNumber},
		{"", 0, ErrInvalidNumber},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Fatalf("%q expected %v, got %v", tc.in, tc.err, err)
			}
			continue
		}
		if err != nil || got != tc.out {
			t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in  string
		out uint32
		ok  bool
	}{
		{"3", 3, true},
		{" 12 ", 12, true},
		{"0", 0, true},
		{"-2", 0, false},
		{"1.5", 0, false},
		{"x", 0, false},
		{"", 0, false},
		{"99999999999", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseQuantity(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestLineTotalAndFormat(t *testing.T) {
	if got := LineTotal(4.5, 3).InexactFloat64(); got != 13.5 {
		t.Fatalf("expected 13.5, got %v", got)
	}
	if got := LineTotal(0.1, 3).String(); got != "0.3" {
		t.Fatalf("expected exact 0.3, got %s", got)
	}
	if got := FormatAmount(4); got != "4.00" {
		t.Fatalf("expected 4.00, got %s", got)
	}
	if got := FormatAmount(2.345); got != "2.35" {
		t.Fatalf("expected 2.35, got %s", got)
	}
}
