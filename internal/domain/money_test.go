package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		expectError bool
	}{
		{
			name:  "whole number gains scale",
			input: "100",
			want:  "100.0000",
		},
		{
			name:  "rounds half up at fifth digit",
			input: "10.00005",
			want:  "10.0001",
		},
		{
			name:  "rounds down below half",
			input: "10.00004",
			want:  "10.0000",
		},
		{
			name:  "zero",
			input: "0",
			want:  "0.0000",
		},
		{
			name:        "negative rejected",
			input:       "-0.01",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoneyFromString(tt.input)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("expected ErrInvalidAmount, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if m.String() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, m.String())
			}
		})
	}
}

func TestNewMoney_Idempotent(t *testing.T) {
	first, err := NewMoneyFromString("12.34567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := NewMoney(first.Decimal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !first.Equal(second) {
		t.Errorf("expected %s == %s", first, second)
	}
}

func TestMoney_Equal_IgnoresRepresentation(t *testing.T) {
	a, _ := NewMoney(decimal.New(100, 0))    // 100
	b, _ := NewMoney(decimal.New(1000, -1))  // 100.0
	c, _ := NewMoney(decimal.New(10001, -2)) // 100.01

	if !a.Equal(b) {
		t.Errorf("expected %s == %s", a, b)
	}

	if a.Equal(c) {
		t.Errorf("expected %s != %s", a, c)
	}
}

func TestMoney_AddSub(t *testing.T) {
	a, _ := NewMoneyFromString("100.50")
	b, _ := NewMoneyFromString("0.25")

	sum := a.Add(b)
	if sum.String() != "100.7500" {
		t.Errorf("expected 100.7500, got %s", sum)
	}

	diff := a.Sub(b)
	if diff.String() != "100.2500" {
		t.Errorf("expected 100.2500, got %s", diff)
	}

	// Subtraction below zero is permitted at the value-type level.
	negative := b.Sub(a)
	if !negative.Decimal().IsNegative() {
		t.Errorf("expected negative result, got %s", negative)
	}
}

func TestZeroMoney(t *testing.T) {
	if !ZeroMoney.IsZero() {
		t.Error("expected ZeroMoney to be zero")
	}

	if ZeroMoney.String() != "0.0000" {
		t.Errorf("expected 0.0000, got %s", ZeroMoney)
	}

	a, _ := NewMoneyFromString("5")
	if !ZeroMoney.Add(a).Equal(a) {
		t.Error("expected ZeroMoney to be additive identity")
	}
}
