package provider

import "testing"

func TestToCAD(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		currency  string
		want      float64
		wantKnown bool
	}{
		{"USD converts at 1.35", 30.00, "USD", 40.50, true},
		{"EUR converts at 1.47", 10.00, "EUR", 14.70, true},
		{"GBP converts at 1.70", 10.00, "GBP", 17.00, true},
		{"CAD passes through", 25.99, "CAD", 25.99, true},
		{"lowercase code", 30.00, "usd", 40.50, true},
		{"empty currency passes through", 12.34, "", 12.34, true},
		{"unknown currency passes through unconverted", 1000, "JPY", 1000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := toCAD(tt.amount, tt.currency)
			if roundCents(got) != tt.want {
				t.Errorf("toCAD(%v, %q) = %v; want %v", tt.amount, tt.currency, got, tt.want)
			}
			if known != tt.wantKnown {
				t.Errorf("toCAD(%v, %q) known = %v; want %v", tt.amount, tt.currency, known, tt.wantKnown)
			}
		})
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{40.5, 40.5},
		{2.718, 2.72},
		{3.14159, 3.14},
		{19.994, 19.99},
		{0, 0},
	}
	for _, tt := range tests {
		if got := roundCents(tt.in); got != tt.want {
			t.Errorf("roundCents(%v) = %v; want %v", tt.in, got, tt.want)
		}
	}
}
