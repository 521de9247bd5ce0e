package folio

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1050, "USD"), "$1,050.00"},
		{M(-20, "USD"), "-$20.00"},
		{M(0.125, "USD"), "$0.13"},
		{M(1234.5, "EUR"), "1.234,50 €"},
		{M(12, ""), "12.00"},
		{M(12, "XYZ"), "12.00 XYZ"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.m.Decimal(), got, tt.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(30), "+$30.00"},
		{USD(-20), "-$20.00"},
		{USD(0), "-"},
	}
	for _, tt := range tests {
		if got := tt.m.SignedString(); got != tt.want {
			t.Errorf("SignedString() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	var total Money
	total = total.Add(USD(10))
	if total.Currency() != "USD" {
		t.Errorf("zero Money + USD has currency %q", total.Currency())
	}
	defer func() {
		if recover() == nil {
			t.Error("adding EUR to USD did not panic")
		}
	}()
	total.Add(M(1, "EUR"))
}

func TestParseMoney_Range(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"150.25", false},
		{"999999999999999.99", false},
		{"1e18", true},
		{"1e50000000", true},
		{"0.0000000000000000000001", true},
		{"1234567890123456", true},
	}
	for _, tt := range tests {
		_, err := ParseMoney(tt.in, "USD")
		if tt.wantErr != (err != nil) {
			t.Errorf("ParseMoney(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseMoney(%q) error = %v, want ErrInvalidAmount", tt.in, err)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in      string
		want    Quantity
		wantErr bool
	}{
		{"3", Q(3), false},
		{"3.0", Q(3), false},
		{"-2", Q(-2), false},
		{"1.5", Quantity{}, true},
		{"three", Quantity{}, true},
		{"", Quantity{}, true},
		{"1e50000000", Quantity{}, true},
		{"1e-50000000", Quantity{}, true},
		{"1e3", Q(1000), false},
	}
	for _, tt := range tests {
		got, err := ParseQuantity(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidQuantity) {
				t.Errorf("ParseQuantity(%q) error = %v, want ErrInvalidQuantity", tt.in, err)
			}
			continue
		}
		if err != nil || !got.Equal(tt.want) {
			t.Errorf("ParseQuantity(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestPercent_SignedString(t *testing.T) {
	tests := []struct {
		p    Percent
		want string
	}{
		{20, "+20.00%"},
		{-3.333, "-3.33%"},
		{0, "-"},
		{0.004, "-"},
		{-0.004, "-"},
		{0.005, "+0.01%"},
	}
	for _, tt := range tests {
		if got := tt.p.SignedString(); got != tt.want {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tt.p), got, tt.want)
		}
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		ratio string
		want  Percent
		str   string
	}{
		{"0.2", 20, "20.00%"},
		{"-0.125", -12.5, "-12.50%"},
		{"1", 100, "100.00%"},
		{"0.00001", 0.001, "0.00%"},
		{"-0.00001", -0.001, "0.00%"},
	}
	for _, tt := range tests {
		got := PercentOf(decimal.RequireFromString(tt.ratio))
		if !got.Equal(tt.want) {
			t.Errorf("PercentOf(%s) = %v, want %v", tt.ratio, float64(got), float64(tt.want))
		}
		if s := got.String(); s != tt.str {
			t.Errorf("PercentOf(%s).String() = %q, want %q", tt.ratio, s, tt.str)
		}
	}
}
