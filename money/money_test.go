package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_ToBtc(t *testing.T) {
	tests := []struct {
		name string
		m    Money
		want decimal.Decimal
	}{
		{
			name: "whole coin",
			m:    100000000,
			want: decimal.NewFromInt(1),
		},
		{
			name: "swap quote amount",
			m:    100002,
			want: decimal.RequireFromString("0.00100002"),
		},
		{
			name: "zero",
			m:    0,
			want: decimal.Zero,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.ToBtc(); got.Cmp(tt.want) != 0 {
				t.Errorf("Money.ToBtc() = %v, want %v", got, tt.want)
			}
		})
	}
}
