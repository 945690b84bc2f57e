package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dmarins/bankledger/internal/domain"
)

func TestValidateDepositAmount(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"minimum accepted", "1.00", false},
		{"maximum accepted", "10000.00", false},
		{"mid range", "500.00", false},
		{"below minimum", "0.99", true},
		{"half a unit", "0.50", true},
		{"above maximum", "10000.01", true},
		{"zero", "0", true},
		{"negative", "-5.00", true},
		{"too many decimal places", "10.005", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateDepositAmount(decimal.RequireFromString(tt.value))
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidAmount) {
					t.Errorf("expected ErrInvalidAmount for %s, got %v", tt.value, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error for %s: %v", tt.value, err)
			}
		})
	}
}

func TestValidateTransferAmount(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"smallest unit", "0.01", false},
		{"large value", "999999.99", false},
		{"zero rejected", "0.00", true},
		{"negative rejected", "-1.00", true},
		{"sub-cent precision rejected", "1.001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateTransferAmount(decimal.RequireFromString(tt.value))
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidAmount) {
					t.Errorf("expected ErrInvalidAmount for %s, got %v", tt.value, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error for %s: %v", tt.value, err)
			}
		})
	}
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{0, 0, 20, 0},
		{-5, -3, 20, 0},
		{50, 10, 50, 10},
		{500, 0, 100, 0},
	}

	for _, tt := range tests {
		limit, offset := domain.ValidatePagination(tt.limit, tt.offset)
		if limit != tt.wantLimit || offset != tt.wantOffset {
			t.Errorf("ValidatePagination(%d, %d) = (%d, %d), want (%d, %d)",
				tt.limit, tt.offset, limit, offset, tt.wantLimit, tt.wantOffset)
		}
	}
}
