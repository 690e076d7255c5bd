package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dustore/pos-admin-api/pkg/money"
)

func TestRupiah(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{15000, "Rp 15.000"},
		{45000, "Rp 45.000"},
		{1500000, "Rp 1.500.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, money.Rupiah(tt.amount))
	}
}

func TestGroup(t *testing.T) {
	assert.Equal(t, "15.000", money.Group(15000))
	assert.Equal(t, "0", money.Group(0))
	assert.Equal(t, "999", money.Group(999))
	assert.Equal(t, "1.000", money.Group(1000))
}

func TestPadID(t *testing.T) {
	tests := []struct {
		n     int64
		width int
		want  string
	}{
		{7, 3, "007"},
		{42, 3, "042"},
		{123, 3, "123"},
		{12345, 3, "12345"}, // wider than the pad width passes through
		{1, 5, "00001"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, money.PadID(tt.n, tt.width))
	}
}
