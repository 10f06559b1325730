package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoeda(t *testing.T) {
	tests := []struct {
		name     string
		valor    float64
		expected string
	}{
		{
			name:     "Valor com milhares",
			valor:    1234567.89,
			expected: "R$ 1.234.567,89",
		},
		{
			name:     "Valor sem centavos ganha casas decimais",
			valor:    1500,
			expected: "R$ 1.500,00",
		},
		{
			name:     "Zero",
			valor:    0,
			expected: "R$ 0,00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Moeda(tt.valor))
		})
	}
}

func TestInteiro(t *testing.T) {
	assert.Equal(t, "1.234", Inteiro(1234))
	assert.Equal(t, "42", Inteiro(42))
	assert.Equal(t, "0", Inteiro(0))
}

func TestPercentual(t *testing.T) {
	assert.Equal(t, "53,89%", Percentual(53.89))
	assert.Equal(t, "0,00%", Percentual(0))
}

func TestPercentualOuTraco(t *testing.T) {
	valor := 12.5
	assert.Equal(t, "12,50%", PercentualOuTraco(&valor))
	assert.Equal(t, "-", PercentualOuTraco(nil))
}

func TestMesAbreviado(t *testing.T) {
	tests := []struct {
		name     string
		mes      int
		expected string
	}{
		{name: "Janeiro", mes: 1, expected: "Jan"},
		{name: "Dezembro", mes: 12, expected: "Dez"},
		{name: "Mês zero", mes: 0, expected: "-"},
		{name: "Mês acima do intervalo", mes: 13, expected: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MesAbreviado(tt.mes))
		})
	}
}
