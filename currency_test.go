package money

import (
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseCurrency_RoundTrip(t *testing.T) {
	for _, c := range Currencies() {
		got, err := ParseCurrency(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    Currency
		wantErr bool
	}{
		{"dollar", "USD", USD, false},
		{"franc", "CHF", CHF, false},
		{"lower case", "usd", Currency{}, true},
		{"unsupported", "GBP", Currency{}, true},
		{"empty", "", Currency{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCurrency(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCurrency() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownCurrency))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrency_String(t *testing.T) {
	assert.Equal(t, "USD", USD.String())
	assert.Equal(t, "CHF", CHF.String())
	assert.Equal(t, "USD", NewDollar(1).Currency.String())
	assert.Equal(t, "CHF", NewFranc(1).Currency.String())
}

func TestCurrency_Valid(t *testing.T) {
	assert.True(t, USD.Valid())
	assert.True(t, CHF.Valid())
	assert.False(t, Currency{}.Valid())
}

func TestCurrencies_ClosedSet(t *testing.T) {
	assert.Equal(t, []Currency{USD, CHF}, Currencies())
	for _, c := range Currencies() {
		assert.True(t, c.Valid(), "%v", c)
	}

	_, err := ParseCurrency("EUR")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestCurrency_JSON(t *testing.T) {
	for _, c := range Currencies() {
		raw, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Equal(t, `"`+c.String()+`"`, string(raw))

		var got Currency
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, c, got)
	}

	var got Currency
	err := json.Unmarshal([]byte(`"GBP"`), &got)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
	assert.Equal(t, Currency{}, got)

	_, err = json.Marshal(Currency{})
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestMoney_JSON(t *testing.T) {
	raw, err := json.Marshal(NewFranc(-3))
	require.NoError(t, err)
	assert.Equal(t, `{"amount":-3,"currency":"CHF"}`, string(raw))

	var got Money
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, NewFranc(-3), got)

	err = json.Unmarshal([]byte(`{"amount":1,"currency":"EUR"}`), &got)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}
