package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loja/internal/apperrors"
	"loja/internal/validators"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func TestValidateProductCreate(t *testing.T) {
	data, err := validators.ValidateProductCreate(validators.ProductCreateInput{
		Name:  "  Widget  ",
		Price: floatPtr(9.999),
		Stock: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", data["nome"])
	assert.Equal(t, 10.00, data["preco"])
	assert.Equal(t, 5, data["estoque"])
}

func TestValidateProductCreateDefaultsStock(t *testing.T) {
	data, err := validators.ValidateProductCreate(validators.ProductCreateInput{
		Name:  "Widget",
		Price: floatPtr(1.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, data["estoque"])
}

func TestValidateProductCreateRejections(t *testing.T) {
	cases := []struct {
		name string
		in   validators.ProductCreateInput
	}{
		{"missing name", validators.ProductCreateInput{Price: floatPtr(1.0)}},
		{"short name", validators.ProductCreateInput{Name: "A", Price: floatPtr(1.0)}},
		{"blank name", validators.ProductCreateInput{Name: "   ", Price: floatPtr(1.0)}},
		{"missing price", validators.ProductCreateInput{Name: "Widget"}},
		{"zero price", validators.ProductCreateInput{Name: "Widget", Price: floatPtr(0)}},
		{"negative price", validators.ProductCreateInput{Name: "Widget", Price: floatPtr(-1.5)}},
		{"negative stock", validators.ProductCreateInput{Name: "Widget", Price: floatPtr(1.0), Stock: intPtr(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validators.ValidateProductCreate(tc.in)
			require.Error(t, err)
			assert.Equal(t, 400, apperrors.StatusOf(err))
		})
	}
}

func TestValidateProductUpdate(t *testing.T) {
	data, err := validators.ValidateProductUpdate(validators.ProductUpdateInput{
		Price: floatPtr(19.995),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"preco": 20.00}, data)

	// Zero stock is a legal update value.
	data, err = validators.ValidateProductUpdate(validators.ProductUpdateInput{
		Stock: intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"estoque": 0}, data)
}

func TestValidateProductUpdateRequiresAField(t *testing.T) {
	_, err := validators.ValidateProductUpdate(validators.ProductUpdateInput{})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))
}

func TestValidateProductUpdateRejectsNegativeStock(t *testing.T) {
	_, err := validators.ValidateProductUpdate(validators.ProductUpdateInput{
		Stock: intPtr(-3),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))
}

func TestValidateCustomerCreateNormalizesEmail(t *testing.T) {
	data, err := validators.ValidateCustomerCreate(validators.CustomerCreateInput{
		Name:  "Maria",
		Email: "  Maria@Example.COM  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", data["email"])
	assert.Equal(t, "Maria", data["nome"])
}

func TestValidateCustomerCreateRejections(t *testing.T) {
	cases := []struct {
		name string
		in   validators.CustomerCreateInput
	}{
		{"missing email", validators.CustomerCreateInput{Name: "Maria"}},
		{"no at sign", validators.CustomerCreateInput{Name: "Maria", Email: "maria.example.com"}},
		{"no domain", validators.CustomerCreateInput{Name: "Maria", Email: "maria@"}},
		{"missing name", validators.CustomerCreateInput{Email: "maria@example.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validators.ValidateCustomerCreate(tc.in)
			require.Error(t, err)
			assert.Equal(t, 400, apperrors.StatusOf(err))
		})
	}
}

func TestValidateCustomerUpdate(t *testing.T) {
	data, err := validators.ValidateCustomerUpdate(validators.CustomerUpdateInput{
		Email: strPtr(" Novo@Example.com "),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"email": "novo@example.com"}, data)

	_, err = validators.ValidateCustomerUpdate(validators.CustomerUpdateInput{})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@loja.com", validators.NormalizeEmail("  ANA@Loja.Com "))
}

func TestRoundPrice(t *testing.T) {
	assert.Equal(t, 10.00, validators.RoundPrice(9.999))
	assert.Equal(t, 9.99, validators.RoundPrice(9.99))
	assert.Equal(t, 0.1, validators.RoundPrice(0.1))
	assert.Equal(t, 2.35, validators.RoundPrice(2.345))
}

func TestParseID(t *testing.T) {
	id, err := validators.ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "", "0", "-1", "1.5"} {
		_, err := validators.ParseID(raw)
		require.Error(t, err, "raw=%q", raw)
		assert.Equal(t, 400, apperrors.StatusOf(err))
	}
}

func TestParseListParamsDefaults(t *testing.T) {
	params, err := validators.ParseListParams("", "", "  termo  ")
	require.NoError(t, err)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, "termo", params.Search)
}

func TestParseListParamsBounds(t *testing.T) {
	params, err := validators.ParseListParams("3", "100", "")
	require.NoError(t, err)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 100, params.Limit)

	invalid := []struct{ page, limit string }{
		{"0", ""},
		{"-1", ""},
		{"x", ""},
		{"", "0"},
		{"", "101"},
		{"", "-5"},
		{"", "dez"},
	}
	for _, tc := range invalid {
		_, err := validators.ParseListParams(tc.page, tc.limit, "")
		require.Error(t, err, "page=%q limit=%q", tc.page, tc.limit)
		assert.Equal(t, 400, apperrors.StatusOf(err))
	}
}

func TestParseThreshold(t *testing.T) {
	n, err := validators.ParseThreshold("")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = validators.ParseThreshold("0")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for _, raw := range []string{"-1", "abc"} {
		_, err := validators.ParseThreshold(raw)
		require.Error(t, err, "raw=%q", raw)
	}
}

func TestParseQuantity(t *testing.T) {
	n, err := validators.ParseQuantity("", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = validators.ParseQuantity("7", 1)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	for _, raw := range []string{"-2", "x"} {
		_, err := validators.ParseQuantity(raw, 1)
		require.Error(t, err, "raw=%q", raw)
	}
}
