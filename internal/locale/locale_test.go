package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonths(t *testing.T) {
	en := Months(English)
	require.Len(t, en, 12)
	assert.Equal(t, "Jan", en[0])
	assert.Equal(t, "Dec", en[11])

	es := Months(Spanish)
	require.Len(t, es, 12)
	assert.Equal(t, "Ene", es[0])
	assert.Equal(t, "Dic", es[11])

	assert.Equal(t, en, Months("fr"), "unknown locales fall back to English")
}

func TestOrderStatuses(t *testing.T) {
	assert.Equal(t, [4]string{"Shipped", "Processing", "Cancelled", "Delivered"}, OrderStatuses(English))
	assert.Equal(t, [4]string{"Enviado", "Procesando", "Cancelado", "Entregado"}, OrderStatuses(Spanish))
	assert.Equal(t, OrderStatuses(English), OrderStatuses(""))
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "belleza", CategoryName(Spanish, "beauty"))
	assert.Equal(t, "accesorios de cocina", CategoryName(Spanish, "kitchen-accessories"))
	assert.Equal(t, "beauty", CategoryName(English, "beauty"))
	assert.Equal(t, "new-arrivals", CategoryName(Spanish, "new-arrivals"), "untranslated categories pass through")
}

func TestDefaultTranslator(t *testing.T) {
	assert.Nil(t, DefaultTranslator(English))
	assert.Nil(t, DefaultTranslator("de"))

	tr := DefaultTranslator(Spanish)
	require.NotNil(t, tr)

	assert.Equal(t, "Pago recibido de Emily: $10", tr("paymentReceived", map[string]interface{}{
		"name":   "Emily",
		"amount": "$10",
	}))
	assert.Equal(t, "Nuevo cliente: Emily", tr("newCustomer", map[string]interface{}{"name": "Emily"}))
	assert.Equal(t, "Pedido enviado para Emily: $10", tr("orderShipped", map[string]interface{}{
		"name":   "Emily",
		"amount": "$10",
	}))
	assert.Equal(t, "unknownKey", tr("unknownKey", nil))
}
