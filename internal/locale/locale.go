package locale

import "fmt"

// The dashboard ships with English defaults and a Spanish translation for
// every label the aggregation layer produces: month names, order statuses,
// product categories and activity texts. Unknown locales fall back to
// English; unknown categories pass through untranslated.

const (
	English = "en"
	Spanish = "es"
)

// Translator renders a localized activity text for a message key, with
// substitution values. A nil Translator means "use the built-in English
// strings".
type Translator func(key string, values map[string]interface{}) string

var monthsEn = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthsEs = []string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

var orderStatusesEn = [4]string{"Shipped", "Processing", "Cancelled", "Delivered"}

var orderStatusesEs = [4]string{"Enviado", "Procesando", "Cancelado", "Entregado"}

var categoriesEs = map[string]string{
	"beauty":              "belleza",
	"fragrances":          "fragancias",
	"furniture":           "muebles",
	"groceries":           "almacén",
	"home-decoration":     "decoración",
	"kitchen-accessories": "accesorios de cocina",
	"laptops":             "portátiles",
	"mens-shirts":         "camisas de hombre",
	"mens-shoes":          "zapatos de hombre",
	"mens-watches":        "relojes de hombre",
	"mobile-accessories":  "accesorios móviles",
	"motorcycle":          "motocicletas",
	"skin-care":           "cuidado de la piel",
	"smartphones":         "smartphones",
	"sports-accessories":  "accesorios deportivos",
	"sunglasses":          "gafas de sol",
	"tablets":             "tabletas",
	"tops":                "tops",
	"vehicle":             "vehículos",
	"womens-bags":         "bolsos de mujer",
	"womens-dresses":      "vestidos de mujer",
	"womens-jewellery":    "joyería de mujer",
	"womens-shoes":        "zapatos de mujer",
	"womens-watches":      "relojes de mujer",
}

// Months returns the 12 month labels for the locale.
func Months(loc string) []string {
	if loc == Spanish {
		return monthsEs
	}
	return monthsEn
}

// OrderStatuses returns the fixed 4-element status vocabulary for the
// locale; position matters, statuses are assigned by cart id mod 4.
func OrderStatuses(loc string) [4]string {
	if loc == Spanish {
		return orderStatusesEs
	}
	return orderStatusesEn
}

// DefaultTranslator returns the built-in translator for a locale. English
// returns nil so callers fall through to their inline English strings.
func DefaultTranslator(loc string) Translator {
	if loc != Spanish {
		return nil
	}
	return func(key string, values map[string]interface{}) string {
		switch key {
		case "paymentReceived":
			return fmt.Sprintf("Pago recibido de %v: %v", values["name"], values["amount"])
		case "newCustomer":
			return fmt.Sprintf("Nuevo cliente: %v", values["name"])
		case "orderShipped":
			return fmt.Sprintf("Pedido enviado para %v: %v", values["name"], values["amount"])
		}
		return key
	}
}

// CategoryName translates a catalog category for display.
func CategoryName(loc, category string) string {
	if loc != Spanish {
		return category
	}
	if translated, ok := categoriesEs[category]; ok {
		return translated
	}
	return category
}
