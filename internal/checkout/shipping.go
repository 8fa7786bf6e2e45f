package checkout

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrUnknownShipping = errors.New("unknown shipping method")

type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"
)

var shippingCosts = map[ShippingMethod]decimal.Decimal{
	ShippingStandard:  decimal.Zero,
	ShippingExpress:   decimal.RequireFromString("15.99"),
	ShippingOvernight: decimal.RequireFromString("29.99"),
}

// ParseShippingMethod validates a raw method name. An empty value defaults
// to standard shipping.
func ParseShippingMethod(s string) (ShippingMethod, error) {
	if s == "" {
		return ShippingStandard, nil
	}
	m := ShippingMethod(s)
	if _, ok := shippingCosts[m]; !ok {
		return "", ErrUnknownShipping
	}
	return m, nil
}

func (m ShippingMethod) Cost() decimal.Decimal {
	return shippingCosts[m]
}
