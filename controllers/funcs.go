package controllers

import (
	"html/template"

	"github.com/shopspring/decimal"
)

var moneyFuncs = template.FuncMap{
	// money renders a decimal amount with two digits, half-up.
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
}
