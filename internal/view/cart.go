package view

import (
	"fmt"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
)

const MsgCartEmpty = "Tu carrito está vacío. Agrega zapatillas desde el catálogo."

type CartRow struct {
	ID        string `json:"id"`
	Model     string `json:"model"`
	Brand     string `json:"brand"`
	UnitPrice string `json:"unitPrice"`
	Qty       int    `json:"qty"`
	Detail    string `json:"detail"`
	LineTotal string `json:"lineTotal"`
}

type CartView struct {
	Count        int         `json:"count"`
	Empty        bool        `json:"empty"`
	EmptyMessage string      `json:"emptyMessage"`
	Rows         []CartRow   `json:"rows"`
	Subtotal     string      `json:"subtotal"`
	Shipping     string      `json:"shipping"`
	Total        string      `json:"total"`
	Totals       cart.Totals `json:"totals"`
}

func RenderCart(items []cart.Item) CartView {
	totals := cart.Summarize(items)

	v := CartView{
		Count:    totals.Count,
		Empty:    len(items) == 0,
		Rows:     make([]CartRow, 0, len(items)),
		Subtotal: FormatCLP(totals.Subtotal),
		Shipping: FormatCLP(totals.Shipping),
		Total:    FormatCLP(totals.Total),
		Totals:   totals,
	}
	if v.Empty {
		v.EmptyMessage = MsgCartEmpty
	}

	for _, it := range items {
		unit := FormatCLP(it.Price)
		v.Rows = append(v.Rows, CartRow{
			ID:        it.ID,
			Model:     it.Model,
			Brand:     it.Brand,
			UnitPrice: unit,
			Qty:       it.Qty,
			Detail:    fmt.Sprintf("%s • %s x %d", it.Brand, unit, it.Qty),
			LineTotal: FormatCLP(it.LineTotal()),
		})
	}

	return v
}
