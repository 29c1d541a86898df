package cart

const (
	MsgCheckoutEmpty   = "Agrega productos antes de finalizar."
	MsgCheckoutSuccess = "Compra simulada ✅ (carrito guardado en localStorage)."
)

type CheckoutResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Checkout acknowledges the cart. Nothing is charged and the cart is left
// untouched.
func Checkout(items []Item) CheckoutResult {
	if len(items) == 0 {
		return CheckoutResult{OK: false, Message: MsgCheckoutEmpty}
	}
	return CheckoutResult{OK: true, Message: MsgCheckoutSuccess}
}
