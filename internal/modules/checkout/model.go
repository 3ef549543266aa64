package checkout

// Step represents the checkout flow state.
type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
	StepComplete Step = "complete"
)

// validTransitions defines the allowed step state machine. "complete" is
// terminal for the session.
var validTransitions = map[Step][]Step{
	StepShipping: {StepPayment},
	StepPayment:  {StepShipping, StepComplete},
	StepComplete: {},
}

func canTransition(from, to Step) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ShippingInfo is the shipping form. Every field is required.
type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// PaymentInfo is the payment form. It never leaves the process; the mock
// gateway only checks the fields are present. Card-number format validation
// is a future hardening item.
type PaymentInfo struct {
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// Totals is the order summary shown on every checkout step.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Fixed business rules: free shipping above $75, flat $8.99 below, 8% tax.
const (
	freeShippingThreshold = 75.0
	flatShippingFee       = 8.99
	taxRate               = 0.08
)

// ComputeTotals derives the order summary from a cart subtotal.
func ComputeTotals(subtotal float64) Totals {
	shipping := flatShippingFee
	if subtotal > freeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * taxRate
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// Confirmation is the completed-order payload.
type Confirmation struct {
	OrderNumber       string `json:"order_number"`
	EstimatedDelivery string `json:"estimated_delivery"`
	Email             string `json:"email"`
}
