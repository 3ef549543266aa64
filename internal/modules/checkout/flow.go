package checkout

import (
	"context"
	"fmt"
)

// Flow is the linear checkout state machine: shipping → payment → complete.
// It is created when the checkout view is entered and discarded when the
// session leaves it. A step never advances without the prior step's
// required-field validation passing.
type Flow struct {
	step     Step
	subtotal func() float64
	shipping ShippingInfo
	payment  PaymentInfo
	gateway  Gateway
}

// NewFlow starts a checkout. The subtotal supplier reads the live cart so
// the summary can never drift from the cart badge and panel. Name and email
// may be prefilled from the signed-in user, as the storefront does.
func NewFlow(subtotal func() float64, gateway Gateway, prefillName, prefillEmail string) *Flow {
	return &Flow{
		step:     StepShipping,
		subtotal: subtotal,
		gateway:  gateway,
		shipping: ShippingInfo{
			Name:    prefillName,
			Email:   prefillEmail,
			Country: "United States",
		},
	}
}

// Step returns the current step.
func (f *Flow) Step() Step { return f.step }

// Shipping returns the shipping form as last entered, preserved across a
// back action.
func (f *Flow) Shipping() ShippingInfo { return f.shipping }

// Totals returns the order summary for the current cart subtotal.
func (f *Flow) Totals() Totals { return ComputeTotals(f.subtotal()) }

// SubmitShipping validates the shipping form and advances shipping → payment.
func (f *Flow) SubmitShipping(info ShippingInfo) error {
	if !canTransition(f.step, StepPayment) {
		return fmt.Errorf("cannot submit shipping from step %s", f.step)
	}
	if err := validateShipping(info); err != nil {
		return err
	}
	f.shipping = info
	f.step = StepPayment
	return nil
}

// Back returns payment → shipping, preserving the entered data.
func (f *Flow) Back() error {
	if !canTransition(f.step, StepShipping) {
		return fmt.Errorf("cannot go back from step %s", f.step)
	}
	f.step = StepShipping
	return nil
}

// SubmitPayment validates the payment form, charges the gateway, and
// terminally advances payment → complete. It cannot be reached before the
// shipping step has been completed.
func (f *Flow) SubmitPayment(ctx context.Context, info PaymentInfo) (*Confirmation, error) {
	if !canTransition(f.step, StepComplete) {
		return nil, fmt.Errorf("cannot submit payment from step %s", f.step)
	}
	if err := validatePayment(info); err != nil {
		return nil, err
	}
	totals := f.Totals()
	result, err := f.gateway.Charge(ctx, &ChargeRequest{
		Amount:   totals.Total,
		CardName: info.CardName,
		Email:    f.shipping.Email,
	})
	if err != nil {
		return nil, err
	}
	f.payment = info
	f.step = StepComplete
	return &Confirmation{
		OrderNumber:       result.OrderNumber,
		EstimatedDelivery: result.EstimatedDelivery,
		Email:             f.shipping.Email,
	}, nil
}

func validateShipping(info ShippingInfo) error {
	required := map[string]string{
		"name":    info.Name,
		"email":   info.Email,
		"address": info.Address,
		"city":    info.City,
		"state":   info.State,
		"zip":     info.Zip,
		"country": info.Country,
	}
	return requireAll(required)
}

func validatePayment(info PaymentInfo) error {
	required := map[string]string{
		"card_number": info.CardNumber,
		"card_name":   info.CardName,
		"expiry":      info.Expiry,
		"cvv":         info.CVV,
	}
	return requireAll(required)
}

func requireAll(fields map[string]string) error {
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}
