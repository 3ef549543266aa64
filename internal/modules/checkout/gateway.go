package checkout

import (
	"context"
	"fmt"
	"math/rand"
)

// Gateway is the provider-agnostic payment interface. The storefront demo
// ships only the mock; a real adapter (e.g., Stripe) would implement this
// same contract, and nothing in the flow assumes the charge resolves
// synchronously beyond what the mock provides.
type Gateway interface {
	// Charge submits a payment and returns the order reference on approval.
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}

// ChargeRequest describes the payment to submit.
type ChargeRequest struct {
	Amount   float64
	CardName string
	Email    string
}

// ChargeResult is the provider's approval payload.
type ChargeResult struct {
	OrderNumber       string
	EstimatedDelivery string
}

// mockGateway approves every charge synchronously, standing in for a real
// payment backend the same way the original demo simulated submission.
type mockGateway struct{}

// NewMockGateway creates the always-approving demo gateway.
func NewMockGateway() Gateway { return &mockGateway{} }

func (g *mockGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}
	return &ChargeResult{
		OrderNumber:       fmt.Sprintf("#%05d", rand.Intn(100000)),
		EstimatedDelivery: "5-7 business days",
	}, nil
}
