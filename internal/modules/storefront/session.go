package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/craftroots/storefront/internal/modules/cart"
	"github.com/craftroots/storefront/internal/modules/catalog"
	"github.com/craftroots/storefront/internal/modules/checkout"
	"github.com/craftroots/storefront/internal/modules/user"
	"github.com/craftroots/storefront/internal/modules/wishlist"
)

// Toast is a user-visible notification queued on the session until the
// client drains it.
type Toast struct {
	Level       string `json:"level"` // success | info
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// Session is the single owned container for all per-visitor state: current
// page, selections, cart, wishlist, checkout flow, and the signed-in user.
// All state transitions happen synchronously under the session mutex, one
// user event at a time.
type Session struct {
	ID uuid.UUID

	mu              sync.Mutex
	page            Page
	selectedProduct *catalog.Product
	selectedArtisan string
	searchQuery     string
	cart            *cart.Cart
	wishlist        *wishlist.Wishlist
	checkout        *checkout.Flow
	user            *user.User
	toasts          []Toast
}

func newSession() *Session {
	s := &Session{
		ID:       uuid.New(),
		page:     PageHome,
		wishlist: wishlist.New(),
	}
	s.cart = cart.New(&sessionNotifier{s: s})
	return s
}

// sessionNotifier routes cart confirmations into the session's toast queue.
// Cart calls happen under the session mutex, so it appends directly.
type sessionNotifier struct{ s *Session }

func (n *sessionNotifier) Success(message, description string) {
	n.s.toasts = append(n.s.toasts, Toast{Level: "success", Message: message, Description: description})
}

func (n *sessionNotifier) Info(message string) {
	n.s.toasts = append(n.s.toasts, Toast{Level: "info", Message: message})
}

func (s *Session) pushToast(t Toast) { s.toasts = append(s.toasts, t) }

// Navigate moves the session to the target page. Pages with prerequisites
// (product needs a selection, artisan an artisan id, dashboard a signed-in
// user) silently refuse the move when the prerequisite is missing, matching
// the storefront's render guards. Leaving the checkout page discards the
// checkout flow.
func (s *Session) Navigate(page Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !page.Valid() {
		return fmt.Errorf("unknown page: %s", page)
	}
	switch page {
	case PageProduct:
		if s.selectedProduct == nil {
			return nil
		}
	case PageArtisan:
		if s.selectedArtisan == "" {
			return nil
		}
	case PageDashboard:
		if s.user == nil {
			return nil
		}
	case PageCheckout:
		if s.checkout == nil {
			return nil
		}
	}
	if s.page == PageCheckout && page != PageCheckout {
		s.checkout = nil
	}
	s.page = page
	return nil
}

// SelectProduct records the clicked product and opens its detail page.
func (s *Session) SelectProduct(p *catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedProduct = p
	s.page = PageProduct
}

// SelectArtisan records the clicked artisan and opens their profile page.
func (s *Session) SelectArtisan(artisanID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedArtisan = artisanID
	s.page = PageArtisan
}

// SetSearchQuery updates the free-text search box contents.
func (s *Session) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = q
}

// SignIn binds the authenticated user to the session and greets them.
func (s *Session) SignIn(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.pushToast(Toast{Level: "success", Message: fmt.Sprintf("Welcome, %s!", u.Name)})
}

// User returns the signed-in user, or nil.
func (s *Session) User() *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// AddToCart adds one unit of the product with the given customization.
func (s *Session) AddToCart(p *catalog.Product, custom *cart.Customization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p, custom)
}

// UpdateCartQuantity sets a cart line's quantity; zero removes the line.
func (s *Session) UpdateCartQuantity(productID string, quantity int, custom *cart.Customization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.UpdateQuantity(productID, quantity, custom)
}

// RemoveFromCart deletes the matching cart line.
func (s *Session) RemoveFromCart(productID string, custom *cart.Customization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID, custom)
}

// CartState is the cart panel payload: lines plus the derived badge values.
type CartState struct {
	Lines []*cart.Line `json:"lines"`
	Total float64      `json:"total"`
	Count int          `json:"count"`
}

// CartSnapshot returns the cart lines and derived totals.
func (s *Session) CartSnapshot() CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartState{Lines: s.cart.Lines(), Total: s.cart.Total(), Count: s.cart.Count()}
}

// ToggleWishlist flips a product's wishlist membership and reports the new
// state.
func (s *Session) ToggleWishlist(productID string) (added bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	added = s.wishlist.Toggle(productID)
	if added {
		s.pushToast(Toast{Level: "success", Message: "Added to wishlist!"})
	} else {
		s.pushToast(Toast{Level: "info", Message: "Removed from wishlist"})
	}
	return added
}

// WishlistIDs returns the wishlisted product ids.
func (s *Session) WishlistIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.IDs()
}

// EnterCheckout opens the checkout page over the current cart, prefilling
// the shipping form from the signed-in user. An empty cart refuses checkout.
func (s *Session) EnterCheckout(gateway checkout.Gateway) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Count() == 0 {
		return fmt.Errorf("cart is empty")
	}
	var name, email string
	if s.user != nil {
		name, email = s.user.Name, s.user.Email
	}
	s.checkout = checkout.NewFlow(s.cart.Total, gateway, name, email)
	s.page = PageCheckout
	return nil
}

// CheckoutSnapshot is the checkout page payload: the step, form data, and
// totals, alongside the live cart they are derived from.
type CheckoutSnapshot struct {
	Step     checkout.Step         `json:"step"`
	Shipping checkout.ShippingInfo `json:"shipping"`
	Totals   checkout.Totals       `json:"totals"`
	Cart     CartState             `json:"cart"`
}

// CheckoutSnapshot returns the checkout page state, or an error when no
// checkout is active.
func (s *Session) CheckoutSnapshot() (*CheckoutSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkout == nil {
		return nil, fmt.Errorf("no active checkout")
	}
	return &CheckoutSnapshot{
		Step:     s.checkout.Step(),
		Shipping: s.checkout.Shipping(),
		Totals:   s.checkout.Totals(),
		Cart:     CartState{Lines: s.cart.Lines(), Total: s.cart.Total(), Count: s.cart.Count()},
	}, nil
}

// SubmitShipping validates the shipping form and advances the active
// checkout, returning the resulting step. All flow transitions run under the
// session mutex; the flow pointer never leaves the session.
func (s *Session) SubmitShipping(info checkout.ShippingInfo) (checkout.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkout == nil {
		return "", fmt.Errorf("no active checkout")
	}
	if err := s.checkout.SubmitShipping(info); err != nil {
		return "", err
	}
	return s.checkout.Step(), nil
}

// SubmitPayment validates the payment form, charges the gateway, and
// completes the active checkout.
func (s *Session) SubmitPayment(ctx context.Context, info checkout.PaymentInfo) (*checkout.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkout == nil {
		return nil, fmt.Errorf("no active checkout")
	}
	return s.checkout.SubmitPayment(ctx, info)
}

// CheckoutBack returns the active checkout from payment to shipping.
func (s *Session) CheckoutBack() (checkout.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkout == nil {
		return "", fmt.Errorf("no active checkout")
	}
	if err := s.checkout.Back(); err != nil {
		return "", err
	}
	return s.checkout.Step(), nil
}

// DrainToasts returns the queued notifications and clears the queue.
func (s *Session) DrainToasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.toasts
	s.toasts = nil
	return out
}

// State is the navigation chrome payload: current page, selections, badge
// counts, and the signed-in user.
type State struct {
	Page            Page             `json:"page"`
	SelectedProduct *catalog.Product `json:"selected_product,omitempty"`
	SelectedArtisan string           `json:"selected_artisan,omitempty"`
	SearchQuery     string           `json:"search_query,omitempty"`
	CartCount       int              `json:"cart_count"`
	CartTotal       float64          `json:"cart_total"`
	WishlistCount   int              `json:"wishlist_count"`
	User            *user.User       `json:"user,omitempty"`
}

// Snapshot returns the session state for the navigation chrome.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Page:            s.page,
		SelectedProduct: s.selectedProduct,
		SelectedArtisan: s.selectedArtisan,
		SearchQuery:     s.searchQuery,
		CartCount:       s.cart.Count(),
		CartTotal:       s.cart.Total(),
		WishlistCount:   s.wishlist.Len(),
		User:            s.user,
	}
}
