package storefront

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftroots/storefront/internal/modules/cart"
	"github.com/craftroots/storefront/internal/modules/catalog"
	"github.com/craftroots/storefront/internal/modules/checkout"
	"github.com/craftroots/storefront/internal/modules/user"
)

func sampleProduct() *catalog.Product {
	return catalog.SampleProducts()[0]
}

func signedInUser() *user.User {
	return &user.User{ID: uuid.New(), Email: "sarah@example.com", Name: "Sarah Mitchell"}
}

func TestSession_StartsOnHome(t *testing.T) {
	s := NewManager().Create()

	state := s.Snapshot()
	assert.Equal(t, PageHome, state.Page)
	assert.Equal(t, 0, state.CartCount)
	assert.Equal(t, 0, state.WishlistCount)
	assert.Nil(t, state.User)
}

func TestSession_NavigateBetweenPlainPages(t *testing.T) {
	s := NewManager().Create()

	require.NoError(t, s.Navigate(PageShop))
	assert.Equal(t, PageShop, s.Snapshot().Page)

	require.NoError(t, s.Navigate(PageAbout))
	assert.Equal(t, PageAbout, s.Snapshot().Page)
}

func TestSession_NavigateUnknownPageRejected(t *testing.T) {
	s := NewManager().Create()

	assert.Error(t, s.Navigate(Page("basement")))
}

func TestSession_ProductPageRequiresSelection(t *testing.T) {
	s := NewManager().Create()

	require.NoError(t, s.Navigate(PageProduct))
	assert.Equal(t, PageHome, s.Snapshot().Page, "guarded navigation is silently refused")

	s.SelectProduct(sampleProduct())
	state := s.Snapshot()
	assert.Equal(t, PageProduct, state.Page)
	assert.Equal(t, "1", state.SelectedProduct.ID)
}

func TestSession_ArtisanPageRequiresSelection(t *testing.T) {
	s := NewManager().Create()

	require.NoError(t, s.Navigate(PageArtisan))
	assert.Equal(t, PageHome, s.Snapshot().Page)

	s.SelectArtisan("artisan-1")
	assert.Equal(t, PageArtisan, s.Snapshot().Page)
}

func TestSession_DashboardRequiresUser(t *testing.T) {
	s := NewManager().Create()

	require.NoError(t, s.Navigate(PageDashboard))
	assert.Equal(t, PageHome, s.Snapshot().Page)

	s.SignIn(signedInUser())
	require.NoError(t, s.Navigate(PageDashboard))
	assert.Equal(t, PageDashboard, s.Snapshot().Page)
}

func TestSession_SignInQueuesWelcomeToast(t *testing.T) {
	s := NewManager().Create()

	s.SignIn(signedInUser())

	toasts := s.DrainToasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Welcome, Sarah Mitchell!", toasts[0].Message)
	assert.Empty(t, s.DrainToasts(), "draining clears the queue")
}

func TestSession_CartBadgeStaysConsistent(t *testing.T) {
	s := NewManager().Create()
	p := sampleProduct()

	s.AddToCart(p, nil)
	s.AddToCart(p, nil)
	s.AddToCart(p, &cart.Customization{Text: "gift"})

	state := s.Snapshot()
	snapshot := s.CartSnapshot()
	assert.Equal(t, 3, state.CartCount)
	assert.Equal(t, snapshot.Count, state.CartCount)
	assert.InDelta(t, snapshot.Total, state.CartTotal, 1e-9)
	assert.Len(t, snapshot.Lines, 2)
}

func TestSession_CartMutations(t *testing.T) {
	s := NewManager().Create()
	p := sampleProduct()
	s.AddToCart(p, nil)

	require.NoError(t, s.UpdateCartQuantity(p.ID, 4, nil))
	assert.Equal(t, 4, s.CartSnapshot().Count)

	require.NoError(t, s.UpdateCartQuantity(p.ID, 0, nil))
	assert.Equal(t, 0, s.CartSnapshot().Count)

	s.AddToCart(p, nil)
	s.RemoveFromCart(p.ID, nil)
	assert.Empty(t, s.CartSnapshot().Lines)
}

func TestSession_WishlistToggleToasts(t *testing.T) {
	s := NewManager().Create()

	added := s.ToggleWishlist("3")
	assert.True(t, added)
	removed := s.ToggleWishlist("3")
	assert.False(t, removed)

	toasts := s.DrainToasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, "Added to wishlist!", toasts[0].Message)
	assert.Equal(t, "Removed from wishlist", toasts[1].Message)
}

func TestSession_CheckoutRequiresItems(t *testing.T) {
	s := NewManager().Create()

	err := s.EnterCheckout(checkout.NewMockGateway())

	require.Error(t, err)
	assert.Equal(t, PageHome, s.Snapshot().Page)
}

func TestSession_CheckoutDiscardedOnLeave(t *testing.T) {
	s := NewManager().Create()
	s.AddToCart(sampleProduct(), nil)

	require.NoError(t, s.EnterCheckout(checkout.NewMockGateway()))
	assert.Equal(t, PageCheckout, s.Snapshot().Page)
	snapshot, err := s.CheckoutSnapshot()
	require.NoError(t, err)
	assert.Equal(t, checkout.StepShipping, snapshot.Step)

	require.NoError(t, s.Navigate(PageShop))
	_, err = s.CheckoutSnapshot()
	assert.Error(t, err, "leaving checkout discards the flow")
}

func TestSession_CheckoutPrefillsSignedInUser(t *testing.T) {
	s := NewManager().Create()
	s.SignIn(signedInUser())
	s.AddToCart(sampleProduct(), nil)

	require.NoError(t, s.EnterCheckout(checkout.NewMockGateway()))

	snapshot, err := s.CheckoutSnapshot()
	require.NoError(t, err)
	assert.Equal(t, "Sarah Mitchell", snapshot.Shipping.Name)
	assert.Equal(t, "sarah@example.com", snapshot.Shipping.Email)
}

func TestSession_CheckoutSummaryTracksCart(t *testing.T) {
	s := NewManager().Create()
	p := sampleProduct() // $45.00
	s.AddToCart(p, nil)

	require.NoError(t, s.EnterCheckout(checkout.NewMockGateway()))
	require.NoError(t, s.UpdateCartQuantity(p.ID, 2, nil))

	snapshot, err := s.CheckoutSnapshot()
	require.NoError(t, err)
	assert.InDelta(t, 90.00, snapshot.Totals.Subtotal, 1e-9, "summary follows the live cart")
	assert.InDelta(t, snapshot.Cart.Total, snapshot.Totals.Subtotal, 1e-9)
	assert.InDelta(t, 0.00, snapshot.Totals.Shipping, 1e-9, "doubling up crosses the free-shipping line")
}

func TestSession_CheckoutPageRequiresFlow(t *testing.T) {
	s := NewManager().Create()

	require.NoError(t, s.Navigate(PageCheckout))
	assert.Equal(t, PageHome, s.Snapshot().Page, "no active flow keeps the visitor where they are")

	s.AddToCart(sampleProduct(), nil)
	require.NoError(t, s.EnterCheckout(checkout.NewMockGateway()))
	require.NoError(t, s.Navigate(PageShop))
	require.NoError(t, s.Navigate(PageCheckout))
	assert.Equal(t, PageShop, s.Snapshot().Page, "leaving discards the flow, so jumping back is refused")
}

func TestSession_ConcurrentCheckoutSubmissions(t *testing.T) {
	s := NewManager().Create()
	s.AddToCart(sampleProduct(), nil)
	require.NoError(t, s.EnterCheckout(checkout.NewMockGateway()))

	info := checkout.ShippingInfo{
		Name:    "Sarah Mitchell",
		Email:   "sarah@example.com",
		Address: "12 Kiln Lane",
		City:    "Portland",
		State:   "OR",
		Zip:     "97201",
		Country: "United States",
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.SubmitShipping(info)
			s.CheckoutSnapshot()
		}()
	}
	wg.Wait()

	snapshot, err := s.CheckoutSnapshot()
	require.NoError(t, err)
	assert.Equal(t, checkout.StepPayment, snapshot.Step)
}

func TestManager_GetUnknownSession(t *testing.T) {
	m := NewManager()

	_, err := m.Get("nope")
	assert.Error(t, err)

	s := m.Create()
	got, err := m.Get(s.ID.String())
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestSession_AddToCartQueuesConfirmation(t *testing.T) {
	s := NewManager().Create()

	s.AddToCart(sampleProduct(), nil)

	toasts := s.DrainToasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Added to basket!", toasts[0].Message)
	assert.Contains(t, toasts[0].Description, "Handcrafted Ceramic Bowl")
}
