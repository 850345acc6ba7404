package services

import (
	"sync"

	"gift-shop/models"
)

// Cart holds the ordered line items of one browsing session. All operations
// are total: they never fail, they only reshape the state. At most one line
// item exists per product id and quantities are always >= 1; a quantity
// dropping to zero removes the line instead.
type Cart struct {
	items []models.CartItem
}

// AddItem increments the quantity of an existing line item or appends a new
// one with quantity 1.
func (c *Cart) AddItem(product models.Product) {
	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, models.CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Image:       product.Image,
		Quantity:    1,
	})
}

// RemoveItem deletes the line item with the given product id. Removing an
// absent id is a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets an existing line item's quantity. A quantity of zero or
// less removes the line. Unknown product ids are ignored; this operation
// never creates new line items.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) TotalPrice() int {
	total := 0
	for _, item := range c.items {
		total += item.Price * item.Quantity
	}
	return total
}

func (c *Cart) TotalItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Snapshot captures the cart as inquiry line items, detached from any later
// cart or catalog changes.
func (c *Cart) Snapshot() []models.InquiryItem {
	snapshot := make([]models.InquiryItem, 0, len(c.items))
	for _, item := range c.items {
		snapshot = append(snapshot, models.InquiryItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return snapshot
}

func (c *Cart) View() models.CartView {
	return models.CartView{
		Items:       c.Items(),
		TotalAmount: c.TotalPrice(),
		TotalItems:  c.TotalItemCount(),
	}
}

type sessionCart struct {
	mu         sync.Mutex
	cart       Cart
	submitting bool
}

// CartManager keeps one cart per browsing session. Carts live in process
// memory only and are never shared across sessions.
type CartManager struct {
	mu       sync.Mutex
	sessions map[string]*sessionCart
}

func NewCartManager() *CartManager {
	return &CartManager{sessions: make(map[string]*sessionCart)}
}

func (m *CartManager) session(sessionID string) *sessionCart {
	m.mu.Lock()
	defer m.mu.Unlock()
	sc, ok := m.sessions[sessionID]
	if !ok {
		sc = &sessionCart{}
		m.sessions[sessionID] = sc
	}
	return sc
}

func (m *CartManager) AddItem(sessionID string, product models.Product) models.CartView {
	sc := m.session(sessionID)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.cart.AddItem(product)
	return sc.cart.View()
}

func (m *CartManager) RemoveItem(sessionID, productID string) models.CartView {
	sc := m.session(sessionID)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.cart.RemoveItem(productID)
	return sc.cart.View()
}

func (m *CartManager) SetQuantity(sessionID, productID string, quantity int) models.CartView {
	sc := m.session(sessionID)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.cart.SetQuantity(productID, quantity)
	return sc.cart.View()
}

func (m *CartManager) Clear(sessionID string) models.CartView {
	sc := m.session(sessionID)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.cart.Clear()
	return sc.cart.View()
}

func (m *CartManager) View(sessionID string) models.CartView {
	sc := m.session(sessionID)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.cart.View()
}

// Checkout runs submit over a snapshot of the session's cart. Only one
// submission may be in flight per session; a concurrent attempt gets
// ErrSubmissionInFlight. The cart is cleared only after submit succeeds, so a
// failed submission can be retried without re-adding items.
func (m *CartManager) Checkout(sessionID string, submit func(items []models.InquiryItem, total int) error) error {
	sc := m.session(sessionID)

	sc.mu.Lock()
	if sc.submitting {
		sc.mu.Unlock()
		return models.ErrSubmissionInFlight
	}
	sc.submitting = true
	items := sc.cart.Snapshot()
	total := sc.cart.TotalPrice()
	sc.mu.Unlock()

	err := submit(items, total)

	sc.mu.Lock()
	sc.submitting = false
	if err == nil {
		sc.cart.Clear()
	}
	sc.mu.Unlock()

	return err
}
