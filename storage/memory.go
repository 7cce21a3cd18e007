package storage

import (
	"strings"
	"sync"
	"time"

	"aurora/models"

	"github.com/google/uuid"
)

// MemStore keeps every entity in process memory. State lives for the lifetime
// of the store value; nothing is written to disk.
type MemStore struct {
	mu                sync.RWMutex
	users             *table[models.User]
	products          *table[models.Product]
	shoppingLists     *table[models.ShoppingList]
	shoppingListItems *table[models.ShoppingListItem]
	cartItems         *table[models.CartItem]
	orders            *table[models.Order]
	orderItems        *table[models.OrderItem]
	now               func() time.Time
}

var _ Storage = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		users:             newTable[models.User](),
		products:          newTable[models.Product](),
		shoppingLists:     newTable[models.ShoppingList](),
		shoppingListItems: newTable[models.ShoppingListItem](),
		cartItems:         newTable[models.CartItem](),
		orders:            newTable[models.Order](),
		orderItems:        newTable[models.OrderItem](),
		now:               time.Now,
	}
}

func newID() string {
	return uuid.New().String()
}

// Users

func (s *MemStore) GetUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.get(id)
	if !ok {
		return models.User{}, false
	}
	return *u, true
}

func (s *MemStore) GetUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.find(func(u *models.User) bool { return u.Email == email })
	if !ok {
		return models.User{}, false
	}
	return *u, true
}

func (s *MemStore) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.find(func(u *models.User) bool { return u.Username == username })
	if !ok {
		return models.User{}, false
	}
	return *u, true
}

// CreateUser stores a new user. Email is checked for uniqueness before username.
func (s *MemStore) CreateUser(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.users.find(func(u *models.User) bool { return u.Email == user.Email }); taken {
		return models.User{}, ErrEmailTaken
	}
	if _, taken := s.users.find(func(u *models.User) bool { return u.Username == user.Username }); taken {
		return models.User{}, ErrUsernameTaken
	}

	user.ID = newID()
	if user.Phone != nil && *user.Phone == "" {
		user.Phone = nil
	}
	if user.PreferredLanguage == "" {
		user.PreferredLanguage = models.DefaultLanguage
	}
	user.CreatedAt = s.now()

	s.users.put(user.ID, &user)
	return user, nil
}

// Products

func (s *MemStore) GetProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.filter(nil)
}

func (s *MemStore) GetProduct(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products.get(id)
	if !ok {
		return models.Product{}, false
	}
	return *p, true
}

func (s *MemStore) GetProductByBarcode(barcode string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products.find(func(p *models.Product) bool {
		return p.Barcode != nil && *p.Barcode == barcode
	})
	if !ok {
		return models.Product{}, false
	}
	return *p, true
}

// SearchProducts matches query as a case-insensitive substring of name, brand or category.
func (s *MemStore) SearchProducts(query string) []models.Product {
	term := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.filter(func(p *models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) ||
			strings.Contains(strings.ToLower(p.Category), term)
	})
}

func (s *MemStore) GetProductsByCategory(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.filter(func(p *models.Product) bool {
		return strings.EqualFold(p.Category, category)
	})
}

func (s *MemStore) CreateProduct(product models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.Barcode != nil && *product.Barcode == "" {
		product.Barcode = nil
	}
	if product.Barcode != nil {
		code := *product.Barcode
		if _, taken := s.products.find(func(p *models.Product) bool {
			return p.Barcode != nil && *p.Barcode == code
		}); taken {
			return models.Product{}, ErrBarcodeTaken
		}
	}

	if product.ID == "" {
		product.ID = newID()
	}
	if product.Rating == "" {
		product.Rating = "0"
	}
	if product.IconType == "" {
		product.IconType = "box"
	}

	s.products.put(product.ID, &product)
	return product, nil
}

// Seed loads products with their ids as given, replacing any product already stored under the same id.
func (s *MemStore) Seed(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		s.products.put(p.ID, &p)
	}
}

// Shopping lists

func (s *MemStore) GetUserShoppingLists(userID string) []models.ShoppingList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shoppingLists.filter(func(l *models.ShoppingList) bool { return l.UserID == userID })
}

func (s *MemStore) GetShoppingList(id string) (models.ShoppingList, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.shoppingLists.get(id)
	if !ok {
		return models.ShoppingList{}, false
	}
	return *l, true
}

func (s *MemStore) CreateShoppingList(list models.ShoppingList) models.ShoppingList {
	s.mu.Lock()
	defer s.mu.Unlock()

	list.ID = newID()
	if list.Status == "" {
		list.Status = models.ListActive
	}
	list.CreatedAt = s.now()
	list.CompletedAt = nil
	if list.Status == models.ListCompleted {
		completed := list.CreatedAt
		list.CompletedAt = &completed
	}

	s.shoppingLists.put(list.ID, &list)
	return list
}

// UpdateShoppingListStatus sets completedAt only while the list is completed.
func (s *MemStore) UpdateShoppingListStatus(id string, status models.ListStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.shoppingLists.get(id)
	if !ok {
		return ErrNotFound
	}
	l.CompletedAt = completionTime(l.Status == models.ListCompleted, status == models.ListCompleted, l.CompletedAt, s.now)
	l.Status = status
	return nil
}

// Shopping list items

func (s *MemStore) GetShoppingListItems(listID string) []models.ShoppingListItemWithProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.shoppingListItems.filter(func(i *models.ShoppingListItem) bool { return i.ListID == listID })
	out := make([]models.ShoppingListItemWithProduct, 0, len(items))
	for _, item := range items {
		out = append(out, models.ShoppingListItemWithProduct{
			ShoppingListItem: item,
			Product:          s.productCopy(item.ProductID),
		})
	}
	return out
}

func (s *MemStore) AddItemToShoppingList(item models.ShoppingListItem) models.ShoppingListItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = newID()
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	item.IsCompleted = false
	item.AddedAt = s.now()

	s.shoppingListItems.put(item.ID, &item)
	return item
}

func (s *MemStore) UpdateShoppingListItem(id string, quantity *int, isCompleted *bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.shoppingListItems.get(id)
	if !ok {
		return ErrNotFound
	}
	if quantity != nil {
		item.Quantity = *quantity
	}
	if isCompleted != nil {
		item.IsCompleted = *isCompleted
	}
	return nil
}

func (s *MemStore) RemoveShoppingListItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.shoppingListItems.remove(id) {
		return ErrNotFound
	}
	return nil
}

// Cart

func (s *MemStore) GetUserCartItems(userID string) []models.CartItemWithProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartWithProducts(userID)
}

// AddToCart merges into the existing row for (userID, productID) when there is
// one, otherwise it creates a new row. A merge that would take the line past
// MaxQuantity is refused with ErrQuantityLimit and leaves the row untouched.
func (s *MemStore) AddToCart(item models.CartItem) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if item.Quantity > MaxQuantity {
		return models.CartItem{}, ErrQuantityLimit
	}

	existing, ok := s.cartItems.find(func(c *models.CartItem) bool {
		return c.UserID == item.UserID && c.ProductID == item.ProductID
	})
	if ok {
		if existing.Quantity > MaxQuantity-item.Quantity {
			return models.CartItem{}, ErrQuantityLimit
		}
		existing.Quantity += item.Quantity
		return *existing, nil
	}

	item.ID = newID()
	item.AddedAt = s.now()
	s.cartItems.put(item.ID, &item)
	return item, nil
}

func (s *MemStore) UpdateCartItem(id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems.get(id)
	if !ok {
		return ErrNotFound
	}
	item.Quantity = quantity
	return nil
}

func (s *MemStore) RemoveFromCart(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cartItems.remove(id) {
		return ErrNotFound
	}
	return nil
}

// ClearCart removes every cart row of userID and reports how many went.
func (s *MemStore) ClearCart(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearCartLocked(userID)
}

func (s *MemStore) clearCartLocked(userID string) int {
	return s.cartItems.removeWhere(func(c *models.CartItem) bool { return c.UserID == userID })
}

// Orders

func (s *MemStore) GetUserOrders(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.filter(func(o *models.Order) bool { return o.UserID == userID })
}

func (s *MemStore) GetOrder(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders.get(id)
	if !ok {
		return models.Order{}, false
	}
	return *o, true
}

func (s *MemStore) GetOrderItems(orderID string) []models.OrderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orderItems.filter(func(i *models.OrderItem) bool { return i.OrderID == orderID })
}

// CreateOrder records a pending order without touching the cart or writing
// order items. HTTP checkout uses PlaceOrder instead.
func (s *MemStore) CreateOrder(order models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createOrderLocked(order)
}

func (s *MemStore) createOrderLocked(order models.Order) models.Order {
	order.ID = newID()
	order.Status = models.OrderPending
	order.CreatedAt = s.now()
	order.CompletedAt = nil

	s.orders.put(order.ID, &order)
	return order
}

// PlaceOrder is checkout: it records the order, copies the user's cart into
// order items at the current product prices and empties the cart.
func (s *MemStore) PlaceOrder(order models.Order) (models.Order, []models.OrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.createOrderLocked(order)

	lines := s.cartWithProducts(created.UserID)
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		unitPrice := "0"
		if line.Product != nil {
			unitPrice = line.Product.Price
		}
		item := models.OrderItem{
			ID:        newID(),
			OrderID:   created.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
		}
		s.orderItems.put(item.ID, &item)
		items = append(items, item)
	}

	s.clearCartLocked(created.UserID)
	return created, items
}

func (s *MemStore) UpdateOrderStatus(id string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders.get(id)
	if !ok {
		return ErrNotFound
	}
	o.CompletedAt = completionTime(o.Status == models.OrderCompleted, status == models.OrderCompleted, o.CompletedAt, s.now)
	o.Status = status
	return nil
}

// helpers, callers hold the lock

func (s *MemStore) productCopy(id string) *models.Product {
	p, ok := s.products.get(id)
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (s *MemStore) cartWithProducts(userID string) []models.CartItemWithProduct {
	items := s.cartItems.filter(func(c *models.CartItem) bool { return c.UserID == userID })
	out := make([]models.CartItemWithProduct, 0, len(items))
	for _, item := range items {
		out = append(out, models.CartItemWithProduct{
			CartItem: item,
			Product:  s.productCopy(item.ProductID),
		})
	}
	return out
}

// completionTime keeps an existing timestamp across repeated "completed"
// updates, stamps a fresh one on the transition and clears it when leaving.
func completionTime(wasCompleted, isCompleted bool, current *time.Time, now func() time.Time) *time.Time {
	switch {
	case !isCompleted:
		return nil
	case wasCompleted && current != nil:
		return current
	default:
		t := now()
		return &t
	}
}
