package storage

import (
	"errors"

	"aurora/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
	ErrBarcodeTaken  = errors.New("barcode already registered")
	ErrQuantityLimit = errors.New("quantity above limit")
)

// MaxQuantity caps the quantity of a single cart or list line.
const MaxQuantity = 999

// Storage is the repository the HTTP layer talks to. Getters report a miss with
// a false second value; mutations of unknown ids return ErrNotFound.
type Storage interface {
	GetUser(id string) (models.User, bool)
	GetUserByEmail(email string) (models.User, bool)
	GetUserByUsername(username string) (models.User, bool)
	CreateUser(user models.User) (models.User, error)

	GetProducts() []models.Product
	GetProduct(id string) (models.Product, bool)
	GetProductByBarcode(barcode string) (models.Product, bool)
	SearchProducts(query string) []models.Product
	GetProductsByCategory(category string) []models.Product
	CreateProduct(product models.Product) (models.Product, error)

	GetUserShoppingLists(userID string) []models.ShoppingList
	GetShoppingList(id string) (models.ShoppingList, bool)
	CreateShoppingList(list models.ShoppingList) models.ShoppingList
	UpdateShoppingListStatus(id string, status models.ListStatus) error

	GetShoppingListItems(listID string) []models.ShoppingListItemWithProduct
	AddItemToShoppingList(item models.ShoppingListItem) models.ShoppingListItem
	UpdateShoppingListItem(id string, quantity *int, isCompleted *bool) error
	RemoveShoppingListItem(id string) error

	GetUserCartItems(userID string) []models.CartItemWithProduct
	AddToCart(item models.CartItem) (models.CartItem, error)
	UpdateCartItem(id string, quantity int) error
	RemoveFromCart(id string) error
	ClearCart(userID string) int

	GetUserOrders(userID string) []models.Order
	GetOrder(id string) (models.Order, bool)
	GetOrderItems(orderID string) []models.OrderItem
	CreateOrder(order models.Order) models.Order
	PlaceOrder(order models.Order) (models.Order, []models.OrderItem)
	UpdateOrderStatus(id string, status models.OrderStatus) error
}
