package models

import (
	"time"
)

const DefaultLanguage = "pt-BR"

type User struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	Password          string    `json:"-"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Phone             *string   `json:"phone"`
	PreferredLanguage string    `json:"preferredLanguage"`
	CreatedAt         time.Time `json:"createdAt"`
}

// PublicUser is what clients get back from auth and user lookups. It never carries the password.
type PublicUser struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	PreferredLanguage string `json:"preferredLanguage"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		PreferredLanguage: u.PreferredLanguage,
	}
}

type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	Price         string  `json:"price"`
	OriginalPrice *string `json:"originalPrice"`
	Description   *string `json:"description"`
	Barcode       *string `json:"barcode"`
	Rating        string  `json:"rating"`
	InStock       bool    `json:"inStock"`
	IconType      string  `json:"iconType"`
}

type ListStatus string

const (
	ListActive    ListStatus = "active"
	ListPlanned   ListStatus = "planned"
	ListCompleted ListStatus = "completed"
)

type ShoppingList struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Status      ListStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

type ShoppingListItem struct {
	ID          string    `json:"id"`
	ListID      string    `json:"listId"`
	ProductID   string    `json:"productId"`
	Quantity    int       `json:"quantity"`
	IsCompleted bool      `json:"isCompleted"`
	AddedAt     time.Time `json:"addedAt"`
}

// ShoppingListItemWithProduct serializes as the item's fields plus a "product" key.
type ShoppingListItemWithProduct struct {
	ShoppingListItem
	Product *Product `json:"product"`
}

type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

type CartItemWithProduct struct {
	CartItem
	Product *Product `json:"product"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	Total         string      `json:"total"`
	Status        OrderStatus `json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	CreatedAt     time.Time   `json:"createdAt"`
	CompletedAt   *time.Time  `json:"completedAt"`
}

type OrderItem struct {
	ID        string `json:"id"`
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// CartSummary is the checkout breakdown of a user's cart. Money fields are fixed to two decimals.
type CartSummary struct {
	ItemCount   int    `json:"itemCount"`
	Subtotal    string `json:"subtotal"`
	Discount    string `json:"discount"`
	DeliveryFee string `json:"deliveryFee"`
	Total       string `json:"total"`
}
