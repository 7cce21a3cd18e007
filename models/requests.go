package models

// Request payloads accepted by the API. Tags are checked by utils.DecodeAndValidate.
// Quantities stop at 999, the storage line limit.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Username          string  `json:"username" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	Password          string  `json:"password" validate:"required,min=6,maxbytes=72"`
	ConfirmPassword   string  `json:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName         string  `json:"firstName" validate:"required"`
	LastName          string  `json:"lastName" validate:"required"`
	Phone             *string `json:"phone"`
	PreferredLanguage *string `json:"preferredLanguage"`
}

type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Brand         string  `json:"brand" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	Price         string  `json:"price" validate:"required,money"`
	OriginalPrice *string `json:"originalPrice" validate:"omitempty,money"`
	Description   *string `json:"description"`
	Barcode       *string `json:"barcode"`
	Rating        *string `json:"rating" validate:"omitempty,money"`
	InStock       *bool   `json:"inStock"`
	IconType      *string `json:"iconType"`
}

type CreateShoppingListRequest struct {
	UserID string     `json:"userId" validate:"required"`
	Name   string     `json:"name" validate:"required"`
	Status ListStatus `json:"status" validate:"omitempty,oneof=active planned completed"`
}

type AddShoppingListItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=1,max=999"`
}

type UpdateShoppingListItemRequest struct {
	Quantity    *int  `json:"quantity" validate:"omitempty,min=1,max=999"`
	IsCompleted *bool `json:"isCompleted"`
}

type UpdateListStatusRequest struct {
	Status ListStatus `json:"status" validate:"required,oneof=active planned completed"`
}

type AddToCartRequest struct {
	UserID    string `json:"userId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=1,max=999"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=999"`
}

type CreateOrderRequest struct {
	UserID        string `json:"userId" validate:"required"`
	Total         string `json:"total" validate:"required,money"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=credit pix debit wallet"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}

type AssistantMessageRequest struct {
	Message string `json:"message" validate:"required"`
}
