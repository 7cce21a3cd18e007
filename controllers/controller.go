package controllers

import (
	"net/http"
	"time"

	"aurora/storage"
	"aurora/utils"

	"github.com/felixge/httpsnoop"
	"github.com/go-michi/michi"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Response messages. The storefront is Brazilian, clients show these verbatim.
const (
	msgInvalidData        = "Dados inválidos"
	msgInternalError      = "Erro interno do servidor"
	msgBadCredentials     = "Credenciais inválidas"
	msgEmailTaken         = "Email já cadastrado"
	msgUsernameTaken      = "Nome de usuário já existe"
	msgUserNotFound       = "Usuário não encontrado"
	msgProductNotFound    = "Produto não encontrado"
	msgBarcodeTaken       = "Código de barras já cadastrado"
	msgListNotFound       = "Lista não encontrada"
	msgStatusUpdated      = "Status atualizado"
	msgListItemNotFound   = "Item da lista não encontrado"
	msgListItemUpdated    = "Item atualizado"
	msgListItemRemoved    = "Item removido da lista"
	msgCartItemNotFound   = "Item não encontrado"
	msgCartUpdated        = "Carrinho atualizado"
	msgCartItemRemoved    = "Item removido do carrinho"
	msgCartCleared        = "Carrinho limpo"
	msgOrderNotFound      = "Pedido não encontrado"
	msgOrderStatusUpdated = "Status do pedido atualizado"
)

// CheckoutRates parameterizes the cart summary.
type CheckoutRates struct {
	DiscountRate decimal.Decimal
	DeliveryFee  decimal.Decimal
}

// DefaultCheckoutRates are the kiosk's standing promotion: 5% off and a flat R$ 12,50 delivery.
func DefaultCheckoutRates() CheckoutRates {
	return CheckoutRates{
		DiscountRate: decimal.RequireFromString("0.05"),
		DeliveryFee:  decimal.RequireFromString("12.50"),
	}
}

// Controller serves the API on top of one Storage owned by the caller.
type Controller struct {
	store  storage.Storage
	logger *zap.Logger
	rates  CheckoutRates
}

func New(store storage.Storage, logger *zap.Logger, rates CheckoutRates) *Controller {
	return &Controller{
		store:  store,
		logger: logger,
		rates:  rates,
	}
}

// Routes registers every endpoint and wraps the router with request logging.
func (c *Controller) Routes() http.Handler {
	r := michi.NewRouter()

	r.HandleFunc("GET /api/health", c.Health)

	// Auth and users
	r.HandleFunc("POST /api/auth/login", c.Login)
	r.HandleFunc("POST /api/auth/register", c.Register)
	r.HandleFunc("GET /api/users/{id}", c.GetUser)

	// Catalog
	r.HandleFunc("GET /api/products", c.ListProducts)
	r.HandleFunc("POST /api/products", c.CreateProduct)
	r.HandleFunc("GET /api/products/{id}", c.GetProduct)
	r.HandleFunc("GET /api/products/barcode/{barcode}", c.GetProductByBarcode)

	// Shopping lists
	r.HandleFunc("GET /api/shopping-lists/{userId}", c.GetUserShoppingLists)
	r.HandleFunc("POST /api/shopping-lists", c.CreateShoppingList)
	r.HandleFunc("GET /api/shopping-lists/{listId}/items", c.GetShoppingListItems)
	r.HandleFunc("POST /api/shopping-lists/{listId}/items", c.AddShoppingListItem)
	r.HandleFunc("PATCH /api/shopping-lists/{listId}/status", c.UpdateShoppingListStatus)
	r.HandleFunc("PATCH /api/shopping-list-items/{itemId}", c.UpdateShoppingListItem)
	r.HandleFunc("DELETE /api/shopping-list-items/{itemId}", c.RemoveShoppingListItem)

	// Cart
	r.HandleFunc("GET /api/cart/{userId}", c.GetCart)
	r.HandleFunc("GET /api/cart/{userId}/summary", c.GetCartSummary)
	r.HandleFunc("POST /api/cart", c.AddToCart)
	r.HandleFunc("PATCH /api/cart/{itemId}", c.UpdateCartItem)
	r.HandleFunc("DELETE /api/cart/{itemId}", c.RemoveCartItem)
	r.HandleFunc("DELETE /api/cart/clear/{userId}", c.ClearCart)

	// Orders
	r.HandleFunc("GET /api/orders/{userId}", c.GetUserOrders)
	r.HandleFunc("POST /api/orders", c.CreateOrder)
	r.HandleFunc("GET /api/orders/{orderId}/items", c.GetOrderItems)
	r.HandleFunc("PATCH /api/orders/{orderId}/status", c.UpdateOrderStatus)

	// Virtual assistant
	r.HandleFunc("POST /api/assistant/messages", c.AssistantMessage)

	return c.logRequests(r)
}

func (c *Controller) Health(w http.ResponseWriter, r *http.Request) {
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (c *Controller) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		c.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", m.Code),
			zap.Int64("bytes", m.Written),
			zap.Duration("duration", m.Duration.Round(time.Microsecond)),
		)
	})
}

// internalError logs err and answers 500 without leaking it.
func (c *Controller) internalError(w http.ResponseWriter, err error, msg string) {
	c.logger.Error(msg, zap.Error(err))
	utils.HandleError(w, http.StatusInternalServerError, msgInternalError)
}
