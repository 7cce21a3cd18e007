package controllers

import (
	"net/http"

	"aurora/models"
	"aurora/utils"

	"go.uber.org/zap"
)

func (c *Controller) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	utils.SendJSONResponse(w, http.StatusOK, c.store.GetUserOrders(r.PathValue("userId")))
}

// CreateOrder is the simulated checkout. Placing the order consumes the
// user's cart: its lines become the order items and the cart is emptied.
func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.HandleValidationError(w, msgInvalidData, err)
		return
	}

	total, _ := utils.ParseMoney(req.Total)
	order, items := c.store.PlaceOrder(models.Order{
		UserID:        req.UserID,
		Total:         utils.FormatMoney(total),
		PaymentMethod: req.PaymentMethod,
	})

	c.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", order.UserID),
		zap.String("total", order.Total),
		zap.String("payment_method", order.PaymentMethod),
		zap.Int("items", len(items)),
	)
	utils.SendJSONResponse(w, http.StatusCreated, order)
}

func (c *Controller) GetOrderItems(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	if _, exists := c.store.GetOrder(orderID); !exists {
		utils.HandleError(w, http.StatusNotFound, msgOrderNotFound)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, c.store.GetOrderItems(orderID))
}
