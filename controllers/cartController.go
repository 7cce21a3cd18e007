package controllers

import (
	"errors"
	"net/http"

	"aurora/models"
	"aurora/storage"
	"aurora/utils"

	"go.uber.org/zap"
)

func (c *Controller) GetCart(w http.ResponseWriter, r *http.Request) {
	utils.SendJSONResponse(w, http.StatusOK, c.store.GetUserCartItems(r.PathValue("userId")))
}

// GetCartSummary prices the cart the same way the checkout screen does.
func (c *Controller) GetCartSummary(w http.ResponseWriter, r *http.Request) {
	items := c.store.GetUserCartItems(r.PathValue("userId"))
	utils.SendJSONResponse(w, http.StatusOK, utils.SummarizeCart(items, c.rates.DiscountRate, c.rates.DeliveryFee))
}

// AddToCart merges into the user's existing line for the product, if any.
func (c *Controller) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req models.AddToCartRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.HandleValidationError(w, msgInvalidData, err)
		return
	}

	if _, exists := c.store.GetProduct(req.ProductID); !exists {
		utils.HandleError(w, http.StatusNotFound, msgProductNotFound)
		return
	}

	item := models.CartItem{UserID: req.UserID, ProductID: req.ProductID}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	merged, err := c.store.AddToCart(item)
	if errors.Is(err, storage.ErrQuantityLimit) {
		utils.HandleValidationError(w, msgInvalidData, utils.ValidationErrors{{Field: "quantity", Rule: "max"}})
		return
	}
	if err != nil {
		c.internalError(w, err, "failed to add to cart")
		return
	}
	utils.SendJSONResponse(w, http.StatusCreated, merged)
}

func (c *Controller) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCartItemRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.HandleValidationError(w, msgInvalidData, err)
		return
	}

	if err := c.store.UpdateCartItem(r.PathValue("itemId"), req.Quantity); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.HandleError(w, http.StatusNotFound, msgCartItemNotFound)
			return
		}
		c.internalError(w, err, "failed to update cart item")
		return
	}
	utils.SendMessage(w, msgCartUpdated)
}

func (c *Controller) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	if err := c.store.RemoveFromCart(r.PathValue("itemId")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.HandleError(w, http.StatusNotFound, msgCartItemNotFound)
			return
		}
		c.internalError(w, err, "failed to remove cart item")
		return
	}
	utils.SendMessage(w, msgCartItemRemoved)
}

func (c *Controller) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	removed := c.store.ClearCart(userID)
	c.logger.Debug("cart cleared", zap.String("user_id", userID), zap.Int("removed", removed))
	utils.SendMessage(w, msgCartCleared)
}
