package controllers

import (
	"errors"
	"net/http"

	"aurora/models"
	"aurora/storage"
	"aurora/utils"

	"go.uber.org/zap"
)

// Back-office operations: catalog maintenance and order fulfilment.

func (c *Controller) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.HandleValidationError(w, msgInvalidData, err)
		return
	}

	// Validation guarantees the amounts parse
	price, _ := utils.ParseMoney(req.Price)
	product := models.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		Price:       utils.FormatMoney(price),
		Description: req.Description,
		Barcode:     req.Barcode,
		InStock:     true,
	}
	if req.OriginalPrice != nil {
		original, _ := utils.ParseMoney(*req.OriginalPrice)
		formatted := utils.FormatMoney(original)
		product.OriginalPrice = &formatted
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.IconType != nil {
		product.IconType = *req.IconType
	}

	created, err := c.store.CreateProduct(product)
	if errors.Is(err, storage.ErrBarcodeTaken) {
		utils.HandleError(w, http.StatusConflict, msgBarcodeTaken)
		return
	}
	if err != nil {
		c.internalError(w, err, "failed to create product")
		return
	}

	c.logger.Info("product created", zap.String("product_id", created.ID), zap.String("name", created.Name))
	utils.SendJSONResponse(w, http.StatusCreated, created)
}

func (c *Controller) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateOrderStatusRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.HandleValidationError(w, msgInvalidData, err)
		return
	}

	orderID := r.PathValue("orderId")
	if err := c.store.UpdateOrderStatus(orderID, req.Status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.HandleError(w, http.StatusNotFound, msgOrderNotFound)
			return
		}
		c.internalError(w, err, "failed to update order status")
		return
	}

	c.logger.Info("order status changed", zap.String("order_id", orderID), zap.String("status", string(req.Status)))
	utils.SendMessage(w, msgOrderStatusUpdated)
}
