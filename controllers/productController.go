package controllers

import (
	"net/http"

	"aurora/models"
	"aurora/utils"
)

// ListProducts serves three exclusive modes picked by query parameter:
// ?search= first, then ?category=, otherwise the whole catalog.
func (c *Controller) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var products []models.Product
	switch search, category := query.Get("search"), query.Get("category"); {
	case search != "":
		products = c.store.SearchProducts(search)
	case category != "":
		products = c.store.GetProductsByCategory(category)
	default:
		products = c.store.GetProducts()
	}

	utils.SendJSONResponse(w, http.StatusOK, products)
}

func (c *Controller) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, exists := c.store.GetProduct(r.PathValue("id"))
	if !exists {
		utils.HandleError(w, http.StatusNotFound, msgProductNotFound)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, product)
}

// GetProductByBarcode backs the kiosk scanner.
func (c *Controller) GetProductByBarcode(w http.ResponseWriter, r *http.Request) {
	product, exists := c.store.GetProductByBarcode(r.PathValue("barcode"))
	if !exists {
		utils.HandleError(w, http.StatusNotFound, msgProductNotFound)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, product)
}
