package controllers

import (
	"errors"
	"net/http"

	"aurora/models"
	"aurora/storage"
	"aurora/utils"
)

func (c *Controller) GetUserShoppingLists(w http.ResponseWriter, r *http.Request) {
	utils.SendJSONResponse(w, http.StatusOK, c.store.GetUserShoppingLists(r.PathValue("userId")))
}

func (c *Controller) CreateShoppingList(w http.ResponseWriter, r *http.Request) {
	var req models.CreateShoppingListRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.HandleValidationError(w, msgInvalidData, err)
		return
	}

	list := c.store.CreateShoppingList(models.ShoppingList{
		UserID: req.UserID,
		Name:   req.Name,
		Status: req.Status,
	})
	utils.SendJSONResponse(w, http.StatusCreated, list)
}

func (c *Controller) GetShoppingListItems(w http.ResponseWriter, r *http.Request) {
	utils.SendJSONResponse(w, http.StatusOK, c.store.GetShoppingListItems(r.PathValue("listId")))
}

func (c *Controller) AddShoppingListItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddShoppingListItemRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.HandleValidationError(w, msgInvalidData, err)
		return
	}

	listID := r.PathValue("listId")
	if _, exists := c.store.GetShoppingList(listID); !exists {
		utils.HandleError(w, http.StatusNotFound, msgListNotFound)
		return
	}
	if _, exists := c.store.GetProduct(req.ProductID); !exists {
		utils.HandleError(w, http.StatusNotFound, msgProductNotFound)
		return
	}

	item := models.ShoppingListItem{ListID: listID, ProductID: req.ProductID}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	utils.SendJSONResponse(w, http.StatusCreated, c.store.AddItemToShoppingList(item))
}

func (c *Controller) UpdateShoppingListStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateListStatusRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.HandleValidationError(w, msgInvalidData, err)
		return
	}

	if err := c.store.UpdateShoppingListStatus(r.PathValue("listId"), req.Status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.HandleError(w, http.StatusNotFound, msgListNotFound)
			return
		}
		c.internalError(w, err, "failed to update shopping list status")
		return
	}
	utils.SendMessage(w, msgStatusUpdated)
}

func (c *Controller) UpdateShoppingListItem(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateShoppingListItemRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.HandleValidationError(w, msgInvalidData, err)
		return
	}
	if req.Quantity == nil && req.IsCompleted == nil {
		utils.HandleError(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	if err := c.store.UpdateShoppingListItem(r.PathValue("itemId"), req.Quantity, req.IsCompleted); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.HandleError(w, http.StatusNotFound, msgListItemNotFound)
			return
		}
		c.internalError(w, err, "failed to update shopping list item")
		return
	}
	utils.SendMessage(w, msgListItemUpdated)
}

func (c *Controller) RemoveShoppingListItem(w http.ResponseWriter, r *http.Request) {
	if err := c.store.RemoveShoppingListItem(r.PathValue("itemId")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.HandleError(w, http.StatusNotFound, msgListItemNotFound)
			return
		}
		c.internalError(w, err, "failed to remove shopping list item")
		return
	}
	utils.SendMessage(w, msgListItemRemoved)
}
