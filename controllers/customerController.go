package controllers

import (
	"errors"
	"net/http"

	"aurora/models"
	"aurora/storage"
	"aurora/utils"

	"go.uber.org/zap"
)

func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.HandleValidationError(w, msgInvalidData, err)
		return
	}

	// Email wins over username when both are taken
	if _, exists := c.store.GetUserByEmail(req.Email); exists {
		utils.HandleError(w, http.StatusConflict, msgEmailTaken)
		return
	}
	if _, exists := c.store.GetUserByUsername(req.Username); exists {
		utils.HandleError(w, http.StatusConflict, msgUsernameTaken)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.internalError(w, err, "failed to hash password")
		return
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if req.PreferredLanguage != nil {
		user.PreferredLanguage = *req.PreferredLanguage
	}

	// The store re-checks uniqueness; another request may have registered in between
	created, err := c.store.CreateUser(user)
	switch {
	case errors.Is(err, storage.ErrEmailTaken):
		utils.HandleError(w, http.StatusConflict, msgEmailTaken)
		return
	case errors.Is(err, storage.ErrUsernameTaken):
		utils.HandleError(w, http.StatusConflict, msgUsernameTaken)
		return
	case err != nil:
		c.internalError(w, err, "failed to create user")
		return
	}

	c.logger.Info("user registered", zap.String("user_id", created.ID), zap.String("username", created.Username))
	utils.SendJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"user": created.Public(),
	})
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.HandleValidationError(w, msgInvalidData, err)
		return
	}

	// Unknown email and wrong password get the same answer
	user, exists := c.store.GetUserByEmail(req.Email)
	if !exists {
		utils.HandleError(w, http.StatusUnauthorized, msgBadCredentials)
		return
	}
	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		utils.HandleError(w, http.StatusUnauthorized, msgBadCredentials)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"user": user.Public(),
	})
}

func (c *Controller) GetUser(w http.ResponseWriter, r *http.Request) {
	user, exists := c.store.GetUser(r.PathValue("id"))
	if !exists {
		utils.HandleError(w, http.StatusNotFound, msgUserNotFound)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, user.Public())
}
