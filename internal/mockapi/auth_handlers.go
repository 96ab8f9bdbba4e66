package mockapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Region   string `json:"region"`
	UserType string `json:"user_type"`
}

func (svc *Server) register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if req.UserType == "" {
		req.UserType = constants.UserTypeUser
	}

	svc.store.mu.Lock()
	defer svc.store.mu.Unlock()

	for _, existing := range svc.store.users {
		if existing.Username == req.Username {
			return constants.NewCodedError(http.StatusConflict, "username already taken")
		}
	}

	user := &account{
		User: domain.User{
			ID:       svc.store.id(),
			Username: req.Username,
			Email:    req.Email,
			UserType: req.UserType,
			Region:   req.Region,
			IsActive: true,
		},
		Password: req.Password,
	}
	svc.store.users[user.ID] = user

	return ctx.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"user":    user.User,
	})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"user_type"`
}

func (svc *Server) login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if req.UserType == "" {
		req.UserType = constants.UserTypeUser
	}

	svc.store.mu.RLock()
	var found *account
	for _, candidate := range svc.store.users {
		if candidate.Username == req.Username && candidate.UserType == req.UserType {
			found = candidate
			break
		}
	}
	svc.store.mu.RUnlock()

	if found == nil || found.Password != req.Password {
		return constants.NewCodedError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := svc.tokens.issue(found.ID, found.UserType)
	if err != nil {
		return err
	}

	resp := echo.Map{
		"success":      true,
		"access_token": token,
		"type":         found.UserType,
	}
	if found.UserType == constants.UserTypeAdmin {
		resp["admin"] = found.User
	} else {
		resp["user"] = found.User
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (svc *Server) profile(ctx echo.Context) error {
	svc.store.mu.RLock()
	found := svc.store.users[currentUserID(ctx)]
	svc.store.mu.RUnlock()
	if found == nil {
		return constants.ErrNotFound
	}

	resp := echo.Map{"type": found.UserType}
	if found.UserType == constants.UserTypeAdmin {
		resp["admin"] = found.User
	} else {
		resp["user"] = found.User
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (svc *Server) logout(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}

func (svc *Server) refresh(ctx echo.Context) error {
	svc.store.mu.RLock()
	found := svc.store.users[currentUserID(ctx)]
	svc.store.mu.RUnlock()
	if found == nil {
		return constants.ErrUnauthorized
	}

	token, err := svc.tokens.issue(found.ID, found.UserType)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"access_token": token,
		"type":         found.UserType,
	})
}
