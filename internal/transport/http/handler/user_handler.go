package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"store-console/internal/core/auth"
	"store-console/internal/service"
	mdw "store-console/internal/transport/http/middleware"
	resp "store-console/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

func actorFrom(claims *auth.Claims) service.Actor {
	return service.Actor{
		ID:       claims.ID,
		Email:    claims.Email,
		Name:     claims.Name,
		UserType: claims.UserType,
		IsAdmin:  claims.IsAdmin,
	}
}

func (h *UserHandler) userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		resp.Err(c, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	return uint(id), true
}

// failUser 统一把业务错误映射到用户族端点的状态码
func (h *UserHandler) failUser(c *gin.Context, what string, err error) {
	var fe *service.ForbiddenError
	var ve *service.ValidationError
	switch {
	case errors.As(err, &fe):
		resp.Err(c, http.StatusForbidden, fe.Reason)
	case errors.As(err, &ve):
		resp.Err(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, service.ErrNotFound):
		resp.Err(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrDuplicateEmail):
		resp.Err(c, http.StatusConflict, "Email already exists")
	case errors.Is(err, service.ErrMainUserExists):
		resp.Err(c, http.StatusBadRequest, "A main user already exists")
	case errors.Is(err, service.ErrSelfDelete):
		resp.Err(c, http.StatusBadRequest, err.Error())
	default:
		h.log.Error(what, zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "Server error")
	}
}

func (h *UserHandler) List(c *gin.Context) {
	actor := actorFrom(mdw.ClaimsFrom(c))
	users, err := h.svc.List(actor)
	if err != nil {
		h.failUser(c, "list users failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	actor := actorFrom(mdw.ClaimsFrom(c))
	u, err := h.svc.Get(actor, id)
	if err != nil {
		h.failUser(c, "get user failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

type createUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType *int   `json:"user_type"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		resp.Err(c, http.StatusBadRequest, "Name, email, and password are required")
		return
	}
	desired := 0
	if req.UserType != nil {
		desired = *req.UserType
	}

	actor := actorFrom(mdw.ClaimsFrom(c))
	u, err := h.svc.Create(actor, service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		UserType: desired,
	})
	if err != nil {
		h.failUser(c, "create user failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    u,
	})
}

type updateUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType *int   `json:"user_type"`
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Err(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	actor := actorFrom(mdw.ClaimsFrom(c))
	u, err := h.svc.Update(actor, id, service.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
	})
	if err != nil {
		h.failUser(c, "update user failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"user":    u,
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	actor := actorFrom(mdw.ClaimsFrom(c))
	if err := h.svc.Delete(actor, id); err != nil {
		h.failUser(c, "delete user failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}
