package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"store-console/internal/service"
	mdw "store-console/internal/transport/http/middleware"
	resp "store-console/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
	log *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		resp.Err(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, u, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			resp.Err(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.log.Error("login failed", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": u})
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		resp.Err(c, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	u, err := h.svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			resp.Err(c, http.StatusConflict, "Email already exists")
			return
		}
		h.log.Error("register failed", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    u,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	claims := mdw.ClaimsFrom(c)
	u, err := h.svc.Me(claims.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			resp.Err(c, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error("get current user failed", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}
