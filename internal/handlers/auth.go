package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/store"
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/utils"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles user registration.
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "username e password são obrigatórios"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "username e password são obrigatórios"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao criar usuário"})
		return
	}

	if _, err := h.store.CreateUser(req.Username, hashedPassword); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			c.JSON(http.StatusConflict, gin.H{"msg": "usuário já existe"})
			return
		}
		log.Printf("Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao criar usuário"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "usuário criado"})
}

// Login verifies credentials and issues an access token.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "username e password são obrigatórios"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "username e password são obrigatórios"})
		return
	}

	user, err := h.store.UserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Credenciais inválidas"})
			return
		}
		log.Printf("Error querying user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao autenticar"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Credenciais inválidas"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao autenticar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
