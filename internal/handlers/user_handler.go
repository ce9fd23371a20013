package handlers

import (
	"errors"
	"log"
	"strings"
	"time"
	"todo-backend/internal/auth"
	"todo-backend/internal/models"
	"todo-backend/internal/repo"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	users    repo.UserRepoInterface
	secret   []byte
	tokenTTL time.Duration
}

func NewUserHandler(users repo.UserRepoInterface, secret []byte, tokenTTL time.Duration) *UserHandler {
	return &UserHandler{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var dto struct {
		UserName string `json:"user_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	dto.Email = strings.TrimSpace(strings.ToLower(dto.Email))
	dto.UserName = strings.TrimSpace(dto.UserName)
	if dto.UserName == "" || utf8.RuneCountInString(dto.UserName) > 100 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "user_name must be between 1 and 100 characters",
		})
	}
	if n := utf8.RuneCountInString(dto.Email); n < 5 || n > 100 || !strings.Contains(dto.Email, "@") {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "A valid email is required",
		})
	}
	if len(dto.Password) < 6 || len(dto.Password) > 128 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "password must be between 6 and 128 characters",
		})
	}

	hash, err := auth.HashPassword(dto.Password)
	if err != nil {
		log.Println(err, "Error hashing password")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register user",
		})
	}

	user := &models.User{
		UserName: dto.UserName,
		Email:    dto.Email,
		Password: hash,
	}
	if err := h.users.Create(user); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A user with this email already exists",
			})
		}
		log.Println(err, "Error creating user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user.Public())
}

// Login accepts either email or user_name together with the password.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var dto struct {
		Email    string `json:"email"`
		UserName string `json:"user_name"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var user *models.User
	var err error
	if dto.Email != "" {
		user, err = h.users.GetByEmail(strings.TrimSpace(strings.ToLower(dto.Email)))
	}
	if user == nil && dto.UserName != "" {
		user, err = h.users.GetByUserName(dto.UserName)
	}
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		log.Println(err, "Error looking up user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred during login",
		})
	}

	if user == nil || !auth.VerifyPassword(dto.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Incorrect email or password",
		})
	}

	token, err := auth.Issue(h.secret, user.ID.String(), user.Email, user.UserName, h.tokenTTL)
	if err != nil {
		log.Println(err, "Error signing token")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred during login",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID format",
		})
	}

	user, err := h.users.GetByID(userID)
	if errors.Is(err, repo.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	if err != nil {
		log.Println(err, "Error getting user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get user",
		})
	}

	return c.Status(fiber.StatusOK).JSON(user.Public())
}
