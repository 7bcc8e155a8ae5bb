package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smartparking/api/http/presenter"
)

const welcomeMessage = "Welcome to Smart Parking API"

type welcomeResponse struct {
	Message string `json:"message"`
}

// RootHandler serves the API greeting.
type RootHandler struct{}

func NewRootHandler() *RootHandler { return &RootHandler{} }

// Welcome returns the fixed greeting.
func (h *RootHandler) Welcome(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, welcomeResponse{Message: welcomeMessage})
}
