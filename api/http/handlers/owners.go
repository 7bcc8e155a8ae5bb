package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/smartparking/api/http/presenter"
	"github.com/artem13815/smartparking/pkg/owner"
)

type OwnersHandler struct {
	uc owner.UseCase
}

func NewOwnersHandler(uc owner.UseCase) *OwnersHandler { return &OwnersHandler{uc: uc} }

type ownerDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// List returns the owner directory in repository order.
func (h *OwnersHandler) List(c *fiber.Ctx) error {
	owners, err := h.uc.List(c.UserContext())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list owners")
	}
	out := make([]ownerDTO, 0, len(owners))
	for _, o := range owners {
		out = append(out, ownerDTO{ID: o.ID, Name: o.Name})
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// RedirectList sends /owners to the canonical /owners/ path, keeping the query.
func (h *OwnersHandler) RedirectList(c *fiber.Ctx) error {
	target := "/owners/"
	if q := c.Request().URI().QueryString(); len(q) > 0 {
		target += "?" + string(q)
	}
	return c.Redirect(target, http.StatusTemporaryRedirect)
}
