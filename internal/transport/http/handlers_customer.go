package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mvaleed/kernel/domain"
	"github.com/mvaleed/kernel/internal/customer"
	khttp "github.com/mvaleed/kernel/transport/http"
)

type registerCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Age     int    `json:"age"`
	License bool   `json:"license"`
}

type customerResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Age          int       `json:"age"`
	License      bool      `json:"license"`
	CanRent      bool      `json:"can_rent"`
	RegisteredAt time.Time `json:"registered_at"`
}

func toCustomerResponse(c *customer.Customer) customerResponse {
	return customerResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Email:        c.Email,
		Age:          c.Age,
		License:      c.License,
		CanRent:      c.CanRent(),
		RegisteredAt: c.RegisteredAt,
	}
}

func (s *Server) handleRegisterCustomer(w http.ResponseWriter, r *http.Request) error {
	var req registerCustomerRequest
	if err := khttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	c, err := s.customers.Register(r.Context(), customer.Profile{
		Name:    req.Name,
		Email:   req.Email,
		Age:     req.Age,
		License: req.License,
	})
	if err != nil {
		return err
	}

	w.Header().Set("Location", "/api/v1/customers/"+c.ID.String())
	khttp.WriteJSON(w, http.StatusCreated, toCustomerResponse(c))
	return nil
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) error {
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	c, err := s.customers.Get(r.Context(), id)
	if err != nil {
		return err
	}

	khttp.WriteJSON(w, http.StatusOK, toCustomerResponse(c))
	return nil
}
