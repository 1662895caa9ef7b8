package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/lifecycle"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		OrderCode:    &orderCreateDTO.OrderCode,
		CustomerName: &orderCreateDTO.CustomerName,
		Phone:        &orderCreateDTO.Phone,
		Address:      &orderCreateDTO.Address,
		Pincode:      &orderCreateDTO.Pincode,
		Lat:          &orderCreateDTO.Lat,
		Lng:          &orderCreateDTO.Lng,
	}

	id, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrMissingRequiredFields),
			errors.Is(err, lifecycle.ErrInvalidOrderCode),
			errors.Is(err, lifecycle.ErrInvalidPhone),
			errors.Is(err, lifecycle.ErrInvalidPincode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrOrderConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
