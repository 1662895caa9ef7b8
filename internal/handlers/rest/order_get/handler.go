package order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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
	orderCode := mux.Vars(r)["code"]

	orderEntity, err := h.service.GetOrder(r.Context(), orderCode)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, lifecycle.ErrInvalidOrderCode):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := toDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(orderEntity *entities.Order) dto.Order {
	return dto.Order{
		ID:               orderEntity.ID,
		OrderCode:        orderEntity.OrderCode,
		CustomerName:     orderEntity.CustomerName,
		Phone:            orderEntity.Phone,
		Address:          orderEntity.Address,
		Pincode:          orderEntity.Pincode,
		Lat:              orderEntity.Lat,
		Lng:              orderEntity.Lng,
		SlotDate:         orderEntity.SlotDate,
		SlotTime:         orderEntity.SlotTime,
		Status:           orderEntity.Status.String(),
		AssignedDriverID: orderEntity.AssignedDriverID,
	}
}
