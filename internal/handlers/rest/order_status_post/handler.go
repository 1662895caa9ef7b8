package order_status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/lifecycle"
	"dispatch/internal/service/status"
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
	var statusUpdateDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requested := entities.OrderStatusType(statusUpdateDTO.Status)

	orderEntity, err := h.service.ChangeStatus(r.Context(), statusUpdateDTO.OrderCode, requested, statusUpdateDTO.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidOrderCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, status.ErrInvalidTransition),
			errors.Is(err, lifecycle.ErrAssignmentOnly):
			// в теле причина отказа: из какого статуса в какой не пустили
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			encodeErr := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			if encodeErr != nil {
				h.log.With(
					logger.NewField("error", encodeErr),
				).Error("encode JSON response")
			}
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.Order{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
