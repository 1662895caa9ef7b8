package order_slot_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/generated/dto"
	"dispatch/internal/service/lifecycle"
	"dispatch/internal/service/status"
	"dispatch/pkg/logger"
)

const slotDateLayout = "2006-01-02"

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
	var slotSelectDTO dto.OrderSlotSelect
	err := json.NewDecoder(r.Body).Decode(&slotSelectDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	slotDate, err := time.Parse(slotDateLayout, slotSelectDTO.SlotDate)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.SelectSlot(r.Context(), slotSelectDTO.OrderCode, slotDate, slotSelectDTO.SlotTime, nil)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidOrderCode),
			errors.Is(err, lifecycle.ErrMissingSlot):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, status.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
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
