package assignment_run_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/assignment"
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
	result, err := h.service.RunAssignment(r.Context())
	if err != nil && !errors.Is(err, assignment.ErrNoDriversAvailable) {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	// пустой пул не ошибка запуска: возвращаем результат с нулевыми назначениями

	response := toDTO(result)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(result *entities.AssignmentResult) dto.AssignmentRunResponse {
	response := dto.AssignmentRunResponse{
		Groups:       make(map[string]dto.AssignmentGroup, len(result.Groups)),
		TotalDrivers: result.TotalDrivers,
		TotalOrders:  result.TotalOrders,
	}

	for pincode, group := range result.Groups {
		orderCodes := make([]string, 0, len(group.Orders))
		for _, groupOrder := range group.Orders {
			orderCodes = append(orderCodes, groupOrder.OrderCode)
		}
		response.Groups[pincode] = dto.AssignmentGroup{
			Orders:      orderCodes,
			DriverCount: group.DriverCount,
			OrderCount:  group.OrderCount,
		}
	}

	return response
}
