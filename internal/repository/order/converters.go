package order

import (
	"dispatch/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:               o.ID,
		OrderCode:        o.OrderCode,
		CustomerName:     o.CustomerName,
		Phone:            o.Phone,
		Address:          o.Address,
		Pincode:          o.Pincode,
		Lat:              o.Lat,
		Lng:              o.Lng,
		SlotDate:         o.SlotDate,
		SlotTime:         o.SlotTime,
		Status:           entities.OrderStatusType(o.Status),
		AssignedDriverID: o.AssignedDriverID,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{
		ID:               orderModify.ID,
		OrderCode:        orderModify.OrderCode,
		CustomerName:     orderModify.CustomerName,
		Phone:            orderModify.Phone,
		Address:          orderModify.Address,
		Pincode:          orderModify.Pincode,
		Lat:              orderModify.Lat,
		Lng:              orderModify.Lng,
		SlotDate:         orderModify.SlotDate,
		SlotTime:         orderModify.SlotTime,
		AssignedDriverID: orderModify.AssignedDriverID,
	}

	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
