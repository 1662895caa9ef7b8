package assignment

import (
	"sort"

	"dispatch/internal/entities"
)

// Engine распределяет заказы по водителям: группировка по пинкоду, сортировка
// по близости внутри группы, round robin по пулу водителей.
//
// Движок детерминирован и не имеет состояния: одинаковые входы дают байт в
// байт одинаковый результат, повторный прогон после частичного сбоя безопасен.
// Сортировка lat/lng это сознательная заглушка вместо настоящей маршрутизации,
// интерфейс Assign стабилен чтобы подменить алгоритм без изменения вызывающих.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Assign никогда не возвращает ошибку: пустые входы дают пустой результат,
// пустой пул водителей дает группы с нулевым DriverCount без назначений.
// Персистенция назначений - ответственность вызывающего.
func (e *Engine) Assign(orders []entities.Order, drivers []entities.Driver) entities.AssignmentResult {
	result := entities.AssignmentResult{
		Groups:       make(map[string]entities.AssignmentGroup),
		TotalDrivers: len(drivers),
		TotalOrders:  len(orders),
	}
	if len(orders) == 0 {
		return result
	}

	// Порядок пула не должен зависеть от порядка входного слайса.
	pool := make([]entities.Driver, len(drivers))
	copy(pool, drivers)
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].ID < pool[j].ID
	})

	// Стабильная группировка: пинкоды в порядке первого появления,
	// заказы внутри группы в порядке входа.
	grouped := make(map[string][]entities.Order)
	pincodes := make([]string, 0)
	for _, order := range orders {
		if _, ok := grouped[order.Pincode]; !ok {
			pincodes = append(pincodes, order.Pincode)
		}
		grouped[order.Pincode] = append(grouped[order.Pincode], order)
	}

	for _, pincode := range pincodes {
		group := grouped[pincode]

		// Приближение географической близости без матрицы расстояний.
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].Lat != group[j].Lat {
				return group[i].Lat < group[j].Lat
			}
			return group[i].Lng < group[j].Lng
		})

		assignments := make(map[int64]int64)
		for i, order := range group {
			if len(pool) == 0 {
				break
			}
			assignments[order.ID] = pool[i%len(pool)].ID
		}

		result.Groups[pincode] = entities.AssignmentGroup{
			Pincode:     pincode,
			Orders:      group,
			DriverCount: len(pool),
			OrderCount:  len(group),
			Assignments: assignments,
		}
	}

	return result
}
