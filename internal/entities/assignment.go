package entities

// AssignmentGroup это результат распределения по одному пинкоду.
// Orders отсортированы движком, Assignments хранит order ID -> driver ID.
// Группа эфемерна: ядро ее не персистит, она уходит в операционный отчет.
type AssignmentGroup struct {
	Pincode     string
	Orders      []Order
	DriverCount int
	OrderCount  int
	Assignments map[int64]int64
}

type AssignmentResult struct {
	Groups       map[string]AssignmentGroup
	TotalDrivers int
	TotalOrders  int
}
