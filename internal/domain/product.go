package domain

// Product инвентарь, который можно добавить к бронированию (ракетки, мячи)
type Product struct {
	ID        int64
	Name      string
	Price     float64
	Stock     int
	Available bool
}

// CanSupply проверяет, что товар доступен в нужном количестве
func (p *Product) CanSupply(quantity int) bool {
	return p.Available && quantity > 0 && quantity <= p.Stock
}

// EquipmentItem позиция инвентаря в бронировании. Цена фиксируется на момент бронирования.
// В сумму бронирования и в проверку пересечений не входит.
type EquipmentItem struct {
	ProductID int64
	Quantity  int
	UnitPrice float64
}
