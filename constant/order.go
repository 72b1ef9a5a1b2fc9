package constant

const (
	OrderEventsExchange = "order_events"
	OrderPlacedQueue    = "order_placed_queue"
	OrderPlacedKey      = "order.placed"
)
