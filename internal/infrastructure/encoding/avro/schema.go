package avro

// OrderPlacedSchema describes an accepted order on the order event stream.
// Total travels as a decimal string so no precision is lost.
const OrderPlacedSchema = `{
	"type": "record",
	"name": "OrderPlaced",
	"namespace": "weblarek.order",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "payment", "type": "string"},
		{"name": "address", "type": "string"},
		{"name": "email", "type": "string"},
		{"name": "phone", "type": "string"},
		{"name": "total", "type": "string"},
		{"name": "items", "type": {"type": "array", "items": "string"}},
		{"name": "created_at", "type": "long"}
	]
}`
