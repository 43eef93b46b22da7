package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldOperation   = "operation"
	FieldProduct     = "product"
	FieldUnit        = "unit"
	FieldQuantity    = "quantity"
	FieldPrice       = "price"
	FieldOldPrice    = "old_price"
	FieldMonth       = "month"
	FieldSupermarket = "supermarket"
	FieldEventID     = "event_id"
	FieldEventType   = "event_type"
	FieldCount       = "count"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentShopping = "shopping"
	ComponentMenu     = "menu"
	ComponentAMQP     = "amqp"
	ComponentSeed     = "seed"
	ComponentEvents   = "events"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpUpdate   = "update"
	OpReport   = "report"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpSeed     = "seed"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeNetwork       = "network_error"
	ErrorTypeNotFound      = "not_found_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithProduct adds product-related fields
func (f LogFields) WithProduct(name, unit string, quantity uint32, price float64) LogFields {
	f[FieldProduct] = name
	f[FieldUnit] = unit
	f[FieldQuantity] = quantity
	f[FieldPrice] = price
	return f
}

// WithPurchase adds purchase-related fields
func (f LogFields) WithPurchase(month, product string, quantity uint32, price float64, supermarket string) LogFields {
	f[FieldMonth] = month
	f[FieldProduct] = product
	f[FieldQuantity] = quantity
	f[FieldPrice] = price
	f[FieldSupermarket] = supermarket
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
