package domain

// Size is the size tag printed on a catalog item
type Size string

const (
	Size25 Size = "25см"
	Size30 Size = "30см"
	Size35 Size = "35см"
)

// IsValid checks if the size belongs to the closed set of size tags
func (s Size) IsValid() bool {
	switch s {
	case Size25, Size30, Size35:
		return true
	default:
		return false
	}
}

// DeliveryMode represents how the customer receives the order
type DeliveryMode string

const (
	DeliveryModeDelivery DeliveryMode = "delivery"
	DeliveryModePickup   DeliveryMode = "pickup"
)

// IsValid checks if the delivery mode is valid
func (m DeliveryMode) IsValid() bool {
	return m == DeliveryModeDelivery || m == DeliveryModePickup
}

// RequiresAddress reports whether an address must be filled in for this mode
func (m DeliveryMode) RequiresAddress() bool {
	return m == DeliveryModeDelivery
}

// OrderField names an editable field of the order form
type OrderField string

const (
	OrderFieldName    OrderField = "name"
	OrderFieldPhone   OrderField = "phone"
	OrderFieldAddress OrderField = "address"
	OrderFieldComment OrderField = "comment"
)

// IsValid checks if the field is one of the order form fields
func (f OrderField) IsValid() bool {
	switch f {
	case OrderFieldName, OrderFieldPhone, OrderFieldAddress, OrderFieldComment:
		return true
	default:
		return false
	}
}

// Label returns the form label shown to the customer
func (f OrderField) Label() string {
	switch f {
	case OrderFieldName:
		return "Имя"
	case OrderFieldPhone:
		return "Телефон"
	case OrderFieldAddress:
		return "Адрес доставки"
	case OrderFieldComment:
		return "Комментарий к заказу"
	default:
		return string(f)
	}
}

// Severity of a user-visible notification
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)
