package handlers

import (
	"time"

	"github.com/pizzatime/storefront/internal/domain"
	"github.com/pizzatime/storefront/internal/money"
	"github.com/pizzatime/storefront/internal/session"
)

// CatalogItemResponse represents one catalog entry
type CatalogItemResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          int64  `json:"price"`
	PriceFormatted string `json:"price_formatted"`
	Image          string `json:"image"`
	Size           string `json:"size"`
}

// CartLineResponse represents one cart line with its subtotal
type CartLineResponse struct {
	ItemID            int    `json:"item_id"`
	Name              string `json:"name"`
	UnitPrice         int64  `json:"unit_price"`
	Quantity          int    `json:"quantity"`
	Subtotal          int64  `json:"subtotal"`
	SubtotalFormatted string `json:"subtotal_formatted"`
}

// CartResponse represents the cart drawer
type CartResponse struct {
	Lines          []CartLineResponse `json:"lines"`
	TotalItems     int                `json:"total_items"`
	TotalPrice     int64              `json:"total_price"`
	TotalFormatted string             `json:"total_formatted"`
	CanCheckout    bool               `json:"can_checkout"`
}

// OrderFormResponse represents the order form values
type OrderFormResponse struct {
	DeliveryMode    domain.DeliveryMode `json:"delivery_mode"`
	Name            string              `json:"name"`
	Phone           string              `json:"phone"`
	Address         string              `json:"address"`
	Comment         string              `json:"comment"`
	AddressRequired bool                `json:"address_required"`
}

// OrderResponse represents the order dialog
type OrderResponse struct {
	DialogOpen bool              `json:"dialog_open"`
	DrawerOpen bool              `json:"drawer_open"`
	Form       OrderFormResponse `json:"form"`
	Cart       CartResponse      `json:"cart"`
}

// ReceiptResponse confirms a placed order
type ReceiptResponse struct {
	OrderID        string              `json:"order_id"`
	Lines          []CartLineResponse  `json:"lines"`
	TotalItems     int                 `json:"total_items"`
	TotalPrice     int64               `json:"total_price"`
	TotalFormatted string              `json:"total_formatted"`
	DeliveryMode   domain.DeliveryMode `json:"delivery_mode"`
	Customer       string              `json:"customer"`
	PlacedAt       string              `json:"placed_at"`
}

// NotificationResponse represents a toast message
type NotificationResponse struct {
	Severity  domain.Severity `json:"severity"`
	Message   string          `json:"message"`
	CreatedAt string          `json:"created_at"`
}

func newCatalogItemResponse(item domain.CatalogItem, symbol string) CatalogItemResponse {
	return CatalogItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		Price:          item.Price,
		PriceFormatted: money.Format(item.Price, symbol),
		Image:          item.Image,
		Size:           string(item.Size),
	}
}

func newLineResponses(lines []domain.LineSummary, symbol string) []CartLineResponse {
	out := make([]CartLineResponse, len(lines))
	for i, line := range lines {
		out[i] = CartLineResponse{
			ItemID:            line.ItemID,
			Name:              line.Name,
			UnitPrice:         line.UnitPrice,
			Quantity:          line.Quantity,
			Subtotal:          line.Subtotal,
			SubtotalFormatted: money.Format(line.Subtotal, symbol),
		}
	}
	return out
}

func newCartResponse(view session.CartView, symbol string) CartResponse {
	return CartResponse{
		Lines:          newLineResponses(view.Lines, symbol),
		TotalItems:     view.TotalItems,
		TotalPrice:     view.TotalPrice,
		TotalFormatted: money.Format(view.TotalPrice, symbol),
		CanCheckout:    len(view.Lines) > 0,
	}
}

func newOrderResponse(view session.OrderView, symbol string) OrderResponse {
	return OrderResponse{
		DialogOpen: view.DialogOpen,
		DrawerOpen: view.DrawerOpen,
		Form: OrderFormResponse{
			DeliveryMode:    view.Form.DeliveryMode,
			Name:            view.Form.Name,
			Phone:           view.Form.Phone,
			Address:         view.Form.Address,
			Comment:         view.Form.Comment,
			AddressRequired: view.Form.DeliveryMode.RequiresAddress(),
		},
		Cart: newCartResponse(view.Cart, symbol),
	}
}

func newReceiptResponse(r *domain.OrderReceipt, symbol string) ReceiptResponse {
	return ReceiptResponse{
		OrderID:        r.ID.String(),
		Lines:          newLineResponses(r.Lines, symbol),
		TotalItems:     r.TotalItems,
		TotalPrice:     r.TotalPrice,
		TotalFormatted: money.Format(r.TotalPrice, symbol),
		DeliveryMode:   r.Form.DeliveryMode,
		Customer:       r.Form.Name,
		PlacedAt:       r.PlacedAt.Format(time.RFC3339),
	}
}
