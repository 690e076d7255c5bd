package service

import (
	"context"
	"errors"

	"github.com/dustore/pos-admin-api/internal/config"
	"github.com/dustore/pos-admin-api/internal/domain/repository"
	"github.com/dustore/pos-admin-api/pkg/apperror"
	"github.com/dustore/pos-admin-api/pkg/phone"
	"github.com/dustore/pos-admin-api/pkg/receipt"
	"github.com/dustore/pos-admin-api/pkg/whatsapp"
)

// ReceiptService derives receipt content for stored orders and projects it
// to the printable PDF and the WhatsApp dispatch link.
type ReceiptService struct {
	orderRepo repository.OrderRepository
	store     receipt.StoreInfo
}

// NewReceiptService creates a new receipt service
func NewReceiptService(orderRepo repository.OrderRepository, storeCfg *config.StoreConfig) *ReceiptService {
	return &ReceiptService{
		orderRepo: orderRepo,
		store: receipt.StoreInfo{
			Name:    storeCfg.Name,
			Address: storeCfg.Address,
			Phone:   storeCfg.Phone,
			Footer:  storeCfg.ReceiptFooter,
		},
	}
}

// BuildContent derives the canonical receipt content for an order.
func (s *ReceiptService) BuildContent(ctx context.Context, orderID int64) (*receipt.Content, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return receipt.Build(s.store, *order)
}

// RenderPDF renders the receipt document for an order and returns its
// download name (without extension) alongside the bytes.
func (s *ReceiptService) RenderPDF(ctx context.Context, orderID int64) (string, []byte, error) {
	content, err := s.BuildContent(ctx, orderID)
	if err != nil {
		return "", nil, err
	}
	data, err := receipt.RenderPDF(content)
	if err != nil {
		return "", nil, err
	}
	return receipt.DocumentName(content), data, nil
}

// Dispatch is a prepared WhatsApp notification: the caller opens Link, this
// service never contacts the messaging endpoint itself.
type Dispatch struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

// ComposeWhatsApp validates the destination number and builds the message
// and deep link for an order. Phone validation happens first: nothing is
// composed for an undialable destination.
func (s *ReceiptService) ComposeWhatsApp(ctx context.Context, orderID int64, rawPhone, nameOverride string) (*Dispatch, error) {
	normalized, err := phone.Normalize(rawPhone)
	if err != nil {
		if errors.Is(err, phone.ErrInvalidPhone) {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "phone", Message: "Phone number must contain digits"},
			})
		}
		return nil, err
	}

	content, err := s.BuildContent(ctx, orderID)
	if err != nil {
		return nil, err
	}

	message := whatsapp.ComposeMessage(content, nameOverride)
	link, err := whatsapp.BuildLink(rawPhone, message)
	if err != nil {
		return nil, err
	}

	return &Dispatch{
		Phone:   normalized,
		Message: message,
		Link:    link,
	}, nil
}

// WhatsAppQR renders the dispatch link for an order as a PNG QR code.
func (s *ReceiptService) WhatsAppQR(ctx context.Context, orderID int64, rawPhone, nameOverride string, size int) ([]byte, error) {
	dispatch, err := s.ComposeWhatsApp(ctx, orderID, rawPhone, nameOverride)
	if err != nil {
		return nil, err
	}
	png, err := whatsapp.LinkQR(dispatch.Link, size)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to render QR code")
	}
	return png, nil
}
