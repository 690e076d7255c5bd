package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dustore/pos-admin-api/internal/application/service"
	"github.com/dustore/pos-admin-api/internal/config"
	"github.com/dustore/pos-admin-api/pkg/apperror"
)

func testStoreConfig() *config.StoreConfig {
	return &config.StoreConfig{
		Name:          "DuStore",
		Address:       "Jl. Contoh Raya No. 123, Jakarta",
		Phone:         "Telp: 0812-3456-7890",
		ReceiptFooter: "Terima kasih atas kunjungan Anda!",
	}
}

func TestReceiptService_BuildContent(t *testing.T) {
	svc := service.NewReceiptService(&fakeOrderRepo{orders: testOrders()}, testStoreConfig())

	content, err := svc.BuildContent(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "001", content.OrderNo)
	assert.Equal(t, "Sari", content.Customer)
	assert.Equal(t, int64(45000), content.Total)
	assert.Equal(t, "DuStore", content.Store.Name)
	require.Len(t, content.Lines, 2)
}

func TestReceiptService_BuildContentNotFound(t *testing.T) {
	svc := service.NewReceiptService(&fakeOrderRepo{}, testStoreConfig())

	_, err := svc.BuildContent(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestReceiptService_RenderPDF(t *testing.T) {
	svc := service.NewReceiptService(&fakeOrderRepo{orders: testOrders()}, testStoreConfig())

	name, data, err := svc.RenderPDF(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Struk_001", name)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestReceiptService_ComposeWhatsApp(t *testing.T) {
	svc := service.NewReceiptService(&fakeOrderRepo{orders: testOrders()}, testStoreConfig())

	dispatch, err := svc.ComposeWhatsApp(context.Background(), 1, "0812-345-6789", "")
	require.NoError(t, err)

	assert.Equal(t, "628123456789", dispatch.Phone)
	assert.True(t, strings.HasPrefix(dispatch.Message, "Halo Sari,"))
	assert.Contains(t, dispatch.Message, "- 2x Es Teh (@ Rp 5.000)")
	assert.Contains(t, dispatch.Message, "- Ayam Bakar (Rp 35.000)")
	assert.Contains(t, dispatch.Message, "Total: Rp 45.000")
	assert.True(t, strings.HasPrefix(dispatch.Link, "https://wa.me/628123456789?text="))
}

func TestReceiptService_ComposeWhatsAppNameOverride(t *testing.T) {
	svc := service.NewReceiptService(&fakeOrderRepo{orders: testOrders()}, testStoreConfig())

	dispatch, err := svc.ComposeWhatsApp(context.Background(), 1, "08123456789", "Ibu Sari")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dispatch.Message, "Halo Ibu Sari,"))
}

func TestReceiptService_ComposeWhatsAppInvalidPhone(t *testing.T) {
	svc := service.NewReceiptService(&fakeOrderRepo{orders: testOrders()}, testStoreConfig())

	// Validation must block before any content is composed, even for an
	// order that does not exist.
	_, err := svc.ComposeWhatsApp(context.Background(), 999, "not-a-number", "")
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "phone", appErr.Errors[0].Field)
}

func TestReceiptService_WhatsAppQR(t *testing.T) {
	svc := service.NewReceiptService(&fakeOrderRepo{orders: testOrders()}, testStoreConfig())

	png, err := svc.WhatsAppQR(context.Background(), 1, "08123456789", "", 256)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}
