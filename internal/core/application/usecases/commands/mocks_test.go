package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"parcellabel/internal/core/domain/model/kernel"
	"parcellabel/internal/core/domain/model/order"
	"parcellabel/internal/core/domain/model/settings"
	"parcellabel/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/mock"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderStore) SaveLabel(ctx context.Context, id int64, label shipment.LabelArtifact) error {
	args := m.Called(ctx, id, label)
	return args.Error(0)
}

func (m *MockOrderStore) SaveTracking(ctx context.Context, id int64, tracking shipment.TrackingRecord) error {
	args := m.Called(ctx, id, tracking)
	return args.Error(0)
}

type MockCarrierClient struct{ mock.Mock }

func (m *MockCarrierClient) Submit(ctx context.Context, req shipment.ShipmentRequest) (shipment.CarrierResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(shipment.CarrierResponse), args.Error(1)
}

type MockBlobStore struct{ mock.Mock }

func (m *MockBlobStore) Write(ctx context.Context, name string, data []byte) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}

type MockSubmissionLog struct{ mock.Mock }

func (m *MockSubmissionLog) Append(ctx context.Context, run *shipment.Run, finishedAt time.Time) error {
	args := m.Called(ctx, run, finishedAt)
	return args.Error(0)
}

type mapSettings map[string]string

func (m mapSettings) GetSetting(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func validSettings() mapSettings {
	return mapSettings{
		settings.KeyClientID:            "100000001",
		settings.KeyCountry:             "HR",
		settings.KeyContactService:      "yes",
		settings.KeyStoreName:           "Demo Shop",
		settings.KeyStoreAddress:        "Vukovarska 1",
		settings.KeyStoreCity:           "Zagreb",
		settings.KeyStorePostcode:       "10000",
		settings.KeyStoreDefaultCountry: "HR",
		settings.KeyAdminEmail:          "shop@example.com",
		settings.KeyPhoneNumber:         "+38512345678",
	}
}

// memoryLock mirrors the in-process adapter without importing it.
type memoryLock struct {
	mu   sync.Mutex
	held map[int64]bool
}

func newMemoryLock() *memoryLock {
	return &memoryLock{held: map[int64]bool{}}
}

func (l *memoryLock) TryLock(orderID int64) (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[orderID] {
		return nil, false
	}
	l.held[orderID] = true
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, orderID)
	}, true
}

func (l *memoryLock) isHeld(orderID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held[orderID]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testOrder(method order.ShippingMethod, pickup *order.PickupSelection) *order.Order {
	o, err := order.NewOrder(
		42,
		order.Address{
			FirstName: "Ana",
			LastName:  "Horvat",
			Address1:  "Ilica 10",
			City:      "Zagreb",
			Postcode:  "10000",
			Country:   kernel.Croatia,
		},
		order.Contact{Phone: "+385911234567", Email: "ana@example.com"},
		kernel.MustAmount("250.00"),
		"bacs",
		method,
		pickup,
	)
	if err != nil {
		panic(err)
	}
	return o
}

var (
	shipmentLabel = shipment.LabelArtifact{
		OrderID:  42,
		FileName: "shipping_label_42.pdf",
		URL:      "https://shop.example.com/labels/shipping_label_42.pdf",
	}
	shipmentTracking = shipment.TrackingRecord{OrderID: 42, TrackingCode: "1000123456", ParcelID: "987"}
)

// liveContext matches a context that has not been canceled.
var liveContext = mock.MatchedBy(func(ctx context.Context) bool {
	return ctx != nil && ctx.Err() == nil
})

func runInState(state shipment.State) any {
	return mock.MatchedBy(func(run *shipment.Run) bool {
		return run.State() == state && run.OrderID() == 42
	})
}
