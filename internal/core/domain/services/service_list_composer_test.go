package services_test

import (
	"testing"

	"parcellabel/internal/core/domain/model/kernel"
	"parcellabel/internal/core/domain/model/order"
	"parcellabel/internal/core/domain/model/settings"
	"parcellabel/internal/core/domain/model/shipment"
	"parcellabel/internal/core/domain/services"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var locker = &order.PickupSelection{ID: "HR-LOCK-1", Name: "Locker Ilica"}

func TestServiceListComposer_Compose(t *testing.T) {
	t.Run("24H and contact service for a plain address delivery", func(t *testing.T) {
		ms := baseSettings()
		ms.Service24H = true
		ms.ContactService = true
		composer := services.NewServiceListComposer(newExpressStub())

		got, err := composer.Compose(ms, newTestOrder())

		require.NoError(t, err)
		assert.ElementsMatch(t, []shipment.ServiceCode{shipment.Guaranteed24H, shipment.ContactService}, codes(got))
		cs1, _ := find(got, shipment.ContactService)
		assert.Equal(t, "+385911234567", cs1.Param.Text())
	})

	t.Run("a non-carrier shipping method is an address delivery", func(t *testing.T) {
		ms := baseSettings()
		ms.ContactService = true
		ms.AddresseeOnly = true
		o := newTestOrder(withMethod("flat_rate", locker))

		got, err := services.NewServiceListComposer(nil).Compose(ms, o)

		require.NoError(t, err)
		assert.ElementsMatch(t, []shipment.ServiceCode{shipment.ContactService, shipment.AddresseeOnly}, codes(got))
	})

	t.Run("nothing enabled yields an empty non-nil list", func(t *testing.T) {
		got, err := services.NewServiceListComposer(nil).Compose(baseSettings(), newTestOrder())

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("locker delivery without selection fails", func(t *testing.T) {
		o := newTestOrder(withMethod(order.ParcelLockerDelivery, nil))

		got, err := services.NewServiceListComposer(nil).Compose(baseSettings(), o)

		require.ErrorIs(t, err, services.ErrMissingPickupInfo)
		assert.Nil(t, got)
	})

	t.Run("shop delivery with an empty pickup id fails", func(t *testing.T) {
		o := newTestOrder(withMethod(order.ParcelShopDelivery, &order.PickupSelection{Name: "Shop"}))

		_, err := services.NewServiceListComposer(nil).Compose(baseSettings(), o)

		require.ErrorIs(t, err, services.ErrMissingPickupInfo)
	})

	t.Run("locker delivery emits PSD and suppresses address-only services", func(t *testing.T) {
		ms := baseSettings()
		ms.ContactService = true
		ms.FlexibleDelivery = true
		ms.FlexibleDeliverySMS = true
		ms.AddresseeOnly = true
		ms.SMSPreAdvice = true
		ms.ExpressDelivery = settings.ExpressT09
		lookup := newExpressStub("HR/10000/T09")
		o := newTestOrder(withMethod(order.ParcelLockerDelivery, locker))

		got, err := services.NewServiceListComposer(lookup).Compose(ms, o)

		require.NoError(t, err)
		assert.ElementsMatch(t, []shipment.ServiceCode{shipment.ParcelShopDelivery, shipment.SMSPreAdvice}, codes(got))
		psd, _ := find(got, shipment.ParcelShopDelivery)
		assert.Equal(t, "HR-LOCK-1", psd.Param.Text())
		assert.Zero(t, lookup.calls)
	})

	t.Run("address delivery ignores a stale pickup selection", func(t *testing.T) {
		o := newTestOrder(withMethod(order.AddressDelivery, locker))

		got, err := services.NewServiceListComposer(nil).Compose(baseSettings(), o)

		require.NoError(t, err)
		assert.NotContains(t, codes(got), shipment.ParcelShopDelivery)
	})

	t.Run("24H is never offered into Serbia", func(t *testing.T) {
		ms := baseSettings()
		ms.Service24H = true

		got, err := services.NewServiceListComposer(nil).Compose(ms, newTestOrder(withCountry(kernel.Serbia)))

		require.NoError(t, err)
		assert.NotContains(t, codes(got), shipment.Guaranteed24H)
	})

	t.Run("express looks up origin country and destination postcode", func(t *testing.T) {
		ms := baseSettings()
		ms.ExpressDelivery = settings.ExpressT10
		ms.FlexibleDelivery = true
		ms.FlexibleDeliverySMS = true
		lookup := newExpressStub("HR/21000/T10")

		got, err := services.NewServiceListComposer(lookup).Compose(ms, newTestOrder(withPostcode("21000")))

		require.NoError(t, err)
		assert.Equal(t, []shipment.ServiceCode{shipment.ExpressT10}, codes(got))
	})

	t.Run("ineligible express falls back to flexible delivery", func(t *testing.T) {
		ms := baseSettings()
		ms.ExpressDelivery = settings.ExpressT10
		ms.FlexibleDelivery = true
		ms.FlexibleDeliverySMS = true
		lookup := newExpressStub("HR/21000/T12")

		got, err := services.NewServiceListComposer(lookup).Compose(ms, newTestOrder(withPostcode("21000")))

		require.NoError(t, err)
		assert.Equal(t, []shipment.ServiceCode{shipment.FlexibleDelivery, shipment.FlexibleDeliverySMS}, codes(got))
		fds, _ := find(got, shipment.FlexibleDelivery)
		assert.Equal(t, "ana@example.com", fds.Param.Text())
		fss, _ := find(got, shipment.FlexibleDeliverySMS)
		assert.Equal(t, "+385911234567", fss.Param.Text())
	})

	t.Run("FSS without FDS is not emitted", func(t *testing.T) {
		ms := baseSettings()
		ms.FlexibleDeliverySMS = true

		got, err := services.NewServiceListComposer(nil).Compose(ms, newTestOrder())

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("SMS, pre-advice and addressee-only parameters", func(t *testing.T) {
		ms := baseSettings()
		ms.SMSService = true
		ms.SMSPreAdvice = true
		ms.AddresseeOnly = true

		got, err := services.NewServiceListComposer(nil).Compose(ms, newTestOrder(withCompany("ACME d.o.o.")))

		require.NoError(t, err)
		sm1, _ := find(got, shipment.SMSService)
		assert.Equal(t, "+385911234567|Your parcel is on its way", sm1.Param.Text())
		sm2, _ := find(got, shipment.SMSPreAdvice)
		assert.Equal(t, "+385911234567", sm2.Param.Text())
		aos, _ := find(got, shipment.AddresseeOnly)
		assert.Equal(t, "Ana Horvat", aos.Param.Text())
	})

	t.Run("invalid order is rejected", func(t *testing.T) {
		_, err := services.NewServiceListComposer(nil).Compose(baseSettings(), &order.Order{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestServiceListComposer_Insurance(t *testing.T) {
	tests := []struct {
		name        string
		origin      kernel.CountryCode
		destination kernel.CountryCode
		total       string
		want        bool
	}{
		{"domestic lower bound", kernel.Croatia, kernel.Croatia, "165.9", true},
		{"domestic upper bound", kernel.Croatia, kernel.Croatia, "1659.04", true},
		{"domestic below lower bound", kernel.Croatia, kernel.Croatia, "165.89", false},
		{"domestic above upper bound", kernel.Croatia, kernel.Croatia, "1659.05", false},
		{"export uses the origin row", kernel.Croatia, kernel.Slovenia, "663.61", true},
		{"export above upper bound", kernel.Croatia, kernel.Slovenia, "663.62", false},
		{"export lower bound differs from domestic", kernel.Croatia, kernel.Slovenia, "165.9", false},
		{"serbian export has no row", kernel.Serbia, kernel.Hungary, "50000", false},
		{"serbian domestic", kernel.Serbia, kernel.Serbia, "40000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := baseSettings()
			ms.Country = tt.origin
			ms.Insurance = true

			got, err := services.NewServiceListComposer(nil).Compose(ms, newTestOrder(withCountry(tt.destination), withTotal(tt.total)))

			require.NoError(t, err)
			ins, ok := find(got, shipment.InsuranceService)
			require.Equal(t, tt.want, ok)
			if ok {
				amount, numeric := ins.Param.Amount()
				require.True(t, numeric)
				assert.True(t, amount.Decimal().Equal(kernel.MustAmount(tt.total).Decimal()))
			}
		})
	}

	t.Run("disabled insurance is never emitted", func(t *testing.T) {
		got, err := services.NewServiceListComposer(nil).Compose(baseSettings(), newTestOrder(withTotal("500")))

		require.NoError(t, err)
		assert.NotContains(t, codes(got), shipment.InsuranceService)
	})
}

// TestServiceListComposer_Invariants walks every combination of toggles,
// express window, shipping method and express eligibility.
func TestServiceListComposer_Invariants(t *testing.T) {
	windows := []settings.ExpressWindow{
		settings.ExpressDisabled, settings.ExpressT09, settings.ExpressT10, settings.ExpressT12,
	}
	methods := []order.ShippingMethod{
		order.AddressDelivery, order.ParcelLockerDelivery, order.ParcelShopDelivery,
	}
	expressCodes := []shipment.ServiceCode{shipment.ExpressT09, shipment.ExpressT10, shipment.ExpressT12}

	for mask := 0; mask < 1<<8; mask++ {
		for _, window := range windows {
			for _, method := range methods {
				for _, eligible := range []bool{false, true} {
					ms := baseSettings()
					ms.Service24H = mask&1 != 0
					ms.ContactService = mask&2 != 0
					ms.FlexibleDelivery = mask&4 != 0
					ms.FlexibleDeliverySMS = mask&8 != 0
					ms.SMSService = mask&16 != 0
					ms.SMSPreAdvice = mask&32 != 0
					ms.AddresseeOnly = mask&64 != 0
					ms.Insurance = mask&128 != 0
					ms.ExpressDelivery = window

					lookup := newExpressStub()
					if eligible {
						lookup = newExpressStub("HR/10000/" + string(window))
					}

					got, err := services.NewServiceListComposer(lookup).Compose(ms, newTestOrder(withMethod(method, locker)))
					require.NoError(t, err)

					list := codes(got)
					hasExpress := lo.Some(list, expressCodes)
					wantExpress := window.IsEnabled() && eligible && !method.RequiresPickup()

					require.Len(t, lo.Uniq(list), len(list), "duplicate codes in %v", list)
					require.Equal(t, wantExpress, hasExpress, "express presence in %v", list)
					if hasExpress {
						require.NotContains(t, list, shipment.FlexibleDelivery)
						require.NotContains(t, list, shipment.FlexibleDeliverySMS)
					}
					if lo.Contains(list, shipment.FlexibleDeliverySMS) {
						require.Contains(t, list, shipment.FlexibleDelivery)
					}
					require.Equal(t, method.RequiresPickup(), lo.Contains(list, shipment.ParcelShopDelivery))
				}
			}
		}
	}
}
