package services

import (
	"errors"

	"parcellabel/internal/core/domain/model/eligibility"
	"parcellabel/internal/core/domain/model/kernel"
	"parcellabel/internal/core/domain/model/order"
	"parcellabel/internal/core/domain/model/settings"
	"parcellabel/internal/core/domain/model/shipment"

	"github.com/samber/lo"
)

// ErrMissingPickupInfo is returned when a locker or shop delivery has no
// pickup point selected.
var ErrMissingPickupInfo = errors.New("missing pickup info: no parcel locker or shop selected")

// ExpressLookup answers whether an express window is offered for a postcode.
type ExpressLookup interface {
	Supports(country, zipcode string, window settings.ExpressWindow) bool
}

// ServiceListComposer decides the optional carrier services of an order.
//
// Rules are evaluated in a fixed order against an immutable composeContext.
// Whether an express window was selected is computed once, up front, so the
// flexible delivery rules read it as a plain value.
//
// Guarantees on the composed list:
//   - every code appears at most once
//   - FDS and FSS never appear together with an express code
//   - FSS never appears without FDS
type ServiceListComposer struct {
	express ExpressLookup
}

// NewServiceListComposer creates a composer. A nil lookup disables express services.
func NewServiceListComposer(express ExpressLookup) ServiceListComposer {
	return ServiceListComposer{express: express}
}

type composeContext struct {
	settings    settings.MerchantSettings
	order       *order.Order
	destination kernel.CountryCode
	billing     order.Contact

	// pickupDelivery is true for locker and shop methods
	pickupDelivery bool

	// express is the selected window code, empty when none applies
	express shipment.ServiceCode
}

func (c composeContext) expressSelected() bool {
	return c.express.IsExpress()
}

type rule func(c composeContext) (shipment.ServiceEntry, bool)

var rules = []rule{
	parcelShopRule,
	guaranteed24HRule,
	expressRule,
	contactServiceRule,
	flexibleDeliveryRule,
	flexibleDeliverySMSRule,
	smsServiceRule,
	smsPreAdviceRule,
	addresseeOnlyRule,
	insuranceRule,
}

// Compose returns the service list for o under ms.
//
// Returns:
//   - []shipment.ServiceEntry: never nil, possibly empty
//   - error: ErrMissingPickupInfo for a pickup method without selection, or an
//     order validation error
func (s ServiceListComposer) Compose(ms settings.MerchantSettings, o *order.Order) ([]shipment.ServiceEntry, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	c := composeContext{
		settings:       ms,
		order:          o,
		destination:    o.Shipping().Country,
		billing:        o.Billing(),
		pickupDelivery: o.IsPickupDelivery(),
	}

	if c.pickupDelivery {
		if p := o.Pickup(); p == nil || p.ID == "" {
			return nil, ErrMissingPickupInfo
		}
	}

	c.express = s.selectExpress(c)

	return lo.FilterMap(rules, func(r rule, _ int) (shipment.ServiceEntry, bool) {
		return r(c)
	}), nil
}

func (s ServiceListComposer) selectExpress(c composeContext) shipment.ServiceCode {
	window := c.settings.ExpressDelivery
	if c.pickupDelivery || !window.IsEnabled() || s.express == nil {
		return ""
	}
	if !s.express.Supports(string(c.settings.Country), c.order.Shipping().Postcode, window) {
		return ""
	}
	return shipment.ServiceCode(window)
}

func parcelShopRule(c composeContext) (shipment.ServiceEntry, bool) {
	if !c.pickupDelivery {
		return shipment.ServiceEntry{}, false
	}
	return shipment.NewServiceEntryWith(shipment.ParcelShopDelivery, shipment.TextParameter(c.order.Pickup().ID)), true
}

// 24H is not offered for deliveries into Serbia.
func guaranteed24HRule(c composeContext) (shipment.ServiceEntry, bool) {
	if !c.settings.Service24H || c.destination == kernel.Serbia {
		return shipment.ServiceEntry{}, false
	}
	return shipment.NewServiceEntry(shipment.Guaranteed24H), true
}

func expressRule(c composeContext) (shipment.ServiceEntry, bool) {
	if !c.expressSelected() {
		return shipment.ServiceEntry{}, false
	}
	return shipment.NewServiceEntry(c.express), true
}

func contactServiceRule(c composeContext) (shipment.ServiceEntry, bool) {
	if c.pickupDelivery || !c.settings.ContactService {
		return shipment.ServiceEntry{}, false
	}
	return shipment.NewServiceEntryWith(shipment.ContactService, shipment.TextParameter(c.billing.Phone)), true
}

func flexibleDeliveryRule(c composeContext) (shipment.ServiceEntry, bool) {
	if c.pickupDelivery || !c.settings.FlexibleDelivery || c.expressSelected() {
		return shipment.ServiceEntry{}, false
	}
	return shipment.NewServiceEntryWith(shipment.FlexibleDelivery, shipment.TextParameter(c.billing.Email)), true
}

// FSS rides on FDS, so it shares every FDS precondition.
func flexibleDeliverySMSRule(c composeContext) (shipment.ServiceEntry, bool) {
	if c.pickupDelivery || !c.settings.FlexibleDelivery || !c.settings.FlexibleDeliverySMS || c.expressSelected() {
		return shipment.ServiceEntry{}, false
	}
	return shipment.NewServiceEntryWith(shipment.FlexibleDeliverySMS, shipment.TextParameter(c.billing.Phone)), true
}

func smsServiceRule(c composeContext) (shipment.ServiceEntry, bool) {
	if !c.settings.SMSService {
		return shipment.ServiceEntry{}, false
	}
	value := c.billing.Phone + "|" + c.settings.SMSText
	return shipment.NewServiceEntryWith(shipment.SMSService, shipment.TextParameter(value)), true
}

func smsPreAdviceRule(c composeContext) (shipment.ServiceEntry, bool) {
	if !c.settings.SMSPreAdvice {
		return shipment.ServiceEntry{}, false
	}
	return shipment.NewServiceEntryWith(shipment.SMSPreAdvice, shipment.TextParameter(c.billing.Phone)), true
}

func addresseeOnlyRule(c composeContext) (shipment.ServiceEntry, bool) {
	if c.pickupDelivery || !c.settings.AddresseeOnly {
		return shipment.ServiceEntry{}, false
	}
	name := c.order.Shipping().FullName()
	return shipment.NewServiceEntryWith(shipment.AddresseeOnly, shipment.TextParameter(name)), true
}

func insuranceRule(c composeContext) (shipment.ServiceEntry, bool) {
	if !c.settings.Insurance {
		return shipment.ServiceEntry{}, false
	}

	origin := c.settings.Country
	limits, ok := eligibility.InsuranceLimits(eligibility.InsuranceTypeFor(origin, c.destination), origin)
	if !ok {
		return shipment.ServiceEntry{}, false
	}

	total := c.order.Total()
	if !limits.Allows(total) {
		return shipment.ServiceEntry{}, false
	}
	return shipment.NewServiceEntryWith(shipment.InsuranceService, shipment.AmountParameter(total)), true
}
