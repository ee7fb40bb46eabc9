package shipment

import (
	"bytes"

	"parcellabel/internal/core/domain/model/kernel"

	"github.com/goccy/go-json"
)

// ServiceCode identifies an optional carrier service.
type ServiceCode string

const (
	ParcelShopDelivery  ServiceCode = "PSD"
	Guaranteed24H       ServiceCode = "24H"
	ExpressT09          ServiceCode = "T09"
	ExpressT10          ServiceCode = "T10"
	ExpressT12          ServiceCode = "T12"
	ContactService      ServiceCode = "CS1"
	FlexibleDelivery    ServiceCode = "FDS"
	FlexibleDeliverySMS ServiceCode = "FSS"
	SMSService          ServiceCode = "SM1"
	SMSPreAdvice        ServiceCode = "SM2"
	AddresseeOnly       ServiceCode = "AOS"
	InsuranceService    ServiceCode = "INS"
)

// IsExpress reports whether c is one of the delivery-by time windows.
func (c ServiceCode) IsExpress() bool {
	return c == ExpressT09 || c == ExpressT10 || c == ExpressT12
}

type parameterKind int

const (
	noParameter parameterKind = iota
	textParameter
	amountParameter
)

// Parameter is the optional typed value of a service entry.
type Parameter struct {
	kind   parameterKind
	text   string
	amount kernel.Amount
}

// TextParameter carries a string value such as a phone number.
func TextParameter(s string) Parameter {
	return Parameter{kind: textParameter, text: s}
}

// AmountParameter carries a numeric value such as the insured amount.
func AmountParameter(a kernel.Amount) Parameter {
	return Parameter{kind: amountParameter, amount: a}
}

func (p Parameter) IsSet() bool {
	return p.kind != noParameter
}

// Text returns the string value; empty for amount parameters.
func (p Parameter) Text() string {
	return p.text
}

// Amount returns the numeric value and whether the parameter is numeric.
func (p Parameter) Amount() (kernel.Amount, bool) {
	return p.amount, p.kind == amountParameter
}

// ServiceEntry is one element of the carrier's ServiceList.
type ServiceEntry struct {
	Code  ServiceCode
	Param Parameter
}

// NewServiceEntry returns an entry without parameter.
func NewServiceEntry(code ServiceCode) ServiceEntry {
	return ServiceEntry{Code: code}
}

// NewServiceEntryWith returns an entry carrying param.
func NewServiceEntryWith(code ServiceCode, param Parameter) ServiceEntry {
	return ServiceEntry{Code: code, Param: param}
}

// MarshalJSON renders {"Code":"CS1","CS1Parameter":{"Value":...}}. The parcel
// shop id is the one parameter the carrier names StringValue.
func (e ServiceEntry) MarshalJSON() ([]byte, error) {
	code, err := json.Marshal(string(e.Code))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`{"Code":`)
	buf.Write(code)

	if e.Param.IsSet() {
		valueKey := "Value"
		if e.Code == ParcelShopDelivery {
			valueKey = "StringValue"
		}

		var value []byte
		if amount, ok := e.Param.Amount(); ok {
			value, err = json.Marshal(amount)
		} else {
			value, err = json.Marshal(e.Param.Text())
		}
		if err != nil {
			return nil, err
		}

		buf.WriteString(`,"` + string(e.Code) + `Parameter":{"` + valueKey + `":`)
		buf.Write(value)
		buf.WriteString(`}`)
	}

	buf.WriteString(`}`)
	return buf.Bytes(), nil
}
