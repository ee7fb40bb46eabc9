package glsapi

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"

	"parcellabel/internal/core/domain/model/shipment"

	"github.com/goccy/go-json"
)

// printLabelsRequest is the body of a PrintLabels call.
type printLabelsRequest struct {
	Username      string    `json:"Username"`
	Password      byteArray `json:"Password"`
	WebshopEngine string    `json:"WebshopEngine"`

	shipment.ShipmentRequest
}

type printLabelsResponse struct {
	Labels               byteArray    `json:"Labels"`
	PrintLabelsErrorList []labelError `json:"PrintLabelsErrorList"`
	PrintLabelsInfoList  []labelInfo  `json:"PrintLabelsInfoList"`
}

type labelError struct {
	ErrorCode           flexString   `json:"ErrorCode"`
	ErrorDescription    string       `json:"ErrorDescription"`
	ClientReferenceList []flexString `json:"ClientReferenceList"`
}

type labelInfo struct {
	ClientReference flexString `json:"ClientReference"`
	ParcelID        flexString `json:"ParcelId"`
	ParcelNumber    flexString `json:"ParcelNumber"`
}

// byteArray is binary data the carrier encodes as an array of byte values.
// A base64 string is accepted on decode as well.
type byteArray []byte

func (b byteArray) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(b)*4 + 2)
	buf.WriteByte('[')
	for i, v := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(int(v)))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (b *byteArray) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*b = nil
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return err
		}
		*b = decoded
		return nil
	default:
		var values []int
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		out := make([]byte, len(values))
		for i, v := range values {
			if v < 0 || v > 255 {
				return fmt.Errorf("byte value %d at index %d is out of range", v, i)
			}
			out[i] = byte(v)
		}
		*b = out
		return nil
	}
}

// flexString accepts a JSON string or number and keeps its text.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	default:
		*f = flexString(data)
		return nil
	}
}

func (r printLabelsResponse) toDomain() shipment.CarrierResponse {
	resp := shipment.CarrierResponse{Labels: []byte(r.Labels)}
	for _, info := range r.PrintLabelsInfoList {
		resp.Tracking = append(resp.Tracking, shipment.TrackingEntry{
			ParcelNumber: string(info.ParcelNumber),
			ParcelID:     string(info.ParcelID),
		})
	}
	return resp
}
