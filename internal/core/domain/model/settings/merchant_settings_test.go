package settings_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"parcellabel/internal/core/domain/model/kernel"
	"parcellabel/internal/core/domain/model/settings"
	"parcellabel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSource map[string]string

func (m mapSource) GetSetting(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

type failingSource struct{ err error }

func (f failingSource) GetSetting(context.Context, string) (string, bool, error) {
	return "", false, f.err
}

func baseSettings() mapSource {
	return mapSource{
		settings.KeyClientID:               "100000001",
		settings.KeyCountry:                "HR",
		settings.KeyStoreName:              "Webshop d.o.o.",
		settings.KeyStoreAddress:           "Savska 5",
		settings.KeyStoreCity:              "Zagreb",
		settings.KeyStorePostcode:          "10000",
		settings.KeyStoreDefaultCountry:    "HR:ZG",
		settings.KeyAdminEmail:             "admin@example.com",
		settings.KeyPhoneNumber:            "+38511111111",
		settings.KeyService24H:             "yes",
		settings.KeyContactService:         "no",
		settings.KeyExpressDeliveryService: "T10",
	}
}

func TestLoad(t *testing.T) {
	t.Run("should apply defaults for absent keys", func(t *testing.T) {
		s, err := settings.Load(t.Context(), baseSettings())

		require.NoError(t, err)
		assert.Equal(t, int64(100000001), s.ClientID)
		assert.Equal(t, kernel.Croatia, s.Country)
		assert.Equal(t, settings.DefaultClientReferenceFormat, s.ClientReferenceFormat)
		assert.Equal(t, settings.DefaultPrintPosition, s.PrintPosition)
		assert.Equal(t, settings.DefaultTypeOfPrinter, s.PrinterType)
		assert.Equal(t, settings.ExpressT10, s.ExpressDelivery)
		assert.True(t, s.Service24H)
		assert.False(t, s.ContactService)
		assert.False(t, s.Insurance)
		assert.Equal(t, kernel.Croatia, s.Store.Country)
		assert.Equal(t, "Savska 5", s.Store.Address1)
	})

	t.Run("should treat empty values as absent", func(t *testing.T) {
		src := baseSettings()
		src[settings.KeyPrintPosition] = ""
		src[settings.KeyTypeOfPrinter] = "  "

		s, err := settings.Load(t.Context(), src)

		require.NoError(t, err)
		assert.Equal(t, 1, s.PrintPosition)
		assert.Equal(t, "A4_2x2", s.PrinterType)
	})

	t.Run("should fall back to the first print position below 1", func(t *testing.T) {
		for _, raw := range []string{"0", "-3"} {
			src := baseSettings()
			src[settings.KeyPrintPosition] = raw

			s, err := settings.Load(t.Context(), src)

			require.NoError(t, err, raw)
			assert.Equal(t, settings.DefaultPrintPosition, s.PrintPosition, raw)
		}
	})

	t.Run("should only enable toggles set to yes", func(t *testing.T) {
		src := baseSettings()
		src[settings.KeyInsuranceService] = "Yes"
		src[settings.KeySMSService] = "yes"

		s, err := settings.Load(t.Context(), src)

		require.NoError(t, err)
		assert.False(t, s.Insurance)
		assert.True(t, s.SMSService)
	})

	t.Run("should reject sms text over the carrier limit", func(t *testing.T) {
		src := baseSettings()
		src[settings.KeySMSServiceText] = strings.Repeat("a", settings.MaxSMSTextLength+1)

		_, err := settings.Load(t.Context(), src)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "SMSText")
	})

	t.Run("should accept sms text at the carrier limit", func(t *testing.T) {
		src := baseSettings()
		src[settings.KeySMSServiceText] = strings.Repeat("a", settings.MaxSMSTextLength)

		_, err := settings.Load(t.Context(), src)

		require.NoError(t, err)
	})

	t.Run("should reject unsupported country and unknown express window", func(t *testing.T) {
		src := baseSettings()
		src[settings.KeyCountry] = "DE"
		src[settings.KeyExpressDeliveryService] = "T08"

		_, err := settings.Load(t.Context(), src)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Country")
		assert.Contains(t, err.Error(), "ExpressDelivery")
	})

	t.Run("should reject missing or malformed client id", func(t *testing.T) {
		src := baseSettings()
		delete(src, settings.KeyClientID)
		_, err := settings.Load(t.Context(), src)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ClientID")

		src[settings.KeyClientID] = "abc"
		_, err = settings.Load(t.Context(), src)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), settings.KeyClientID)
	})

	t.Run("should reject malformed admin email", func(t *testing.T) {
		src := baseSettings()
		src[settings.KeyAdminEmail] = "not-an-email"

		_, err := settings.Load(t.Context(), src)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "AdminEmail")
	})

	t.Run("should surface store read errors", func(t *testing.T) {
		readErr := errors.New("connection refused")

		_, err := settings.Load(t.Context(), failingSource{err: readErr})

		require.ErrorIs(t, err, readErr)
	})
}

func TestExpressWindow_IsEnabled(t *testing.T) {
	assert.False(t, settings.ExpressDisabled.IsEnabled())
	assert.True(t, settings.ExpressT09.IsEnabled())
}
