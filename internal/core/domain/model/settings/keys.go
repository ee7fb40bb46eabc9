package settings

// Setting keys as stored by the shop.
const (
	KeyClientID                 = "client_id"
	KeyCountry                  = "country"
	KeyClientReferenceFormat    = "client_reference_format"
	KeyService24H               = "service_24h"
	KeyExpressDeliveryService   = "express_delivery_service"
	KeyContactService           = "contact_service"
	KeyFlexibleDeliveryService  = "flexible_delivery_service"
	KeyFlexibleDeliverySMS      = "flexible_delivery_sms_service"
	KeySMSService               = "sms_service"
	KeySMSServiceText           = "sms_service_text"
	KeySMSPreAdviceService      = "sms_pre_advice_service"
	KeyAddresseeOnlyService     = "addressee_only_service"
	KeyInsuranceService         = "insurance_service"
	KeyPhoneNumber              = "phone_number"
	KeyPrintPosition            = "print_position"
	KeyTypeOfPrinter            = "type_of_printer"
	KeyContent                  = "content"
	KeySenderIdentityCardNumber = "sender_identity_card_number"

	KeyStoreName           = "store_name"
	KeyStoreAddress        = "store_address"
	KeyStoreAddress2       = "store_address_2"
	KeyStoreCity           = "store_city"
	KeyStorePostcode       = "store_postcode"
	KeyStoreDefaultCountry = "store_default_country"
	KeyAdminEmail          = "admin_email"
)

// Defaults applied when a key is absent or empty.
const (
	DefaultClientReferenceFormat = "Order:{{order_id}}"
	DefaultPrintPosition         = 1
	DefaultTypeOfPrinter         = "A4_2x2"

	// MaxSMSTextLength is the carrier's limit for the SM1 text.
	MaxSMSTextLength = 130

	enabledValue = "yes"
)
