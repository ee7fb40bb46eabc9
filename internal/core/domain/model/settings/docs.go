// Package settings turns the merchant's key/value configuration into a typed,
// validated MerchantSettings snapshot. The snapshot is loaded once per label
// request and never mutated afterwards.
package settings
