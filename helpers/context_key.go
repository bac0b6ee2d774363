package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyInvoice is a specific key for identifying "invoice" contexts added to the http request
var ContextKeyInvoice = ContextKey("invoice")
