// Package cardform contains the credit-card entry widget.
//
// Allowed here:
// - layout of the number/expiry/cvc inputs, icon selection, focus handles
// - forwarding input events to a StateProvider
//
// Not allowed here:
// - formatting or validating card values (the provider owns that)
// - persistence or app routing
package cardform
