package entity

const (
	// RoleUser is the default role for provisioned accounts.
	RoleUser = "user"

	// RoleAdmin is reserved for administrative accounts.
	RoleAdmin = "admin"
)

// DeliveryMode describes how a one-time passcode reached the caller.
type DeliveryMode int16

const (
	// DeliveryUnknown is mean delivery mode is not known / not set.
	DeliveryUnknown DeliveryMode = 0

	// DeliverySent mean the code was handed to the SMS provider.
	DeliverySent DeliveryMode = 1

	// DeliveryFallback mean no provider is configured (or it failed) and the
	// code is disclosed in the API response instead.
	DeliveryFallback DeliveryMode = 2
)

func (dm DeliveryMode) String() string {
	switch dm {
	case DeliverySent:
		return "Sent"
	case DeliveryFallback:
		return "Fallback"
	default:
		return "Unknown"
	}
}
