// Package otp provides helpers for generating one-time passcodes.
//
// Codes are short-lived random numeric strings delivered out of band (SMS)
// and verified against a stored hash.
package otp
