// internal/decode/address.go
package decode

// ToDisplay maps a protocol (wire, always 0-based) register index to
// the user-facing display address.
func ToDisplay(protocolAddr int, zeroBased bool) int {
	if zeroBased {
		return protocolAddr
	}
	return protocolAddr + 1
}

// ToProtocol maps a user-entered display address back to the
// protocol address. Inverse of ToDisplay for the same mode.
func ToProtocol(userAddr int, zeroBased bool) int {
	if zeroBased {
		return userAddr
	}
	return userAddr - 1
}
