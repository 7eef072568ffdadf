package entity

// SharingMode controls how a user's live position is exposed to friends.
type SharingMode string

const (
	// SharingModeOff hides the user's location from everyone.
	SharingModeOff SharingMode = "off"
	// SharingModeApproximate exposes a jittered position within the user's precision radius.
	SharingModeApproximate SharingMode = "approximate"
	// SharingModeLive exposes the exact reported position.
	SharingModeLive SharingMode = "live"
)

// IsValid reports whether the mode is one of the known sharing modes.
func (m SharingMode) IsValid() bool {
	switch m {
	case SharingModeOff, SharingModeApproximate, SharingModeLive:
		return true
	default:
		return false
	}
}

// Sharing reports whether the mode exposes any location at all.
func (m SharingMode) Sharing() bool {
	return m == SharingModeApproximate || m == SharingModeLive
}
