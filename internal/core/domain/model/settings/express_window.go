package settings

// ExpressWindow is a guaranteed delivery-by time service code.
type ExpressWindow string

const (
	ExpressDisabled ExpressWindow = ""
	ExpressT09      ExpressWindow = "T09"
	ExpressT10      ExpressWindow = "T10"
	ExpressT12      ExpressWindow = "T12"
)

// IsEnabled reports whether a window is configured.
func (w ExpressWindow) IsEnabled() bool {
	return w != ExpressDisabled
}
