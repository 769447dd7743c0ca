package kernel

// Endpoint identifies a message source or destination.
type Endpoint uint8

const (
	EPFrame Endpoint = iota
	EPTone
)

func (e Endpoint) String() string {
	switch e {
	case EPFrame:
		return "frame"
	case EPTone:
		return "tone"
	default:
		return "unknown"
	}
}
