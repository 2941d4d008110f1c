package auth

// HandshakeState - состояние handshake у провайдера
type HandshakeState string

const (
	StateIdle               HandshakeState = "idle"
	StateSessionRequested   HandshakeState = "session_requested"
	StateSessionEstablished HandshakeState = "session_established"
	StateProfileRequested   HandshakeState = "profile_requested"
	StateProfileEstablished HandshakeState = "profile_established"
	StateIngressRequested   HandshakeState = "ingress_requested"
	StateReady              HandshakeState = "ready"
	StateFailed             HandshakeState = "failed"
)

// InFlight сообщает, что handshake выполняется
func (s HandshakeState) InFlight() bool {
	switch s {
	case StateIdle, StateReady, StateFailed:
		return false
	}
	return true
}
