package components

import "github.com/go-gl/mathgl/mgl64"

type ThrowEventKind int

const (
	EventChargeStarted ThrowEventKind = iota
	EventThrown
	EventAborted
	EventRespawned
)

func (k ThrowEventKind) String() string {
	switch k {
	case EventChargeStarted:
		return "charge_started"
	case EventThrown:
		return "thrown"
	case EventAborted:
		return "aborted"
	case EventRespawned:
		return "respawned"
	}
	return "unknown"
}

// ThrowEvent records a throw controller transition within one frame.
// Force, Direction, Target and Hit are only set for EventThrown.
type ThrowEvent struct {
	Kind          ThrowEventKind
	ChargeElapsed float64
	Force         float64
	Direction     mgl64.Vec3
	Target        mgl64.Vec3
	Hit           bool // aim ray hit world geometry
}
