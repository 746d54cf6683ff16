package sim

// EventSink receives notifications from the simulation core. Presentation
// and audio collaborators implement this to react to match events; the core
// itself never renders or plays sound.
//
// All methods are called synchronously from within a tick, in the order the
// events occur. Implementations must not call back into the match.
type EventSink interface {
	// Scored fires when an obstacle is passed forward. (x, y) is the player
	// center at the moment of scoring, in world units.
	Scored(x, y float64)

	// BackwardPass fires each time an already-cleared obstacle is re-crossed
	// right-to-left.
	BackwardPass()

	// BackwardMilestone fires when the backward streak reaches its threshold.
	BackwardMilestone()

	// Collided fires on a fatal collision. (x, y) is the player center.
	Collided(x, y float64)

	// MatchStarted fires on every transition into the playing state.
	MatchStarted()

	// MatchEnded fires after a fatal collision, once the final score has been
	// recorded on the tier's leaderboard.
	MatchEnded(finalScore int)
}

// NopSink is an EventSink that ignores every event.
type NopSink struct{}

func (NopSink) Scored(x, y float64)   {}
func (NopSink) BackwardPass()         {}
func (NopSink) BackwardMilestone()    {}
func (NopSink) Collided(x, y float64) {}
func (NopSink) MatchStarted()         {}
func (NopSink) MatchEnded(int)        {}
