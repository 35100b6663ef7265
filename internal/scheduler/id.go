package scheduler

import (
	"sync/atomic"

	"github.com/hammamikhairi/commentscreen/internal/domain"
)

// laneIDs is shared by every scheduler so ids stay unique across
// re-presented overlays.
var laneIDs idSource

// idSource hands out lane ids. IDs start at 1 so the zero LaneID never
// names a real lane.
type idSource struct {
	last atomic.Uint64
}

func (s *idSource) next() domain.LaneID {
	return domain.LaneID(s.last.Add(1))
}
