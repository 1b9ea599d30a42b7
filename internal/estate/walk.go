package estate

import "fmt"

type Direction int

const (
	Stop Direction = iota
	GoLeft
	GoRight
)

func (d Direction) String() string {
	switch d {
	case GoLeft:
		return "left"
	case GoRight:
		return "right"
	default:
		return "stop"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*d = GoLeft
	case "right":
		*d = GoRight
	case "stop":
		*d = Stop
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// Step is one room of a guided walk and the direction taken when leaving it.
// The last step of a walk always has Direction Stop.
type Step struct {
	Room      string    `json:"room"`
	Direction Direction `json:"direction"`
}

// GuidedWalk starts at the root and keeps taking the left door when there is
// one, the right door otherwise, until it reaches a room with no exits.
func (r *Room) GuidedWalk() []Step {
	var steps []Step

	cur := r
	for cur != nil && !cur.IsLeaf() {
		if cur.left != nil {
			steps = append(steps, Step{Room: cur.name, Direction: GoLeft})
			cur = cur.left
		} else {
			steps = append(steps, Step{Room: cur.name, Direction: GoRight})
			cur = cur.right
		}
	}
	if cur != nil {
		steps = append(steps, Step{Room: cur.name, Direction: Stop})
	}

	return steps
}

// WalkGreedyLeft returns the room names visited by GuidedWalk.
func (r *Room) WalkGreedyLeft() []string {
	steps := r.GuidedWalk()
	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.Room
	}
	return names
}
