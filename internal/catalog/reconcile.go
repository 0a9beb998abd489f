package catalog

// Reconciliation keeps an already-rendered card sequence in sync with the
// projection after a single record's counters change, without rebuilding the
// whole list. The planner recomputes the authoritative order and emits one
// move operation for the mutated card; the applier executes it on whatever
// representation the rendering layer holds (here: an id slice, mirrored onto
// list items by the UI).

// MoveKind classifies the single operation needed for the mutated card.
type MoveKind int

const (
	// MoveNone: the card is already where the projection wants it.
	MoveNone MoveKind = iota
	// MoveRemove: the card no longer belongs to the projection.
	MoveRemove
	// MoveBefore: the card must sit immediately before BeforeID.
	MoveBefore
	// MoveToEnd: the card is now last (or its successor is not rendered).
	MoveToEnd
)

// Move is the planned operation for one mutated card.
type Move struct {
	Kind     MoveKind
	BeforeID int // valid only for MoveBefore
}

// PlanMove computes the move that brings the rendered order back in line with
// the target projection order after the record with the given id changed.
//
// If the id left the projection, remove it; otherwise anchor it before its
// successor in the target order when that successor is rendered; otherwise it
// goes to the end.
func PlanMove(target, rendered []int, id int) Move {
	pos := indexOf(target, id)
	if pos < 0 {
		if indexOf(rendered, id) < 0 {
			return Move{Kind: MoveNone}
		}
		return Move{Kind: MoveRemove}
	}

	if pos+1 < len(target) {
		successor := target[pos+1]
		if successor != id && indexOf(rendered, successor) >= 0 {
			// Already sitting directly before the successor.
			if cur := indexOf(rendered, id); cur >= 0 && cur+1 < len(rendered) && rendered[cur+1] == successor {
				return Move{Kind: MoveNone}
			}
			return Move{Kind: MoveBefore, BeforeID: successor}
		}
	}

	if cur := indexOf(rendered, id); cur == len(rendered)-1 {
		return Move{Kind: MoveNone}
	}
	return Move{Kind: MoveToEnd}
}

// ApplyMove executes a planned move on a rendered id sequence and returns the
// updated sequence. Unknown anchors degrade to an append.
func ApplyMove(rendered []int, id int, m Move) []int {
	switch m.Kind {
	case MoveNone:
		return rendered
	case MoveRemove:
		return removeID(rendered, id)
	case MoveBefore:
		out := removeID(rendered, id)
		anchor := indexOf(out, m.BeforeID)
		if anchor < 0 {
			return append(out, id)
		}
		out = append(out, 0)
		copy(out[anchor+1:], out[anchor:])
		out[anchor] = id
		return out
	case MoveToEnd:
		return append(removeID(rendered, id), id)
	}
	return rendered
}

// Reconcile is the full incremental path: recompute the projection order for
// the mutated catalog, plan the single move for id, and apply it. The caller
// mirrors the returned order onto its rendered widgets.
func Reconcile(prompts []*Prompt, c Criteria, rendered []int, id int) []int {
	target := ProjectIDs(prompts, c)
	move := PlanMove(target, rendered, id)
	return ApplyMove(rendered, id, move)
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func removeID(ids []int, id int) []int {
	out := make([]int, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
