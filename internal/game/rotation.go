package game

import "sort"

// Rotation is the circular turn order. Exactly one player is current; the
// rest wait in FIFO order behind it.
type Rotation struct {
	current *Player
	waiting []*Player
}

// NewRotation seats players in the given order. The first player starts.
func NewRotation(players ...*Player) (*Rotation, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	waiting := make([]*Player, len(players)-1)
	copy(waiting, players[1:])
	return &Rotation{
		current: players[0],
		waiting: waiting,
	}, nil
}

// Current returns the player whose turn it is.
func (r *Rotation) Current() *Player {
	return r.current
}

// Advance sends the current player to the back of the line and returns the
// new current player.
func (r *Rotation) Advance() *Player {
	if len(r.waiting) == 0 {
		return r.current
	}
	next := r.waiting[0]
	copy(r.waiting, r.waiting[1:])
	r.waiting[len(r.waiting)-1] = r.current
	r.current = next
	return r.current
}

// Players returns every player, waiting players first and the current player last.
func (r *Rotation) Players() []*Player {
	players := make([]*Player, 0, len(r.waiting)+1)
	players = append(players, r.waiting...)
	return append(players, r.current)
}

// Seating returns every player ordered by seat.
func (r *Rotation) Seating() []*Player {
	players := r.Players()
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Seat < players[j].Seat
	})
	return players
}

// Len returns the number of players.
func (r *Rotation) Len() int {
	return len(r.waiting) + 1
}
