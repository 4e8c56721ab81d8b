package state

import "fmt"

// MarketID identifies a market for its whole lifetime, independent of its
// position in the list.
type MarketID int

// Market is a named location and the number of cards held there.
type Market struct {
	ID       MarketID
	Location string
	Cards    int
}

// MarketState is the aggregate owned by Reduce. Values reachable from a
// MarketState are never modified after the state has been returned; every
// transition builds new containers for whatever it changes.
type MarketState struct {
	TotalMarkets int
	TotalCards   int

	// Markets holds every market by ID; Order keeps creation order for display.
	Markets map[MarketID]Market
	Order   []MarketID

	// NewLocation stages the text of the add-market form.
	NewLocation string
	Synced      bool

	NextID MarketID
}

// NewMarketState returns the initial state: no markets, no cards, an empty
// form and Synced set.
func NewMarketState() *MarketState {
	return &MarketState{
		Markets: map[MarketID]Market{},
		Order:   []MarketID{},
		Synced:  true,
		NextID:  1,
	}
}

// MarketList returns the markets in creation order. The slice is freshly
// allocated on every call.
func (s *MarketState) MarketList() []Market {
	if s == nil {
		return nil
	}
	list := make([]Market, 0, len(s.Order))
	for _, id := range s.Order {
		list = append(list, s.Markets[id])
	}
	return list
}

// MarketAt returns the market displayed at index.
func (s *MarketState) MarketAt(index int) (Market, bool) {
	if s == nil || index < 0 || index >= len(s.Order) {
		return Market{}, false
	}
	m, ok := s.Markets[s.Order[index]]
	return m, ok
}

// IndexOf reports the display position of id, or -1.
func (s *MarketState) IndexOf(id MarketID) int {
	if s == nil {
		return -1
	}
	for i, candidate := range s.Order {
		if candidate == id {
			return i
		}
	}
	return -1
}

// MarketRef addresses a market either by stable ID or by display position.
type MarketRef struct {
	id      MarketID
	index   int
	byIndex bool
}

// ByID refers to the market with the given identifier.
func ByID(id MarketID) MarketRef {
	return MarketRef{id: id}
}

// AtIndex refers to whichever market sits at index when the action is reduced.
func AtIndex(index int) MarketRef {
	return MarketRef{index: index, byIndex: true}
}

func (r MarketRef) String() string {
	if r.byIndex {
		return fmt.Sprintf("index %d", r.index)
	}
	return fmt.Sprintf("id %d", r.id)
}

// resolve maps the reference onto a market of s.
func (r MarketRef) resolve(s *MarketState) (Market, error) {
	if r.byIndex {
		if r.index < 0 || r.index >= len(s.Order) {
			return Market{}, fmt.Errorf("market %s of %d: %w", r, len(s.Order), ErrOutOfRange)
		}
		m, ok := s.Markets[s.Order[r.index]]
		if !ok {
			return Market{}, fmt.Errorf("market %s: %w", r, ErrUnknownMarket)
		}
		return m, nil
	}
	m, ok := s.Markets[r.id]
	if !ok {
		return Market{}, fmt.Errorf("market %s: %w", r, ErrUnknownMarket)
	}
	return m, nil
}
