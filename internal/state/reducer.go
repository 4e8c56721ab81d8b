package state

import "fmt"

// Reduce applies action to state and returns the next state.
//
// A nil state is replaced by NewMarketState before the action is applied.
// Actions Reduce does not recognise return state itself, so callers may
// compare pointers to skip work. Recognised actions always return a fresh
// *MarketState; on error the original state is returned with the error.
func Reduce(state *MarketState, action Action) (*MarketState, error) {
	if state == nil {
		state = NewMarketState()
	}

	switch a := action.(type) {
	case AddMarketAction:
		return addMarket(state, a.Location), nil

	case UpdateLocationAction:
		next := *state
		next.NewLocation = a.Location
		return &next, nil

	case AddCardAction:
		return adjustCards(state, a.Market, 1)

	case DeleteCardAction:
		return adjustCards(state, a.Market, -1)
	}

	return state, nil
}

func addMarket(state *MarketState, location string) *MarketState {
	id := freeID(state)

	markets := cloneMarkets(state.Markets, 1)
	markets[id] = Market{ID: id, Location: location}

	order := make([]MarketID, len(state.Order), len(state.Order)+1)
	copy(order, state.Order)
	order = append(order, id)

	next := *state
	next.Markets = markets
	next.Order = order
	next.TotalMarkets = state.TotalMarkets + 1
	next.NewLocation = ""
	next.NextID = id + 1
	return &next
}

// freeID returns the first ID at or after NextID that no market uses yet.
// States built by hand may carry markets with a zero NextID.
func freeID(state *MarketState) MarketID {
	id := state.NextID
	if id <= 0 {
		id = 1
	}
	for _, existing := range state.Order {
		if existing >= id {
			id = existing + 1
		}
	}
	for {
		if _, taken := state.Markets[id]; !taken {
			return id
		}
		id++
	}
}

func adjustCards(state *MarketState, ref MarketRef, delta int) (*MarketState, error) {
	market, err := ref.resolve(state)
	if err != nil {
		return state, err
	}
	if market.Cards+delta < 0 || state.TotalCards+delta < 0 {
		return state, fmt.Errorf("cannot remove card from %q: %w", market.Location, ErrCardUnderflow)
	}

	markets := cloneMarkets(state.Markets, 0)
	market.Cards += delta
	markets[market.ID] = market

	next := *state
	next.Markets = markets
	next.TotalCards = state.TotalCards + delta
	return &next, nil
}

func cloneMarkets(src map[MarketID]Market, extra int) map[MarketID]Market {
	dst := make(map[MarketID]Market, len(src)+extra)
	for id, m := range src {
		dst[id] = m
	}
	return dst
}
