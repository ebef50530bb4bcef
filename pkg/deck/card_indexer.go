package deck

// cardIndexer gives a unique number to a card's rank and suit and vice versa
type cardIndexer interface {
	// Returns a unique number in [0, ranks*suits) for the rank and suit
	Index(rank, suit uint64) uint64
	// Returns the rank and suit of a card number
	Attributes(index uint64) (rank uint64, suit uint64)
}

func newCardIndexer(ranks, suits uint64) cardIndexer {
	return &cardIndexerImplementation{
		ranks: ranks,
		suits: suits,
	}
}

type cardIndexerImplementation struct {
	ranks uint64
	suits uint64
}

func (indexer *cardIndexerImplementation) Index(rank, suit uint64) uint64 {
	return suit + indexer.suits*rank
}

func (indexer *cardIndexerImplementation) Attributes(index uint64) (rank, suit uint64) {
	suit = index % indexer.suits
	index = index / indexer.suits

	rank = index % indexer.ranks

	return rank, suit
}
