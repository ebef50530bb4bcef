package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/limaJavier/cardtrick/pkg/trick"
	"github.com/samber/lo"
)

var (
	ErrUnknownCard = errors.New("unknown card")
	ErrInvalidDeck = errors.New("invalid deck")
)

var (
	StandardRanks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K"}
	StandardSuits = []string{"C", "D", "H", "S"}
)

// Deck maps card labels such as "8S" (a rank symbol followed by a suit symbol)
// to numbers in [0, Size()) and performs the trick over them.
type Deck struct {
	Ranks   []string
	Suits   []string
	indexer cardIndexer
	encoder trick.Encoder
}

func NewDeck(ranks, suits []string) (*Deck, error) {
	//** Validate symbols
	for _, symbols := range [][]string{ranks, suits} {
		if len(symbols) == 0 {
			return nil, fmt.Errorf("ranks and suits must not be empty: %w", ErrInvalidDeck)
		}
		if invalid, ok := lo.Find(symbols, func(symbol string) bool {
			return utf8.RuneCountInString(symbol) != 1
		}); ok {
			return nil, fmt.Errorf("symbol %q is not a single character: %w", invalid, ErrInvalidDeck)
		}
		if duplicates := lo.FindDuplicates(symbols); len(duplicates) > 0 {
			return nil, fmt.Errorf("symbols %v appear more than once: %w", duplicates, ErrInvalidDeck)
		}
	}

	//** Initialize dependencies
	size := uint64(len(ranks) * len(suits))
	encoder, err := trick.NewEncoder(size)
	if err != nil {
		return nil, fmt.Errorf("a deck of %d cards cannot perform the trick: %w: %w", size, ErrInvalidDeck, err)
	}

	return &Deck{
		Ranks:   ranks,
		Suits:   suits,
		indexer: newCardIndexer(uint64(len(ranks)), uint64(len(suits))),
		encoder: encoder,
	}, nil
}

// Standard returns the 52-card deck where AC is 0, AS is 3, 2C is 4 and KS is 51.
func Standard() *Deck {
	return lo.Must(NewDeck(StandardRanks, StandardSuits))
}

func (deck *Deck) Size() uint64 {
	return deck.encoder.Modulus()
}

// HandSize returns the smallest hand this deck can perform the trick with.
func (deck *Deck) HandSize() int {
	return deck.encoder.MinSetSize()
}

func (deck *Deck) Number(card string) (uint64, error) {
	runes := []rune(card)
	if len(runes) != 2 {
		return 0, fmt.Errorf("%q is not of the form RS, where R is one of %v and S is one of %v: %w", card, deck.Ranks, deck.Suits, ErrUnknownCard)
	}
	rank := lo.IndexOf(deck.Ranks, string(runes[0]))
	suit := lo.IndexOf(deck.Suits, string(runes[1]))
	if rank < 0 || suit < 0 {
		return 0, fmt.Errorf("%q is not of the form RS, where R is one of %v and S is one of %v: %w", card, deck.Ranks, deck.Suits, ErrUnknownCard)
	}
	return deck.indexer.Index(uint64(rank), uint64(suit)), nil
}

func (deck *Deck) Card(number uint64) (string, error) {
	if number >= deck.Size() {
		return "", fmt.Errorf("card number %d is not within [0, %d): %w", number, deck.Size(), trick.ErrOutOfRange)
	}
	rank, suit := deck.indexer.Attributes(number)
	return deck.Ranks[rank] + deck.Suits[suit], nil
}

func (deck *Deck) Numbers(cards []string) ([]uint64, error) {
	numbers := make([]uint64, 0, len(cards))
	for _, card := range cards {
		number, err := deck.Number(card)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, number)
	}
	return numbers, nil
}

func (deck *Deck) Cards(numbers []uint64) ([]string, error) {
	cards := make([]string, 0, len(numbers))
	for _, number := range numbers {
		card, err := deck.Card(number)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// PerformTrick holds back one card of the hand and orders the rest so that
// ReverseTrick names the held-back card.
func (deck *Deck) PerformTrick(hand []string) (heldOut string, sequence []string, err error) {
	numbers, err := deck.Numbers(hand)
	if err != nil {
		return "", nil, err
	}
	heldOutNumber, sequenceNumbers, err := deck.encoder.Encode(numbers)
	if err != nil {
		return "", nil, err
	}
	tracer().Debugf("hand %v: held out %v", hand, heldOutNumber)
	return lo.Must(deck.Card(heldOutNumber)), lo.Must(deck.Cards(sequenceNumbers)), nil
}

// ReverseTrick names the card held back from an ordered sequence of cards.
func (deck *Deck) ReverseTrick(sequence []string) (string, error) {
	numbers, err := deck.Numbers(sequence)
	if err != nil {
		return "", err
	}
	heldOut, err := deck.encoder.Decode(numbers)
	if err != nil {
		return "", err
	}
	return lo.Must(deck.Card(heldOut)), nil
}

// RandomHand draws size distinct cards.
func (deck *Deck) RandomHand(rng *rand.Rand, size int) ([]string, error) {
	if size < 0 || uint64(size) > deck.Size() {
		return nil, fmt.Errorf("cannot draw %d cards from a deck of %d: %w", size, deck.Size(), trick.ErrInvalidSetSize)
	}
	numbers := lo.Map(rng.Perm(int(deck.Size()))[:size], func(number int, _ int) uint64 { return uint64(number) })
	return deck.Cards(numbers)
}
