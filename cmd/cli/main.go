package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/cardtrick/pkg/deck"
	"github.com/limaJavier/cardtrick/pkg/trick"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
)

var validModes = []string{"encode", "decode", "verify", "table"}

func main() {
	// Define arguments
	modePtr := flag.String("mode", "encode", `Operation to perform. Allowed values are:
- "encode" (Hold back one card of the hand given by -cards and order the rest),
- "decode" (Name the card held back from the ordered cards given by -cards),
- "verify" (Perform and reverse the trick over random hands) and
- "table" (List every ordering of the cards given by -cards and the card each one names), where "encode" is the default`)
	cardsPtr := flag.String("cards", "", "Comma-separated card labels, e.g. \"2C,4S,7S,8D,8S\"")
	deckFilePtr := flag.String("deck", "", "Path to a JSON deck file with \"ranks\" and \"suits\"; if empty, the standard 52-card deck is used")
	samplesPtr := flag.Int("samples", 1000, "Number of random hands checked by \"verify\", where 1000 is the default")
	handPtr := flag.Int("hand", 0, "Hand size used by \"verify\"; if 0, the smallest hand the deck allows is used")
	seedPtr := flag.Int64("seed", 1, "Seed for the random hands of \"verify\"")
	flag.Parse()
	mode := strings.ToLower(*modePtr)
	cards := parseCards(*cardsPtr)

	// Validate arguments
	if !slices.Contains(validModes, mode) {
		log.Fatalf("%v is not a valid mode", mode)
	} else if mode != "verify" && len(cards) == 0 {
		log.Fatalf("mode \"%v\" requires cards to be specified", mode)
	} else if *samplesPtr <= 0 {
		log.Fatalf("samples must be greater than 0: %v", *samplesPtr)
	}

	// Initialize deck
	cardDeck := deck.Standard()
	if *deckFilePtr != "" {
		var err error
		cardDeck, err = deck.DeckFromJson(*deckFilePtr)
		if err != nil {
			log.Fatalf("cannot load deck file: %v", err)
		}
	}

	switch mode {
	case "encode":
		heldOut, sequence, err := cardDeck.PerformTrick(cards)
		if err != nil {
			log.Fatalf("cannot perform the trick: %v", err)
		}
		printJson(map[string]any{"heldOut": heldOut, "sequence": sequence})
	case "decode":
		heldOut, err := cardDeck.ReverseTrick(cards)
		if err != nil {
			log.Fatalf("cannot reverse the trick: %v", err)
		}
		printJson(map[string]any{"heldOut": heldOut})
	case "table":
		printJson(buildTable(cardDeck, cards))
	case "verify":
		handSize := *handPtr
		if handSize == 0 {
			handSize = cardDeck.HandSize()
		}
		if !verify(cardDeck, handSize, *samplesPtr, *seedPtr) {
			os.Exit(20)
		}
		os.Exit(10)
	}
}

func parseCards(cardsStr string) []string {
	return lo.Filter(
		lo.Map(strings.Split(cardsStr, ","), func(card string, _ int) string { return strings.TrimSpace(card) }),
		func(card string, _ int) bool { return card != "" },
	)
}

// buildTable lists every ordering of cards together with its rank and the card it names
func buildTable(cardDeck *deck.Deck, cards []string) []map[string]any {
	numbers, err := cardDeck.Numbers(cards)
	if err != nil {
		log.Fatalf("cannot build table: %v", err)
	}
	if len(numbers) > 8 {
		log.Fatalf("a table of %d cards would list %d orderings", len(numbers), trick.Factorial(min(len(numbers), 20)))
	}

	table := make([]map[string]any, 0)
	for i, permutation := range trick.Permutations(numbers) {
		sequence := lo.Must(cardDeck.Cards(permutation))
		heldOut, err := cardDeck.ReverseTrick(sequence)
		if err != nil {
			log.Fatalf("cannot build table: %v", err)
		}
		table = append(table, map[string]any{
			"rank":     i + 1,
			"sequence": sequence,
			"heldOut":  heldOut,
		})
	}
	return table
}

// verify performs and reverses the trick over random hands and reports whether every hand round-trips
func verify(cardDeck *deck.Deck, handSize, samples int, seed int64) bool {
	rng := rand.New(rand.NewSource(seed))
	bar := progressbar.Default(int64(samples), "verifying")
	for i := 0; i < samples; i++ {
		hand, err := cardDeck.RandomHand(rng, handSize)
		if err != nil {
			log.Fatalf("cannot draw a hand: %v", err)
		}
		heldOut, sequence, err := cardDeck.PerformTrick(hand)
		if err != nil {
			log.Fatalf("cannot perform the trick on %v: %v", hand, err)
		}
		reversed, err := cardDeck.ReverseTrick(sequence)
		if err != nil {
			log.Fatalf("cannot reverse the trick on %v: %v", sequence, err)
		}
		if reversed != heldOut {
			bar.Finish()
			fmt.Printf("Hand %v held out %v but %v was named from %v\n", hand, heldOut, reversed, sequence)
			return false
		}
		bar.Add(1)
	}
	fmt.Printf("Verified %d hands of %d cards from a deck of %d\n", samples, handSize, cardDeck.Size())
	return true
}

func printJson(value any) {
	valueJson, err := json.Marshal(value)
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}
	fmt.Println(string(valueJson))
}
