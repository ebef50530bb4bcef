package deck

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// DeckConfig is the JSON form of a deck, e.g.
//
//	{"ranks": ["A", "2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K"], "suits": ["C", "D", "H", "S"]}
type DeckConfig struct {
	Ranks []string
	Suits []string
}

func DeckFromJson(file string) (*Deck, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read deck file: %v", err)
	}
	var deckJson map[string]any
	err = json.Unmarshal(bytes, &deckJson)
	if err != nil {
		return nil, fmt.Errorf("cannot parse deck file: %v", err)
	}

	var config DeckConfig
	if err := mapstructure.Decode(deckJson, &config); err != nil {
		return nil, fmt.Errorf("invalid deck file %v: %v", file, err)
	}
	deck, err := NewDeck(config.Ranks, config.Suits)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded deck of %d cards from %v, hands of %d", deck.Size(), file, deck.HandSize())
	return deck, nil
}
