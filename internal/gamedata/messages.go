package gamedata

import (
	"errors"
	"fmt"
	"reflect"
)

const messagesFile = "messages.json"

// Messages is the catalog of every line the game prints.
type Messages struct {
	Welcome          string `json:"welcome"`
	MovePrompt       string `json:"movePrompt"`
	ShootPrompt      string `json:"shootPrompt"`
	InvalidMove      string `json:"invalidMove"`
	InvalidDirection string `json:"invalidDirection"`
	Bump             string `json:"bump"`
	NoArrows         string `json:"noArrows"`
	Arrows           string `json:"arrows"` // fmt verb receives the arrow count
	Smell            string `json:"smell"`
	Draft            string `json:"draft"`
	Win              string `json:"win"`
	MissWall         string `json:"missWall"`
	MissPit          string `json:"missPit"`
	MissGold         string `json:"missGold"`
	FellInPit        string `json:"fellInPit"`
	Eaten            string `json:"eaten"`
	Goodbye          string `json:"goodbye"`
}

// ArrowLine formats the arrow counter shown under the board.
func (m *Messages) ArrowLine(n int) string {
	return fmt.Sprintf(m.Arrows, n)
}

// Validate returns an error naming every empty entry.
func (m *Messages) Validate() error {
	var errs []error
	v := reflect.ValueOf(*m)
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).String() == "" {
			errs = append(errs, fmt.Errorf("message %q is empty", v.Type().Field(i).Tag.Get("json")))
		}
	}
	return errors.Join(errs...)
}

// LoadMessages loads the embedded message catalog.
func LoadMessages() (*Messages, error) {
	m, err := Load[Messages](messagesFile)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", messagesFile, err)
	}
	return &m, nil
}

// MustLoadMessages loads the message catalog, panicking on error.
func MustLoadMessages() *Messages {
	m, err := LoadMessages()
	if err != nil {
		panic(err)
	}
	return m
}
