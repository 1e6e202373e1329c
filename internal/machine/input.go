package machine

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// SettingsFromJson reads machine settings from a JSON file, e.g.
//
//	{
//	  "rotors": ["Gamma", "V", "II", "III"],
//	  "reflector": "B-thin",
//	  "offsets": "GKDT",
//	  "rings": "HAAA",
//	  "plugboard": "BQ CR DI EJ KW"
//	}
func SettingsFromJson(file string) (Settings, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Settings{}, err
	}

	var settingsJson map[string]any
	if err := json.Unmarshal(bytes, &settingsJson); err != nil {
		return Settings{}, err
	}

	var settings Settings
	if err := mapstructure.Decode(settingsJson, &settings); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return settings, nil
}
