package results

import (
	"encoding/json"
	"fmt"
	"time"

	"enigma/internal/analysis"
)

// runPayload is the stored shape of a Run minus the columns kept outside the
// payload (id, created-at). Versioned so the schema can move without
// breaking old databases.
type runPayload struct {
	SchemaVersion    int                  `json:"schemaVersion"`
	Reflector        string               `json:"reflector"`
	RotorPool        []string             `json:"rotorPool"`
	CiphertextLength int                  `json:"ciphertextLength"`
	Configurations   []configurationEntry `json:"configurations"`
}

type configurationEntry struct {
	Rotors    []string `json:"rotors"`
	Reflector string   `json:"reflector"`
	Offsets   string   `json:"offsets"`
	Score     float64  `json:"score"`
}

const schemaVersion = 1

func encodeRun(run Run) ([]byte, error) {
	payload := runPayload{
		SchemaVersion:    schemaVersion,
		Reflector:        run.Reflector,
		RotorPool:        run.RotorPool,
		CiphertextLength: run.CiphertextLength,
	}
	for _, configuration := range run.Configurations {
		payload.Configurations = append(payload.Configurations, configurationEntry(configuration))
	}
	return json.Marshal(payload)
}

func decodeRun(id string, createdAt string, data []byte) (Run, error) {
	var payload runPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Run{}, fmt.Errorf("decode run %v: %w", id, err)
	}
	if payload.SchemaVersion != schemaVersion {
		return Run{}, fmt.Errorf("decode run %v: unsupported schema version %v", id, payload.SchemaVersion)
	}

	run := Run{
		ID:               id,
		Reflector:        payload.Reflector,
		RotorPool:        payload.RotorPool,
		CiphertextLength: payload.CiphertextLength,
	}
	if createdAt != "" {
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return Run{}, fmt.Errorf("decode run %v: %w", id, err)
		}
		run.CreatedAt = parsed
	}
	for _, entry := range payload.Configurations {
		run.Configurations = append(run.Configurations, analysis.ScoredConfiguration(entry))
	}
	return run, nil
}
