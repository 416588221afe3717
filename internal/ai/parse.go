package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errNoJSONObject = errors.New("no JSON object in model reply")

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
// and strips embedded newlines so the reply is a single candidate line.
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	input = strings.ReplaceAll(input, "\n", "")
	return strings.TrimSpace(input)
}

// extractJSONObject returns the substring between the first '{' and the
// last '}' inclusive.
func extractJSONObject(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", errNoJSONObject
	}
	return s[start : end+1], nil
}

// decodePreferences parses a cleaned model reply into TripPreferences and
// validates the shape. Any mismatch is an error so the caller can fall back.
func decodePreferences(raw string) (TripPreferences, error) {
	obj, err := extractJSONObject(raw)
	if err != nil {
		return TripPreferences{}, err
	}

	var prefs TripPreferences
	if err := json.Unmarshal([]byte(obj), &prefs); err != nil {
		return TripPreferences{}, fmt.Errorf("unmarshal preferences: %w", err)
	}
	if err := validatePreferences(prefs); err != nil {
		return TripPreferences{}, err
	}
	return prefs, nil
}

func validatePreferences(p TripPreferences) error {
	if len(p.Categories) == 0 {
		return errors.New("preferences missing categories")
	}
	for _, c := range p.Categories {
		if strings.TrimSpace(c) == "" {
			return errors.New("preferences contain an empty category")
		}
	}
	if strings.TrimSpace(p.Location) == "" {
		return errors.New("preferences missing location")
	}
	if p.Duration <= 0 {
		return fmt.Errorf("preferences duration %d is not positive", p.Duration)
	}
	if !validLevel(p.Pace) {
		return fmt.Errorf("preferences pace %q is not low/medium/high", p.Pace)
	}
	if !validLevel(p.Budget) {
		return fmt.Errorf("preferences budget %q is not low/medium/high", p.Budget)
	}
	return nil
}

func validLevel(v string) bool {
	return v == LevelLow || v == LevelMedium || v == LevelHigh
}
