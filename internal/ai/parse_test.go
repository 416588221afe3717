package ai

import (
	"reflect"
	"testing"
)

func TestCleanJSONString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain object untouched",
			input: `{"location":"Montreal"}`,
			want:  `{"location":"Montreal"}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"location\":\"Montreal\"}\n```",
			want:  `{"location":"Montreal"}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"location\":\"Montreal\"}\n```",
			want:  `{"location":"Montreal"}`,
		},
		{
			name:  "embedded newlines stripped",
			input: "{\n  \"location\":\n  \"Montreal\"\n}",
			want:  `{  "location":  "Montreal"}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n {\"a\":1} \n ",
			want:  `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONString(tt.input); got != tt.want {
				t.Errorf("cleanJSONString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "exact object", input: `{"a":1}`, want: `{"a":1}`},
		{name: "noise around object", input: `Here you go: {"a":1}. Enjoy!`, want: `{"a":1}`},
		{name: "nested objects keep outer span", input: `x{"a":{"b":2}}y`, want: `{"a":{"b":2}}`},
		{name: "no braces", input: "sorry, I cannot help with that", wantErr: true},
		{name: "only opening brace", input: `{"truncated`, wantErr: true},
		{name: "reversed braces", input: "} nope {", wantErr: true},
		{name: "empty input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONObject(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("extractJSONObject() = %q, expected error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractJSONObject() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("extractJSONObject() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestDecodePreferences_FencedRoundTrip pins the behaviour for a fenced model
// reply with embedded newlines: the contained object must parse exactly.
func TestDecodePreferences_FencedRoundTrip(t *testing.T) {
	raw := "```json\n{\"categories\":[\"a\"],\n \"location\":\"X\",\n \"duration\":1,\n \"pace\":\"low\",\n \"budget\":\"low\"}\n```"

	got, err := decodePreferences(cleanJSONString(raw))
	if err != nil {
		t.Fatalf("decodePreferences() error = %v", err)
	}

	want := TripPreferences{
		Categories: []string{"a"},
		Location:   "X",
		Duration:   1,
		Pace:       LevelLow,
		Budget:     LevelLow,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decodePreferences() = %+v, want %+v", got, want)
	}
}

func TestDecodePreferences_ShapeMismatches(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no braces", raw: "I could not produce JSON this time."},
		{name: "truncated object", raw: `{"categories":["food"],"location":"Paris"`},
		{name: "missing categories", raw: `{"location":"Paris","duration":2,"pace":"low","budget":"low"}`},
		{name: "empty categories", raw: `{"categories":[],"location":"Paris","duration":2,"pace":"low","budget":"low"}`},
		{name: "blank category", raw: `{"categories":[" "],"location":"Paris","duration":2,"pace":"low","budget":"low"}`},
		{name: "categories wrong type", raw: `{"categories":"food","location":"Paris","duration":2,"pace":"low","budget":"low"}`},
		{name: "missing location", raw: `{"categories":["food"],"duration":2,"pace":"low","budget":"low"}`},
		{name: "zero duration", raw: `{"categories":["food"],"location":"Paris","duration":0,"pace":"low","budget":"low"}`},
		{name: "negative duration", raw: `{"categories":["food"],"location":"Paris","duration":-1,"pace":"low","budget":"low"}`},
		{name: "fractional duration", raw: `{"categories":["food"],"location":"Paris","duration":2.5,"pace":"low","budget":"low"}`},
		{name: "pace outside enum", raw: `{"categories":["food"],"location":"Paris","duration":2,"pace":"relaxed","budget":"low"}`},
		{name: "budget outside enum", raw: `{"categories":["food"],"location":"Paris","duration":2,"pace":"low","budget":"$$$"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := decodePreferences(tt.raw); err == nil {
				t.Errorf("decodePreferences() = %+v, expected shape error", got)
			}
		})
	}
}

// Unknown extra fields are tolerated as long as the required shape holds.
func TestDecodePreferences_IgnoresUnknownFields(t *testing.T) {
	raw := `{"categories":["food","culture"],"location":"Montreal","duration":3,"pace":"medium","budget":"low","note":"extra"}`

	got, err := decodePreferences(raw)
	if err != nil {
		t.Fatalf("decodePreferences() error = %v", err)
	}
	if got.Location != "Montreal" || got.Duration != 3 || len(got.Categories) != 2 {
		t.Errorf("unexpected preferences: %+v", got)
	}
}
