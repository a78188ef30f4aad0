package extract

import "testing"

func TestFirstJSONObject_EmbeddedInProse(t *testing.T) {
	input := `Sure! Here you go: {"budget": "45000"} — let me know if that helps.`
	got := FirstJSONObject(input)
	if got != `{"budget": "45000"}` {
		t.Errorf("got %q", got)
	}
}

func TestFirstJSONObject_NestedObject(t *testing.T) {
	input := `{"outer": {"inner": 1}, "flag": true}`
	got := FirstJSONObject(input)
	if got != input {
		t.Errorf("got %q", got)
	}
}

func TestFirstJSONObject_TakesFirstOfSeveral(t *testing.T) {
	input := `{"a": 1} trailing {"b": 2}`
	got := FirstJSONObject(input)
	if got != `{"a": 1}` {
		t.Errorf("got %q", got)
	}
}

func TestFirstJSONObject_SkipsInvalidCandidate(t *testing.T) {
	input := `{not json} but then {"b": 2}`
	got := FirstJSONObject(input)
	if got != `{"b": 2}` {
		t.Errorf("got %q", got)
	}
}

func TestFirstJSONObject_UnterminatedOuterFindsInner(t *testing.T) {
	input := `{"a": {"b": 2}`
	got := FirstJSONObject(input)
	if got != `{"b": 2}` {
		t.Errorf("got %q", got)
	}
}

func TestFirstJSONObject_BracesInsideStrings(t *testing.T) {
	input := `{"text": "a } inside"}`
	got := FirstJSONObject(input)
	if got != input {
		t.Errorf("got %q", got)
	}
}

func TestFirstJSONObject_NoObject(t *testing.T) {
	if got := FirstJSONObject("no json here at all"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestFirstJSONObject_EmptyObject(t *testing.T) {
	if got := FirstJSONObject("nothing new: {}"); got != "{}" {
		t.Errorf("got %q", got)
	}
}
