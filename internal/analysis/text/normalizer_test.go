package text

import (
	"reflect"
	"testing"
)

func TestCorrectExactMisspellings(t *testing.T) {
	got := Correct("im so depresed and lonley")
	want := "im so depressed and lonely"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestCorrectStripsPunctuation(t *testing.T) {
	got := Correct("I'm sadd, really!!")
	if got != "im sad really" {
		t.Fatalf("got %q", got)
	}
}

func TestCorrectFuzzyFallback(t *testing.T) {
	// "depressedd" is not a known misspelling key but is close to "depresed".
	got := Correct("depressedd")
	if got != "depressed" {
		t.Fatalf("got %q want %q", got, "depressed")
	}
}

func TestCorrectKeepsUnknownWords(t *testing.T) {
	got := Correct("the weather is fine")
	if got != "the weather is fine" {
		t.Fatalf("got %q", got)
	}
}

func TestDetectIntentsMultiple(t *testing.T) {
	_, intents := Normalize("hello im feeling sad and alone, need help")
	want := []string{"greeting", "sadness", "loneliness", "support_request"}
	if !reflect.DeepEqual(intents, want) {
		t.Fatalf("got %v want %v", intents, want)
	}
}

func TestDetectIntentsCrisis(t *testing.T) {
	intents := DetectIntents("i want to kill myself")
	found := false
	for _, intent := range intents {
		if intent == "crisis" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected crisis intent, got %v", intents)
	}
}

func TestDetectIntentsNone(t *testing.T) {
	if intents := DetectIntents("xyzzy"); len(intents) != 0 {
		t.Fatalf("expected no intents, got %v", intents)
	}
}
