package risk

import "testing"

func TestHighRiskPhraseAlwaysHigh(t *testing.T) {
	// Classifier output must not matter when explicit self-harm language is present.
	tier, score := Assess("i want to kill myself", "neutral", 0.5, nil)
	if tier != High {
		t.Fatalf("expected high, got %s (score %d)", tier, score)
	}
}

func TestEmotionContribution(t *testing.T) {
	tier, score := Assess("everything is grey", "sadness", 0.9, nil)
	if tier != Moderate || score != 2 {
		t.Fatalf("expected moderate/2, got %s/%d", tier, score)
	}

	tier, score = Assess("so wound up", "anxiety", 0.75, nil)
	if tier != Low || score != 1 {
		t.Fatalf("expected low/1, got %s/%d", tier, score)
	}
}

func TestLowConfidenceEmotionIgnored(t *testing.T) {
	tier, score := Assess("hmm", "sadness", 0.5, nil)
	if tier != None || score != 0 {
		t.Fatalf("expected none/0, got %s/%d", tier, score)
	}
}

func TestHistoryEscalation(t *testing.T) {
	// One recent high turn adds 2; combined with an anxious message that is
	// enough for the high tier.
	tier, _ := Assess("still worried", "anxiety", 0.8, []string{High, None, None})
	if tier != High {
		t.Fatalf("expected high, got %s", tier)
	}

	tier, _ = Assess("still worried", "anxiety", 0.8, []string{Moderate, Moderate, None})
	if tier != Moderate {
		t.Fatalf("expected moderate, got %s", tier)
	}
}

func TestModeratePhrases(t *testing.T) {
	tier, score := Assess("there is no point anymore", "neutral", 0.5, nil)
	if tier != Moderate || score != 2 {
		t.Fatalf("expected moderate/2, got %s/%d", tier, score)
	}
}
