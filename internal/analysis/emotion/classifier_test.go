package emotion

import "testing"

func TestPredictUntrainedReturnsNeutral(t *testing.T) {
	c := NewClassifier()

	label, confidence := c.Predict("i feel so sad and depressed today")
	if label != Neutral {
		t.Fatalf("expected neutral, got %s", label)
	}
	if confidence != 0.5 {
		t.Fatalf("expected confidence 0.5, got %f", confidence)
	}
}

func TestPredictTrainedRecognizesSadness(t *testing.T) {
	c := NewClassifier()
	c.Train()

	label, confidence := c.Predict("i feel so sad and depressed today")
	if label != Sadness {
		t.Fatalf("expected sadness, got %s", label)
	}
	if confidence <= 0.7 {
		t.Fatalf("expected high confidence for a training sentence, got %f", confidence)
	}
}

func TestPredictTrainedRecognizesAnxiety(t *testing.T) {
	c := NewClassifier()
	c.Train()

	label, _ := c.Predict("im so anxious about everything lately")
	if label != Anxiety {
		t.Fatalf("expected anxiety, got %s", label)
	}
}

func TestPredictUnknownWordsDegradeToNeutral(t *testing.T) {
	c := NewClassifier()
	c.Train()

	label, confidence := c.Predict("zzz qqq xxx")
	if label != Neutral || confidence != 0.5 {
		t.Fatalf("expected neutral/0.5 for out-of-vocabulary text, got %s/%f", label, confidence)
	}
}

func TestConfidenceIsProbability(t *testing.T) {
	c := NewClassifier()
	c.Train()

	_, confidence := c.Predict("im mad at everyone")
	if confidence <= 0 || confidence > 1 {
		t.Fatalf("confidence outside (0,1]: %f", confidence)
	}
}
