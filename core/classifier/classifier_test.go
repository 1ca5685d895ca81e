package classifier

import (
	"sync"
	"testing"
)

// TestClassify verifies routing decisions, scores and the branch taken.
func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantDomain Domain
		wantReason Reason
		wantScores *Scores
	}{
		{"bare arithmetic", "What is 2 + 3?", DomainMath, ReasonScore, &Scores{Math: 3, Physics: 0}},
		{"physical constant", "What is the speed of light?", DomainPhysics, ReasonScore, &Scores{Math: 0, Physics: 4}},
		{"neither domain", "Can you help me understand photosynthesis?", DomainTutor, ReasonFallback, &Scores{Math: 1, Physics: 0}},
		{"formula pattern", "F = ma", DomainPhysics, ReasonScore, &Scores{Math: 1, Physics: 3}},
		{"scenario with units", "A ball thrown at 20 m/s", DomainPhysics, ReasonScore, &Scores{Math: 1, Physics: 4}},
		{"tie broken by theory cue", "pure math and physics", DomainMath, ReasonTieBreak, &Scores{Math: 4, Physics: 4}},
		{"tie broken by application cue", "math and physics in a real world experiment", DomainPhysics, ReasonTieBreak, nil},
		{"tie without cues", "math and physics theory", DomainTutor, ReasonTieBreak, &Scores{Math: 4, Physics: 4}},
		{"tie with arithmetic", "physical 2+2", DomainMath, ReasonTieBreak, &Scores{Math: 3, Physics: 3}},
		{"empty text", "", DomainTutor, ReasonFallback, &Scores{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got.Domain != tt.wantDomain {
				t.Errorf("Domain = %q, want %q (scores %+v)", got.Domain, tt.wantDomain, got.Scores)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if tt.wantScores != nil && got.Scores != *tt.wantScores {
				t.Errorf("Scores = %+v, want %+v", got.Scores, *tt.wantScores)
			}
		})
	}
}

// TestClassify_Deterministic verifies that repeated calls agree, also when
// run concurrently.
func TestClassify_Deterministic(t *testing.T) {
	texts := []string{
		"What is 2 + 3?",
		"What is the speed of light?",
		"Can you help me understand photosynthesis?",
		"Solve x^2 = 16 for x",
	}

	for _, text := range texts {
		first := Classify(text)
		if second := Classify(text); second != first {
			t.Errorf("Classify(%q) changed: %+v then %+v", text, first, second)
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, text := range texts {
				want := Classify(text)
				if got := Classify(text); got != want {
					t.Errorf("concurrent Classify(%q) = %+v, want %+v", text, got, want)
				}
			}
		}()
	}
	wg.Wait()
}

// TestDecision_Fallback verifies the fallback signal.
func TestDecision_Fallback(t *testing.T) {
	if !Classify("hello").Fallback() {
		t.Error("greeting should fall back to the tutor")
	}
	if Classify("What is 2 + 3?").Fallback() {
		t.Error("arithmetic must not be a fallback")
	}
}

// TestScore_CaseInsensitive verifies keyword matching ignores case.
func TestScore_CaseInsensitive(t *testing.T) {
	lower := Score("explain kinetic energy")
	upper := Score("EXPLAIN KINETIC ENERGY")
	if lower != upper {
		t.Errorf("Score differs by case: %+v vs %+v", lower, upper)
	}
	if lower.Physics != 2 {
		t.Errorf("Physics = %d, want 2", lower.Physics)
	}
}

// TestKeywords_ReturnCopies verifies callers cannot mutate the lists.
func TestKeywords_ReturnCopies(t *testing.T) {
	keywords := MathKeywords()
	keywords[0] = "changed"
	if MathKeywords()[0] != "calculate" {
		t.Error("MathKeywords exposed the package slice")
	}
	physics := PhysicsKeywords()
	physics[0] = "changed"
	if PhysicsKeywords()[0] != "physics" {
		t.Error("PhysicsKeywords exposed the package slice")
	}
}
