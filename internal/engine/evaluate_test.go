package engine

import (
	"testing"

	"github.com/abhisek/clincase/internal/casedef"
)

func TestEvaluate_SoftPassStages(t *testing.T) {
	softStages := []casedef.StageID{
		casedef.StageInitial,
		casedef.StageTreatment,
		casedef.StageCatheterization,
	}
	for _, id := range softStages {
		for _, decision := range []string{
			"Chest X-ray and cardiac monitoring",
			"do nothing",
			"",
		} {
			if v := Evaluate(id, decision); !v.MatchesOptimal {
				t.Errorf("stage %s should soft-pass %q", id, decision)
			}
		}
	}
}

func TestEvaluate_PostIntervention(t *testing.T) {
	tests := []struct {
		decision string
		want     bool
	}{
		{"Initiate dual antiplatelet therapy, high-intensity statin, beta-blocker, and ACE inhibitor", true},
		{"DAPT plus a statin plus an ACE inhibitor", true},
		{"dapt, atorvastatin (statin), metoprolol beta-blocker", true},
		{"Dual Antiplatelet Therapy with STATIN and Beta-Blocker", true},
		{"Administer aspirin only and continue previous medications", false},
		{"Start therapeutic anticoagulation with low molecular weight heparin for 3 months", false},
		{"dual antiplatelet therapy and statin", false},       // missing ACE / beta-blocker
		{"statin, beta-blocker, and ACE inhibitor", false},    // missing DAPT
		{"dual antiplatelet therapy and ACE inhibitor", false}, // missing statin
		{"dapt, statin, beta agonist", false},                 // beta without blocker
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		got := Evaluate(casedef.StagePostIntervention, tt.decision)
		if got.MatchesOptimal != tt.want {
			t.Errorf("Evaluate(post_intervention, %q) = %v, want %v", tt.decision, got.MatchesOptimal, tt.want)
		}
	}
}
