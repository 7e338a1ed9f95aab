package engine

import (
	"strings"

	"github.com/abhisek/clincase/internal/casedef"
)

// Verdict is the Decision Evaluator's judgment of a submitted decision.
type Verdict struct {
	// MatchesOptimal reports whether the decision satisfies the stage's
	// correctness predicate.
	MatchesOptimal bool
}

// stagePredicate judges a case-normalized decision for one stage.
type stagePredicate func(decision string) bool

// predicates is the per-stage rule table. Registering a predicate here is
// the only change needed to gate a new stage; stages without an entry
// soft-pass.
//
// Only the post-intervention stage gates on correctness: the earlier
// stages branch the narrative rather than pass/fail, and the narrative
// layer corrects suboptimal picks in prose. The terminal gate is where
// guideline adherence (the secondary-prevention bundle) is decisive.
var predicates = map[casedef.StageID]stagePredicate{
	casedef.StagePostIntervention: secondaryPreventionBundle,
}

// secondaryPreventionBundle requires all three therapeutic classes of
// guideline post-MI care to be textually present: DAPT, a statin, and an
// ACE inhibitor or beta-blocker. A conjunctive keyword match, not an
// exact comparison, so rephrasings pass.
func secondaryPreventionBundle(decision string) bool {
	dapt := strings.Contains(decision, "dual antiplatelet") || strings.Contains(decision, "dapt")
	statin := strings.Contains(decision, "statin")
	aceOrBeta := strings.Contains(decision, "ace") ||
		(strings.Contains(decision, "beta") && strings.Contains(decision, "blocker"))
	return dapt && statin && aceOrBeta
}

// Evaluate judges a decision against the stage's correctness predicate.
// Stages without a registered predicate always pass. Blank decisions at a
// gated stage evaluate false; the evaluator never errors.
func Evaluate(stageID casedef.StageID, decision string) Verdict {
	pred, ok := predicates[stageID]
	if !ok {
		return Verdict{MatchesOptimal: true}
	}
	normalized := strings.ToLower(strings.TrimSpace(decision))
	if normalized == "" {
		return Verdict{MatchesOptimal: false}
	}
	return Verdict{MatchesOptimal: pred(normalized)}
}
