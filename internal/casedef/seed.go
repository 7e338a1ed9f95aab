package casedef

import "fmt"

func init() {
	r, err := buildRegistry(seedCases())
	if err != nil {
		panic(fmt.Sprintf("casedef: invalid seed catalog: %v", err))
	}
	registry = r
}

// seedCases returns the built-in case catalog.
func seedCases() []*CaseDefinition {
	return []*CaseDefinition{cardiacCase()}
}

func cardiacCase() *CaseDefinition {
	return &CaseDefinition{
		ID:            "stemi-001",
		Title:         "58-year-old with Acute Chest Pain",
		Specialty:     "Cardiology",
		Difficulty:    "Moderate",
		Credits:       1.0,
		ReferenceText: cardiacReference,
		Stages: []StageSpec{
			{
				ID:     StageInitial,
				Header: "Initial Diagnostic Workup",
				Options: [OptionCount]string{
					"Complete Blood Count, Metabolic Panel, and EKG",
					"Cardiac enzymes and 12-lead EKG",
					"Chest X-ray and cardiac monitoring",
					"CT angiogram with contrast",
				},
				Optimal: "Complete Blood Count, Metabolic Panel, and EKG",
			},
			{
				ID:     StageTreatment,
				Header: "Initial Treatment Decision",
				Options: [OptionCount]string{
					"Administer aspirin and nitroglycerin",
					"Perform immediate cardiac catheterization",
					"Start thrombolytic therapy",
					"Begin full-dose anticoagulation with heparin",
				},
				Optimal: "Administer aspirin and nitroglycerin",
			},
			{
				ID:     StageCatheterization,
				Header: "Catheterization Intervention",
				Options: [OptionCount]string{
					"Percutaneous Coronary Intervention (PCI) with stent",
					"Medical management with anticoagulation",
					"Coronary artery bypass grafting (CABG)",
					"Balloon angioplasty without stent placement",
				},
				Optimal: "Percutaneous Coronary Intervention (PCI) with stent",
			},
			{
				ID:     StagePostIntervention,
				Header: "Post-Intervention Management",
				Options: [OptionCount]string{
					"Initiate dual antiplatelet therapy, high-intensity statin, beta-blocker, and ACE inhibitor",
					"Administer aspirin only and continue previous medications",
					"Start therapeutic anticoagulation with low molecular weight heparin for 3 months",
					"Arrange outpatient cardiac rehabilitation without medication changes",
				},
				Optimal:    "Initiate dual antiplatelet therapy, high-intensity statin, beta-blocker, and ACE inhibitor",
				IsTerminal: true,
			},
		},
	}
}

const cardiacReference = `# Case: 58-year-old with Acute Chest Pain

## Initial Presentation
A 58-year-old male presents to the emergency department with sudden onset severe chest pain that began 2 hours ago while mowing his lawn. The pain is described as crushing, radiating to the left arm and jaw, and is rated 8/10 in severity. The patient reports shortness of breath and diaphoresis. He has a history of hypertension, hyperlipidemia, and type 2 diabetes. Current medications include lisinopril, atorvastatin, and metformin. He smokes one pack of cigarettes daily for the past 30 years.

Initial vital signs:
- BP: 165/95 mmHg
- HR: 96 bpm
- RR: 22/min
- Temp: 98.6F (37C)
- SpO2: 94% on room air

## Lab Results
### Complete Blood Count
- WBC: 9.8 x 10^9/L (normal: 4.5-11.0)
- Hgb: 14.2 g/dL (normal: 13.5-17.5)
- Hct: 42% (normal: 41-53%)
- Platelets: 245 x 10^9/L (normal: 150-450)

### Comprehensive Metabolic Panel
- Na: 138 mEq/L (normal: 135-145)
- K: 4.2 mEq/L (normal: 3.5-5.0)
- Cl: 101 mEq/L (normal: 98-107)
- CO2: 24 mEq/L (normal: 22-30)
- BUN: 18 mg/dL (normal: 7-20)
- Cr: 1.1 mg/dL (normal: 0.6-1.2)
- Glucose: 168 mg/dL (normal: 70-99)

### Cardiac Enzymes
- Troponin I: 0.32 ng/mL (normal: <0.04)
- CK-MB: 8.5 ng/mL (normal: <5.0)

### Lipid Panel
- Total Cholesterol: 235 mg/dL (normal: <200)
- LDL: 155 mg/dL (normal: <100)
- HDL: 38 mg/dL (normal: >40)
- Triglycerides: 210 mg/dL (normal: <150)

## Diagnostic Imaging
### EKG Findings
12-lead EKG shows 2 mm ST-segment elevation in leads II, III, and aVF with reciprocal ST depression in leads I and aVL.

### Optimal Management Path
Initial treatment should include aspirin 325 mg, sublingual nitroglycerin, and morphine for pain. This should be followed by immediate cardiac catheterization which will reveal a 95% occlusion of the right coronary artery. Percutaneous coronary intervention (PCI) with drug-eluting stent placement is the optimal treatment. Post-intervention therapy should include dual antiplatelet therapy, high-intensity statin, beta-blocker, and ACE inhibitor.

### Learning Points
1. Classic presentation of acute STEMI includes crushing chest pain radiating to the arm and jaw, associated with shortness of breath and diaphoresis.
2. Inferior wall MIs typically present with ST elevation in leads II, III, and aVF.
3. Primary PCI is the preferred reperfusion strategy for STEMI when available in a timely manner.
4. Optimal medical therapy post-MI includes dual antiplatelet therapy, statins, beta-blockers, and ACE inhibitors.
5. Risk factor modification, including smoking cessation, is crucial for secondary prevention.

### Correct Path Indicators
- Initial workup: Complete Blood Count, Metabolic Panel, and EKG
- Initial treatment: Administer aspirin and nitroglycerin
- Definitive treatment: Perform immediate cardiac catheterization
- Intervention: Percutaneous Coronary Intervention (PCI) with stent
- Secondary prevention: Comprehensive post-MI care (DAPT, statin, beta-blocker, ACE inhibitor)`
