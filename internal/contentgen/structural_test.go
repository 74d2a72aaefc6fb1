package contentgen

import "testing"

func validNumericDraft() itemDraft {
	return itemDraft{
		Question:       "What is 5 + 7?",
		Type:           "numeric",
		CorrectNumber:  12,
		CognitiveLevel: "remember",
		AllottedSecs:   30,
		Explanation:    "5 + 7 = 12.",
	}
}

func TestStructural_ValidNumeric(t *testing.T) {
	v := &StructuralValidator{}
	d := validNumericDraft()
	if err := v.Validate(&d, GenerateInput{}); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestStructural_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*itemDraft)
	}{
		{"empty question", func(d *itemDraft) { d.Question = "" }},
		{"empty explanation", func(d *itemDraft) { d.Explanation = "" }},
		{"zero allotted time", func(d *itemDraft) { d.AllottedSecs = 0 }},
		{"unknown type", func(d *itemDraft) { d.Type = "essay" }},
		{"numeric with choices", func(d *itemDraft) { d.Choices = []string{"1", "2", "3", "4"} }},
		{"single choice with 3 options", func(d *itemDraft) {
			d.Type = "single_choice"
			d.Choices = []string{"1", "2", "3"}
			d.CorrectChoice = "1"
		}},
		{"correct choice not offered", func(d *itemDraft) {
			d.Type = "single_choice"
			d.Choices = []string{"1", "2", "3", "4"}
			d.CorrectChoice = "5"
		}},
		{"multi choice without answers", func(d *itemDraft) {
			d.Type = "multi_choice"
			d.Choices = []string{"1", "2", "3", "4"}
			d.CorrectChoices = nil
		}},
		{"multi choice answer not offered", func(d *itemDraft) {
			d.Type = "multi_choice"
			d.Choices = []string{"1", "2", "3", "4"}
			d.CorrectChoices = []string{"1", "9"}
		}},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validNumericDraft()
			tt.mutate(&d)
			verr := v.Validate(&d, GenerateInput{})
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if !verr.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}
