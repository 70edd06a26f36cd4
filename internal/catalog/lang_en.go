package catalog

import "golang.org/x/text/language"

// English phrases are derived from the training vocabulary at load time.
var english = &Language{
	Code:          "en",
	Name:          "English",
	NativeName:    "English",
	Tag:           language.English,
	StopWords:     []string{"i", "am", "have", "having", "with", "and", "also", "feeling", "a", "my"},
	ResetKeywords: []string{"yes"},
	DoneKeywords:  []string{"done"},
	Texts: Texts{
		Welcome:            "Hello! I'm your medical assistant. Please describe your symptoms.",
		NoSymptomsFound:    "I couldn't identify any symptoms. Please try describing them differently.",
		NoSymptomsYet:      "You haven't described any symptoms yet. Please describe your symptoms first.",
		NoDescription:      "No description available.",
		NoPrecautions:      "No specific precautions available.",
		TopConditions:      "Top 3 possible conditions:",
		LowConfidence:      "⚠️ Warning: Low confidence prediction. Please provide more symptoms for a more accurate diagnosis.",
		DetailsFormat:      "Detailed information for %s:",
		DescriptionLabel:   "Description:",
		PrecautionsLabel:   "Precautions:",
		AddMoreSymptoms:    "Would you like to add more symptoms for a more accurate diagnosis? (Type 'yes' to continue or 'done' to finish)",
		CheckOtherSymptoms: "Would you like to check for other symptoms? (Type 'yes' to start over)",
		SuggestionsFormat:  "You could also check for: %s",
	},
}
