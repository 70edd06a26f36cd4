package catalog

import "golang.org/x/text/language"

// Telugu phrases use underscores between words; they are normalised to
// spaces when the mapping is built.
var telugu = &Language{
	Code:          "te",
	Name:          "Telugu",
	NativeName:    "తెలుగు",
	Tag:           language.Telugu,
	StopWords:     []string{"నాకు", "ఉంది", "మరియు", "కూడా", "అనిపిస్తోంది"},
	ResetKeywords: []string{"అవును"},
	DoneKeywords:  []string{"పూర్తి"},
	Texts: Texts{
		Welcome:            "హలో! నేను మీ వైద్య సహాయకుడిని. దయచేసి మీ లక్షణాలను వివరించండి.",
		NoSymptomsFound:    "నేను ఏ లక్షణాలను గుర్తించలేకపోయాను. దయచేసి వాటిని వేరే విధంగా వివరించండి.",
		NoSymptomsYet:      "మీరు ఇంకా ఏ లక్షణాలను చెప్పలేదు. దయచేసి ముందుగా మీ లక్షణాలను వివరించండి.",
		NoDescription:      "వివరణ అందుబాటులో లేదు.",
		NoPrecautions:      "ప్రత్యేక జాగ్రత్తలు అందుబాటులో లేవు.",
		TopConditions:      "మొదటి 3 సంభావ్య పరిస్థితులు:",
		LowConfidence:      "⚠️ హెచ్చరిక: తక్కువ విశ్వసనీయత అంచనా. దయచేసి మరింత ఖచ్చితమైన రోగనిర్ధారణ కోసం మరిన్ని లక్షణాలను అందించండి.",
		DetailsFormat:      "%s కోసం వివరణాత్మక సమాచారం:",
		DescriptionLabel:   "వివరణ:",
		PrecautionsLabel:   "జాగ్రత్తలు:",
		AddMoreSymptoms:    "మరింత ఖచ్చితమైన రోగనిర్ధారణ కోసం మరిన్ని లక్షణాలను జోడించాలనుకుంటున్నారా? (కొనసాగించడానికి 'అవును' లేదా ముగించడానికి 'పూర్తి' టైప్ చేయండి)",
		CheckOtherSymptoms: "ఇతర లక్షణాలను తనిఖీ చేయాలనుకుంటున్నారా? (మళ్ళీ ప్రారంభించడానికి 'అవును' టైప్ చేయండి)",
		SuggestionsFormat:  "మీరు ఈ లక్షణాలను కూడా తనిఖీ చేయవచ్చు: %s",
	},
	Conditions: map[string]string{
		"AIDS":                         "ఎయిడ్స్",
		"Acne":                         "మొటిమలు",
		"Alcoholic hepatitis":          "మద్యపాన హెపటైటిస్",
		"Allergy":                      "అలెర్జీ",
		"Arthritis":                    "కీళ్ల వాతం",
		"Bronchial Asthma":             "ఊపిరితిత్తుల ఆస్తమా",
		"Cervical spondylosis":         "మెడ స్పాండిలైటిస్",
		"Chicken pox":                  "చికెన్ పాక్స్",
		"Chronic cholestasis":          "దీర్ఘకాలిక కోలెస్టాసిస్",
		"Common Cold":                  "జలుబు",
		"Dengue":                       "డెంగ్యూ",
		"Diabetes":                     "మధుమేహం",
		"Dimorphic hemorrhoids(piles)": "మూలవ్యాధి",
		"Drug Reaction":                "మందుల ప్రతిచర్య",
		"Fungal infection":             "శిలీంధ్ర సంక్రమణ",
		"GERD":                         "గ్యాస్ట్రోఎసోఫేగల్ రిఫ్లక్స్ వ్యాధి",
		"Gastroenteritis":              "గ్యాస్ట్రోఎంటరైటిస్",
		"Heart attack":                 "గుండెపోటు",
		"Hepatitis A":                  "హెపటైటిస్ ఎ",
		"Hepatitis B":                  "హెపటైటిస్ బి",
		"Hepatitis C":                  "హెపటైటిస్ సి",
		"Hepatitis D":                  "హెపటైటిస్ డి",
		"Hepatitis E":                  "హెపటైటిస్ ఇ",
		"Hypertension":                 "అధిక రక్తపోటు",
		"Hyperthyroidism":              "హైపర్థైరాయిడిజం",
		"Hypoglycemia":                 "హైపోగ్లైసీమియా",
		"Hypothyroidism":               "హైపోథైరాయిడిజం",
		"Impetigo":                     "ఇంపెటిగో",
		"Jaundice":                     "కామెర్ల",
		"Malaria":                      "మలేరియా",
		"Migraine":                     "అర్ధశిరోవేదన",
		"Osteoarthritis":               "ఆస్టియోఆర్థ్రైటిస్",
		"Paralysis (brain hemorrhage)": "పక్షవాతం (మెదడు రక్తస్రావం)",
		"Peptic ulcer disease":         "పెప్టిక్ అల్సర్ వ్యాధి",
		"Pneumonia":                    "న్యుమోనియా",
		"Psoriasis":                    "సోరియాసిస్",
		"Tuberculosis":                 "క్షయ",
		"Typhoid":                      "టైఫాయిడ్",
		"Urinary tract infection":      "మూత్ర మార్గ సంక్రమణ",
		"Varicose veins":               "వారికోస్ సిరలు",
		"Vertigo":                      "వెర్టిగో",
	},
	Phrases: map[string]string{
		"అజీర్ణం":                               "indigestion",
		"అతిసారం":                               "diarrhoea",
		"అధిక_ఆకలి":                             "excessive_hunger",
		"అధిక_జ్వరము":                           "high_fever",
		"అధిక_మూత్రం":                           "polyuria",
		"అపరిశుభ్ర_సూదులు_వాడటం":                "receiving_unsterile_injections",
		"అలసట":                                  "fatigue",
		"అవయవాలలో_బలహీనత":                       "weakness_in_limbs",
		"అశాంతి":                                "restlessness",
		"అసాధారణ_బహిష్టు":                       "abnormal_menstruation",
		"అస్థిరత":                               "unsteadiness",
		"అస్వస్థత":                              "malaise",
		"ఆందోళన":                                "anxiety",
		"ఆకలి_పెరగడం":                           "increased_appetite",
		"ఆకలి_లేకపోవడం":                         "loss_of_appetite",
		"ఆమ్లత్వం":                              "acidity",
		"ఊపిరి_ఆడకపోవడం":                        "breathlessness",
		"ఏకాగ్రత_లేకపోవడం":                      "lack_of_concentration",
		"ఒక_వైపు_శరీరం_బలహీనత":                  "weakness_of_one_body_side",
		"కంజెషన్":                               "congestion",
		"కండరాల_నొప్పి":                         "muscle_pain",
		"కండరాల_బలహీనత":                         "muscle_weakness",
		"కండరాలు_వ్యర్థం":                       "muscle_wasting",
		"కడుపు_నొప్పి":                          "belly_pain",
		"కడుపులో_రక్తస్రావం":                    "stomach_bleeding",
		"కదలికలో_బిగుసుకుపోవడం":                 "movement_stiffness",
		"కఫం":                                   "phlegm",
		"కఫంలో_రక్తం":                           "blood_in_sputum",
		"కళ్ల_వెనుక_నొప్పి":                     "pain_behind_the_eyes",
		"కళ్లు_పసుపు_రంగు":                      "yellowing_of_eyes",
		"కళ్ళ_నుండి_నీరు_కారడం":                 "watering_from_eyes",
		"కళ్ళు_ఎరుపు":                           "redness_of_eyes",
		"కాళ్ళు_వాపు":                           "swollen_legs",
		"కీళ్ల_నొప్పి":                          "joint_pain",
		"కీళ్ళు_వాపు":                           "swelling_joints",
		"కుటుంబ_చరిత్ర":                         "family_history",
		"కోమా":                                  "coma",
		"గాయాలు":                                "bruising",
		"గుండె_దడ":                              "palpitations",
		"గొంతు_మంట":                             "throat_irritation",
		"గొంతులో_పాచెస్":                        "patches_in_throat",
		"గోళ్ళలో_చిన్న_గుంటలు":                  "small_dents_in_nails",
		"గోళ్ళు_సులువుగా_విరిగిపోవడం":           "brittle_nails",
		"చర్మం_ఒలవడం":                           "skin_peeling",
		"చర్మం_గీరడం":                           "scurring",
		"చర్మం_దద్దుర్లు":                       "skin_rash",
		"చర్మంపై_మచ్చలు":                        "dischromic_patches",
		"చలి":                                   "chills",
		"చలి_చేతులు_కాళ్లు":                     "cold_hands_and_feets",
		"చిరాకు":                                "irritability",
		"చీము_మొటిమలు":                          "pus_filled_pimples",
		"చెమటలు":                                "sweating",
		"చేతులు_కాళ్ళు_వాపు":                    "swollen_extremeties",
		"ఛాతీ_నొప్పి":                           "chest_pain",
		"టైఫస్_లక్షణాలు":                        "toxic_look_(typhos)",
		"తలతిరగడం":                              "dizziness",
		"తలనొప్పి":                              "headache",
		"తిరుగుతున్నట్లు_అనిపించడం":             "spinning_movements",
		"తీవ్ర_కాలేయ_వైఫల్యం":                   "acute_liver_failure",
		"తుంటి_నొప్పి":                          "hip_joint_pain",
		"తుప్పు_రంగు_కఫం":                       "rusty_sputum",
		"తేలికపాటి_జ్వరం":                       "mild_fever",
		"థైరాయిడ్_పెరుగుదల":                     "enlarged_thyroid",
		"దగ్గు":                                 "cough",
		"దురద":                                  "itching",
		"దృష్టి_సమస్యలు":                        "visual_disturbances",
		"ద్రవ_అధిక_భారం":                        "fluid_overload",
		"నడవడంలో_నొప్పి":                        "painful_walking",
		"నల్లమచ్చలు":                            "blackheads",
		"నాలుకపై_పూత":                           "ulcers_on_tongue",
		"నిరంతర_తుమ్ములు":                       "continuous_sneezing",
		"నిరంతరం_మూత్రం_వస్తున్నట్లు_అనిపించడం": "continuous_feel_of_urine",
		"నిరాశ":                                 "depression",
		"నిర్జలీకరణం":                           "dehydration",
		"నొప్పులు":                              "cramps",
		"నోడల్_చర్మం_విస్ఫోటనాలు":               "nodal_skin_eruptions",
		"పసుపు_మూత్రం":                          "yellow_urine",
		"పసుపు_రంగు_కారుతున్న_గాయం":             "yellow_crust_ooze",
		"పసుపురంగు_చర్మం":                       "yellowish_skin",
		"పాయువు_ప్రాంతంలో_నొప్పి":               "pain_in_anal_region",
		"పాయువులో_దురద":                         "irritation_in_anus",
		"పిక్కల_సిరలు_వాపు":                     "prominent_veins_on_calf",
		"పెదవులు_ఎండిపోవడం":                     "drying_and_tingling_lips",
		"పొత్తికడుపు_ఉబ్బరం":                    "distention_of_abdomen",
		"పొత్తికడుపు_నొప్పి":                    "abdominal_pain",
		"పొత్తికడుపు_వాపు":                      "swelling_of_stomach",
		"బద్ధకం":                                "lethargy",
		"బరువు_తగ్గడం":                          "weight_loss",
		"బరువు_పెరుగడం":                         "weight_gain",
		"బొజ్జ":                                 "obesity",
		"బొబ్బ":                                 "blister",
		"మంట_మూత్రవిసర్జన":                      "burning_micturition",
		"మచ్చలు మూత్రవిసర్జన":                   "spotting_urination",
		"మద్యం_సేవించే_చరిత్ర":                  "history_of_alcohol_consumption",
		"మలబద్ధకం":                              "constipation",
		"మలవిసర్జన_సమయంలో_నొప్పి":               "pain_during_bowel_movements",
		"మసకబారిన_దృష్టి":                       "blurred_and_distorted_vision",
		"మాటలు_తడబడటం":                          "slurred_speech",
		"మార్పు_చెందిన_స్పృహ":                   "altered_sensorium",
		"ముంచిన_కళ్ళు":                          "sunken_eyes",
		"ముక్కు_కారడం":                          "runny_nose",
		"ముక్కు_చుట్టూ_ఎర్రని_పుండు":            "red_sore_around_nose",
		"ముఖం_కళ్ళు_వాపు":                       "puffy_face_and_eyes",
		"ముదురు_మూత్రం":                         "dark_urine",
		"మూడ్_స్వింగ్స్":                        "mood_swings",
		"మూత్రం_దుర్వాసన":                       "foul_smell_of_urine",
		"మూత్రాశయ_అసౌకర్యం":                     "bladder_discomfort",
		"మెడ_నొప్పి":                            "neck_pain",
		"మెడ_బిగుసుకుపోవడం":                     "stiff_neck",
		"మోకాలి_నొప్పి":                         "knee_pain",
		"రక్తనాళాలు_వాపు":                       "swollen_blood_vessels",
		"రక్తపు_మలం":                            "bloody_stool",
		"రక్తమార్పిడి_చేయించుకోవడం":             "receiving_blood_transfusion",
		"లోపలి_దురద":                            "internal_itching",
		"వణుకు":                                 "shivering",
		"వాంతులు":                               "vomiting",
		"వాపు_లింఫ్_గ్రంధులు":                   "swelled_lymph_nodes",
		"వాపుతో_కూడిన_గోళ్ళు":                   "inflammatory_nails",
		"వాయువులు_వెళ్ళడం":                      "passage_of_gases",
		"వాసన_తెలియకపోవడం":                      "loss_of_smell",
		"వికారం":                                "nausea",
		"వివాహేతర_సంబంధాలు":                     "extra_marital_contacts",
		"వెండి_రంగు_పొడి":                       "silver_like_dusting",
		"వెన్నునొప్పి":                          "back_pain",
		"వేగవంతమైన_గుండె_కొట్టుకోవడం":           "fast_heart_rate",
		"శరీరంపై_ఎరుపు_మచ్చలు":                  "red_spots_over_body",
		"శ్లేష్మం_కఫం":                          "mucoid_sputum",
		"సక్రమంగా_షుగర్_లెవల్":                  "irregular_sugar_level",
		"సమతుల్యత_కోల్పోవడం":                    "loss_of_balance",
		"సైనస్_ఒత్తిడి":                         "sinus_pressure",
	},
}
