package catalog

import "golang.org/x/text/language"

// A phrase listed for two symptoms maps to the one listed last.
var hindi = &Language{
	Code:          "hi",
	Name:          "Hindi",
	NativeName:    "हिंदी",
	Tag:           language.Hindi,
	StopWords:     []string{"मुझे", "है", "हैं", "और", "भी", "महसूस", "कर", "रहा", "रही"},
	ResetKeywords: []string{"हाँ"},
	DoneKeywords:  []string{"समाप्त"},
	Texts: Texts{
		Welcome:            "नमस्ते! मैं आपका चिकित्सा सहायक हूं। कृपया अपने लक्षणों का वर्णन करें।",
		NoSymptomsFound:    "मैं कोई लक्षण नहीं पहचान पाया। कृपया उन्हें अलग तरीके से बताएं।",
		NoSymptomsYet:      "आपने अभी तक कोई लक्षण नहीं बताया है। कृपया पहले अपने लक्षण बताएं।",
		NoDescription:      "कोई विवरण उपलब्ध नहीं है।",
		NoPrecautions:      "कोई विशेष सावधानियां उपलब्ध नहीं हैं।",
		TopConditions:      "शीर्ष 3 संभावित स्थितियां:",
		LowConfidence:      "⚠️ चेतावनी: कम विश्वसनीयता वाली भविष्यवाणी। कृपया अधिक सटीक निदान के लिए अधिक लक्षण प्रदान करें।",
		DetailsFormat:      "%s के लिए विस्तृत जानकारी:",
		DescriptionLabel:   "विवरण:",
		PrecautionsLabel:   "सावधानियां:",
		AddMoreSymptoms:    "क्या आप अधिक सटीक निदान के लिए और लक्षण जोड़ना चाहेंगे? ('हाँ' जारी रखने के लिए या 'समाप्त' समाप्त करने के लिए टाइप करें)",
		CheckOtherSymptoms: "क्या आप अन्य लक्षणों की जांच करना चाहेंगे? (फिर से शुरू करने के लिए 'हाँ' टाइप करें)",
		SuggestionsFormat:  "आप इन लक्षणों की भी जांच कर सकते हैं: %s",
	},
	Conditions: map[string]string{
		"AIDS":                         "एड्स",
		"Acne":                         "मुंहासे",
		"Alcoholic hepatitis":          "अल्कोहलिक हेपेटाइटिस",
		"Allergy":                      "एलर्जी",
		"Arthritis":                    "गठिया",
		"Bronchial Asthma":             "ब्रोंकियल अस्थमा",
		"Cervical spondylosis":         "सर्वाइकल स्पॉन्डिलाइटिस",
		"Chicken pox":                  "चेचक",
		"Chronic cholestasis":          "क्रोनिक कोलेस्टासिस",
		"Common Cold":                  "सामान्य सर्दी",
		"Dengue":                       "डेंगू",
		"Diabetes":                     "मधुमेह",
		"Dimorphic hemorrhoids(piles)": "बवासीर",
		"Drug Reaction":                "दवा प्रतिक्रिया",
		"Fungal infection":             "फंगल संक्रमण",
		"GERD":                         "गैस्ट्रोइसोफेगल रिफ्लक्स रोग",
		"Gastroenteritis":              "गैस्ट्रोएंटेराइटिस",
		"Heart attack":                 "दिल का दौरा",
		"Hepatitis A":                  "हेपेटाइटिस ए",
		"Hepatitis B":                  "हेपेटाइटिस बी",
		"Hepatitis C":                  "हेपेटाइटिस सी",
		"Hepatitis D":                  "हेपेटाइटिस डी",
		"Hepatitis E":                  "हेपेटाइटिस ई",
		"Hypertension":                 "उच्च रक्तचाप",
		"Hyperthyroidism":              "हाइपरथायरायडिज्म",
		"Hypoglycemia":                 "हाइपोग्लाइसीमिया",
		"Hypothyroidism":               "हाइपोथायरायडिज्म",
		"Impetigo":                     "इम्पेटिगो",
		"Jaundice":                     "पीलिया",
		"Malaria":                      "मलेरिया",
		"Migraine":                     "माइग्रेन",
		"Osteoarthritis":               "ऑस्टियोआर्थराइटिस",
		"Paralysis (brain hemorrhage)": "लकवा (मस्तिष्क रक्तस्राव)",
		"Peptic ulcer disease":         "पेप्टिक अल्सर रोग",
		"Pneumonia":                    "निमोनिया",
		"Psoriasis":                    "सोरायसिस",
		"Tuberculosis":                 "क्षय रोग",
		"Typhoid":                      "टाइफाइड",
		"Urinary tract infection":      "मूत्र मार्ग संक्रमण",
		"Varicose veins":               "वैरिकोस नसें",
		"Vertigo":                      "वर्टिगो",
	},
	Phrases: map[string]string{
		"अंगों में कमजोरी":          "weakness_in_limbs",
		"अत्यधिक भूख":               "excessive_hunger",
		"अनियमित शुगर स्तर":         "irregular_sugar_level",
		"अपच":                       "indigestion",
		"अवसाद":                     "depression",
		"असामान्य मासिक धर्म":       "abnormal_menstruation",
		"अस्थिरता":                  "unsteadiness",
		"अस्पष्ट बोलना":             "slurred_speech",
		"अस्वच्छ इंजेक्शन":          "receiving_unsterile_injections",
		"अस्वस्थता":                 "malaise",
		"आँखों का पीला होना":        "yellowing_of_eyes",
		"आँखों के पीछे दर्द":        "pain_behind_the_eyes",
		"आँखों से पानी आना":         "watering_from_eyes",
		"आंखों की लाली":             "redness_of_eyes",
		"आंतरिक खुजली":              "internal_itching",
		"उल्टी":                     "vomiting",
		"एकाग्रता की कमी":           "lack_of_concentration",
		"एसिडिटी":                   "acidity",
		"ऐंठन":                      "cramps",
		"कंपकंपी":                   "shivering",
		"कफ":                        "phlegm",
		"कब्ज":                      "congestion",
		"कूल्हे के जोड़ों का दर्द":  "hip_joint_pain",
		"कोमा":                      "coma",
		"खांसी":                     "cough",
		"खुजली":                     "itching",
		"गंध की हानि":               "loss_of_smell",
		"गति में कठोरता":            "movement_stiffness",
		"गर्दन में अकड़न":           "stiff_neck",
		"गर्दन में दर्द":            "neck_pain",
		"गले में जलन":               "throat_irritation",
		"गले में पैच":               "patches_in_throat",
		"गहरे रंग का मूत्र":         "dark_urine",
		"गांठदार त्वचा पर दाने":     "nodal_skin_eruptions",
		"गुदा क्षेत्र में दर्द":     "pain_in_anal_region",
		"गुदा में जलन":              "irritation_in_anus",
		"गैसों का निकलना":           "passage_of_gases",
		"घुटनों का दर्द":            "knee_pain",
		"घूमना":                     "spinning_movements",
		"चक्कर आना":                 "dizziness",
		"चलने में दर्द":             "painful_walking",
		"चांदी जैसी धूल":            "silver_like_dusting",
		"चिंता":                     "anxiety",
		"चिड़चिड़ापन":               "irritability",
		"चोट":                       "bruising",
		"छाला":                      "blister",
		"जंग लगा बलगम":              "rusty_sputum",
		"जीभ पर छाले":               "ulcers_on_tongue",
		"जोड़ों में दर्द":           "joint_pain",
		"जोड़ों में सूजन":           "swelling_joints",
		"ठंड लगना":                  "chills",
		"ठंडे हाथ और पैर":           "cold_hands_and_feets",
		"तरल पदार्थ अधिकता":         "fluid_overload",
		"तरल पदार्थ की अधिकता":      "fluid_overload",
		"तीव्र यकृत विफलता":         "acute_liver_failure",
		"तेज बुखार":                 "high_fever",
		"त्वचा का छिलना":            "skin_peeling",
		"त्वचा का पीला पड़ना":       "yellowish_skin",
		"त्वचा खरोंच":               "scurring",
		"त्वचा पर चकत्ते":           "skin_rash",
		"त्वचा पर धब्बे":            "dischromic_patches",
		"थकान":                      "fatigue",
		"दस्त":                      "diarrhoea",
		"दाग-धब्बे पेशाब":           "spotting_urination",
		"दिल की तेज़ गति":           "fast_heart_rate",
		"दृष्टि विकार":              "visual_disturbances",
		"धँसी हुई आँखें":            "sunken_eyes",
		"धड़कन":                     "palpitations",
		"धुंधली और विकृत दृष्टि":    "blurred_and_distorted_vision",
		"नाक के आसपास लाल घाव":      "red_sore_around_nose",
		"नाक बहना":                  "runny_nose",
		"नाखूनों में छोटे गड्ढे":    "small_dents_in_nails",
		"निर्जलीकरण":                "dehydration",
		"पसीना":                     "sweating",
		"पारिवारिक इतिहास":          "family_history",
		"पिंडली की उभरी नसें":       "prominent_veins_on_calf",
		"पीठ दर्द":                  "back_pain",
		"पीली पपड़ी":                "yellow_crust_ooze",
		"पेट का फूलना":              "distention_of_abdomen",
		"पेट दर्द":                  "abdominal_pain",
		"पेट में दर्द":              "belly_pain",
		"पेट से रक्तस्राव":          "stomach_bleeding",
		"पेशाब पीला":                "yellow_urine",
		"पेशाब में जलन":             "burning_micturition",
		"फूला हुआ चेहरा और आंखें":   "puffy_face_and_eyes",
		"बढ़ा हुआ थायरॉइड":          "enlarged_thyroid",
		"बलगम में खून":              "blood_in_sputum",
		"बहुमूत्रता":                "polyuria",
		"बेचैनी":                    "restlessness",
		"ब्लैकहेड्स":                "blackheads",
		"भंगुर नाखून":               "brittle_nails",
		"भूख न लगना":                "loss_of_appetite",
		"भूख बढ़ना":                 "increased_appetite",
		"मतली":                      "nausea",
		"मल त्याग के दौरान दर्द":    "pain_during_bowel_movements",
		"मल में खून":                "bloody_stool",
		"मवाद भरे फुंसी":            "pus_filled_pimples",
		"मांसपेशियों में कमजोरी":    "muscle_weakness",
		"मांसपेशियों में दर्द":      "muscle_pain",
		"मूड में बदलाव":             "mood_swings",
		"मूत्र की दुर्गंध":          "foul_smell_of_urine",
		"मूत्राशय में असुविधा":      "bladder_discomfort",
		"मोटापा":                    "obesity",
		"रक्त चढ़ाना":               "receiving_blood_transfusion",
		"लगातार छींक आना":           "continuous_sneezing",
		"लगातार पेशाब का अहसास":     "continuous_feel_of_urine",
		"लिम्फ नोड्स में सूजन":      "swelled_lymph_nodes",
		"वजन घटना":                  "weight_loss",
		"वजन बढ़ना":                 "weight_gain",
		"विवाहेतर संपर्क":           "extra_marital_contacts",
		"विषैला रूप (टाइफोस)":       "toxic_look_(typhos)",
		"शराब पीने का इतिहास":       "history_of_alcohol_consumption",
		"शरीर के एक तरफ की कमजोरी":  "weakness_of_one_body_side",
		"शरीर पर लाल धब्बे":         "red_spots_over_body",
		"श्लेष्मा बलगम":             "mucoid_sputum",
		"संतुलन खोना":               "loss_of_balance",
		"संवेदी संवेदना में बदलाव":  "altered_sensorium",
		"सांस फूलना":                "breathlessness",
		"साइनस का दबाव":             "sinus_pressure",
		"सिरदर्द":                   "headache",
		"सीने में दर्द":             "chest_pain",
		"सुस्ती":                    "lethargy",
		"सूजी हुई रक्त वाहिकाएं":    "swollen_blood_vessels",
		"सूजे हुए नाखून":            "inflammatory_nails",
		"सूजे हुए पैर":              "swollen_legs",
		"सूजे हुए हाथ-पैर":          "swollen_extremeties",
		"हल्का बुखार":               "mild_fever",
		"होठों का सूखना और झुनझुनी": "drying_and_tingling_lips",
	},
}
