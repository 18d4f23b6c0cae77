package drugref

// SeedDrugs is the static reference table loaded by the migrate command.
// Interaction partners and contraindications are stored as lowercase terms
// so lookups can compare without normalizing twice.
var SeedDrugs = []Drug{
	{
		Name:              "warfarin",
		GenericName:       "warfarin sodium",
		BrandNames:        []string{"Coumadin", "Jantoven"},
		Class:             "Anticoagulant",
		Interactions:      []string{"aspirin", "ibuprofen", "naproxen", "celecoxib", "clopidogrel", "heparin", "amiodarone", "fluconazole", "metronidazole", "clarithromycin", "erythromycin", "ciprofloxacin", "sulfamethoxazole"},
		FoodInteractions:  []string{"green leafy vegetables", "cranberry juice", "alcohol", "grapefruit juice", "garlic supplements", "ginger", "ginseng"},
		Contraindications: []string{"active bleeding", "severe liver disease", "pregnancy"},
		SideEffects:       []string{"bleeding", "bruising", "hair loss", "skin necrosis"},
		Warnings:          "Increased bleeding risk. Monitor INR closely.",
	},
	{
		Name:              "aspirin",
		GenericName:       "acetylsalicylic acid",
		BrandNames:        []string{"Bayer", "Ecotrin"},
		Class:             "Antiplatelet/NSAID",
		Interactions:      []string{"warfarin", "heparin", "clopidogrel", "ibuprofen", "naproxen", "methotrexate", "ace inhibitors", "furosemide"},
		FoodInteractions:  []string{"alcohol", "ginger", "garlic supplements", "turmeric"},
		Contraindications: []string{"active gi bleeding", "severe asthma", "children with viral infections"},
		SideEffects:       []string{"gi bleeding", "tinnitus", "nausea", "heartburn"},
		Warnings:          "Increased bleeding risk, GI irritation. Use with caution in peptic ulcer disease.",
	},
	{
		Name:              "lisinopril",
		GenericName:       "lisinopril",
		BrandNames:        []string{"Prinivil", "Zestril"},
		Class:             "ACE Inhibitor",
		Interactions:      []string{"potassium supplements", "spironolactone", "amiloride", "nsaids", "lithium", "aliskiren"},
		FoodInteractions:  []string{"salt substitutes", "potassium-rich foods", "alcohol"},
		Contraindications: []string{"pregnancy", "bilateral renal artery stenosis", "angioedema history"},
		SideEffects:       []string{"dry cough", "hyperkalemia", "angioedema", "hypotension"},
		Warnings:          "Monitor potassium levels. Risk of hyperkalemia and acute kidney injury.",
	},
	{
		Name:              "atorvastatin",
		GenericName:       "atorvastatin calcium",
		BrandNames:        []string{"Lipitor"},
		Class:             "HMG-CoA Reductase Inhibitor",
		Interactions:      []string{"clarithromycin", "erythromycin", "itraconazole", "ketoconazole", "cyclosporine", "gemfibrozil", "niacin", "digoxin"},
		FoodInteractions:  []string{"grapefruit juice", "alcohol"},
		Contraindications: []string{"active liver disease", "pregnancy", "breastfeeding"},
		SideEffects:       []string{"myalgia", "elevated liver enzymes", "headache", "nausea"},
		Warnings:          "Monitor liver enzymes and creatine kinase. Risk of myopathy and rhabdomyolysis.",
	},
	{
		Name:              "amlodipine",
		GenericName:       "amlodipine besylate",
		BrandNames:        []string{"Norvasc"},
		Class:             "Calcium Channel Blocker",
		Interactions:      []string{"simvastatin", "cyclosporine", "tacrolimus"},
		FoodInteractions:  []string{"grapefruit juice", "high sodium foods"},
		Contraindications: []string{"severe aortic stenosis", "cardiogenic shock"},
		SideEffects:       []string{"peripheral edema", "fatigue", "dizziness", "flushing"},
		Warnings:          "Monitor blood pressure. May cause peripheral edema.",
	},
	{
		Name:              "metformin",
		GenericName:       "metformin hydrochloride",
		BrandNames:        []string{"Glucophage", "Fortamet"},
		Class:             "Biguanide",
		Interactions:      []string{"contrast agents", "cimetidine", "furosemide", "nifedipine", "topiramate"},
		FoodInteractions:  []string{"alcohol", "high fiber meals"},
		Contraindications: []string{"severe kidney disease", "metabolic acidosis", "severe dehydration"},
		SideEffects:       []string{"gi upset", "nausea", "diarrhea", "metallic taste", "vitamin b12 deficiency"},
		Warnings:          "Risk of lactic acidosis. Discontinue before contrast procedures.",
	},
	{
		Name:              "insulin",
		GenericName:       "insulin human",
		BrandNames:        []string{"Humulin", "Novolin"},
		Class:             "Hormone",
		Interactions:      []string{"ace inhibitors", "beta blockers", "octreotide", "lanreotide"},
		FoodInteractions:  []string{"alcohol"},
		Contraindications: []string{"hypoglycemia"},
		SideEffects:       []string{"hypoglycemia", "weight gain", "injection site reactions"},
		Warnings:          "Risk of hypoglycemia. Monitor blood glucose closely.",
	},
	{
		Name:              "glipizide",
		GenericName:       "glipizide",
		BrandNames:        []string{"Glucotrol"},
		Class:             "Sulfonylurea",
		Interactions:      []string{"warfarin", "fluconazole", "clarithromycin", "beta blockers"},
		FoodInteractions:  []string{"alcohol"},
		Contraindications: []string{"type 1 diabetes", "diabetic ketoacidosis"},
		SideEffects:       []string{"hypoglycemia", "weight gain", "nausea"},
		Warnings:          "Risk of hypoglycemia, especially in elderly.",
	},
	{
		Name:              "amoxicillin",
		GenericName:       "amoxicillin",
		BrandNames:        []string{"Amoxil"},
		Class:             "Penicillin Antibiotic",
		Interactions:      []string{"warfarin", "methotrexate", "oral contraceptives"},
		Contraindications: []string{"penicillin allergy"},
		SideEffects:       []string{"diarrhea", "nausea", "rash", "candidiasis"},
		Warnings:          "Risk of allergic reactions. May reduce oral contraceptive effectiveness.",
	},
	{
		Name:              "clarithromycin",
		GenericName:       "clarithromycin",
		BrandNames:        []string{"Biaxin"},
		Class:             "Macrolide Antibiotic",
		Interactions:      []string{"warfarin", "statins", "digoxin", "theophylline", "carbamazepine", "cyclosporine"},
		FoodInteractions:  []string{"grapefruit juice"},
		Contraindications: []string{"history of qt prolongation", "severe liver disease"},
		SideEffects:       []string{"nausea", "diarrhea", "taste disturbance", "qt prolongation"},
		Warnings:          "QT prolongation risk. Multiple drug interactions via CYP3A4.",
	},
	{
		Name:              "ciprofloxacin",
		GenericName:       "ciprofloxacin hydrochloride",
		BrandNames:        []string{"Cipro"},
		Class:             "Fluoroquinolone Antibiotic",
		Interactions:      []string{"warfarin", "theophylline", "tizanidine"},
		FoodInteractions:  []string{"dairy products", "calcium supplements", "iron supplements"},
		Contraindications: []string{"tendon disorders", "myasthenia gravis"},
		SideEffects:       []string{"nausea", "diarrhea", "tendinitis", "cns effects"},
		Warnings:          "Tendon rupture risk. C. diff colitis risk.",
	},
	{
		Name:              "omeprazole",
		GenericName:       "omeprazole",
		BrandNames:        []string{"Prilosec"},
		Class:             "Proton Pump Inhibitor",
		Interactions:      []string{"warfarin", "clopidogrel", "digoxin", "ketoconazole", "iron supplements"},
		Contraindications: []string{"hypersensitivity to ppis"},
		SideEffects:       []string{"headache", "nausea", "diarrhea", "vitamin b12 deficiency"},
		Warnings:          "Long-term use may increase risk of fractures and C. diff.",
	},
	{
		Name:              "ranitidine",
		GenericName:       "ranitidine hydrochloride",
		BrandNames:        []string{"Zantac"},
		Class:             "H2 Receptor Antagonist",
		Interactions:      []string{"warfarin", "ketoconazole", "atazanavir"},
		FoodInteractions:  []string{"alcohol"},
		Contraindications: []string{"hypersensitivity"},
		SideEffects:       []string{"headache", "dizziness", "constipation"},
		Warnings:          "Recalled in some markets due to NDMA contamination.",
	},
	{
		Name:              "albuterol",
		GenericName:       "albuterol sulfate",
		BrandNames:        []string{"Ventolin", "ProAir"},
		Class:             "Beta-2 Agonist",
		Interactions:      []string{"beta blockers", "digoxin", "tricyclic antidepressants"},
		FoodInteractions:  []string{"caffeine"},
		Contraindications: []string{"hypersensitivity"},
		SideEffects:       []string{"tachycardia", "tremor", "nervousness", "headache"},
		Warnings:          "May cause paradoxical bronchospasm. Monitor heart rate.",
	},
	{
		Name:              "theophylline",
		GenericName:       "theophylline",
		BrandNames:        []string{"Theo-24"},
		Class:             "Methylxanthine",
		Interactions:      []string{"ciprofloxacin", "erythromycin", "cimetidine", "phenytoin", "carbamazepine"},
		FoodInteractions:  []string{"caffeine", "alcohol", "charcoal-broiled foods"},
		Contraindications: []string{"uncontrolled seizures", "active peptic ulcer"},
		SideEffects:       []string{"nausea", "tachycardia", "seizures", "arrhythmias"},
		Warnings:          "Narrow therapeutic index. Monitor serum levels.",
	},
	{
		Name:              "phenytoin",
		GenericName:       "phenytoin sodium",
		BrandNames:        []string{"Dilantin"},
		Class:             "Anticonvulsant",
		Interactions:      []string{"warfarin", "digoxin", "oral contraceptives", "folic acid", "carbamazepine"},
		FoodInteractions:  []string{"enteral nutrition"},
		Contraindications: []string{"sinus bradycardia", "heart block"},
		SideEffects:       []string{"gingival hyperplasia", "hirsutism", "ataxia", "nystagmus"},
		Warnings:          "Narrow therapeutic index. Monitor serum levels and signs of toxicity.",
	},
	{
		Name:              "carbamazepine",
		GenericName:       "carbamazepine",
		BrandNames:        []string{"Tegretol"},
		Class:             "Anticonvulsant",
		Interactions:      []string{"warfarin", "oral contraceptives", "clarithromycin", "fluoxetine", "diltiazem"},
		FoodInteractions:  []string{"grapefruit juice"},
		Contraindications: []string{"bone marrow suppression", "av block"},
		SideEffects:       []string{"diplopia", "ataxia", "nausea", "rash", "hyponatremia"},
		Warnings:          "Risk of aplastic anemia. Monitor CBC regularly.",
	},
	{
		Name:              "ibuprofen",
		GenericName:       "ibuprofen",
		BrandNames:        []string{"Advil", "Motrin"},
		Class:             "NSAID",
		Interactions:      []string{"warfarin", "ace inhibitors", "lithium", "methotrexate", "digoxin"},
		FoodInteractions:  []string{"alcohol"},
		Contraindications: []string{"active gi bleeding", "severe heart failure"},
		SideEffects:       []string{"gi upset", "hypertension", "fluid retention", "kidney dysfunction"},
		Warnings:          "Increased cardiovascular and GI risks. Use lowest effective dose.",
	},
	{
		Name:              "naproxen",
		GenericName:       "naproxen sodium",
		BrandNames:        []string{"Aleve", "Naprosyn"},
		Class:             "NSAID",
		Interactions:      []string{"warfarin", "ace inhibitors", "lithium", "methotrexate", "cyclosporine"},
		FoodInteractions:  []string{"alcohol"},
		Contraindications: []string{"active gi bleeding", "severe kidney disease"},
		SideEffects:       []string{"gi bleeding", "hypertension", "edema", "dizziness"},
		Warnings:          "Increased cardiovascular risk. Monitor kidney function.",
	},
	{
		Name:              "morphine",
		GenericName:       "morphine sulfate",
		BrandNames:        []string{"MS Contin"},
		Class:             "Opioid Analgesic",
		Interactions:      []string{"mao inhibitors", "cns depressants", "muscle relaxants", "sedatives"},
		FoodInteractions:  []string{"alcohol"},
		Contraindications: []string{"respiratory depression", "paralytic ileus"},
		SideEffects:       []string{"respiratory depression", "constipation", "nausea", "sedation"},
		Warnings:          "Risk of respiratory depression and dependence.",
	},
	{
		Name:              "sertraline",
		GenericName:       "sertraline hydrochloride",
		BrandNames:        []string{"Zoloft"},
		Class:             "SSRI Antidepressant",
		Interactions:      []string{"mao inhibitors", "warfarin", "digoxin", "triptans", "tramadol"},
		FoodInteractions:  []string{"alcohol"},
		Contraindications: []string{"mao inhibitor use", "pimozide use"},
		SideEffects:       []string{"nausea", "diarrhea", "insomnia", "sexual dysfunction"},
		Warnings:          "Serotonin syndrome risk. Monitor for suicidal thoughts.",
	},
	{
		Name:              "fluoxetine",
		GenericName:       "fluoxetine hydrochloride",
		BrandNames:        []string{"Prozac"},
		Class:             "SSRI Antidepressant",
		Interactions:      []string{"mao inhibitors", "warfarin", "phenytoin", "carbamazepine", "triptans"},
		FoodInteractions:  []string{"alcohol"},
		Contraindications: []string{"mao inhibitor use", "thioridazine use"},
		SideEffects:       []string{"nausea", "headache", "insomnia", "anxiety"},
		Warnings:          "Long half-life. Serotonin syndrome risk.",
	},
	{
		Name:              "levothyroxine",
		GenericName:       "levothyroxine sodium",
		BrandNames:        []string{"Synthroid", "Levoxyl"},
		Class:             "Thyroid Hormone",
		Interactions:      []string{"warfarin", "digoxin", "insulin", "iron supplements", "calcium supplements"},
		FoodInteractions:  []string{"soy products", "fiber", "coffee", "calcium-rich foods"},
		Contraindications: []string{"uncorrected adrenal insufficiency", "acute mi"},
		SideEffects:       []string{"palpitations", "tremor", "insomnia", "weight loss"},
		Warnings:          "Take on empty stomach. Monitor TSH levels.",
	},
	{
		Name:              "furosemide",
		GenericName:       "furosemide",
		BrandNames:        []string{"Lasix"},
		Class:             "Loop Diuretic",
		Interactions:      []string{"lithium", "digoxin", "aminoglycosides", "nsaids", "ace inhibitors"},
		FoodInteractions:  []string{"alcohol", "licorice"},
		Contraindications: []string{"anuria", "severe electrolyte depletion"},
		SideEffects:       []string{"hypokalemia", "hyponatremia", "dehydration", "ototoxicity"},
		Warnings:          "Monitor electrolytes, kidney function, and hearing. Risk of dehydration.",
	},
	{
		Name:              "hydrochlorothiazide",
		GenericName:       "hydrochlorothiazide",
		BrandNames:        []string{"Microzide"},
		Class:             "Thiazide Diuretic",
		Interactions:      []string{"lithium", "digoxin", "nsaids", "corticosteroids"},
		FoodInteractions:  []string{"alcohol", "licorice"},
		Contraindications: []string{"anuria", "severe kidney disease"},
		SideEffects:       []string{"hypokalemia", "hyperglycemia", "hyperuricemia", "photosensitivity"},
		Warnings:          "Monitor electrolytes and blood glucose. May worsen diabetes.",
	},
	{
		Name:              "spironolactone",
		GenericName:       "spironolactone",
		BrandNames:        []string{"Aldactone"},
		Class:             "Potassium-Sparing Diuretic",
		Interactions:      []string{"ace inhibitors", "potassium supplements", "nsaids", "lithium"},
		FoodInteractions:  []string{"salt substitutes", "potassium-rich foods"},
		Contraindications: []string{"hyperkalemia", "severe kidney disease", "addison disease"},
		SideEffects:       []string{"hyperkalemia", "gynecomastia", "menstrual irregularities"},
		Warnings:          "Monitor potassium levels. Risk of hyperkalemia.",
	},
	{
		Name:              "metoprolol",
		GenericName:       "metoprolol tartrate",
		BrandNames:        []string{"Lopressor", "Toprol-XL"},
		Class:             "Beta-1 Selective Blocker",
		Interactions:      []string{"verapamil", "diltiazem", "clonidine", "insulin", "epinephrine"},
		FoodInteractions:  []string{"alcohol"},
		Contraindications: []string{"severe bradycardia", "heart block", "cardiogenic shock"},
		SideEffects:       []string{"bradycardia", "hypotension", "fatigue", "depression"},
		Warnings:          "Do not stop abruptly. Monitor heart rate and blood pressure.",
	},
	{
		Name:              "propranolol",
		GenericName:       "propranolol hydrochloride",
		BrandNames:        []string{"Inderal"},
		Class:             "Non-Selective Beta Blocker",
		Interactions:      []string{"verapamil", "diltiazem", "insulin", "theophylline", "lidocaine"},
		FoodInteractions:  []string{"alcohol"},
		Contraindications: []string{"severe asthma", "severe bradycardia", "heart failure"},
		SideEffects:       []string{"bradycardia", "bronchospasm", "fatigue", "depression"},
		Warnings:          "Do not stop abruptly. Avoid in asthma patients.",
	},
	{
		Name:              "prednisone",
		GenericName:       "prednisone",
		BrandNames:        []string{"Deltasone"},
		Class:             "Corticosteroid",
		Interactions:      []string{"nsaids", "warfarin", "diabetes medications", "vaccines"},
		FoodInteractions:  []string{"alcohol", "grapefruit juice"},
		Contraindications: []string{"systemic fungal infections", "live vaccines"},
		SideEffects:       []string{"hyperglycemia", "osteoporosis", "immunosuppression", "mood changes"},
		Warnings:          "Do not stop abruptly. Monitor blood glucose and bone density.",
	},
	{
		Name:              "digoxin",
		GenericName:       "digoxin",
		BrandNames:        []string{"Lanoxin"},
		Class:             "Cardiac Glycoside",
		Interactions:      []string{"diuretics", "amiodarone", "quinidine", "verapamil", "erythromycin"},
		FoodInteractions:  []string{"high fiber foods", "st john wort"},
		Contraindications: []string{"ventricular fibrillation", "heart block"},
		SideEffects:       []string{"nausea", "visual disturbances", "arrhythmias", "confusion"},
		Warnings:          "Narrow therapeutic index. Monitor digoxin levels.",
	},
	{
		Name:              "losartan",
		GenericName:       "losartan potassium",
		BrandNames:        []string{"Cozaar"},
		Class:             "Angiotensin Receptor Blocker",
		Interactions:      []string{"potassium supplements", "nsaids", "lithium", "rifampin"},
		FoodInteractions:  []string{"salt substitutes", "potassium-rich foods"},
		Contraindications: []string{"pregnancy", "bilateral renal artery stenosis"},
		SideEffects:       []string{"hyperkalemia", "hypotension", "dizziness", "fatigue"},
		Warnings:          "Monitor kidney function and potassium levels.",
	},
	{
		Name:              "clopidogrel",
		GenericName:       "clopidogrel bisulfate",
		BrandNames:        []string{"Plavix"},
		Class:             "Antiplatelet Agent",
		Interactions:      []string{"warfarin", "omeprazole", "aspirin", "nsaids"},
		FoodInteractions:  []string{"grapefruit juice"},
		Contraindications: []string{"active bleeding", "severe liver disease"},
		SideEffects:       []string{"bleeding", "bruising", "headache", "diarrhea"},
		Warnings:          "Increased bleeding risk. Avoid proton pump inhibitors.",
	},
	{
		Name:              "simvastatin",
		GenericName:       "simvastatin",
		BrandNames:        []string{"Zocor"},
		Class:             "HMG-CoA Reductase Inhibitor",
		Interactions:      []string{"amlodipine", "diltiazem", "verapamil", "clarithromycin"},
		FoodInteractions:  []string{"grapefruit juice", "alcohol"},
		Contraindications: []string{"active liver disease", "pregnancy"},
		SideEffects:       []string{"myalgia", "elevated liver enzymes", "headache"},
		Warnings:          "Monitor liver enzymes and creatine kinase. Risk of myopathy.",
	},
}
