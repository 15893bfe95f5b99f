package geo

// StateContent is the localized legal copy bundle for one jurisdiction
type StateContent struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	Statistic   string `json:"statistic"`
	LegalInfo   string `json:"legalInfo"`
	MaxDamages  string `json:"maxDamages"`
}

// DefaultState is used when geolocation fails or the visitor is in an
// unrecognized region
const DefaultState = "TX"

// AllStates maps every US state/territory code to its display name.
// This superset table backs the selector UI.
var AllStates = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "District of Columbia",
}

// SupportedStates holds authored content for targeted jurisdictions.
// Codes absent from this table fall back to a generated bundle.
var SupportedStates = map[string]StateContent{
	"AL": {
		Headline:    "Alabama Personal Injury Claims",
		Subheadline: "Get compensation for your Alabama accident",
		Statistic:   "Alabama has a 2-year statute of limitations for personal injury claims",
		LegalInfo:   "Alabama uses a contributory negligence model, which means if you're found even 1% at fault, you may be barred from recovery. This makes having an experienced attorney essential.",
		MaxDamages:  "No cap on economic damages, but Alabama caps non-economic damages in some cases.",
	},
	"AZ": {
		Headline:    "Arizona Personal Injury Claims",
		Subheadline: "Arizona accident victims deserve fair compensation",
		Statistic:   "Arizona has a 2-year statute of limitations for personal injury claims",
		LegalInfo:   "Arizona follows a pure comparative negligence system, allowing recovery even if you're partially at fault. Your compensation will be reduced by your percentage of fault.",
		MaxDamages:  "Arizona has no caps on compensatory damages in personal injury cases.",
	},
	"CA": {
		Headline:    "California Personal Injury Claims",
		Subheadline: "California's pure comparative negligence laws protect your rights",
		Statistic:   "California has a 2-year statute of limitations for personal injury claims",
		LegalInfo:   "California uses pure comparative negligence, meaning you can recover damages even if you're 99% at fault, though your award will be reduced by your percentage of fault.",
		MaxDamages:  "California has no caps on compensatory damages for most personal injury cases.",
	},
	"CO": {
		Headline:    "Colorado Personal Injury Claims",
		Subheadline: "Colorado's modified comparative negligence laws may affect your claim",
		Statistic:   "Colorado has a 2-year statute of limitations for most personal injury claims",
		LegalInfo:   "Colorado uses modified comparative negligence with a 50% bar, meaning you cannot recover if you're 50% or more at fault for the accident.",
		MaxDamages:  "Colorado caps non-economic damages in most personal injury cases.",
	},
	"CT": {
		Headline:    "Connecticut Personal Injury Claims",
		Subheadline: "Connecticut's modified comparative fault system",
		Statistic:   "Connecticut has a 2-year statute of limitations for personal injury claims",
		LegalInfo:   "Connecticut follows a modified comparative negligence model with a 51% bar. You can recover damages as long as you're not more than 50% responsible.",
		MaxDamages:  "Connecticut generally does not cap compensatory damages in personal injury cases.",
	},
	"FL": {
		Headline:    "Florida Personal Injury Claims",
		Subheadline: "Florida's no-fault insurance system requires special handling",
		Statistic:   "Florida has a 2-year statute of limitations for personal injury claims (changed from 4 years in March 2023)",
		LegalInfo:   "Florida operates under a pure comparative negligence system. Your recovery will be reduced by your percentage of fault.",
		MaxDamages:  "Florida has caps on non-economic damages in medical malpractice cases.",
	},
	"GA": {
		Headline:    "Georgia Personal Injury Claims",
		Subheadline: "Georgia's modified comparative negligence laws may affect your claim",
		Statistic:   "Georgia has a 2-year statute of limitations for personal injury claims",
		LegalInfo:   "Georgia follows a modified comparative negligence rule. You can recover damages if you're less than 50% at fault, but your compensation will be reduced by your percentage of fault.",
		MaxDamages:  "Georgia generally has no caps on compensatory damages in personal injury cases.",
	},
	"IL": {
		Headline:    "Illinois Personal Injury Claims",
		Subheadline: "Illinois modified comparative fault system",
		Statistic:   "Illinois has a 2-year statute of limitations for personal injury claims",
		LegalInfo:   "Illinois follows a modified comparative negligence system with a 51% bar. You can recover damages as long as you're not more than 50% at fault.",
		MaxDamages:  "Illinois generally does not cap compensatory damages in personal injury cases.",
	},
	"IA": {
		Headline:    "Iowa Personal Injury Claims",
		Subheadline: "Iowa's modified comparative fault system",
		Statistic:   "Iowa has a 2-year statute of limitations for personal injury claims",
		LegalInfo:   "Iowa uses a modified comparative fault system with a 51% bar. You cannot recover if you're found to be more than 50% responsible for your injuries.",
		MaxDamages:  "Iowa has caps on non-economic damages in medical malpractice cases, but not for most other personal injury claims.",
	},
	"KY": {
		Headline:    "Kentucky Personal Injury Claims",
		Subheadline: "Kentucky's pure comparative fault rules",
		Statistic:   "Kentucky has a 1-year statute of limitations for personal injury claims",
		LegalInfo:   "Kentucky follows a pure comparative fault rule, allowing recovery even if you're mostly at fault. Your damages will be reduced by your percentage of fault.",
		MaxDamages:  "Kentucky generally does not cap compensatory damages in personal injury cases.",
	},
	"MA": {
		Headline:    "Massachusetts Personal Injury Claims",
		Subheadline: "Massachusetts modified comparative negligence laws",
		Statistic:   "Massachusetts has a 3-year statute of limitations for personal injury claims",
		LegalInfo:   "Massachusetts uses a modified comparative negligence system with a 51% bar. You cannot recover if you're found to be 51% or more at fault.",
		MaxDamages:  "Massachusetts does not cap compensatory damages in most personal injury cases.",
	},
	"MI": {
		Headline:    "Michigan Personal Injury Claims",
		Subheadline: "Michigan's no-fault insurance system requires special expertise",
		Statistic:   "Michigan has a 3-year statute of limitations for personal injury claims",
		LegalInfo:   "Michigan operates under a modified comparative fault system with a 51% bar. Additionally, Michigan has a no-fault auto insurance system that affects how car accident claims are handled.",
		MaxDamages:  "Michigan caps non-economic damages in medical malpractice cases.",
	},
	"MS": {
		Headline:    "Mississippi Personal Injury Claims",
		Subheadline: "Mississippi pure comparative fault rules",
		Statistic:   "Mississippi has a 3-year statute of limitations for personal injury claims",
		LegalInfo:   "Mississippi follows a pure comparative fault rule, which means you can recover damages even if you're 99% at fault, though your award will be reduced accordingly.",
		MaxDamages:  "Mississippi has caps on non-economic damages in most personal injury cases.",
	},
	"NH": {
		Headline:    "New Hampshire Personal Injury Claims",
		Subheadline: "New Hampshire modified comparative fault laws",
		Statistic:   "New Hampshire has a 3-year statute of limitations for personal injury claims",
		LegalInfo:   "New Hampshire uses a modified comparative fault system with a 51% bar. You cannot recover if you're 51% or more at fault for your injuries.",
		MaxDamages:  "New Hampshire generally does not cap compensatory damages in personal injury cases.",
	},
	"NY": {
		Headline:    "New York Personal Injury Claims",
		Subheadline: "New York's pure comparative negligence system",
		Statistic:   "New York has a 3-year statute of limitations for personal injury claims",
		LegalInfo:   "New York follows a pure comparative negligence system. Your recovery will be reduced by your percentage of fault, but you can still recover even if you're mostly at fault.",
		MaxDamages:  "New York does not cap compensatory damages in most personal injury cases.",
	},
	"OH": {
		Headline:    "Ohio Personal Injury Claims",
		Subheadline: "Ohio's modified comparative fault system",
		Statistic:   "Ohio has a 2-year statute of limitations for personal injury claims",
		LegalInfo:   "Ohio uses a modified comparative fault system with a 51% bar. You cannot recover if you're found to be 51% or more at fault for your injuries.",
		MaxDamages:  "Ohio caps non-economic damages in most personal injury cases.",
	},
	"TN": {
		Headline:    "Tennessee Personal Injury Claims",
		Subheadline: "Tennessee's modified comparative fault rules",
		Statistic:   "Tennessee has a 1-year statute of limitations for personal injury claims",
		LegalInfo:   "Tennessee follows a modified comparative fault rule. You can recover damages if you're less than 50% responsible, but your award will be reduced by your percentage of fault.",
		MaxDamages:  "Tennessee has no caps on compensatory damages in most personal injury cases.",
	},
	"TX": {
		Headline:    "Texas Personal Injury Claims",
		Subheadline: "Texas modified comparative fault laws may affect your claim",
		Statistic:   "Texas has a 2-year statute of limitations for personal injury claims",
		LegalInfo:   "Texas follows a modified comparative fault rule with a 51% bar. You cannot recover if you're found to be more than 50% responsible for your injuries.",
		MaxDamages:  "Texas caps non-economic damages in medical malpractice cases but not in most other personal injury claims.",
	},
}

// genericContent is the template for jurisdictions without authored copy
var genericContent = StateContent{
	Headline:    "Personal Injury Claims",
	Subheadline: "Get expert legal help for your injury case",
	Statistic:   "Personal injury claims have strict deadlines. Don't wait to get help.",
	LegalInfo:   "Personal injury laws vary by state. Speak with an attorney to understand your rights.",
	MaxDamages:  "Compensation varies based on the specifics of your case and applicable state laws.",
}

// IsValidState reports whether code is a recognized US state/territory code
func IsValidState(code string) bool {
	_, ok := AllStates[code]
	return ok
}

// IsSupported reports whether code has authored content
func IsSupported(code string) bool {
	_, ok := SupportedStates[code]
	return ok
}

// StateName returns the display name for a code, "" when unrecognized
func StateName(code string) string {
	return AllStates[code]
}

// ContentFor returns the content bundle for a jurisdiction. Supported codes
// get their authored bundle verbatim; other valid codes get a generated
// bundle parameterized by display name; unknown codes fall back to the
// default jurisdiction's bundle.
func ContentFor(code string) StateContent {
	if c, ok := SupportedStates[code]; ok {
		return c
	}
	if name, ok := AllStates[code]; ok {
		c := genericContent
		c.Headline = name + " Personal Injury Claims"
		c.Subheadline = "Get expert legal help for your " + name + " injury case"
		return c
	}
	return SupportedStates[DefaultState]
}
