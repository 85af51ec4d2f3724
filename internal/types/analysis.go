package types

// Model identifiers reported in QualityResult.ModelUsed.
const (
	ModelUsedML        = "ml_model"
	ModelUsedRuleBased = "rule_based"
)

// Achievement categories.
const (
	CategoryAchievement  = "Achievement"
	CategoryCoCurricular = "Co-curricular"
)

// MatchResult is the keyword overlap between a resume and a job description.
type MatchResult struct {
	MatchScore                float64  `json:"match_score"`
	CommonKeywords            []string `json:"common_keywords"`
	MissingKeywords           []string `json:"missing_keywords"`
	JDKeywordCount            int      `json:"jd_keyword_count"`
	ResumeKeywordCount        int      `json:"resume_keyword_count"`
	ScientificKeywordsMatched int      `json:"scientific_keywords_matched"`
	ScientificKeywordsTotal   int      `json:"scientific_keywords_total"`
	ImportantKeywordsMatched  int      `json:"important_keywords_matched"`
	ImportantKeywordsTotal    int      `json:"important_keywords_total"`
	MatchedImportantKeywords  []string `json:"matched_important_keywords"`
}

// SectionChecks records which standard resume sections were detected.
type SectionChecks struct {
	Education  bool `json:"education"`
	Experience bool `json:"experience"`
	Skills     bool `json:"skills"`
	Contact    bool `json:"contact"`
	Summary    bool `json:"summary"`
}

// SectionCount is the number of sections tracked by SectionChecks.
const SectionCount = 5

// Present returns how many sections were detected.
func (s SectionChecks) Present() int {
	n := 0
	for _, ok := range []bool{s.Education, s.Experience, s.Skills, s.Contact, s.Summary} {
		if ok {
			n++
		}
	}
	return n
}

// ContactCheck records detected contact details. Complete requires both an
// email address and a phone number.
type ContactCheck struct {
	HasEmail   bool `json:"has_email"`
	HasPhone   bool `json:"has_phone"`
	HasAddress bool `json:"has_address"`
	Complete   bool `json:"complete"`
}

// FormattingChecks records structural signals that affect ATS parsing.
type FormattingChecks struct {
	HasTables           bool `json:"has_tables"`
	ExcessiveFormatting bool `json:"excessive_formatting"`
	HasHeadersFooters   bool `json:"has_headers_footers"`
	HasBullets          bool `json:"has_bullets"`
}

// ATSReport is the result of an ATS compliance check.
type ATSReport struct {
	ATSScore         float64          `json:"ats_score"`
	SectionChecks    SectionChecks    `json:"section_checks"`
	ContactCheck     ContactCheck     `json:"contact_check"`
	FormattingChecks FormattingChecks `json:"formatting_checks"`
	Issues           []string         `json:"issues"`
	Recommendations  []string         `json:"recommendations"`
}

// WeakVerbFinding is one weak verb occurrence with replacement suggestions.
// Position is a character offset into the resume text.
type WeakVerbFinding struct {
	WeakVerb    string   `json:"weak_verb"`
	Suggestions []string `json:"suggestions"`
	Context     string   `json:"context"`
	Position    int      `json:"position"`
}

// VerbCount is the number of occurrences of a single verb.
type VerbCount struct {
	Verb  string `json:"verb"`
	Count int    `json:"count"`
}

// PowerVerbStats summarizes weak and strong verb usage.
type PowerVerbStats struct {
	WeakVerbCount   int         `json:"weak_verb_count"`
	StrongVerbCount int         `json:"strong_verb_count"`
	WeakVerbsFound  []VerbCount `json:"weak_verbs_found"`
	PowerVerbScore  float64     `json:"power_verb_score"`
}

// PowerVerbReport groups weak verb findings with usage statistics.
type PowerVerbReport struct {
	Findings []WeakVerbFinding `json:"findings"`
	Stats    PowerVerbStats    `json:"stats"`
}

// ProjectEntry is a project highlight extracted from a resume.
type ProjectEntry struct {
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	TechStack  []string `json:"tech_stack"`
	Confidence float64  `json:"confidence"`
}

// AchievementEntry is an achievement or co-curricular highlight.
type AchievementEntry struct {
	Title          string   `json:"title"`
	Details        string   `json:"details"`
	Category       string   `json:"category"`
	ImpactKeywords []string `json:"impact_keywords"`
}

// Insights holds extracted project and achievement highlights.
type Insights struct {
	Projects     []ProjectEntry     `json:"projects"`
	Achievements []AchievementEntry `json:"achievements"`
}

// QualityResult is the composite quality score with the features behind it.
type QualityResult struct {
	QualityScore float64       `json:"quality_score"`
	Features     FeatureVector `json:"features"`
	ModelUsed    string        `json:"model_used"`
}

// AnalysisResult is the full engine output for one resume. Match is nil
// when no job description was supplied.
type AnalysisResult struct {
	Match      *MatchResult    `json:"match"`
	ATS        ATSReport       `json:"ats"`
	PowerVerbs PowerVerbReport `json:"power_verbs"`
	Quality    QualityResult   `json:"quality"`
	Insights   Insights        `json:"insights"`
}
