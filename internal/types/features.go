package types

// FeatureNames lists the feature vector entries in their fixed order. Trained
// predictors depend on this order.
var FeatureNames = []string{
	"text_length", "word_count", "sentence_count", "keyword_density",
	"action_verbs_count", "weak_verbs_count", "power_verb_ratio",
	"has_numbers", "numbers_count", "percentage_mentions",
	"ats_score", "has_education", "has_experience", "has_skills",
	"has_contact", "has_bullets", "section_count",
	"jd_match_score", "common_keywords",
	"has_email", "has_phone", "achievement_keywords",
}

// FeatureVector is the numeric summary of a resume fed to quality scoring.
// Flags are 0 or 1, ratios are in [0,1].
type FeatureVector struct {
	TextLength          float64 `json:"text_length"`
	WordCount           float64 `json:"word_count"`
	SentenceCount       float64 `json:"sentence_count"`
	KeywordDensity      float64 `json:"keyword_density"`
	ActionVerbsCount    float64 `json:"action_verbs_count"`
	WeakVerbsCount      float64 `json:"weak_verbs_count"`
	PowerVerbRatio      float64 `json:"power_verb_ratio"`
	HasNumbers          float64 `json:"has_numbers"`
	NumbersCount        float64 `json:"numbers_count"`
	PercentageMentions  float64 `json:"percentage_mentions"`
	ATSScore            float64 `json:"ats_score"`
	HasEducation        float64 `json:"has_education"`
	HasExperience       float64 `json:"has_experience"`
	HasSkills           float64 `json:"has_skills"`
	HasContact          float64 `json:"has_contact"`
	HasBullets          float64 `json:"has_bullets"`
	SectionCount        float64 `json:"section_count"`
	JDMatchScore        float64 `json:"jd_match_score"`
	CommonKeywords      float64 `json:"common_keywords"`
	HasEmail            float64 `json:"has_email"`
	HasPhone            float64 `json:"has_phone"`
	AchievementKeywords float64 `json:"achievement_keywords"`
}

// Values returns the features in FeatureNames order.
func (f FeatureVector) Values() []float64 {
	return []float64{
		f.TextLength, f.WordCount, f.SentenceCount, f.KeywordDensity,
		f.ActionVerbsCount, f.WeakVerbsCount, f.PowerVerbRatio,
		f.HasNumbers, f.NumbersCount, f.PercentageMentions,
		f.ATSScore, f.HasEducation, f.HasExperience, f.HasSkills,
		f.HasContact, f.HasBullets, f.SectionCount,
		f.JDMatchScore, f.CommonKeywords,
		f.HasEmail, f.HasPhone, f.AchievementKeywords,
	}
}

// Flag converts a boolean to a 0/1 feature value.
func Flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
