package insights

var projectKeywords = []string{
	"project", "projects", "capstone", "portfolio", "application", "app",
	"tool", "platform", "system", "product", "prototype", "solution",
	"hackathon", "case study", "research project", "module", "feature",
}

var achievementKeywords = []string{
	"award", "awarded", "honor", "honours", "recognition", "recognized",
	"certification", "certified", "achievement", "achievements",
	"winner", "won", "finalist", "runner-up", "placed", "scholarship",
	"publication", "published", "speaker", "presented", "selected",
}

var coCurricularKeywords = []string{
	"club", "society", "association", "organization", "organised",
	"organized", "volunteer", "volunteered", "leadership", "captain",
	"coach", "mentor", "event", "festival", "competition", "contest",
	"sports", "athletics", "cultural", "music", "dance", "drama",
	"community", "campus", "co-curricular", "extracurricular",
}

// techTerms are reported in this order when found.
var techTerms = []string{
	// Languages
	"python", "java", "javascript", "typescript", "c++", "cpp", "c#",
	"csharp", "go", "golang", "rust", "swift", "kotlin", "scala",
	"ruby", "php", "r", "matlab", "sql", "nosql", "html", "css",
	// Frameworks
	"react", "angular", "vue", "django", "flask", "spring", "express",
	"node", "nodejs", "fastapi", "nextjs", "nuxt", "laravel", "rails",
	// Data and ML
	"pandas", "numpy", "scikit-learn", "sklearn", "tensorflow",
	"pytorch", "keras", "matplotlib", "seaborn", "spark", "hadoop",
	"airflow", "dbt",
	// Cloud and DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "helm", "terraform",
	"ansible", "jenkins", "gitlab", "github", "bitbucket", "ci/cd",
	// Databases
	"mysql", "postgresql", "postgres", "mongodb", "redis", "dynamodb",
	"snowflake", "bigquery", "redshift", "elastic", "elasticsearch",
}

var techTokens = toSet(techTerms...)

var projectSectionHeaders = []string{
	"project", "projects", "project experience", "technical projects",
	"academic projects", "capstone", "portfolio",
}

var achievementSectionHeaders = []string{
	"achievement", "achievements", "awards", "honors", "honours",
	"recognition", "leadership", "activities", "co-curricular",
	"extracurricular", "volunteer", "volunteering",
}

// noisePrefixes mark lines and entries that carry no content of their own.
var noisePrefixes = []string{
	"confidence", "achievement", "achievements", "projects", "project",
	"github", "git hub",
}

var noiseSet = toSet(noisePrefixes...)

// newEntryTerms start a new entry when found in a line.
var newEntryTerms = []string{
	"project", "capstone", "hackathon", "award", "achievement",
	"leadership", "club", "society", "competition",
}

var impactTerms = []string{
	"led", "organized", "increased", "reduced", "boosted",
	"improved", "mentored", "trained", "volunteered",
	"collaborated", "presented", "coordinated", "hosted",
}

func toSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
