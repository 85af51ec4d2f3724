package keywords

// domainTerms is the curated technical and scientific vocabulary. Multi-word
// entries are matched as substrings of the lowercased text.
var domainTerms = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "cpp", "c#", "csharp",
	"go", "golang", "rust", "swift", "kotlin", "scala", "r", "matlab", "perl",
	"ruby", "php", "sql", "html", "css", "xml", "json", "yaml",
	// Frameworks and libraries
	"react", "angular", "vue", "django", "flask", "spring", "express", "node",
	"tensorflow", "pytorch", "keras", "scikit", "pandas", "numpy", "matplotlib",
	// Technologies and tools
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github",
	"gitlab", "ci/cd", "microservices", "api", "rest", "graphql", "mongodb",
	"postgresql", "mysql", "redis", "elasticsearch", "kafka", "rabbitmq",
	// Machine learning and data science
	"machine learning", "deep learning", "neural network", "nlp", "computer vision",
	"data science", "statistics", "algorithm", "optimization", "regression",
	"classification", "clustering", "reinforcement learning", "ai", "artificial intelligence",
	// Systems and practices
	"linux", "unix", "bash", "shell", "agile", "scrum", "devops", "cloud",
	"security", "encryption", "blockchain", "cryptography", "networking",
	// Research
	"research", "publication", "thesis", "dissertation", "peer review", "journal",
	"conference", "patent", "methodology", "hypothesis", "experiment",
}

// compoundTerms are stored underscore-joined when found.
var compoundTerms = []string{
	"machine learning", "deep learning", "neural network", "natural language",
	"computer vision", "data science", "artificial intelligence", "reinforcement learning",
	"supervised learning", "unsupervised learning", "transfer learning", "feature engineering",
	"ci/cd", "devops", "microservices", "rest api", "graphql", "object oriented",
	"functional programming", "test driven", "agile methodology", "scrum master",
}

// techExtensions are the suffixes of name.ext technology mentions such as
// "react.js".
var techExtensions = map[string]struct{}{
	"js": {}, "py": {}, "java": {}, "cpp": {}, "html": {}, "css": {},
	"sql": {}, "json": {}, "xml": {}, "ts": {}, "tsx": {}, "jsx": {},
}

// generalStopWords are excluded from general keywords.
var generalStopWords = toSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
	"be", "have", "has", "had", "do", "does", "did", "will", "would",
	"should", "could", "may", "might", "must", "can", "this", "that",
	"these", "those", "i", "you", "he", "she", "it", "we", "they",
	"what", "which", "who", "when", "where", "why", "how", "all", "each",
	"every", "both", "few", "more", "most", "other", "some", "such",
	"only", "own", "same", "so", "than", "too", "very", "just", "now",
	"work", "job", "position", "role", "team", "company", "years", "experience",
)

// densityStopWords are excluded when computing keyword density.
var densityStopWords = toSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
	"be", "have", "has", "had", "do", "does", "did", "will", "would",
	"should", "could", "may", "might", "must", "can",
)

var domainIndex = toSet(domainTerms...)

// IsDomainTerm reports whether term belongs to the domain taxonomy.
func IsDomainTerm(term string) bool {
	_, ok := domainIndex[term]
	return ok
}

// IsTechExtension reports whether ext is a known name.ext suffix.
func IsTechExtension(ext string) bool {
	_, ok := techExtensions[ext]
	return ok
}

func toSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
