package insights

import (
	"strings"
	"testing"

	"github.com/jonathan/resumesense/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sectionedResume = `Jane Doe
Email: jane@example.com

PROJECTS
EcoTrack Platform | Python | 2023
- Built a carbon tracking dashboard used by 500+ students
- Reduced reporting time by 40%

Smart parking system: IoT sensors with live occupancy maps for campus lots

ACHIEVEMENTS
- Won first place at the National Hackathon 2022 for a health app
- Volunteer mentor at the campus coding club, coached 30 students
`

func TestExtract_SectionedResume(t *testing.T) {
	insights := Extract(sectionedResume)

	require.Len(t, insights.Projects, 2)
	assert.Equal(t, types.ProjectEntry{
		Title:      "EcoTrack Platform Python 2023 Built a carbon tracking dashboard used",
		Summary:    "EcoTrack Platform | Python | 2023 Built a carbon tracking dashboard used by 500+ students Reduced reporting time by 40%",
		TechStack:  []string{"Python"},
		Confidence: 0.88,
	}, insights.Projects[0])
	assert.Equal(t, types.ProjectEntry{
		Title:      "IoT sensors with live occupancy maps for campus lots",
		Summary:    "Smart parking system: IoT sensors with live occupancy maps for campus lots",
		TechStack:  []string{},
		Confidence: 0.45,
	}, insights.Projects[1])

	require.Len(t, insights.Achievements, 2)
	assert.Equal(t, types.AchievementEntry{
		Title:          "Volunteer mentor at the campus coding club, coached 30 students",
		Details:        "Volunteer mentor at the campus coding club, coached 30 students",
		Category:       types.CategoryCoCurricular,
		ImpactKeywords: []string{},
	}, insights.Achievements[0])
	assert.Equal(t, "first place at the National Hackathon 2022 for a health", insights.Achievements[1].Title)
	assert.Equal(t, types.CategoryAchievement, insights.Achievements[1].Category)
}

func TestExtract_SentenceFallback(t *testing.T) {
	text := "Built a budgeting application - Django web app for students tracking expenses. " +
		"Awarded Dean's List scholarship for academic excellence in 2021."
	insights := Extract(text)

	require.Len(t, insights.Projects, 1)
	p := insights.Projects[0]
	assert.Equal(t, "web app for students tracking expenses", p.Title)
	assert.Equal(t, "Built a budgeting application - Django web app for students tracking expenses.", p.Summary)
	assert.Equal(t, []string{"Django"}, p.TechStack)
	// 0.4 + 0.3 * 78/300
	assert.Equal(t, 0.48, p.Confidence)

	require.Len(t, insights.Achievements, 1)
	assert.Equal(t, "Dean", insights.Achievements[0].Title)
	assert.Equal(t, types.CategoryAchievement, insights.Achievements[0].Category)
}

func TestExtract_Empty(t *testing.T) {
	insights := Extract("")
	assert.NotNil(t, insights.Projects)
	assert.NotNil(t, insights.Achievements)
	assert.Empty(t, insights.Projects)
	assert.Empty(t, insights.Achievements)
}

func TestExtract_CapsAndOrdering(t *testing.T) {
	var b strings.Builder
	b.WriteString("PROJECTS\n")
	for _, name := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf"} {
		b.WriteString(name + " tracker: built with Go and Docker for small teams\n\n")
	}
	b.WriteString("Hotel dashboard: React front end for 2,000 users and 35% faster loads\n")

	insights := Extract(b.String())
	require.Len(t, insights.Projects, 5)
	assert.Equal(t, "Hotel dashboard React front end for 2", insights.Projects[0].Title)
	for i := 1; i < len(insights.Projects); i++ {
		assert.GreaterOrEqual(t, insights.Projects[i-1].Confidence, insights.Projects[i].Confidence)
	}
	assert.Equal(t, "Alpha tracker built with Go and Docker for small teams", insights.Projects[1].Title)
}

func TestExtract_DuplicateTitlesDropped(t *testing.T) {
	text := "PROJECTS\nWeather app: farmers get alerts built on Flask\n\nweather APP: farmers get alerts built on Flask\n"
	insights := Extract(text)
	assert.Len(t, insights.Projects, 1)
}

func TestExtract_Idempotent(t *testing.T) {
	assert.Equal(t, Extract(sectionedResume), Extract(sectionedResume))
}

func TestLooksLikeHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"PROJECTS", true},
		{"Technical Projects", true},
		{"Projects:", true},
		{"Awards & Honors", true},
		{"Go", false},
		{"technical projects", false},
		{"Built a dashboard used by students", false},
		{"EcoTrack Platform | Python", false},
		{"One Two Three Four Five Six Seven Eight Nine", false},
		{"C++ Projects", true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeHeading(tt.line))
		})
	}
}

func TestSegmentBlocks(t *testing.T) {
	text := "intro text\nSUMMARY\nLine one\n\n\nLine two\nEMPTY\nSKILLS\nGo, SQL\r\n"
	blocks := SegmentBlocks(text)
	require.Len(t, blocks, 2)
	assert.Equal(t, Block{Heading: "summary", Body: "Line one\n\nLine two"}, blocks[0])
	assert.Equal(t, Block{Heading: "skills", Body: "Go, SQL"}, blocks[1])
}

func TestSegmenter_Transitions(t *testing.T) {
	var s segmenter
	s.feed("preamble")
	assert.Equal(t, outsideSection, s.state)
	assert.Empty(t, s.lines)

	s.feed("EXPERIENCE")
	assert.Equal(t, inSection, s.state)
	s.feed("")
	assert.Empty(t, s.lines, "leading blank lines are skipped")
	s.feed("Engineer at Acme")
	s.feed("")
	s.feed("")
	assert.Equal(t, []string{"Engineer at Acme", ""}, s.lines)

	blocks := s.finish()
	require.Len(t, blocks, 1)
	assert.Equal(t, "Engineer at Acme", blocks[0].Body)
}

func TestSplitEntries(t *testing.T) {
	block := "• Inventory system for a local bakery\nFlask\nPostgres backend\n" +
		"Hackathon entry: chat assistant for students using NLP\n\n" +
		"Projects\nshort one"
	entries := SplitEntries(block)
	assert.Equal(t, []string{
		"Inventory system for a local bakery Flask Postgres backend",
		"Hackathon entry: chat assistant for students using NLP",
	}, entries)
}

func TestSplitEntries_YearStartsEntry(t *testing.T) {
	block := "Robotics arm controller with vision feedback loop\nMarch 1999 line follower robot for the regional fair"
	assert.Equal(t, []string{
		"Robotics arm controller with vision feedback loop",
		"March 1999 line follower robot for the regional fair",
	}, SplitEntries(block))
}

func TestEntrySplitter_Transitions(t *testing.T) {
	var s entrySplitter
	assert.Equal(t, idle, s.state)

	s.feed("- Payments gateway integration for an online store")
	assert.Equal(t, accumulatingEntry, s.state)
	s.feed("Stripe API")
	assert.Equal(t, []string{"Payments gateway integration for an online store", "Stripe API"}, s.current)

	s.feed("")
	assert.Equal(t, idle, s.state)
	assert.Len(t, s.entries, 1)

	s.feed("GitHub")
	assert.Equal(t, idle, s.state, "noise lines are ignored")
}

func TestCleanEntryText(t *testing.T) {
	assert.Equal(t, "scripts for data cleanup", cleanEntryText("Python   scripts for\tdata cleanup"))
	assert.Equal(t, "tracker", cleanEntryText("Project GitHub docker tracker"))
	assert.Equal(t, "", cleanEntryText("project python"))
}

func TestTechStack(t *testing.T) {
	assert.Equal(t, []string{"JAVA", "C++", "GO", "Kubernetes", "Ci/Cd"},
		techStack("Java and C++ services in Go on Kubernetes with CI/CD"))
	assert.Empty(t, techStack("Goals and reactive plans"))

	many := "python java javascript typescript cpp csharp golang rust swift kotlin"
	assert.Len(t, techStack(many), 8)
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "Ledger", projectTitle("Application: Ledger"))
	assert.Equal(t, "Budget planner", projectTitle("Budget planner, mobile app - for students"))
	assert.Equal(t, "Highlighted Project", projectTitle("!!!"))
	assert.Equal(t, "Best Paper Award at ICML", achievementTitle("Received Best Paper Award at ICML. Top 1%"))
	assert.Equal(t, "one two three four five six seven eight nine ten",
		trimTitle("one two three four five six seven eight nine ten eleven"))
}

func TestImpactKeywords(t *testing.T) {
	assert.Equal(t, []string{"led", "organized", "increased", "reduced", "boosted"},
		impactKeywords("Led and organized; increased, reduced, boosted, improved, mentored"))
	assert.Empty(t, impactKeywords("nothing here"))
}

func TestSplitSentences(t *testing.T) {
	text := "• First bullet point that is long enough here\n• Second   bullet point, also long enough! Short. Third sentence is also quite long?"
	assert.Equal(t, []string{
		"First bullet point that is long enough here .",
		"Second bullet point, also long enough!",
		"Third sentence is also quite long?",
	}, splitSentences(text))
}
