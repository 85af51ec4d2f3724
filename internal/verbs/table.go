package verbs

// weakVerb maps a weak verb to stronger alternatives, best first.
type weakVerb struct {
	verb        string
	suggestions []string
}

var weakVerbs = []weakVerb{
	{"did", []string{"performed", "executed", "accomplished", "achieved"}},
	{"made", []string{"created", "developed", "built", "produced", "established"}},
	{"got", []string{"obtained", "acquired", "secured", "attained"}},
	{"helped", []string{"assisted", "supported", "facilitated", "enabled", "contributed"}},
	{"worked", []string{"collaborated", "operated", "functioned", "performed"}},
	{"used", []string{"utilized", "leveraged", "employed", "applied"}},
	{"fixed", []string{"resolved", "repaired", "corrected", "remediated"}},
	{"changed", []string{"transformed", "modified", "improved", "enhanced"}},
	{"started", []string{"initiated", "launched", "established", "founded"}},
	{"managed", []string{"oversaw", "directed", "orchestrated", "coordinated"}},
	{"led", []string{"spearheaded", "headed", "guided", "championed"}},
	{"improved", []string{"enhanced", "optimized", "refined", "upgraded"}},
	{"increased", []string{"boosted", "amplified", "expanded", "elevated"}},
	{"decreased", []string{"reduced", "minimized", "lowered", "cut"}},
	{"created", []string{"designed", "developed", "built", "engineered"}},
	{"wrote", []string{"authored", "composed", "drafted", "penned"}},
	{"talked", []string{"communicated", "presented", "addressed", "conveyed"}},
	{"showed", []string{"demonstrated", "exhibited", "illustrated", "presented"}},
	{"found", []string{"identified", "discovered", "uncovered", "located"}},
	{"gave", []string{"provided", "delivered", "supplied", "furnished"}},
	{"took", []string{"assumed", "undertook", "handled", "managed"}},
	{"went", []string{"traveled", "attended", "participated"}},
	{"saw", []string{"observed", "monitored", "tracked", "analyzed"}},
	{"tried", []string{"attempted", "endeavored", "pursued", "sought"}},
	{"kept", []string{"maintained", "preserved", "sustained", "retained"}},
	{"put", []string{"placed", "positioned", "installed", "deployed"}},
	{"set", []string{"established", "configured", "arranged", "organized"}},
	{"ran", []string{"executed", "operated", "administered", "managed"}},
	{"looked", []string{"examined", "reviewed", "analyzed", "inspected"}},
	{"asked", []string{"inquired", "requested", "solicited", "consulted"}},
	{"told", []string{"informed", "notified", "advised", "communicated"}},
	{"met", []string{"collaborated", "coordinated", "convened", "engaged"}},
	{"left", []string{"departed", "transitioned", "moved"}},
	{"came", []string{"arrived", "joined", "entered"}},
	{"said", []string{"stated", "expressed", "articulated", "communicated"}},
	{"thought", []string{"analyzed", "evaluated", "considered", "assessed"}},
	{"knew", []string{"understood", "comprehended", "grasped", "mastered"}},
	{"learned", []string{"mastered", "acquired", "gained expertise in"}},
	{"taught", []string{"trained", "instructed", "educated", "mentored"}},
	{"built", []string{"constructed", "developed", "engineered", "architected"}},
	{"sold", []string{"marketed", "promoted", "distributed", "commercialized"}},
	{"bought", []string{"procured", "purchased", "acquired", "sourced"}},
	{"sent", []string{"delivered", "transmitted", "dispatched", "forwarded"}},
	{"received", []string{"obtained", "acquired", "attained", "secured"}},
	{"opened", []string{"launched", "initiated", "established", "introduced"}},
	{"closed", []string{"finalized", "completed", "concluded", "wrapped up"}},
	{"moved", []string{"relocated", "transferred", "transitioned", "shifted"}},
	{"stayed", []string{"maintained", "preserved", "sustained", "retained"}},
	{"turned", []string{"transformed", "converted", "changed", "modified"}},
	{"pulled", []string{"extracted", "retrieved", "obtained", "acquired"}},
	{"pushed", []string{"promoted", "advanced", "propelled", "drove"}},
	{"held", []string{"maintained", "preserved", "sustained", "retained"}},
	{"brought", []string{"delivered", "introduced", "provided", "supplied"}},
	{"called", []string{"contacted", "reached out", "communicated", "connected"}},
	{"played", []string{"performed", "executed", "operated", "functioned"}},
	{"read", []string{"reviewed", "analyzed", "examined", "studied"}},
	{"heard", []string{"listened", "attended", "participated"}},
	{"felt", []string{"perceived", "recognized", "identified", "detected"}},
	{"seemed", []string{"appeared", "demonstrated", "exhibited"}},
	{"became", []string{"transformed into", "evolved into", "developed into"}},
	{"began", []string{"initiated", "commenced", "launched", "started"}},
	{"ended", []string{"concluded", "finalized", "completed", "wrapped up"}},
	{"happened", []string{"occurred", "transpired", "took place"}},
	{"mattered", []string{"impacted", "influenced", "affected", "contributed"}},
	{"wanted", []string{"sought", "desired", "aimed for", "pursued"}},
	{"needed", []string{"required", "demanded", "necessitated"}},
}

var strongVerbs = []string{
	"achieved", "accomplished", "executed", "implemented", "developed",
	"created", "designed", "built", "established", "launched",
	"managed", "led", "directed", "oversaw", "coordinated",
	"improved", "enhanced", "optimized", "increased", "boosted",
	"reduced", "minimized", "resolved", "solved", "delivered",
	"produced", "generated", "secured", "obtained", "acquired",
}

// Suggestions returns the replacement suggestions for a weak verb, or nil.
func Suggestions(verb string) []string {
	for _, wv := range weakVerbs {
		if wv.verb == verb {
			return wv.suggestions
		}
	}
	return nil
}

// IsStrong reports whether verb is on the strong action verb list.
func IsStrong(verb string) bool {
	for _, v := range strongVerbs {
		if v == verb {
			return true
		}
	}
	return false
}
