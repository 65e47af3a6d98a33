package experience

import "regexp"

// patternTable holds every compiled regex the engine uses. Built once at
// package init and never mutated afterwards, so concurrent extractions can
// share it without coordination.
type patternTable struct {
	monthYear     *regexp.Regexp // "Oct 2023", "October 2023", "OCT 21"
	numericMY     *regexp.Regexp // "09 2022", "9/2022"
	bareYear      *regexp.Regexp // "2019"
	parenSuffix   *regexp.Regexp // trailing "(...)" on a title line
	clientPrefix  *regexp.Regexp // "Client:" lines
	romanSuffix   *regexp.Regexp // "Project Manager III"
	yearsMention  *regexp.Regexp // "10+ years", "5 Years"
	emailFragment *regexp.Regexp
}

var pat = compilePatterns()

func compilePatterns() *patternTable {
	return &patternTable{
		monthYear:     regexp.MustCompile(`(?i)^([a-z]{3,9})\.?,?\s+'?(\d{2}|\d{4})$`),
		numericMY:     regexp.MustCompile(`^(\d{1,2})[/\s.](\d{4})$`),
		bareYear:      regexp.MustCompile(`^(\d{4})$`),
		parenSuffix:   regexp.MustCompile(`^(.*?)\s*\(([^()]+)\)\s*$`),
		clientPrefix:  regexp.MustCompile(`(?i)^client\s*:\s*`),
		romanSuffix:   regexp.MustCompile(`\b(?:II|III|IV|V|VI)$`),
		yearsMention:  regexp.MustCompile(`(?i)\b\d{1,2}\+?\s*(?:years?|yrs?)\b`),
		emailFragment: regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+`),
	}
}

var monthNumbers = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// sectionHeaders are standalone lines that open the experience block.
var sectionHeaders = []string{
	"employment history",
	"work experience",
	"experience details",
	"professional experience",
	"work history",
	"relevant experience",
	"experience",
}

// sectionTerminators are standalone headers that close the experience block.
var sectionTerminators = []string{
	"education",
	"academic background",
	"skills",
	"technical skills",
	"certifications",
	"certification",
	"projects",
	"achievements",
	"awards",
	"languages",
	"interests",
}

// titleKeywords mark a line as job-title-like for the title-first strategy
// and the current-role header scan.
var titleKeywords = []string{
	"engineer", "developer", "programmer", "architect", "administrator",
	"manager", "director", "lead", "consultant", "analyst", "specialist",
	"designer", "scientist", "officer", "coordinator", "intern",
	"senior", "junior", "principal", "staff",
}

// educationWords in a title disqualify the candidate. "master" alone is
// excluded on purpose: "Scrum Master" is a real title, only "master's" and
// "master of" indicate a degree.
var educationWords = []string{
	"bachelor", "master's", "master of", "phd", "ph.d", "mba",
	"degree", "university", "college",
}

// responsibilityVerbs open description bullets that strategies sometimes
// misread as titles.
var responsibilityVerbs = []string{
	"developed", "managed", "administered", "prepared",
	"support", "coordinated", "control",
}

var bulletGlyphs = []string{"•", "●", "▪", "◦", "‣", "·", "*", "- ", "– "}

// institutionWords in an employer name mean the line came from the
// education section, not employment.
var institutionWords = []string{"university", "college", "school"}
