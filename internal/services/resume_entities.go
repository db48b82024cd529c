package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// RawResume is the loosely typed record produced by the resume parser.
// Known keys: name, skills, experience, total_experience, no_of_pages.
type RawResume map[string]any

// skillVocabulary maps a normalized token sequence to its display form.
var skillVocabulary = map[string]string{
	"go": "Go", "golang": "Go", "python": "Python", "java": "Java", "javascript": "JavaScript",
	"typescript": "TypeScript", "c++": "C++", "c#": "C#", "ruby": "Ruby", "php": "PHP",
	"rust": "Rust", "kotlin": "Kotlin", "swift": "Swift", "scala": "Scala",
	"sql": "SQL", "nosql": "NoSQL", "postgresql": "PostgreSQL", "postgres": "PostgreSQL",
	"mysql": "MySQL", "mongodb": "MongoDB", "redis": "Redis", "elasticsearch": "Elasticsearch",
	"kafka": "Kafka", "rabbitmq": "RabbitMQ", "docker": "Docker", "kubernetes": "Kubernetes",
	"k8s": "Kubernetes", "terraform": "Terraform", "ansible": "Ansible", "aws": "AWS",
	"azure": "Azure", "gcp": "GCP", "google cloud": "GCP", "linux": "Linux", "git": "Git",
	"ci/cd": "CI/CD", "jenkins": "Jenkins", "graphql": "GraphQL", "rest api": "REST", "restful": "REST",
	"grpc": "gRPC", "microservices": "Microservices", "react": "React", "angular": "Angular",
	"vue": "Vue", "node.js": "Node.js", "nodejs": "Node.js", "django": "Django",
	"flask": "Flask", "fastapi": "FastAPI", "spring": "Spring", ".net": ".NET",
	"html": "HTML", "css": "CSS", "machine learning": "Machine Learning",
	"deep learning": "Deep Learning", "nlp": "NLP", "tensorflow": "TensorFlow",
	"pytorch": "PyTorch", "pandas": "Pandas", "numpy": "NumPy", "scikit-learn": "Scikit-learn",
	"spark": "Spark", "hadoop": "Hadoop", "tableau": "Tableau", "power bi": "Power BI",
	"microsoft excel": "Excel", "data analysis": "Data Analysis", "statistics": "Statistics",
	"agile": "Agile", "scrum": "Scrum", "jira": "Jira", "project management": "Project Management",
	"communication": "Communication", "leadership": "Leadership", "teamwork": "Teamwork",
	"problem solving": "Problem Solving", "recruitment": "Recruitment", "marketing": "Marketing",
	"sales": "Sales", "accounting": "Accounting", "customer service": "Customer Service",
}

// skillPhrases holds the vocabulary keys, longest first.
var skillPhrases = func() []string {
	keys := make([]string, 0, len(skillVocabulary))
	for k := range skillVocabulary {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

var (
	yearsPattern     = regexp.MustCompile(`(?i)\b(\d{1,2}(?:\.\d)?)\s*\+?\s*(?:years?|yrs?)\b`)
	yearRangePattern = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:-|–|—|to)\s*((?:19|20)\d{2}|present|current|now|today)\b`)
	headingPattern   = regexp.MustCompile(`(?i)^(summary|profile|objective|education|skills|technical skills|projects|certifications?|awards|languages|interests|hobbies|references|publications|work experience|experience|professional experience|employment|employment history|work history)\s*:?$`)
	experienceHeads  = map[string]bool{
		"experience": true, "work experience": true, "professional experience": true,
		"employment": true, "employment history": true, "work history": true,
	}
	nameStopWords = []string{"resume", "curriculum", "vitae", "cv", "profile", "summary"}
)

const maxExperienceYears = 50

// ExtractResumeEntities derives the loose resume record from plain text.
func ExtractResumeEntities(text string, pageCount int, now time.Time) RawResume {
	cleaned := CleanText(text)
	lines := strings.Split(cleaned, "\n")

	raw := RawResume{
		"name":        guessName(lines),
		"skills":      matchSkills(cleaned),
		"experience":  experienceSection(lines),
		"no_of_pages": pageCount,
	}
	if years, ok := totalExperience(cleaned, now); ok {
		raw["total_experience"] = years
	}
	return raw
}

func guessName(lines []string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}

	for _, line := range lines[:limit] {
		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

func looksLikeName(line string) bool {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}

	lower := strings.ToLower(line)
	for _, stop := range nameStopWords {
		for _, w := range strings.Fields(lower) {
			if w == stop {
				return false
			}
		}
	}

	for _, w := range words {
		runes := []rune(w)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes {
			if !unicode.IsLetter(r) && r != '-' && r != '\'' && r != '.' {
				return false
			}
		}
	}
	return true
}

// normalizeTokens lowercases text and keeps tokens made of letters, digits
// and the symbols used by skill names.
func normalizeTokens(text string) string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("+#./-", r))
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimRight(f, ".-/")
		f = strings.TrimLeft(f, "-/")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return " " + strings.Join(tokens, " ") + " "
}

// matchSkills returns vocabulary skills in order of first appearance.
func matchSkills(text string) []string {
	haystack := normalizeTokens(text)

	type hit struct {
		skill string
		pos   int
	}
	seen := map[string]int{}
	for _, phrase := range skillPhrases {
		pos := strings.Index(haystack, " "+phrase+" ")
		if pos < 0 {
			continue
		}
		skill := skillVocabulary[phrase]
		if prev, ok := seen[skill]; !ok || pos < prev {
			seen[skill] = pos
		}
	}

	hits := make([]hit, 0, len(seen))
	for skill, pos := range seen {
		hits = append(hits, hit{skill: skill, pos: pos})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].pos != hits[j].pos {
			return hits[i].pos < hits[j].pos
		}
		return hits[i].skill < hits[j].skill
	})

	skills := make([]string, 0, len(hits))
	for _, h := range hits {
		skills = append(skills, h.skill)
	}
	return skills
}

// totalExperience prefers an explicit "N years" claim and falls back to the
// merged span of year ranges such as "2018 - Present".
func totalExperience(text string, now time.Time) (float64, bool) {
	best := -1.0
	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil && v <= maxExperienceYears && v > best {
			best = v
		}
	}
	if best >= 0 {
		return best, true
	}

	type span struct{ start, end int }
	var spans []span
	for _, m := range yearRangePattern.FindAllStringSubmatch(text, -1) {
		start, _ := strconv.Atoi(m[1])
		end, err := strconv.Atoi(m[2])
		if err != nil {
			end = now.Year()
		}
		if end >= start && end <= now.Year() {
			spans = append(spans, span{start, end})
		}
	}
	if len(spans) == 0 {
		return 0, false
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	total := 0
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.start <= cur.end {
			if s.end > cur.end {
				cur.end = s.end
			}
			continue
		}
		total += cur.end - cur.start
		cur = s
	}
	total += cur.end - cur.start

	if total > maxExperienceYears {
		total = maxExperienceYears
	}
	return float64(total), true
}

// experienceSection joins the lines under an experience heading.
func experienceSection(lines []string) string {
	var out []string
	inSection := false

	for _, line := range lines {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			inSection = experienceHeads[strings.ToLower(m[1])]
			continue
		}
		if inSection {
			out = append(out, line)
		}
	}
	return strings.Join(out, " ")
}
