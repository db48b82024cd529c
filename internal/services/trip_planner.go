package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/logger"
)

type TripPlannerService interface {
	// Suggest renders a complete trip plan. Unknown destinations get a
	// generic plan; it never fails.
	Suggest(destination string, durationDays, budget int, interests []string) string
	Itinerary(destination string, durationDays int) string
	Lookup(destination string) (Destination, bool)
	Destinations() []Destination
	BudgetTips() string
	TravelChecklist() string
	PopularDestinations() string
	// Reply answers a free chat message with canned travel advice.
	Reply(message string) string
}

type tripPlannerService struct {
	logger *zap.Logger
}

func NewTripPlannerService(log *zap.Logger) TripPlannerService {
	return &tripPlannerService{logger: logger.OrNop(log)}
}

func destinationKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (t *tripPlannerService) Lookup(destination string) (Destination, bool) {
	d, ok := destinationsDatabase[destinationKey(destination)]
	return d, ok
}

func (t *tripPlannerService) Destinations() []Destination {
	out := make([]Destination, 0, len(destinationKeys))
	for _, key := range destinationKeys {
		out = append(out, destinationsDatabase[key])
	}
	return out
}

func (t *tripPlannerService) Suggest(destination string, durationDays, budget int, interests []string) string {
	itinerary := t.Itinerary(destination, durationDays)
	joined := strings.Join(interests, ", ")

	var b strings.Builder
	dest, ok := t.Lookup(destination)
	t.logger.Debug("planning trip",
		zap.String("destination", destination),
		zap.Bool("known", ok),
		zap.Int("days", durationDays),
	)

	if ok {
		fmt.Fprintf(&b, "## 🌟 Complete Trip Plan for %s\n\n", dest.Name)
		fmt.Fprintf(&b, "**Duration:** %d days\n**Budget:** $%d\n**Interests:** %s\n\n", durationDays, budget, joined)
		fmt.Fprintf(&b, "### 📍 Destination Overview\n%s\n\n", dest.Description)
		b.WriteString("### 🌍 Essential Information\n")
		fmt.Fprintf(&b, "* **Best Time to Visit:** %s\n", dest.BestTime)
		fmt.Fprintf(&b, "* **Currency:** %s\n", dest.Currency)
		fmt.Fprintf(&b, "* **Language:** %s\n", dest.Language)
		fmt.Fprintf(&b, "* **Daily Budget:** %s\n", dest.BudgetRange)
		fmt.Fprintf(&b, "* **Your Budget:** $%d\n\n", budget)
		fmt.Fprintf(&b, "### 🚌 Transportation\n%s\n\n", dest.Transport)
		fmt.Fprintf(&b, "### 🍽️ Must-Try Local Cuisine\n%s\n\n", strings.Join(dest.Food, ", "))
		fmt.Fprintf(&b, "### 🎯 Top Attractions\n%s\n\n", strings.Join(dest.Activities, ", "))
		b.WriteString(itinerary)
		b.WriteString("\n### 💡 Pro Tips\n")
		b.WriteString("* Book accommodations in advance, especially during peak season\n")
		fmt.Fprintf(&b, "* Learn basic phrases in %s\n", dest.Language)
		b.WriteString("* Keep copies of important documents\n")
		b.WriteString("* Research local customs and etiquette\n")
		b.WriteString("* Consider travel insurance\n")
		b.WriteString("* Download offline maps and translation apps\n")
		return b.String()
	}

	fmt.Fprintf(&b, "## 🔍 Custom Trip Plan for %s\n\n", destination)
	fmt.Fprintf(&b, "**Duration:** %d days\n**Budget:** $%d\n**Interests:** %s\n\n", durationDays, budget, joined)
	b.WriteString("### 📍 Destination Information\n")
	fmt.Fprintf(&b, "I'd be happy to help you plan your trip to %s! Here's a comprehensive plan:\n\n", destination)
	b.WriteString(itinerary)
	b.WriteString(`
### 📝 General Planning Tips
* Research visa requirements well in advance
* Check vaccination requirements
* Book flights and accommodations early
* Learn about local customs and etiquette
* Research local transportation options
* Consider travel insurance
* Download useful apps (translation, maps, currency)

### 🎯 Based on Your Interests
`)
	for _, line := range InterestAdvisories(interests) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// InterestAdvisories returns one line per recognized interest, in the fixed
// advisory order. Matching ignores case and surrounding spaces.
func InterestAdvisories(interests []string) []string {
	selected := make(map[string]bool, len(interests))
	for _, interest := range interests {
		selected[strings.ToLower(strings.TrimSpace(interest))] = true
	}

	lines := []string{}
	for _, advisory := range interestAdvisories {
		if selected[strings.ToLower(advisory.interest)] {
			lines = append(lines, advisory.line)
		}
	}
	return lines
}

// activityAt returns items[i], or fallback when the list is too short.
func activityAt(items []string, i int, fallback string) string {
	if i < len(items) {
		return items[i]
	}
	return fallback
}

func (t *tripPlannerService) Itinerary(destination string, durationDays int) string {
	dest, ok := t.Lookup(destination)
	if !ok {
		return genericItinerary(destination, durationDays)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### 📅 Detailed %d-Day Itinerary for %s\n\n", durationDays, dest.Name)

	fmt.Fprintf(&b, `**Day 1: Arrival + City Introduction**
**Morning:**
* ✈️ *Arrival in %s*
* Check-in to hotel (recommended areas: city center for easy access)
* Local breakfast to start your cultural immersion

**Afternoon:**
* First major attraction: %s
* Lunch at local restaurant
* Walking tour of main district

**Evening:**
* Sunset at scenic viewpoint
* Welcome dinner featuring: %s
* Early rest to overcome jet lag

`, dest.Name,
		activityAt(dest.Activities, 0, "City center exploration"),
		activityAt(dest.Food, 0, "local cuisine"))

	if durationDays >= 2 {
		fmt.Fprintf(&b, `**Day 2: Major Landmarks & Attractions**
**Morning:**
* Early start to %s
* Guided tour or audio guide recommended
* Coffee break at local café

**Afternoon:**
* Visit to %s
* Lunch: Try %s
* Shopping at local markets

**Evening:**
* %s
* Dinner at traditional restaurant
* Night walk through historic district

`, activityAt(dest.Activities, 1, "major landmark"),
			activityAt(dest.Activities, 2, "museum or cultural site"),
			activityAt(dest.Food, 1, "signature dish"),
			activityAt(dest.Activities, 3, "Cultural performance or local entertainment"))
	}

	if durationDays >= 3 {
		foods := dest.Food
		if len(foods) > 3 {
			foods = foods[:3]
		}
		fmt.Fprintf(&b, `**Day 3: Cultural Immersion & Local Experiences**
**Morning:**
* %s
* Breakfast at local favorite spot
* Cooking class or cultural workshop

**Afternoon:**
* Food tour featuring: %s
* Visit local markets and artisan shops
* Relaxation at park or café

**Evening:**
* Traditional entertainment or live music
* Dinner at hidden gem restaurant
* Stroll through nightlife district

`, activityAt(dest.Activities, 4, "Local neighborhood exploration"), strings.Join(foods, ", "))
	}

	if durationDays >= 4 {
		b.WriteString(`**Day 4+: Extended Exploration & Day Trips**
**For longer stays, consider:**
* Day trips to nearby attractions
* Specialized interest tours (food, history, adventure)
* Relaxation and spa experiences
* Meeting locals and cultural exchange
* Photography tours of hidden gems
* Shopping for authentic souvenirs

`)
	}

	return b.String()
}

func genericItinerary(destination string, durationDays int) string {
	return fmt.Sprintf(`### 📅 Detailed %d-Day Itinerary for %s

**Day 1: Arrival + City Introduction**
**Morning:**
* ✈️ *Arrival in %s*
* Check-in to accommodation
* Local breakfast and orientation

**Afternoon:**
* Main city center exploration
* Visit primary landmark or attraction
* Lunch at recommended local restaurant

**Evening:**
* Sunset viewing at scenic location
* Welcome dinner with local specialties
* Early rest for jet lag recovery

**Day 2: Major Attractions**
**Morning:**
* Early visit to top-rated attraction
* Guided tour of historic district
* Coffee break at local café

**Afternoon:**
* Museum or cultural site visit
* Traditional lunch experience
* Local market exploration

**Evening:**
* Cultural performance or entertainment
* Dinner at traditional restaurant
* Night walk through city center

**Day 3+: Cultural Immersion**
* Cooking classes or workshops
* Food tours and tastings
* Local neighborhood exploration
* Day trips to nearby attractions
* Shopping for authentic souvenirs
* Meeting locals and cultural exchange
`, durationDays, destination, destination)
}

func (t *tripPlannerService) BudgetTips() string {
	return budgetTipsMarkdown
}

func (t *tripPlannerService) TravelChecklist() string {
	return travelChecklistMarkdown
}

func (t *tripPlannerService) PopularDestinations() string {
	return popularDestinationsMarkdown
}

var budgetKeywords = []string{"budget", "money", "cheap"}

func (t *tripPlannerService) Reply(message string) string {
	lower := strings.ToLower(message)
	for _, kw := range budgetKeywords {
		if strings.Contains(lower, kw) {
			return budgetTipsMarkdown
		}
	}

	return fmt.Sprintf(`Thanks for your question: "%s"

I'd be happy to help with your international travel planning! Here are some insights:

**For specific destination advice:** Use the trip planner to create a detailed itinerary for any country or city.

**General international travel tips:**
* Research visa requirements well in advance
* Check vaccination and health requirements
* Understand local customs and etiquette
* Learn basic phrases in the local language
* Research local transportation options
* Consider travel insurance
* Keep digital and physical copies of important documents

**Popular international destinations in our database:**
🇫🇷 Paris, France | 🇯🇵 Tokyo, Japan | 🇺🇸 New York, USA | 🇬🇧 London, UK | 🇮🇹 Rome, Italy | 🇹🇭 Bangkok, Thailand | 🇦🇺 Sydney, Australia | 🇦🇪 Dubai, UAE

Feel free to ask about specific countries, budget tips, or use the trip planner for a complete itinerary!
`, message)
}
