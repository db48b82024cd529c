package services

// Destination is one entry of the built-in travel guide.
type Destination struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BestTime    string   `json:"best_time"`
	BudgetRange string   `json:"budget_range"`
	Currency    string   `json:"currency"`
	Language    string   `json:"language"`
	Activities  []string `json:"activities"`
	Food        []string `json:"food"`
	Transport   string   `json:"transport"`
}

// destinationKeys fixes the listing order of destinationsDatabase.
var destinationKeys = []string{"paris", "tokyo", "new york", "london", "rome", "bangkok", "sydney", "dubai"}

var destinationsDatabase = map[string]Destination{
	"paris": {
		Name:        "Paris, France",
		Description: "The City of Light with iconic landmarks, world-class museums, and romantic atmosphere",
		BestTime:    "April-June, September-October (mild weather, fewer crowds)",
		BudgetRange: "$100-200 per day",
		Currency:    "Euro (€)",
		Language:    "French",
		Activities:  []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral", "Seine River Cruise", "Montmartre district"},
		Food:        []string{"Croissants", "French onion soup", "Coq au vin", "Macarons", "Wine tasting"},
		Transport:   "Metro system, buses, taxis, walking",
	},
	"tokyo": {
		Name:        "Tokyo, Japan",
		Description: "A vibrant metropolis blending ultra-modern technology with ancient traditions",
		BestTime:    "March-May (cherry blossoms), September-November (autumn colors)",
		BudgetRange: "$80-150 per day",
		Currency:    "Japanese Yen (¥)",
		Language:    "Japanese",
		Activities:  []string{"Senso-ji Temple", "Shibuya Crossing", "Tsukiji Fish Market", "Imperial Palace", "Harajuku district"},
		Food:        []string{"Sushi", "Ramen", "Tempura", "Yakitori", "Matcha tea"},
		Transport:   "JR trains, subway, buses, taxis",
	},
	"new york": {
		Name:        "New York City, USA",
		Description: "The Big Apple - a bustling metropolis with world-class attractions and Broadway shows",
		BestTime:    "April-June, September-November (pleasant weather)",
		BudgetRange: "$120-250 per day",
		Currency:    "US Dollar ($)",
		Language:    "English",
		Activities:  []string{"Central Park", "Broadway shows", "Times Square", "Statue of Liberty", "9/11 Memorial"},
		Food:        []string{"New York pizza", "Bagels", "Cheesecake", "Hot dogs", "Deli sandwiches"},
		Transport:   "Subway, taxis, buses, walking, Uber/Lyft",
	},
	"london": {
		Name:        "London, UK",
		Description: "Historic capital combining royal heritage with modern culture",
		BestTime:    "May-September (warmer weather, longer days)",
		BudgetRange: "$110-200 per day",
		Currency:    "British Pound (£)",
		Language:    "English",
		Activities:  []string{"Big Ben", "Tower of London", "British Museum", "Thames cruise", "Hyde Park"},
		Food:        []string{"Fish and chips", "Afternoon tea", "Bangers and mash", "Shepherd's pie", "Pub food"},
		Transport:   "Underground (Tube), buses, taxis, walking",
	},
	"rome": {
		Name:        "Rome, Italy",
		Description: "The Eternal City with ancient history, incredible architecture, and amazing cuisine",
		BestTime:    "April-June, September-October (mild weather)",
		BudgetRange: "$90-160 per day",
		Currency:    "Euro (€)",
		Language:    "Italian",
		Activities:  []string{"Colosseum", "Vatican City", "Trevi Fountain", "Roman Forum", "Pantheon"},
		Food:        []string{"Pizza", "Pasta", "Gelato", "Carbonara", "Tiramisu"},
		Transport:   "Metro, buses, trams, walking, taxis",
	},
	"bangkok": {
		Name:        "Bangkok, Thailand",
		Description: "Vibrant capital known for street food, temples, and bustling markets",
		BestTime:    "November-February (cool and dry season)",
		BudgetRange: "$40-80 per day",
		Currency:    "Thai Baht (฿)",
		Language:    "Thai",
		Activities:  []string{"Grand Palace", "Wat Pho temple", "Floating markets", "Khao San Road", "Chao Phraya River"},
		Food:        []string{"Pad Thai", "Tom Yum soup", "Green curry", "Mango sticky rice", "Street food"},
		Transport:   "BTS Skytrain, MRT, buses, tuk-tuks, boats",
	},
	"sydney": {
		Name:        "Sydney, Australia",
		Description: "Stunning harbor city with iconic landmarks and beautiful beaches",
		BestTime:    "September-November, March-May (spring/autumn)",
		BudgetRange: "$100-180 per day",
		Currency:    "Australian Dollar (AUD)",
		Language:    "English",
		Activities:  []string{"Opera House", "Harbour Bridge", "Bondi Beach", "Darling Harbour", "Blue Mountains"},
		Food:        []string{"Meat pies", "Seafood", "Lamingtons", "Vegemite", "Barramundi"},
		Transport:   "Trains, buses, ferries, taxis, walking",
	},
	"dubai": {
		Name:        "Dubai, UAE",
		Description: "Modern desert metropolis with luxury shopping, futuristic architecture",
		BestTime:    "November-March (cooler temperatures)",
		BudgetRange: "$120-300 per day",
		Currency:    "UAE Dirham (AED)",
		Language:    "Arabic (English widely spoken)",
		Activities:  []string{"Burj Khalifa", "Dubai Mall", "Desert safari", "Palm Jumeirah", "Gold Souk"},
		Food:        []string{"Shawarma", "Hummus", "Dates", "Arabic coffee", "International cuisine"},
		Transport:   "Metro, taxis, buses, Uber/Careem",
	},
}

// Interest advisories in their fixed output order.
var interestAdvisories = []struct {
	interest string
	line     string
}{
	{"Adventure", "* Look for outdoor activities, hiking trails, and adventure sports"},
	{"Culture", "* Visit museums, historical sites, and cultural landmarks"},
	{"Food", "* Try local cuisine, take food tours, and visit markets"},
	{"Relaxation", "* Find spas, beaches, or peaceful locations"},
	{"Nature", "* Explore national parks, gardens, and natural attractions"},
	{"History", "* Visit historical sites, museums, and heritage locations"},
	{"Shopping", "* Explore local markets, shopping districts, and artisan shops"},
	{"Nightlife", "* Research bars, clubs, and entertainment venues"},
}

const budgetTipsMarkdown = `## 💰 International Budget Travel Tips

### 🛫 Flight Savings
* **Book 6-8 weeks in advance** for international flights
* **Use flight comparison sites**: Skyscanner, Google Flights, Momondo
* **Be flexible with dates**: Use flexible date search
* **Consider layovers**: Sometimes cheaper than direct flights
* **Budget airlines**: Research local budget carriers
* **Error fares**: Follow deal alert websites

### 🏨 Accommodation Strategies
* **Hostels**: Great for meeting people, especially in Europe
* **Airbnb**: Often cheaper for longer stays
* **Guesthouses**: Local alternatives to hotels
* **Location vs Price**: Stay slightly outside city center
* **Booking timing**: Book refundable rates, cancel if better deals appear
* **Loyalty programs**: Use hotel points and status benefits

### 🍽️ Food & Dining
* **Street food**: Often the best and cheapest local cuisine
* **Local markets**: Fresh produce and authentic experience
* **Cook your own**: If staying in places with kitchens
* **Lunch specials**: Many restaurants offer cheaper lunch menus
* **Avoid tourist areas**: Restaurants near attractions are overpriced
* **Happy hours**: Take advantage of drink specials

### 🚌 Transportation
* **Public transport**: Buy day/week passes instead of individual tickets
* **Walking**: Best way to explore and it's free
* **Ride-sharing**: Often cheaper than taxis
* **Bike rentals**: Many cities have bike-sharing programs
* **Regional trains**: Cheaper than high-speed options
* **Multi-city passes**: For extensive travel (Eurail, etc.)

### 🎫 Activities & Attractions
* **Free walking tours**: Available in most major cities
* **Museum free days**: Many museums have free entry days
* **City tourism cards**: Often include transport + attractions
* **Student discounts**: Get an international student ID
* **Group discounts**: Travel with others for better rates
* **Free attractions**: Parks, beaches, viewpoints, markets

### 💳 Money Management
* **Notify banks**: Avoid card blocks while traveling
* **Multi-currency cards**: Avoid foreign transaction fees
* **ATM strategy**: Use bank ATMs, avoid airport/tourist area ATMs
* **Local currency**: Have some cash for small vendors
* **Budgeting apps**: Track expenses in real-time
* **Emergency fund**: Keep separate emergency money

### 🌍 Regional Specific Tips
* **Southeast Asia**: Street food, local transport, guesthouses
* **Europe**: Hostels, train passes, free walking tours
* **Americas**: National parks, road trips, camping
* **Middle East**: Haggling expected, modest dress savings
* **Africa**: Group tours often better value, local guides
* **Oceania**: Working holiday visas, camping, hitchhiking

### 📱 Technology Savings
* **Free WiFi**: Use instead of international roaming
* **Offline maps**: Download before traveling
* **Translation apps**: Google Translate offline mode
* **Travel apps**: Compare prices, find deals
* **VPN**: Access home country prices for bookings
* **International SIM**: Often cheaper than roaming

### 🎒 Packing Smart
* **Pack light**: Avoid baggage fees
* **Versatile clothing**: Mix and match outfits
* **Travel-sized items**: Buy toiletries locally
* **Universal adapter**: One adapter for all countries
* **Portable charger**: Avoid buying multiple chargers
* **Laundry**: Do laundry instead of overpacking

### 💡 Pro Money-Saving Hacks
* **Shoulder season**: Travel just before/after peak season
* **Slow travel**: Stay longer in fewer places
* **House sitting**: Free accommodation for pet/house sitting
* **Work exchanges**: Hostels, farms, volunteer programs
* **Local friends**: Connect with locals for insider tips
* **Travel insurance**: Cheaper than medical emergencies abroad
`

const popularDestinationsMarkdown = `## 🌍 Top International Destinations

### 🏛️ Europe
* **🇫🇷 Paris, France** - Art, romance, and world-class cuisine
* **🇮🇹 Rome, Italy** - Ancient history and incredible food
* **🇬🇧 London, UK** - Royal heritage and modern culture
* **🇩🇪 Berlin, Germany** - History, nightlife, and culture
* **🇪🇸 Barcelona, Spain** - Architecture, beaches, and tapas

### 🏯 Asia
* **🇯🇵 Tokyo, Japan** - Modern technology meets ancient tradition
* **🇹🇭 Bangkok, Thailand** - Street food and vibrant culture
* **🇸🇬 Singapore** - Clean, modern, and incredibly diverse
* **🇰🇷 Seoul, South Korea** - K-culture and amazing food
* **🇻🇳 Ho Chi Minh City, Vietnam** - History and incredible cuisine

### 🏖️ Americas
* **🇺🇸 New York, USA** - The city that never sleeps
* **🇧🇷 Rio de Janeiro, Brazil** - Beaches, carnival, and culture
* **🇨🇦 Toronto, Canada** - Diversity and natural beauty
* **🇲🇽 Mexico City, Mexico** - Rich culture and amazing food
* **🇦🇷 Buenos Aires, Argentina** - Tango, steaks, and wine

### 🏜️ Middle East & Africa
* **🇦🇪 Dubai, UAE** - Luxury, modern architecture, and shopping
* **🇪🇬 Cairo, Egypt** - Ancient pyramids and rich history
* **🇿🇦 Cape Town, South Africa** - Natural beauty and wine
* **🇹🇷 Istanbul, Turkey** - Where Europe meets Asia

### 🏄 Oceania
* **🇦🇺 Sydney, Australia** - Iconic harbor and laid-back culture
* **🇳🇿 Auckland, New Zealand** - Adventure and natural beauty
`

const travelChecklistMarkdown = `## 📋 International Travel Checklist

### 📄 Essential Documents
* [ ] **Passport** (valid for 6+ months)
* [ ] **Visa** (research requirements early)
* [ ] **Travel insurance** documentation
* [ ] **Flight confirmations** and itinerary
* [ ] **Hotel reservations** confirmations
* [ ] **International driving permit** (if needed)
* [ ] **Vaccination certificates** (if required)
* [ ] **Emergency contact information**

### 💳 Financial Preparation
* [ ] **Notify banks** of travel dates and destinations
* [ ] **International banking cards** (low foreign transaction fees)
* [ ] **Local currency** (some cash for arrival)
* [ ] **Emergency credit card** (separate from main wallet)
* [ ] **Travel budget** planning and tracking app

### 🎒 Smart Packing
* [ ] **Weather-appropriate clothing** (check forecast)
* [ ] **Comfortable walking shoes** (broken in)
* [ ] **Universal power adapter** and chargers
* [ ] **Medications** in original containers
* [ ] **First aid kit** basics
* [ ] **Copies of documents** (digital and physical)
* [ ] **Travel-sized toiletries** (within liquid limits)

### 📱 Technology & Communication
* [ ] **International phone plan** or local SIM research
* [ ] **Offline maps** downloaded
* [ ] **Translation apps** downloaded
* [ ] **Travel apps** (transport, food, accommodation)
* [ ] **VPN** for secure internet access
* [ ] **Emergency contact apps** and information

### 🏥 Health & Safety
* [ ] **Travel insurance** with medical coverage
* [ ] **Vaccinations** (check requirements 6-8 weeks ahead)
* [ ] **Prescription medications** (extra supply)
* [ ] **Emergency medical information** card
* [ ] **Embassy/consulate contact information**
* [ ] **Local emergency numbers** research

### 🌍 Cultural Preparation
* [ ] **Local customs** and etiquette research
* [ ] **Basic phrases** in local language
* [ ] **Dress code** requirements for religious sites
* [ ] **Tipping customs** understanding
* [ ] **Business hours** and holiday calendar
* [ ] **Cultural sensitivity** awareness
`
