package catalog

import (
	"backend/internal/model"

	"github.com/shopspring/decimal"
)

var packages = map[string]model.GuestPackage{
	model.PackageBasic: {
		Type:      model.PackageBasic,
		Name:      "Basic Day Fun Pack",
		Price:     decimal.NewFromInt(499),
		Amenities: []string{"Entry", "Pool", "Kids Play", "Indoor Games"},
		Color:     "green",
	},
	model.PackageFamily: {
		Type:      model.PackageFamily,
		Name:      "Family Fun Pack",
		Price:     decimal.NewFromInt(999),
		Amenities: []string{"Entry", "Pool", "Kids Play", "Indoor Games", "Buffet Meals", "Movie Room"},
		Color:     "blue",
	},
	model.PackagePremium: {
		Type:      model.PackagePremium,
		Name:      "Premium Cool & Fun Pack",
		Price:     decimal.NewFromInt(1499),
		Amenities: []string{"All Family Features", "Unlimited Snacks", "Gym", "DJ Zone"},
		Color:     "purple",
	},
	model.PackageLuxury: {
		Type:      model.PackageLuxury,
		Name:      "Luxury Relax Pack",
		Price:     decimal.NewFromInt(2499),
		Amenities: []string{"All Premium Features", "Spa", "Yoga", "Private Lounge"},
		Color:     "amber",
	},
	model.PackageEvent: {
		Type:      model.PackageEvent,
		Name:      "Custom Event Pack",
		Price:     decimal.NewFromInt(5000),
		Amenities: []string{"Custom Access"},
		Color:     "rose",
	},
}

var allDay = []string{model.PackageBasic, model.PackageFamily, model.PackagePremium, model.PackageLuxury}

var amenities = []model.Amenity{
	// Fun & entertainment
	{
		ID:         "1",
		Name:       model.LocalizedText{EN: "Swimming Pool", TA: "நீச்சல் குளம்"},
		Icon:       "🌊",
		BasePrice:  decimal.NewFromInt(150),
		Category:   model.AmenityFun,
		IncludedIn: allDay,
		Description: &model.LocalizedText{
			EN: "Crystal clear water park with slides and kids zone.",
			TA: "ஸ்லைடுகள் மற்றும் குழந்தைகளுக்கான மண்டலத்துடன் கூடிய சுத்தமான நீச்சல் குளம்.",
		},
		Rules: []string{"Nylon clothes mandatory", "Shower before entry", "No diving in kids area"},
	},
	{
		ID:         "6",
		Name:       model.LocalizedText{EN: "Movie Room", TA: "திரையரங்கு அறை"},
		Icon:       "🎬",
		BasePrice:  decimal.NewFromInt(100),
		Category:   model.AmenityFun,
		IncludedIn: []string{model.PackageFamily, model.PackagePremium, model.PackageLuxury},
		Description: &model.LocalizedText{
			EN: "Daily screenings of popular movies in AC comfort.",
			TA: "குளிர்சாதன வசதியுடன் கூடிய அறையில் தினசரி திரைப்படங்கள் திரையிடப்படும்.",
		},
	},
	{
		ID:         "7",
		Name:       model.LocalizedText{EN: "Kids Play Area", TA: "குழந்தைகள் விளையாட்டு"},
		Icon:       "🎡",
		BasePrice:  decimal.NewFromInt(150),
		Category:   model.AmenityFun,
		IncludedIn: allDay,
		Description: &model.LocalizedText{
			EN: "Safe playground with swings, slides, and sand pit.",
			TA: "ஊஞ்சல், ஸ்லைடு மற்றும் மணல் குழி கொண்ட பாதுகாப்பான விளையாட்டு மைதானம்.",
		},
	},
	{
		ID:         "11",
		Name:       model.LocalizedText{EN: "Indoor Games", TA: "உள்ளரங்கு விளையாட்டுகள்"},
		Icon:       "🎮",
		BasePrice:  decimal.NewFromInt(50),
		Category:   model.AmenityFun,
		IncludedIn: []string{model.PackageBasic, model.PackageFamily},
	},

	// Food & drinks
	{
		ID:        "2",
		Name:      model.LocalizedText{EN: "Restaurant", TA: "உணவகம்"},
		Icon:      "🍽️",
		BasePrice: decimal.Zero,
		Category:  model.AmenityFood,
		Description: &model.LocalizedText{
			EN: "Multi-cuisine Halal & Kosher certified dining.",
			TA: "அனைத்து வகை உணவுகளும் கிடைக்கும் ஹலால் அங்கீகரிக்கப்பட்ட உணவகம்.",
		},
	},
	{
		ID:        "8",
		Name:      model.LocalizedText{EN: "Bar & Lounge", TA: "பார் மற்றும் லவுஞ்ச்"},
		Icon:      "🍸",
		BasePrice: decimal.Zero,
		Category:  model.AmenityFood,
	},

	// Wellness
	{
		ID:         "3",
		Name:       model.LocalizedText{EN: "Spa", TA: "ஸ்பா"},
		Icon:       "💆",
		BasePrice:  decimal.NewFromInt(800),
		Category:   model.AmenityWellness,
		IncludedIn: []string{model.PackageLuxury},
		Description: &model.LocalizedText{
			EN: "Professional herbal massage and relaxation therapy.",
			TA: "நிபுணத்துவம் வாய்ந்த மூலிகை மசாஜ் மற்றும் ஓய்வு சிகிச்சை.",
		},
	},
	{
		ID:        "12",
		Name:      model.LocalizedText{EN: "Salon", TA: "சலூன்"},
		Icon:      "💇",
		BasePrice: decimal.NewFromInt(300),
		Category:  model.AmenityWellness,
	},
	{
		ID:        "13",
		Name:      model.LocalizedText{EN: "Massage", TA: "மசாஜ்"},
		Icon:      "🧖",
		BasePrice: decimal.NewFromInt(600),
		Category:  model.AmenityWellness,
	},
	{
		ID:         "4",
		Name:       model.LocalizedText{EN: "Gym", TA: "ஜிம்"},
		Icon:       "🏋️",
		BasePrice:  decimal.NewFromInt(200),
		Category:   model.AmenityWellness,
		IncludedIn: []string{model.PackagePremium, model.PackageLuxury},
	},
	{
		ID:         "5",
		Name:       model.LocalizedText{EN: "Yoga", TA: "யோகா"},
		Icon:       "🧘",
		BasePrice:  decimal.NewFromInt(300),
		Category:   model.AmenityWellness,
		IncludedIn: []string{model.PackageLuxury},
	},

	// Facilities
	{
		ID:        "9",
		Name:      model.LocalizedText{EN: "Conference Room", TA: "கூட்ட அரங்கு"},
		Icon:      "🤝",
		BasePrice: decimal.NewFromInt(2000),
		Category:  model.AmenityFacility,
	},
	{
		ID:        "10",
		Name:      model.LocalizedText{EN: "Banquet Hall", TA: "விருந்து அரங்கம்"},
		Icon:      "🎊",
		BasePrice: decimal.NewFromInt(5000),
		Category:  model.AmenityFacility,
	},

	// Safety
	{
		ID:        "15",
		Name:      model.LocalizedText{EN: "First-aid Services", TA: "முதலுதவி"},
		Icon:      "🚑",
		BasePrice: decimal.Zero,
		Category:  model.AmenitySafety,
	},
	{
		ID:        "16",
		Name:      model.LocalizedText{EN: "CCTV Monitoring", TA: "சிசிடிவி"},
		Icon:      "📹",
		BasePrice: decimal.Zero,
		Category:  model.AmenitySafety,
	},
	{
		ID:        "17",
		Name:      model.LocalizedText{EN: "Security Guard", TA: "பாதுகாப்பு"},
		Icon:      "👮",
		BasePrice: decimal.Zero,
		Category:  model.AmenitySafety,
	},

	// Sports
	{
		ID:        "18",
		Name:      model.LocalizedText{EN: "Outdoor Sports (Tennis)", TA: "வெளிப்புற விளையாட்டுகள்"},
		Icon:      "🎾",
		BasePrice: decimal.NewFromInt(100),
		Category:  model.AmenitySports,
	},
}

// rooms is the reference inventory. Occupancy is runtime state, so every room
// starts AVAILABLE here except 103, which the reference data lists as mid-clean.
var rooms = []model.Room{
	{ID: "r1", Number: "101", Type: model.RoomDeluxe, Status: model.RoomAvailable, Price: decimal.NewFromInt(2500), Amenities: []string{"Living Area", "Dental Kit", "Mini Fridge", "Terrace"}},
	{ID: "r2", Number: "102", Type: model.RoomDeluxe, Status: model.RoomAvailable, Price: decimal.NewFromInt(2500), Amenities: []string{"Living Area", "Dental Kit", "Terrace"}},
	{ID: "r3", Number: "103", Type: model.RoomSuite, Status: model.RoomCleaning, Price: decimal.NewFromInt(4500), Amenities: []string{"Living Area", "Dining Area", "Mini Fridge", "Terrace", "Balcony"}},
	{ID: "r4", Number: "201", Type: model.RoomFamily, Status: model.RoomAvailable, Price: decimal.NewFromInt(3500), Amenities: []string{"Living Area", "Dining Area", "Terrace"}},
	{ID: "r5", Number: "202", Type: model.RoomDorm, Status: model.RoomAvailable, Price: decimal.NewFromInt(1200), Amenities: []string{"Basic Facilities"}},
	{ID: "r6", Number: "203", Type: model.RoomDeluxe, Status: model.RoomAvailable, Price: decimal.NewFromInt(2500), Amenities: []string{"Living Area", "Terrace"}},
	{ID: "r7", Number: "301", Type: model.RoomSuite, Status: model.RoomAvailable, Price: decimal.NewFromInt(5000), Amenities: []string{"Private Pool", "Mini Bar", "Kitchenette"}},
	{ID: "r8", Number: "302", Type: model.RoomFamily, Status: model.RoomAvailable, Price: decimal.NewFromInt(3800), Amenities: []string{"Double Balcony", "Kids Bunk Bed"}},
}
