package repository

import "fl-jobs/internal/domain"

const (
	placeholderImage  = "/placeholder.svg?height=120&width=160"
	placeholderAvatar = "/placeholder.svg?height=40&width=40"
)

func seedStores() []domain.Listing {
	return []domain.Listing{
		{
			ID: "1", Kind: domain.KindStore,
			Name: "Weymans-Palo", Address: "123 Main St, Downtown",
			Price: "15$", PriceValue: 15, Rating: 4.5, JobType: "Retail",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "John Palo", Avatar: placeholderAvatar},
		},
		{
			ID: "2", Kind: domain.KindStore,
			Name: "LST-Margo", Address: "456 Oak Ave, Midtown",
			Price: "20$", PriceValue: 20, Rating: 4.2, JobType: "Food Service",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Lisa Margo", Avatar: placeholderAvatar},
		},
		{
			ID: "3", Kind: domain.KindStore,
			Name: "Tech-Hub", Address: "789 Tech Blvd, Silicon Valley",
			Price: "35$", PriceValue: 35, Rating: 4.8, JobType: "Tech",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Tech Owner", Avatar: placeholderAvatar},
		},
		{
			ID: "4", Kind: domain.KindStore,
			Name: "Health-Care", Address: "321 Medical St, Healthcare District",
			Price: "28$", PriceValue: 28, Rating: 4.6, JobType: "Healthcare",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Health Owner", Avatar: placeholderAvatar},
		},
	}
}

func seedJobOpenings() []domain.Listing {
	return []domain.Listing{
		{
			ID: "5", Kind: domain.KindJob,
			Name: "Fashion Store", Address: "Downtown Fashion District",
			Price: "18$/hour", PriceValue: 18, Rating: 4.3, JobType: "Retail",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Fashion Owner", Avatar: placeholderAvatar},
			Description: "Looking for sales associate",
		},
		{
			ID: "6", Kind: domain.KindJob,
			Name: "Tech Repair Shop", Address: "Tech Hub Area",
			Price: "22$/hour", PriceValue: 22, Rating: 4.7, JobType: "Tech",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Tech Owner", Avatar: placeholderAvatar},
			Description: "Need experienced technician",
		},
		{
			ID: "7", Kind: domain.KindJob,
			Name: "Restaurant Server", Address: "Food District",
			Price: "16$/hour", PriceValue: 16, Rating: 4.1, JobType: "Food Service",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Restaurant Owner", Avatar: placeholderAvatar},
			Description: "Server position available",
		},
		{
			ID: "8", Kind: domain.KindJob,
			Name: "Construction Helper", Address: "Construction Zone",
			Price: "25$/hour", PriceValue: 25, Rating: 4.4, JobType: "Construction",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Construction Owner", Avatar: placeholderAvatar},
			Description: "Construction assistant needed",
		},
	}
}

func seedLocationStores() []domain.Listing {
	return []domain.Listing{
		{
			ID: "5", Kind: domain.KindStore,
			Name: "Raymond-Zenor", Address: "417 M MAM Road, Ajmer, Rajasthan",
			Price: "20$", PriceValue: 20, Rating: 4.2, JobType: "Retail",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Raymond Z", Avatar: placeholderAvatar},
		},
		{
			ID: "6", Kind: domain.KindStore,
			Name: "Fashion-Hub", Address: "123 Style Street, Mumbai, Maharashtra",
			Price: "25$", PriceValue: 25, Rating: 4.5, JobType: "Retail",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Fashion H", Avatar: placeholderAvatar},
		},
		{
			ID: "7", Kind: domain.KindStore,
			Name: "Trendy-Wear", Address: "456 Fashion Ave, Delhi, India",
			Price: "18$", PriceValue: 18, Rating: 4.0, JobType: "Retail",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Trendy W", Avatar: placeholderAvatar},
		},
		{
			ID: "8", Kind: domain.KindStore,
			Name: "Style-Corner", Address: "789 Design Blvd, Bangalore, Karnataka",
			Price: "22$", PriceValue: 22, Rating: 4.3, JobType: "Food Service",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Style C", Avatar: placeholderAvatar},
		},
		{
			ID: "9", Kind: domain.KindStore,
			Name: "Chic-Boutique", Address: "321 Elegant St, Chennai, Tamil Nadu",
			Price: "28$", PriceValue: 28, Rating: 4.7, JobType: "Tech",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Chic B", Avatar: placeholderAvatar},
		},
		{
			ID: "10", Kind: domain.KindStore,
			Name: "Modern-Threads", Address: "654 Contemporary Rd, Hyderabad, Telangana",
			Price: "24$", PriceValue: 24, Rating: 4.4, JobType: "Healthcare",
			Image: placeholderImage,
			Owner: domain.Owner{Name: "Modern T", Avatar: placeholderAvatar},
		},
	}
}

func seedLocations() []string {
	return []string{
		"New York, USA",
		"Paris, France",
		"Tokyo, Japan",
		"Mumbai, India",
		"Lagos, Nigeria",
		"São Paulo, Brazil",
		"London, UK",
		"Sydney, Australia",
		"Dubai, UAE",
		"Singapore",
		"Toronto, Canada",
		"Berlin, Germany",
		"Seoul, South Korea",
		"Mexico City, Mexico",
		"Cairo, Egypt",
		"Bangkok, Thailand",
		"Istanbul, Turkey",
		"Moscow, Russia",
		"Buenos Aires, Argentina",
		"Johannesburg, South Africa",
	}
}

func seedCandidates() []domain.Candidate {
	return []domain.Candidate{
		{
			ID:           "1",
			Name:         "Priya Sharma",
			Skills:       "Retail sales, customer service, inventory management",
			Experience:   "2 years in fashion retail",
			Education:    "Bachelor's in Business Administration",
			Availability: "Full-time, weekends",
			Avatar:       placeholderAvatar,
		},
		{
			ID:           "2",
			Name:         "Rahul Patel",
			Skills:       "Food service, barista training, cash handling",
			Experience:   "3 years in coffee shops",
			Education:    "Associate's degree in Hospitality",
			Availability: "Part-time, evenings",
			Avatar:       placeholderAvatar,
		},
	}
}

// SeedNotifications returns the inbox every new client starts with.
// A fresh slice each call: clients mutate their own copy.
func SeedNotifications() []domain.Notification {
	return []domain.Notification{
		{
			ID:        "1",
			Title:     "New Job Match",
			Message:   "A new retail position matches your preferences at Fashion Hub",
			Type:      domain.NotifJob,
			Timestamp: "2 hours ago",
			Read:      false,
			Avatar:    placeholderAvatar,
		},
		{
			ID:        "2",
			Title:     "Application Update",
			Message:   "Your application to Tech Repair Shop has been viewed",
			Type:      domain.NotifApplication,
			Timestamp: "5 hours ago",
			Read:      false,
		},
		{
			ID:        "3",
			Title:     "Message from Store Owner",
			Message:   "John Palo sent you a message about the position",
			Type:      domain.NotifMessage,
			Timestamp: "1 day ago",
			Read:      true,
			Avatar:    placeholderAvatar,
		},
		{
			ID:        "4",
			Title:     "Profile Verification",
			Message:   "Your profile has been successfully verified",
			Type:      domain.NotifSystem,
			Timestamp: "2 days ago",
			Read:      true,
		},
	}
}
