package storage

import "github.com/xaenox/astro-chat/internal/models"

func hidden() *bool {
	v := false
	return &v
}

// SeedChats returns the chat directory the app starts with.
func SeedChats() []models.Chat {
	return []models.Chat{
		{
			ID:          "1",
			Name:        "Astrologer Vikram",
			LastMessage: "Session is ending in 2 minutes.",
			Time:        "1:39 PM",
			IsOnline:    true,
			Category:    models.CategoryAstrologer,
			Experience:  "15+ Years",
			Specialties: []string{"Vedic Astrology", "Prashna Kundali", "Face Reading"},
			Languages:   []string{"English", "Hindi", "Sanskrit"},
			Bio:         "I help people navigate life's challenges using ancient Vedic wisdom. My goal is to provide clarity and practical remedies for career, relationship, and health issues.",
			Rating:      4.9,
			ReviewCount: 1234,
			Tags:        []string{"Lifestyle", "Relationships"},
		},
		{
			ID:          "2",
			Name:        "Astrologer Priya",
			LastMessage: "Your Mars transit looks favorable.",
			Time:        "Yesterday",
			Unread:      2,
			Category:    models.CategoryAstrologer,
			Experience:  "8 Years",
			Specialties: []string{"KP Astrology", "Career Counseling", "Financial Growth"},
			Languages:   []string{"English", "Marathi"},
			Bio:         "Specializing in career and financial growth through KP Astrology. I provide precise timing for job changes and investment opportunities.",
			Rating:      4.7,
			ReviewCount: 856,
			Tags:        []string{"Finance", "Career"},
		},
		{
			ID:          "3",
			Name:        "Customer Support",
			LastMessage: "How can we help you today?",
			Time:        "Monday",
			IsOnline:    true,
			Category:    models.CategorySupport,
			Experience:  "Always Here",
			Specialties: []string{"Billing", "Technical Support", "Refunds"},
			Languages:   []string{"English"},
			Bio:         "We are here to help you with any technical issues or billing inquiries. Available 24/7.",
			Rating:      5.0,
			ReviewCount: 9999,
		},
		{
			ID:          "4",
			Name:        "Astro Aisha",
			LastMessage: "Love is in the stars for you.",
			Time:        "Just now",
			IsOnline:    true,
			Category:    models.CategoryAstrologer,
			Experience:  "5 Years",
			Specialties: []string{"Love & Relationships", "Match Making", "Heartbreak Recovery"},
			Languages:   []string{"English", "Hindi", "Punjabi"},
			Bio:         "Specializing in matters of the heart. I analyze Venus and Mars positions to guide you toward harmonious relationships.",
			Rating:      4.8,
			ReviewCount: 450,
			Visible:     hidden(),
			Tags:        []string{"Relationships", "Love"},
		},
		{
			ID:          "5",
			Name:        "Guru Dev",
			LastMessage: "Align your career with the cosmos.",
			Time:        "Just now",
			IsOnline:    true,
			Category:    models.CategoryAstrologer,
			Experience:  "20+ Years",
			Specialties: []string{"Career Growth", "Business Strategy", "Financial Success"},
			Languages:   []string{"English", "Sanskrit"},
			Bio:         "Expert in 10th House analysis. I help professionals and entrepreneurs unlock their true potential.",
			Rating:      4.9,
			ReviewCount: 2100,
			Visible:     hidden(),
			Tags:        []string{"Finance", "Career"},
		},
		{
			ID:          "6",
			Name:        "Yogi Arjun",
			LastMessage: "Balance your mind, body, and soul.",
			Time:        "Just now",
			Category:    models.CategoryAstrologer,
			Experience:  "12 Years",
			Specialties: []string{"Medical Astrology", "Mental Wellness", "Chakra Balancing"},
			Languages:   []string{"English", "Hindi", "Tamil"},
			Bio:         "Combining Ayurveda with Astrology to promote holistic well-being.",
			Rating:      4.7,
			ReviewCount: 890,
			Visible:     hidden(),
			Tags:        []string{"Lifestyle", "Health"},
		},
	}
}

// SeedMessages returns the thread fixtures keyed by chat id.
func SeedMessages() map[string][]models.Message {
	return map[string][]models.Message{
		"1": {
			{ID: "1", Sender: models.SenderSystem, Text: "Your session with Astrologer Vikram has started.", Timestamp: 1734681480000, Type: models.EventMessage},
			{ID: "2", Sender: models.SenderUser, Text: "Namaste. I am feeling very anxious about my current job. Can you look at my chart?", Timestamp: 1734681600000, Type: models.TextMessage},
			{ID: "3", Sender: models.SenderAIAstrologer, Text: "Namaste! I am analyzing your birth details. Currently, you are running through Shani Mahadasha. This often brings pressure but builds resilience.", Timestamp: 1734681660000, Type: models.AIMessage, HasFeedback: true, FeedbackType: models.FeedbackLiked},
			{ID: "4", Sender: models.SenderHumanAstrologer, Text: "I see the same. Look at your 6th house; Saturn is transiting there. This is why you feel the workload is heavy.", Timestamp: 1734681720000, Type: models.HumanMessage},
			{ID: "5", Sender: models.SenderUser, Text: "Is there any remedy for this? I find it hard to focus.", Timestamp: 1734681780000, Type: models.TextMessage, ReplyTo: "4"},
			{ID: "6", Sender: models.SenderAIAstrologer, Text: "I suggest chanting the Shani Mantra 108 times on Saturdays. Would you like the specific mantra text?", Timestamp: 1734681840000, Type: models.AIMessage},
		},
		"2": {
			{ID: "201", Sender: models.SenderSystem, Text: "Your session with Astrologer Priya has started.", Timestamp: 1734600000000, Type: models.EventMessage},
			{ID: "202", Sender: models.SenderAIAstrologer, Text: "Hello! I noticed you are interested in career growth. Shall I analyze your 10th house?", Timestamp: 1734600060000, Type: models.AIMessage},
			{ID: "203", Sender: models.SenderUser, Text: "Yes please. I am looking for a promotion.", Timestamp: 1734600120000, Type: models.TextMessage},
			{ID: "204", Sender: models.SenderHumanAstrologer, Text: "Your Mars transit looks favorable for leadership roles. Expect good news within 45 days.", Timestamp: 1734600180000, Type: models.HumanMessage},
		},
		"3": {
			{ID: "301", Sender: models.SenderSystem, Text: "Support chat started.", Timestamp: 1734500000000, Type: models.EventMessage},
			{ID: "302", Sender: models.SenderUser, Text: "I was charged twice for my last session.", Timestamp: 1734500060000, Type: models.TextMessage},
			// support replies reuse the human type
			{ID: "303", Sender: models.SenderHumanAstrologer, Text: "Apologies for the inconvenience. Let me check the transaction details. How can we help you today beyond this?", Timestamp: 1734500120000, Type: models.HumanMessage},
		},
	}
}

// SeedProfile returns the initial user profile.
func SeedProfile() models.UserProfile {
	return models.UserProfile{
		Name:         "Rahul Sharma",
		BirthDate:    "15 March 1990",
		BirthTime:    "14:30 PM",
		BirthPlace:   "Mumbai, India",
		SunSign:      "Pisces ♓",
		MoonSign:     "Cancer ♋",
		Ascendant:    "Gemini ♊",
		CurrentDasha: "Shani Mahadasha",
	}
}
