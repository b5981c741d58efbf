package content

// Seed data used when a collection has no persisted value yet. Matches
// the club's launch content.

func seedAchievements() []Achievement {
	return []Achievement{
		{ID: "1", IconName: IconTrophy, Title: "State Champions", Count: "12", Subtitle: "Championships Won"},
		{ID: "2", IconName: IconMedal, Title: "National Level", Count: "25+", Subtitle: "Players Selected"},
		{ID: "3", IconName: IconAward, Title: "Best Sports Club", Count: "5x", Subtitle: "University Award"},
	}
}

func seedGalleryImages() []GalleryImage {
	return []GalleryImage{
		{ID: "1", Src: "/assets/sports/cricket.jpg", Alt: "Cricket team in action"},
		{ID: "2", Src: "/assets/sports/football.jpg", Alt: "Football match highlights"},
		{ID: "3", Src: "/assets/sports/basketball.jpg", Alt: "Basketball tournament"},
		{ID: "4", Src: "/assets/sports/badminton.jpg", Alt: "Badminton championship"},
		{ID: "5", Src: "/assets/sports/volleyball.jpg", Alt: "Volleyball team victory"},
		{ID: "6", Src: "/assets/sports/tabletennis.jpg", Alt: "Table tennis competition"},
	}
}

func seedSports() []Sport {
	return []Sport{
		{
			ID:       "1",
			Name:     "Cricket",
			Image:    "/assets/sports/cricket.jpg",
			Schedule: "Mon, Wed, Fri - 4:00 PM",
			Venue:    "Main Cricket Ground",
			Captain:  "Rahul Verma",
			Coach:    "Mr. Suresh Raina",
			Rating:   4.9,
			Members:  45,
			Featured: true,
		},
		{
			ID:       "2",
			Name:     "Football",
			Image:    "/assets/sports/football.jpg",
			Schedule: "Tue, Thu, Sat - 5:00 PM",
			Venue:    "Football Stadium",
			Captain:  "Arjun Menon",
			Coach:    "Mr. Bhaichung Bhutia",
			Rating:   4.8,
			Members:  38,
			Featured: false,
		},
		{
			ID:       "3",
			Name:     "Basketball",
			Image:    "/assets/sports/basketball.jpg",
			Schedule: "Mon, Wed, Fri - 6:00 PM",
			Venue:    "Indoor Sports Complex",
			Captain:  "Sneha Reddy",
			Coach:    "Mr. Satnam Singh",
			Rating:   4.7,
			Members:  32,
			Featured: true,
		},
		{
			ID:       "4",
			Name:     "Badminton",
			Image:    "/assets/sports/badminton.jpg",
			Schedule: "Tue, Thu - 4:30 PM",
			Venue:    "Badminton Hall",
			Captain:  "Aditya Kumar",
			Coach:    "Ms. P.V. Sindhu",
			Rating:   4.9,
			Members:  28,
			Featured: false,
		},
		{
			ID:       "5",
			Name:     "Volleyball",
			Image:    "/assets/sports/volleyball.jpg",
			Schedule: "Mon, Wed, Sat - 5:30 PM",
			Venue:    "Volleyball Court",
			Captain:  "Deepika Nair",
			Coach:    "Mr. Jimmy George",
			Rating:   4.6,
			Members:  35,
			Featured: false,
		},
		{
			ID:       "6",
			Name:     "Table Tennis",
			Image:    "/assets/sports/tabletennis.jpg",
			Schedule: "Daily - 3:00 PM",
			Venue:    "TT Room, Sports Block",
			Captain:  "Karan Malhotra",
			Coach:    "Ms. Manika Batra",
			Rating:   4.8,
			Members:  42,
			Featured: true,
		},
	}
}

func seedEvents() []Event {
	return []Event{
		{
			ID:     "1",
			Title:  "Inter-College Cricket Championship",
			Date:   "Jan 25-28, 2026",
			Time:   "9:00 AM onwards",
			Venue:  "University Cricket Stadium",
			Type:   "Tournament",
			Status: StatusRegistrationOpen,
		},
		{
			ID:     "2",
			Title:  "Annual Sports Day",
			Date:   "Feb 15, 2026",
			Time:   "8:00 AM - 6:00 PM",
			Venue:  "Main Sports Complex",
			Type:   "Event",
			Status: StatusComingSoon,
		},
		{
			ID:     "3",
			Title:  "Basketball League Finals",
			Date:   "Feb 22, 2026",
			Time:   "4:00 PM",
			Venue:  "Indoor Stadium",
			Type:   "Match",
			Status: StatusRegistrationOpen,
		},
		{
			ID:     "4",
			Title:  "Badminton Open Tournament",
			Date:   "Mar 5-7, 2026",
			Time:   "10:00 AM onwards",
			Venue:  "Badminton Arena",
			Type:   "Tournament",
			Status: StatusRegistrationOpen,
		},
	}
}

func seedTeamMembers() []TeamMember {
	return []TeamMember{
		{ID: "1", Name: "Dr. Rajesh Kumar", Role: "Faculty Coordinator", Description: "20+ years in sports administration", Image: "RK"},
		{ID: "2", Name: "Prof. Anita Sharma", Role: "Sports Director", Description: "Former national athlete", Image: "AS"},
		{ID: "3", Name: "Vikram Singh", Role: "Club President", Description: "4th Year, Computer Science", Image: "VS"},
		{ID: "4", Name: "Priya Patel", Role: "Sports Secretary", Description: "3rd Year, Commerce", Image: "PP"},
		{ID: "5", Name: "Rahul Verma", Role: "Cricket Captain", Description: "State level player", Image: "RV"},
		{ID: "6", Name: "Sneha Reddy", Role: "Basketball Captain", Description: "University topper", Image: "SR"},
		{ID: "7", Name: "Arjun Menon", Role: "Football Captain", Description: "All-rounder athlete", Image: "AM"},
		{ID: "8", Name: "Deepika Nair", Role: "Volleyball Captain", Description: "National camp trainee", Image: "DN"},
	}
}

func seedRegistrations() []Registration {
	return []Registration{
		{ID: "r1", Name: "Aarav Sharma", RegisterNumber: "2024CS001", Department: "Computer Science", Year: "2nd Year", Sport: "Cricket", Email: "aarav@college.edu", Phone: "9876543210", RegisteredAt: "2026-01-10T10:30:00Z"},
		{ID: "r2", Name: "Ishaan Patel", RegisterNumber: "2024EC015", Department: "Electronics", Year: "1st Year", Sport: "Cricket", Email: "ishaan@college.edu", Phone: "9876543211", RegisteredAt: "2026-01-11T14:00:00Z"},
		{ID: "r3", Name: "Meera Nair", RegisterNumber: "2023ME008", Department: "Mechanical", Year: "3rd Year", Sport: "Football", Email: "meera@college.edu", Phone: "9876543212", RegisteredAt: "2026-01-12T09:15:00Z"},
		{ID: "r4", Name: "Rohan Gupta", RegisterNumber: "2024CS022", Department: "Computer Science", Year: "2nd Year", Sport: "Basketball", Email: "rohan@college.edu", Phone: "9876543213", RegisteredAt: "2026-01-13T11:00:00Z"},
		{ID: "r5", Name: "Ananya Singh", RegisterNumber: "2023EE005", Department: "Electrical", Year: "3rd Year", Sport: "Badminton", Email: "ananya@college.edu", Phone: "9876543214", RegisteredAt: "2026-01-14T16:30:00Z"},
		{ID: "r6", Name: "Kabir Reddy", RegisterNumber: "2025CI003", Department: "Civil", Year: "1st Year", Sport: "Volleyball", Email: "kabir@college.edu", Phone: "9876543215", RegisteredAt: "2026-01-15T08:45:00Z"},
		{ID: "r7", Name: "Diya Iyer", RegisterNumber: "2024SC010", Department: "Science", Year: "2nd Year", Sport: "Table Tennis", Email: "diya@college.edu", Phone: "9876543216", RegisteredAt: "2026-01-16T13:20:00Z"},
		{ID: "r8", Name: "Vivaan Joshi", RegisterNumber: "2023CS030", Department: "Computer Science", Year: "3rd Year", Sport: "Cricket", Email: "vivaan@college.edu", Phone: "9876543217", RegisteredAt: "2026-01-17T10:00:00Z"},
	}
}
