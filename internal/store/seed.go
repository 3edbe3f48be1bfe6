package store

import "github.com/AviMalewar/Vibe-app/models"

// SeedProfiles returns the fixed demo population that is always present in
// listings. Seed profiles are static configuration: never persisted, never
// removable, never valid login or session targets. Their ids win over any
// colliding user record.
//
// Returned as a fresh slice on every call so callers cannot mutate the seed
// set of another store.
func SeedProfiles() []models.StudentProfile {
	return []models.StudentProfile{
		{
			ID:              "1",
			Name:            "Alex Chen",
			Branch:          "Computer Science",
			Year:            "Junior",
			Bio:             "Late night coder, early morning coffee addict. Always down for a hackathon or a hike. 💻☕️",
			Interests:       []string{"AI", "Cybersecurity", "Sustainable Tech"},
			Hobbies:         []string{"Rock Climbing", "Photography", "Gaming"},
			MusicGenres:     []string{"Lofi", "Synthwave", "Indie Rock"},
			FavoriteArtists: []string{"The Midnight", "Tame Impala"},
			MovieGenres:     []string{"Sci-Fi", "Documentary", "Thriller"},
			Lifestyle:       models.NightOwl,
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Alex",
		},
		{
			ID:              "2",
			Name:            "Sarah Miller",
			Branch:          "Fine Arts",
			Year:            "Senior",
			Bio:             "Painter exploring the intersection of digital and physical art. Loves rainy days. 🎨🌧️",
			Interests:       []string{"Illustration", "UI/UX Design", "Art History"},
			Hobbies:         []string{"Painting", "Yoga", "Baking"},
			MusicGenres:     []string{"Dream Pop", "Classical", "Jazz"},
			FavoriteArtists: []string{"Beach House", "Lana Del Rey"},
			MovieGenres:     []string{"Drama", "Animation", "Romance"},
			Lifestyle:       models.EarlyBird,
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
		},
		{
			ID:              "3",
			Name:            "Jordan Smith",
			Branch:          "Business Admin",
			Year:            "Sophomore",
			Bio:             "Aspiring entrepreneur. Always networking and looking for the next big idea. 🚀📈",
			Interests:       []string{"Finance", "Marketing", "Blockchain"},
			Hobbies:         []string{"Golf", "Traveling", "Reading"},
			MusicGenres:     []string{"Hiphop", "Top 40", "Deep House"},
			FavoriteArtists: []string{"Drake", "Fisher"},
			MovieGenres:     []string{"Action", "Comedy", "Biopic"},
			Lifestyle:       models.Indoor,
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Jordan",
		},
		{
			ID:              "4",
			Name:            "Maya Patel",
			Branch:          "Biology",
			Year:            "Freshman",
			Bio:             "Pre-med student with a passion for marine biology. I collect shells. 🐚🧬",
			Interests:       []string{"Genetics", "Enviro Science", "Oceanography"},
			Hobbies:         []string{"Scuba Diving", "Sketching", "Gardening"},
			MusicGenres:     []string{"Folk", "Ambient", "Alternative"},
			FavoriteArtists: []string{"Bon Iver", "Phoebe Bridgers"},
			MovieGenres:     []string{"Horror", "Mystery", "Fantasy"},
			Lifestyle:       models.Outdoor,
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Maya",
		},
		{
			ID:              "5",
			Name:            "Leo Rodriguez",
			Branch:          "Music Production",
			Year:            "Junior",
			Bio:             "Sound engineer in the making. If I am not in the studio, I am at a gig. 🎸🎧",
			Interests:       []string{"Audio Engineering", "Live Mixing", "Composition"},
			Hobbies:         []string{"Guitar", "Concert Hopping", "Vinyls"},
			MusicGenres:     []string{"Psych Rock", "Techno", "Blues"},
			FavoriteArtists: []string{"Pink Floyd", "Charlotte de Witte"},
			MovieGenres:     []string{"Musical", "Cult Classics", "Action"},
			Lifestyle:       models.NightOwl,
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Leo",
		},
	}
}
