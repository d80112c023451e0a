package server

import (
	"context"
	"log/slog"

	"github.com/cinepass/cinebook/internal/cinebook"
)

// cities is static reference data; theaters are scoped to their city.
var cities = []cinebook.City{
	{
		ID: "mumbai", Name: "Mumbai",
		Theaters: []cinebook.Theater{
			{ID: "pvr-phoenix", Name: "PVR Phoenix Palladium", Location: "Lower Parel"},
			{ID: "inox-nariman", Name: "INOX Nariman Point", Location: "Nariman Point"},
			{ID: "cinepolis-andheri", Name: "Cinépolis Andheri", Location: "Andheri West"},
			{ID: "pvr-juhu", Name: "PVR ICON Juhu", Location: "Juhu"},
		},
	},
	{
		ID: "delhi", Name: "Delhi",
		Theaters: []cinebook.Theater{
			{ID: "pvr-saket", Name: "PVR Select CITYWALK", Location: "Saket"},
			{ID: "pvr-priya", Name: "PVR Priya", Location: "Vasant Vihar"},
			{ID: "inox-nehru", Name: "INOX Nehru Place", Location: "Nehru Place"},
			{ID: "cinepolis-dlf", Name: "Cinépolis DLF Place", Location: "Saket"},
		},
	},
	{
		ID: "bangalore", Name: "Bangalore",
		Theaters: []cinebook.Theater{
			{ID: "pvr-vega", Name: "PVR Vega City", Location: "Bannerghatta Road"},
			{ID: "inox-garuda", Name: "INOX Garuda Mall", Location: "Magrath Road"},
			{ID: "cinepolis-rcity", Name: "Cinépolis Royal Meenakshi", Location: "Bannerghatta Road"},
			{ID: "pvr-forum", Name: "PVR Forum Mall", Location: "Koramangala"},
		},
	},
	{
		ID: "hyderabad", Name: "Hyderabad",
		Theaters: []cinebook.Theater{
			{ID: "pvr-nexus", Name: "PVR Nexus Mall", Location: "Kukatpally"},
			{ID: "inox-gvk", Name: "INOX GVK One", Location: "Banjara Hills"},
			{ID: "asian-ameerpet", Name: "Asian Cinemas", Location: "Ameerpet"},
			{ID: "pvr-irrum", Name: "PVR Irrum Manzil", Location: "Somajiguda"},
		},
	},
	{
		ID: "chennai", Name: "Chennai",
		Theaters: []cinebook.Theater{
			{ID: "pvr-ampa", Name: "PVR Ampa Skywalk", Location: "Amjikarai"},
			{ID: "inox-marina", Name: "INOX The Marina Mall", Location: "OMR"},
			{ID: "sathyam-royapettah", Name: "Sathyam Cinemas", Location: "Royapettah"},
			{ID: "pvr-grand", Name: "PVR Grand Galada", Location: "Pallavaram"},
		},
	},
}

func cityByID(id string) *cinebook.City {
	for i := range cities {
		if cities[i].ID == id {
			return &cities[i]
		}
	}
	return nil
}

func cityHasTheater(city *cinebook.City, theaterID string) bool {
	for _, t := range city.Theaters {
		if t.ID == theaterID {
			return true
		}
	}
	return false
}

// theaterLabel renders "PVR ICON Juhu, Mumbai" for booking history entries.
func theaterLabel(cityID, theaterID string) string {
	city := cityByID(cityID)
	if city == nil {
		return theaterID
	}
	for _, t := range city.Theaters {
		if t.ID == theaterID {
			return t.Name + ", " + city.Name
		}
	}
	return theaterID
}

var defaultShowtimes = []string{"10:30 AM", "1:45 PM", "4:00 PM", "7:00 PM", "9:30 PM"}

var seedMovies = []cinebook.Movie{
	{
		ID: "1", Title: "Pushpa 2: The Rule", Genre: "Action Drama",
		Duration: "3h 21m", Rating: "UA", Language: "Telugu",
		Image:       "/posters/pushpa-2-the-rule.jpg",
		Description: "Pushpa Raj returns to cement his rule over the red sandalwood syndicate while the law closes in.",
		Showtimes:   defaultShowtimes,
		Cities:      []string{"mumbai", "delhi", "hyderabad", "chennai"},
	},
	{
		ID: "2", Title: "Animal", Genre: "Action Thriller",
		Duration: "3h 21m", Rating: "A", Language: "Hindi",
		Image:       "/posters/animal.jpg",
		Description: "A son's obsessive love for his father spirals into a violent reckoning with the family's enemies.",
		Showtimes:   defaultShowtimes,
		Cities:      []string{"mumbai", "delhi", "bangalore"},
	},
	{
		ID: "3", Title: "Inception", Genre: "Sci-Fi",
		Duration: "2h 28m", Rating: "UA", Language: "English",
		Image:       "/posters/inception.jpg",
		Description: "A thief who steals secrets through dream-sharing is offered a chance to have his past crimes erased.",
		Showtimes:   []string{"11:00 AM", "2:15 PM", "5:30 PM", "8:45 PM"},
	},
	{
		ID: "4", Title: "Jawan", Genre: "Action Thriller",
		Duration: "2h 49m", Rating: "UA", Language: "Hindi",
		Image:       "/posters/jawan.jpg",
		Description: "A vigilante with a troubled past takes on a ruthless arms dealer with a crew of wronged women.",
		Showtimes:   defaultShowtimes,
		Cities:      []string{"mumbai", "delhi", "bangalore", "hyderabad", "chennai"},
	},
	{
		ID: "5", Title: "Oppenheimer", Genre: "Biographical Drama",
		Duration: "3h 0m", Rating: "A", Language: "English",
		Image:       "/posters/oppenheimer.jpg",
		Description: "The story of J. Robert Oppenheimer and the making of the atomic bomb.",
		Showtimes:   []string{"12:00 PM", "3:30 PM", "7:15 PM"},
	},
	{
		ID: "6", Title: "Kalki 2898 AD", Genre: "Sci-Fi Action",
		Duration: "3h 1m", Rating: "UA", Language: "Telugu",
		Image:       "/posters/kalki-2898-ad.jpg",
		Description: "In a dystopian future, a bounty hunter is drawn into a prophecy spanning millennia.",
		Showtimes:   defaultShowtimes,
		Cities:      []string{"hyderabad", "chennai", "bangalore"},
	},
	{
		ID: "7", Title: "3 Idiots", Genre: "Comedy Drama",
		Duration: "2h 50m", Rating: "U", Language: "Hindi",
		Image:       "/posters/3-idiots.jpg",
		Description: "Two friends search for their long-lost companion who inspired them to think differently.",
		Showtimes:   []string{"10:00 AM", "1:15 PM", "6:30 PM"},
	},
	{
		ID: "8", Title: "Interstellar", Genre: "Sci-Fi",
		Duration: "2h 49m", Rating: "UA", Language: "English",
		Image:       "/posters/interstellar.jpg",
		Description: "Explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		Showtimes:   []string{"11:30 AM", "3:00 PM", "6:45 PM", "10:00 PM"},
	},
}

// SeedMovies loads the movie reference data if the movies table is empty.
// Idempotent: an already-seeded database is left alone.
func SeedMovies(ctx context.Context, logger *slog.Logger, store *SQLiteStore) error {
	existing, err := store.ListMovies(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, m := range seedMovies {
		if err := store.putMovie(ctx, m); err != nil {
			return err
		}
	}

	logger.Info("movie reference data seeded", "count", len(seedMovies))
	return nil
}
