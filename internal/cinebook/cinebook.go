// Package cinebook defines the core domain types for the booking service.
// It has zero external dependencies — everything here is pure Go.
package cinebook

// Movie is immutable reference data. It is seeded into the store on first
// boot and never mutated by any flow.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Duration    string   `json:"duration"`
	Rating      string   `json:"rating"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Language    string   `json:"language,omitempty"`
	Showtimes   []string `json:"showtimes"`
	Cities      []string `json:"cities,omitempty"`
}

type City struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Theaters []Theater `json:"theaters"`
}

type Theater struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// SeatTier determines a seat's price via the fixed lookup in SeatPrice.
type SeatTier string

const (
	SeatStandard SeatTier = "standard"
	SeatPremium  SeatTier = "premium"
	SeatVIP      SeatTier = "vip"
)

// SeatPrice is the tier price table in whole currency units.
var SeatPrice = map[SeatTier]int{
	SeatStandard: 996,
	SeatPremium:  1494,
	SeatVIP:      2075,
}

// Seat is generated fresh per inventory request and never persisted; two
// requests may disagree on availability for the same seat id.
type Seat struct {
	ID     string   `json:"id"`
	Row    string   `json:"row"`
	Number int      `json:"number"`
	Tier   SeatTier `json:"type"`
	Price  int      `json:"price"`
	Booked bool     `json:"isBooked"`
}

// ParkingTier determines a slot's price via the lookup in ParkingPrice.
type ParkingTier string

const (
	ParkingStandard ParkingTier = "standard"
	ParkingCovered  ParkingTier = "covered"
	ParkingVIP      ParkingTier = "vip"
)

var ParkingPrice = map[ParkingTier]int{
	ParkingStandard: 415,
	ParkingCovered:  830,
	ParkingVIP:      1245,
}

type ParkingSlot struct {
	ID     string      `json:"id"`
	Level  string      `json:"level"`
	Slot   string      `json:"slot"`
	Tier   ParkingTier `json:"type"`
	Price  int         `json:"price"`
	Booked bool        `json:"isBooked"`
}

// PaymentResult is what the external payment collaborator hands back on a
// completed checkout. Both fields are opaque to this service.
type PaymentResult struct {
	Method        string `json:"method"`
	TransactionID string `json:"transactionId"`
}

// QuizQuestion is one multiple-choice trivia question. A valid quiz is
// exactly five of these, each with exactly four options and a correct-answer
// index in [0,3].
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type BookingStatus string

const (
	BookingCompleted BookingStatus = "completed"
	BookingUpcoming  BookingStatus = "upcoming"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingRecord is one entry of a user's booking history.
type BookingRecord struct {
	ID          string        `json:"id"`
	MovieTitle  string        `json:"movieTitle"`
	MovieImage  string        `json:"movieImage"`
	Date        string        `json:"date"`
	Showtime    string        `json:"showtime"`
	Theater     string        `json:"theater"`
	Seats       []string      `json:"seats"`
	TotalAmount int           `json:"totalAmount"`
	Status      BookingStatus `json:"status"`
}

// UserProfile is the full profile view assembled for the profile page.
type UserProfile struct {
	ID               string          `json:"id"`
	Email            string          `json:"email"`
	Name             string          `json:"name"`
	Phone            string          `json:"phone,omitempty"`
	DateOfBirth      string          `json:"dateOfBirth,omitempty"`
	FavoriteGenres   []string        `json:"favoriteGenres"`
	PreferredCity    string          `json:"preferredCity,omitempty"`
	PreferredTheater string          `json:"preferredTheater,omitempty"`
	LoyaltyPoints    int             `json:"loyaltyPoints"`
	WatchedMovies    []string        `json:"watchedMovies"`
	Avatar           string          `json:"avatar,omitempty"`
	BookingHistory   []BookingRecord `json:"bookingHistory"`
}
