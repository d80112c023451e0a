package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/cinepass/cinebook/internal/cinebook"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "CineBook API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the CineBook movie ticket booking app.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/movies
	listMovies, _ := r.NewOperationContext(http.MethodGet, "/api/movies")
	listMovies.SetSummary("List movies")
	listMovies.SetDescription("Returns the full movie catalog with showtimes.")
	listMovies.AddRespStructure([]cinebook.Movie{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listMovies)

	// GET /api/movies/{id}
	getMovie, _ := r.NewOperationContext(http.MethodGet, "/api/movies/{id}")
	getMovie.SetSummary("Get movie")
	getMovie.AddRespStructure(cinebook.Movie{}, openapi.WithHTTPStatus(http.StatusOK))
	getMovie.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getMovie)

	// GET /api/cities
	listCities, _ := r.NewOperationContext(http.MethodGet, "/api/cities")
	listCities.SetSummary("List cities and theaters")
	listCities.AddRespStructure([]cinebook.City{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listCities)

	// GET /api/movies/{movieID}/seats
	getSeats, _ := r.NewOperationContext(http.MethodGet, "/api/movies/{movieID}/seats")
	getSeats.SetSummary("Seat availability")
	getSeats.SetDescription("Returns the auditorium seat map with tier prices. Availability is randomized per request; no holds are taken.")
	getSeats.AddRespStructure([]cinebook.Seat{}, openapi.WithHTTPStatus(http.StatusOK))
	getSeats.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSeats)

	// GET /api/movies/{movieID}/parking
	getParking, _ := r.NewOperationContext(http.MethodGet, "/api/movies/{movieID}/parking")
	getParking.SetSummary("Parking availability")
	getParking.AddRespStructure([]cinebook.ParkingSlot{}, openapi.WithHTTPStatus(http.StatusOK))
	getParking.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getParking)

	// POST /api/auth/register
	register, _ := r.NewOperationContext(http.MethodPost, "/api/auth/register")
	register.SetSummary("Register")
	register.SetDescription("Creates an account and starts a session. Fails when the email is already registered.")
	register.AddReqStructure(RegisterRequest{})
	register.AddRespStructure(UserSummary{}, openapi.WithHTTPStatus(http.StatusCreated))
	register.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	register.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(register)

	// POST /api/auth/login
	login, _ := r.NewOperationContext(http.MethodPost, "/api/auth/login")
	login.SetSummary("Log in")
	login.SetDescription("Starts a session. Unknown email and wrong password yield the same generic error.")
	login.AddReqStructure(LoginRequest{})
	login.AddRespStructure(UserSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	login.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(login)

	// POST /api/auth/logout
	logout, _ := r.NewOperationContext(http.MethodPost, "/api/auth/logout")
	logout.SetSummary("Log out")
	logout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(logout)

	// GET /api/auth/me
	me, _ := r.NewOperationContext(http.MethodGet, "/api/auth/me")
	me.SetSummary("Current user")
	me.AddRespStructure(UserSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	me.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(me)

	// GET /api/profile
	getProfile, _ := r.NewOperationContext(http.MethodGet, "/api/profile")
	getProfile.SetSummary("Get profile")
	getProfile.SetDescription("Returns the profile with booking history, newest first. Requires session cookie.")
	getProfile.AddRespStructure(cinebook.UserProfile{}, openapi.WithHTTPStatus(http.StatusOK))
	getProfile.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getProfile)

	// PUT /api/profile
	putProfile, _ := r.NewOperationContext(http.MethodPut, "/api/profile")
	putProfile.SetSummary("Update profile")
	putProfile.SetDescription("Merges the provided fields. Name must be non-empty; phone must look like a phone number.")
	putProfile.AddReqStructure(ProfileUpdate{})
	putProfile.AddRespStructure(cinebook.UserProfile{}, openapi.WithHTTPStatus(http.StatusOK))
	putProfile.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putProfile.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(putProfile)

	// POST /api/booking
	startBooking, _ := r.NewOperationContext(http.MethodPost, "/api/booking")
	startBooking.SetSummary("Start booking flow")
	startBooking.SetDescription("Creates a booking selection session and returns its bearer token.")
	startBooking.AddRespStructure(StartBookingResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	_ = r.AddOperation(startBooking)

	// GET /api/booking
	getBooking, _ := r.NewOperationContext(http.MethodGet, "/api/booking")
	getBooking.SetSummary("Booking state")
	getBooking.SetDescription("Returns the current selection and running total. Requires Bearer token.")
	getBooking.AddRespStructure(BookingStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getBooking.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getBooking)

	// DELETE /api/booking
	abandon, _ := r.NewOperationContext(http.MethodDelete, "/api/booking")
	abandon.SetSummary("Abandon booking")
	abandon.SetDescription("Ends the booking session and discards the selection.")
	abandon.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	abandon.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(abandon)

	// PUT /api/booking/city
	putCity, _ := r.NewOperationContext(http.MethodPut, "/api/booking/city")
	putCity.SetSummary("Select city")
	putCity.SetDescription("Scopes the flow to a city; any chosen theater is cleared.")
	putCity.AddReqStructure(SetCityRequest{})
	putCity.AddRespStructure(BookingStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putCity.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(putCity)

	// PUT /api/booking/theater
	putTheater, _ := r.NewOperationContext(http.MethodPut, "/api/booking/theater")
	putTheater.SetSummary("Select theater")
	putTheater.SetDescription("Picks a theater within the selected city.")
	putTheater.AddReqStructure(SetTheaterRequest{})
	putTheater.AddRespStructure(BookingStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putTheater.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	putTheater.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(putTheater)

	// PUT /api/booking/movie
	putMovie, _ := r.NewOperationContext(http.MethodPut, "/api/booking/movie")
	putMovie.SetSummary("Select movie")
	putMovie.AddReqStructure(SetMovieRequest{})
	putMovie.AddRespStructure(BookingStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putMovie.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(putMovie)

	// PUT /api/booking/showtime
	putShowtime, _ := r.NewOperationContext(http.MethodPut, "/api/booking/showtime")
	putShowtime.SetSummary("Select showtime")
	putShowtime.SetDescription("Records the showtime and opens seat selection. Must be one of the selected movie's showtimes.")
	putShowtime.AddReqStructure(SetShowtimeRequest{})
	putShowtime.AddRespStructure(BookingStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putShowtime.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putShowtime.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(putShowtime)

	// PUT /api/booking/seats
	putSeats, _ := r.NewOperationContext(http.MethodPut, "/api/booking/seats")
	putSeats.SetSummary("Select seats")
	putSeats.SetDescription("Replaces the seat selection. Requires a showtime and at least one unbooked seat.")
	putSeats.AddReqStructure(SetSeatsRequest{})
	putSeats.AddRespStructure(BookingStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putSeats.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(putSeats)

	// PUT /api/booking/parking
	putParking, _ := r.NewOperationContext(http.MethodPut, "/api/booking/parking")
	putParking.SetSummary("Select parking")
	putParking.SetDescription("Sets or clears the optional parking slot and advances to payment.")
	putParking.AddReqStructure(SetParkingRequest{})
	putParking.AddRespStructure(BookingStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putParking.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(putParking)

	// POST /api/booking/checkout
	checkout, _ := r.NewOperationContext(http.MethodPost, "/api/booking/checkout")
	checkout.SetSummary("Start checkout")
	checkout.SetDescription("Converts the total to paise and opens a payment session. Requires Bearer token.")
	checkout.AddRespStructure(CheckoutResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	checkout.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	checkout.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(checkout)

	// POST /api/booking/confirm
	confirm, _ := r.NewOperationContext(http.MethodPost, "/api/booking/confirm")
	confirm.SetSummary("Confirm booking")
	confirm.SetDescription("Records the payment result, stores the booking in the user's history and ends the flow. Requires Bearer token and session cookie.")
	confirm.AddReqStructure(ConfirmRequest{})
	confirm.AddRespStructure(ConfirmResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	confirm.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	confirm.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(confirm)

	// POST /api/quiz
	postQuiz, _ := r.NewOperationContext(http.MethodPost, "/api/quiz")
	postQuiz.SetSummary("Generate movie trivia quiz")
	postQuiz.SetDescription("Returns five AI-generated questions, or a deterministic generic set when generation is unavailable.")
	postQuiz.AddReqStructure(QuizRequest{})
	postQuiz.AddRespStructure(QuizResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postQuiz.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postQuiz.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postQuiz)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
