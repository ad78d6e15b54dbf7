package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"skyledger-backend/internal/security"
	"skyledger-backend/internal/service"
	"skyledger-backend/internal/storage"
)

// Services bundles everything the router needs wired in.
type Services struct {
	Auth        service.AuthService
	Aircraft    service.AircraftService
	Share       service.ShareService
	Maintenance service.MaintenanceService
	Expense     service.ExpenseService
	Rental      service.RentalService
	Benchmark   service.BenchmarkService
	Report      service.ReportService
}

// NewRouter builds the full /api/v1 route tree. maxUploadBytes caps receipt
// upload bodies; zero disables the cap.
func NewRouter(svcs Services, tm security.TokenManager, store storage.Interface, maxUploadBytes int64) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogging)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Public auth endpoints.
	authHandler := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	// Pseudo-presigned receipt storage endpoints. The key in the URL is the
	// credential, matching how a real bucket's presigned URLs behave.
	receiptHandler := NewReceiptHandler(store, maxUploadBytes)
	api.HandleFunc("/receipts/upload", receiptHandler.Upload).Methods("PUT")
	api.HandleFunc("/receipts/download", receiptHandler.Download).Methods("GET")

	// Everything else requires a valid access token.
	authed := api.NewRoute().Subrouter()
	authed.Use(NewAuthMiddleware(tm).RequireAuth)

	authed.HandleFunc("/me", authHandler.Profile).Methods("GET")

	aircraftHandler := NewAircraftHandler(svcs.Aircraft)
	authed.HandleFunc("/aircraft", aircraftHandler.List).Methods("GET")
	authed.HandleFunc("/aircraft", aircraftHandler.Create).Methods("POST")
	authed.HandleFunc("/aircraft/{id:[0-9]+}", aircraftHandler.Get).Methods("GET")
	authed.HandleFunc("/aircraft/{id:[0-9]+}", aircraftHandler.Update).Methods("PUT")
	authed.HandleFunc("/aircraft/{id:[0-9]+}", aircraftHandler.Delete).Methods("DELETE")

	shareHandler := NewShareHandler(svcs.Share)
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/shares", shareHandler.List).Methods("GET")
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/shares/{id:[0-9]+}", shareHandler.Revoke).Methods("DELETE")
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/invitations", shareHandler.Invite).Methods("POST")
	authed.HandleFunc("/invitations/accept", shareHandler.Accept).Methods("POST")

	maintHandler := NewMaintenanceHandler(svcs.Maintenance)
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/maintenance", maintHandler.List).Methods("GET")
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/maintenance", maintHandler.Create).Methods("POST")
	authed.HandleFunc("/maintenance/{id:[0-9]+}", maintHandler.Get).Methods("GET")
	authed.HandleFunc("/maintenance/{id:[0-9]+}", maintHandler.Update).Methods("PUT")
	authed.HandleFunc("/maintenance/{id:[0-9]+}", maintHandler.Delete).Methods("DELETE")
	authed.HandleFunc("/maintenance/{id:[0-9]+}/receipt", maintHandler.AttachReceipt).Methods("POST")
	authed.HandleFunc("/maintenance/{id:[0-9]+}/receipt", maintHandler.Receipt).Methods("GET")

	expenseHandler := NewExpenseHandler(svcs.Expense)
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/expenses", expenseHandler.List).Methods("GET")
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/expenses", expenseHandler.Create).Methods("POST")
	authed.HandleFunc("/expenses/{id:[0-9]+}", expenseHandler.Get).Methods("GET")
	authed.HandleFunc("/expenses/{id:[0-9]+}", expenseHandler.Update).Methods("PUT")
	authed.HandleFunc("/expenses/{id:[0-9]+}", expenseHandler.Delete).Methods("DELETE")

	rentalHandler := NewRentalHandler(svcs.Rental)
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/rates", rentalHandler.ListRates).Methods("GET")
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/rates", rentalHandler.SetRate).Methods("POST")
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/rates/current", rentalHandler.CurrentRate).Methods("GET")
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/rentals", rentalHandler.ListLogs).Methods("GET")
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/rentals", rentalHandler.CreateLog).Methods("POST")
	authed.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.GetLog).Methods("GET")
	authed.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.UpdateLog).Methods("PUT")
	authed.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.DeleteLog).Methods("DELETE")

	reportHandler := NewReportHandler(svcs.Report)
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/reports/summary", reportHandler.CostSummary).Methods("GET")
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/reports/rental", reportHandler.RentalSummary).Methods("GET")
	authed.HandleFunc("/aircraft/{aircraft_id:[0-9]+}/reports/monthly", reportHandler.MonthlySeries).Methods("GET")

	benchmarkHandler := NewBenchmarkHandler(svcs.Benchmark)
	authed.HandleFunc("/benchmarks", benchmarkHandler.List).Methods("GET")
	authed.HandleFunc("/benchmarks/{type_tag}/current", benchmarkHandler.Current).Methods("GET")

	return router
}
