package routes

import (
	"net/http"

	"siddeshlogistics/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-File-URL")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type Handlers struct {
	User    *handlers.UserHandler
	Bill    *handlers.BillHandler
	Initial *handlers.InitialHandler
	PDF     *handlers.PDFHandler
}

// SetupRoutes registers the API on mux and returns the root handler.
// auth resolves the bill owner for everything except signup and login.
func SetupRoutes(mux *http.ServeMux, h Handlers, auth func(http.Handler) http.Handler) http.Handler {
	open := func(fn http.HandlerFunc) http.Handler {
		return handlers.RecoverWrapper(fn)
	}
	owned := func(fn http.HandlerFunc) http.Handler {
		return handlers.RecoverWrapper(auth(fn))
	}

	// User routes
	mux.Handle("POST /signup", open(h.User.Signup))
	mux.Handle("POST /login", open(h.User.Login))

	// Bill routes
	mux.Handle("POST /bills/totals", owned(h.Bill.PreviewTotals))
	mux.Handle("POST /bills", owned(h.Bill.CreateBill))
	mux.Handle("GET /bills", owned(h.Bill.ListBills))
	mux.Handle("GET /bills/{id}", owned(h.Bill.GetBill))
	mux.Handle("DELETE /bills/{id}", owned(h.Bill.DeleteBill))
	mux.Handle("GET /bills/{id}/shipments", owned(h.Bill.GetShipments))
	mux.Handle("GET /bills/{id}/payments", owned(h.Bill.GetPayments))
	mux.Handle("POST /bills/{id}/payments", owned(h.Bill.ApplyPayment))
	mux.Handle("PUT /bills/{id}/status", owned(h.Bill.UpdateStatus))
	mux.Handle("GET /bills/{id}/pdf", owned(h.PDF.BillPDF))

	// Initial setup routes
	mux.Handle("GET /initial", owned(h.Initial.GetInitial))
	mux.Handle("POST /initial", owned(h.Initial.SaveInitial))

	return withCORS(mux)
}
