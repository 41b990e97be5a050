package http

import (
	"net/http"

	"hotel-booking-backend/internal/delivery/http/handler"
	"hotel-booking-backend/internal/delivery/http/middleware"
	"hotel-booking-backend/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	catalogHandler       *handler.CatalogHandler
	guestBookingHandler  *handler.GuestBookingHandler
	staffBookingHandler  *handler.StaffBookingHandler
	inventoryHandler     *handler.InventoryHandler
	ticketHandler        *handler.TicketHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	capabilityMiddleware *middleware.CapabilityMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	guestBookingHandler *handler.GuestBookingHandler,
	staffBookingHandler *handler.StaffBookingHandler,
	inventoryHandler *handler.InventoryHandler,
	ticketHandler *handler.TicketHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	capabilityMiddleware *middleware.CapabilityMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		catalogHandler:       catalogHandler,
		guestBookingHandler:  guestBookingHandler,
		staffBookingHandler:  staffBookingHandler,
		inventoryHandler:     inventoryHandler,
		ticketHandler:        ticketHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		capabilityMiddleware: capabilityMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public catalog browsing
	api.HandleFunc("/room-types", r.catalogHandler.ListRoomTypes).Methods(http.MethodGet)
	api.HandleFunc("/room-classes", r.catalogHandler.ListRoomClasses).Methods(http.MethodGet)
	api.HandleFunc("/room-classes/{id}", r.catalogHandler.GetRoomClass).Methods(http.MethodGet)
	api.HandleFunc("/services", r.catalogHandler.ListServices).Methods(http.MethodGet)
	api.HandleFunc("/quote", r.catalogHandler.Quote).Methods(http.MethodPost)

	// Booking funnel. Guests stay anonymous; the optional auth attaches
	// the customer account when a token is present.
	funnel := api.PathPrefix("/bookings").Subrouter()
	funnel.Use(r.authMiddleware.OptionalAuthenticate)
	funnel.HandleFunc("/draft", r.guestBookingHandler.SaveDraft).Methods(http.MethodPost)
	funnel.HandleFunc("/checkout", r.guestBookingHandler.Checkout).Methods(http.MethodPost)
	funnel.HandleFunc("/code/{code}", r.guestBookingHandler.LookupByCode).Methods(http.MethodGet)
	funnel.HandleFunc("/code/{code}", r.guestBookingHandler.Edit).Methods(http.MethodPut)
	funnel.HandleFunc("/code/{code}", r.guestBookingHandler.Cancel).Methods(http.MethodDelete)
	funnel.HandleFunc("/code/{code}/payment-proof", r.guestBookingHandler.UploadPaymentProof).Methods(http.MethodPost)

	// Customer booking history (account required)
	myBookings := api.PathPrefix("/bookings").Subrouter()
	myBookings.Use(r.authMiddleware.Authenticate)
	myBookings.HandleFunc("/my", r.guestBookingHandler.GetMyBookings).Methods(http.MethodGet)

	// Customer support tickets (account required)
	tickets := api.PathPrefix("/tickets").Subrouter()
	tickets.Use(r.authMiddleware.Authenticate)
	tickets.HandleFunc("", r.ticketHandler.Create).Methods(http.MethodPost)
	tickets.HandleFunc("/my", r.ticketHandler.GetMyTickets).Methods(http.MethodGet)
	tickets.HandleFunc("/{id}", r.ticketHandler.Get).Methods(http.MethodGet)
	tickets.HandleFunc("/{id}/responses", r.ticketHandler.Respond).Methods(http.MethodPost)

	// Staff booking dashboard, guarded per capability
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(r.capabilityMiddleware.RequireStaff)

	viewAll := r.capabilityMiddleware.Require(entity.ActionViewAllBookings)
	staff.Handle("/bookings", viewAll(http.HandlerFunc(r.staffBookingHandler.ListBookings))).Methods(http.MethodGet)
	staff.Handle("/bookings/{id}", viewAll(http.HandlerFunc(r.staffBookingHandler.GetBooking))).Methods(http.MethodGet)
	staff.Handle("/bookings/{id}/approve",
		r.capabilityMiddleware.Require(entity.ActionApproveReview)(http.HandlerFunc(r.staffBookingHandler.ApproveReview))).Methods(http.MethodPost)
	staff.Handle("/bookings/{id}/confirm-payment",
		r.capabilityMiddleware.Require(entity.ActionConfirmPayment)(http.HandlerFunc(r.staffBookingHandler.ConfirmPayment))).Methods(http.MethodPost)
	staff.Handle("/bookings/{id}/assign-room",
		r.capabilityMiddleware.Require(entity.ActionAssignRoom)(http.HandlerFunc(r.staffBookingHandler.AssignRoom))).Methods(http.MethodPost)
	staff.Handle("/bookings/{id}/check-in",
		r.capabilityMiddleware.Require(entity.ActionCheckIn)(http.HandlerFunc(r.staffBookingHandler.CheckIn))).Methods(http.MethodPost)
	staff.Handle("/bookings/{id}/check-out",
		r.capabilityMiddleware.Require(entity.ActionCheckOut)(http.HandlerFunc(r.staffBookingHandler.CheckOut))).Methods(http.MethodPost)
	staff.Handle("/bookings/{id}/cancel",
		r.capabilityMiddleware.Require(entity.ActionCancelAnyBooking)(http.HandlerFunc(r.staffBookingHandler.Cancel))).Methods(http.MethodPost)

	// Room status is reception housekeeping; the room list rides along
	manageRooms := r.capabilityMiddleware.Require(entity.ActionManageRooms)
	staff.Handle("/rooms", manageRooms(http.HandlerFunc(r.inventoryHandler.ListRooms))).Methods(http.MethodGet)
	staff.Handle("/rooms/{id}/status", manageRooms(http.HandlerFunc(r.inventoryHandler.SetRoomStatus))).Methods(http.MethodPatch)

	// CRM ticket queue
	manageTickets := r.capabilityMiddleware.Require(entity.ActionManageTickets)
	staff.Handle("/tickets", manageTickets(http.HandlerFunc(r.ticketHandler.ListAll))).Methods(http.MethodGet)
	staff.Handle("/tickets/{id}", manageTickets(http.HandlerFunc(r.ticketHandler.Get))).Methods(http.MethodGet)
	staff.Handle("/tickets/{id}/assign", manageTickets(http.HandlerFunc(r.ticketHandler.Assign))).Methods(http.MethodPost)
	staff.Handle("/tickets/{id}/responses", manageTickets(http.HandlerFunc(r.ticketHandler.Respond))).Methods(http.MethodPost)
	staff.Handle("/tickets/{id}/resolve", manageTickets(http.HandlerFunc(r.ticketHandler.Resolve))).Methods(http.MethodPost)

	// Audit trail and staff provisioning; only admins hold these
	staff.Handle("/audit-logs",
		r.capabilityMiddleware.Require(entity.ActionViewAuditLog)(http.HandlerFunc(r.auditLogHandler.ListRecent))).Methods(http.MethodGet)
	staff.Handle("/accounts",
		r.capabilityMiddleware.Require(entity.ActionManageStaffAccount)(http.HandlerFunc(r.authHandler.CreateStaff))).Methods(http.MethodPost)

	// Catalog administration (admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.capabilityMiddleware.RequireAdmin)
	admin.HandleFunc("/room-types", r.inventoryHandler.CreateRoomType).Methods(http.MethodPost)
	admin.HandleFunc("/room-types/{id}", r.inventoryHandler.UpdateRoomType).Methods(http.MethodPut)
	admin.HandleFunc("/room-types/{id}", r.inventoryHandler.DeleteRoomType).Methods(http.MethodDelete)
	admin.HandleFunc("/room-classes", r.inventoryHandler.CreateRoomClass).Methods(http.MethodPost)
	admin.HandleFunc("/room-classes/{id}", r.inventoryHandler.UpdateRoomClass).Methods(http.MethodPut)
	admin.HandleFunc("/room-classes/{id}", r.inventoryHandler.DeleteRoomClass).Methods(http.MethodDelete)
	admin.HandleFunc("/rooms", r.inventoryHandler.CreateRoom).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{id}", r.inventoryHandler.DeleteRoom).Methods(http.MethodDelete)
	admin.HandleFunc("/services", r.inventoryHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.inventoryHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.inventoryHandler.DeleteService).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
