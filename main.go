package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/bookings"
	"voyago/catalog"
	"voyago/db"
	"voyago/mq"
	"voyago/routes"
	"voyago/scheduler"
	"voyago/store"
	"voyago/sweep"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware tags each request with an id and logs method, path,
// remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("[%s] %s %s from %s in %v", requestID, r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(bookingHandlers *bookings.Handlers, catalogHandlers *catalog.Handlers, sweepHandlers *sweep.Handlers) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddAuthRoutes(router)
	routes.AddBookingRoutes(router, bookingHandlers)
	routes.AddFavoritesRoutes(router, bookingHandlers)
	routes.AddCatalogRoutes(router, catalogHandlers)
	routes.AddSweepRoutes(router, sweepHandlers)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// wire stores and services
	users := store.NewMongoUserStore(db.UserCollection)
	cat := store.NewMongoCatalog(db.DestinationsCollection, db.HotelsCollection, db.PackagesCollection)

	svc := bookings.NewService(users, cat)
	bookingHandlers := bookings.NewHandlers(svc)
	catalogHandlers := catalog.NewHandlers(cat)

	sweeper := sweep.NewSweeper(users)
	sweepHandlers := sweep.NewHandlers(sweeper)

	// background work stops when this context is cancelled at shutdown
	jobCtx, cancelJobs := context.WithCancel(context.Background())
	defer cancelJobs()

	scheduler.New(sweeper.Run).Start(jobCtx)
	go mq.StartBookingEventWorker()

	router := setupRouter(bookingHandlers, catalogHandlers, sweepHandlers)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	cancelJobs()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	if err := db.Client.Disconnect(ctx); err != nil {
		log.Printf("Mongo disconnect error: %v", err)
	}

	log.Println("Server stopped cleanly")
}
