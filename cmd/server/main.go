package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"siddeshlogistics/config"
	"siddeshlogistics/db"
	"siddeshlogistics/db/mongo"
	"siddeshlogistics/db/postgres"
	"siddeshlogistics/handlers"
	"siddeshlogistics/middleware"
	"siddeshlogistics/repository"
	"siddeshlogistics/routes"
	"siddeshlogistics/services"
	"siddeshlogistics/utils"
)

type stores struct {
	bills     repository.BillRepository
	shipments repository.ShipmentRepository
	payments  repository.PaymentRepository
	users     repository.UserRepository
	initials  repository.InitialRepository
	conn      db.DB
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		if err := db.RunMigrations(cfg.PostgresURL, cfg.MigrationsPath); err != nil {
			return nil, err
		}
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(ctx); err != nil {
			return nil, err
		}
		return &stores{
			bills:     repository.NewPostgresBillRepo(pg.Conn),
			shipments: repository.NewPostgresShipmentRepo(pg.Conn),
			payments:  repository.NewPostgresPaymentRepo(pg.Conn),
			users:     repository.NewPostgresUserRepo(pg.Conn),
			initials:  repository.NewPostgresInitialRepo(pg.Conn),
			conn:      pg,
		}, nil

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL, cfg.MongoDB)
		if err := mg.Connect(ctx); err != nil {
			return nil, err
		}
		if err := mg.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		database := mg.Database()
		return &stores{
			bills:     repository.NewMongoBillRepo(database),
			shipments: repository.NewMongoShipmentRepo(database),
			payments:  repository.NewMongoPaymentRepo(database),
			users:     repository.NewMongoUserRepo(database),
			initials:  repository.NewMongoInitialRepo(database),
			conn:      mg,
		}, nil

	case db.Memory:
		log.Println("[WARN] DB_TYPE=memory, data is lost on restart")
		mem := repository.NewMemoryStore()
		return &stores{bills: mem, shipments: mem, payments: mem, users: mem, initials: mem}, nil
	}
	return nil, fmt.Errorf("DB_TYPE %q not supported", cfg.DBType)
}

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := openStores(connectCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("could not open %s store: %v", cfg.DBType, err)
	}
	if st.conn != nil {
		defer st.conn.Disconnect(context.Background())
	}

	bills := services.NewBillService(st.bills, st.shipments, st.payments, cfg.BillPrefix)
	invoices := services.NewInvoiceService(bills, st.initials, utils.NewChromePDFRenderer(), cfg.PDFPrefix)

	if cfg.R2.Enabled() {
		archive, err := utils.NewR2Archive(context.Background(), cfg.R2)
		if err != nil {
			log.Fatalf("could not configure R2: %v", err)
		}
		bills.Archive = archive
		invoices.Uploader = archive
	}

	if cfg.JWTSecret == "" {
		log.Printf("[WARN] JWT_SECRET not set, every request belongs to owner %q", cfg.DefaultOwnerID)
	}

	handler := routes.SetupRoutes(http.NewServeMux(), routes.Handlers{
		User: &handlers.UserHandler{
			Users:     services.NewUserService(st.users),
			JWTSecret: cfg.JWTSecret,
			TokenTTL:  cfg.JWTTTL,
		},
		Bill:    &handlers.BillHandler{Bills: bills},
		Initial: &handlers.InitialHandler{Repo: st.initials},
		PDF:     &handlers.PDFHandler{Invoices: invoices, SavePath: cfg.PDFSavePath},
	}, middleware.WithOwner(cfg.JWTSecret, cfg.DefaultOwnerID))

	log.Printf("[INFO] server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal(err)
	}
}
