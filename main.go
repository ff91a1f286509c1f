package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	appointmentrepo "github.com/elitephnrepair2-cpu/crm-app/appointment/repository"
	appointmentsvc "github.com/elitephnrepair2-cpu/crm-app/appointment/service"
	customerrepo "github.com/elitephnrepair2-cpu/crm-app/customer/repository"
	customersvc "github.com/elitephnrepair2-cpu/crm-app/customer/service"
	api "github.com/elitephnrepair2-cpu/crm-app/handler"
	kiosksvc "github.com/elitephnrepair2-cpu/crm-app/kiosk/service"
	"github.com/elitephnrepair2-cpu/crm-app/marketing"
	"github.com/elitephnrepair2-cpu/crm-app/middleware"
	"github.com/elitephnrepair2-cpu/crm-app/prefs"
	quoterepo "github.com/elitephnrepair2-cpu/crm-app/quote/repository"
	quotesvc "github.com/elitephnrepair2-cpu/crm-app/quote/service"
	"github.com/elitephnrepair2-cpu/crm-app/realtime"
	ticketrepo "github.com/elitephnrepair2-cpu/crm-app/ticket/repository"
	ticketsvc "github.com/elitephnrepair2-cpu/crm-app/ticket/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}

	db := setupDatabase()

	store, err := prefs.Open(envOr("PREFS_PATH", "prefs.db"))
	if err != nil {
		log.Fatal("failed to open preference store:", err)
	}

	hub := realtime.NewHub()
	klaviyo := marketing.NewKlaviyoClient()

	customerRepo := customerrepo.NewGormCustomerRepo(db)
	customerService := customersvc.NewCustomerService(customerRepo)
	ticketRepo := ticketrepo.NewGormTicketRepo(db)
	ticketService := ticketsvc.NewTicketService(ticketRepo, customerRepo)
	quoteRepo := quoterepo.NewGormQuoteRepo(db)
	quoteService := quotesvc.NewQuoteService(quoteRepo)
	appointmentRepo := appointmentrepo.NewGormAppointmentRepo(db)
	appointmentService := appointmentsvc.NewAppointmentService(appointmentRepo)
	kioskService := kiosksvc.NewKioskService(customerRepo, ticketRepo, klaviyo, store)

	customerHandler := api.NewCustomerHandler(customerService, store, hub)
	ticketHandler := api.NewTicketHandler(ticketService, store, hub, klaviyo)
	quoteHandler := api.NewQuoteHandler(quoteService, store, hub)
	appointmentHandler := api.NewAppointmentHandler(appointmentService, store, hub)
	kioskHandler := api.NewKioskHandler(kioskService, store, hub)
	settingsHandler := api.NewSettingsHandler(store, klaviyo)
	wsHandler := api.NewWSHandler(hub)

	r := gin.Default()
	r.Use(gin.Recovery(), gin.Logger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/ws", wsHandler.Subscribe())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/customers", customerHandler.List())
		v1.GET("/customers/dashboard", customerHandler.Dashboard())
		v1.GET("/customers/:id", customerHandler.Get())
		v1.POST("/customers", customerHandler.Create())
		v1.PUT("/customers/:id", customerHandler.Update())
		v1.DELETE("/customers/:id", customerHandler.Delete())

		v1.GET("/tickets", ticketHandler.List())
		v1.GET("/tickets/:id", ticketHandler.Get())
		v1.POST("/tickets", ticketHandler.Create())
		v1.PATCH("/tickets/:id", ticketHandler.Update())
		v1.POST("/tickets/:id/paid", ticketHandler.SetPaid())
		v1.POST("/tickets/:id/repair-completed", ticketHandler.RepairCompleted())
		v1.DELETE("/tickets/:id", ticketHandler.Delete())

		v1.GET("/quotes", quoteHandler.List())
		v1.POST("/quotes", quoteHandler.Create())
		v1.PUT("/quotes/:id", quoteHandler.Update())
		v1.DELETE("/quotes/:id", quoteHandler.Delete())

		v1.GET("/appointments", appointmentHandler.List())
		v1.GET("/appointments/:id", appointmentHandler.Get())
		v1.PUT("/appointments/:id", appointmentHandler.Update())
		v1.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus())
		v1.DELETE("/appointments/:id", appointmentHandler.Delete())

		v1.POST("/kiosk/check-in", kioskHandler.CheckIn())
		v1.POST("/kiosk/exit", middleware.RequireKioskPIN(store), kioskHandler.Exit())

		v1.GET("/settings", settingsHandler.GetSettings())
		v1.PUT("/settings", settingsHandler.SaveSettings())
		v1.POST("/settings/test-marketing", settingsHandler.TestMarketing())
		v1.GET("/location", settingsHandler.GetLocation())
		v1.PUT("/location", settingsHandler.SetLocation())
	}

	r.Run() // listen and serve on 0.0.0.0:8080
}
