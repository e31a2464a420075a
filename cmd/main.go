package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/ovenfresh/pizza-shop-api/docs" // Import generated docs
	"github.com/ovenfresh/pizza-shop-api/internal/config"
	"github.com/ovenfresh/pizza-shop-api/internal/controllers"
	"github.com/ovenfresh/pizza-shop-api/internal/database"
	"github.com/ovenfresh/pizza-shop-api/internal/middleware"
	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"github.com/ovenfresh/pizza-shop-api/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db              *gorm.DB
	pizzaController controllers.PizzaController
	areaController  controllers.AreaController
	orderController controllers.OrderController
	userController  controllers.UserController
	statsController controllers.StatsController
	configuration   *config.Config
)

// @title Pizza Shop API
// @version 1.0
// @description Catalog, order, delivery-area and user API for the pizza storefront and admin panel
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	pizzaService := services.NewPizzaService(db)
	areaService := services.NewAreaService(db)
	orderService := services.NewOrderService(db, areaService)
	userService := services.NewUserService(db)
	statsService := services.NewStatsService(db)

	pizzaController = controllers.NewPizzaController(pizzaService)
	areaController = controllers.NewAreaController(areaService)
	orderController = controllers.NewOrderController(orderService)
	userController = controllers.NewUserController(userService)
	statsController = controllers.NewStatsController(statsService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema and
// seeds the storefront catalog on first boot
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(&models.Pizza{}, &models.Area{}, &models.User{}, &models.Order{})
	checkPanicErr(err)

	// Seed only if the catalog is empty
	var count int64
	db.Model(&models.Pizza{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the database with the storefront catalog and delivery areas
func seedDatabase() {
	log.Info("Seeding database with initial data")
	pizzas := []models.Pizza{
		{Name: "Margherita", Description: "Classic tomato, mozzarella and basil", Price: 10.99, Category: "Classic", IsVeg: true, IsAvailable: models.Ptr(true), Rating: 4.5, Ingredients: []string{"Tomato Sauce", "Mozzarella", "Basil"}, Featured: true},
		{Name: "Pepperoni", Description: "Loaded with pepperoni and extra cheese", Price: 12.99, Category: "Classic", IsSpicy: true, IsAvailable: models.Ptr(true), Rating: 4.7, Ingredients: []string{"Tomato Sauce", "Mozzarella", "Pepperoni"}, Featured: true},
		{Name: "Vegetarian", Description: "Garden vegetables on a tomato base", Price: 11.99, Category: "Veggie", IsVeg: true, IsAvailable: models.Ptr(true), Rating: 4.2, Ingredients: []string{"Tomato Sauce", "Mozzarella", "Bell Peppers", "Olives"}},
		{Name: "Diavola", Description: "Spicy salami with jalapeños", Price: 13.49, Category: "Spicy", IsSpicy: true, IsAvailable: models.Ptr(true), Rating: 4.4, Ingredients: []string{"Tomato Sauce", "Mozzarella", "Spicy Salami", "Jalapeños"}},
	}
	for _, pizza := range pizzas {
		db.Create(&pizza)
	}

	areas := []models.Area{
		{Name: "Downtown", DeliveryFee: 2.99, DeliveryTime: "20-30 min", IsActive: models.Ptr(true), PostalCodes: []string{"10001", "10002"}},
		{Name: "Midtown", DeliveryFee: 3.99, DeliveryTime: "30-40 min", IsActive: models.Ptr(true), PostalCodes: []string{"10018", "10019", "10020"}},
		{Name: "Uptown", DeliveryFee: 4.99, DeliveryTime: "40-50 min", IsActive: models.Ptr(false), PostalCodes: []string{"10025", "10026"}},
	}
	for _, area := range areas {
		db.Create(&area)
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		pizzas := api.Group("/pizzas")
		{
			pizzas.GET("", pizzaController.GetAllPizzas)
			pizzas.GET("/:id", pizzaController.GetPizzaByID)
			pizzas.POST("", pizzaController.CreatePizza)
			pizzas.PUT("/:id", pizzaController.UpdatePizza)
			pizzas.DELETE("/:id", pizzaController.DeletePizza)
		}

		areas := api.Group("/areas")
		{
			areas.GET("", areaController.GetAllAreas)
			areas.POST("", areaController.CreateArea)
			areas.PUT("/:id", areaController.UpdateArea)
			areas.DELETE("/:id", areaController.DeleteArea)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderController.GetAllOrders)
			orders.GET("/:id", orderController.GetOrderByID)
			orders.POST("", orderController.CreateOrder)
			orders.PUT("/:id", orderController.UpdateOrder)
		}

		users := api.Group("/users")
		{
			users.GET("", userController.GetAllUsers)
			users.POST("", userController.CreateUser)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
			users.POST("/login", userController.Login)
		}

		api.GET("/stats/overview", statsController.Overview)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-shop-api",
	})
}
