// Package router assembles the Gin engine: middleware chain, API routes and
// the Swagger UI.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finadvisor/internal/docs" // registers the swagger spec
	"finadvisor/internal/handlers"
	"finadvisor/internal/middleware"
	"finadvisor/internal/services"
)

// Deps carries the services and token issuer the routes are built on.
type Deps struct {
	Users        services.UserServicer
	Budgets      services.BudgetServicer
	Transactions services.TransactionServicer
	Goals        services.GoalServicer
	Predictions  services.PredictionServicer
	Audit        services.AuditServicer
	Auth         *middleware.Auth
}

// New builds the HTTP handler for the API.
func New(d Deps) *gin.Engine {
	authHandler := handlers.NewAuthHandler(d.Users, d.Audit, d.Auth)
	budgetHandler := handlers.NewBudgetHandler(d.Budgets, d.Audit)
	transactionHandler := handlers.NewTransactionHandler(d.Transactions)
	goalHandler := handlers.NewGoalHandler(d.Goals, d.Audit)
	predictionHandler := handlers.NewPredictionHandler(d.Predictions)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	r.GET("/", handlers.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Accounts
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/profile", d.Auth.Middleware(), authHandler.GetProfile)

	// Budget
	r.POST("/add_budget", budgetHandler.AddBudget)
	r.GET("/get_budget", budgetHandler.GetBudget)

	// Transactions
	r.GET("/transactions", transactionHandler.GetTransactions)
	r.POST("/transactions", transactionHandler.CreateTransaction)

	// Goals
	r.GET("/goals", goalHandler.GetGoals)
	r.POST("/goals", goalHandler.CreateGoal)
	r.POST("/update_goal", goalHandler.UpdateGoal)
	r.POST("/delete_goal", goalHandler.DeleteGoal)
	r.POST("/add_goal_money", goalHandler.AddGoalMoney)
	r.GET("/goal_money_history", goalHandler.GetGoalHistory)

	r.GET("/predictions", predictionHandler.GetPredictions)

	return r
}
