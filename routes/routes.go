package routes

import (
	"github.com/saini-nikhil/MealMaster/controllers"
	"github.com/saini-nikhil/MealMaster/middlewares"
	"github.com/saini-nikhil/MealMaster/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	plans := services.NewMealPlanService(hub)
	groceries := services.NewGroceryService(hub)
	assistant := services.NewAssistantService()
	community := services.NewCommunityService(hub)

	mealPlanCtl := controllers.NewMealPlanController(plans)
	groceryCtl := controllers.NewGroceryController(groceries, assistant)
	assistantCtl := controllers.NewAssistantController(assistant)
	communityCtl := controllers.NewCommunityController(community)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Shared read-only catalog
	r.GET("/recipes", controllers.ListRecipes)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	favorites := r.Group("/recipes/favorites")
	favorites.Use(middlewares.AuthMiddleware())
	{
		favorites.GET("", controllers.ListFavorites)
		favorites.POST("", controllers.AddFavorite)
		favorites.DELETE("/:id", controllers.RemoveFavorite)
	}

	mealplan := r.Group("/mealplan")
	mealplan.Use(middlewares.AuthMiddleware())
	{
		mealplan.GET("", mealPlanCtl.ListWeek)
		mealplan.GET("/cell", mealPlanCtl.ListCell)
		mealplan.POST("", mealPlanCtl.Schedule)
		mealplan.DELETE("/:id", mealPlanCtl.Unschedule)
		mealplan.POST("/drag", mealPlanCtl.BeginDrag)
		mealplan.POST("/drop", mealPlanCtl.DropOnCell)
	}

	grocery := r.Group("/grocery")
	grocery.Use(middlewares.AuthMiddleware())
	{
		grocery.GET("/derive", groceryCtl.Derive)
		grocery.POST("/generate", groceryCtl.Generate)
		grocery.GET("/items", groceryCtl.ListCustomItems)
		grocery.POST("/items", groceryCtl.AddCustomItem)
		grocery.PATCH("/items/:id/toggle", groceryCtl.ToggleChecked)
		grocery.DELETE("/items/:id", groceryCtl.DeleteCustomItem)
	}

	nutrition := r.Group("/nutrition")
	nutrition.Use(middlewares.AuthMiddleware())
	{
		nutrition.GET("/meals", controllers.ListLoggedMeals)
		nutrition.POST("/meals", controllers.LogMeal)
		nutrition.DELETE("/meals/:id", controllers.DeleteLoggedMeal)
		nutrition.GET("/totals", controllers.NutritionTotals)
		nutrition.GET("/lookup", controllers.LookupNutrition)
	}

	assistantGroup := r.Group("/assistant")
	assistantGroup.Use(middlewares.AuthMiddleware())
	{
		assistantGroup.POST("/chat", assistantCtl.Chat)
	}

	communityGroup := r.Group("/community")
	communityGroup.Use(middlewares.AuthMiddleware())
	{
		communityGroup.GET("/posts", communityCtl.ListPosts)
		communityGroup.POST("/posts", communityCtl.CreatePost)
		communityGroup.POST("/posts/:id/comments", communityCtl.AddComment)
		communityGroup.POST("/posts/:id/save", communityCtl.SavePost)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("", realtimeCtl.EventsWS)
	}

	return r
}
