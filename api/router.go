package api

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lingvoapp/lingvo-api/api/handler"
	"github.com/lingvoapp/lingvo-api/api/middleware"
	"github.com/lingvoapp/lingvo-api/auth"
	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/config"
	"github.com/lingvoapp/lingvo-api/ent"
	"github.com/lingvoapp/lingvo-api/telegram"
	"github.com/lingvoapp/lingvo-api/translate"
)

// Deps bundles everything the route tree needs. Construction happens in
// main; the router only wires.
type Deps struct {
	Cfg        *config.Config
	DB         *ent.Client
	Store      cache.Store
	Inv        *cache.Invalidator
	Tokens     *auth.Tokens
	OTP        *auth.OTP
	Telegram   *telegram.Client
	Translator *translate.Translator
	Hub        *handler.WSHub
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	corsCfg := cors.DefaultConfig()
	if len(d.Cfg.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = d.Cfg.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	authH := handler.NewAuthHandler(d.DB, d.Tokens, d.OTP, d.Telegram, d.Inv)
	eduH := handler.NewEducationHandler(d.DB, d.Store, d.Inv)
	quizH := handler.NewQuizHandler(d.DB, d.Store, d.Inv)
	topicH := handler.NewGrammarTopicHandler(d.DB, d.Store, d.Inv)
	progressH := handler.NewProgressHandler(d.DB, d.Inv)
	boardH := handler.NewLeaderboardHandler(d.DB, d.Store, d.Cfg.LeaderboardInterval)
	dashH := handler.NewDashboardHandler(d.DB, d.Store, d.Cfg.LeaderboardInterval)
	profileH := handler.NewProfileHandler(d.DB, d.Telegram, d.Inv, d.Cfg.StoragePath)
	subH := handler.NewSubscriptionHandler(d.DB, d.Store, d.Inv)
	usersH := handler.NewUsersHandler(d.DB, d.Store, d.Inv)
	transH := handler.NewTranslationHandler(d.DB, d.Translator)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded profile photos are served straight off disk.
	r.Static("/storage/user_photos", filepath.Join(d.Cfg.StoragePath, "user_photos"))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/send-code", authH.SendCode)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/refresh", authH.Refresh)
	}

	protected := r.Group("/", middleware.Auth(d.DB, d.Tokens))
	{
		protected.GET("/socket", d.Hub.Serve)

		protected.GET("/dashboard/home", dashH.Home)
		protected.GET("/leaderboard", boardH.Get)

		protected.GET("/users/me", profileH.Me)
		protected.PUT("/users/me", profileH.Update)
		protected.POST("/users/me/refresh-avatar", profileH.RefreshAvatar)
		protected.POST("/users/me/photo", profileH.UploadPhoto)

		education := protected.Group("/education")
		{
			education.GET("/modules", eduH.Catalog)
			education.GET("/modules/:id", eduH.GetModule)
			education.GET("/modules/:id/lessons", eduH.ModuleLessons)
			education.GET("/lessons/:id", eduH.GetLesson)
			education.GET("/lessons/:id/packs", eduH.LessonPacks)
			education.GET("/packs/:id", eduH.GetPack)
		}

		quiz := protected.Group("/quiz")
		{
			quiz.GET("", quizH.Aggregate)
			quiz.GET("/packs/:id/words", quizH.PackWords)
			quiz.GET("/packs/:id/grammars", quizH.PackGrammars)
		}

		protected.GET("/grammar-topics", topicH.List)
		protected.GET("/grammar-topics/:id", topicH.Get)

		protected.POST("/progress", progressH.Submit)
		protected.GET("/progress", progressH.List)

		protected.GET("/subscriptions/check", subH.Check)
	}

	admin := r.Group("/admin", middleware.Auth(d.DB, d.Tokens), middleware.AdminOnly())
	{
		admin.POST("/modules", eduH.CreateModule)
		admin.PUT("/modules/:id", eduH.UpdateModule)
		admin.DELETE("/modules/:id", eduH.DeleteModule)
		admin.POST("/lessons", eduH.CreateLesson)
		admin.PUT("/lessons/:id", eduH.UpdateLesson)
		admin.DELETE("/lessons/:id", eduH.DeleteLesson)
		admin.POST("/packs", eduH.CreatePack)
		admin.PUT("/packs/:id", eduH.UpdatePack)
		admin.DELETE("/packs/:id", eduH.DeletePack)

		admin.POST("/words", quizH.CreateWord)
		admin.PUT("/words/:id", quizH.UpdateWord)
		admin.DELETE("/words/:id", quizH.DeleteWord)
		admin.POST("/grammars", quizH.CreateGrammar)
		admin.PUT("/grammars/:id", quizH.UpdateGrammar)
		admin.DELETE("/grammars/:id", quizH.DeleteGrammar)

		admin.POST("/grammar-topics", topicH.Create)
		admin.PUT("/grammar-topics/:id", topicH.Update)
		admin.DELETE("/grammar-topics/:id", topicH.Delete)

		admin.GET("/users", usersH.List)
		admin.GET("/users/:id", usersH.Get)
		admin.PUT("/users/:id/admin", usersH.SetAdmin)

		admin.GET("/subscriptions", subH.List)
		admin.POST("/subscriptions", subH.Create)
		admin.PUT("/subscriptions/:id", subH.Update)
		admin.DELETE("/subscriptions/:id", subH.Deactivate)
		admin.GET("/subscriptions/stats", subH.Stats)

		admin.GET("/business-profile", subH.GetBusinessProfile)
		admin.PUT("/business-profile", subH.UpdateBusinessProfile)

		admin.GET("/translations", transH.List)
		admin.DELETE("/translations/:id", transH.Delete)
		admin.DELETE("/translations", transH.Clear)
	}

	r.POST("/translate", middleware.Auth(d.DB, d.Tokens), transH.Translate)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
