// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	billscanfeature "github.com/ecochef/ecochef/internal/app/features/billscan"
	dashboardfeature "github.com/ecochef/ecochef/internal/app/features/dashboard"
	errorsfeature "github.com/ecochef/ecochef/internal/app/features/errors"
	groceriesfeature "github.com/ecochef/ecochef/internal/app/features/groceries"
	healthfeature "github.com/ecochef/ecochef/internal/app/features/health"
	homefeature "github.com/ecochef/ecochef/internal/app/features/home"
	leaderboardfeature "github.com/ecochef/ecochef/internal/app/features/leaderboard"
	loginfeature "github.com/ecochef/ecochef/internal/app/features/login"
	logoutfeature "github.com/ecochef/ecochef/internal/app/features/logout"
	postsfeature "github.com/ecochef/ecochef/internal/app/features/posts"
	profilefeature "github.com/ecochef/ecochef/internal/app/features/profile"
	recipesfeature "github.com/ecochef/ecochef/internal/app/features/recipes"
	signupfeature "github.com/ecochef/ecochef/internal/app/features/signup"
	accountstore "github.com/ecochef/ecochef/internal/app/store/accounts"
	grocerystore "github.com/ecochef/ecochef/internal/app/store/groceries"
	poststore "github.com/ecochef/ecochef/internal/app/store/posts"
	"github.com/ecochef/ecochef/internal/app/store/queries/publishpost"
	signupflow "github.com/ecochef/ecochef/internal/app/store/queries/signup"
	userstore "github.com/ecochef/ecochef/internal/app/store/users"
	"github.com/ecochef/ecochef/internal/app/system/auth"
	"github.com/ecochef/ecochef/internal/app/system/groq"
	"github.com/ecochef/ecochef/internal/app/system/ocr"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the session manager, boots
// the template engine, builds the stores and flows, and mounts a feature
// router per application area.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Stores.
	accts := accountstore.New(deps.MongoDatabase)
	users := userstore.New(deps.MongoDatabase)
	groceries := grocerystore.New(deps.MongoDatabase)
	posts := poststore.New(deps.MongoDatabase)

	// Refresh session users from the accounts collection on each request so
	// renames take effect without re-logging-in. Sessions store the account
	// _id at login, so the refresh keys on that same collection.
	sessionMgr.SetUserFetcher(accountstore.NewFetcher(accts, logger))

	// External collaborators.
	llm := groq.New(appCfg.GroqAPIKey, appCfg.GroqBaseURL, appCfg.GroqModel)
	recognizer := &ocr.Tesseract{Binary: appCfg.OCRBinary}

	// Multi-step flows.
	publishFlow := &publishpost.Runner{
		Blobs:  deps.Blobs,
		Posts:  posts,
		Points: users,
		Log:    logger,
	}
	registerFlow := &signupflow.Runner{
		Accounts: accts,
		Users:    users,
		Log:      logger,
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli).
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages.
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication.
	loginHandler := loginfeature.NewHandler(accts, sessionMgr, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	signupHandler := signupfeature.NewHandler(registerFlow, sessionMgr, logger)
	r.Mount("/signup", signupfeature.Routes(signupHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Signed-in areas.
	dashboardHandler := dashboardfeature.NewHandler(users, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	groceriesHandler := groceriesfeature.NewHandler(groceries, logger)
	r.Mount("/groceries", groceriesfeature.Routes(groceriesHandler, sessionMgr))

	billscanHandler := billscanfeature.NewHandler(groceries, recognizer, llm, deps.Blobs, appCfg.OCRLang, logger)
	r.Mount("/scan", billscanfeature.Routes(billscanHandler, sessionMgr))
	r.Mount("/api", billscanfeature.APIRoutes(billscanHandler))

	recipesHandler := recipesfeature.NewHandler(groceries, llm, logger)
	r.Mount("/recipes", recipesfeature.Routes(recipesHandler, sessionMgr))

	postsHandler := postsfeature.NewHandler(posts, publishFlow, deps.Blobs, logger)
	r.Mount("/posts", postsfeature.Routes(postsHandler, sessionMgr))

	leaderboardHandler := leaderboardfeature.NewHandler(users, logger)
	r.Mount("/leaderboard", leaderboardfeature.Routes(leaderboardHandler, sessionMgr))

	profileHandler := profilefeature.NewHandler(users, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler, sessionMgr))

	// Friendly 404s for everything unmatched.
	r.NotFound(errorsfeature.RenderNotFound)

	return r, nil
}
