// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	aboutfeature "github.com/mzielinska/promyk/internal/app/features/about"
	authfeature "github.com/mzielinska/promyk/internal/app/features/auth"
	collectionfeature "github.com/mzielinska/promyk/internal/app/features/collection"
	contactfeature "github.com/mzielinska/promyk/internal/app/features/contact"
	healthfeature "github.com/mzielinska/promyk/internal/app/features/health"
	imagesfeature "github.com/mzielinska/promyk/internal/app/features/images"
	messagesfeature "github.com/mzielinska/promyk/internal/app/features/messages"
	notifyfeature "github.com/mzielinska/promyk/internal/app/features/notifysettings"
	"github.com/mzielinska/promyk/internal/app/features/sections"
	contentstore "github.com/mzielinska/promyk/internal/app/store/content"
	"github.com/mzielinska/promyk/internal/app/system/auth"
	"github.com/mzielinska/promyk/internal/app/system/mailer"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, schema setup,
// and the Startup hook have completed. The surface is three route
// groups plus health and file serving:
//   - /api/auth    PIN login issuing the admin session cookie
//   - /api/admin   content management, behind one RequireAdmin guard
//   - /api/public  unauthenticated reads and the contact form
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	// Secure cookies are enabled in production mode.
	guard := auth.NewGuard(appCfg.AdminPIN, coreCfg.Env == "prod", logger)

	fileStore, err := storage.NewLocal(storage.LocalConfig{
		BasePath: appCfg.StorageLocalPath,
		BaseURL:  appCfg.StorageLocalURL,
	})
	if err != nil {
		logger.Error("local storage init failed", zap.Error(err))
		return nil, err
	}

	mail := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		Username: appCfg.MailSMTPUser,
		Password: appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger)

	// Singleton section handlers; about additionally owns the
	// carousel, and notifysettings keeps its own envelopes.
	heroHandler := sections.NewHandler(contentstore.Hero(db), "heroData", logger)
	contactPageHandler := sections.NewHandler(contentstore.Contact(db), "contactData", logger)
	targetHandler := sections.NewHandler(contentstore.Target(db), "targetData", logger)
	footerHandler := sections.NewHandler(contentstore.Footer(db), "footerData", logger)
	aboutHandler := aboutfeature.NewHandler(db, logger)
	notifyHandler := notifyfeature.NewHandler(db, logger)

	// Archivable collection handlers.
	projectsHandler := collectionfeature.NewProjects(db, logger)
	eventsHandler := collectionfeature.NewEvents(db, logger)
	partnersHandler := collectionfeature.NewPartners(db, logger)
	wardsHandler := collectionfeature.NewWards(db, logger)

	messagesHandler := messagesfeature.NewHandler(db, logger)
	imagesHandler := imagesfeature.NewHandler(db, fileStore, logger)
	contactHandler := contactfeature.NewHandler(db, mail, appCfg.AdminEmail, logger)
	authHandler := authfeature.NewHandler(guard, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Uploaded images, served straight from local storage
	r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))

	// Authentication
	r.Mount("/api/auth", authfeature.Routes(authHandler))

	// Admin panel API: every route behind the single session guard.
	r.Route("/api/admin", func(ar chi.Router) {
		ar.Use(guard.RequireAdmin)

		ar.Mount("/hero", sections.Routes(heroHandler))
		ar.Mount("/about", aboutfeature.Routes(aboutHandler))
		ar.Mount("/carousel", aboutfeature.CarouselRoutes(aboutHandler))
		ar.Mount("/contact", sections.Routes(contactPageHandler))
		ar.Mount("/target", sections.Routes(targetHandler))
		ar.Mount("/footer", sections.Routes(footerHandler))
		ar.Mount("/notifications", notifyfeature.Routes(notifyHandler))

		ar.Mount("/projects", collectionfeature.Routes(projectsHandler))
		ar.Mount("/events", collectionfeature.Routes(eventsHandler))
		ar.Mount("/partners", collectionfeature.Routes(partnersHandler))
		ar.Mount("/wards", collectionfeature.Routes(wardsHandler))

		ar.Mount("/messages", messagesfeature.Routes(messagesHandler))
		ar.Mount("/images", imagesfeature.Routes(imagesHandler))
	})

	// Public site API: read-only section/collection data plus the
	// contact form.
	r.Route("/api/public", func(pr chi.Router) {
		pr.Get("/hero", heroHandler.ServeGet)
		pr.Get("/about", aboutHandler.Sections.ServeGet)
		pr.Get("/contact", contactPageHandler.ServeGet)
		pr.Post("/contact", contactHandler.HandleSubmit)
		pr.Get("/target", targetHandler.ServeGet)
		pr.Get("/footer", footerHandler.ServeGet)

		pr.Get("/projects", projectsHandler.ServeActiveList)
		pr.Get("/projects/all", projectsHandler.ServeList)
		pr.Get("/events", eventsHandler.ServeActiveList)
		pr.Get("/events/all", eventsHandler.ServeList)
		pr.Get("/partners", partnersHandler.ServeActiveList)
		pr.Get("/wards", wardsHandler.ServeActiveList)
	})

	return r, nil
}
