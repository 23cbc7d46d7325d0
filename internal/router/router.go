package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	mem "pet-adoption-api/internal/adapters/storage/memory"
	pg "pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/media"
	"pet-adoption-api/internal/platform/logger"
)

type Options struct {
	// Media es obligatorio: valida existencia de imágenes y sirve /images.
	Media *media.Store

	// Opcional: si viene DB usa Postgres, si no, in-memory (modo dev).
	DB *sql.DB

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	// El cliente original corre en otro origen; CORS abierto como allá.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var repo adoptions.Repository
	if opts.DB != nil {
		repo = pg.NewAdoptionsRepo(opts.DB)
	} else {
		repo = mem.NewAdoptionsRepo()
	}

	svc := adoptions.NewService(repo, opts.Media, opts.Log)
	adoptions.RegisterRoutes(r, svc, opts.Media)

	// Las imágenes se sirven estáticas bajo /images, como en el server original.
	r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(opts.Media.Dir()))))

	return r
}
