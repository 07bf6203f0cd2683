package router

import (
	"net/http"
	"time"

	_ "petcare-registry/docs"
	mem "petcare-registry/internal/adapters/storage/memory"
	"petcare-registry/internal/domain/bookings"
	"petcare-registry/internal/domain/catalog"
	"petcare-registry/internal/domain/chat"
	"petcare-registry/internal/domain/pets"
	"petcare-registry/internal/domain/session"
	"petcare-registry/internal/middleware"
	"petcare-registry/internal/platform/idgen"
	"petcare-registry/internal/platform/logger"
	"petcare-registry/internal/ports/events"
	"petcare-registry/internal/ports/kv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, es el backend de los namespaces por dispositivo. Si no, in-memory.
	KV kv.Store

	Logger    logger.Logger    // nil => nop
	Publisher events.Publisher // nil => sin notificaciones
	Catalog   *catalog.Catalog // nil => catálogo embebido
	RecordID  idgen.Func       // nil => uuid
	BookingID idgen.Func       // nil => nanoid

	SubmitDelay time.Duration
	ChatDelay   time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	store := opts.KV
	if store == nil {
		store = mem.NewKVStore()
	}
	pub := opts.Publisher
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.MustDefault()
	}
	recordID := opts.RecordID
	if recordID == nil {
		recordID = idgen.RecordID
	}
	bookingID := opts.BookingID
	if bookingID == nil {
		bookingID = idgen.BookingID
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.DeviceContext)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo
	sessionSvc := session.NewService(store, log.With(map[string]any{"module": "session"}))

	petsLog := log.With(map[string]any{"module": "pets"})
	petsSvc := pets.NewService(
		pets.NewRepository(store, petsLog, recordID),
		pets.WithIDFunc(recordID),
		pets.WithPublisher(pub),
		pets.WithLogger(petsLog),
		pets.WithSubmitDelay(opts.SubmitDelay),
	)

	bookingsLog := log.With(map[string]any{"module": "bookings"})
	bookingsSvc := bookings.NewService(
		bookings.NewRepository(store, bookingsLog),
		bookings.WithIDFunc(bookingID),
		bookings.WithPublisher(pub),
		bookings.WithLogger(bookingsLog),
		bookings.WithSubmitDelay(opts.SubmitDelay),
	)

	chatSvc := chat.NewService(opts.ChatDelay, chat.WithLogger(log.With(map[string]any{"module": "chat"})))

	// Rutas por módulo
	session.RegisterRoutes(r, sessionSvc)
	pets.RegisterRoutes(r, petsSvc, sessionSvc)
	bookings.RegisterRoutes(r, bookingsSvc, sessionSvc)
	catalog.RegisterRoutes(r, cat)
	chat.RegisterRoutes(r, chatSvc)

	return r
}
