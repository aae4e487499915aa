package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aliamzad3333/ecommerce-web-sub000/api/controllers"
	"github.com/aliamzad3333/ecommerce-web-sub000/api/middleware"
	"github.com/aliamzad3333/ecommerce-web-sub000/internal/auth"
	"github.com/aliamzad3333/ecommerce-web-sub000/internal/checkout"
	"github.com/aliamzad3333/ecommerce-web-sub000/internal/messages"
	"github.com/aliamzad3333/ecommerce-web-sub000/internal/orders"
	"github.com/aliamzad3333/ecommerce-web-sub000/internal/products"
	"github.com/aliamzad3333/ecommerce-web-sub000/internal/slider"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/auth/session"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/config"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/db"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/logger"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/metrics"
	"github.com/aliamzad3333/ecommerce-web-sub000/pkg/redis"
)

// Services bundles the domain services the router wires to controllers.
type Services struct {
	Auth     auth.Service
	Products products.Service
	Checkout checkout.Service
	Orders   orders.Service
	Messages messages.Service
	Slider   slider.Service
}

// NewRouter assembles the HTTP surface: public storefront, customer account
// endpoints, and the admin back office.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessionManager session.AccessSessionChecker,
	svcs Services,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())

		r.Get("/products", controllers.ListProducts(svcs.Products, logg))
		r.Get("/products/{slug}", controllers.GetProductBySlug(svcs.Products, logg))
		r.Get("/slides", controllers.ListSlides(svcs.Slider, logg))
		r.Post("/messages", controllers.SubmitMessage(svcs.Messages, logg))

		r.Post("/checkout/quote", controllers.CheckoutQuote(svcs.Checkout, logg))
		r.With(
			middleware.OptionalAuth(cfg.JWT, sessionManager, logg),
			middleware.Idempotency(redisClient, logg),
		).Post("/checkout", controllers.CheckoutSubmit(svcs.Checkout, logg))

		r.Post("/orders/track", controllers.TrackOrder(svcs.Orders, logg))

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).
				Post("/login", controllers.AuthLogin(svcs.Auth, logg))
			r.With(
				middleware.AuthRateLimit(registerPolicy, redisClient, logg),
				middleware.Idempotency(redisClient, logg),
			).Post("/register", controllers.AuthRegister(svcs.Auth, logg))
			r.Post("/refresh", controllers.AuthRefresh(svcs.Auth, logg))
			r.Post("/logout", controllers.AuthLogout(svcs.Auth, cfg.JWT, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, sessionManager, logg))
				r.Get("/me", controllers.AuthMe(svcs.Auth, logg))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessionManager, logg))
			r.Get("/orders", controllers.MyOrders(svcs.Orders, logg))
			r.Get("/orders/{orderId}", controllers.MyOrderDetail(svcs.Orders, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(
			middleware.Auth(cfg.JWT, sessionManager, logg),
			middleware.RequireRole("admin", logg),
			middleware.Idempotency(redisClient, logg),
		)

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.AdminListProducts(svcs.Products, logg))
			r.Post("/", controllers.AdminCreateProduct(svcs.Products, logg))
			r.Get("/{productId}", controllers.AdminGetProduct(svcs.Products, logg))
			r.Patch("/{productId}", controllers.AdminUpdateProduct(svcs.Products, logg))
			r.Delete("/{productId}", controllers.AdminDeleteProduct(svcs.Products, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminListOrders(svcs.Orders, logg))
			r.Get("/{orderId}", controllers.AdminGetOrder(svcs.Orders, logg))
			r.Patch("/{orderId}/status", controllers.AdminUpdateOrderStatus(svcs.Orders, logg))
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", controllers.AdminListMessages(svcs.Messages, logg))
			r.Patch("/{messageId}/read", controllers.AdminMarkMessageRead(svcs.Messages, logg))
			r.Delete("/{messageId}", controllers.AdminDeleteMessage(svcs.Messages, logg))
		})

		r.Route("/slides", func(r chi.Router) {
			r.Get("/", controllers.AdminListSlides(svcs.Slider, logg))
			r.Post("/", controllers.AdminCreateSlide(svcs.Slider, logg))
			r.Patch("/{slideId}", controllers.AdminUpdateSlide(svcs.Slider, logg))
			r.Delete("/{slideId}", controllers.AdminDeleteSlide(svcs.Slider, logg))
		})
	})

	return r
}
