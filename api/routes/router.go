package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shilpokotha/shilpokotha-backend/api/controllers"
	"github.com/shilpokotha/shilpokotha-backend/api/middleware"
	authsvc "github.com/shilpokotha/shilpokotha-backend/internal/auth"
	cartsvc "github.com/shilpokotha/shilpokotha-backend/internal/cart"
	"github.com/shilpokotha/shilpokotha-backend/internal/catalog"
	checkoutsvc "github.com/shilpokotha/shilpokotha-backend/internal/checkout"
	newslettersvc "github.com/shilpokotha/shilpokotha-backend/internal/newsletter"
	orderssvc "github.com/shilpokotha/shilpokotha-backend/internal/orders"
	profilessvc "github.com/shilpokotha/shilpokotha-backend/internal/profiles"
	reviewssvc "github.com/shilpokotha/shilpokotha-backend/internal/reviews"
	wishlistsvc "github.com/shilpokotha/shilpokotha-backend/internal/wishlist"
	"github.com/shilpokotha/shilpokotha-backend/pkg/config"
	"github.com/shilpokotha/shilpokotha-backend/pkg/logger"
	"github.com/shilpokotha/shilpokotha-backend/pkg/metrics"
)

// Services bundles everything the router mounts.
type Services struct {
	Auth       authsvc.Service
	Catalog    catalog.Service
	Cart       cartsvc.Service
	Wishlist   wishlistsvc.Service
	Checkout   checkoutsvc.Service
	Orders     orderssvc.Service
	Reviews    reviewssvc.Service
	Newsletter newslettersvc.Service
	Profiles   profilessvc.Service
}

func NewRouter(cfg *config.Config, logg *logger.Logger, httpMetrics *metrics.HTTPMetrics, svcs Services) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.App.AllowedOrigins),
	)

	r.Get("/health", controllers.Health())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.Register(svcs.Auth, logg))
		r.Post("/login", controllers.Login(svcs.Auth, logg))
	})

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(svcs.Catalog, logg))
		r.Get("/facets", controllers.GetFacets(svcs.Catalog, logg))
		r.Get("/{productID}", controllers.GetProduct(svcs.Catalog, logg))
		r.Get("/{productID}/reviews", controllers.ListProductReviews(svcs.Reviews, logg))
		r.Get("/{productID}/reviews/summary", controllers.ProductReviewSummary(svcs.Reviews, logg))
		r.With(middleware.RequireAuth(cfg.JWT, logg)).
			Post("/{productID}/reviews", controllers.CreateReview(svcs.Reviews, logg))
	})

	r.Post("/api/v1/newsletter/subscribe", controllers.SubscribeNewsletter(svcs.Newsletter, logg))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth(cfg.JWT, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(svcs.Cart, logg))
			r.Post("/items", controllers.AddToCart(svcs.Cart, logg))
			r.Put("/items/{productID}", controllers.UpdateCartItem(svcs.Cart, logg))
			r.Delete("/items/{productID}", controllers.RemoveCartItem(svcs.Cart, logg))
			r.Delete("/", controllers.ClearCart(svcs.Cart, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.GetWishlist(svcs.Wishlist, logg))
			r.Post("/items", controllers.AddToWishlist(svcs.Wishlist, logg))
			r.Post("/toggle", controllers.ToggleWishlist(svcs.Wishlist, logg))
			r.Delete("/items/{productID}", controllers.RemoveFromWishlist(svcs.Wishlist, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/shipping-options", controllers.ShippingOptions(svcs.Checkout, logg))
			r.Get("/quote", controllers.CheckoutQuote(svcs.Checkout, logg))
			r.Post("/", controllers.PlaceOrder(svcs.Checkout, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(svcs.Orders, logg))
			r.Get("/{orderID}", controllers.GetOrder(svcs.Orders, logg))
			r.Post("/{orderID}/cancel", controllers.CancelOrder(svcs.Orders, logg))
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.GetProfile(svcs.Profiles, logg))
			r.Put("/", controllers.UpdateProfile(svcs.Profiles, logg))
		})
	})

	return r
}
