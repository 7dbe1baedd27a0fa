// Package handler adapts asynchandler to net/http request pipelines.
//
// Handlers use the (w, r, next) calling convention common to middleware. Wrap keeps
// that convention and routes failures (returned errors and panics) to an ErrorHandler:
//
//	import "github.com/dmitrymomot/asynchandler/core/handler"
//
//	loadUser := handler.Wrap(func(w http.ResponseWriter, r *http.Request, next http.Handler) error {
//		user, err := users.Get(r.Context(), r.PathValue("id"))
//		if err != nil {
//			return err
//		}
//		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
//		return nil
//	}, func(err error, w http.ResponseWriter, r *http.Request, next http.Handler) {
//		http.Error(w, "user not found", http.StatusNotFound)
//	})
//
// # Middleware
//
// Middleware turns a Func into func(http.Handler) http.Handler, so it plugs into any
// router that accepts standard middleware:
//
//	router := mux.NewRouter()
//	router.Use(handler.Middleware(authenticate, onAuthError))
//
// Failures not absorbed by an ErrorHandler (because none was given) are answered with
// 500 Internal Server Error, unless the handler already wrote a response.
//
// # Terminal Handlers
//
// HandlerFunc is the same adapter for endpoints that do not call a next handler:
//
//	router.Handle("/users/{id}", handler.HandlerFunc(showUser, onShowUserError))
//
// All functions accept asynchandler options (logger, observers, config), which are
// passed to asynchandler.Handle unchanged.
package handler
