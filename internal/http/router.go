package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ledgerline/ledgerline/internal/http/account"
	"github.com/ledgerline/ledgerline/internal/http/balance"
	"github.com/ledgerline/ledgerline/internal/http/importcsv"
	"github.com/ledgerline/ledgerline/internal/http/syncrun"
	"github.com/ledgerline/ledgerline/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	importV1 *importcsv.Handler,
	balancesV1 *balance.Handler,
	accountsV1 *account.Handler,
	syncV1 *syncrun.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/balances", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			balancesV1.Routes(r)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			accountsV1.Routes(r)
		})

		r.Route("/sync", func(r chi.Router) {
			syncV1.Routes(r)
		})
	})

	return router
}
