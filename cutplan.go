// Package cutplan reconciles messy, heterogeneous furniture panel cut
// lists into canonical, validated part sets. The root package ties the
// operation-type catalog and the reconciliation pipeline together
// behind one client; the per-concern algorithms live in pkg/.
package cutplan

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/panelworks/cutplan/pkg/catalogs"
	"github.com/panelworks/cutplan/pkg/cutlist"
	"github.com/panelworks/cutplan/pkg/logging"
	"github.com/panelworks/cutplan/pkg/reconcile"
)

// Client runs reconciliation passes over part snapshots using one
// operation-type catalog.
type Client interface {
	// Catalog returns the operation-type catalog in use.
	Catalog() *catalogs.OperationTypes

	// Reconcile computes the derived view for one part snapshot.
	Reconcile(ctx context.Context, parts []cutlist.Part) *reconcile.Result
}

// client is the internal implementation of the Client interface.
type client struct {
	catalog    *catalogs.OperationTypes
	reconciler reconcile.Reconciler
	logger     *zerolog.Logger
}

// Option is a function that configures a Client instance.
type Option func(*client)

// WithCatalog configures the operation-type catalog. Without it the
// embedded default catalog is used.
func WithCatalog(c *catalogs.OperationTypes) Option {
	return func(cl *client) {
		cl.catalog = c
	}
}

// WithLogger configures the logger attached to each pass context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(cl *client) {
		cl.logger = logger
	}
}

// WithReconcilerOptions forwards options to the underlying reconciler.
func WithReconcilerOptions(opts ...reconcile.Option) Option {
	return func(cl *client) {
		cl.reconciler = reconcile.New(opts...)
	}
}

// New creates a new Client instance with the given options.
func New(opts ...Option) Client {
	cl := &client{
		catalog:    catalogs.Default(),
		reconciler: reconcile.New(),
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// Catalog returns the operation-type catalog in use.
func (cl *client) Catalog() *catalogs.OperationTypes {
	return cl.catalog
}

// Reconcile computes the derived view for one part snapshot.
func (cl *client) Reconcile(ctx context.Context, parts []cutlist.Part) *reconcile.Result {
	ctx = logging.WithLogger(ctx, cl.logger)
	return cl.reconciler.Snapshot(ctx, parts)
}
