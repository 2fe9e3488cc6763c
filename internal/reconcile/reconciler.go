// Package reconcile drives the desired state of one bare-metal server to its
// target lifecycle state.
package reconcile

import (
	"context"
	"fmt"
	"log"

	"slmetal/internal/catalog"
	"slmetal/internal/config"
	"slmetal/internal/order"
	"slmetal/internal/platform/softlayer"
	"slmetal/internal/schema"
)

// cancelReason is passed to the billing system when hardware is cancelled.
const cancelReason = "No longer needed"

// Result is the verdict of one evaluation. Response is set when an order was
// verified or placed; Schema is set for the options state.
type Result struct {
	Changed  bool
	Response *softlayer.OrderResponse
	Schema   schema.Schema
}

// Reconciler evaluates a desired-state record against the live account and
// performs at most one lifecycle action per run.
type Reconciler struct {
	client   softlayer.Client
	resolver *catalog.Resolver
	dryRun   bool
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithDryRun verifies orders instead of placing them.
func WithDryRun(dryRun bool) Option {
	return func(r *Reconciler) {
		r.dryRun = dryRun
	}
}

// New creates a Reconciler sharing one catalog cache across the run.
func New(client softlayer.Client, opts ...Option) *Reconciler {
	r := &Reconciler{
		client:   client,
		resolver: catalog.NewResolver(catalog.NewCache(client)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolver exposes the run's catalog resolver for read-only listings.
func (r *Reconciler) Resolver() *catalog.Resolver {
	return r.resolver
}

// Evaluate runs the lifecycle state machine for one desired-state record.
// Only the present state mutates remotely through ordering; absent and
// reloaded act on existing hardware, and options is read-only.
func (r *Reconciler) Evaluate(ctx context.Context, ds *config.DesiredState) (*Result, error) {
	switch ds.State {
	case config.StateOptions:
		return r.options(ctx, ds)
	case config.StatePresent:
		return r.present(ctx, ds)
	case config.StateAbsent:
		return r.absent(ctx, ds)
	case config.StateReloaded:
		return r.reloaded(ctx, ds)
	default:
		return nil, fmt.Errorf("unknown state %q", ds.State)
	}
}

func (r *Reconciler) options(ctx context.Context, ds *config.DesiredState) (*Result, error) {
	s, err := schema.Synthesize(ctx, r.resolver, ds.PackageID, ds.Datacenter, ds.State)
	if err != nil {
		return nil, err
	}
	return &Result{Schema: s}, nil
}

func (r *Reconciler) present(ctx context.Context, ds *config.DesiredState) (*Result, error) {
	existing, err := r.client.ListHardware(ctx, ds.Hostname, ds.Domain, ds.Datacenter)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		log.Printf("[reconcile] %s.%s already exists in %s", ds.Hostname, ds.Domain, ds.Datacenter)
		return &Result{}, nil
	}

	s, err := schema.Synthesize(ctx, r.resolver, ds.PackageID, ds.Datacenter, ds.State)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(ds, s); err != nil {
		return nil, err
	}

	o, err := order.Build(ctx, r.resolver, r.client, ds)
	if err != nil {
		return nil, err
	}

	var resp *softlayer.OrderResponse
	if r.dryRun {
		log.Printf("[reconcile] dry run, verifying order for %s.%s", ds.Hostname, ds.Domain)
		resp, err = r.client.VerifyOrder(ctx, o)
	} else {
		log.Printf("[reconcile] placing order for %s.%s in %s", ds.Hostname, ds.Domain, ds.Datacenter)
		resp, err = r.client.PlaceOrder(ctx, o)
	}
	if err != nil {
		return nil, err
	}
	return &Result{Changed: true, Response: resp}, nil
}

func (r *Reconciler) absent(ctx context.Context, ds *config.DesiredState) (*Result, error) {
	existing, err := r.client.ListHardware(ctx, ds.Hostname, ds.Domain, ds.Datacenter)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return &Result{}, nil
	}

	// Existence only; duplicates beyond the first match are not cancelled.
	hw := existing[0]
	log.Printf("[reconcile] cancelling %s.%s (hardware %d)", hw.Hostname, hw.Domain, hw.ID)
	if err := r.client.CancelHardware(ctx, hw, cancelReason); err != nil {
		return nil, err
	}
	return &Result{Changed: true}, nil
}

func (r *Reconciler) reloaded(ctx context.Context, ds *config.DesiredState) (*Result, error) {
	existing, err := r.client.ListHardware(ctx, ds.Hostname, ds.Domain, ds.Datacenter)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, fmt.Errorf("hardware %s.%s in %s not found", ds.Hostname, ds.Domain, ds.Datacenter)
	}

	hw := existing[0]
	log.Printf("[reconcile] reloading operating system on %s.%s (hardware %d)", hw.Hostname, hw.Domain, hw.ID)
	if err := r.client.ReloadHardware(ctx, hw.ID, ds.SSHKeyIDs); err != nil {
		return nil, err
	}
	return &Result{Changed: true}, nil
}
