package reconcile

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"inventory-sync/core/catalog"
)

// Pipeline runs the full reconciliation pass for one vendor:
// fetch -> group -> resolve -> aggregate -> diff -> commit.
type Pipeline struct {
	catalog  Catalog
	listings ListingStore
	log      *zap.Logger
}

// NewPipeline creates a pipeline over the given catalog and listing store.
func NewPipeline(cat Catalog, listings ListingStore, log *zap.Logger) *Pipeline {
	return &Pipeline{catalog: cat, listings: listings, log: log}
}

// Run executes one reconciliation pass for the adapter's vendor and
// returns its summary. Vendor-level failures (fetch, persisted-state load,
// fixed-condition resolution) populate the summary's Error field;
// group-level failures are logged, counted as skipped, and never abort the
// remaining groups.
func (p *Pipeline) Run(ctx context.Context, adapter Adapter) VendorSummary {
	summary := VendorSummary{VendorID: adapter.VendorID()}
	log := p.log.With(
		zap.String("vendor", adapter.VendorID()),
		zap.String("adapter", adapter.Name()),
	)

	items, err := adapter.Fetch(ctx)
	if err != nil {
		fetchErr := &FetchError{VendorID: adapter.VendorID(), Err: err}
		log.Error("Feed fetch failed", zap.Error(fetchErr))
		summary.Error = fetchErr.Error()
		return summary
	}
	summary.TotalFetched = len(items)

	// A fixed condition is resolved once up front; failing to resolve it
	// fails the whole vendor since every group depends on it.
	var fixed *catalog.Condition
	if name := adapter.FixedCondition(); name != "" {
		fixed, err = p.catalog.Condition(ctx, name, true)
		if err != nil {
			log.Error("Fixed condition resolution failed", zap.Error(err))
			summary.Error = err.Error()
			return summary
		}
	}

	groups, groupKeys := GroupItems(items)

	computed := make(map[RecordKey][]catalog.Option)
	computedKeys := make([]RecordKey, 0, len(groups))

	for _, groupKey := range groupKeys {
		group := groups[groupKey]

		key, options, err := p.processGroup(ctx, group, fixed, adapter)
		if err != nil {
			summary.SkippedProducts++
			if errors.Is(err, catalog.ErrNotFound) {
				log.Info("Skipping group with no catalog match", zap.String("group", groupKey))
			} else {
				log.Warn("Skipping group", zap.Error(&ResolutionError{GroupKey: groupKey, Err: err}))
			}
			continue
		}

		// Groups whose every option ends at zero stock produce no record;
		// an existing listing is picked up by the zero-out path instead.
		if AllZero(options) {
			continue
		}

		// Distinct raw groups can resolve to the same record, e.g. two
		// spellings of one product name. Fold them so no group's units
		// are lost.
		if existing, ok := computed[key]; ok {
			computed[key] = foldOptions(existing, options, adapter)
		} else {
			computedKeys = append(computedKeys, key)
			computed[key] = options
		}
		summary.GroupsProcessed++
	}

	persisted, err := p.listings.ListByVendor(ctx, adapter.VendorID())
	if err != nil {
		log.Error("Failed to load persisted listings", zap.Error(err))
		summary.Error = err.Error()
		return summary
	}

	operations := Diff(adapter.VendorID(), computed, computedKeys, persisted, adapter)
	summary.TotalOperations = len(operations)

	created, updated, zeroed, commitErr := p.commit(ctx, operations)
	summary.NewRecords = created
	summary.UpdatedRecords = updated
	summary.MarkedOutOfStock = zeroed
	if commitErr != nil {
		// Partial-success counts above already reflect what did apply.
		log.Error("Commit finished with failures", zap.Error(commitErr))
		summary.Error = commitErr.Error()
	}

	log.Info("Reconciliation pass finished",
		zap.Int("fetched", summary.TotalFetched),
		zap.Int("groups", summary.GroupsProcessed),
		zap.Int("skipped", summary.SkippedProducts),
		zap.Int("created", created),
		zap.Int("updated", updated),
		zap.Int("zeroed", zeroed),
	)

	return summary
}

// processGroup resolves one group's product and condition and aggregates
// its options. Degenerate groups (empty manufacturer/model) fail product
// resolution here and surface as a skip, never a crash.
func (p *Pipeline) processGroup(ctx context.Context, group *Group, fixed *catalog.Condition, adapter Adapter) (RecordKey, []catalog.Option, error) {
	product, err := p.catalog.Resolve(ctx, group.Manufacturer, group.Model, adapter.AllowCreate())
	if err != nil {
		return RecordKey{}, nil, err
	}

	condition := fixed
	if condition == nil {
		condition, err = p.catalog.Condition(ctx, group.Grade, adapter.AllowCreate())
		if err != nil {
			return RecordKey{}, nil, err
		}
	}

	options := AggregateOptions(group, product, adapter)
	return RecordKey{ProductID: product.ID, ConditionID: condition.ID}, options, nil
}

// commit applies the operation batch best-effort: one operation's failure
// never prevents the others from applying. Returns counts of applied
// operations per class and a CommitError aggregating any failures.
func (p *Pipeline) commit(ctx context.Context, operations []Operation) (created, updated, zeroed int, err error) {
	var failures []error

	for _, operation := range operations {
		switch operation.Type {
		case OpCreate:
			if opErr := p.listings.Create(ctx, operation.Listing); opErr != nil {
				failures = append(failures, opErr)
				continue
			}
			created++
		case OpUpdate:
			if opErr := p.listings.Update(ctx, operation.Listing); opErr != nil {
				failures = append(failures, opErr)
				continue
			}
			updated++
		case OpZero:
			if opErr := p.listings.Update(ctx, operation.Listing); opErr != nil {
				failures = append(failures, opErr)
				continue
			}
			zeroed++
		}
	}

	if len(failures) > 0 {
		return created, updated, zeroed, &CommitError{Failed: len(failures), Errs: failures}
	}
	return created, updated, zeroed, nil
}

// Orchestrator fans one pipeline run out across every configured vendor
// adapter and fans the summaries back in. Each vendor writes a disjoint
// record partition, so concurrent runs need no coordination beyond the
// store's own per-write atomicity.
type Orchestrator struct {
	pipeline *Pipeline
	log      *zap.Logger
}

// NewOrchestrator creates an orchestrator around a pipeline.
func NewOrchestrator(pipeline *Pipeline, log *zap.Logger) *Orchestrator {
	return &Orchestrator{pipeline: pipeline, log: log}
}

// RunAll runs the pipeline for every adapter concurrently. Each adapter
// gets an independent summary slot; one vendor's failure never affects
// another's outcome.
func (o *Orchestrator) RunAll(ctx context.Context, adapters []Adapter) []VendorSummary {
	summaries := make([]VendorSummary, len(adapters))

	var wg sync.WaitGroup
	wg.Add(len(adapters))

	for i, adapter := range adapters {
		go func(slot int, adapter Adapter) {
			defer wg.Done()
			summaries[slot] = o.pipeline.Run(ctx, adapter)
		}(i, adapter)
	}

	wg.Wait()
	return summaries
}
