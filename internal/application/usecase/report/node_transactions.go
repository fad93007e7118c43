package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
)

// NodeKind identifies a hierarchy level a report can be requested for.
type NodeKind string

const (
	NodeProject  NodeKind = "project"
	NodeSite     NodeKind = "site"
	NodeStage    NodeKind = "stage"
	NodeEstimate NodeKind = "estimate"
	NodeItem     NodeKind = "item"
)

// NodeRef points at one hierarchy node.
type NodeRef struct {
	Kind NodeKind
	ID   uuid.UUID
}

// NodeTransactionsInput represents the input for the roll-up query.
type NodeTransactionsInput struct {
	Node NodeRef
}

// NodeTransactionsOutput represents the roll-up result: the de-duplicated
// transaction set for the node and all its descendants, most recent first,
// plus its summary.
type NodeTransactionsOutput struct {
	Transactions []*entity.Transaction
	Summary      Summary
}

// NodeTransactionsUseCase collects every transaction attributable to a
// hierarchy node. A transaction can be attached at the stage, estimate or
// line item level; the result is the union over all three attachment paths
// for every descendant of the node, with duplicates removed.
type NodeTransactionsUseCase struct {
	siteRepo        adapter.SiteRepository
	stageRepo       adapter.StageRepository
	estimateRepo    adapter.EstimateRepository
	itemRepo        adapter.EstimateItemRepository
	transactionRepo adapter.TransactionRepository
}

// NewNodeTransactionsUseCase creates a new NodeTransactionsUseCase instance.
func NewNodeTransactionsUseCase(
	siteRepo adapter.SiteRepository,
	stageRepo adapter.StageRepository,
	estimateRepo adapter.EstimateRepository,
	itemRepo adapter.EstimateItemRepository,
	transactionRepo adapter.TransactionRepository,
) *NodeTransactionsUseCase {
	return &NodeTransactionsUseCase{
		siteRepo:        siteRepo,
		stageRepo:       stageRepo,
		estimateRepo:    estimateRepo,
		itemRepo:        itemRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the roll-up query.
func (uc *NodeTransactionsUseCase) Execute(ctx context.Context, input NodeTransactionsInput) (*NodeTransactionsOutput, error) {
	stageIDs, estimateIDs, itemIDs, err := uc.resolveDescendants(ctx, input.Node)
	if err != nil {
		return nil, err
	}

	merged := make(map[uuid.UUID]*entity.Transaction)

	if len(stageIDs) > 0 {
		attached, err := uc.transactionRepo.FindAttachedToStages(ctx, stageIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load stage transactions: %w", err)
		}
		for _, t := range attached {
			merged[t.ID] = t
		}
	}

	if len(estimateIDs) > 0 {
		attached, err := uc.transactionRepo.FindAttachedToEstimates(ctx, estimateIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load estimate transactions: %w", err)
		}
		for _, t := range attached {
			merged[t.ID] = t
		}
	}

	if len(itemIDs) > 0 {
		attached, err := uc.transactionRepo.FindAttachedToItems(ctx, itemIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load item transactions: %w", err)
		}
		for _, t := range attached {
			merged[t.ID] = t
		}
	}

	transactions := make([]*entity.Transaction, 0, len(merged))
	for _, t := range merged {
		transactions = append(transactions, t)
	}
	sortTransactions(transactions)

	return &NodeTransactionsOutput{
		Transactions: transactions,
		Summary:      Summarize(transactions),
	}, nil
}

// resolveDescendants expands a node into the stage, estimate and line item ID
// sets transactions can be attached to underneath it.
func (uc *NodeTransactionsUseCase) resolveDescendants(ctx context.Context, node NodeRef) (stageIDs, estimateIDs, itemIDs []uuid.UUID, err error) {
	switch node.Kind {
	case NodeItem:
		return nil, nil, []uuid.UUID{node.ID}, nil

	case NodeEstimate:
		estimateIDs = []uuid.UUID{node.ID}

	case NodeStage:
		stageIDs = []uuid.UUID{node.ID}

	case NodeSite:
		stageIDs, err = uc.stageRepo.ListIDsBySites(ctx, []uuid.UUID{node.ID})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to resolve stages: %w", err)
		}

	case NodeProject:
		siteIDs, siteErr := uc.siteRepo.ListIDsByProject(ctx, node.ID)
		if siteErr != nil {
			return nil, nil, nil, fmt.Errorf("failed to resolve sites: %w", siteErr)
		}
		if len(siteIDs) > 0 {
			stageIDs, err = uc.stageRepo.ListIDsBySites(ctx, siteIDs)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("failed to resolve stages: %w", err)
			}
		}

	default:
		return nil, nil, nil, fmt.Errorf("unknown node kind %q", node.Kind)
	}

	if len(estimateIDs) == 0 && len(stageIDs) > 0 {
		estimateIDs, err = uc.estimateRepo.ListIDsByStages(ctx, stageIDs)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to resolve estimates: %w", err)
		}
	}

	if len(estimateIDs) > 0 {
		itemIDs, err = uc.itemRepo.ListIDsByEstimates(ctx, estimateIDs)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to resolve items: %w", err)
		}
	}

	return stageIDs, estimateIDs, itemIDs, nil
}

// sortTransactions orders most recent first: date descending, creation time
// descending, then ID descending as a stable tie-break for equal dates.
func sortTransactions(transactions []*entity.Transaction) {
	sort.Slice(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() > b.ID.String()
	})
}
