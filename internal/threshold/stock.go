package threshold

import (
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// Hierarchy describes how an inventory item nests its stock locations:
// item -> branch locations -> child locations, each child holding on-hand
// quantity and each branch holding the reorder point for its children.
type Hierarchy struct {
	LocationsField string `yaml:"locations_field"`
	ChildrenField  string `yaml:"children_field"`
	OnHandField    string `yaml:"on_hand_field"`
	ReorderField   string `yaml:"reorder_field"`
	CostField      string `yaml:"cost_field"`
}

// DefaultHierarchy matches the inventory records served by the data layer.
func DefaultHierarchy() Hierarchy {
	return Hierarchy{
		LocationsField: "locations",
		ChildrenField:  "sublocations",
		OnHandField:    "quantityOnHand",
		ReorderField:   "reorderPoint",
		CostField:      "unitCost",
	}
}

// StockRule classifies inventory items as out, low or normal.
//
// Flat items compare QuantityField against MinField. Items carrying a non-empty
// locations array are classified through the Hierarchy instead.
type StockRule struct {
	QuantityField string    `yaml:"quantity_field"`
	MinField      string    `yaml:"min_field"`
	CostField     string    `yaml:"cost_field"`
	Hierarchy     Hierarchy `yaml:"hierarchy"`
}

// DefaultStockRule returns the rule used by the inventory pages.
func DefaultStockRule() StockRule {
	return StockRule{
		QuantityField: "quantity",
		MinField:      "minQuantity",
		CostField:     "unitCost",
		Hierarchy:     DefaultHierarchy(),
	}
}

// Classify implements Classifier.
func (s StockRule) Classify(r models.Record, _ time.Time) Status {
	if s.isHierarchical(r) {
		if s.NeedsReorder(r) {
			return StatusLow
		}
		if s.OnHand(r) <= 0 {
			return StatusOut
		}
		return StatusNormal
	}

	qty := r.Number(s.QuantityField)
	if qty <= 0 {
		return StatusOut
	}
	if qty <= r.Number(s.MinField) {
		return StatusLow
	}
	return StatusNormal
}

// NeedsReorder reports whether any child location's on-hand quantity is at or
// below its parent branch's reorder point. Flat items need reorder when their
// status is low or out.
func (s StockRule) NeedsReorder(r models.Record) bool {
	if !s.isHierarchical(r) {
		return s.Classify(r, time.Time{}) != StatusNormal
	}

	found := false
	s.visitLeaves(r, func(leaf models.Record, reorder float64, hasReorder bool) bool {
		if hasReorder && leaf.Number(s.Hierarchy.OnHandField) <= reorder {
			found = true
			return false
		}
		return true
	})
	return found
}

// OnHand returns the total quantity on hand for an item.
func (s StockRule) OnHand(r models.Record) float64 {
	if !s.isHierarchical(r) {
		return r.Number(s.QuantityField)
	}

	total := 0.0
	s.visitLeaves(r, func(leaf models.Record, _ float64, _ bool) bool {
		total += leaf.Number(s.Hierarchy.OnHandField)
		return true
	})
	return total
}

// Value returns the stock value of an item: the sum over leaf locations of
// quantityOnHand x unitCost. A leaf without a numeric cost uses the item's cost;
// when neither is numeric the cost is 0.
func (s StockRule) Value(r models.Record) float64 {
	itemCost := r.Number(s.CostField)
	if !s.isHierarchical(r) {
		return r.Number(s.QuantityField) * itemCost
	}

	total := 0.0
	s.visitLeaves(r, func(leaf models.Record, _ float64, _ bool) bool {
		cost, ok := leaf.NumberOK(s.Hierarchy.CostField)
		if !ok {
			cost = itemCost
		}
		total += leaf.Number(s.Hierarchy.OnHandField) * cost
		return true
	})
	return total
}

func (s StockRule) isHierarchical(r models.Record) bool {
	if s.Hierarchy.LocationsField == "" {
		return false
	}
	return len(r.Records(s.Hierarchy.LocationsField)) > 0
}

// visitLeaves walks the location tree and calls fn for each leaf with the
// reorder point of its parent branch. Top-level locations without children are
// leaves governed by their own reorder point, or the item minimum when they have
// none. fn returns false to stop the walk.
func (s StockRule) visitLeaves(item models.Record, fn func(leaf models.Record, reorder float64, hasReorder bool) bool) {
	h := s.Hierarchy
	itemMin, itemHasMin := item.NumberOK(s.MinField)

	var walk func(node models.Record, reorder float64, hasReorder bool) bool
	walk = func(node models.Record, reorder float64, hasReorder bool) bool {
		children := node.Records(h.ChildrenField)
		if len(children) == 0 {
			return fn(node, reorder, hasReorder)
		}

		branchReorder, ok := node.NumberOK(h.ReorderField)
		if !ok {
			branchReorder, ok = reorder, hasReorder
		}
		for _, child := range children {
			if !walk(child, branchReorder, ok) {
				return false
			}
		}
		return true
	}

	for _, loc := range item.Records(h.LocationsField) {
		reorder, ok := loc.NumberOK(h.ReorderField)
		if !ok {
			reorder, ok = itemMin, itemHasMin
		}
		if len(loc.Records(h.ChildrenField)) == 0 {
			if !fn(loc, reorder, ok) {
				return
			}
			continue
		}
		if !walk(loc, reorder, ok) {
			return
		}
	}
}
