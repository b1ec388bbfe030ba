package command

import (
	"context"
	"fmt"

	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

// DeltaBranch names which preference delta a reconciliation applied.
type DeltaBranch string

const (
	BranchNone            DeltaBranch = "none"
	BranchLikesAdded      DeltaBranch = "likes_added"
	BranchDislikesAdded   DeltaBranch = "dislikes_added"
	BranchLikesRemoved    DeltaBranch = "likes_removed"
	BranchDislikesRemoved DeltaBranch = "dislikes_removed"
)

// ReconcilePreferencesRequest carries the full snapshot of selected
// quote IDs from one stateless render pass.
type ReconcilePreferencesRequest struct {
	Username         string
	SelectedLikes    []int
	SelectedDislikes []int
}

// ReconcilePreferencesResult reports the single delta that was applied.
type ReconcilePreferencesResult struct {
	Branch   DeltaBranch
	QuoteIDs []int
}

// ReconcilePreferences bridges a stateless presentation layer, which
// reports only "currently selected" IDs per render, to the ledger's
// incremental API. At most one delta branch is applied per cycle, in
// the order: new likes, new dislikes, unset likes, unset dislikes. The
// caller re-renders after every successful write and recomputes deltas,
// so deferred branches are picked up on the next cycle.
type ReconcilePreferences struct {
	Getter  datasources.PreferencesGetter
	Setter  datasources.PreferencesSetter
	Deleter datasources.PreferenceDeleter
}

func NewReconcilePreferences(
	getter datasources.PreferencesGetter,
	setter datasources.PreferencesSetter,
	deleter datasources.PreferenceDeleter,
) *ReconcilePreferences {
	return &ReconcilePreferences{
		Getter:  getter,
		Setter:  setter,
		Deleter: deleter,
	}
}

// Execute computes the delta between the ledger state and the selected
// snapshot and applies the first non-empty branch. An ID selected as a
// like while still present in the dislike set is handed to the ledger
// as-is; the set-preferences sync removes it from the opposite set.
func (c *ReconcilePreferences) Execute(
	ctx context.Context, req ReconcilePreferencesRequest,
) (ReconcilePreferencesResult, error) {
	logger := domain.LoggerFromContext(ctx)

	currentLikes, currentDislikes, err := c.Getter.GetUserPreferences(ctx, req.Username)
	if err != nil {
		return ReconcilePreferencesResult{}, fmt.Errorf("reading current preferences: %w", err)
	}

	if newLikes := difference(req.SelectedLikes, currentLikes); len(newLikes) > 0 {
		if err := c.Setter.SetUserPreferences(ctx, req.Username, newLikes, nil); err != nil {
			return ReconcilePreferencesResult{}, fmt.Errorf("adding likes: %w", err)
		}
		logger.DebugContext(ctx, "added likes", "count", len(newLikes))
		return ReconcilePreferencesResult{Branch: BranchLikesAdded, QuoteIDs: newLikes}, nil
	}

	if newDislikes := difference(req.SelectedDislikes, currentDislikes); len(newDislikes) > 0 {
		if err := c.Setter.SetUserPreferences(ctx, req.Username, nil, newDislikes); err != nil {
			return ReconcilePreferencesResult{}, fmt.Errorf("adding dislikes: %w", err)
		}
		logger.DebugContext(ctx, "added dislikes", "count", len(newDislikes))
		return ReconcilePreferencesResult{Branch: BranchDislikesAdded, QuoteIDs: newDislikes}, nil
	}

	if unsetLikes := difference(currentLikes, req.SelectedLikes); len(unsetLikes) > 0 {
		if _, err := c.Deleter.DeleteUserPreference(ctx, req.Username, unsetLikes, nil); err != nil {
			return ReconcilePreferencesResult{}, fmt.Errorf("removing likes: %w", err)
		}
		logger.DebugContext(ctx, "removed likes", "count", len(unsetLikes))
		return ReconcilePreferencesResult{Branch: BranchLikesRemoved, QuoteIDs: unsetLikes}, nil
	}

	if unsetDislikes := difference(currentDislikes, req.SelectedDislikes); len(unsetDislikes) > 0 {
		if _, err := c.Deleter.DeleteUserPreference(ctx, req.Username, nil, unsetDislikes); err != nil {
			return ReconcilePreferencesResult{}, fmt.Errorf("removing dislikes: %w", err)
		}
		logger.DebugContext(ctx, "removed dislikes", "count", len(unsetDislikes))
		return ReconcilePreferencesResult{Branch: BranchDislikesRemoved, QuoteIDs: unsetDislikes}, nil
	}

	return ReconcilePreferencesResult{Branch: BranchNone}, nil
}

// TogglePreferenceRequest is the single-action input shape: one quote,
// one polarity, selected or unselected.
type TogglePreferenceRequest struct {
	Username string
	QuoteID  int
	Polarity domain.Polarity
	Value    bool
}

// TogglePreference reduces a single like/dislike/unlike/undislike
// action to the reconciler's snapshot contract.
type TogglePreference struct {
	Getter     datasources.PreferencesGetter
	Reconciler *ReconcilePreferences
}

func (c *TogglePreference) Execute(
	ctx context.Context, req TogglePreferenceRequest,
) (ReconcilePreferencesResult, error) {
	currentLikes, currentDislikes, err := c.Getter.GetUserPreferences(ctx, req.Username)
	if err != nil {
		return ReconcilePreferencesResult{}, fmt.Errorf("reading current preferences: %w", err)
	}

	selectedLikes := currentLikes
	selectedDislikes := currentDislikes
	switch req.Polarity {
	case domain.PolarityLike:
		selectedLikes = withMembership(currentLikes, req.QuoteID, req.Value)
	case domain.PolarityDislike:
		selectedDislikes = withMembership(currentDislikes, req.QuoteID, req.Value)
	default:
		return ReconcilePreferencesResult{}, fmt.Errorf("unknown polarity [%s]", req.Polarity)
	}

	return c.Reconciler.Execute(ctx, ReconcilePreferencesRequest{
		Username:         req.Username,
		SelectedLikes:    selectedLikes,
		SelectedDislikes: selectedDislikes,
	})
}

// difference returns the members of a not present in b, preserving the
// order of a.
func difference(a, b []int) []int {
	inB := make(map[int]struct{}, len(b))
	for _, id := range b {
		inB[id] = struct{}{}
	}

	var result []int
	for _, id := range a {
		if _, ok := inB[id]; !ok {
			result = append(result, id)
		}
	}
	return result
}

func withMembership(ids []int, id int, member bool) []int {
	result := make([]int, 0, len(ids)+1)
	for _, existing := range ids {
		if existing != id {
			result = append(result, existing)
		}
	}
	if member {
		result = append(result, id)
	}
	return result
}
