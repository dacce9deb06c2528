package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArticle(state ArticleState, moderated bool) *Article {
	return &Article{
		ID:       1,
		Title:    "Artículo de Prueba",
		AuthorID: 10,
		State:    state,
		Category: Category{ID: 1, Name: "Test Category", Type: CategoryFree, State: true, IsModerated: moderated},
	}
}

func authorCaps() Capabilities {
	return NewCapabilities(10, false, []string{PermCreateArticles})
}

func editorCaps() Capabilities {
	return NewCapabilities(20, false, []string{PermEditArticles})
}

func moderatorCaps() Capabilities {
	return NewCapabilities(30, false, []string{PermModerateArticles})
}

func adminCaps() Capabilities {
	return NewCapabilities(40, true, nil)
}

func noCaps() Capabilities {
	return NewCapabilities(50, false, nil)
}

func TestAuthorSendsDraftToRevision(t *testing.T) {
	article := newArticle(StateDraft, false)

	plan, err := PlanTransition(article, StateRevision, authorCaps())

	require.NoError(t, err)
	assert.Equal(t, StateDraft, plan.From)
	assert.Equal(t, StateRevision, plan.To)
	assert.False(t, plan.StampPublishedAt)
}

func TestStrangerCannotSendDraftToRevision(t *testing.T) {
	article := newArticle(StateDraft, false)

	_, err := PlanTransition(article, StateRevision, noCaps())

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, StateDraft, article.State)
}

func TestEditorSendsEditedBackToRevision(t *testing.T) {
	article := newArticle(StateEdited, true)

	plan, err := PlanTransition(article, StateRevision, editorCaps())

	require.NoError(t, err)
	assert.Equal(t, StateRevision, plan.To)
}

func TestRevisionToRevisionIsInvalid(t *testing.T) {
	article := newArticle(StateRevision, false)

	_, err := PlanTransition(article, StateRevision, adminCaps())

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestEditorMovesRevisionToEdited(t *testing.T) {
	article := newArticle(StateRevision, true)

	plan, err := PlanTransition(article, StateEdited, editorCaps())

	require.NoError(t, err)
	assert.Equal(t, StateEdited, plan.To)
}

func TestAuthorCannotMoveRevisionToEdited(t *testing.T) {
	article := newArticle(StateRevision, true)

	_, err := PlanTransition(article, StateEdited, authorCaps())

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestEditedRequiredForEditedTarget(t *testing.T) {
	article := newArticle(StateDraft, true)

	_, err := PlanTransition(article, StateEdited, adminCaps())

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestModeratedPublishRequiresModerator(t *testing.T) {
	article := newArticle(StateEdited, true)

	_, err := PlanTransition(article, StatePublished, authorCaps())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = PlanTransition(article, StatePublished, editorCaps())
	assert.ErrorIs(t, err, ErrForbidden)

	plan, err := PlanTransition(article, StatePublished, moderatorCaps())
	require.NoError(t, err)
	assert.True(t, plan.StampPublishedAt)
}

func TestAdminPublishesModeratedEdited(t *testing.T) {
	article := newArticle(StateEdited, true)

	plan, err := PlanTransition(article, StatePublished, adminCaps())

	require.NoError(t, err)
	assert.Equal(t, StatePublished, plan.To)
	assert.True(t, plan.StampPublishedAt)
}

func TestModeratedPublishRequiresEditedState(t *testing.T) {
	for _, state := range []ArticleState{StateDraft, StateRevision, StatePublished, StateInactive} {
		article := newArticle(state, true)
		_, err := PlanTransition(article, StatePublished, adminCaps())
		assert.ErrorIs(t, err, ErrInvalidTransition, "state %s", state)
	}
}

func TestAuthorSelfPublishesInNonModeratedCategory(t *testing.T) {
	for _, state := range []ArticleState{StateDraft, StateRevision, StateEdited} {
		article := newArticle(state, false)
		plan, err := PlanTransition(article, StatePublished, authorCaps())
		require.NoError(t, err, "state %s", state)
		assert.Equal(t, StatePublished, plan.To)
	}
}

func TestInactiveArticleCannotBePublished(t *testing.T) {
	article := newArticle(StateInactive, false)

	_, err := PlanTransition(article, StatePublished, adminCaps())

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestPublishStampIsIdempotent(t *testing.T) {
	article := newArticle(StateEdited, false)
	stamped := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	article.PublishedAt = &stamped
	article.State = StatePublished

	plan, err := PlanTransition(article, StatePublished, authorCaps())

	require.NoError(t, err)
	assert.False(t, plan.StampPublishedAt)
}

func TestAdminResetsToDraftFromAnyLiveState(t *testing.T) {
	for _, state := range []ArticleState{StateRevision, StateEdited, StatePublished} {
		article := newArticle(state, true)
		plan, err := PlanTransition(article, StateDraft, adminCaps())
		require.NoError(t, err, "state %s", state)
		assert.Equal(t, StateDraft, plan.To)
	}
}

// Deactivation is final: not even an admin reset brings an inactive
// article back.
func TestInactiveRejectsEveryTarget(t *testing.T) {
	for _, target := range AllArticleStates() {
		article := newArticle(StateInactive, false)

		_, err := PlanTransition(article, target, adminCaps())

		assert.ErrorIs(t, err, ErrInvalidTransition, "target %s", target)
		assert.Equal(t, StateInactive, article.State)
	}
}

func TestEditorResetsToDraftOnlyFromRevision(t *testing.T) {
	article := newArticle(StateRevision, true)
	_, err := PlanTransition(article, StateDraft, editorCaps())
	require.NoError(t, err)

	article = newArticle(StateEdited, true)
	_, err = PlanTransition(article, StateDraft, editorCaps())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAuthorOrAdminDeactivates(t *testing.T) {
	for _, state := range []ArticleState{StateDraft, StateRevision, StateEdited, StatePublished} {
		article := newArticle(state, true)

		_, err := PlanTransition(article, StateInactive, authorCaps())
		require.NoError(t, err, "author, state %s", state)

		_, err = PlanTransition(article, StateInactive, adminCaps())
		require.NoError(t, err, "admin, state %s", state)

		_, err = PlanTransition(article, StateInactive, editorCaps())
		assert.ErrorIs(t, err, ErrForbidden, "editor, state %s", state)
	}
}

// Every combination not explicitly allowed must be rejected for an actor
// with no roles or permissions, and the article must be left untouched.
func TestRuleCompletenessForUnprivilegedActor(t *testing.T) {
	for _, moderated := range []bool{false, true} {
		for _, current := range AllArticleStates() {
			for _, target := range AllArticleStates() {
				article := newArticle(current, moderated)
				before := article.State

				_, err := PlanTransition(article, target, noCaps())

				assert.Error(t, err,
					"moderated=%v current=%s target=%s", moderated, current, target)
				assert.Equal(t, before, article.State)
			}
		}
	}
}

func TestPlanSystemPublish(t *testing.T) {
	article := newArticle(StateEdited, true)

	plan, err := PlanSystemPublish(article)

	require.NoError(t, err)
	assert.Equal(t, StatePublished, plan.To)
	assert.True(t, plan.StampPublishedAt)
}

func TestPlanSystemPublishRejectsInactive(t *testing.T) {
	article := newArticle(StateInactive, false)

	_, err := PlanSystemPublish(article)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCanEventuallyPublish(t *testing.T) {
	moderated := newArticle(StateDraft, true)
	assert.False(t, CanEventuallyPublish(moderated, authorCaps()))
	assert.True(t, CanEventuallyPublish(moderated, moderatorCaps()))
	assert.True(t, CanEventuallyPublish(moderated, adminCaps()))

	free := newArticle(StateDraft, false)
	assert.True(t, CanEventuallyPublish(free, authorCaps()))
	assert.False(t, CanEventuallyPublish(free, editorCaps()))
}
