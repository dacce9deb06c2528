package models

type ArticleState string

const (
	StateDraft     ArticleState = "draft"
	StateRevision  ArticleState = "revision"
	StateEdited    ArticleState = "edited"
	StatePublished ArticleState = "published"
	StateInactive  ArticleState = "inactive"
)

// AllArticleStates returns every lifecycle state, kanban column order.
func AllArticleStates() []ArticleState {
	return []ArticleState{StateDraft, StateRevision, StateEdited, StatePublished, StateInactive}
}

func (s ArticleState) IsValid() bool {
	switch s {
	case StateDraft, StateRevision, StateEdited, StatePublished, StateInactive:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leads out of s. Only inactive
// qualifies: once deactivated an article stays deactivated.
func (s ArticleState) IsTerminal() bool {
	return s == StateInactive
}

// TransitionPlan is the outcome of a legal transition decision. It carries
// everything the caller needs to persist the change and fire side effects,
// keeping the rule evaluation itself free of I/O.
type TransitionPlan struct {
	From             ArticleState
	To               ArticleState
	StampPublishedAt bool
}

// PlanTransition validates that caps may move article into target from its
// current state, honoring the category moderation flag. It returns
// ErrInvalidTransition when target is not reachable from the current state
// under any rule, and ErrForbidden when the state pair is legal but the actor
// lacks the required role, permission or ownership. A terminal current state
// rejects every target.
//
// Moderated categories force the two-party workflow (author drafts, editor
// edits, moderator publishes). Non-moderated categories let the author
// self-publish from any live state.
func PlanTransition(article *Article, target ArticleState, caps Capabilities) (*TransitionPlan, error) {
	if !target.IsValid() {
		return nil, ErrInvalidTransition
	}

	current := article.State
	if current.IsTerminal() {
		return nil, ErrInvalidTransition
	}
	isAuthor := caps.IsAuthorOf(article)

	allowed := false
	switch target {
	case StateRevision:
		if current != StateDraft && current != StateEdited {
			return nil, ErrInvalidTransition
		}
		allowed = caps.IsAdmin() ||
			(isAuthor && current == StateDraft) ||
			((caps.Has(PermEditArticles) || caps.Has(PermModerateArticles)) && current == StateEdited)

	case StateEdited:
		if current != StateRevision {
			return nil, ErrInvalidTransition
		}
		allowed = caps.IsAdmin() || caps.Has(PermEditArticles)

	case StatePublished:
		if article.Category.IsModerated {
			if current != StateEdited {
				return nil, ErrInvalidTransition
			}
			allowed = caps.IsAdmin() || caps.Has(PermModerateArticles)
		} else {
			if current.IsTerminal() {
				return nil, ErrInvalidTransition
			}
			allowed = isAuthor || caps.IsAdmin() || caps.Has(PermModerateArticles)
		}

	case StateDraft:
		// Admins may reset any live article, editors only bounce a revision back.
		allowed = caps.IsAdmin() || (caps.Has(PermEditArticles) && current == StateRevision)

	case StateInactive:
		allowed = caps.IsAdmin() || isAuthor
	}

	if !allowed {
		return nil, ErrForbidden
	}

	return &TransitionPlan{
		From:             current,
		To:               target,
		StampPublishedAt: target == StatePublished && article.PublishedAt == nil,
	}, nil
}

// PlanSystemPublish builds the publish plan for the scheduler sweep, which
// runs as a trusted system actor: eligibility was already checked when the
// publication was scheduled. Only a terminal article rejects the promotion.
func PlanSystemPublish(article *Article) (*TransitionPlan, error) {
	if article.State.IsTerminal() {
		return nil, ErrInvalidTransition
	}
	return &TransitionPlan{
		From:             article.State,
		To:               StatePublished,
		StampPublishedAt: article.PublishedAt == nil,
	}, nil
}

// CanEventuallyPublish reports whether caps could take the article to
// published once it reaches the right state. This is the schedule-time
// eligibility check: it evaluates the role/category predicate of the publish
// rule without the current-state requirement.
func CanEventuallyPublish(article *Article, caps Capabilities) bool {
	if article.Category.IsModerated {
		return caps.IsAdmin() || caps.Has(PermModerateArticles)
	}
	return caps.IsAuthorOf(article) || caps.IsAdmin() || caps.Has(PermModerateArticles)
}
