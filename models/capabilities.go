package models

// Capabilities is an actor's resolved permission set. It is built once per
// request from the user's roles and then consulted as plain predicates, so
// the transition rules never touch storage.
type Capabilities struct {
	userID uint
	admin  bool
	tokens map[string]struct{}
}

func NewCapabilities(userID uint, admin bool, tokens []string) Capabilities {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return Capabilities{userID: userID, admin: admin, tokens: set}
}

func (c Capabilities) UserID() uint {
	return c.userID
}

func (c Capabilities) IsAdmin() bool {
	return c.admin
}

func (c Capabilities) Has(token string) bool {
	_, ok := c.tokens[token]
	return ok
}

func (c Capabilities) IsAuthorOf(article *Article) bool {
	return c.userID != 0 && article.AuthorID == c.userID
}
