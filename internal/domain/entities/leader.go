package entities

import "github.com/volatiletech/null/v8"

// Leader is a display-ready view of the identity-gateway profile
// designated as a club's leader. It is request-scoped and never persisted.
type Leader struct {
	InnohassleID  string      `json:"innohassleId"`
	Name          null.String `json:"name"`
	Email         null.String `json:"email"`
	TelegramAlias null.String `json:"telegramAlias"`
}
